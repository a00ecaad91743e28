package subscribing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	telegrammocks "github.com/vfg2006/ads-automation-api/infrastructure/integrator/telegram/mocks"
	"github.com/vfg2006/ads-automation-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-automation-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_CheckExpiringSubscriptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSubscriptionRepository(ctrl)
	mockNotifier := telegrammocks.NewMockNotifier(ctrl)

	service := NewService(mockRepo, mockNotifier)

	now := time.Date(2024, 1, 15, 9, 30, 0, 0, time.Local)
	telegramID := "12345"

	subA := &domain.Subscription{ID: "sub-a", UserID: "user-a", UserName: "Ana", TelegramID: &telegramID, ExpiresAt: now.AddDate(0, 0, 1)}
	subB := &domain.Subscription{ID: "sub-b", UserID: "user-b", UserName: "Bruno", ExpiresAt: now.AddDate(0, 0, 2)}

	mockRepo.EXPECT().
		ListExpiringUntil(now.Add(ExpiryWarningWindow)).
		Return([]*domain.Subscription{subA, subB}, nil)

	// Falha no aviso de uma assinatura não impede o restante
	mockNotifier.EXPECT().NotifySubscriptionExpiring(gomock.Any(), subA).Return(assert.AnError)
	mockNotifier.EXPECT().NotifySubscriptionExpiring(gomock.Any(), subB).Return(nil)

	err := service.CheckExpiringSubscriptions(context.Background(), now)
	require.NoError(t, err)
}

func TestService_CheckExpiringSubscriptions_SemVencimentos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSubscriptionRepository(ctrl)
	mockNotifier := telegrammocks.NewMockNotifier(ctrl)

	service := NewService(mockRepo, mockNotifier)

	mockRepo.EXPECT().ListExpiringUntil(gomock.Any()).Return(nil, nil)

	err := service.CheckExpiringSubscriptions(context.Background(), time.Now())
	require.NoError(t, err)
}

func TestService_CheckExpiringSubscriptions_ErroDeBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSubscriptionRepository(ctrl)
	mockNotifier := telegrammocks.NewMockNotifier(ctrl)

	service := NewService(mockRepo, mockNotifier)

	mockRepo.EXPECT().ListExpiringUntil(gomock.Any()).Return(nil, assert.AnError)

	err := service.CheckExpiringSubscriptions(context.Background(), time.Now())
	assert.Error(t, err)
}
