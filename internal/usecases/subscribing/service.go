// Package subscribing implementa a verificação diária de assinaturas perto do
// vencimento, avisando os usuários pelo Telegram.
package subscribing

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-automation-api/infrastructure/integrator/telegram"
	"github.com/vfg2006/ads-automation-api/infrastructure/repository"
)

// ExpiryWarningWindow define com quantos dias de antecedência o aviso de
// vencimento é enviado
const ExpiryWarningWindow = 3 * 24 * time.Hour

type Checker interface {
	CheckExpiringSubscriptions(ctx context.Context, now time.Time) error
}

type Service struct {
	subscriptionRepo repository.SubscriptionRepository
	notifier         telegram.Notifier
}

func NewService(subscriptionRepo repository.SubscriptionRepository, notifier telegram.Notifier) *Service {
	return &Service{
		subscriptionRepo: subscriptionRepo,
		notifier:         notifier,
	}
}

// CheckExpiringSubscriptions avisa os usuários cujas assinaturas vencem dentro
// da janela de antecedência. Falha em um aviso não impede os demais.
func (s *Service) CheckExpiringSubscriptions(ctx context.Context, now time.Time) error {
	limit := now.Add(ExpiryWarningWindow)

	subscriptions, err := s.subscriptionRepo.ListExpiringUntil(limit)
	if err != nil {
		return err
	}

	if len(subscriptions) == 0 {
		logrus.Debug("Nenhuma assinatura perto do vencimento")
		return nil
	}

	logrus.WithField("subscriptions", len(subscriptions)).
		Info("Assinaturas perto do vencimento, enviando avisos")

	for _, subscription := range subscriptions {
		if err := s.notifier.NotifySubscriptionExpiring(ctx, subscription); err != nil {
			logrus.WithFields(logrus.Fields{
				"subscription_id": subscription.ID,
				"user_id":         subscription.UserID,
				"error":           err.Error(),
			}).Warn("Erro ao avisar vencimento de assinatura")
		}
	}

	return nil
}
