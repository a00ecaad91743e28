package executing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	shopadsmocks "github.com/vfg2006/ads-automation-api/infrastructure/integrator/shopads/mocks"
	telegrammocks "github.com/vfg2006/ads-automation-api/infrastructure/integrator/telegram/mocks"
	"github.com/vfg2006/ads-automation-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-automation-api/internal/domain"
	"github.com/vfg2006/ads-automation-api/internal/usecases/evaluating"
	"go.uber.org/mock/gomock"
)

func floatPtr(f float64) *float64 { return &f }

func activeStore(id string) *domain.Store {
	token := "SPC_SI=abc"
	return &domain.Store{
		ID:           id,
		UserID:       "user-1",
		Name:         "Loja " + id,
		SessionToken: &token,
		Status:       "active",
	}
}

func pauseLowROIRule() *domain.AutomationRule {
	return &domain.AutomationRule{
		ID:            "rule-1",
		UserID:        "user-1",
		Name:          "Pausar campanhas com ROI baixo",
		Status:        domain.RuleStatusActive,
		ExecutionMode: domain.ExecutionModeSpecific,
		CampaignAssignments: map[string][]int64{
			"store-1": {101, 102},
		},
		Conditions: []domain.ConditionGroup{
			{
				LogicalOperator: domain.LogicalAnd,
				Conditions: []domain.Condition{
					{ID: "c1", Metric: "broad_roi", Operator: "<", Value: "1.5"},
				},
			},
		},
		Actions: []domain.Action{
			{Type: domain.ActionPause},
		},
	}
}

func TestService_ExecuteRule_PausaCampanhasAprovadas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRuleRepo := mocks.NewMockRuleRepository(ctrl)
	mockStoreRepo := mocks.NewMockStoreRepository(ctrl)
	mockExecutionRepo := mocks.NewMockRuleExecutionRepository(ctrl)
	mockIntegrator := shopadsmocks.NewMockShopAdsIntegrator(ctrl)

	service := NewService(mockRuleRepo, mockStoreRepo, mockExecutionRepo, mockIntegrator, evaluating.NewService(), nil)

	rule := pauseLowROIRule()
	now := time.Date(2024, 1, 15, 14, 0, 0, 0, time.Local) // segunda-feira

	mockStoreRepo.EXPECT().GetStoreByID("store-1").Return(activeStore("store-1"), nil)

	mockIntegrator.EXPECT().
		GetCampaignMetrics(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.Store, filters *domain.MetricsFilters) ([]*domain.CampaignMetrics, error) {
			// A janela de métricas é o dia corrente
			require.NotNil(t, filters.StartDate)
			assert.Equal(t, 0, filters.StartDate.Hour())
			assert.Equal(t, now, *filters.EndDate)

			return []*domain.CampaignMetrics{
				{CampaignID: 101, CampaignName: "Campanha A", BroadROI: floatPtr(1.2)},
				{CampaignID: 102, CampaignName: "Campanha B", BroadROI: floatPtr(2.0)},
				{CampaignID: 999, CampaignName: "Fora da regra", BroadROI: floatPtr(0.1)},
			}, nil
		})

	mockIntegrator.EXPECT().
		GetAdCreditBalance(gomock.Any(), gomock.Any()).
		Return(300.0, nil)

	// Apenas a campanha 101 passa na condição; a 999 não está atribuída
	mockIntegrator.EXPECT().
		ApplyCampaignAction(gomock.Any(), gomock.Any(), domain.ActionPause, []int64{101}, nil).
		Return(nil)

	mockRuleRepo.EXPECT().
		UpdateLastExecution("rule-1", now, 1, 0).
		Return(nil)

	var saved *domain.RuleExecution
	mockExecutionRepo.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(execution *domain.RuleExecution) error {
			saved = execution
			return nil
		})

	execution, err := service.ExecuteRule(context.Background(), rule, now)

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.NotEmpty(t, execution.ID)
	assert.Equal(t, domain.RuleExecutionStatusExecuted, execution.Status)
	assert.Equal(t, []int64{101}, execution.CampaignsMatched)
	assert.Equal(t, 1, execution.ActionsApplied)

	// Trilha de auditoria das duas campanhas atribuídas
	require.Contains(t, execution.EvaluationResults, int64(101))
	require.Contains(t, execution.EvaluationResults, int64(102))
	assert.True(t, execution.EvaluationResults[101].Passed)
	assert.False(t, execution.EvaluationResults[102].Passed)
	assert.NotContains(t, execution.EvaluationResults, int64(999))
}

func TestService_ExecuteRule_CredenciaisAusentesFalhamSemDerrubar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRuleRepo := mocks.NewMockRuleRepository(ctrl)
	mockStoreRepo := mocks.NewMockStoreRepository(ctrl)
	mockExecutionRepo := mocks.NewMockRuleExecutionRepository(ctrl)
	mockIntegrator := shopadsmocks.NewMockShopAdsIntegrator(ctrl)

	service := NewService(mockRuleRepo, mockStoreRepo, mockExecutionRepo, mockIntegrator, evaluating.NewService(), nil)

	rule := pauseLowROIRule()
	now := time.Now()

	store := activeStore("store-1")
	store.SessionToken = nil
	mockStoreRepo.EXPECT().GetStoreByID("store-1").Return(store, nil)

	// A única loja falhou: a execução conta como erro
	mockRuleRepo.EXPECT().
		UpdateLastExecution("rule-1", now, 0, 1).
		Return(nil)
	mockExecutionRepo.EXPECT().Save(gomock.Any()).Return(nil)

	execution, err := service.ExecuteRule(context.Background(), rule, now)

	require.NoError(t, err)
	assert.Equal(t, domain.RuleExecutionStatusFailed, execution.Status)
	assert.Empty(t, execution.CampaignsMatched)
	require.NotNil(t, execution.ErrorMessage)
}

func TestService_ExecuteRule_LojaSemCampanhasNaoMascaraFalha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRuleRepo := mocks.NewMockRuleRepository(ctrl)
	mockStoreRepo := mocks.NewMockStoreRepository(ctrl)
	mockExecutionRepo := mocks.NewMockRuleExecutionRepository(ctrl)
	mockIntegrator := shopadsmocks.NewMockShopAdsIntegrator(ctrl)

	service := NewService(mockRuleRepo, mockStoreRepo, mockExecutionRepo, mockIntegrator, evaluating.NewService(), nil)

	rule := pauseLowROIRule()
	rule.CampaignAssignments = map[string][]int64{
		"store-vazia": {},
		"store-1":     {101},
	}
	now := time.Now()

	// A loja sem campanhas é pulada; apenas a store-1 é processada, e falha
	store := activeStore("store-1")
	store.SessionToken = nil
	mockStoreRepo.EXPECT().GetStoreByID("store-1").Return(store, nil)

	mockRuleRepo.EXPECT().
		UpdateLastExecution("rule-1", now, 0, 1).
		Return(nil)
	mockExecutionRepo.EXPECT().Save(gomock.Any()).Return(nil)

	execution, err := service.ExecuteRule(context.Background(), rule, now)

	require.NoError(t, err)
	assert.Equal(t, domain.RuleExecutionStatusFailed, execution.Status)
}

func TestService_ExecuteRule_AjustePercentualDeOrcamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRuleRepo := mocks.NewMockRuleRepository(ctrl)
	mockStoreRepo := mocks.NewMockStoreRepository(ctrl)
	mockExecutionRepo := mocks.NewMockRuleExecutionRepository(ctrl)
	mockIntegrator := shopadsmocks.NewMockShopAdsIntegrator(ctrl)

	service := NewService(mockRuleRepo, mockStoreRepo, mockExecutionRepo, mockIntegrator, evaluating.NewService(), nil)

	rule := pauseLowROIRule()
	rule.Actions = []domain.Action{
		{Type: domain.ActionEditBudget, Value: floatPtr(-20), Unit: domain.BudgetUnitPercentage},
	}
	now := time.Now()

	mockStoreRepo.EXPECT().GetStoreByID("store-1").Return(activeStore("store-1"), nil)

	mockIntegrator.EXPECT().
		GetCampaignMetrics(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*domain.CampaignMetrics{
			{CampaignID: 101, BroadROI: floatPtr(1.0), DailyBudget: floatPtr(50.0)},
			{CampaignID: 102, BroadROI: floatPtr(1.0)}, // sem orçamento conhecido
		}, nil)
	mockIntegrator.EXPECT().GetAdCreditBalance(gomock.Any(), gomock.Any()).Return(100.0, nil)

	// Ajuste percentual usa o orçamento atual da campanha: 50 × 0,8 = 40.
	// A campanha sem orçamento conhecido é ignorada.
	mockIntegrator.EXPECT().
		ApplyCampaignAction(gomock.Any(), gomock.Any(), domain.ActionEditBudget, []int64{101}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.Store, _ domain.ActionType, _ []int64, newBudget *float64) error {
			require.NotNil(t, newBudget)
			assert.InDelta(t, 40.0, *newBudget, 0.001)
			return nil
		})

	mockRuleRepo.EXPECT().UpdateLastExecution("rule-1", now, 1, 0).Return(nil)
	mockExecutionRepo.EXPECT().Save(gomock.Any()).Return(nil)

	execution, err := service.ExecuteRule(context.Background(), rule, now)

	require.NoError(t, err)
	assert.Equal(t, 1, execution.ActionsApplied)
	assert.ElementsMatch(t, []int64{101, 102}, execution.CampaignsMatched)
}

func TestService_ExecuteRule_SaldoIndisponivelNaoZeraAdCredit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRuleRepo := mocks.NewMockRuleRepository(ctrl)
	mockStoreRepo := mocks.NewMockStoreRepository(ctrl)
	mockExecutionRepo := mocks.NewMockRuleExecutionRepository(ctrl)
	mockIntegrator := shopadsmocks.NewMockShopAdsIntegrator(ctrl)

	service := NewService(mockRuleRepo, mockStoreRepo, mockExecutionRepo, mockIntegrator, evaluating.NewService(), nil)

	rule := pauseLowROIRule()
	rule.Conditions = []domain.ConditionGroup{
		{
			LogicalOperator: domain.LogicalAnd,
			Conditions: []domain.Condition{
				{ID: "c1", Metric: "ad_credit", Operator: "<", Value: "10"},
			},
		},
	}
	now := time.Now()

	mockStoreRepo.EXPECT().GetStoreByID("store-1").Return(activeStore("store-1"), nil)
	mockIntegrator.EXPECT().
		GetCampaignMetrics(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*domain.CampaignMetrics{{CampaignID: 101}}, nil)
	mockIntegrator.EXPECT().
		GetAdCreditBalance(gomock.Any(), gomock.Any()).
		Return(0.0, assert.AnError)

	// Saldo indisponível: ad_credit fica desconhecido e a condição não passa,
	// então nenhuma ação é aplicada
	mockRuleRepo.EXPECT().UpdateLastExecution("rule-1", now, 1, 0).Return(nil)
	mockExecutionRepo.EXPECT().Save(gomock.Any()).Return(nil)

	execution, err := service.ExecuteRule(context.Background(), rule, now)

	require.NoError(t, err)
	assert.Empty(t, execution.CampaignsMatched)
	require.Contains(t, execution.EvaluationResults, int64(101))
	assert.False(t, execution.EvaluationResults[101].Passed)
	assert.Nil(t, execution.EvaluationResults[101].Evaluations[0].ActualValue)
}

func TestService_ExecuteRule_NotificaTelegramQuandoHabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRuleRepo := mocks.NewMockRuleRepository(ctrl)
	mockStoreRepo := mocks.NewMockStoreRepository(ctrl)
	mockExecutionRepo := mocks.NewMockRuleExecutionRepository(ctrl)
	mockIntegrator := shopadsmocks.NewMockShopAdsIntegrator(ctrl)
	mockNotifier := telegrammocks.NewMockNotifier(ctrl)

	service := NewService(mockRuleRepo, mockStoreRepo, mockExecutionRepo, mockIntegrator, evaluating.NewService(), mockNotifier)

	rule := pauseLowROIRule()
	rule.TelegramNotification = true
	now := time.Now()

	mockStoreRepo.EXPECT().GetStoreByID("store-1").Return(activeStore("store-1"), nil)
	mockIntegrator.EXPECT().
		GetCampaignMetrics(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*domain.CampaignMetrics{{CampaignID: 101, BroadROI: floatPtr(0.5)}}, nil)
	mockIntegrator.EXPECT().GetAdCreditBalance(gomock.Any(), gomock.Any()).Return(100.0, nil)
	mockIntegrator.EXPECT().
		ApplyCampaignAction(gomock.Any(), gomock.Any(), domain.ActionPause, []int64{101}, nil).
		Return(nil)
	mockRuleRepo.EXPECT().UpdateLastExecution("rule-1", now, 1, 0).Return(nil)
	mockExecutionRepo.EXPECT().Save(gomock.Any()).Return(nil)

	mockNotifier.EXPECT().
		NotifyRuleExecuted(gomock.Any(), "user-1", rule, gomock.Any()).
		Return(nil)

	_, err := service.ExecuteRule(context.Background(), rule, now)
	require.NoError(t, err)
}
