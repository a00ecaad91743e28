// Package executing orquestra a execução de uma regra de automação: resolve
// credenciais da loja, lê métricas da plataforma, avalia as condições por
// campanha e aplica as ações nas campanhas aprovadas.
package executing

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-automation-api/infrastructure/integrator/shopads"
	shopadsdomain "github.com/vfg2006/ads-automation-api/infrastructure/integrator/shopads/domain"
	"github.com/vfg2006/ads-automation-api/infrastructure/integrator/telegram"
	"github.com/vfg2006/ads-automation-api/infrastructure/repository"
	"github.com/vfg2006/ads-automation-api/internal/domain"
	"github.com/vfg2006/ads-automation-api/internal/usecases/evaluating"
	"github.com/vfg2006/ads-automation-api/pkg/utils"
)

type Executor interface {
	ExecuteRule(ctx context.Context, rule *domain.AutomationRule, now time.Time) (*domain.RuleExecution, error)
}

type Service struct {
	ruleRepo      repository.RuleRepository
	storeRepo     repository.StoreRepository
	executionRepo repository.RuleExecutionRepository
	integrator    shopads.ShopAdsIntegrator
	evaluator     evaluating.Evaluator
	notifier      telegram.Notifier
}

func NewService(
	ruleRepo repository.RuleRepository,
	storeRepo repository.StoreRepository,
	executionRepo repository.RuleExecutionRepository,
	integrator shopads.ShopAdsIntegrator,
	evaluator evaluating.Evaluator,
	notifier telegram.Notifier,
) *Service {
	return &Service{
		ruleRepo:      ruleRepo,
		storeRepo:     storeRepo,
		executionRepo: executionRepo,
		integrator:    integrator,
		evaluator:     evaluator,
		notifier:      notifier,
	}
}

// ExecuteRule processa todas as lojas atribuídas à regra. Uma loja com
// problema (credenciais ausentes, plataforma fora do ar) não impede as
// demais: o erro é contabilizado e a execução segue. Ao final o desfecho é
// gravado na regra e no registro de auditoria, mesmo quando tudo falha.
func (s *Service) ExecuteRule(ctx context.Context, rule *domain.AutomationRule, now time.Time) (*domain.RuleExecution, error) {
	logrus.WithFields(logrus.Fields{
		"rule_id":   rule.ID,
		"rule_name": rule.Name,
		"stores":    len(rule.CampaignAssignments),
	}).Info("Iniciando execução da regra")

	execution := &domain.RuleExecution{
		RuleID:            rule.ID,
		Status:            domain.RuleExecutionStatusExecuted,
		CampaignsMatched:  make([]int64, 0),
		EvaluationResults: make(map[int64]*domain.EvaluationResult),
		ExecutedAt:        now,
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	execution.ID = id

	var storesProcessed, storeErrors int
	for storeID, campaignIDs := range rule.CampaignAssignments {
		if len(campaignIDs) == 0 {
			continue
		}
		storesProcessed++

		if err := s.executeForStore(ctx, rule, storeID, campaignIDs, now, execution); err != nil {
			storeErrors++
			message := err.Error()
			execution.ErrorMessage = &message
			logrus.WithFields(logrus.Fields{
				"rule_id":  rule.ID,
				"store_id": storeID,
				"error":    message,
			}).Error("Erro ao executar regra para a loja")
		}
	}

	// Lojas sem campanha atribuída não contam: a execução só falha quando
	// todas as lojas efetivamente processadas falharam
	successDelta, errorDelta := 1, 0
	if storesProcessed > 0 && storeErrors == storesProcessed {
		execution.Status = domain.RuleExecutionStatusFailed
		successDelta, errorDelta = 0, 1
	}

	// A regra conta como executada mesmo quando nenhuma campanha passou nas
	// condições: o agendamento foi honrado e não deve disparar de novo
	if err := s.ruleRepo.UpdateLastExecution(rule.ID, now, successDelta, errorDelta); err != nil {
		logrus.WithFields(logrus.Fields{
			"rule_id": rule.ID,
			"error":   err.Error(),
		}).Error("Erro ao gravar desfecho da execução na regra")
	}

	if err := s.executionRepo.Save(execution); err != nil {
		logrus.WithFields(logrus.Fields{
			"rule_id": rule.ID,
			"error":   err.Error(),
		}).Error("Erro ao gravar registro de auditoria da execução")
	}

	s.notify(ctx, rule, execution)

	logrus.WithFields(logrus.Fields{
		"rule_id":           rule.ID,
		"status":            execution.Status,
		"campaigns_matched": len(execution.CampaignsMatched),
		"actions_applied":   execution.ActionsApplied,
	}).Info("Execução da regra concluída")

	return execution, nil
}

func (s *Service) executeForStore(
	ctx context.Context,
	rule *domain.AutomationRule,
	storeID string,
	campaignIDs []int64,
	now time.Time,
	execution *domain.RuleExecution,
) error {
	store, err := s.storeRepo.GetStoreByID(storeID)
	if err != nil {
		return err
	}
	if store == nil {
		return fmt.Errorf("loja %s não encontrada", storeID)
	}
	if store.SessionToken == nil {
		// Credenciais expiradas não derrubam a execução das outras lojas
		return shopadsdomain.ErrMissingCredentials
	}

	metrics, err := s.collectMetrics(ctx, store, now)
	if err != nil {
		return err
	}

	assigned := make(map[int64]bool, len(campaignIDs))
	for _, campaignID := range campaignIDs {
		assigned[campaignID] = true
	}

	matched := make([]*domain.CampaignMetrics, 0)
	for _, campaign := range metrics {
		if !assigned[campaign.CampaignID] {
			continue
		}

		result := s.evaluator.Evaluate(rule.Conditions, campaign)
		execution.EvaluationResults[campaign.CampaignID] = result

		if result.Passed {
			matched = append(matched, campaign)
			execution.CampaignsMatched = append(execution.CampaignsMatched, campaign.CampaignID)
		}
	}

	if len(matched) == 0 {
		logrus.WithFields(logrus.Fields{
			"rule_id":  rule.ID,
			"store_id": storeID,
		}).Debug("Nenhuma campanha da loja passou nas condições da regra")
		return nil
	}

	return s.applyActions(ctx, rule, store, matched, execution)
}

// collectMetrics lê o retrato do dia corrente e injeta o saldo de créditos da
// conta em todas as campanhas, já que ad_credit é uma métrica por loja
func (s *Service) collectMetrics(ctx context.Context, store *domain.Store, now time.Time) ([]*domain.CampaignMetrics, error) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	filters := &domain.MetricsFilters{
		StartDate: &startOfDay,
		EndDate:   &now,
	}

	metrics, err := s.integrator.GetCampaignMetrics(ctx, store, filters)
	if err != nil {
		return nil, err
	}

	balance, err := s.integrator.GetAdCreditBalance(ctx, store)
	if err != nil {
		// Saldo indisponível deixa ad_credit desconhecido, não zera
		logrus.WithFields(logrus.Fields{
			"store_id": store.ID,
			"error":    err.Error(),
		}).Warn("Erro ao obter saldo de créditos, métrica ad_credit ficará ausente")
		return metrics, nil
	}

	for _, campaign := range metrics {
		value := balance
		campaign.AdCredit = &value
	}

	return metrics, nil
}

func (s *Service) applyActions(
	ctx context.Context,
	rule *domain.AutomationRule,
	store *domain.Store,
	matched []*domain.CampaignMetrics,
	execution *domain.RuleExecution,
) error {
	campaignIDs := make([]int64, 0, len(matched))
	for _, campaign := range matched {
		campaignIDs = append(campaignIDs, campaign.CampaignID)
	}

	var lastErr error
	for _, action := range rule.Actions {
		switch action.Type {
		case domain.ActionPause, domain.ActionResume, domain.ActionStop:
			if err := s.integrator.ApplyCampaignAction(ctx, store, action.Type, campaignIDs, nil); err != nil {
				lastErr = err
				continue
			}
			execution.ActionsApplied += len(campaignIDs)

		case domain.ActionEditBudget:
			applied, err := s.applyBudgetAction(ctx, store, action, matched)
			execution.ActionsApplied += applied
			if err != nil {
				lastErr = err
			}

		default:
			logrus.WithFields(logrus.Fields{
				"rule_id": rule.ID,
				"action":  action.Type,
			}).Warn("Regra com ação desconhecida, ignorada")
		}
	}

	return lastErr
}

// applyBudgetAction calcula o novo orçamento diário por campanha. O ajuste
// percentual depende do orçamento atual de cada campanha, então cada uma
// recebe sua própria chamada de mutação.
func (s *Service) applyBudgetAction(
	ctx context.Context,
	store *domain.Store,
	action domain.Action,
	matched []*domain.CampaignMetrics,
) (int, error) {
	if action.Value == nil {
		return 0, fmt.Errorf("ação edit_budget sem valor configurado")
	}

	var applied int
	var lastErr error

	for _, campaign := range matched {
		var newBudget float64

		switch action.Unit {
		case domain.BudgetUnitPercentage:
			if campaign.DailyBudget == nil {
				logrus.WithFields(logrus.Fields{
					"store_id":    store.ID,
					"campaign_id": campaign.CampaignID,
				}).Warn("Campanha sem orçamento diário conhecido, ajuste percentual ignorado")
				continue
			}
			newBudget = utils.RoundWithTwoDecimalPlace(*campaign.DailyBudget * (1 + *action.Value/100))
		default:
			newBudget = *action.Value
		}

		if newBudget <= 0 {
			logrus.WithFields(logrus.Fields{
				"store_id":    store.ID,
				"campaign_id": campaign.CampaignID,
				"new_budget":  newBudget,
			}).Warn("Novo orçamento diário inválido, ajuste ignorado")
			continue
		}

		if err := s.integrator.ApplyCampaignAction(ctx, store, domain.ActionEditBudget, []int64{campaign.CampaignID}, &newBudget); err != nil {
			lastErr = err
			continue
		}
		applied++
	}

	return applied, lastErr
}

func (s *Service) notify(ctx context.Context, rule *domain.AutomationRule, execution *domain.RuleExecution) {
	if !rule.TelegramNotification || s.notifier == nil {
		return
	}
	if len(execution.CampaignsMatched) == 0 {
		return
	}

	if err := s.notifier.NotifyRuleExecuted(ctx, rule.UserID, rule, execution); err != nil {
		logrus.WithFields(logrus.Fields{
			"rule_id": rule.ID,
			"error":   err.Error(),
		}).Warn("Erro ao notificar execução da regra no Telegram")
	}
}
