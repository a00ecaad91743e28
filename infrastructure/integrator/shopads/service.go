package shopads

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-automation-api/infrastructure/integrator/shopads/shopadsclient"
	"github.com/vfg2006/ads-automation-api/internal/config"
	"github.com/vfg2006/ads-automation-api/internal/domain"
)

// ShopAdsIntegrator é a fachada da plataforma de anúncios consumida pelo
// executor de regras
type ShopAdsIntegrator interface {
	GetCampaignMetrics(ctx context.Context, store *domain.Store, filters *domain.MetricsFilters) ([]*domain.CampaignMetrics, error)
	GetAdCreditBalance(ctx context.Context, store *domain.Store) (float64, error)
	ApplyCampaignAction(ctx context.Context, store *domain.Store, action domain.ActionType, campaignIDs []int64, newDailyBudget *float64) error
}

type Integrator struct {
	cfg    *config.Config
	Client shopadsclient.Client
}

func New(cfg *config.Config, client shopadsclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *Integrator) GetCampaignMetrics(ctx context.Context, store *domain.Store, filters *domain.MetricsFilters) ([]*domain.CampaignMetrics, error) {
	metrics, err := s.Client.GetCampaignMetrics(ctx, store, filters)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao obter métricas de campanha da loja %s", store.ID)
	}
	return metrics, nil
}

func (s *Integrator) GetAdCreditBalance(ctx context.Context, store *domain.Store) (float64, error) {
	balance, err := s.Client.GetAdCreditBalance(ctx, store)
	if err != nil {
		return 0, errors.Wrapf(err, "erro ao obter saldo de créditos da loja %s", store.ID)
	}
	return balance, nil
}

func (s *Integrator) ApplyCampaignAction(ctx context.Context, store *domain.Store, action domain.ActionType, campaignIDs []int64, newDailyBudget *float64) error {
	if len(campaignIDs) == 0 {
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"store_id":  store.ID,
		"action":    action,
		"campaigns": len(campaignIDs),
	}).Info("Aplicando ação nas campanhas da loja")

	if err := s.Client.MutateCampaigns(ctx, store, action, campaignIDs, newDailyBudget); err != nil {
		return errors.Wrapf(err, "erro ao aplicar ação %s na loja %s", action, store.ID)
	}
	return nil
}
