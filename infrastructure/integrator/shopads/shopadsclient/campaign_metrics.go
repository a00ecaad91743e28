package shopadsclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	shopadsdomain "github.com/vfg2006/ads-automation-api/infrastructure/integrator/shopads/domain"
	"github.com/vfg2006/ads-automation-api/internal/domain"
)

type responseCampaignList struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		EntryList []shopadsdomain.CampaignEntry `json:"entry_list"`
		Paging    shopadsdomain.Paging          `json:"paging"`
	} `json:"data"`
}

// GetCampaignMetrics lê as métricas de todas as campanhas da loja para a
// janela de tempo dos filtros, já normalizadas para o formato interno
func (c *ShopAdsClient) GetCampaignMetrics(ctx context.Context, store *domain.Store, filters *domain.MetricsFilters) ([]*domain.CampaignMetrics, error) {
	if store.SessionToken == nil {
		return nil, shopadsdomain.ErrMissingCredentials
	}

	params := url.Values{}
	params.Add("placement", "all")
	if filters != nil && filters.StartDate != nil {
		params.Add("start_time", strconv.FormatInt(filters.StartDate.Unix(), 10))
	}
	if filters != nil && filters.EndDate != nil {
		params.Add("end_time", strconv.FormatInt(filters.EndDate.Unix(), 10))
	}

	endpoint := fmt.Sprintf("%s/campaign/list?%s", c.Cfg.ShopAds.BaseURL, params.Encode())

	body, err := c.doWithPolicies(ctx, store.ID, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		withSession(req, store)
		return req, nil
	})
	if err != nil {
		return nil, err
	}

	var response responseCampaignList
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar listagem de campanhas")
		return nil, err
	}

	if response.Code != 0 {
		return nil, fmt.Errorf("plataforma recusou listagem de campanhas: código %d (%s)", response.Code, response.Message)
	}

	metrics := make([]*domain.CampaignMetrics, 0, len(response.Data.EntryList))
	for _, entry := range response.Data.EntryList {
		metrics = append(metrics, shopadsdomain.NormalizeEntry(entry, c.Cfg.ShopAds.BudgetUnitFactor))
	}

	logrus.WithFields(logrus.Fields{
		"store_id":  store.ID,
		"campaigns": len(metrics),
	}).Debug("Métricas de campanha obtidas da plataforma")

	return metrics, nil
}
