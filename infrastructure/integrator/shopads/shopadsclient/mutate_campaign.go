package shopadsclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	shopadsdomain "github.com/vfg2006/ads-automation-api/infrastructure/integrator/shopads/domain"
	"github.com/vfg2006/ads-automation-api/internal/domain"
)

// Operações de mutação aceitas pela plataforma
var platformOperations = map[domain.ActionType]string{
	domain.ActionPause:      "pause",
	domain.ActionResume:     "resume",
	domain.ActionStop:       "stop",
	domain.ActionEditBudget: "change_budget",
}

type requestMutateCampaigns struct {
	Operation   string  `json:"operation"`
	CampaignIDs []int64 `json:"campaign_id_list"`
	DailyBudget *int64  `json:"daily_budget,omitempty"` // micro-unidades
}

type responseMutateCampaigns struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MutateCampaigns aplica uma ação em uma ou mais campanhas da loja.
// change_budget exige o novo orçamento diário na moeda; as demais ações o
// ignoram. O sucesso segue o código de negócio da plataforma (0 = ok),
// independente do status HTTP.
func (c *ShopAdsClient) MutateCampaigns(ctx context.Context, store *domain.Store, action domain.ActionType, campaignIDs []int64, newDailyBudget *float64) error {
	if store.SessionToken == nil {
		return shopadsdomain.ErrMissingCredentials
	}

	operation, ok := platformOperations[action]
	if !ok {
		return fmt.Errorf("ação desconhecida: %s", action)
	}

	if action == domain.ActionEditBudget && newDailyBudget == nil {
		return fmt.Errorf("ação change_budget exige novo orçamento diário")
	}

	payload := requestMutateCampaigns{
		Operation:   operation,
		CampaignIDs: campaignIDs,
	}
	if newDailyBudget != nil {
		budget := int64(*newDailyBudget * float64(c.Cfg.ShopAds.BudgetUnitFactor))
		payload.DailyBudget = &budget
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/campaign/batch_edit", c.Cfg.ShopAds.BaseURL)

	body, err := c.doWithPolicies(ctx, store.ID, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
		if err != nil {
			return nil, err
		}
		withSession(req, store)
		return req, nil
	})
	if err != nil {
		return err
	}

	var response responseMutateCampaigns
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar resposta de mutação de campanhas")
		return err
	}

	if response.Code != 0 {
		return fmt.Errorf("plataforma recusou a ação %s: código %d (%s)", operation, response.Code, response.Message)
	}

	logrus.WithFields(logrus.Fields{
		"store_id":  store.ID,
		"operation": operation,
		"campaigns": len(campaignIDs),
	}).Info("Ação aplicada nas campanhas com sucesso")

	return nil
}
