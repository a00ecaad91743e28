package shopadsclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	shopadsdomain "github.com/vfg2006/ads-automation-api/infrastructure/integrator/shopads/domain"
	"github.com/vfg2006/ads-automation-api/internal/domain"
)

type responseWallet struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		TotalBalance int64 `json:"total_balance"` // micro-unidades da moeda
	} `json:"data"`
}

// GetAdCreditBalance lê o saldo de créditos de anúncio da loja, já convertido
// de micro-unidades para a moeda
func (c *ShopAdsClient) GetAdCreditBalance(ctx context.Context, store *domain.Store) (float64, error) {
	if store.SessionToken == nil {
		return 0, shopadsdomain.ErrMissingCredentials
	}

	endpoint := fmt.Sprintf("%s/account/balance", c.Cfg.ShopAds.BaseURL)

	body, err := c.doWithPolicies(ctx, store.ID, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		withSession(req, store)
		return req, nil
	})
	if err != nil {
		return 0, err
	}

	var response responseWallet
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar saldo de créditos")
		return 0, err
	}

	if response.Code != 0 {
		return 0, fmt.Errorf("plataforma recusou leitura de saldo: código %d (%s)", response.Code, response.Message)
	}

	divisor := c.Cfg.ShopAds.AdCreditDivisor
	if divisor <= 0 {
		divisor = 1
	}

	return float64(response.Data.TotalBalance) / float64(divisor), nil
}
