package shopadsclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-automation-api/internal/config"
	"github.com/vfg2006/ads-automation-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetCampaignMetrics(ctx context.Context, store *domain.Store, filters *domain.MetricsFilters) ([]*domain.CampaignMetrics, error)
	GetAdCreditBalance(ctx context.Context, store *domain.Store) (float64, error)
	MutateCampaigns(ctx context.Context, store *domain.Store, action domain.ActionType, campaignIDs []int64, newDailyBudget *float64) error
}

// ShopAdsClient fala com a plataforma de anúncios aplicando três políticas em
// toda chamada, de leitura ou de mutação: limite de requisições por loja,
// timeout por tentativa e novas tentativas com atraso linear crescente.
type ShopAdsClient struct {
	Cfg        *config.Config
	limiter    *RateLimiter
	httpClient *http.Client
	maxRetries int
	baseDelay  time.Duration
	timeout    time.Duration
}

func NewClient(cfg *config.Config) Client {
	return &ShopAdsClient{
		Cfg:        cfg,
		limiter:    NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window()),
		httpClient: &http.Client{},
		maxRetries: cfg.Retry.MaxRetries,
		baseDelay:  cfg.Retry.BaseDelay(),
		timeout:    cfg.ShopAds.Timeout(),
	}
}

// requestBuilder monta a requisição de uma tentativa. Recebe o contexto já
// limitado pelo timeout da tentativa.
type requestBuilder func(ctx context.Context) (*http.Request, error)

// doWithPolicies funila toda chamada à plataforma: adquire orçamento no
// limitador da loja, executa a tentativa com timeout próprio e, em caso de
// falha (rede, status não-2xx ou timeout), espera tentativa×atraso_base antes
// de tentar de novo, até o máximo configurado
func (c *ShopAdsClient) doWithPolicies(ctx context.Context, storeID string, build requestBuilder) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Acquire(ctx, storeID); err != nil {
			return nil, err
		}

		body, err := c.doAttempt(ctx, build)
		if err == nil {
			return body, nil
		}
		lastErr = err

		logrus.WithFields(logrus.Fields{
			"store_id": storeID,
			"attempt":  attempt,
			"error":    err.Error(),
		}).Warn("Chamada à plataforma de anúncios falhou")

		if attempt < c.maxRetries {
			delay := time.Duration(attempt) * c.baseDelay
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}
	}

	return nil, fmt.Errorf("chamada à plataforma falhou após %d tentativas: %w", c.maxRetries, lastErr)
}

func (c *ShopAdsClient) doAttempt(ctx context.Context, build requestBuilder) ([]byte, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := build(attemptCtx)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("plataforma respondeu status %d: %s", resp.StatusCode, truncate(body, 200))
	}

	return body, nil
}

// withSession aplica o cookie de sessão da loja na requisição
func withSession(req *http.Request, store *domain.Store) {
	req.Header.Set("Content-Type", "application/json")
	if store.SessionToken != nil {
		req.Header.Set("Cookie", *store.SessionToken)
	}
}

func truncate(body []byte, max int) string {
	if len(body) <= max {
		return string(body)
	}
	return string(body[:max]) + "..."
}
