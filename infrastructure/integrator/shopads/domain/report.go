package shopadsdomain

import (
	"encoding/json"
	"strconv"

	"github.com/vfg2006/ads-automation-api/internal/domain"
)

// Os nomes dos campos do relatório variam entre versões da resposta da
// plataforma. Este adaptador normaliza o payload externo para o formato
// interno CampaignMetrics na fronteira do cliente, isolando o resto do
// sistema da deriva de esquema. Campos ausentes ou não numéricos ficam nil
// ("desconhecido"), nunca zero.
var reportFieldAliases = map[domain.Metric][]string{
	domain.MetricGMV:         {"broad_gmv", "gmv"},
	domain.MetricOrders:      {"broad_order_amount", "order_amount", "checkout"},
	domain.MetricBroadROI:    {"broad_roi", "roi"},
	domain.MetricClicks:      {"click", "clicks"},
	domain.MetricCost:        {"expense", "cost"},
	domain.MetricCPC:         {"cpc"},
	domain.MetricCTR:         {"ctr"},
	domain.MetricImpressions: {"impression", "impressions"},
	domain.MetricViews:       {"view", "views"},
	domain.MetricCPM:         {"cpm"},
}

// NormalizeEntry converte uma entrada da listagem de campanhas no retrato
// interno de métricas. budgetFactor converte o orçamento diário de
// micro-unidades para a moeda.
func NormalizeEntry(entry CampaignEntry, budgetFactor int64) *domain.CampaignMetrics {
	metrics := &domain.CampaignMetrics{
		CampaignID:   entry.Campaign.CampaignID,
		CampaignName: entry.Campaign.Name,
	}

	if entry.Campaign.DailyBudget > 0 && budgetFactor > 0 {
		budget := float64(entry.Campaign.DailyBudget) / float64(budgetFactor)
		metrics.DailyBudget = &budget
	}

	var report map[string]json.RawMessage
	if len(entry.Report) == 0 || json.Unmarshal(entry.Report, &report) != nil {
		return metrics
	}

	assign := func(target **float64, metric domain.Metric) {
		*target = resolveField(report, reportFieldAliases[metric])
	}

	assign(&metrics.GMV, domain.MetricGMV)
	assign(&metrics.Orders, domain.MetricOrders)
	assign(&metrics.BroadROI, domain.MetricBroadROI)
	assign(&metrics.Clicks, domain.MetricClicks)
	assign(&metrics.Cost, domain.MetricCost)
	assign(&metrics.CPC, domain.MetricCPC)
	assign(&metrics.CTR, domain.MetricCTR)
	assign(&metrics.Impressions, domain.MetricImpressions)
	assign(&metrics.Views, domain.MetricViews)
	assign(&metrics.CPM, domain.MetricCPM)

	return metrics
}

// resolveField tenta cada alias em ordem e devolve o primeiro valor numérico.
// Números podem vir como número JSON ou como string numérica.
func resolveField(report map[string]json.RawMessage, aliases []string) *float64 {
	for _, alias := range aliases {
		raw, ok := report[alias]
		if !ok {
			continue
		}

		var number float64
		if err := json.Unmarshal(raw, &number); err == nil {
			return &number
		}

		var text string
		if err := json.Unmarshal(raw, &text); err == nil {
			if parsed, err := strconv.ParseFloat(text, 64); err == nil {
				return &parsed
			}
		}
	}
	return nil
}
