package domain

import "time"

// CampaignMetrics é um retrato pontual do desempenho de uma campanha.
// Campos ausentes ou não numéricos na resposta da plataforma ficam nil
// ("desconhecido"), nunca zero.
type CampaignMetrics struct {
	CampaignID   int64
	CampaignName string

	GMV         *float64
	Orders      *float64
	BroadROI    *float64
	Clicks      *float64
	Cost        *float64
	CPC         *float64
	CTR         *float64
	Impressions *float64
	Views       *float64
	CPM         *float64
	AdCredit    *float64
	DailyBudget *float64
}

// MetricValue resolve uma métrica da enumeração fechada para o valor do
// retrato. nil significa métrica desconhecida neste retrato.
func (m *CampaignMetrics) MetricValue(metric Metric) *float64 {
	switch metric {
	case MetricGMV:
		return m.GMV
	case MetricOrders:
		return m.Orders
	case MetricBroadROI:
		return m.BroadROI
	case MetricClicks:
		return m.Clicks
	case MetricCost:
		return m.Cost
	case MetricCPC:
		return m.CPC
	case MetricCTR:
		return m.CTR
	case MetricImpressions:
		return m.Impressions
	case MetricViews:
		return m.Views
	case MetricCPM:
		return m.CPM
	case MetricAdCredit:
		return m.AdCredit
	case MetricDailyBudget:
		return m.DailyBudget
	}
	return nil
}

// MetricsFilters delimita a janela de tempo da leitura de métricas
type MetricsFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}
