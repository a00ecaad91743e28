package domain

import "strings"

// LogicalOperator combina as condições dentro de um grupo
type LogicalOperator string

const (
	LogicalAnd LogicalOperator = "AND"
	LogicalOr  LogicalOperator = "OR"
)

// ConditionGroup é um conjunto de condições combinadas com AND/OR.
// Entre grupos a combinação é sempre AND: todos os grupos precisam passar.
type ConditionGroup struct {
	LogicalOperator LogicalOperator `json:"logicalOperator"`
	Conditions      []Condition     `json:"conditions"`
}

// Condition compara uma métrica da campanha com um valor numérico
type Condition struct {
	ID       string `json:"id"`
	Metric   string `json:"metric"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// Metric enumera as métricas suportadas pelo avaliador de condições
type Metric string

const (
	MetricGMV         Metric = "gmv"
	MetricOrders      Metric = "orders"
	MetricBroadROI    Metric = "broad_roi"
	MetricClicks      Metric = "clicks"
	MetricCost        Metric = "cost"
	MetricCPC         Metric = "cpc"
	MetricCTR         Metric = "ctr"
	MetricImpressions Metric = "impressions"
	MetricViews       Metric = "views"
	MetricCPM         Metric = "cpm"
	MetricAdCredit    Metric = "ad_credit"
	MetricDailyBudget Metric = "daily_budget"
)

// ParseMetric resolve o nome de uma métrica para a enumeração fechada.
// Nomes desconhecidos retornam ok=false e nunca são tratados como zero.
func ParseMetric(name string) (Metric, bool) {
	switch Metric(strings.ToLower(strings.TrimSpace(name))) {
	case MetricGMV:
		return MetricGMV, true
	case MetricOrders:
		return MetricOrders, true
	case MetricBroadROI:
		return MetricBroadROI, true
	case MetricClicks:
		return MetricClicks, true
	case MetricCost:
		return MetricCost, true
	case MetricCPC:
		return MetricCPC, true
	case MetricCTR:
		return MetricCTR, true
	case MetricImpressions:
		return MetricImpressions, true
	case MetricViews:
		return MetricViews, true
	case MetricCPM:
		return MetricCPM, true
	case MetricAdCredit:
		return MetricAdCredit, true
	case MetricDailyBudget:
		return MetricDailyBudget, true
	}
	return "", false
}

// Operator enumera os operadores de comparação suportados
type Operator string

const (
	OperatorGreater      Operator = ">"
	OperatorLess         Operator = "<"
	OperatorGreaterEqual Operator = ">="
	OperatorLessEqual    Operator = "<="
	OperatorEqual        Operator = "="
	OperatorNotEqual     Operator = "!="
)

// ParseOperator aceita tanto os símbolos quanto os aliases por extenso
// usados em regras antigas
func ParseOperator(op string) (Operator, bool) {
	switch strings.ToLower(strings.TrimSpace(op)) {
	case ">", "gt", "greater_than":
		return OperatorGreater, true
	case "<", "lt", "less_than":
		return OperatorLess, true
	case ">=", "gte", "greater_than_or_equal":
		return OperatorGreaterEqual, true
	case "<=", "lte", "less_than_or_equal":
		return OperatorLessEqual, true
	case "=", "==", "eq", "equal":
		return OperatorEqual, true
	case "!=", "<>", "neq", "not_equal":
		return OperatorNotEqual, true
	}
	return "", false
}

// EvaluationDetail registra o resultado de uma condição individual,
// mesmo quando o curto-circuito tornaria a avaliação desnecessária
type EvaluationDetail struct {
	ID            string   `json:"id"`
	Metric        string   `json:"metric"`
	Operator      string   `json:"operator"`
	ExpectedValue string   `json:"expectedValue"`
	ActualValue   *float64 `json:"actualValue"`
	Met           bool     `json:"met"`
}

// EvaluationResult é o veredito completo da avaliação de uma regra
// para uma campanha, com trilha de auditoria por condição
type EvaluationResult struct {
	Passed          bool               `json:"passed"`
	TotalConditions int                `json:"totalConditions"`
	Evaluations     []EvaluationDetail `json:"evaluations"`
}
