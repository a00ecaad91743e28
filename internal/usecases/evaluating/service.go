// Package evaluating implementa o interpretador de condições das regras de
// automação: grupos de condições combinados com AND/OR sobre um retrato de
// métricas de campanha.
package evaluating

import (
	"math"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-automation-api/internal/domain"
)

// EqualityEpsilon tolera arredondamentos da plataforma nas comparações de
// igualdade: "=" vale quando |atual - esperado| < epsilon
const EqualityEpsilon = 0.01

type Evaluator interface {
	Evaluate(groups []domain.ConditionGroup, metrics *domain.CampaignMetrics) *domain.EvaluationResult
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Evaluate é puro e sem efeitos colaterais. Produz a trilha completa de
// avaliações mesmo quando o curto-circuito bastaria, para que o chamador
// consiga explicar por que a regra disparou ou não.
//
// Uma lista vazia de grupos nunca passa: uma regra precisa de pelo menos um
// grupo explícito para executar suas ações. Um grupo com lista de condições
// vazia, por outro lado, passa vacuosamente.
func (s *Service) Evaluate(groups []domain.ConditionGroup, metrics *domain.CampaignMetrics) *domain.EvaluationResult {
	result := &domain.EvaluationResult{
		Evaluations: make([]domain.EvaluationDetail, 0),
	}

	if len(groups) == 0 {
		result.Passed = false
		return result
	}

	passed := true
	for _, group := range groups {
		groupPassed := s.evaluateGroup(group, metrics, result)
		// Entre grupos a combinação é sempre AND
		passed = passed && groupPassed
	}

	result.Passed = passed
	return result
}

func (s *Service) evaluateGroup(group domain.ConditionGroup, metrics *domain.CampaignMetrics, result *domain.EvaluationResult) bool {
	if len(group.Conditions) == 0 {
		// Grupo vazio é um portão vacuosamente verdadeiro
		return true
	}

	allMet := true
	anyMet := false

	for _, condition := range group.Conditions {
		detail := s.evaluateCondition(condition, metrics)
		result.Evaluations = append(result.Evaluations, detail)
		result.TotalConditions++

		allMet = allMet && detail.Met
		anyMet = anyMet || detail.Met
	}

	if group.LogicalOperator == domain.LogicalOr {
		return anyMet
	}
	return allMet
}

// evaluateCondition nunca retorna erro: métrica desconhecida, métrica ausente
// no retrato, operador desconhecido ou valor não numérico tornam a condição
// falsa e são registrados como erro de configuração.
func (s *Service) evaluateCondition(condition domain.Condition, metrics *domain.CampaignMetrics) domain.EvaluationDetail {
	detail := domain.EvaluationDetail{
		ID:            condition.ID,
		Metric:        condition.Metric,
		Operator:      condition.Operator,
		ExpectedValue: condition.Value,
	}

	metric, ok := domain.ParseMetric(condition.Metric)
	if !ok {
		logrus.WithFields(logrus.Fields{
			"condition_id": condition.ID,
			"metric":       condition.Metric,
		}).Warn("Avaliação de condição: métrica desconhecida")
		return detail
	}

	operator, ok := domain.ParseOperator(condition.Operator)
	if !ok {
		logrus.WithFields(logrus.Fields{
			"condition_id": condition.ID,
			"operator":     condition.Operator,
		}).Warn("Avaliação de condição: operador desconhecido")
		return detail
	}

	expected, err := strconv.ParseFloat(condition.Value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"condition_id": condition.ID,
			"value":        condition.Value,
		}).Warn("Avaliação de condição: valor de comparação não numérico")
		return detail
	}

	actual := metrics.MetricValue(metric)
	if actual == nil {
		// Métrica ausente no retrato é "desconhecida", nunca zero
		logrus.WithFields(logrus.Fields{
			"condition_id": condition.ID,
			"metric":       condition.Metric,
			"campaign_id":  metrics.CampaignID,
		}).Debug("Avaliação de condição: métrica ausente no retrato da campanha")
		return detail
	}

	detail.ActualValue = actual
	detail.Met = compare(*actual, expected, operator)
	return detail
}

func compare(actual, expected float64, operator domain.Operator) bool {
	switch operator {
	case domain.OperatorGreater:
		return actual > expected
	case domain.OperatorLess:
		return actual < expected
	case domain.OperatorGreaterEqual:
		return actual >= expected
	case domain.OperatorLessEqual:
		return actual <= expected
	case domain.OperatorEqual:
		return math.Abs(actual-expected) < EqualityEpsilon
	case domain.OperatorNotEqual:
		return math.Abs(actual-expected) >= EqualityEpsilon
	}
	return false
}
