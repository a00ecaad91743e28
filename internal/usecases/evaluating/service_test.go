package evaluating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-automation-api/internal/domain"
)

func floatPtr(f float64) *float64 {
	return &f
}

func metricsFixture() *domain.CampaignMetrics {
	return &domain.CampaignMetrics{
		CampaignID:   12345,
		CampaignName: "Campanha Teste",
		GMV:          floatPtr(1500.0),
		Orders:       floatPtr(12),
		BroadROI:     floatPtr(1.2),
		Clicks:       floatPtr(340),
		Cost:         floatPtr(125.5),
		CPC:          floatPtr(0.37),
		Impressions:  floatPtr(10000),
	}
}

func TestService_Evaluate_EmptyGroupsNeverPass(t *testing.T) {
	service := NewService()

	result := service.Evaluate([]domain.ConditionGroup{}, metricsFixture())

	assert.False(t, result.Passed)
	assert.Equal(t, 0, result.TotalConditions)
	assert.Empty(t, result.Evaluations)
}

func TestService_Evaluate_EmptyConditionsInGroupIsVacuouslyTrue(t *testing.T) {
	service := NewService()

	groups := []domain.ConditionGroup{
		{LogicalOperator: domain.LogicalAnd, Conditions: []domain.Condition{}},
		{LogicalOperator: domain.LogicalOr, Conditions: []domain.Condition{}},
	}

	result := service.Evaluate(groups, metricsFixture())

	assert.True(t, result.Passed)
	assert.Equal(t, 0, result.TotalConditions)
}

func TestService_Evaluate_EqualityEpsilon(t *testing.T) {
	service := NewService()

	tests := []struct {
		name     string
		actual   float64
		operator string
		value    string
		wantMet  bool
	}{
		{
			name:     "igualdade dentro do epsilon passa",
			actual:   10.005,
			operator: "=",
			value:    "10",
			wantMet:  true,
		},
		{
			name:     "igualdade fora do epsilon falha",
			actual:   10.02,
			operator: "=",
			value:    "10",
			wantMet:  false,
		},
		{
			name:     "diferença fora do epsilon passa",
			actual:   10.02,
			operator: "!=",
			value:    "10",
			wantMet:  true,
		},
		{
			name:     "diferença dentro do epsilon falha",
			actual:   10.005,
			operator: "!=",
			value:    "10",
			wantMet:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := &domain.CampaignMetrics{GMV: floatPtr(tt.actual)}
			groups := []domain.ConditionGroup{
				{
					LogicalOperator: domain.LogicalAnd,
					Conditions: []domain.Condition{
						{ID: "c1", Metric: "gmv", Operator: tt.operator, Value: tt.value},
					},
				},
			}

			result := service.Evaluate(groups, metrics)

			require.Len(t, result.Evaluations, 1)
			assert.Equal(t, tt.wantMet, result.Evaluations[0].Met)
			assert.Equal(t, tt.wantMet, result.Passed)
		})
	}
}

func TestService_Evaluate_OperatorAliases(t *testing.T) {
	service := NewService()
	metrics := metricsFixture()

	tests := []struct {
		name      string
		condition domain.Condition
		wantMet   bool
	}{
		{
			name:      "alias por extenso greater_than",
			condition: domain.Condition{ID: "c1", Metric: "clicks", Operator: "greater_than", Value: "100"},
			wantMet:   true,
		},
		{
			name:      "alias lte",
			condition: domain.Condition{ID: "c2", Metric: "broad_roi", Operator: "lte", Value: "1.2"},
			wantMet:   true,
		},
		{
			name:      "símbolo menor que",
			condition: domain.Condition{ID: "c3", Metric: "broad_roi", Operator: "<", Value: "1.5"},
			wantMet:   true,
		},
		{
			name:      "operador desconhecido falha sem lançar erro",
			condition: domain.Condition{ID: "c4", Metric: "clicks", Operator: "~", Value: "100"},
			wantMet:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := []domain.ConditionGroup{
				{LogicalOperator: domain.LogicalAnd, Conditions: []domain.Condition{tt.condition}},
			}

			result := service.Evaluate(groups, metrics)

			require.Len(t, result.Evaluations, 1)
			assert.Equal(t, tt.wantMet, result.Evaluations[0].Met)
		})
	}
}

func TestService_Evaluate_UnknownOrAbsentMetricFailsCondition(t *testing.T) {
	service := NewService()

	groups := []domain.ConditionGroup{
		{
			LogicalOperator: domain.LogicalAnd,
			Conditions: []domain.Condition{
				{ID: "c1", Metric: "metrica_inexistente", Operator: ">", Value: "1"},
				{ID: "c2", Metric: "views", Operator: ">", Value: "1"}, // ausente no retrato
			},
		},
	}

	result := service.Evaluate(groups, metricsFixture())

	require.Len(t, result.Evaluations, 2)
	assert.False(t, result.Passed)
	assert.False(t, result.Evaluations[0].Met)
	assert.Nil(t, result.Evaluations[0].ActualValue)
	assert.False(t, result.Evaluations[1].Met)
	assert.Nil(t, result.Evaluations[1].ActualValue)
}

func TestService_Evaluate_NonNumericValueFailsCondition(t *testing.T) {
	service := NewService()

	groups := []domain.ConditionGroup{
		{
			LogicalOperator: domain.LogicalAnd,
			Conditions: []domain.Condition{
				{ID: "c1", Metric: "gmv", Operator: ">", Value: "abc"},
			},
		},
	}

	result := service.Evaluate(groups, metricsFixture())

	require.Len(t, result.Evaluations, 1)
	assert.False(t, result.Passed)
	assert.False(t, result.Evaluations[0].Met)
}

func TestService_Evaluate_GroupCombination(t *testing.T) {
	service := NewService()
	metrics := metricsFixture()

	tests := []struct {
		name       string
		groups     []domain.ConditionGroup
		wantPassed bool
		wantTotal  int
	}{
		{
			name: "OR passa com uma condição verdadeira",
			groups: []domain.ConditionGroup{
				{
					LogicalOperator: domain.LogicalOr,
					Conditions: []domain.Condition{
						{ID: "c1", Metric: "broad_roi", Operator: ">", Value: "5"},
						{ID: "c2", Metric: "clicks", Operator: ">", Value: "100"},
					},
				},
			},
			wantPassed: true,
			wantTotal:  2,
		},
		{
			name: "AND falha com uma condição falsa",
			groups: []domain.ConditionGroup{
				{
					LogicalOperator: domain.LogicalAnd,
					Conditions: []domain.Condition{
						{ID: "c1", Metric: "broad_roi", Operator: ">", Value: "5"},
						{ID: "c2", Metric: "clicks", Operator: ">", Value: "100"},
					},
				},
			},
			wantPassed: false,
			wantTotal:  2,
		},
		{
			name: "grupos combinam com AND implícito",
			groups: []domain.ConditionGroup{
				{
					LogicalOperator: domain.LogicalOr,
					Conditions: []domain.Condition{
						{ID: "c1", Metric: "clicks", Operator: ">", Value: "100"},
					},
				},
				{
					LogicalOperator: domain.LogicalAnd,
					Conditions: []domain.Condition{
						{ID: "c2", Metric: "broad_roi", Operator: ">", Value: "5"},
					},
				},
			},
			wantPassed: false,
			wantTotal:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := service.Evaluate(tt.groups, metrics)

			assert.Equal(t, tt.wantPassed, result.Passed)
			assert.Equal(t, tt.wantTotal, result.TotalConditions)
			// A trilha de auditoria é completa mesmo quando o curto-circuito bastaria
			assert.Len(t, result.Evaluations, tt.wantTotal)
		})
	}
}
