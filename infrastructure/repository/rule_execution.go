package repository

import (
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-automation-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-automation-api/internal/domain"
)

const ruleExecutionsTable = "rule_executions"

type RuleExecutionRepository interface {
	Save(execution *domain.RuleExecution) error
}

type ruleExecutionRepository struct {
	conn *postgres.Connection
}

func NewRuleExecutionRepository(conn *postgres.Connection) RuleExecutionRepository {
	return &ruleExecutionRepository{
		conn: conn,
	}
}

// Save grava o registro de auditoria de uma execução de regra
func (r *ruleExecutionRepository) Save(execution *domain.RuleExecution) error {
	campaignsJSON, err := json.Marshal(execution.CampaignsMatched)
	if err != nil {
		return err
	}

	evaluationsJSON, err := json.Marshal(execution.EvaluationResults)
	if err != nil {
		return err
	}

	insertSQL, insertArgs, err := squirrel.
		Insert(ruleExecutionsTable).
		Columns("id", "rule_id", "status", "campaigns_matched", "actions_applied", "error_message", "evaluation_results", "executed_at").
		Values(
			execution.ID,
			execution.RuleID,
			execution.Status,
			campaignsJSON,
			execution.ActionsApplied,
			execution.ErrorMessage,
			evaluationsJSON,
			execution.ExecutedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.DB.Exec(insertSQL, insertArgs...)
	return err
}
