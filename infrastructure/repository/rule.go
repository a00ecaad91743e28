package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-automation-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-automation-api/internal/domain"
)

const rulesTable = "automation_rules"

type RuleRepository interface {
	ListActiveRules() ([]*domain.AutomationRule, error)
	GetRuleByID(ruleID string) (*domain.AutomationRule, error)
	UpdateLastExecution(ruleID string, executedAt time.Time, successDelta, errorDelta int) error
}

type ruleRepository struct {
	conn *postgres.Connection
}

func NewRuleRepository(conn *postgres.Connection) RuleRepository {
	return &ruleRepository{
		conn: conn,
	}
}

const ruleColumns = "id, user_id, name, priority, status, execution_mode, " +
	"campaign_assignments, conditions, actions, selected_interval, " +
	"selected_times, selected_days, selected_dates, date_time_map, " +
	"last_executed_at, telegram_notification, success_count, error_count, created_at"

// ListActiveRules retorna todas as regras ativas ordenadas por prioridade
// (maior primeiro) e data de criação
func (r *ruleRepository) ListActiveRules() ([]*domain.AutomationRule, error) {
	rulesSQL, rulesArgs, err := squirrel.
		Select(ruleColumns).
		From(rulesTable).
		Where(squirrel.Eq{"status": domain.RuleStatusActive}).
		OrderBy("priority DESC", "created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.DB.Query(rulesSQL, rulesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	rules := make([]*domain.AutomationRule, 0)
	for rows.Next() {
		rule, err := r.deserializeRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

func (r *ruleRepository) GetRuleByID(ruleID string) (*domain.AutomationRule, error) {
	ruleSQL, ruleArgs, err := squirrel.
		Select(ruleColumns).
		From(rulesTable).
		Where(squirrel.Eq{"id": ruleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.DB.Query(ruleSQL, ruleArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, nil
	}

	return r.deserializeRule(rows)
}

// UpdateLastExecution grava o desfecho de uma execução: o timestamp e os
// contadores incrementais de sucesso/erro. Apenas o executor da própria regra
// chama este método.
func (r *ruleRepository) UpdateLastExecution(ruleID string, executedAt time.Time, successDelta, errorDelta int) error {
	updateSQL, updateArgs, err := squirrel.
		Update(rulesTable).
		Set("last_executed_at", executedAt).
		Set("success_count", squirrel.Expr("success_count + ?", successDelta)).
		Set("error_count", squirrel.Expr("error_count + ?", errorDelta)).
		Where(squirrel.Eq{"id": ruleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.DB.Exec(updateSQL, updateArgs...)
	return err
}

func (r *ruleRepository) deserializeRule(rows *sql.Rows) (*domain.AutomationRule, error) {
	rule := &domain.AutomationRule{}

	var (
		assignmentsJSON []byte
		conditionsJSON  []byte
		actionsJSON     []byte
		timesJSON       []byte
		daysJSON        []byte
		datesJSON       []byte
		dateTimeMapJSON []byte
		interval        sql.NullInt64
		lastExecutedAt  sql.NullTime
	)

	if err := rows.Scan(
		&rule.ID,
		&rule.UserID,
		&rule.Name,
		&rule.Priority,
		&rule.Status,
		&rule.ExecutionMode,
		&assignmentsJSON,
		&conditionsJSON,
		&actionsJSON,
		&interval,
		&timesJSON,
		&daysJSON,
		&datesJSON,
		&dateTimeMapJSON,
		&lastExecutedAt,
		&rule.TelegramNotification,
		&rule.SuccessCount,
		&rule.ErrorCount,
		&rule.CreatedAt,
	); err != nil {
		return nil, err
	}

	if interval.Valid {
		v := int(interval.Int64)
		rule.SelectedInterval = &v
	}
	if lastExecutedAt.Valid {
		t := lastExecutedAt.Time
		rule.LastExecutedAt = &t
	}

	unmarshalColumn(rule.ID, "campaign_assignments", assignmentsJSON, &rule.CampaignAssignments)
	unmarshalColumn(rule.ID, "conditions", conditionsJSON, &rule.Conditions)
	unmarshalColumn(rule.ID, "actions", actionsJSON, &rule.Actions)
	unmarshalColumn(rule.ID, "selected_times", timesJSON, &rule.SelectedTimes)
	unmarshalColumn(rule.ID, "selected_days", daysJSON, &rule.SelectedDays)
	unmarshalColumn(rule.ID, "selected_dates", datesJSON, &rule.SelectedDates)
	unmarshalColumn(rule.ID, "date_time_map", dateTimeMapJSON, &rule.DateTimeMap)

	return rule, nil
}

// unmarshalColumn tolera colunas JSONB nulas ou corrompidas: uma regra com
// configuração inválida não derruba a listagem inteira
func unmarshalColumn(ruleID, column string, data []byte, target any) {
	if len(data) == 0 {
		return
	}
	if err := json.Unmarshal(data, target); err != nil {
		logrus.WithFields(logrus.Fields{
			"rule_id": ruleID,
			"column":  column,
			"error":   err.Error(),
		}).Warn("Regra com coluna JSON inválida, campo ignorado")
	}
}
