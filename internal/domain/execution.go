package domain

import "time"

// RuleExecutionStatus classifica o desfecho de uma execução de regra
type RuleExecutionStatus string

const (
	RuleExecutionStatusExecuted RuleExecutionStatus = "executed"
	RuleExecutionStatusSkipped  RuleExecutionStatus = "skipped"
	RuleExecutionStatusFailed   RuleExecutionStatus = "failed"
)

// RuleExecution é o registro de auditoria de uma execução de regra
type RuleExecution struct {
	ID                string
	RuleID            string
	Status            RuleExecutionStatus
	CampaignsMatched  []int64
	ActionsApplied    int
	ErrorMessage      *string
	EvaluationResults map[int64]*EvaluationResult // campaign_id -> veredito
	ExecutedAt        time.Time
}

// Store representa uma conta de anunciante (tenant) na plataforma externa
type Store struct {
	ID           string
	UserID       string
	Name         string
	SessionToken *string // cookie de sessão; nil quando as credenciais expiraram
	Status       string
}

// Subscription é a assinatura de um usuário, consultada apenas pela
// verificação diária de vencimento
type Subscription struct {
	ID         string
	UserID     string
	UserName   string
	TelegramID *string
	ExpiresAt  time.Time
}
