package domain

import (
	"strings"
	"time"
)

type RuleStatus string

const (
	RuleStatusActive   RuleStatus = "active"
	RuleStatusPaused   RuleStatus = "paused"
	RuleStatusArchived RuleStatus = "archived"
)

// ExecutionMode define a estratégia de agendamento de uma regra
type ExecutionMode string

const (
	ExecutionModeContinuous ExecutionMode = "continuous"
	ExecutionModeSpecific   ExecutionMode = "specific"
	ExecutionModeInterval   ExecutionMode = "interval"
	// ExecutionModeAuto é mantido por compatibilidade com regras antigas.
	// Regras novas devem usar "specific".
	ExecutionModeAuto ExecutionMode = "auto"
)

// ScheduleKind discrimina os três ramos do modo "specific", derivado uma única
// vez dos campos da regra para que os ramos sejam mutuamente exclusivos
type ScheduleKind int

const (
	// ScheduleKindDateTimes: datas de calendário explícitas com horários por data
	ScheduleKindDateTimes ScheduleKind = iota
	// ScheduleKindPointTimes: lista de horários pontuais "HH:mm"
	ScheduleKindPointTimes
	// ScheduleKindWindow: janela de horário (RANGE) e/ou filtro por dia, limitado por intervalo
	ScheduleKindWindow
)

// RangeMarker identifica uma entrada de selected_times que representa uma
// janela contínua ["RANGE", início, fim] em vez de horários pontuais
const RangeMarker = "RANGE"

// AutomationRule representa uma política de automação criada pelo usuário:
// condições + ações + agendamento
type AutomationRule struct {
	ID                   string
	UserID               string
	Name                 string
	Priority             int
	Status               RuleStatus
	ExecutionMode        ExecutionMode
	CampaignAssignments  map[string][]int64 // store_id -> campanhas atribuídas
	Conditions           []ConditionGroup
	Actions              []Action
	SelectedInterval     *int // segundos; espaçamento mínimo entre execuções
	SelectedTimes        []string
	SelectedDays         []string
	SelectedDates        []string
	DateTimeMap          map[string][]string // "2006-01-02" -> horários "HH:mm"
	LastExecutedAt       *time.Time
	TelegramNotification bool
	SuccessCount         int
	ErrorCount           int
	CreatedAt            time.Time
}

// Kind deriva o tipo de agendamento do modo "specific" a partir dos campos
// opcionais da regra. Datas explícitas têm precedência sobre horários pontuais,
// que têm precedência sobre a janela por dia/horário.
func (r *AutomationRule) Kind() ScheduleKind {
	if len(r.DateTimeMap) > 0 && len(r.SelectedDates) > 0 {
		return ScheduleKindDateTimes
	}
	if r.HasPointTimes() {
		return ScheduleKindPointTimes
	}
	return ScheduleKindWindow
}

// HasPointTimes indica se selected_times contém horários pontuais explícitos
// (e não um marcador de RANGE)
func (r *AutomationRule) HasPointTimes() bool {
	if len(r.SelectedTimes) == 0 {
		return false
	}
	return !r.HasTimeRange()
}

// HasTimeRange indica se selected_times é um marcador ["RANGE", início, fim]
func (r *AutomationRule) HasTimeRange() bool {
	return len(r.SelectedTimes) == 3 && strings.EqualFold(r.SelectedTimes[0], RangeMarker)
}

// TimeRange retorna os limites da janela quando selected_times é um RANGE
func (r *AutomationRule) TimeRange() (start, end string, ok bool) {
	if !r.HasTimeRange() {
		return "", "", false
	}
	return r.SelectedTimes[1], r.SelectedTimes[2], true
}

// ActionType enumera as mutações suportadas na plataforma de anúncios
type ActionType string

const (
	ActionPause      ActionType = "pause"
	ActionResume     ActionType = "resume"
	ActionStop       ActionType = "stop"
	ActionEditBudget ActionType = "edit_budget"
)

// Unidades aceitas para ajuste de orçamento
const (
	BudgetUnitAbsolute   = "absolute"
	BudgetUnitPercentage = "percentage"
)

// Action descreve uma mutação a ser aplicada nas campanhas da regra.
// Value e Unit só são usados por edit_budget.
type Action struct {
	Type  ActionType `json:"type"`
	Value *float64   `json:"value,omitempty"`
	Unit  string     `json:"unit,omitempty"`
}
