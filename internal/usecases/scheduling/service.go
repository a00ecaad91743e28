// Package scheduling decide quais regras de automação estão aptas a executar
// em um dado instante, segundo o modo de execução de cada regra.
package scheduling

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-automation-api/infrastructure/repository"
	"github.com/vfg2006/ads-automation-api/internal/config"
	"github.com/vfg2006/ads-automation-api/internal/domain"
)

const (
	timeLayout = "15:04"
	dateLayout = "2006-01-02"
)

type Scheduler interface {
	GetScheduledRules(now time.Time) ([]*domain.AutomationRule, error)
}

type Service struct {
	ruleRepo  repository.RuleRepository
	tolerance time.Duration
}

func NewService(ruleRepo repository.RuleRepository, cfg *config.Config) *Service {
	return &Service{
		ruleRepo:  ruleRepo,
		tolerance: cfg.Worker.MissedScheduleTolerance(),
	}
}

// GetScheduledRules lê todas as regras ativas, ordenadas por prioridade, e
// filtra as que estão aptas a executar agora. Uma regra nunca aparece duas
// vezes no mesmo ciclo.
func (s *Service) GetScheduledRules(now time.Time) ([]*domain.AutomationRule, error) {
	rules, err := s.ruleRepo.ListActiveRules()
	if err != nil {
		return nil, err
	}

	due := make([]*domain.AutomationRule, 0)
	for _, rule := range rules {
		if s.IsDue(rule, now) {
			due = append(due, rule)
		}
	}

	return due, nil
}

// IsDue aplica a semântica do modo de execução da regra. Regras com modo
// desconhecido nunca são agendadas.
func (s *Service) IsDue(rule *domain.AutomationRule, now time.Time) bool {
	if rule.Status != domain.RuleStatusActive {
		return false
	}

	switch rule.ExecutionMode {
	case domain.ExecutionModeContinuous, domain.ExecutionModeInterval:
		// Apenas o espaçamento mínimo importa; sem restrição de dia/horário
		return intervalElapsed(rule, now)

	case domain.ExecutionModeSpecific:
		return s.specificDue(rule, now)

	case domain.ExecutionModeAuto:
		// Modo legado: horário e dia precisam casar e o intervalo ter passado,
		// ou um horário perdido dentro da tolerância
		if !dayMatches(rule.SelectedDays, now) || !timeMatchesAny(rule, now) {
			return false
		}
		return intervalElapsed(rule, now) || s.missedSchedule(rule.SelectedTimes, rule.LastExecutedAt, now)

	default:
		logrus.WithFields(logrus.Fields{
			"rule_id":        rule.ID,
			"execution_mode": rule.ExecutionMode,
		}).Error("Agendamento: modo de execução desconhecido, regra ignorada")
		return false
	}
}

// specificDue trata os três tipos de agendamento do modo "specific". O tipo é
// derivado uma única vez dos campos da regra, de forma que os ramos sejam
// mutuamente exclusivos.
func (s *Service) specificDue(rule *domain.AutomationRule, now time.Time) bool {
	switch rule.Kind() {
	case domain.ScheduleKindDateTimes:
		return s.dateTimesDue(rule, now)
	case domain.ScheduleKindPointTimes:
		return s.pointTimesDue(rule, now)
	default:
		return s.windowDue(rule, now)
	}
}

// dateTimesDue: datas de calendário explícitas têm precedência sobre os demais
// filtros. Dias sem entrada no mapa não executam.
func (s *Service) dateTimesDue(rule *domain.AutomationRule, now time.Time) bool {
	times := rule.DateTimeMap[now.Format(dateLayout)]
	if len(times) == 0 {
		return false
	}

	current := now.Format(timeLayout)
	for _, t := range times {
		if t != current {
			continue
		}
		last := rule.LastExecutedAt
		if last == nil || !sameDate(*last, now) || last.Format(timeLayout) != current {
			return true
		}
	}

	return s.missedSchedule(times, rule.LastExecutedAt, now)
}

// pointTimesDue: horários pontuais no dia, com recuperação de horários que
// caíram entre dois ticks do worker (dentro da tolerância)
func (s *Service) pointTimesDue(rule *domain.AutomationRule, now time.Time) bool {
	if !dayMatches(rule.SelectedDays, now) {
		return false
	}

	current := now.Format(timeLayout)
	for _, t := range rule.SelectedTimes {
		if t != current {
			continue
		}
		last := rule.LastExecutedAt
		// Nunca executar duas vezes dentro do mesmo minuto agendado
		if last == nil || !sameMinute(*last, now) {
			return true
		}
	}

	return s.missedSchedule(rule.SelectedTimes, rule.LastExecutedAt, now)
}

// windowDue: sem horários pontuais (ou com marcador RANGE), a regra executa
// repetidamente dentro da janela permitida, limitada apenas pelo intervalo
func (s *Service) windowDue(rule *domain.AutomationRule, now time.Time) bool {
	if !dayMatches(rule.SelectedDays, now) {
		return false
	}
	if !windowMatches(rule, now) {
		return false
	}
	return intervalElapsed(rule, now)
}

// missedSchedule detecta um horário pontual que caiu entre dois ticks do
// worker: estritamente antes de agora, estritamente depois da última execução
// e dentro da janela de tolerância
func (s *Service) missedSchedule(times []string, lastExecutedAt *time.Time, now time.Time) bool {
	for _, t := range times {
		parsed, err := time.Parse(timeLayout, t)
		if err != nil {
			continue
		}

		scheduled := time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, now.Location())
		if !scheduled.Before(now) {
			continue
		}
		if lastExecutedAt != nil && !scheduled.After(*lastExecutedAt) {
			continue
		}
		if now.Sub(scheduled) <= s.tolerance {
			return true
		}
	}
	return false
}

// intervalElapsed: sem intervalo configurado ou sem execução anterior, a regra
// está sempre apta
func intervalElapsed(rule *domain.AutomationRule, now time.Time) bool {
	if rule.SelectedInterval == nil || rule.LastExecutedAt == nil {
		return true
	}
	return now.Sub(*rule.LastExecutedAt) >= time.Duration(*rule.SelectedInterval)*time.Second
}

// dayMatches: lista vazia casa sempre; comparação insensível a maiúsculas com
// o nome do dia da semana em inglês
func dayMatches(days []string, now time.Time) bool {
	if len(days) == 0 {
		return true
	}
	weekday := strings.ToLower(now.Weekday().String())
	for _, d := range days {
		if strings.ToLower(strings.TrimSpace(d)) == weekday {
			return true
		}
	}
	return false
}

// windowMatches: selected_times vazio casa sempre; um marcador RANGE delimita
// a janela inclusiva, com suporte a janelas que viram a meia-noite
func windowMatches(rule *domain.AutomationRule, now time.Time) bool {
	if len(rule.SelectedTimes) == 0 {
		return true
	}

	start, end, ok := rule.TimeRange()
	if !ok {
		return false
	}

	current := now.Format(timeLayout)
	if start > end {
		// Janela que vira a meia-noite, ex.: 22:00-02:00
		return current >= start || current <= end
	}
	return current >= start && current <= end
}

// timeMatchesAny cobre o modo legado "auto": lista vazia casa sempre, RANGE
// delimita a janela, horários pontuais exigem igualdade exata
func timeMatchesAny(rule *domain.AutomationRule, now time.Time) bool {
	if len(rule.SelectedTimes) == 0 || rule.HasTimeRange() {
		return windowMatches(rule, now)
	}
	current := now.Format(timeLayout)
	for _, t := range rule.SelectedTimes {
		if t == current {
			return true
		}
	}
	return false
}

func sameDate(a, b time.Time) bool {
	return a.Format(dateLayout) == b.Format(dateLayout)
}

func sameMinute(a, b time.Time) bool {
	return sameDate(a, b) && a.Format(timeLayout) == b.Format(timeLayout)
}
