package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-automation-api/internal/config"
	"github.com/vfg2006/ads-automation-api/internal/domain"
	"github.com/vfg2006/ads-automation-api/internal/usecases/executing"
	"github.com/vfg2006/ads-automation-api/internal/usecases/scheduling"
	"github.com/vfg2006/ads-automation-api/internal/usecases/subscribing"
)

// RuleWorkerConfig representa a configuração do worker de regras de automação
type RuleWorkerConfig struct {
	CheckIntervalSeconds int
	DailyCheckCutoffHour int
	MaxConcurrentRules   int
	WorkerEnabled        bool
}

// RuleWorkerService gerencia o laço periódico que agenda e executa as regras
// de automação, além da verificação diária de assinaturas
type RuleWorkerService struct {
	scheduler            *gocron.Scheduler
	config               RuleWorkerConfig
	appConfig            *config.Config
	schedulingService    scheduling.Scheduler
	executingService     executing.Executor
	subscribingService   subscribing.Checker
	cycleRunning         bool
	cycleMutex           sync.Mutex
	lastCycleStartedAt   time.Time
	lastCycleCompletedAt time.Time
	lastDailyCheckDate   string
}

// NewRuleWorkerService cria uma nova instância do worker de regras
func NewRuleWorkerService(
	schedulingService scheduling.Scheduler,
	executingService executing.Executor,
	subscribingService subscribing.Checker,
	appConfig *config.Config,
) *RuleWorkerService {
	workerConfig := RuleWorkerConfig{
		CheckIntervalSeconds: appConfig.Worker.CheckIntervalSeconds,
		DailyCheckCutoffHour: appConfig.Worker.DailyCheckCutoffHour,
		MaxConcurrentRules:   appConfig.Worker.MaxConcurrentCampaigns,
		WorkerEnabled:        appConfig.Worker.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"check_interval_seconds":  workerConfig.CheckIntervalSeconds,
		"daily_check_cutoff_hour": workerConfig.DailyCheckCutoffHour,
		"max_concurrent_rules":    workerConfig.MaxConcurrentRules,
		"worker_enabled":          workerConfig.WorkerEnabled,
	}).Info("Configuração do worker de regras carregada")

	return &RuleWorkerService{
		scheduler:          scheduler,
		config:             workerConfig,
		appConfig:          appConfig,
		schedulingService:  schedulingService,
		executingService:   executingService,
		subscribingService: subscribingService,
		cycleRunning:       false,
	}
}

// Start inicia o laço do worker. O primeiro ciclo roda imediatamente, sem
// esperar o primeiro tick.
func (s *RuleWorkerService) Start(ctx context.Context) error {
	if !s.config.WorkerEnabled {
		logrus.Info("Worker de regras desabilitado por configuração")
		return nil
	}

	logrus.WithField("interval_seconds", s.config.CheckIntervalSeconds).
		Info("Iniciando worker de regras de automação")

	_, err := s.scheduler.Every(s.config.CheckIntervalSeconds).Seconds().StartImmediately().Do(func() {
		s.runCycle(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar ciclo do worker de regras: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando worker de regras de automação")
		s.scheduler.Stop()
	}()

	return nil
}

// runCycle executa um ciclo completo: agendamento, execução concorrente das
// regras aptas e verificação diária de assinaturas. Ciclos nunca se sobrepõem:
// se o anterior ainda estiver rodando, o tick é ignorado.
func (s *RuleWorkerService) runCycle(ctx context.Context) {
	s.cycleMutex.Lock()
	if s.cycleRunning {
		s.cycleMutex.Unlock()
		logrus.Info("Ciclo anterior do worker ainda em andamento, tick ignorado")
		return
	}
	s.cycleRunning = true
	startTime := time.Now()
	s.lastCycleStartedAt = startTime
	s.cycleMutex.Unlock()

	defer func() {
		s.cycleMutex.Lock()
		s.cycleRunning = false
		s.lastCycleCompletedAt = time.Now()
		s.cycleMutex.Unlock()
	}()

	now := time.Now()

	dueRules, err := s.schedulingService.GetScheduledRules(now)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar regras aptas para execução")
		return
	}

	if len(dueRules) > 0 {
		logrus.WithField("rules", len(dueRules)).Info("Regras aptas encontradas no ciclo")
		s.executeRules(ctx, dueRules, now)
	}

	s.runDailyCheckIfNeeded(ctx, now)

	duration := time.Since(startTime)
	if len(dueRules) > 0 {
		logrus.WithFields(logrus.Fields{
			"duration": duration.String(),
			"rules":    len(dueRules),
		}).Info("Ciclo do worker de regras concluído")
	}
}

// executeRules dispara as regras aptas em paralelo. Pânico ou erro em uma
// regra não derruba as demais nem o worker.
func (s *RuleWorkerService) executeRules(ctx context.Context, rules []*domain.AutomationRule, now time.Time) {
	maxConcurrent := s.config.MaxConcurrentRules
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	semaphore := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup

	for _, rule := range rules {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(r *domain.AutomationRule) {
			defer func() {
				if recovered := recover(); recovered != nil {
					logrus.WithFields(logrus.Fields{
						"rule_id": r.ID,
						"panic":   recovered,
					}).Error("Pânico recuperado durante execução de regra")
				}
				<-semaphore
				wg.Done()
			}()

			if _, err := s.executingService.ExecuteRule(ctx, r, now); err != nil {
				logrus.WithFields(logrus.Fields{
					"rule_id": r.ID,
					"error":   err.Error(),
				}).Error("Erro ao executar regra de automação")
			}
		}(rule)
	}

	wg.Wait()
}

// runDailyCheckIfNeeded roda a verificação de assinaturas uma vez por dia,
// no primeiro ciclo após a hora de corte
func (s *RuleWorkerService) runDailyCheckIfNeeded(ctx context.Context, now time.Time) {
	if now.Hour() < s.config.DailyCheckCutoffHour {
		return
	}

	today := now.Format("2006-01-02")
	s.cycleMutex.Lock()
	if s.lastDailyCheckDate == today {
		s.cycleMutex.Unlock()
		return
	}
	s.lastDailyCheckDate = today
	s.cycleMutex.Unlock()

	logrus.Info("Executando verificação diária de assinaturas")

	if err := s.subscribingService.CheckExpiringSubscriptions(ctx, now); err != nil {
		logrus.WithError(err).Error("Erro na verificação diária de assinaturas")
	}
}

// TriggerManualCycle inicia manualmente um ciclo do worker
func (s *RuleWorkerService) TriggerManualCycle(ctx context.Context) {
	s.cycleMutex.Lock()
	if s.cycleRunning {
		s.cycleMutex.Unlock()
		logrus.Info("Ciclo do worker já em andamento, solicitação manual ignorada")
		return
	}
	s.cycleMutex.Unlock()

	logrus.Info("Iniciando ciclo manual do worker de regras")
	go s.runCycle(ctx)
}

// GetStatus retorna o status atual do worker
func (s *RuleWorkerService) GetStatus() map[string]any {
	// Todos os campos mutáveis de status são protegidos pelo mesmo mutex do
	// ciclo: o handler de status pode chamar durante um ciclo em andamento
	s.cycleMutex.Lock()
	defer s.cycleMutex.Unlock()

	return map[string]any{
		"worker_enabled":          s.config.WorkerEnabled,
		"check_interval_seconds":  s.config.CheckIntervalSeconds,
		"daily_check_cutoff_hour": s.config.DailyCheckCutoffHour,
		"max_concurrent_rules":    s.config.MaxConcurrentRules,
		"cycle_running":           s.cycleRunning,
		"last_cycle_started_at":   s.lastCycleStartedAt,
		"last_cycle_completed_at": s.lastCycleCompletedAt,
		"last_daily_check_date":   s.lastDailyCheckDate,
	}
}
