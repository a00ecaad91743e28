package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-automation-api/internal/domain"
	executingmocks "github.com/vfg2006/ads-automation-api/internal/usecases/executing/mocks"
	schedulingmocks "github.com/vfg2006/ads-automation-api/internal/usecases/scheduling/mocks"
	subscribingmocks "github.com/vfg2006/ads-automation-api/internal/usecases/subscribing/mocks"
	"go.uber.org/mock/gomock"
)

func newTestWorker(
	schedulingService *schedulingmocks.MockScheduler,
	executingService *executingmocks.MockExecutor,
	subscribingService *subscribingmocks.MockChecker,
	cutoffHour int,
) *RuleWorkerService {
	return &RuleWorkerService{
		config: RuleWorkerConfig{
			CheckIntervalSeconds: 60,
			DailyCheckCutoffHour: cutoffHour,
			MaxConcurrentRules:   4,
			WorkerEnabled:        true,
		},
		schedulingService:  schedulingService,
		executingService:   executingService,
		subscribingService: subscribingService,
	}
}

// Hora de corte impossível: a verificação diária nunca roda no teste
const neverCutoff = 25

func TestRuleWorkerService_runCycle_ExecutaTodasAsRegrasAptas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScheduler := schedulingmocks.NewMockScheduler(ctrl)
	mockExecutor := executingmocks.NewMockExecutor(ctrl)
	mockChecker := subscribingmocks.NewMockChecker(ctrl)

	service := newTestWorker(mockScheduler, mockExecutor, mockChecker, neverCutoff)

	ruleA := &domain.AutomationRule{ID: "rule-a", Status: domain.RuleStatusActive}
	ruleB := &domain.AutomationRule{ID: "rule-b", Status: domain.RuleStatusActive}

	mockScheduler.EXPECT().
		GetScheduledRules(gomock.Any()).
		Return([]*domain.AutomationRule{ruleA, ruleB}, nil)

	mockExecutor.EXPECT().ExecuteRule(gomock.Any(), ruleA, gomock.Any()).Return(&domain.RuleExecution{}, nil)
	mockExecutor.EXPECT().ExecuteRule(gomock.Any(), ruleB, gomock.Any()).Return(&domain.RuleExecution{}, nil)

	service.runCycle(context.Background())

	assert.False(t, service.cycleRunning, "flag de ciclo deve ser liberada ao final")
	assert.False(t, service.lastCycleCompletedAt.IsZero())
}

func TestRuleWorkerService_runCycle_PanicEmUmaRegraNaoDerrubaAsDemais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScheduler := schedulingmocks.NewMockScheduler(ctrl)
	mockExecutor := executingmocks.NewMockExecutor(ctrl)
	mockChecker := subscribingmocks.NewMockChecker(ctrl)

	service := newTestWorker(mockScheduler, mockExecutor, mockChecker, neverCutoff)

	ruleA := &domain.AutomationRule{ID: "rule-a"}
	ruleB := &domain.AutomationRule{ID: "rule-b"}

	mockScheduler.EXPECT().
		GetScheduledRules(gomock.Any()).
		Return([]*domain.AutomationRule{ruleA, ruleB}, nil)

	var executed int32
	mockExecutor.EXPECT().
		ExecuteRule(gomock.Any(), ruleA, gomock.Any()).
		DoAndReturn(func(context.Context, *domain.AutomationRule, time.Time) (*domain.RuleExecution, error) {
			panic("falha catastrófica na regra A")
		})
	mockExecutor.EXPECT().
		ExecuteRule(gomock.Any(), ruleB, gomock.Any()).
		DoAndReturn(func(context.Context, *domain.AutomationRule, time.Time) (*domain.RuleExecution, error) {
			atomic.AddInt32(&executed, 1)
			return &domain.RuleExecution{}, nil
		})

	assert.NotPanics(t, func() {
		service.runCycle(context.Background())
	})
	assert.Equal(t, int32(1), atomic.LoadInt32(&executed), "a regra B deve executar mesmo com pânico na A")
}

func TestRuleWorkerService_runCycle_CicloEmAndamentoIgnoraTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScheduler := schedulingmocks.NewMockScheduler(ctrl)
	mockExecutor := executingmocks.NewMockExecutor(ctrl)
	mockChecker := subscribingmocks.NewMockChecker(ctrl)

	service := newTestWorker(mockScheduler, mockExecutor, mockChecker, neverCutoff)

	// Nenhuma chamada esperada nos mocks: o tick deve ser ignorado
	service.cycleRunning = true
	service.runCycle(context.Background())

	assert.True(t, service.cycleRunning, "a flag do ciclo em andamento não deve ser alterada")
}

func TestRuleWorkerService_runCycle_ErroNoAgendamentoNaoExecutaNada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScheduler := schedulingmocks.NewMockScheduler(ctrl)
	mockExecutor := executingmocks.NewMockExecutor(ctrl)
	mockChecker := subscribingmocks.NewMockChecker(ctrl)

	service := newTestWorker(mockScheduler, mockExecutor, mockChecker, neverCutoff)

	mockScheduler.EXPECT().
		GetScheduledRules(gomock.Any()).
		Return(nil, assert.AnError)

	service.runCycle(context.Background())

	assert.False(t, service.cycleRunning)
}

func TestRuleWorkerService_runDailyCheck_UmaVezPorDiaAposCorte(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScheduler := schedulingmocks.NewMockScheduler(ctrl)
	mockExecutor := executingmocks.NewMockExecutor(ctrl)
	mockChecker := subscribingmocks.NewMockChecker(ctrl)

	// Corte à 0h: qualquer horário do dia está após o corte
	service := newTestWorker(mockScheduler, mockExecutor, mockChecker, 0)

	mockScheduler.EXPECT().GetScheduledRules(gomock.Any()).Return(nil, nil).Times(2)

	// A verificação diária roda apenas no primeiro ciclo do dia
	mockChecker.EXPECT().CheckExpiringSubscriptions(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	service.runCycle(context.Background())
	service.runCycle(context.Background())

	assert.Equal(t, time.Now().Format("2006-01-02"), service.lastDailyCheckDate)
}

func TestRuleWorkerService_runDailyCheck_AntesDoCorteNaoRoda(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScheduler := schedulingmocks.NewMockScheduler(ctrl)
	mockExecutor := executingmocks.NewMockExecutor(ctrl)
	mockChecker := subscribingmocks.NewMockChecker(ctrl)

	service := newTestWorker(mockScheduler, mockExecutor, mockChecker, neverCutoff)

	mockScheduler.EXPECT().GetScheduledRules(gomock.Any()).Return(nil, nil)

	// Nenhuma chamada esperada no checker
	service.runCycle(context.Background())

	assert.Empty(t, service.lastDailyCheckDate)
}

func TestRuleWorkerService_GetStatus_ConcorrenteComCiclo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScheduler := schedulingmocks.NewMockScheduler(ctrl)
	mockExecutor := executingmocks.NewMockExecutor(ctrl)
	mockChecker := subscribingmocks.NewMockChecker(ctrl)

	// Corte à 0h para exercitar também a escrita de lastDailyCheckDate
	service := newTestWorker(mockScheduler, mockExecutor, mockChecker, 0)

	rule := &domain.AutomationRule{ID: "rule-a", Status: domain.RuleStatusActive}
	mockScheduler.EXPECT().
		GetScheduledRules(gomock.Any()).
		Return([]*domain.AutomationRule{rule}, nil)
	mockExecutor.EXPECT().
		ExecuteRule(gomock.Any(), rule, gomock.Any()).
		DoAndReturn(func(context.Context, *domain.AutomationRule, time.Time) (*domain.RuleExecution, error) {
			time.Sleep(20 * time.Millisecond)
			return &domain.RuleExecution{}, nil
		})
	mockChecker.EXPECT().CheckExpiringSubscriptions(gomock.Any(), gomock.Any()).Return(nil)

	// Leituras de status durante o ciclo não podem corromper nem travar;
	// este teste só é significativo sob o detector de corrida
	done := make(chan struct{})
	var readers sync.WaitGroup
	for i := 0; i < 4; i++ {
		readers.Add(1)
		go func() {
			defer readers.Done()
			for {
				select {
				case <-done:
					return
				default:
					_ = service.GetStatus()
				}
			}
		}()
	}

	service.runCycle(context.Background())
	close(done)
	readers.Wait()

	status := service.GetStatus()
	assert.Equal(t, false, status["cycle_running"])
	assert.False(t, status["last_cycle_completed_at"].(time.Time).IsZero())
}

func TestRuleWorkerService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScheduler := schedulingmocks.NewMockScheduler(ctrl)
	mockExecutor := executingmocks.NewMockExecutor(ctrl)
	mockChecker := subscribingmocks.NewMockChecker(ctrl)

	service := newTestWorker(mockScheduler, mockExecutor, mockChecker, 9)

	status := service.GetStatus()

	assert.Equal(t, true, status["worker_enabled"])
	assert.Equal(t, 60, status["check_interval_seconds"])
	assert.Equal(t, 9, status["daily_check_cutoff_hour"])
	assert.Equal(t, false, status["cycle_running"])
}
