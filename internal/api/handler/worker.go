package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-automation-api/infrastructure/repository"
	"github.com/vfg2006/ads-automation-api/internal/domain"
	"github.com/vfg2006/ads-automation-api/internal/scheduler"
	"github.com/vfg2006/ads-automation-api/internal/usecases/executing"
	"github.com/vfg2006/ads-automation-api/internal/usecases/subscribing"
	"github.com/vfg2006/ads-automation-api/pkg/apiErrors"
	"github.com/vfg2006/ads-automation-api/pkg/middleware"
)

// WorkerServices contém os serviços expostos pela API de gestão do worker
type WorkerServices struct {
	RuleWorkerService  *scheduler.RuleWorkerService
	SubscribingService subscribing.Checker
	RuleRepo           repository.RuleRepository
	ExecutingService   executing.Executor
}

// TriggerWorkerCycle dispara manualmente um ciclo do worker de regras
func TriggerWorkerCycle(services WorkerServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - TriggerWorkerCycle")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem disparar ciclos do worker", nil)
			return
		}

		if services.RuleWorkerService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Worker de regras não disponível", nil)
			return
		}

		services.RuleWorkerService.TriggerManualCycle(r.Context())

		response := map[string]any{
			"message": "Ciclo do worker iniciado com sucesso",
		}
		json.NewEncoder(w).Encode(response)
	}
}

// RunRule executa imediatamente uma única regra, ignorando o agendamento.
// Útil para validar uma regra recém-configurada sem esperar o próximo horário.
func RunRule(services WorkerServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunRule")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar regras manualmente", nil)
			return
		}

		ruleID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if ruleID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da regra é obrigatório", nil)
			return
		}

		rule, err := services.RuleRepo.GetRuleByID(ruleID)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar a regra", err.Error())
			return
		}
		if rule == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Regra não encontrada", nil)
			return
		}

		execution, err := services.ExecutingService.ExecuteRule(r.Context(), rule, time.Now())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar a regra", err.Error())
			return
		}

		json.NewEncoder(w).Encode(execution)
	}
}

// TriggerDailyCheck dispara manualmente a verificação de assinaturas
func TriggerDailyCheck(services WorkerServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - TriggerDailyCheck")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem disparar a verificação de assinaturas", nil)
			return
		}

		if services.SubscribingService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de assinaturas não disponível", nil)
			return
		}

		if err := services.SubscribingService.CheckExpiringSubscriptions(r.Context(), time.Now()); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro na verificação de assinaturas", err.Error())
			return
		}

		response := map[string]any{
			"message": "Verificação de assinaturas concluída",
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetWorkerStatus retorna o status atual do worker de regras
func GetWorkerStatus(services WorkerServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetWorkerStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar o status do worker", nil)
			return
		}

		json.NewEncoder(w).Encode(services.RuleWorkerService.GetStatus())
	}
}
