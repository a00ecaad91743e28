package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/ads-automation-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-automation-api/internal/api/handler/router"
	"github.com/vfg2006/ads-automation-api/internal/domain"
	executingmocks "github.com/vfg2006/ads-automation-api/internal/usecases/executing/mocks"
	"github.com/vfg2006/ads-automation-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func adminRequest(method, path string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	claims := &domain.Claims{UserID: "admin-1", UserRoleID: middleware.RoleAdmin}
	return req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
}

func TestRunRule_ExecutaRegraExistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRuleRepo := repomocks.NewMockRuleRepository(ctrl)
	mockExecutor := executingmocks.NewMockExecutor(ctrl)

	services := WorkerServices{
		RuleRepo:         mockRuleRepo,
		ExecutingService: mockExecutor,
	}

	rule := &domain.AutomationRule{ID: "rule-1", Name: "Pausar ROI baixo"}
	mockRuleRepo.EXPECT().GetRuleByID("rule-1").Return(rule, nil)
	mockExecutor.EXPECT().
		ExecuteRule(gomock.Any(), rule, gomock.Any()).
		Return(&domain.RuleExecution{ID: "exec-1", RuleID: "rule-1", Status: domain.RuleExecutionStatusExecuted}, nil)

	rt := router.New(router.WithRoutes(Worker(services)...))

	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, adminRequest(http.MethodPost, "/v1/worker/rules/rule-1/run"))

	require.Equal(t, http.StatusOK, recorder.Code)

	var execution domain.RuleExecution
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&execution))
	assert.Equal(t, "rule-1", execution.RuleID)
	assert.Equal(t, domain.RuleExecutionStatusExecuted, execution.Status)
}

func TestRunRule_RegraInexistenteRetorna404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRuleRepo := repomocks.NewMockRuleRepository(ctrl)
	mockExecutor := executingmocks.NewMockExecutor(ctrl)

	services := WorkerServices{
		RuleRepo:         mockRuleRepo,
		ExecutingService: mockExecutor,
	}

	mockRuleRepo.EXPECT().GetRuleByID("desconhecida").Return(nil, nil)

	rt := router.New(router.WithRoutes(Worker(services)...))

	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, adminRequest(http.MethodPost, "/v1/worker/rules/desconhecida/run"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestRunRule_NaoAdminRecebe403(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := WorkerServices{
		RuleRepo:         repomocks.NewMockRuleRepository(ctrl),
		ExecutingService: executingmocks.NewMockExecutor(ctrl),
	}

	rt := router.New(router.WithRoutes(Worker(services)...))

	req := httptest.NewRequest(http.MethodPost, "/v1/worker/rules/rule-1/run", nil)
	claims := &domain.Claims{UserID: "client-1", UserRoleID: middleware.RoleClient}
	req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))

	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
