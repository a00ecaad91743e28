package handler

import (
	"net/http"

	"github.com/vfg2006/ads-automation-api/internal/api/handler/router"
	"github.com/vfg2006/ads-automation-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Worker(services WorkerServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/worker/run",
			Method:      http.MethodPost,
			Handler:     TriggerWorkerCycle(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/worker/rules/:id/run",
			Method:      http.MethodPost,
			Handler:     RunRule(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/worker/daily-check/run",
			Method:      http.MethodPost,
			Handler:     TriggerDailyCheck(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/worker/status",
			Method:      http.MethodGet,
			Handler:     GetWorkerStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
