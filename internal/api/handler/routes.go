package handler

import (
	"net/http"

	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/cache"
	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/database/postgres"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/api/handler/router"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/scheduler"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/usecases/account"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/usecases/authenticating"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/usecases/reporting"
	"github.com/lddanielsoares2-wq/dashboard-wehub/pkg/middleware"
)

func Healthcheck(conn *postgres.Connection, reportCache cache.ReportCache) []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(conn, reportCache),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports",
			Method:      http.MethodGet,
			Handler:     GetReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/freshness",
			Method:      http.MethodGet,
			Handler:     GetReportFreshness(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func NetworkAccounts(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts",
			Method:      http.MethodGet,
			Handler:     NetworkAccountList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id",
			Method:      http.MethodPatch,
			Handler:     UpdateNetworkAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Sync(service reporting.Reporter, syncService *scheduler.ReportSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync/status",
			Method:      http.MethodGet,
			Handler:     SyncStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sync/run",
			Method:      http.MethodPost,
			Handler:     RunSync(service, syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
