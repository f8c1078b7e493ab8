package handler

import (
	"net/http"

	"github.com/vfg2006/meli-sync-api/infrastructure/repository"
	"github.com/vfg2006/meli-sync-api/internal/api/handler/router"
	"github.com/vfg2006/meli-sync-api/internal/config"
	"github.com/vfg2006/meli-sync-api/internal/scheduler"
	"github.com/vfg2006/meli-sync-api/internal/usecases/syncing"
	"github.com/vfg2006/meli-sync-api/pkg/middleware"
)

func Healthcheck(syncer syncing.Syncer) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(syncer),
		},
	}
}

func Status(syncer syncing.Syncer, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/status",
			Method:  http.MethodGet,
			Handler: ServiceStatus(syncer, cfg),
		},
	}
}

// Revenue expõe a leitura do ledger do dia corrente para o dashboard
func Revenue(syncer syncing.Syncer, revenueRepo repository.RevenueRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/revenue/today",
			Method:  http.MethodGet,
			Handler: GetDailyRevenue(syncer, revenueRepo),
		},
	}
}

// Sync retorna as rotas da sincronização de faturamento. O disparo manual e o
// status do agendador exigem o token de serviço; a leitura do último relatório
// fica aberta para o dashboard.
func Sync(syncer syncing.Syncer, syncService *scheduler.RevenueSyncService, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync/run",
			Method:      http.MethodPost,
			Handler:     RunSync(syncer),
			Middlewares: []func(http.Handler) http.Handler{middleware.ServiceAuth(cfg.Auth.Secret)},
		},
		{
			Path:    "/v1/sync/last",
			Method:  http.MethodGet,
			Handler: GetLastReport(syncer),
		},
		{
			Path:        "/v1/sync/scheduler",
			Method:      http.MethodGet,
			Handler:     GetSchedulerStatus(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.ServiceAuth(cfg.Auth.Secret)},
		},
	}
}
