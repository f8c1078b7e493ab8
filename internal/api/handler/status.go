package handler

import (
	"net/http"

	"github.com/vfg2006/meli-sync-api/internal/config"
	"github.com/vfg2006/meli-sync-api/internal/usecases/syncing"
)

// ServiceStatus resume o serviço para o dashboard: empresas configuradas,
// intervalo do ciclo e horário da última sincronização
func ServiceStatus(syncer syncing.Syncer, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]any{
			"service":          "meli-faturamento-sync",
			"empresas":         syncer.Empresas(),
			"interval_minutes": cfg.RevenueSync.IntervalMinutes,
			"last_sync":        nil,
		}

		if report := syncer.LastReport(); report != nil {
			response["last_sync"] = report.LastSync
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	})
}
