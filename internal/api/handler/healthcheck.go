package handler

import (
	"net/http"

	"github.com/vfg2006/meli-sync-api/internal/usecases/syncing"
)

// HealthcheckHandler expõe a liveness do serviço com o horário do último ciclo
// e o número de contas configuradas
func HealthcheckHandler(syncer syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]any{
			"status":   "healthy",
			"accounts": syncer.AccountCount(),
		}

		if report := syncer.LastReport(); report != nil {
			response["last_sync"] = report.LastSync
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	})
}
