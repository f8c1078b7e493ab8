package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/meli-sync-api/internal/scheduler"
	"github.com/vfg2006/meli-sync-api/internal/usecases/syncing"
	"github.com/vfg2006/meli-sync-api/pkg/apiErrors"
	"github.com/vfg2006/meli-sync-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RunSync executa uma sincronização de forma síncrona e devolve a lista de
// resultados por conta, o mesmo ciclo que o agendador dispara por timer.
func RunSync(syncer syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("Sincronização manual solicitada")

		if syncer.AccountCount() == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhuma conta MeLi configurada", nil)
			return
		}

		results := syncer.SyncAll()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{"results": results}); err != nil {
			logger.WithError(err).Error("Erro ao serializar resultados da sincronização")
		}
	})
}

// GetLastReport devolve o relatório do último ciclo concluído
func GetLastReport(syncer syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		report := syncer.LastReport()
		if report == nil {
			json.NewEncoder(w).Encode(map[string]any{
				"last_sync": nil,
				"results":   []any{},
			})
			return
		}

		json.NewEncoder(w).Encode(report)
	})
}

// GetSchedulerStatus devolve o status do agendador de faturamento
func GetSchedulerStatus(service *scheduler.RevenueSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Agendador de sincronização não disponível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(service.GetStatus())
	})
}
