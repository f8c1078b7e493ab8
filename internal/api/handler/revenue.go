package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/meli-sync-api/infrastructure/repository"
	"github.com/vfg2006/meli-sync-api/internal/domain"
	"github.com/vfg2006/meli-sync-api/internal/usecases/syncing"
	"github.com/vfg2006/meli-sync-api/pkg/apiErrors"
	"github.com/vfg2006/meli-sync-api/pkg/log"
)

// GetDailyRevenue devolve o valor consolidado no ledger para o dia corrente (fuso
// BRT) de cada empresa configurada. Empresas ainda sem linha no dia aparecem com
// valor zero, para o dashboard não ter que distinguir ausência de zero.
func GetDailyRevenue(syncer syncing.Syncer, revenueRepo repository.RevenueRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		today := time.Now().In(domain.BRT)
		date := today.Format(time.DateOnly)

		entries := make([]map[string]any, 0)
		for _, empresa := range syncer.Empresas() {
			revenue, err := revenueRepo.GetByEmpresaAndDate(empresa, today)
			if err != nil {
				logger.WithError(err).Errorf("Erro ao consultar faturamento de %s", empresa)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar o faturamento", nil)
				return
			}

			entry := map[string]any{
				"empresa": empresa,
				"date":    date,
				"valor":   0.0,
			}
			if revenue != nil {
				entry["valor"] = revenue.Valor
				entry["updated_at"] = revenue.UpdatedAt
			}
			entries = append(entries, entry)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"date":    date,
			"results": entries,
		})
	})
}
