package domain

import "time"

// BRT é o fuso fixo usado para delimitar o dia contábil das contas (UTC-3).
var BRT = time.FixedZone("BRT", -3*60*60)

// SyncStatus representa o resultado do processamento de uma conta em um ciclo
type SyncStatus string

const (
	SyncStatusSynced      SyncStatus = "synced"
	SyncStatusNoSales     SyncStatus = "no_sales"
	SyncStatusTokenError  SyncStatus = "token_error"
	SyncStatusUpsertError SyncStatus = "upsert_error"
	SyncStatusError       SyncStatus = "error"
)

// DayTotal é o agregado de um dia de pedidos pagos de uma conta
type DayTotal struct {
	Valor        float64
	OrderCount   int
	FraudSkipped int
}

// SyncResult é o resultado por conta de um ciclo de sincronização
type SyncResult struct {
	Empresa      string     `json:"empresa"`
	Date         string     `json:"date"`
	Valor        float64    `json:"valor"`
	Orders       int        `json:"orders"`
	FraudSkipped int        `json:"fraud_skipped"`
	Status       SyncStatus `json:"status"`
	Error        string     `json:"error,omitempty"`
}

// RunReport é o relatório do último ciclo concluído. É totalmente substituído a cada
// execução e não é persistido.
type RunReport struct {
	LastSync time.Time    `json:"last_sync"`
	Results  []SyncResult `json:"results"`
}
