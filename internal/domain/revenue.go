package domain

import "time"

// DailyRevenue é a linha do ledger de faturamento, única por (empresa, data).
// Uma nova sincronização do mesmo dia substitui o valor anterior.
type DailyRevenue struct {
	ID        string
	Empresa   string
	Date      time.Time
	Valor     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
