package melidomain

import "slices"

// FraudRiskTag é a tag que o MeLi aplica em pedidos com suspeita de fraude.
// Pedidos com essa tag não entram no faturamento.
const FraudRiskTag = "fraud_risk_detected"

// Order é um pedido retornado pela busca de pedidos do MeLi. Os pedidos nunca são
// persistidos; existem apenas durante a agregação.
type Order struct {
	ID          int64    `json:"id,omitempty"`
	Status      string   `json:"status,omitempty"`
	TotalAmount float64  `json:"total_amount,omitempty"`
	PaidAmount  *float64 `json:"paid_amount,omitempty"`
	CurrencyID  string   `json:"currency_id,omitempty"`
	DateCreated string   `json:"date_created,omitempty"`
	DateClosed  string   `json:"date_closed,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// HasFraudRisk indica se o pedido foi marcado como risco de fraude
func (o Order) HasFraudRisk() bool {
	return slices.Contains(o.Tags, FraudRiskTag)
}

// RevenueAmount retorna o valor que o comprador efetivamente pagou: paid_amount
// (produto + frete) quando presente e diferente de zero, senão total_amount
// (só produto).
func (o Order) RevenueAmount() float64 {
	if o.PaidAmount != nil && *o.PaidAmount != 0 {
		return *o.PaidAmount
	}
	return o.TotalAmount
}

// Paging é o metadado de paginação da busca de pedidos
type Paging struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
