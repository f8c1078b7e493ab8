package aggregating

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meli-sync-api/infrastructure/integrator/meli/meliclient"
	"github.com/vfg2006/meli-sync-api/internal/domain"
	"github.com/vfg2006/meli-sync-api/pkg/utils"
)

const (
	pageSize = 50
	// maxOffset limita a paginação independentemente do total reportado pelo
	// servidor, contra loops infinitos de respostas malformadas.
	maxOffset = 500

	paidStatus = "paid"
)

// Aggregator soma os pedidos pagos de uma conta em um dia contábil (fuso BRT)
type Aggregator interface {
	DayTotal(account *domain.Account, accessToken string, date string) *domain.DayTotal
}

type Service struct {
	client meliclient.Client
}

func NewService(client meliclient.Client) Aggregator {
	return &Service{
		client: client,
	}
}

// DayTotal pagina a busca de pedidos do dia e acumula o total pago. Pedidos com a
// tag de fraude são excluídos por completo. Falha em uma página interrompe a
// paginação mantendo o parcial já acumulado; isso não é propagado como erro.
func (s *Service) DayTotal(account *domain.Account, accessToken string, date string) *domain.DayTotal {
	dateFrom := fmt.Sprintf("%sT00:00:00.000-03:00", date)
	dateTo := fmt.Sprintf("%sT23:59:59.999-03:00", date)

	total := &domain.DayTotal{}
	offset := 0

	for {
		resp, err := s.client.SearchOrders(meliclient.OrdersSearchParams{
			SellerID:    account.UserID,
			Status:      paidStatus,
			DateFrom:    dateFrom,
			DateTo:      dateTo,
			Limit:       pageSize,
			Offset:      offset,
			AccessToken: accessToken,
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account": account.Name,
				"offset":  offset,
				"error":   err.Error(),
			}).Error("Busca de pedidos falhou, mantendo total parcial")
			break
		}

		for _, order := range resp.Results {
			if order.HasFraudRisk() {
				total.FraudSkipped++
				continue
			}
			total.Valor += order.RevenueAmount()
			total.OrderCount++
		}

		offset += pageSize
		if offset >= resp.Paging.Total || offset > maxOffset {
			break
		}
	}

	total.Valor = utils.RoundWithTwoDecimalPlace(total.Valor)

	logrus.WithFields(logrus.Fields{
		"account":       account.Name,
		"date":          date,
		"valor":         total.Valor,
		"orders":        total.OrderCount,
		"fraud_skipped": total.FraudSkipped,
	}).Debug("Agregação do dia concluída")

	return total
}
