package syncing

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meli-sync-api/infrastructure/repository"
	"github.com/vfg2006/meli-sync-api/internal/domain"
	"github.com/vfg2006/meli-sync-api/internal/usecases/aggregating"
	"github.com/vfg2006/meli-sync-api/internal/usecases/authorizing"
)

// Syncer executa um ciclo completo de sincronização de faturamento
type Syncer interface {
	// SyncAll processa todas as contas em sequência e devolve a lista ordenada
	// de resultados. Execuções concorrentes (timer + disparo manual) são
	// serializadas: duas trocas simultâneas do mesmo refresh token de uso
	// único o corromperiam para ambas.
	SyncAll() []domain.SyncResult

	// LastReport devolve o relatório do último ciclo concluído, ou nil se
	// nenhum ciclo rodou desde o início do processo.
	LastReport() *domain.RunReport

	// Empresas lista os rótulos das contas configuradas
	Empresas() []string

	// AccountCount retorna o número de contas configuradas
	AccountCount() int
}

// Service é o orquestrador: detém o conjunto de contas pelo tempo de vida do
// processo e compõe troca de token → agregação → upsert por conta.
type Service struct {
	accounts    []*domain.Account
	authorizer  authorizing.Authorizer
	aggregator  aggregating.Aggregator
	revenueRepo repository.RevenueRepository

	runMutex     sync.Mutex
	reportMutex  sync.RWMutex
	lastReport   *domain.RunReport
	tokensLoaded bool
}

func NewService(
	accounts []*domain.Account,
	authorizer authorizing.Authorizer,
	aggregator aggregating.Aggregator,
	revenueRepo repository.RevenueRepository,
) *Service {
	return &Service{
		accounts:    accounts,
		authorizer:  authorizer,
		aggregator:  aggregator,
		revenueRepo: revenueRepo,
	}
}

func (s *Service) SyncAll() []domain.SyncResult {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	// Antes do primeiro ciclo, substitui os seeds do ambiente pelos refresh
	// tokens persistidos no banco
	if !s.tokensLoaded {
		s.authorizer.LoadPersistedTokens(s.accounts)
		s.tokensLoaded = true
	}

	now := time.Now().In(domain.BRT)
	date := now.Format(time.DateOnly)

	logrus.WithFields(logrus.Fields{
		"date":     date,
		"accounts": len(s.accounts),
	}).Info("Iniciando sincronização de faturamento")

	results := make([]domain.SyncResult, 0, len(s.accounts))
	for _, account := range s.accounts {
		results = append(results, s.syncAccount(account, date))
	}

	s.reportMutex.Lock()
	s.lastReport = &domain.RunReport{
		LastSync: now,
		Results:  results,
	}
	s.reportMutex.Unlock()

	logrus.WithField("accounts", len(results)).Info("Sincronização de faturamento concluída")

	return results
}

// syncAccount processa uma conta. Qualquer pânico é contido aqui: a falha de uma
// conta nunca aborta as demais no mesmo ciclo.
func (s *Service) syncAccount(account *domain.Account, date string) (result domain.SyncResult) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"account": account.Name,
				"panic":   r,
			}).Error("Falha inesperada ao sincronizar conta")

			result = domain.SyncResult{
				Empresa: account.Empresa,
				Date:    date,
				Status:  domain.SyncStatusError,
				Error:   fmt.Sprint(r),
			}
		}
	}()

	accessToken, err := s.authorizer.AccessTokenFor(account)
	if err != nil || accessToken == "" {
		return domain.SyncResult{
			Empresa: account.Empresa,
			Date:    date,
			Status:  domain.SyncStatusTokenError,
		}
	}

	total := s.aggregator.DayTotal(account, accessToken, date)

	// Dia sem vendas intencionalmente não gera escrita no ledger
	status := domain.SyncStatusNoSales
	if total.Valor > 0 {
		day, _ := time.ParseInLocation(time.DateOnly, date, domain.BRT)
		if err := s.revenueRepo.Upsert(account.Empresa, day, total.Valor); err != nil {
			logrus.WithFields(logrus.Fields{
				"empresa": account.Empresa,
				"date":    date,
				"error":   err.Error(),
			}).Error("Falha no upsert de faturamento")
			status = domain.SyncStatusUpsertError
		} else {
			status = domain.SyncStatusSynced
		}
	}

	result = domain.SyncResult{
		Empresa:      account.Empresa,
		Date:         date,
		Valor:        total.Valor,
		Orders:       total.OrderCount,
		FraudSkipped: total.FraudSkipped,
		Status:       status,
	}

	logrus.WithFields(logrus.Fields{
		"account": account.Name,
		"status":  status,
		"valor":   total.Valor,
		"orders":  total.OrderCount,
	}).Info("Conta sincronizada")

	return result
}

func (s *Service) LastReport() *domain.RunReport {
	s.reportMutex.RLock()
	defer s.reportMutex.RUnlock()
	return s.lastReport
}

func (s *Service) Empresas() []string {
	empresas := make([]string, 0, len(s.accounts))
	for _, account := range s.accounts {
		empresas = append(empresas, account.Empresa)
	}
	return empresas
}

func (s *Service) AccountCount() int {
	return len(s.accounts)
}
