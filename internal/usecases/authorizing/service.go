package authorizing

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meli-sync-api/infrastructure/integrator/meli/meliclient"
	"github.com/vfg2006/meli-sync-api/infrastructure/repository"
	"github.com/vfg2006/meli-sync-api/internal/domain"
)

// accessTokenTTL é a validade estimada do access token do MeLi (6 horas),
// registrada junto ao token persistido.
const accessTokenTTL = 6 * time.Hour

// Authorizer troca o refresh token rotativo de uma conta por um access token.
type Authorizer interface {
	// AccessTokenFor troca o refresh token atual da conta por um access token.
	// O refresh token é de USO ÚNICO: a resposta sempre traz um novo, que é
	// gravado em memória e persistido ANTES de o access token ser devolvido.
	// Mesmo quando a resposta não traz access token, o refresh token novo é
	// rotacionado e persistido antes de o erro ser devolvido; descartá-lo
	// travaria a conta até um re-seed manual.
	AccessTokenFor(account *domain.Account) (string, error)

	// LoadPersistedTokens carrega da tabela meli_tokens o refresh token mais
	// recente de cada conta. O valor persistido prevalece sobre o seed do
	// ambiente; sem linha no banco, a conta segue com o seed.
	LoadPersistedTokens(accounts []*domain.Account)
}

type Service struct {
	client    meliclient.Client
	tokenRepo repository.TokenRepository
}

func NewService(client meliclient.Client, tokenRepo repository.TokenRepository) Authorizer {
	return &Service{
		client:    client,
		tokenRepo: tokenRepo,
	}
}

func (s *Service) AccessTokenFor(account *domain.Account) (string, error) {
	resp, err := s.client.ExchangeRefreshToken(meliclient.TokenExchangeParams{
		AppID:        account.AppID,
		SecretKey:    account.SecretKey,
		RefreshToken: account.RefreshToken,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account": account.Name,
			"error":   err.Error(),
		}).Error("Falha na troca do refresh token")
		return "", err
	}

	if resp.RefreshToken != "" {
		// Atualiza em memória imediatamente: o token antigo já foi invalidado
		account.RefreshToken = resp.RefreshToken

		// Persiste para sobreviver a restarts. Falha aqui não é fatal para o
		// ciclo: o token em memória continua válido, mas um restart antes do
		// próximo save bem-sucedido vai reutilizar um refresh token já
		// consumido e travar a conta até um re-seed manual.
		record := &domain.TokenRecord{
			AccountName:  account.Name,
			RefreshToken: resp.RefreshToken,
			AccessToken:  resp.AccessToken,
			UpdatedAt:    time.Now().In(domain.BRT),
		}
		if resp.AccessToken != "" {
			expiresAt := time.Now().In(domain.BRT).Add(accessTokenTTL)
			record.AccessTokenExpiresAt = &expiresAt
		}

		if err := s.tokenRepo.SaveOrUpdate(record); err != nil {
			logrus.WithFields(logrus.Fields{
				"account": account.Name,
				"error":   err.Error(),
			}).Error("Falha ao persistir o novo refresh token")
		} else {
			logrus.WithField("account", account.Name).Info("Novo refresh token persistido")
		}
	}

	// A rotação acima já aconteceu: o erro sinaliza só a ausência do access
	// token neste ciclo, não perde a credencial nova
	if resp.AccessToken == "" {
		logrus.WithField("account", account.Name).Error("Troca de token não retornou access token")
		return "", fmt.Errorf("troca de token não retornou access token")
	}

	return resp.AccessToken, nil
}

func (s *Service) LoadPersistedTokens(accounts []*domain.Account) {
	for _, account := range accounts {
		record, err := s.tokenRepo.Get(account.Name)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account": account.Name,
				"error":   err.Error(),
			}).Error("Erro ao carregar refresh token persistido")
			continue
		}

		if record != nil {
			account.RefreshToken = record.RefreshToken
			logrus.WithField("account", account.Name).Info("Refresh token carregado do banco")
		} else {
			logrus.WithField("account", account.Name).Info("Usando refresh token do ambiente (sem linha no banco)")
		}
	}
}
