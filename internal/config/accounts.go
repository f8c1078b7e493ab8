package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meli-sync-api/internal/domain"
)

const (
	accountEnvPrefix = "MELI_"
	appIDSuffix      = "_APP_ID"
)

// LoadAccounts descobre as contas MeLi a partir das variáveis de ambiente.
// Padrão: MELI_{NAME}_APP_ID, MELI_{NAME}_SECRET_KEY, MELI_{NAME}_REFRESH_TOKEN,
// MELI_{NAME}_USER_ID e, opcionalmente, ACCOUNT_{NAME}_EMPRESA (default = NAME).
//
// O refresh token do ambiente é apenas o seed da primeira execução: em runtime o
// valor mais recente vem da tabela meli_tokens. Conjuntos incompletos são pulados
// com aviso, nunca derrubam a inicialização.
func LoadAccounts() []*domain.Account {
	names := make(map[string]struct{})
	for _, entry := range os.Environ() {
		key, _, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if strings.HasPrefix(key, accountEnvPrefix) && strings.HasSuffix(key, appIDSuffix) {
			name := strings.TrimSuffix(strings.TrimPrefix(key, accountEnvPrefix), appIDSuffix)
			if name != "" {
				names[name] = struct{}{}
			}
		}
	}

	sortedNames := make([]string, 0, len(names))
	for name := range names {
		sortedNames = append(sortedNames, name)
	}
	sort.Strings(sortedNames)

	accounts := make([]*domain.Account, 0, len(sortedNames))
	for _, name := range sortedNames {
		appID := os.Getenv(fmt.Sprintf("MELI_%s_APP_ID", name))
		secretKey := os.Getenv(fmt.Sprintf("MELI_%s_SECRET_KEY", name))
		refreshToken := os.Getenv(fmt.Sprintf("MELI_%s_REFRESH_TOKEN", name))
		userID := os.Getenv(fmt.Sprintf("MELI_%s_USER_ID", name))

		empresa := os.Getenv(fmt.Sprintf("ACCOUNT_%s_EMPRESA", name))
		if empresa == "" {
			empresa = name
		}

		if appID == "" || secretKey == "" || refreshToken == "" || userID == "" {
			logrus.Warnf("Conta %s com credenciais incompletas, pulando", name)
			continue
		}

		accounts = append(accounts, &domain.Account{
			Name:         name,
			Empresa:      empresa,
			AppID:        appID,
			SecretKey:    secretKey,
			RefreshToken: refreshToken,
			UserID:       userID,
		})

		logrus.Infof("Conta carregada: %s → empresa '%s' (user %s)", name, empresa, userID)
	}

	return accounts
}
