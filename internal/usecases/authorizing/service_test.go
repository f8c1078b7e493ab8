package authorizing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/meli-sync-api/infrastructure/integrator/meli/meliclient"
	clientmocks "github.com/vfg2006/meli-sync-api/infrastructure/integrator/meli/meliclient/mocks"
	repomocks "github.com/vfg2006/meli-sync-api/infrastructure/repository/mocks"
	"github.com/vfg2006/meli-sync-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testAccount() *domain.Account {
	return &domain.Account{
		Name:         "FLORIPA",
		Empresa:      "IVS FLORIPA",
		AppID:        "app-id",
		SecretKey:    "secret",
		RefreshToken: "refresh-antigo",
		UserID:       "123456",
	}
}

func TestService_AccessTokenFor_RotacionaEPersisteUmaVez(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)
	mockTokenRepo := repomocks.NewMockTokenRepository(ctrl)
	service := NewService(mockClient, mockTokenRepo)

	account := testAccount()

	mockClient.EXPECT().
		ExchangeRefreshToken(meliclient.TokenExchangeParams{
			AppID:        "app-id",
			SecretKey:    "secret",
			RefreshToken: "refresh-antigo",
		}).
		Return(&meliclient.TokenResponse{
			AccessToken:  "access-novo",
			RefreshToken: "refresh-novo",
			ExpiresIn:    21600,
		}, nil)

	// Exatamente um save por troca bem-sucedida, com o refresh novo
	mockTokenRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(record *domain.TokenRecord) error {
			assert.Equal(t, "FLORIPA", record.AccountName)
			assert.Equal(t, "refresh-novo", record.RefreshToken)
			assert.Equal(t, "access-novo", record.AccessToken)
			assert.NotNil(t, record.AccessTokenExpiresAt)
			return nil
		}).
		Times(1)

	accessToken, err := service.AccessTokenFor(account)

	assert.NoError(t, err)
	assert.Equal(t, "access-novo", accessToken)
	assert.Equal(t, "refresh-novo", account.RefreshToken)
}

func TestService_AccessTokenFor_TrocaFalhou(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)
	mockTokenRepo := repomocks.NewMockTokenRepository(ctrl)
	service := NewService(mockClient, mockTokenRepo)

	account := testAccount()

	mockClient.EXPECT().
		ExchangeRefreshToken(gomock.Any()).
		Return(nil, fmt.Errorf("troca de token falhou com status 400: invalid_grant"))

	accessToken, err := service.AccessTokenFor(account)

	assert.Error(t, err)
	assert.Empty(t, accessToken)
	// Conta intocada: nada persistido e refresh token em memória preservado
	assert.Equal(t, "refresh-antigo", account.RefreshToken)
}

func TestService_AccessTokenFor_RespostaSemAccessTokenAindaRotaciona(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)
	mockTokenRepo := repomocks.NewMockTokenRepository(ctrl)
	service := NewService(mockClient, mockTokenRepo)

	account := testAccount()

	// 200 com refresh_token novo mas sem access_token: o antigo já foi
	// invalidado pelo servidor
	mockClient.EXPECT().
		ExchangeRefreshToken(gomock.Any()).
		Return(&meliclient.TokenResponse{
			RefreshToken: "refresh-novo",
		}, nil)

	mockTokenRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(record *domain.TokenRecord) error {
			assert.Equal(t, "refresh-novo", record.RefreshToken)
			assert.Empty(t, record.AccessToken)
			assert.Nil(t, record.AccessTokenExpiresAt)
			return nil
		}).
		Times(1)

	accessToken, err := service.AccessTokenFor(account)

	// O ciclo falha por falta de access token, mas a credencial nova foi
	// rotacionada em memória e persistida
	assert.Error(t, err)
	assert.Empty(t, accessToken)
	assert.Equal(t, "refresh-novo", account.RefreshToken)
}

func TestService_AccessTokenFor_FalhaAoPersistirNaoEFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)
	mockTokenRepo := repomocks.NewMockTokenRepository(ctrl)
	service := NewService(mockClient, mockTokenRepo)

	account := testAccount()

	mockClient.EXPECT().
		ExchangeRefreshToken(gomock.Any()).
		Return(&meliclient.TokenResponse{
			AccessToken:  "access-novo",
			RefreshToken: "refresh-novo",
		}, nil)

	mockTokenRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		Return(fmt.Errorf("pq: connection refused"))

	accessToken, err := service.AccessTokenFor(account)

	// O token em memória continua válido para o ciclo atual
	assert.NoError(t, err)
	assert.Equal(t, "access-novo", accessToken)
	assert.Equal(t, "refresh-novo", account.RefreshToken)
}

func TestService_LoadPersistedTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)
	mockTokenRepo := repomocks.NewMockTokenRepository(ctrl)
	service := NewService(mockClient, mockTokenRepo)

	comRegistro := &domain.Account{Name: "FLORIPA", RefreshToken: "seed-floripa"}
	semRegistro := &domain.Account{Name: "CAMPINAS", RefreshToken: "seed-campinas"}
	comErro := &domain.Account{Name: "CURITIBA", RefreshToken: "seed-curitiba"}

	mockTokenRepo.EXPECT().
		Get("FLORIPA").
		Return(&domain.TokenRecord{
			AccountName:  "FLORIPA",
			RefreshToken: "refresh-do-banco",
		}, nil)
	mockTokenRepo.EXPECT().
		Get("CAMPINAS").
		Return(nil, nil)
	mockTokenRepo.EXPECT().
		Get("CURITIBA").
		Return(nil, fmt.Errorf("pq: connection refused"))

	service.LoadPersistedTokens([]*domain.Account{comRegistro, semRegistro, comErro})

	// O valor do banco prevalece sobre o seed do ambiente
	assert.Equal(t, "refresh-do-banco", comRegistro.RefreshToken)
	// Sem linha no banco ou com erro, o seed é mantido
	assert.Equal(t, "seed-campinas", semRegistro.RefreshToken)
	assert.Equal(t, "seed-curitiba", comErro.RefreshToken)
}
