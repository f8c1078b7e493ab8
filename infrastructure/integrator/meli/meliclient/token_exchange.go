package meliclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

// TokenExchangeParams carrega as credenciais necessárias para trocar o refresh token
type TokenExchangeParams struct {
	AppID        string
	SecretKey    string
	RefreshToken string
}

// TokenResponse representa a resposta do MeLi ao trocar um refresh token.
// A resposta sempre traz um NOVO refresh_token: o anterior é de uso único e
// se torna inválido imediatamente após a troca.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope"`
	UserID       int64  `json:"user_id"`
	RefreshToken string `json:"refresh_token"`
}

// ExchangeRefreshToken troca o refresh token da conta por um access token de curta
// duração via POST form-encoded em /oauth/token. Em resposta não-2xx retorna erro
// com status e corpo; não há retry neste nível. Uma resposta 2xx é devolvida
// decodificada mesmo sem access token: o refresh_token que ela carrega já
// invalidou o anterior e precisa chegar ao chamador.
func (c *MeliClient) ExchangeRefreshToken(params TokenExchangeParams) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("client_id", params.AppID)
	form.Set("client_secret", params.SecretKey)
	form.Set("refresh_token", params.RefreshToken)

	req, err := http.NewRequest(http.MethodPost, c.config.Meli.AuthURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("Erro na troca de refresh token. Status: %d, Resposta: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("troca de token falhou. Status: %d, Resposta: %s", resp.StatusCode, body)
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	return &tokenResp, nil
}
