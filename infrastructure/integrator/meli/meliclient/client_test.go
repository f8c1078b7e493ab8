package meliclient

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meli-sync-api/internal/config"
)

func newTestClient(authURL, ordersURL string) Client {
	return NewClient(&config.Config{
		Meli: config.Meli{
			AuthURL:   authURL,
			OrdersURL: ordersURL,
		},
	})
}

func TestMeliClient_ExchangeRefreshToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "app-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "secret", r.PostForm.Get("client_secret"))
		assert.Equal(t, "refresh-antigo", r.PostForm.Get("refresh_token"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"access_token": "APP_USR-access",
			"token_type": "Bearer",
			"expires_in": 21600,
			"user_id": 123456,
			"refresh_token": "TG-refresh-novo"
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	resp, err := client.ExchangeRefreshToken(TokenExchangeParams{
		AppID:        "app-id",
		SecretKey:    "secret",
		RefreshToken: "refresh-antigo",
	})

	require.NoError(t, err)
	assert.Equal(t, "APP_USR-access", resp.AccessToken)
	assert.Equal(t, "TG-refresh-novo", resp.RefreshToken)
	assert.Equal(t, int64(21600), resp.ExpiresIn)
}

func TestMeliClient_ExchangeRefreshToken_StatusNao2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "invalid_grant", "message": "refresh token já utilizado"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	resp, err := client.ExchangeRefreshToken(TokenExchangeParams{RefreshToken: "refresh-consumido"})

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "invalid_grant")
}

func TestMeliClient_ExchangeRefreshToken_SemAccessTokenDevolveORefreshNovo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"refresh_token": "TG-refresh-novo"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	// A resposta precisa chegar decodificada: o refresh_token dela já invalidou
	// o anterior, descartá-la travaria a conta
	resp, err := client.ExchangeRefreshToken(TokenExchangeParams{RefreshToken: "refresh-antigo"})

	require.NoError(t, err)
	assert.Empty(t, resp.AccessToken)
	assert.Equal(t, "TG-refresh-novo", resp.RefreshToken)
}

func TestMeliClient_SearchOrders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer access", r.Header.Get("Authorization"))

		query := r.URL.Query()
		assert.Equal(t, "123456", query.Get("seller"))
		assert.Equal(t, "paid", query.Get("order.status"))
		assert.Equal(t, "2024-01-15T00:00:00.000-03:00", query.Get("order.date_created.from"))
		assert.Equal(t, "2024-01-15T23:59:59.999-03:00", query.Get("order.date_created.to"))
		assert.Equal(t, "date_desc", query.Get("sort"))
		assert.Equal(t, "50", query.Get("limit"))
		assert.Equal(t, "100", query.Get("offset"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"paging": {"total": 2, "offset": 100, "limit": 50},
			"results": [
				{"id": 1, "status": "paid", "paid_amount": 100.5, "total_amount": 100.5},
				{"id": 2, "status": "paid", "total_amount": 30, "tags": ["fraud_risk_detected"]}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient("", server.URL)

	resp, err := client.SearchOrders(OrdersSearchParams{
		SellerID:    "123456",
		Status:      "paid",
		DateFrom:    "2024-01-15T00:00:00.000-03:00",
		DateTo:      "2024-01-15T23:59:59.999-03:00",
		Limit:       50,
		Offset:      100,
		AccessToken: "access",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Paging.Total)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, int64(1), resp.Results[0].ID)
	assert.False(t, resp.Results[0].HasFraudRisk())
	assert.True(t, resp.Results[1].HasFraudRisk())
}

func TestMeliClient_SearchOrders_StatusNao2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient("", server.URL)

	resp, err := client.SearchOrders(OrdersSearchParams{SellerID: "123456"})

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
