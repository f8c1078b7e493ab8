package meliclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/meli-sync-api/internal/config"
)

type Client interface {
	ExchangeRefreshToken(params TokenExchangeParams) (*TokenResponse, error)
	SearchOrders(params OrdersSearchParams) (*OrdersSearchResponse, error)
}

type MeliClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API do MercadoLibre.
func NewClient(cfg *config.Config) Client {
	return &MeliClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
