package meliclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	melidomain "github.com/vfg2006/meli-sync-api/infrastructure/integrator/meli/domain"
)

// OrdersSearchParams filtra a busca de pedidos de um vendedor em uma janela de criação
type OrdersSearchParams struct {
	SellerID    string
	Status      string
	DateFrom    string
	DateTo      string
	Limit       int
	Offset      int
	AccessToken string
}

type OrdersSearchResponse struct {
	Paging  melidomain.Paging  `json:"paging"`
	Results []melidomain.Order `json:"results"`
}

// SearchOrders consulta GET /orders/search com paginação por limit/offset,
// ordenada por data de criação descendente.
func (c *MeliClient) SearchOrders(params OrdersSearchParams) (*OrdersSearchResponse, error) {
	endpoint, err := url.Parse(c.config.Meli.OrdersURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}

	query := endpoint.Query()
	query.Set("seller", params.SellerID)
	query.Set("order.status", params.Status)
	query.Set("order.date_created.from", params.DateFrom)
	query.Set("order.date_created.to", params.DateTo)
	query.Set("sort", "date_desc")
	query.Set("limit", strconv.Itoa(params.Limit))
	query.Set("offset", strconv.Itoa(params.Offset))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequest(http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+params.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("busca de pedidos falhou com status: %s", resp.Status)
	}

	var response OrdersSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}
