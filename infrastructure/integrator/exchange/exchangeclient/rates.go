package exchangeclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	exchangedomain "github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/integrator/exchange/domain"
)

func (c *ExchangeClient) GetLatestRates(base string) (*exchangedomain.RatesResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.Exchange.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/latest")

	// Adicionar parâmetros de consulta.
	query := endpoint.Query()
	query.Set("base", base)
	endpoint.RawQuery = query.Encode()

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	// Decodificar a resposta JSON.
	var response exchangedomain.RatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}
