package exchangeclient

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/config"
)

func exchangeConfig(url string) *config.Config {
	return &config.Config{
		Exchange: config.Exchange{
			URL:          url,
			BaseCurrency: "USD",
		},
	}
}

func TestGetLatestRates(t *testing.T) {
	t.Run("Deve buscar as taxas mais recentes para a moeda base", func(t *testing.T) {
		var gotPath, gotBase, gotAccept string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotBase = r.URL.Query().Get("base")
			gotAccept = r.Header.Get("Accept")

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"base":"USD","date":"2026-08-19","rates":{"BRL":5.43,"EUR":0.92}}`))
		}))
		defer server.Close()

		client := NewClient(exchangeConfig(server.URL))

		response, err := client.GetLatestRates("USD")

		assert.NoError(t, err)
		assert.Equal(t, "/latest", gotPath)
		assert.Equal(t, "USD", gotBase)
		assert.Equal(t, "application/json", gotAccept)

		assert.Equal(t, "USD", response.Base)
		assert.Equal(t, "2026-08-19", response.Date)
		assert.Equal(t, map[string]float64{"BRL": 5.43, "EUR": 0.92}, response.Rates)
	})

	t.Run("Deve preservar o caminho configurado na URL base", func(t *testing.T) {
		var gotPath string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_, _ = w.Write([]byte(`{"base":"BRL","rates":{}}`))
		}))
		defer server.Close()

		client := NewClient(exchangeConfig(server.URL + "/v1"))

		_, err := client.GetLatestRates("BRL")

		assert.NoError(t, err)
		assert.Equal(t, "/v1/latest", gotPath)
	})

	t.Run("Deve falhar quando o provedor responde erro", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewClient(exchangeConfig(server.URL))

		response, err := client.GetLatestRates("USD")

		assert.Nil(t, response)
		assert.ErrorContains(t, err, "requisição falhou com status")
	})

	t.Run("Deve falhar quando a resposta não é JSON válido", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("taxas indisponíveis"))
		}))
		defer server.Close()

		client := NewClient(exchangeConfig(server.URL))

		response, err := client.GetLatestRates("USD")

		assert.Nil(t, response)
		assert.ErrorContains(t, err, "erro ao decodificar a resposta")
	})
}
