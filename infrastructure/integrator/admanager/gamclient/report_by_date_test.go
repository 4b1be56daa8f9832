package gamclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	gamdomain "github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/integrator/admanager/domain"
	repomocks "github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/repository/mocks"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"
)

func TestGetDailyReportByAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC)

	t.Run("Deve buscar o relatório e herdar a moeda da conta quando a resposta omite o código", func(t *testing.T) {
		var gotPath, gotAuth, gotDate, gotDimension string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			gotDate = r.URL.Query().Get("date")
			gotDimension = r.URL.Query().Get("dimension")

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"network_code":"2218001","date":"2026-08-19","dimension":"AD_UNIT","rows":[{"ad_unit_name":"Home Top","impressions":800,"clicks":12,"unfilled_impressions":200,"revenue_micros":25500000}]}`))
		}))
		defer server.Close()

		cfg := gamTestConfig(server.URL, "")
		client := NewClient(cfg, NewTokenManager(cfg, repomocks.NewMockAccountRepository(ctrl)))

		account := gamTestAccount()
		account.AccessToken = "valid-token"
		account.TokenExpiry = time.Now().Add(1 * time.Hour)

		response, err := client.GetDailyReportByAccount(context.Background(), account, date, domain.DimensionAdUnit)

		assert.NoError(t, err)
		assert.Equal(t, "/networks/2218001/reports/daily", gotPath)
		assert.Equal(t, "Bearer valid-token", gotAuth)
		assert.Equal(t, "2026-08-19", gotDate)
		assert.Equal(t, "AD_UNIT", gotDimension)

		// Resposta sem código de moeda herda a moeda cadastrada na conta
		assert.Equal(t, "BRL", response.CurrencyCode)
		assert.Len(t, response.Rows, 1)
		assert.Equal(t, "Home Top", response.Rows[0].AdUnitName)
		assert.Equal(t, int64(800), response.Rows[0].Impressions)
		assert.Equal(t, int64(200), response.Rows[0].UnfilledImpressions)
		assert.Equal(t, int64(25500000), response.Rows[0].RevenueMicros)
	})

	t.Run("Deve renovar o token e repetir a busca quando a API rejeita o token em uso", func(t *testing.T) {
		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		defer server.Close()

		reportCalls := 0
		mux.HandleFunc("/networks/2218001/reports/daily", func(w http.ResponseWriter, r *http.Request) {
			reportCalls++
			if r.Header.Get("Authorization") != "Bearer renewed-token" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":{"code":401,"message":"invalid credentials","status":"UNAUTHENTICATED"}}`))
				return
			}

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"currency_code":"BRL","rows":[{"ad_unit_name":"Home Top","impressions":100,"revenue_micros":1000000}]}`))
		})

		tokenCalls := 0
		mux.Handle("/token", oauthTokenHandler(&tokenCalls,
			`{"access_token":"renewed-token","token_type":"Bearer","expires_in":3600}`))

		cfg := gamTestConfig(server.URL, server.URL+"/token")

		accountRepo := repomocks.NewMockAccountRepository(ctrl)
		accountRepo.EXPECT().
			UpdateTokens("ACC001", "renewed-token", "", gomock.Any()).
			Return(nil)

		client := NewClient(cfg, NewTokenManager(cfg, accountRepo))

		// O token ainda parece válido localmente, então só a recusa da API
		// dispara a renovação
		account := gamTestAccount()
		account.AccessToken = "rejected-token"
		account.TokenExpiry = time.Now().Add(1 * time.Hour)

		response, err := client.GetDailyReportByAccount(context.Background(), account, date, domain.DimensionAdUnit)

		assert.NoError(t, err)
		assert.Equal(t, 2, reportCalls)
		assert.Equal(t, 1, tokenCalls)
		assert.Equal(t, "renewed-token", account.AccessToken)
		assert.Len(t, response.Rows, 1)
		assert.Equal(t, int64(100), response.Rows[0].Impressions)
	})

	t.Run("Deve devolver o erro classificado sem repetir quando a cota estoura", func(t *testing.T) {
		reportCalls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reportCalls++
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "3")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
		}))
		defer server.Close()

		cfg := gamTestConfig(server.URL, "")
		client := NewClient(cfg, NewTokenManager(cfg, repomocks.NewMockAccountRepository(ctrl)))

		account := gamTestAccount()
		account.AccessToken = "valid-token"
		account.TokenExpiry = time.Now().Add(1 * time.Hour)

		response, err := client.GetDailyReportByAccount(context.Background(), account, date, domain.DimensionAdUnit)

		// O backoff de cota pertence ao orquestrador de busca, não ao cliente
		assert.Nil(t, response)
		assert.Equal(t, 1, reportCalls)

		var apiErr *gamdomain.APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.RateLimited())
		assert.Equal(t, 3*time.Second, apiErr.RetryAfter)
	})

	t.Run("Deve falhar antes da busca quando a conta não pode renovar o token", func(t *testing.T) {
		reportCalls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reportCalls++
		}))
		defer server.Close()

		cfg := gamTestConfig(server.URL, "")
		client := NewClient(cfg, NewTokenManager(cfg, repomocks.NewMockAccountRepository(ctrl)))

		account := gamTestAccount()
		account.RefreshToken = ""

		response, err := client.GetDailyReportByAccount(context.Background(), account, date, domain.DimensionAdUnit)

		assert.Nil(t, response)
		assert.ErrorContains(t, err, "erro ao verificar validade do token")
		assert.Zero(t, reportCalls)
	})
}
