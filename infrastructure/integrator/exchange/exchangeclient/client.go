package exchangeclient

import (
	"net/http"
	"time"

	exchangedomain "github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/integrator/exchange/domain"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/config"
)

type Client interface {
	GetLatestRates(base string) (*exchangedomain.RatesResponse, error)
}

type ExchangeClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &ExchangeClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
