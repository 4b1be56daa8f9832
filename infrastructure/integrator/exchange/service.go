package exchange

import (
	exchangedomain "github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/integrator/exchange/domain"
	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/integrator/exchange/exchangeclient"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/config"
)

type ExchangeIntegrator interface {
	GetRates(base string) (*exchangedomain.RatesResponse, error)
}

type ExchangeService struct {
	cfg    *config.Config
	Client exchangeclient.Client
}

func New(cfg *config.Config, client exchangeclient.Client) ExchangeIntegrator {
	return &ExchangeService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *ExchangeService) GetRates(base string) (*exchangedomain.RatesResponse, error) {
	resp, err := s.Client.GetLatestRates(base)
	if err != nil {
		return nil, err
	}

	return resp, nil
}
