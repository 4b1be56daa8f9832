package gamclient

import (
	"context"
	"net/http"
	"time"

	gamdomain "github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/integrator/admanager/domain"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/config"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"
)

type Client interface {
	GetDailyReportByAccount(ctx context.Context, account *domain.NetworkAccount, date time.Time, dimension domain.ReportDimension) (*gamdomain.DailyReportResponse, error)
	RefreshToken(ctx context.Context, account *domain.NetworkAccount) error
	EnsureValidToken(ctx context.Context, account *domain.NetworkAccount) error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type GAMClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	client := &GAMClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
	}
	return client
}

// RefreshToken renova o token de acesso da conta junto ao provedor OAuth
func (c *GAMClient) RefreshToken(ctx context.Context, account *domain.NetworkAccount) error {
	return c.TokenManager.RefreshToken(ctx, account)
}

// EnsureValidToken verifica se o token da conta é válido e tenta renová-lo se necessário
func (c *GAMClient) EnsureValidToken(ctx context.Context, account *domain.NetworkAccount) error {
	return c.TokenManager.EnsureValidToken(ctx, account)
}

// HandleResponse manipula a resposta HTTP e classifica os erros da API
func (c *GAMClient) HandleResponse(resp *http.Response) ([]byte, error) {
	return c.TokenManager.HandleResponse(resp)
}
