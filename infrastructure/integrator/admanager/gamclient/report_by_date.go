package gamclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	gamdomain "github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/integrator/admanager/domain"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"
	"github.com/lddanielsoares2-wq/dashboard-wehub/pkg/utils"
)

func (c *GAMClient) GetDailyReportByAccount(ctx context.Context, account *domain.NetworkAccount, date time.Time, dimension domain.ReportDimension) (*gamdomain.DailyReportResponse, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(ctx, account); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	response, err := c.doDailyReportRequest(ctx, account, date, dimension)
	if err != nil {
		// O provedor pode rejeitar um token que ainda parecia válido. Nesse caso
		// forçamos uma renovação e repetimos a requisição uma única vez
		var apiErr *gamdomain.APIError
		if errors.As(err, &apiErr) && apiErr.AuthExpired() {
			logrus.Warnf("Token da conta %s rejeitado pela API. Renovando e repetindo a requisição...", account.ID)

			if refreshErr := c.RefreshToken(ctx, account); refreshErr != nil {
				return nil, refreshErr
			}

			return c.doDailyReportRequest(ctx, account, date, dimension)
		}
		return nil, err
	}

	return response, nil
}

func (c *GAMClient) doDailyReportRequest(ctx context.Context, account *domain.NetworkAccount, date time.Time, dimension domain.ReportDimension) (*gamdomain.DailyReportResponse, error) {
	baseURL := fmt.Sprintf("%s/networks/%s/reports/daily", c.Cfg.AdManager.URL, account.NetworkCode)

	params := url.Values{}
	params.Add("date", date.Format(time.DateOnly))
	params.Add("dimension", string(dimension))

	requestURL := baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+account.AccessToken)

	client := &http.Client{
		Timeout: time.Duration(c.Cfg.AdManager.RequestTimeoutSeconds) * time.Second,
	}

	resp, err := client.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		return nil, err
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debugf("gamclient: resposta bruta da rede %s: %s", account.NetworkCode, utils.PrettyJson(body))
	}

	var response gamdomain.DailyReportResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	// Um dia sem tráfego volta sem linhas e continua sendo um dia válido
	if response.CurrencyCode == "" {
		response.CurrencyCode = account.CurrencyCode
	}

	return &response, nil
}
