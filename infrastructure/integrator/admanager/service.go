package admanager

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	gamdomain "github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/integrator/admanager/domain"
	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/integrator/admanager/gamclient"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/config"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"
)

type AdManagerIntegrator struct {
	cfg    *config.Config
	Client gamclient.Client
}

func New(cfg *config.Config, client gamclient.Client) *AdManagerIntegrator {
	return &AdManagerIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetAccountDayRows busca o relatório de um dia de uma conta e converte as
// linhas cruas da API nas linhas de relatório do domínio
func (s *AdManagerIntegrator) GetAccountDayRows(ctx context.Context, account *domain.NetworkAccount, date time.Time, dimension domain.ReportDimension) (*domain.AccountDayRows, error) {
	resp, err := s.Client.GetDailyReportByAccount(ctx, account, date, dimension)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"date":       date.Format(time.DateOnly),
			"error":      err.Error(),
		}).Error("reports: failed to get daily report from API")
		return nil, err
	}

	rows := FactoryReportRows(resp, account)

	logrus.WithFields(logrus.Fields{
		"account_id":   account.ID,
		"account_name": account.DisplayName(),
		"date":         date.Format(time.DateOnly),
		"rows":         len(rows),
	}).Debug("reports: successfully retrieved daily report")

	return &domain.AccountDayRows{
		AccountID:    account.ID,
		AccountName:  account.DisplayName(),
		CurrencyCode: resp.CurrencyCode,
		Rows:         rows,
	}, nil
}

// FactoryReportRows converte as linhas cruas do Ad Manager em linhas do domínio.
// A receita chega em micros e é convertida para a unidade da moeda da conta; as
// requisições atendidas derivam de impressões somadas às não preenchidas.
func FactoryReportRows(resp *gamdomain.DailyReportResponse, account *domain.NetworkAccount) []*domain.ReportRow {
	micros := decimal.NewFromInt(1_000_000)

	rows := make([]*domain.ReportRow, 0, len(resp.Rows))
	for _, raw := range resp.Rows {
		row := &domain.ReportRow{
			AdUnitName:   raw.AdUnitName,
			AccountName:  account.DisplayName(),
			Domain:       raw.Domain,
			Impressions:  raw.Impressions,
			Clicks:       raw.Clicks,
			Unfilled:     raw.UnfilledImpressions,
			Revenue:      decimal.NewFromInt(raw.RevenueMicros).Div(micros).InexactFloat64(),
			CurrencyCode: resp.CurrencyCode,
		}

		// Redes antigas mandam viewability como percentual pronto, sem contagem
		// de não preenchidas. Nesse caso o percentual é preservado como PMR
		if raw.ViewablePercent != nil && raw.UnfilledImpressions == 0 {
			row.PMR = *raw.ViewablePercent
		} else {
			row.RequestsServed = raw.Impressions + raw.UnfilledImpressions
		}

		rows = append(rows, row)
	}

	return rows
}
