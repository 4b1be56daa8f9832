package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/usecases/aggregating/mocks"
)

func TestNormalizeRowKey(t *testing.T) {
	tests := []struct {
		name     string
		row      *domain.ReportRow
		expected string
	}{
		{
			name:     "Deve usar o domínio quando presente",
			row:      &domain.ReportRow{Domain: "news.example.com", AdUnitName: "Home Top", AccountName: "WeHub BR"},
			expected: "news.example.com",
		},
		{
			name:     "Deve qualificar o bloco pelo nome da conta quando não há domínio",
			row:      &domain.ReportRow{AdUnitName: "Home Top", AccountName: "WeHub BR"},
			expected: "Home Top (WeHub BR)",
		},
		{
			name:     "Deve usar o nome da conta quando só ele existe",
			row:      &domain.ReportRow{AccountName: "WeHub BR"},
			expected: "WeHub BR",
		},
		{
			name:     "Deve cair em unknown quando a linha não tem identidade",
			row:      &domain.ReportRow{Impressions: 100},
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeRowKey(tt.row))
		})
	}
}

func TestService_MergeAccountRows(t *testing.T) {
	tests := []struct {
		name        string
		accountRows []*domain.AccountDayRows
		validate    func(t *testing.T, rows []*domain.ReportRow)
	}{
		{
			name: "Deve somar contadores de contas diferentes na mesma chave",
			accountRows: []*domain.AccountDayRows{
				{
					AccountID:    "ACC001",
					AccountName:  "WeHub BR",
					CurrencyCode: "BRL",
					Rows: []*domain.ReportRow{
						{Domain: "news.example.com", AccountName: "WeHub BR", Impressions: 1000, Clicks: 10, RequestsServed: 2000, Unfilled: 100, Revenue: 25.50, CurrencyCode: "BRL"},
					},
				},
				{
					AccountID:    "ACC002",
					AccountName:  "WeHub BR 2",
					CurrencyCode: "BRL",
					Rows: []*domain.ReportRow{
						{Domain: "news.example.com", AccountName: "WeHub BR 2", Impressions: 3000, Clicks: 30, RequestsServed: 4000, Unfilled: 50, Revenue: 29.70, CurrencyCode: "BRL"},
					},
				},
			},
			validate: func(t *testing.T, rows []*domain.ReportRow) {
				assert.Len(t, rows, 1)

				row := rows[0]
				assert.Equal(t, "news.example.com", row.Key)
				assert.Equal(t, int64(4000), row.Impressions)
				assert.Equal(t, int64(40), row.Clicks)
				assert.Equal(t, int64(6000), row.RequestsServed)
				assert.Equal(t, int64(150), row.Unfilled)
				assert.Equal(t, 55.20, row.Revenue)
				assert.Equal(t, "BRL", row.CurrencyCode)
				assert.Equal(t, 2, row.AccountCount)
				assert.Equal(t, []string{"WeHub BR", "WeHub BR 2"}, row.Accounts)
				assert.Equal(t, []string{"BRL"}, row.Currencies)

				// Chave compartilhada por contas diferentes deixa de apontar uma conta única
				assert.Empty(t, row.AccountName)

				// Métricas derivadas recalculadas a partir dos valores mesclados
				assert.Equal(t, 13.80, row.ECPM)
				assert.Equal(t, 1.0, row.CTR)
				assert.Equal(t, 66.67, row.PMR)
			},
		},
		{
			name: "Deve detalhar a receita por moeda quando as moedas divergem",
			accountRows: []*domain.AccountDayRows{
				{
					AccountID:    "ACC001",
					AccountName:  "WeHub BR",
					CurrencyCode: "BRL",
					Rows: []*domain.ReportRow{
						{Domain: "shop.example.com", AccountName: "WeHub BR", Impressions: 1000, Revenue: 100.00, CurrencyCode: "BRL"},
					},
				},
				{
					AccountID:    "ACC002",
					AccountName:  "WeHub US",
					CurrencyCode: "USD",
					Rows: []*domain.ReportRow{
						{Domain: "shop.example.com", AccountName: "WeHub US", Impressions: 500, Revenue: 40.00, CurrencyCode: "USD"},
					},
				},
			},
			validate: func(t *testing.T, rows []*domain.ReportRow) {
				assert.Len(t, rows, 1)

				row := rows[0]
				assert.Equal(t, int64(1500), row.Impressions)

				// Receita mesclada zerada: moedas diferentes nunca se somam
				assert.Equal(t, 0.0, row.Revenue)
				assert.Empty(t, row.CurrencyCode)
				assert.Equal(t, map[string]float64{"BRL": 100.00, "USD": 40.00}, row.RevenueByCurrency)
				assert.Equal(t, []string{"WeHub BR", "WeHub US"}, row.Accounts)
				assert.Equal(t, []string{"BRL", "USD"}, row.Currencies)
				assert.Equal(t, 0.0, row.ECPM)
			},
		},
		{
			name: "Deve usar a moeda da conta quando a linha não traz o código",
			accountRows: []*domain.AccountDayRows{
				{
					AccountID:    "ACC003",
					AccountName:  "WeHub PT",
					CurrencyCode: "EUR",
					Rows: []*domain.ReportRow{
						{AdUnitName: "Home Top", AccountName: "WeHub PT", Impressions: 200, Revenue: 10.00},
					},
				},
			},
			validate: func(t *testing.T, rows []*domain.ReportRow) {
				assert.Len(t, rows, 1)

				row := rows[0]
				assert.Equal(t, "Home Top (WeHub PT)", row.Key)
				assert.Equal(t, "EUR", row.CurrencyCode)
				assert.Equal(t, 10.00, row.Revenue)
				assert.Equal(t, 1, row.AccountCount)
			},
		},
		{
			name: "Deve preservar o PMR ponderado quando não há requisições atendidas",
			accountRows: []*domain.AccountDayRows{
				{
					AccountID:    "ACC001",
					CurrencyCode: "USD",
					Rows: []*domain.ReportRow{
						{Domain: "blog.example.com", Impressions: 1000, PMR: 60.0},
					},
				},
				{
					AccountID:    "ACC002",
					CurrencyCode: "USD",
					Rows: []*domain.ReportRow{
						{Domain: "blog.example.com", Impressions: 3000, PMR: 80.0},
					},
				},
			},
			validate: func(t *testing.T, rows []*domain.ReportRow) {
				assert.Len(t, rows, 1)

				// (60*1000 + 80*3000) / 4000
				assert.Equal(t, 75.0, rows[0].PMR)
			},
		},
		{
			name: "Deve ordenar por impressões decrescentes e desempatar pela chave",
			accountRows: []*domain.AccountDayRows{
				{
					AccountID:    "ACC001",
					CurrencyCode: "USD",
					Rows: []*domain.ReportRow{
						{Domain: "zeta.example.com", Impressions: 100},
						{Domain: "alpha.example.com", Impressions: 500},
						{Domain: "beta.example.com", Impressions: 100},
					},
				},
			},
			validate: func(t *testing.T, rows []*domain.ReportRow) {
				assert.Len(t, rows, 3)
				assert.Equal(t, "alpha.example.com", rows[0].Key)
				assert.Equal(t, "beta.example.com", rows[1].Key)
				assert.Equal(t, "zeta.example.com", rows[2].Key)
			},
		},
		{
			name: "Deve manter chaves distintas separadas",
			accountRows: []*domain.AccountDayRows{
				{
					AccountID:    "ACC001",
					AccountName:  "WeHub BR",
					CurrencyCode: "BRL",
					Rows: []*domain.ReportRow{
						{Domain: "news.example.com", Impressions: 1000},
						{AdUnitName: "Home Top", AccountName: "WeHub BR", Impressions: 500},
					},
				},
			},
			validate: func(t *testing.T, rows []*domain.ReportRow) {
				assert.Len(t, rows, 2)
				assert.Equal(t, "news.example.com", rows[0].Key)
				assert.Equal(t, "Home Top (WeHub BR)", rows[1].Key)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &Service{}

			rows := service.MergeAccountRows(tt.accountRows)

			if tt.validate != nil {
				tt.validate(t, rows)
			}
		})
	}
}

func TestService_BuildDailyReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		accountRows []*domain.AccountDayRows
		failures    []domain.AccountFailure
		setup       func(currency *mocks.MockCurrencyConverter)
		validate    func(t *testing.T, report *domain.DailyReport)
	}{
		{
			name: "Deve consolidar os totais na moeda base preservando o detalhamento",
			accountRows: []*domain.AccountDayRows{
				{
					AccountID:    "ACC001",
					AccountName:  "WeHub BR",
					CurrencyCode: "BRL",
					Rows: []*domain.ReportRow{
						{Domain: "news.example.com", Impressions: 1000, Clicks: 20, RequestsServed: 2000, Revenue: 100.00, CurrencyCode: "BRL"},
					},
				},
				{
					AccountID:    "ACC002",
					AccountName:  "WeHub US",
					CurrencyCode: "USD",
					Rows: []*domain.ReportRow{
						{Domain: "shop.example.com", Impressions: 500, Clicks: 5, RequestsServed: 1000, Revenue: 40.00, CurrencyCode: "USD"},
					},
				},
			},
			setup: func(currency *mocks.MockCurrencyConverter) {
				currency.EXPECT().BaseCurrency().Return("USD").AnyTimes()
				currency.EXPECT().ToBase(100.00, "BRL").Return(19.00).AnyTimes()
				currency.EXPECT().ToBase(40.00, "USD").Return(40.00).AnyTimes()
			},
			validate: func(t *testing.T, report *domain.DailyReport) {
				assert.Equal(t, "2026-08-20", report.Date)
				assert.Equal(t, domain.DimensionAdUnit, report.Dimension)
				assert.Len(t, report.Rows, 2)
				assert.Equal(t, 2, report.AccountCount)
				assert.Equal(t, []string{"WeHub BR", "WeHub US"}, report.Accounts)
				assert.False(t, report.Partial)
				assert.False(t, report.FetchedAt.IsZero())

				totals := report.Totals
				assert.Equal(t, int64(1500), totals.Impressions)
				assert.Equal(t, int64(25), totals.Clicks)
				assert.Equal(t, int64(3000), totals.RequestsServed)
				assert.Equal(t, "USD", totals.CurrencyCode)
				assert.Equal(t, 59.00, totals.Revenue)
				assert.Equal(t, map[string]float64{"BRL": 100.00, "USD": 40.00}, totals.RevenueByCurrency)
				assert.Equal(t, 39.33, totals.ECPM)
				assert.Equal(t, 1.67, totals.CTR)
				assert.Equal(t, 50.0, totals.PMR)
			},
		},
		{
			name: "Deve marcar o relatório como parcial quando há contas com falha",
			accountRows: []*domain.AccountDayRows{
				{
					AccountID:    "ACC001",
					AccountName:  "WeHub BR",
					CurrencyCode: "BRL",
					Rows: []*domain.ReportRow{
						{Domain: "news.example.com", Impressions: 1000, Revenue: 50.00, CurrencyCode: "BRL"},
					},
				},
			},
			failures: []domain.AccountFailure{
				{AccountID: "ACC009", AccountName: "WeHub MX", Reason: "auth_expired"},
			},
			setup: func(currency *mocks.MockCurrencyConverter) {
				currency.EXPECT().BaseCurrency().Return("USD").AnyTimes()
				currency.EXPECT().ToBase(50.00, "BRL").Return(9.50).AnyTimes()
			},
			validate: func(t *testing.T, report *domain.DailyReport) {
				assert.True(t, report.Partial)
				assert.Len(t, report.FailedAccounts, 1)
				assert.Equal(t, "ACC009", report.FailedAccounts[0].AccountID)
				assert.Equal(t, 1, report.AccountCount)
			},
		},
		{
			name:        "Deve montar um relatório vazio quando não há contas",
			accountRows: nil,
			setup: func(currency *mocks.MockCurrencyConverter) {
				currency.EXPECT().BaseCurrency().Return("USD").AnyTimes()
			},
			validate: func(t *testing.T, report *domain.DailyReport) {
				assert.Empty(t, report.Rows)
				assert.Equal(t, 0, report.AccountCount)
				assert.False(t, report.Partial)
				assert.Equal(t, 0.0, report.Totals.Revenue)
				assert.Equal(t, "USD", report.Totals.CurrencyCode)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCurrency := mocks.NewMockCurrencyConverter(ctrl)

			service := &Service{
				currencyService: mockCurrency,
			}

			if tt.setup != nil {
				tt.setup(mockCurrency)
			}

			report := service.BuildDailyReport(date, domain.DimensionAdUnit, tt.accountRows, tt.failures)

			if tt.validate != nil {
				tt.validate(t, report)
			}
		})
	}
}

func TestService_MergeDailyRows(t *testing.T) {
	service := &Service{}

	reports := []*domain.DailyReport{
		{
			Date: "2026-08-18",
			Rows: []*domain.ReportRow{
				{Key: "news.example.com", Domain: "news.example.com", Impressions: 1000, Clicks: 10, RequestsServed: 2000, Revenue: 20.00, CurrencyCode: "USD", Accounts: []string{"WeHub BR"}},
			},
		},
		nil,
		{
			Date: "2026-08-19",
			Rows: []*domain.ReportRow{
				{Key: "news.example.com", Domain: "news.example.com", Impressions: 2000, Clicks: 30, RequestsServed: 2000, Revenue: 30.00, CurrencyCode: "USD", Accounts: []string{"WeHub BR", "WeHub US"}},
				{Key: "shop.example.com", Domain: "shop.example.com", Impressions: 500, Clicks: 5, RequestsServed: 1000, Revenue: 10.00, CurrencyCode: "USD"},
			},
		},
	}

	rows := service.MergeDailyRows(reports)

	assert.Len(t, rows, 2)

	news := rows[0]
	assert.Equal(t, "news.example.com", news.Key)
	assert.Equal(t, int64(3000), news.Impressions)
	assert.Equal(t, int64(40), news.Clicks)
	assert.Equal(t, 50.00, news.Revenue)
	assert.Equal(t, "USD", news.CurrencyCode)

	// Listas de contas dos dias entram na união, sem duplicar
	assert.Equal(t, []string{"WeHub BR", "WeHub US"}, news.Accounts)
	assert.Equal(t, 2, news.AccountCount)
	assert.Equal(t, []string{"USD"}, news.Currencies)

	shop := rows[1]
	assert.Equal(t, "shop.example.com", shop.Key)
	assert.Equal(t, int64(500), shop.Impressions)
}

func TestService_MergeRangeTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCurrency := mocks.NewMockCurrencyConverter(ctrl)
	mockCurrency.EXPECT().BaseCurrency().Return("USD").AnyTimes()

	service := &Service{
		currencyService: mockCurrency,
	}

	reports := []*domain.DailyReport{
		{
			Totals: &domain.ReportTotals{
				Impressions:       1000,
				Clicks:            10,
				RequestsServed:    2000,
				Unfilled:          100,
				Revenue:           59.00,
				CurrencyCode:      "USD",
				RevenueByCurrency: map[string]float64{"BRL": 100.00, "USD": 40.00},
			},
		},
		nil,
		{
			Totals: &domain.ReportTotals{
				Impressions:       500,
				Clicks:            5,
				RequestsServed:    1000,
				Unfilled:          50,
				Revenue:           41.00,
				CurrencyCode:      "USD",
				RevenueByCurrency: map[string]float64{"USD": 41.00},
			},
		},
	}

	totals := service.MergeRangeTotals(reports)

	assert.Equal(t, int64(1500), totals.Impressions)
	assert.Equal(t, int64(15), totals.Clicks)
	assert.Equal(t, int64(3000), totals.RequestsServed)
	assert.Equal(t, int64(150), totals.Unfilled)

	// A receita diária já está na moeda base, então o período apenas soma
	assert.Equal(t, 100.00, totals.Revenue)
	assert.Equal(t, "USD", totals.CurrencyCode)
	assert.Equal(t, map[string]float64{"BRL": 100.00, "USD": 81.00}, totals.RevenueByCurrency)

	assert.Equal(t, 66.67, totals.ECPM)
	assert.Equal(t, 1.0, totals.CTR)
	assert.Equal(t, 50.0, totals.PMR)
}
