package aggregating

import (
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"
	"github.com/lddanielsoares2-wq/dashboard-wehub/pkg/utils"
)

// mergedRow acompanha a agregação de uma chave durante a mesclagem. As contas
// contribuintes são identificadas pelo nome de exibição.
type mergedRow struct {
	row           *domain.ReportRow
	revenueByCode map[string]decimal.Decimal
	pmrWeighted   float64
	accounts      map[string]struct{}
	currencies    map[string]struct{}
	maxAccounts   int
}

type Service struct {
	currencyService CurrencyConverter
}

// NewService cria uma nova instância do serviço de agregação
func NewService(currencyService CurrencyConverter) Aggregator {
	return &Service{
		currencyService: currencyService,
	}
}

// normalizeRowKey define a identidade de uma linha na mesclagem entre contas.
// O domínio vence quando existe, senão o bloco qualificado pela conta, senão a
// própria conta, senão "unknown"
func normalizeRowKey(row *domain.ReportRow) string {
	if row.Domain != "" {
		return row.Domain
	}

	if row.AdUnitName != "" {
		return fmt.Sprintf("%s (%s)", row.AdUnitName, row.AccountName)
	}

	if row.AccountName != "" {
		return row.AccountName
	}

	return "unknown"
}

func accountLabel(accountDay *domain.AccountDayRows) string {
	if accountDay.AccountName != "" {
		return accountDay.AccountName
	}
	return accountDay.AccountID
}

func obtainMergedRow(merged map[string]*mergedRow, row *domain.ReportRow) *mergedRow {
	key := normalizeRowKey(row)

	agg, ok := merged[key]
	if !ok {
		agg = &mergedRow{
			row: &domain.ReportRow{
				Key:         key,
				AdUnitName:  row.AdUnitName,
				AccountName: row.AccountName,
				Domain:      row.Domain,
			},
			revenueByCode: make(map[string]decimal.Decimal),
			accounts:      make(map[string]struct{}),
			currencies:    make(map[string]struct{}),
		}
		merged[key] = agg
	}

	return agg
}

// add acumula uma linha na chave. Contadores somam sempre; receita só se
// acumula dentro da mesma moeda.
func (agg *mergedRow) add(row *domain.ReportRow, fallbackCurrency string) {
	agg.row.Impressions += row.Impressions
	agg.row.Clicks += row.Clicks
	agg.row.RequestsServed += row.RequestsServed
	agg.row.Unfilled += row.Unfilled

	// Uma chave compartilhada por contas diferentes deixa de apontar uma conta única
	if agg.row.AccountName != row.AccountName {
		agg.row.AccountName = ""
	}

	// Linhas já mescladas carregam a própria lista de contas; linhas cruas
	// contribuem com a conta de origem
	if len(row.Accounts) > 0 {
		for _, name := range row.Accounts {
			agg.accounts[name] = struct{}{}
		}
	} else if row.AccountName != "" {
		agg.accounts[row.AccountName] = struct{}{}
	}

	for _, code := range row.Currencies {
		agg.currencies[code] = struct{}{}
	}

	if row.RevenueByCurrency != nil {
		for code, amount := range row.RevenueByCurrency {
			agg.currencies[code] = struct{}{}
			agg.revenueByCode[code] = agg.revenueByCode[code].Add(decimal.NewFromFloat(amount))
		}
	} else {
		code := row.CurrencyCode
		if code == "" {
			code = fallbackCurrency
		}
		if code != "" {
			agg.currencies[code] = struct{}{}
		}
		if row.Revenue != 0 {
			agg.revenueByCode[code] = agg.revenueByCode[code].Add(decimal.NewFromFloat(row.Revenue))
		}
	}

	// Percentual de viewability preservado entra ponderado por impressões
	if row.RequestsServed == 0 && row.PMR > 0 {
		agg.pmrWeighted += row.PMR * float64(row.Impressions)
	}

	if row.AccountCount > agg.maxAccounts {
		agg.maxAccounts = row.AccountCount
	}
}

func (agg *mergedRow) finalize() *domain.ReportRow {
	row := agg.row

	row.AccountCount = len(agg.accounts)
	if agg.maxAccounts > row.AccountCount {
		row.AccountCount = agg.maxAccounts
	}

	if len(agg.accounts) > 0 {
		row.Accounts = lo.Keys(agg.accounts)
		sort.Strings(row.Accounts)
	}
	if len(agg.currencies) > 0 {
		row.Currencies = lo.Keys(agg.currencies)
		sort.Strings(row.Currencies)
	}

	switch len(agg.revenueByCode) {
	case 0:
		row.Revenue = 0
	case 1:
		for code, total := range agg.revenueByCode {
			row.Revenue = total.Round(2).InexactFloat64()
			row.CurrencyCode = code
		}
	default:
		// Moedas diferentes nunca se somam: a receita fica detalhada por moeda
		// e o valor mesclado é zerado para não inventar um número sem unidade
		row.Revenue = 0
		row.CurrencyCode = ""
		row.RevenueByCurrency = make(map[string]float64, len(agg.revenueByCode))
		for code, total := range agg.revenueByCode {
			row.RevenueByCurrency[code] = total.Round(2).InexactFloat64()
		}
	}

	row.ECPM, row.CTR, row.PMR = computeRatios(row.Revenue, row.Impressions, row.Clicks, row.RequestsServed)

	if row.RequestsServed == 0 && row.Impressions > 0 && agg.pmrWeighted > 0 {
		row.PMR = utils.RoundWithTwoDecimalPlace(agg.pmrWeighted / float64(row.Impressions))
	}

	return row
}

func finalizeRows(merged map[string]*mergedRow) []*domain.ReportRow {
	rows := make([]*domain.ReportRow, 0, len(merged))
	for _, agg := range merged {
		rows = append(rows, agg.finalize())
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Impressions != rows[j].Impressions {
			return rows[i].Impressions > rows[j].Impressions
		}
		return rows[i].Key < rows[j].Key
	})

	return rows
}

// MergeAccountRows mescla as linhas de várias contas pela chave normalizada
func (s *Service) MergeAccountRows(accountRows []*domain.AccountDayRows) []*domain.ReportRow {
	merged := make(map[string]*mergedRow)

	for _, accountDay := range accountRows {
		if accountDay == nil {
			continue
		}

		label := accountLabel(accountDay)
		for _, row := range accountDay.Rows {
			agg := obtainMergedRow(merged, row)
			agg.add(row, accountDay.CurrencyCode)

			if label != "" {
				agg.accounts[label] = struct{}{}
			}
		}
	}

	return finalizeRows(merged)
}

// MergeDailyRows mescla as linhas de vários dias pela mesma chave normalizada,
// para a visão agregada de um período
func (s *Service) MergeDailyRows(reports []*domain.DailyReport) []*domain.ReportRow {
	merged := make(map[string]*mergedRow)

	for _, report := range reports {
		if report == nil {
			continue
		}

		for _, row := range report.Rows {
			agg := obtainMergedRow(merged, row)
			agg.add(row, "")
		}
	}

	return finalizeRows(merged)
}

// computeRatios recalcula as métricas derivadas a partir dos valores mesclados.
// Somar eCPM ou CTR de linhas diferentes produziria média de médias.
func computeRatios(revenue float64, impressions, clicks, requests int64) (ecpm, ctr, pmr float64) {
	if impressions > 0 {
		ecpm = utils.RoundWithTwoDecimalPlace(revenue / float64(impressions) * 1000)
		ctr = utils.RoundWithTwoDecimalPlace(float64(clicks) / float64(impressions) * 100)
	}

	if requests > 0 {
		pmr = utils.RoundWithTwoDecimalPlace(float64(impressions) / float64(requests) * 100)
	}

	return ecpm, ctr, pmr
}

// BuildDailyReport monta o relatório consolidado de um dia a partir das linhas
// de cada conta e das falhas por conta
func (s *Service) BuildDailyReport(date time.Time, dimension domain.ReportDimension, accountRows []*domain.AccountDayRows, failures []domain.AccountFailure) *domain.DailyReport {
	rows := s.MergeAccountRows(accountRows)
	totals := s.buildTotals(rows)

	accounts := lo.Uniq(lo.FilterMap(accountRows, func(accountDay *domain.AccountDayRows, _ int) (string, bool) {
		if accountDay == nil {
			return "", false
		}
		label := accountLabel(accountDay)
		return label, label != ""
	}))
	sort.Strings(accounts)

	logrus.WithFields(logrus.Fields{
		"date":     date.Format(time.DateOnly),
		"accounts": len(accountRows),
		"rows":     len(rows),
		"failures": len(failures),
	}).Debug("aggregation: merged account rows into daily report")

	return &domain.DailyReport{
		Date:           date.Format(time.DateOnly),
		Dimension:      dimension,
		Rows:           rows,
		Totals:         totals,
		AccountCount:   len(accountRows),
		Accounts:       accounts,
		Partial:        len(failures) > 0,
		FailedAccounts: failures,
		FetchedAt:      time.Now().UTC(),
	}
}

// buildTotals consolida os contadores e converte a receita para a moeda base,
// preservando o detalhamento por moeda original
func (s *Service) buildTotals(rows []*domain.ReportRow) *domain.ReportTotals {
	totals := &domain.ReportTotals{
		Impressions:    lo.SumBy(rows, func(r *domain.ReportRow) int64 { return r.Impressions }),
		Clicks:         lo.SumBy(rows, func(r *domain.ReportRow) int64 { return r.Clicks }),
		RequestsServed: lo.SumBy(rows, func(r *domain.ReportRow) int64 { return r.RequestsServed }),
		Unfilled:       lo.SumBy(rows, func(r *domain.ReportRow) int64 { return r.Unfilled }),
		CurrencyCode:   s.currencyService.BaseCurrency(),
	}

	revenueByCode := make(map[string]decimal.Decimal)
	for _, row := range rows {
		if row.RevenueByCurrency != nil {
			for code, amount := range row.RevenueByCurrency {
				revenueByCode[code] = revenueByCode[code].Add(decimal.NewFromFloat(amount))
			}
			continue
		}

		if row.Revenue != 0 {
			revenueByCode[row.CurrencyCode] = revenueByCode[row.CurrencyCode].Add(decimal.NewFromFloat(row.Revenue))
		}
	}

	if len(revenueByCode) > 0 {
		totals.RevenueByCurrency = make(map[string]float64, len(revenueByCode))
	}

	base := decimal.Zero
	for code, amount := range revenueByCode {
		totals.RevenueByCurrency[code] = amount.Round(2).InexactFloat64()
		base = base.Add(decimal.NewFromFloat(s.currencyService.ToBase(amount.InexactFloat64(), code)))
	}
	totals.Revenue = base.Round(2).InexactFloat64()

	totals.ECPM, totals.CTR, totals.PMR = computeRatios(totals.Revenue, totals.Impressions, totals.Clicks, totals.RequestsServed)

	return totals
}

// MergeRangeTotals consolida os totais de vários dias em um total do período.
// A receita de cada dia já está na moeda base, então aqui ela apenas soma.
func (s *Service) MergeRangeTotals(reports []*domain.DailyReport) *domain.ReportTotals {
	totals := &domain.ReportTotals{
		CurrencyCode: s.currencyService.BaseCurrency(),
	}

	revenueByCode := make(map[string]decimal.Decimal)
	base := decimal.Zero

	for _, report := range reports {
		if report == nil || report.Totals == nil {
			continue
		}

		totals.Impressions += report.Totals.Impressions
		totals.Clicks += report.Totals.Clicks
		totals.RequestsServed += report.Totals.RequestsServed
		totals.Unfilled += report.Totals.Unfilled

		base = base.Add(decimal.NewFromFloat(report.Totals.Revenue))

		for code, amount := range report.Totals.RevenueByCurrency {
			revenueByCode[code] = revenueByCode[code].Add(decimal.NewFromFloat(amount))
		}
	}

	if len(revenueByCode) > 0 {
		totals.RevenueByCurrency = make(map[string]float64, len(revenueByCode))
		for code, amount := range revenueByCode {
			totals.RevenueByCurrency[code] = amount.Round(2).InexactFloat64()
		}
	}

	totals.Revenue = base.Round(2).InexactFloat64()
	totals.ECPM, totals.CTR, totals.PMR = computeRatios(totals.Revenue, totals.Impressions, totals.Clicks, totals.RequestsServed)

	return totals
}
