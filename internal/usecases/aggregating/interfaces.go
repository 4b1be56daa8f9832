package aggregating

import (
	"time"

	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"
)

// CurrencyConverter define a interface para converter valores entre moedas
type CurrencyConverter interface {
	// ToBase converte um valor de uma moeda qualquer para a moeda base do painel
	ToBase(amount float64, currencyCode string) float64

	// BaseCurrency retorna o código da moeda base do painel
	BaseCurrency() string
}

// Aggregator define a interface para mesclar relatórios de várias contas
type Aggregator interface {
	// MergeAccountRows mescla as linhas de várias contas pela chave normalizada
	MergeAccountRows(accountRows []*domain.AccountDayRows) []*domain.ReportRow

	// MergeDailyRows mescla as linhas de vários dias pela mesma chave, para a
	// visão agregada de um período
	MergeDailyRows(reports []*domain.DailyReport) []*domain.ReportRow

	// BuildDailyReport monta o relatório consolidado de um dia a partir das
	// linhas de cada conta e das falhas por conta
	BuildDailyReport(date time.Time, dimension domain.ReportDimension, accountRows []*domain.AccountDayRows, failures []domain.AccountFailure) *domain.DailyReport

	// MergeRangeTotals consolida os totais de vários dias em um total do período
	MergeRangeTotals(reports []*domain.DailyReport) *domain.ReportTotals
}
