package fetching

import (
	"context"
	"time"

	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"
)

// AdManagerFetcher define a interface para buscar relatórios diários no Ad Manager
type AdManagerFetcher interface {
	// GetAccountDayRows busca as linhas de um dia de uma conta, já convertidas
	GetAccountDayRows(ctx context.Context, account *domain.NetworkAccount, date time.Time, dimension domain.ReportDimension) (*domain.AccountDayRows, error)
}

// Fetcher define a interface para buscar um dia em todas as contas de um usuário
type Fetcher interface {
	// FetchDay percorre as contas habilitadas do usuário em lotes e devolve as
	// linhas de cada conta junto com as falhas por conta
	FetchDay(ctx context.Context, userID int, date time.Time, dimension domain.ReportDimension) (*DayFetchResult, error)
}

// DayFetchResult é o resultado da varredura de um dia nas contas do usuário
type DayFetchResult struct {
	AccountRows []*domain.AccountDayRows
	Failures    []domain.AccountFailure
	Enumerated  int
}

// Complete indica se todas as contas habilitadas responderam
func (r *DayFetchResult) Complete() bool {
	return len(r.Failures) == 0
}
