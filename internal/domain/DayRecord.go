package domain

import (
	"sort"
	"time"
)

// DayRecord representa o relatório agregado de um dia armazenado no banco,
// um registro por combinação de usuário, data e dimensão
type DayRecord struct {
	ID           string          `json:"id"`
	UserID       int             `json:"user_id"`
	Date         time.Time       `json:"date"`
	Dimension    ReportDimension `json:"dimension"`
	Rows         []*ReportRow    `json:"rows"`
	Totals       *ReportTotals   `json:"totals"`
	AccountCount int             `json:"account_count"`
	Complete     bool            `json:"complete"`
	Partial      bool            `json:"partial"`
	FetchedAt    time.Time       `json:"fetched_at"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (r *DayRecord) IsEmpty() bool {
	if r == nil {
		return true
	}

	return len(r.Rows) == 0 && r.AccountCount == 0
}

// ToDailyReport converte o registro persistido para o formato de resposta da API.
// O registro não guarda detalhe por conta, então a lista de contas do dia é
// reconstruída a partir das linhas.
func (r *DayRecord) ToDailyReport() *DailyReport {
	if r == nil {
		return nil
	}

	return &DailyReport{
		Date:         r.Date.Format(time.DateOnly),
		Dimension:    r.Dimension,
		Rows:         r.Rows,
		Totals:       r.Totals,
		AccountCount: r.AccountCount,
		Accounts:     r.accountNames(),
		Complete:     r.Complete,
		Partial:      r.Partial,
		FetchedAt:    r.FetchedAt,
	}
}

func (r *DayRecord) accountNames() []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)

	for _, row := range r.Rows {
		contributors := row.Accounts
		if len(contributors) == 0 && row.AccountName != "" {
			contributors = []string{row.AccountName}
		}

		for _, name := range contributors {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names
}
