package domain

import (
	"time"
)

type ReportDimension string

const (
	DimensionAdUnit ReportDimension = "AD_UNIT"
	DimensionDate   ReportDimension = "DATE"
)

func (d ReportDimension) Valid() bool {
	return d == DimensionAdUnit || d == DimensionDate
}

type ReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Dimension ReportDimension
}

// ReportRow é uma linha agregada do relatório; linhas de contas diferentes
// com a mesma chave normalizada são mescladas em uma só
type ReportRow struct {
	Key               string             `json:"key"`
	AdUnitName        string             `json:"ad_unit_name,omitempty"`
	AccountName       string             `json:"account_name,omitempty"`
	Domain            string             `json:"domain,omitempty"`
	Impressions       int64              `json:"impressions"`
	Clicks            int64              `json:"clicks"`
	RequestsServed    int64              `json:"requests_served"`
	Unfilled          int64              `json:"unfilled"`
	Revenue           float64            `json:"revenue"`
	CurrencyCode      string             `json:"currency_code,omitempty"`
	RevenueByCurrency map[string]float64 `json:"revenue_by_currency,omitempty"`
	ECPM              float64            `json:"ecpm"`
	CTR               float64            `json:"ctr"`
	PMR               float64            `json:"pmr"`
	AccountCount      int                `json:"account_count"`
	Accounts          []string           `json:"accounts,omitempty"`
	Currencies        []string           `json:"currencies,omitempty"`
}

// ReportTotals consolida os contadores do relatório; a receita total é
// convertida para a moeda base, preservando o detalhamento por moeda
type ReportTotals struct {
	Impressions       int64              `json:"impressions"`
	Clicks            int64              `json:"clicks"`
	RequestsServed    int64              `json:"requests_served"`
	Unfilled          int64              `json:"unfilled"`
	Revenue           float64            `json:"revenue"`
	CurrencyCode      string             `json:"currency_code"`
	RevenueByCurrency map[string]float64 `json:"revenue_by_currency,omitempty"`
	ECPM              float64            `json:"ecpm"`
	CTR               float64            `json:"ctr"`
	PMR               float64            `json:"pmr"`
}

type AccountFailure struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	Reason      string `json:"reason"`
}

type DailyReport struct {
	Date           string           `json:"date"`
	Dimension      ReportDimension  `json:"dimension"`
	Rows           []*ReportRow     `json:"rows"`
	Totals         *ReportTotals    `json:"totals"`
	AccountCount   int              `json:"account_count"`
	Accounts       []string         `json:"accounts,omitempty"`
	Complete       bool             `json:"complete"`
	Partial        bool             `json:"partial"`
	FailedAccounts []AccountFailure `json:"failed_accounts,omitempty"`
	FetchedAt      time.Time        `json:"fetched_at"`
}

type DayFreshness struct {
	Date      string     `json:"date"`
	Complete  bool       `json:"complete"`
	Partial   bool       `json:"partial"`
	FetchedAt *time.Time `json:"fetched_at,omitempty"`
	Source    string     `json:"source"`
}

type RangeReport struct {
	StartDate      string           `json:"start_date"`
	EndDate        string           `json:"end_date"`
	Dimension      ReportDimension  `json:"dimension"`
	Rows           []*ReportRow     `json:"rows"`
	Totals         *ReportTotals    `json:"totals"`
	Days           []*DayFreshness  `json:"days"`
	AccountCount   int              `json:"account_count"`
	Accounts       []string         `json:"accounts,omitempty"`
	Complete       bool             `json:"complete"`
	Partial        bool             `json:"partial"`
	FailedAccounts []AccountFailure `json:"failed_accounts,omitempty"`
}

// FreshnessInfo descreve a idade e a origem do relatório de um dia
type FreshnessInfo struct {
	Date      string          `json:"date"`
	Dimension ReportDimension `json:"dimension"`
	FetchedAt *time.Time      `json:"fetched_at,omitempty"`
	Complete  bool            `json:"complete"`
	Fresh     bool            `json:"fresh"`
	Source    string          `json:"source"`
}

const (
	FreshnessSourceHot      = "hot"
	FreshnessSourceDurable  = "durable"
	FreshnessSourceStore    = "store"
	FreshnessSourceUpstream = "upstream"
	FreshnessSourceNone     = "none"
)

// SyncStatus descreve o estado do worker de sincronização de fundo
type SyncStatus struct {
	Running              bool       `json:"running"`
	LastSyncStartedAt    *time.Time `json:"last_sync_started_at,omitempty"`
	LastSyncCompletedAt  *time.Time `json:"last_sync_completed_at,omitempty"`
	UserRequestsInFlight int        `json:"user_requests_in_flight"`
}

// AccountDayRows são as linhas de um dia de uma única conta, já convertidas,
// antes da mesclagem entre contas
type AccountDayRows struct {
	AccountID    string       `json:"account_id"`
	AccountName  string       `json:"account_name"`
	CurrencyCode string       `json:"currency_code"`
	Rows         []*ReportRow `json:"rows"`
}

type RefreshReportRequest struct {
	Date      string `json:"date"`
	Dimension string `json:"dimension"`
}

type RefreshReportResponse struct {
	Report  *DailyReport `json:"report"`
	Message string       `json:"message"`
}
