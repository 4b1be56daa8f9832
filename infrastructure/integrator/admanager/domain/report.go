package gamdomain

// ReportRow é uma linha crua do relatório diário do Ad Manager.
// A receita chega em micros (1/1.000.000 da unidade monetária).
type ReportRow struct {
	AdUnitName          string   `json:"ad_unit_name"`
	Domain              string   `json:"domain,omitempty"`
	Date                string   `json:"date,omitempty"`
	Impressions         int64    `json:"impressions"`
	Clicks              int64    `json:"clicks"`
	UnfilledImpressions int64    `json:"unfilled_impressions"`
	RevenueMicros       int64    `json:"revenue_micros"`
	ViewablePercent     *float64 `json:"viewable_percent,omitempty"`
}

// DailyReportResponse é o corpo retornado pelo endpoint de relatório diário
type DailyReportResponse struct {
	NetworkCode  string      `json:"network_code"`
	CurrencyCode string      `json:"currency_code"`
	Date         string      `json:"date"`
	Dimension    string      `json:"dimension"`
	Rows         []ReportRow `json:"rows"`
}
