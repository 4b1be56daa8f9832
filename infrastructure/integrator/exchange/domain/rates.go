package exchangedomain

// RatesResponse é a tabela de câmbio retornada pelo provedor,
// com as taxas relativas à moeda base
type RatesResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}
