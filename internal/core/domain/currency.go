package domain

import "github.com/shopspring/decimal"

const (
	// CurrencyUSD is the currency BudgetUSD and FinalBudgetUSD are expressed in.
	CurrencyUSD = "USD"
	// CurrencyTTD is the base of the batch conversion rate table.
	CurrencyTTD = "TTD"
)

// RateTable holds rates relative to Base: Rates["EUR"] is the number of EUR
// per one unit of Base. It is fetched per request and never stored.
type RateTable struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// Rate returns the rate for code and whether the table has one.
func (t RateTable) Rate(code string) (decimal.Decimal, bool) {
	rate, ok := t.Rates[code]
	return rate, ok
}
