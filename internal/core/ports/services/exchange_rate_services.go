package services

import (
	"context"

	"github.com/SscSPs/project_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateProvider is the remote source of exchange rates.
type ExchangeRateProvider interface {
	// FetchRateTable returns the rates of all known currencies relative to base.
	FetchRateTable(ctx context.Context, base string) (domain.RateTable, error)

	// ConvertAmount converts amount from one currency to another.
	ConvertAmount(ctx context.Context, from, to string, amount decimal.Decimal) (decimal.Decimal, error)
}
