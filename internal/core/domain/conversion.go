package domain

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// FinalBudgetFieldName builds the JSON field name used for a final budget
// expressed in code: "TTD" -> "finalBudgetTtd".
func FinalBudgetFieldName(code string) string {
	if code == "" {
		return "finalBudget"
	}
	return "finalBudget" + strings.ToUpper(code[:1]) + strings.ToLower(code[1:])
}

// ConvertedBudget is a ProjectBudget with its final budget re-expressed in
// other currencies, keyed by currency code.
type ConvertedBudget struct {
	ProjectBudget
	FinalBudgets map[string]decimal.Decimal `json:"-"`
}

// MarshalJSON writes the ProjectBudget fields in declared order followed by
// one field per entry of FinalBudgets, named by FinalBudgetFieldName and
// sorted by currency code. A USD entry replaces finalBudgetUsd in place.
func (c ConvertedBudget) MarshalJSON() ([]byte, error) {
	budget := c.ProjectBudget
	codes := slices.Sorted(maps.Keys(c.FinalBudgets))
	var extra []string
	for _, code := range codes {
		if FinalBudgetFieldName(code) == FinalBudgetFieldName(CurrencyUSD) {
			budget.FinalBudgetUSD = c.FinalBudgets[code]
			continue
		}
		extra = append(extra, code)
	}

	base, err := json.Marshal(budget)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return base, nil
	}

	// base is a non-empty object: reopen it before its closing brace.
	out := append([]byte(nil), base[:len(base)-1]...)
	for _, code := range extra {
		key, err := json.Marshal(FinalBudgetFieldName(code))
		if err != nil {
			return nil, err
		}
		amount, err := json.Marshal(c.FinalBudgets[code])
		if err != nil {
			return nil, err
		}
		out = append(out, ',')
		out = append(out, key...)
		out = append(out, ':')
		out = append(out, amount...)
	}
	return append(out, '}'), nil
}

// TTDProjection is a project budget expressed in TTD using one rate table.
type TTDProjection struct {
	ProjectID          int64           `json:"projectId"`
	Currency           string          `json:"currency"`
	TTDToLocalRate     decimal.Decimal `json:"ttdToLocalRate"`
	TTDToUSDRate       decimal.Decimal `json:"ttdToUsdRate"`
	InitialBudgetLocal decimal.Decimal `json:"initialBudgetLocal"`
	InitialBudgetTTD   decimal.Decimal `json:"initialBudgetTtd"`
	BudgetUSD          decimal.Decimal `json:"budgetUsd"`
	BudgetTTD          decimal.Decimal `json:"budgetTtd"`
	FinalBudgetUSD     decimal.Decimal `json:"finalBudgetUsd"`
	FinalBudgetTTD     decimal.Decimal `json:"finalBudgetTtd"`
}
