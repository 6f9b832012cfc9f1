package domain

import "github.com/shopspring/decimal"

// ProjectBudget is the per-project, per-year financial record.
type ProjectBudget struct {
	ProjectID                      int64           `json:"projectId"` // Primary Key
	ProjectName                    string          `json:"projectName"`
	Year                           int             `json:"year"`
	Currency                       string          `json:"currency"` // ISO 4217 code of InitialBudgetLocal
	InitialBudgetLocal             decimal.Decimal `json:"initialBudgetLocal"`
	BudgetUSD                      decimal.Decimal `json:"budgetUsd"`
	InitialScheduleEstimateMonths  int             `json:"initialScheduleEstimateMonths"`
	AdjustedScheduleEstimateMonths int             `json:"adjustedScheduleEstimateMonths"`
	ContingencyRate                decimal.Decimal `json:"contingencyRate"`
	EscalationRate                 decimal.Decimal `json:"escalationRate"`
	FinalBudgetUSD                 decimal.Decimal `json:"finalBudgetUsd"`
}
