package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// ProjectBudget is a row of the project table. Seeded rows may carry NULL
// in any column except the primary key.
type ProjectBudget struct {
	ProjectID                      int64               `json:"projectId"` // Primary Key
	ProjectName                    sql.NullString      `json:"projectName"`
	Year                           sql.NullInt64       `json:"year"`
	Currency                       sql.NullString      `json:"currency"`
	InitialBudgetLocal             decimal.NullDecimal `json:"initialBudgetLocal"`
	BudgetUSD                      decimal.NullDecimal `json:"budgetUsd"`
	InitialScheduleEstimateMonths  sql.NullInt64       `json:"initialScheduleEstimateMonths"`
	AdjustedScheduleEstimateMonths sql.NullInt64       `json:"adjustedScheduleEstimateMonths"`
	ContingencyRate                decimal.NullDecimal `json:"contingencyRate"`
	EscalationRate                 decimal.NullDecimal `json:"escalationRate"`
	FinalBudgetUSD                 decimal.NullDecimal `json:"finalBudgetUsd"`
}

// ScanTargets returns pointers to every column in table order, for use with
// row.Scan by both storage backends.
func (m *ProjectBudget) ScanTargets() []any {
	return []any{
		&m.ProjectID,
		&m.ProjectName,
		&m.Year,
		&m.Currency,
		&m.InitialBudgetLocal,
		&m.BudgetUSD,
		&m.InitialScheduleEstimateMonths,
		&m.AdjustedScheduleEstimateMonths,
		&m.ContingencyRate,
		&m.EscalationRate,
		&m.FinalBudgetUSD,
	}
}
