package mapping

import (
	"database/sql"

	"github.com/SscSPs/project_budget_app/internal/core/domain"
	"github.com/SscSPs/project_budget_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelProjectBudget converts a domain ProjectBudget to a model ProjectBudget
func ToModelProjectBudget(d domain.ProjectBudget) models.ProjectBudget {
	return models.ProjectBudget{
		ProjectID:                      d.ProjectID,
		ProjectName:                    sql.NullString{String: d.ProjectName, Valid: true},
		Year:                           sql.NullInt64{Int64: int64(d.Year), Valid: true},
		Currency:                       sql.NullString{String: d.Currency, Valid: true},
		InitialBudgetLocal:             decimal.NewNullDecimal(d.InitialBudgetLocal),
		BudgetUSD:                      decimal.NewNullDecimal(d.BudgetUSD),
		InitialScheduleEstimateMonths:  sql.NullInt64{Int64: int64(d.InitialScheduleEstimateMonths), Valid: true},
		AdjustedScheduleEstimateMonths: sql.NullInt64{Int64: int64(d.AdjustedScheduleEstimateMonths), Valid: true},
		ContingencyRate:                decimal.NewNullDecimal(d.ContingencyRate),
		EscalationRate:                 decimal.NewNullDecimal(d.EscalationRate),
		FinalBudgetUSD:                 decimal.NewNullDecimal(d.FinalBudgetUSD),
	}
}

// ToDomainProjectBudget converts a model ProjectBudget to a domain ProjectBudget.
// NULL columns become zero values.
func ToDomainProjectBudget(m models.ProjectBudget) domain.ProjectBudget {
	return domain.ProjectBudget{
		ProjectID:                      m.ProjectID,
		ProjectName:                    m.ProjectName.String,
		Year:                           int(m.Year.Int64),
		Currency:                       m.Currency.String,
		InitialBudgetLocal:             m.InitialBudgetLocal.Decimal,
		BudgetUSD:                      m.BudgetUSD.Decimal,
		InitialScheduleEstimateMonths:  int(m.InitialScheduleEstimateMonths.Int64),
		AdjustedScheduleEstimateMonths: int(m.AdjustedScheduleEstimateMonths.Int64),
		ContingencyRate:                m.ContingencyRate.Decimal,
		EscalationRate:                 m.EscalationRate.Decimal,
		FinalBudgetUSD:                 m.FinalBudgetUSD.Decimal,
	}
}

// ToDomainProjectBudgetSlice converts a slice of model budgets to a slice of domain budgets
func ToDomainProjectBudgetSlice(ms []models.ProjectBudget) []domain.ProjectBudget {
	ds := make([]domain.ProjectBudget, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProjectBudget(m)
	}
	return ds
}
