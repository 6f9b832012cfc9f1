package dto

import (
	"github.com/SscSPs/project_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateProjectBudgetRequest defines the fields replaced by a budget update.
// The body is checked by validator.UpdateBudgetRules before it is bound.
type UpdateProjectBudgetRequest struct {
	ProjectName                    string          `json:"projectName"`
	Year                           int             `json:"year"`
	Currency                       string          `json:"currency"`
	InitialBudgetLocal             decimal.Decimal `json:"initialBudgetLocal"`
	BudgetUSD                      decimal.Decimal `json:"budgetUsd"`
	InitialScheduleEstimateMonths  int             `json:"initialScheduleEstimateMonths"`
	AdjustedScheduleEstimateMonths int             `json:"adjustedScheduleEstimateMonths"`
	ContingencyRate                decimal.Decimal `json:"contingencyRate"`
	EscalationRate                 decimal.Decimal `json:"escalationRate"`
	FinalBudgetUSD                 decimal.Decimal `json:"finalBudgetUsd"`
}

// CreateProjectBudgetRequest defines the data needed to create a project budget.
// The body is checked by validator.CreateBudgetRules before it is bound.
type CreateProjectBudgetRequest struct {
	ProjectID int64 `json:"projectId"`
	UpdateProjectBudgetRequest
}

// ToDomain builds the budget stored for projectID.
func (r UpdateProjectBudgetRequest) ToDomain(projectID int64) domain.ProjectBudget {
	return domain.ProjectBudget{
		ProjectID:                      projectID,
		ProjectName:                    r.ProjectName,
		Year:                           r.Year,
		Currency:                       r.Currency,
		InitialBudgetLocal:             r.InitialBudgetLocal,
		BudgetUSD:                      r.BudgetUSD,
		InitialScheduleEstimateMonths:  r.InitialScheduleEstimateMonths,
		AdjustedScheduleEstimateMonths: r.AdjustedScheduleEstimateMonths,
		ContingencyRate:                r.ContingencyRate,
		EscalationRate:                 r.EscalationRate,
		FinalBudgetUSD:                 r.FinalBudgetUSD,
	}
}

// ToDomain builds the budget described by the request.
func (r CreateProjectBudgetRequest) ToDomain() domain.ProjectBudget {
	return r.UpdateProjectBudgetRequest.ToDomain(r.ProjectID)
}

// ProjectBudgetResponse defines the data returned for a project budget.
// Mirrors domain.ProjectBudget.
type ProjectBudgetResponse struct {
	ProjectID                      int64           `json:"projectId"`
	ProjectName                    string          `json:"projectName"`
	Year                           int             `json:"year"`
	Currency                       string          `json:"currency"`
	InitialBudgetLocal             decimal.Decimal `json:"initialBudgetLocal"`
	BudgetUSD                      decimal.Decimal `json:"budgetUsd"`
	InitialScheduleEstimateMonths  int             `json:"initialScheduleEstimateMonths"`
	AdjustedScheduleEstimateMonths int             `json:"adjustedScheduleEstimateMonths"`
	ContingencyRate                decimal.Decimal `json:"contingencyRate"`
	EscalationRate                 decimal.Decimal `json:"escalationRate"`
	FinalBudgetUSD                 decimal.Decimal `json:"finalBudgetUsd"`
}

// ToProjectBudgetResponse converts a domain.ProjectBudget to ProjectBudgetResponse DTO
func ToProjectBudgetResponse(b *domain.ProjectBudget) ProjectBudgetResponse {
	return ProjectBudgetResponse{
		ProjectID:                      b.ProjectID,
		ProjectName:                    b.ProjectName,
		Year:                           b.Year,
		Currency:                       b.Currency,
		InitialBudgetLocal:             b.InitialBudgetLocal,
		BudgetUSD:                      b.BudgetUSD,
		InitialScheduleEstimateMonths:  b.InitialScheduleEstimateMonths,
		AdjustedScheduleEstimateMonths: b.AdjustedScheduleEstimateMonths,
		ContingencyRate:                b.ContingencyRate,
		EscalationRate:                 b.EscalationRate,
		FinalBudgetUSD:                 b.FinalBudgetUSD,
	}
}
