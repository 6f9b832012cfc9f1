package services

import (
	"context"

	"github.com/SscSPs/project_budget_app/internal/core/domain"
	"github.com/SscSPs/project_budget_app/internal/dto"
)

// BudgetReaderSvc defines read operations for project budgets
type BudgetReaderSvc interface {
	// GetBudgetByID returns the budget or an apperrors.ErrNotFound error.
	GetBudgetByID(ctx context.Context, projectID int64) (*domain.ProjectBudget, error)
}

// BudgetWriterSvc defines write operations for project budgets
type BudgetWriterSvc interface {
	// CreateBudget fails with apperrors.ErrDuplicate when the project id is taken.
	CreateBudget(ctx context.Context, req dto.CreateProjectBudgetRequest) (*domain.ProjectBudget, error)

	// UpdateBudget fails with apperrors.ErrNotFound when the project id is unknown.
	UpdateBudget(ctx context.Context, projectID int64, req dto.UpdateProjectBudgetRequest) (*domain.ProjectBudget, error)

	// DeleteBudget fails with apperrors.ErrNotFound when the project id is unknown.
	DeleteBudget(ctx context.Context, projectID int64) error
}

// BudgetSvcFacade combines all budget-related service interfaces
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}

// BudgetConversionSvc produces currency projections of stored budgets.
type BudgetConversionSvc interface {
	// ConvertFinalBudgets expresses the final budget of every budget matching
	// projectName and year in targetCurrency.
	ConvertFinalBudgets(ctx context.Context, projectName string, year int, targetCurrency string) ([]domain.ConvertedBudget, error)

	// ConvertToTTD projects the budgets of the named projects into TTD, keyed by project name.
	ConvertToTTD(ctx context.Context, projectNames []string) (map[string]domain.TTDProjection, error)
}
