package repositories

import (
	"context"

	"github.com/SscSPs/project_budget_app/internal/core/domain"
)

// BudgetReader defines read operations for project budget data.
// A lookup that matches nothing is not an error.
type BudgetReader interface {
	// FindBudgetByID returns the budget with the given project id, or nil if there is none.
	FindBudgetByID(ctx context.Context, projectID int64) (*domain.ProjectBudget, error)

	// FindBudgetsByNames returns every budget whose name is in names. names must not be empty.
	FindBudgetsByNames(ctx context.Context, names []string) ([]domain.ProjectBudget, error)

	// FindBudgetsByNameAndYear returns every budget with the given name and year.
	FindBudgetsByNameAndYear(ctx context.Context, name string, year int) ([]domain.ProjectBudget, error)
}

// BudgetWriter defines write operations for project budget data.
// Business rules such as id uniqueness or existence are enforced by callers.
type BudgetWriter interface {
	// CreateBudget persists a new budget.
	CreateBudget(ctx context.Context, budget domain.ProjectBudget) error

	// UpdateBudgetByID replaces every field except the project id. Missing ids are a no-op.
	UpdateBudgetByID(ctx context.Context, projectID int64, budget domain.ProjectBudget) error

	// DeleteBudgetByID removes the budget. Missing ids are a no-op.
	DeleteBudgetByID(ctx context.Context, projectID int64) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
