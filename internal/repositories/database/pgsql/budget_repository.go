package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/project_budget_app/internal/apperrors"
	"github.com/SscSPs/project_budget_app/internal/core/domain"
	portsrepo "github.com/SscSPs/project_budget_app/internal/core/ports/repositories"
	"github.com/SscSPs/project_budget_app/internal/models"
	"github.com/SscSPs/project_budget_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const budgetColumns = `project_id, project_name, year, currency, initial_budget_local, budget_usd,
		initial_schedule_estimate_months, adjusted_schedule_estimate_months,
		contingency_rate, escalation_rate, final_budget_usd`

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for project budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) *PgxBudgetRepository {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

// FindBudgetByID retrieves a budget by project id. A missing row is not an error.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, projectID int64) (*domain.ProjectBudget, error) {
	query := `SELECT ` + budgetColumns + ` FROM project WHERE project_id = $1;`

	var modelBudget models.ProjectBudget
	err := r.Pool.QueryRow(ctx, query, projectID).Scan(modelBudget.ScanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewRepositoryError("Failed to find project", err)
	}

	domainBudget := mapping.ToDomainProjectBudget(modelBudget)
	return &domainBudget, nil
}

// FindBudgetsByNames retrieves every budget whose project name is in names.
func (r *PgxBudgetRepository) FindBudgetsByNames(ctx context.Context, names []string) ([]domain.ProjectBudget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM project
		WHERE project_name = ANY($1)
		ORDER BY project_id;
	`
	return r.queryBudgets(ctx, "Failed to find projects", query, names)
}

// FindBudgetsByNameAndYear retrieves every budget with the given project name and year.
func (r *PgxBudgetRepository) FindBudgetsByNameAndYear(ctx context.Context, name string, year int) ([]domain.ProjectBudget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM project
		WHERE project_name = $1 AND year = $2
		ORDER BY project_id;
	`
	return r.queryBudgets(ctx, "Failed to find project", query, name, year)
}

func (r *PgxBudgetRepository) queryBudgets(ctx context.Context, failMsg, query string, args ...any) ([]domain.ProjectBudget, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewRepositoryError(failMsg, err)
	}
	defer rows.Close()

	modelBudgets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ProjectBudget, error) {
		var budget models.ProjectBudget
		err := row.Scan(budget.ScanTargets()...)
		return budget, err
	})
	if err != nil {
		return nil, apperrors.NewRepositoryError(failMsg, err)
	}

	return mapping.ToDomainProjectBudgetSlice(modelBudgets), nil
}

// CreateBudget inserts a new budget row.
func (r *PgxBudgetRepository) CreateBudget(ctx context.Context, budget domain.ProjectBudget) error {
	m := mapping.ToModelProjectBudget(budget)
	query := `
		INSERT INTO project (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProjectID,
		m.ProjectName,
		m.Year,
		m.Currency,
		m.InitialBudgetLocal,
		m.BudgetUSD,
		m.InitialScheduleEstimateMonths,
		m.AdjustedScheduleEstimateMonths,
		m.ContingencyRate,
		m.EscalationRate,
		m.FinalBudgetUSD,
	)
	if err != nil {
		return apperrors.NewRepositoryError("Failed to create project", err)
	}
	return nil
}

// UpdateBudgetByID replaces every column except project_id.
func (r *PgxBudgetRepository) UpdateBudgetByID(ctx context.Context, projectID int64, budget domain.ProjectBudget) error {
	m := mapping.ToModelProjectBudget(budget)
	query := `
		UPDATE project SET
			project_name = $1,
			year = $2,
			currency = $3,
			initial_budget_local = $4,
			budget_usd = $5,
			initial_schedule_estimate_months = $6,
			adjusted_schedule_estimate_months = $7,
			contingency_rate = $8,
			escalation_rate = $9,
			final_budget_usd = $10
		WHERE project_id = $11;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProjectName,
		m.Year,
		m.Currency,
		m.InitialBudgetLocal,
		m.BudgetUSD,
		m.InitialScheduleEstimateMonths,
		m.AdjustedScheduleEstimateMonths,
		m.ContingencyRate,
		m.EscalationRate,
		m.FinalBudgetUSD,
		projectID,
	)
	if err != nil {
		return apperrors.NewRepositoryError("Failed to update project", err)
	}
	return nil
}

// DeleteBudgetByID removes the budget row, if any.
func (r *PgxBudgetRepository) DeleteBudgetByID(ctx context.Context, projectID int64) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM project WHERE project_id = $1;`, projectID)
	if err != nil {
		return apperrors.NewRepositoryError("Failed to delete project", err)
	}
	return nil
}
