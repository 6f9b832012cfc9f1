package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/SscSPs/project_budget_app/internal/apperrors"
	"github.com/SscSPs/project_budget_app/internal/core/domain"
	portsrepo "github.com/SscSPs/project_budget_app/internal/core/ports/repositories"
	"github.com/SscSPs/project_budget_app/internal/models"
	"github.com/SscSPs/project_budget_app/internal/utils/mapping"
)

const budgetColumns = `project_id, project_name, year, currency, initial_budget_local, budget_usd,
		initial_schedule_estimate_months, adjusted_schedule_estimate_months,
		contingency_rate, escalation_rate, final_budget_usd`

// SQLiteBudgetRepository stores project budgets in a local SQLite file.
type SQLiteBudgetRepository struct {
	db *sql.DB
}

func newSQLiteBudgetRepository(db *sql.DB) *SQLiteBudgetRepository {
	return &SQLiteBudgetRepository{db: db}
}

var _ portsrepo.BudgetRepositoryFacade = (*SQLiteBudgetRepository)(nil)
var _ portsrepo.HealthChecker = (*SQLiteBudgetRepository)(nil)

// Ping checks that the database is reachable.
func (r *SQLiteBudgetRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// FindBudgetByID retrieves a budget by project id. A missing row is not an error.
func (r *SQLiteBudgetRepository) FindBudgetByID(ctx context.Context, projectID int64) (*domain.ProjectBudget, error) {
	query := `SELECT ` + budgetColumns + ` FROM project WHERE project_id = ?`

	var m models.ProjectBudget
	if err := r.db.QueryRowContext(ctx, query, projectID).Scan(m.ScanTargets()...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewRepositoryError("Failed to find project", err)
	}

	d := mapping.ToDomainProjectBudget(m)
	return &d, nil
}

// FindBudgetsByNames retrieves every budget whose project name is in names.
func (r *SQLiteBudgetRepository) FindBudgetsByNames(ctx context.Context, names []string) ([]domain.ProjectBudget, error) {
	if len(names) == 0 {
		return []domain.ProjectBudget{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	query := `SELECT ` + budgetColumns + ` FROM project WHERE project_name IN (` + placeholders + `) ORDER BY project_id`

	args := make([]any, len(names))
	for i, name := range names {
		args[i] = name
	}
	return r.queryBudgets(ctx, "Failed to find projects", query, args...)
}

// FindBudgetsByNameAndYear retrieves every budget with the given project name and year.
func (r *SQLiteBudgetRepository) FindBudgetsByNameAndYear(ctx context.Context, name string, year int) ([]domain.ProjectBudget, error) {
	query := `SELECT ` + budgetColumns + ` FROM project WHERE project_name = ? AND year = ? ORDER BY project_id`
	return r.queryBudgets(ctx, "Failed to find project", query, name, year)
}

func (r *SQLiteBudgetRepository) queryBudgets(ctx context.Context, failMsg, query string, args ...any) ([]domain.ProjectBudget, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewRepositoryError(failMsg, err)
	}
	defer rows.Close()

	var ms []models.ProjectBudget
	for rows.Next() {
		var m models.ProjectBudget
		if err := rows.Scan(m.ScanTargets()...); err != nil {
			return nil, apperrors.NewRepositoryError(failMsg, err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewRepositoryError(failMsg, err)
	}

	return mapping.ToDomainProjectBudgetSlice(ms), nil
}

// CreateBudget inserts a new budget row.
func (r *SQLiteBudgetRepository) CreateBudget(ctx context.Context, budget domain.ProjectBudget) error {
	m := mapping.ToModelProjectBudget(budget)
	query := `INSERT INTO project (` + budgetColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
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
func (r *SQLiteBudgetRepository) UpdateBudgetByID(ctx context.Context, projectID int64, budget domain.ProjectBudget) error {
	m := mapping.ToModelProjectBudget(budget)
	query := `
		UPDATE project SET
			project_name = ?,
			year = ?,
			currency = ?,
			initial_budget_local = ?,
			budget_usd = ?,
			initial_schedule_estimate_months = ?,
			adjusted_schedule_estimate_months = ?,
			contingency_rate = ?,
			escalation_rate = ?,
			final_budget_usd = ?
		WHERE project_id = ?`

	_, err := r.db.ExecContext(ctx, query,
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
func (r *SQLiteBudgetRepository) DeleteBudgetByID(ctx context.Context, projectID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM project WHERE project_id = ?`, projectID); err != nil {
		return apperrors.NewRepositoryError("Failed to delete project", err)
	}
	return nil
}
