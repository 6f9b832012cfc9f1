package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/project_budget_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	budgetRepo := newSQLiteBudgetRepository(db)

	return portsrepo.RepositoryProvider{
		BudgetRepo: budgetRepo,
		Health:     budgetRepo,
		Close:      func() { _ = db.Close() },
	}
}
