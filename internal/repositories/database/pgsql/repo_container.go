package pgsql

import (
	portsrepo "github.com/SscSPs/project_budget_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	budgetRepo := newPgxBudgetRepository(dbPool)

	return portsrepo.RepositoryProvider{
		BudgetRepo: budgetRepo,
		Health:     &budgetRepo.BaseRepository,
		Close:      dbPool.Close,
	}
}
