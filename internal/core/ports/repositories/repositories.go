package repositories

import "context"

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	BudgetRepo BudgetRepositoryFacade
	Health     HealthChecker
	// Close releases the underlying connections.
	Close func()
}
