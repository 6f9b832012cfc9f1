package services

import (
	portsrepo "github.com/SscSPs/project_budget_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/project_budget_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, rates portssvc.ExchangeRateProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Budget:     NewBudgetService(repos.BudgetRepo),
		Conversion: NewConversionService(repos.BudgetRepo, rates),
		Health:     repos.Health,
	}
}
