package services

import "github.com/SscSPs/project_budget_app/internal/core/ports/repositories"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Budget     BudgetSvcFacade
	Conversion BudgetConversionSvc
	Health     repositories.HealthChecker
}
