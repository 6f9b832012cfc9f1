package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/project_budget_app/internal/apperrors"
	"github.com/SscSPs/project_budget_app/internal/core/domain"
	portsrepo "github.com/SscSPs/project_budget_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/project_budget_app/internal/core/ports/services"
	"github.com/SscSPs/project_budget_app/internal/dto"
)

const (
	msgBudgetNotFound = "Budget not found"
	msgBudgetExists   = "Budget with this project ID already exists"
)

type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
}

// NewBudgetService creates the CRUD service for project budgets.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade) portssvc.BudgetSvcFacade {
	return &budgetService{budgetRepo: budgetRepo}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) GetBudgetByID(ctx context.Context, projectID int64) (*domain.ProjectBudget, error) {
	budget, err := s.findExisting(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return budget, nil
}

func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateProjectBudgetRequest) (*domain.ProjectBudget, error) {
	existing, err := s.budgetRepo.FindBudgetByID(ctx, req.ProjectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up budget before create", slog.Int64("project_id", req.ProjectID))
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError(msgBudgetExists)
	}

	budget := req.ToDomain()
	if err := s.budgetRepo.CreateBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to create budget in repository", slog.Int64("project_id", budget.ProjectID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget created", slog.Int64("project_id", budget.ProjectID))
	return &budget, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, projectID int64, req dto.UpdateProjectBudgetRequest) (*domain.ProjectBudget, error) {
	if _, err := s.findExisting(ctx, projectID); err != nil {
		return nil, err
	}

	budget := req.ToDomain(projectID)
	if err := s.budgetRepo.UpdateBudgetByID(ctx, projectID, budget); err != nil {
		s.LogError(ctx, err, "Failed to update budget in repository", slog.Int64("project_id", projectID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget updated", slog.Int64("project_id", projectID))
	return &budget, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, projectID int64) error {
	if _, err := s.findExisting(ctx, projectID); err != nil {
		return err
	}

	if err := s.budgetRepo.DeleteBudgetByID(ctx, projectID); err != nil {
		s.LogError(ctx, err, "Failed to delete budget in repository", slog.Int64("project_id", projectID))
		return err
	}

	s.LogInfo(ctx, "Budget deleted", slog.Int64("project_id", projectID))
	return nil
}

// findExisting returns the stored budget or an ErrNotFound error.
func (s *budgetService) findExisting(ctx context.Context, projectID int64) (*domain.ProjectBudget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find budget by ID in repository", slog.Int64("project_id", projectID))
		return nil, err
	}
	if budget == nil {
		s.LogDebug(ctx, "Budget not found", slog.Int64("project_id", projectID))
		return nil, apperrors.NewNotFoundError(msgBudgetNotFound)
	}
	return budget, nil
}
