package handlers_test

import (
	"context"

	"github.com/SscSPs/project_budget_app/internal/core/domain"
	portssvc "github.com/SscSPs/project_budget_app/internal/core/ports/services"
	"github.com/SscSPs/project_budget_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) GetBudgetByID(ctx context.Context, projectID int64) (*domain.ProjectBudget, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectBudget), args.Error(1)
}

func (m *MockBudgetService) CreateBudget(ctx context.Context, req dto.CreateProjectBudgetRequest) (*domain.ProjectBudget, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectBudget), args.Error(1)
}

func (m *MockBudgetService) UpdateBudget(ctx context.Context, projectID int64, req dto.UpdateProjectBudgetRequest) (*domain.ProjectBudget, error) {
	args := m.Called(ctx, projectID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectBudget), args.Error(1)
}

func (m *MockBudgetService) DeleteBudget(ctx context.Context, projectID int64) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

var _ portssvc.BudgetSvcFacade = (*MockBudgetService)(nil)

// --- Mock ConversionService ---
type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) ConvertFinalBudgets(ctx context.Context, projectName string, year int, targetCurrency string) ([]domain.ConvertedBudget, error) {
	args := m.Called(ctx, projectName, year, targetCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConvertedBudget), args.Error(1)
}

func (m *MockConversionService) ConvertToTTD(ctx context.Context, projectNames []string) (map[string]domain.TTDProjection, error) {
	args := m.Called(ctx, projectNames)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.TTDProjection), args.Error(1)
}

var _ portssvc.BudgetConversionSvc = (*MockConversionService)(nil)

// --- Mock HealthChecker ---
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
