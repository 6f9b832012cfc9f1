package services_test

import (
	"context"

	"github.com/SscSPs/project_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, projectID int64) (*domain.ProjectBudget, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectBudget), args.Error(1)
}

func (m *MockBudgetRepository) FindBudgetsByNames(ctx context.Context, names []string) ([]domain.ProjectBudget, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectBudget), args.Error(1)
}

func (m *MockBudgetRepository) FindBudgetsByNameAndYear(ctx context.Context, name string, year int) ([]domain.ProjectBudget, error) {
	args := m.Called(ctx, name, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectBudget), args.Error(1)
}

func (m *MockBudgetRepository) CreateBudget(ctx context.Context, budget domain.ProjectBudget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) UpdateBudgetByID(ctx context.Context, projectID int64, budget domain.ProjectBudget) error {
	args := m.Called(ctx, projectID, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudgetByID(ctx context.Context, projectID int64) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

// --- Mock ExchangeRateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) FetchRateTable(ctx context.Context, base string) (domain.RateTable, error) {
	args := m.Called(ctx, base)
	return args.Get(0).(domain.RateTable), args.Error(1)
}

func (m *MockRateProvider) ConvertAmount(ctx context.Context, from, to string, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
