package sqlite_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/SscSPs/project_budget_app/internal/apperrors"
	"github.com/SscSPs/project_budget_app/internal/core/domain"
	portsrepo "github.com/SscSPs/project_budget_app/internal/core/ports/repositories"
	"github.com/SscSPs/project_budget_app/internal/platform/migrations"
	"github.com/SscSPs/project_budget_app/internal/repositories/database/sqlite"
	"github.com/SscSPs/project_budget_app/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetRepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	repos portsrepo.RepositoryProvider
}

func (s *BudgetRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	dbPath := filepath.Join(s.T().TempDir(), "budgets.db")

	s.Require().NoError(migrations.RunSQLite(dbPath, slog.New(slog.NewTextHandler(io.Discard, nil))))
	db, err := database.OpenSQLite(s.ctx, dbPath)
	s.Require().NoError(err)

	s.repos = sqlite.NewRepositoryProvider(db)
}

func (s *BudgetRepositoryTestSuite) TearDownTest() {
	s.repos.Close()
}

func TestBudgetRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetRepositoryTestSuite))
}

func budget(id int64, name string, year int, currency string) domain.ProjectBudget {
	return domain.ProjectBudget{
		ProjectID:                      id,
		ProjectName:                    name,
		Year:                           year,
		Currency:                       currency,
		InitialBudgetLocal:             decimal.RequireFromString("316974.5"),
		BudgetUSD:                      decimal.RequireFromString("233724.23"),
		InitialScheduleEstimateMonths:  13,
		AdjustedScheduleEstimateMonths: 12,
		ContingencyRate:                decimal.RequireFromString("2.19"),
		EscalationRate:                 decimal.RequireFromString("3.46"),
		FinalBudgetUSD:                 decimal.RequireFromString("247106.75"),
	}
}

func (s *BudgetRepositoryTestSuite) assertSameBudget(want domain.ProjectBudget, got domain.ProjectBudget) {
	s.Equal(want.ProjectID, got.ProjectID)
	s.Equal(want.ProjectName, got.ProjectName)
	s.Equal(want.Year, got.Year)
	s.Equal(want.Currency, got.Currency)
	s.True(want.InitialBudgetLocal.Equal(got.InitialBudgetLocal), "initialBudgetLocal %s", got.InitialBudgetLocal)
	s.True(want.BudgetUSD.Equal(got.BudgetUSD), "budgetUsd %s", got.BudgetUSD)
	s.Equal(want.InitialScheduleEstimateMonths, got.InitialScheduleEstimateMonths)
	s.Equal(want.AdjustedScheduleEstimateMonths, got.AdjustedScheduleEstimateMonths)
	s.True(want.ContingencyRate.Equal(got.ContingencyRate))
	s.True(want.EscalationRate.Equal(got.EscalationRate))
	s.True(want.FinalBudgetUSD.Equal(got.FinalBudgetUSD), "finalBudgetUsd %s", got.FinalBudgetUSD)
}

func (s *BudgetRepositoryTestSuite) TestCreateAndFindByID() {
	b := budget(1, "Humitas Hewlett Packard", 2024, "EUR")
	s.Require().NoError(s.repos.BudgetRepo.CreateBudget(s.ctx, b))

	got, err := s.repos.BudgetRepo.FindBudgetByID(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.assertSameBudget(b, *got)
}

func (s *BudgetRepositoryTestSuite) TestCreate_LargeMonthsAreStoredWithoutTruncation() {
	b := budget(2, "Humitas Hewlett Packard", 2024, "EUR")
	b.InitialScheduleEstimateMonths = 4294967309
	s.Require().NoError(s.repos.BudgetRepo.CreateBudget(s.ctx, b))

	got, err := s.repos.BudgetRepo.FindBudgetByID(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(4294967309, got.InitialScheduleEstimateMonths)
}

func (s *BudgetRepositoryTestSuite) TestFindByID_MissReturnsNil() {
	got, err := s.repos.BudgetRepo.FindBudgetByID(s.ctx, 999)
	s.NoError(err)
	s.Nil(got)
}

func (s *BudgetRepositoryTestSuite) TestCreate_DuplicateIDIsRepositoryError() {
	b := budget(1, "Humitas", 2024, "EUR")
	s.Require().NoError(s.repos.BudgetRepo.CreateBudget(s.ctx, b))

	err := s.repos.BudgetRepo.CreateBudget(s.ctx, b)
	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrRepository))
	s.Equal("Failed to create project", apperrors.PublicMessage(err))
}

func (s *BudgetRepositoryTestSuite) TestFindByNames() {
	s.Require().NoError(s.repos.BudgetRepo.CreateBudget(s.ctx, budget(1, "Alpha", 2023, "EUR")))
	s.Require().NoError(s.repos.BudgetRepo.CreateBudget(s.ctx, budget(2, "Beta", 2024, "GBP")))
	s.Require().NoError(s.repos.BudgetRepo.CreateBudget(s.ctx, budget(3, "Gamma", 2024, "TTD")))
	s.Require().NoError(s.repos.BudgetRepo.CreateBudget(s.ctx, budget(4, "Alpha", 2024, "EUR")))

	got, err := s.repos.BudgetRepo.FindBudgetsByNames(s.ctx, []string{"Alpha", "Gamma", "Unknown"})
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal(int64(1), got[0].ProjectID)
	s.Equal(int64(3), got[1].ProjectID)
	s.Equal(int64(4), got[2].ProjectID)

	none, err := s.repos.BudgetRepo.FindBudgetsByNames(s.ctx, []string{"Unknown"})
	s.NoError(err)
	s.Empty(none)
}

func (s *BudgetRepositoryTestSuite) TestFindByNameAndYear() {
	s.Require().NoError(s.repos.BudgetRepo.CreateBudget(s.ctx, budget(1, "Alpha", 2023, "EUR")))
	s.Require().NoError(s.repos.BudgetRepo.CreateBudget(s.ctx, budget(2, "Alpha", 2024, "EUR")))

	got, err := s.repos.BudgetRepo.FindBudgetsByNameAndYear(s.ctx, "Alpha", 2024)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(int64(2), got[0].ProjectID)

	none, err := s.repos.BudgetRepo.FindBudgetsByNameAndYear(s.ctx, "Alpha", 2020)
	s.NoError(err)
	s.Empty(none)
}

func (s *BudgetRepositoryTestSuite) TestUpdateByID_ReplacesAllFieldsButID() {
	s.Require().NoError(s.repos.BudgetRepo.CreateBudget(s.ctx, budget(1, "Alpha", 2023, "EUR")))

	updated := budget(42, "Alpha Renamed", 2024, "TTD")
	updated.BudgetUSD = decimal.RequireFromString("1000.5")
	s.Require().NoError(s.repos.BudgetRepo.UpdateBudgetByID(s.ctx, 1, updated))

	got, err := s.repos.BudgetRepo.FindBudgetByID(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	updated.ProjectID = 1
	s.assertSameBudget(updated, *got)

	other, err := s.repos.BudgetRepo.FindBudgetByID(s.ctx, 42)
	s.NoError(err)
	s.Nil(other)
}

func (s *BudgetRepositoryTestSuite) TestUpdateAndDelete_MissingIDIsNoop() {
	s.NoError(s.repos.BudgetRepo.UpdateBudgetByID(s.ctx, 7, budget(7, "Ghost", 2024, "EUR")))
	s.NoError(s.repos.BudgetRepo.DeleteBudgetByID(s.ctx, 7))
}

func (s *BudgetRepositoryTestSuite) TestDeleteByID() {
	s.Require().NoError(s.repos.BudgetRepo.CreateBudget(s.ctx, budget(1, "Alpha", 2023, "EUR")))
	s.Require().NoError(s.repos.BudgetRepo.DeleteBudgetByID(s.ctx, 1))

	got, err := s.repos.BudgetRepo.FindBudgetByID(s.ctx, 1)
	s.NoError(err)
	s.Nil(got)
}

func (s *BudgetRepositoryTestSuite) TestPing() {
	s.NoError(s.repos.Health.Ping(s.ctx))
}
