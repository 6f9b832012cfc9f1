package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/project_budget_app/internal/apperrors"
	"github.com/SscSPs/project_budget_app/internal/core/domain"
	portsrepo "github.com/SscSPs/project_budget_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/project_budget_app/internal/core/ports/services"
	"github.com/SscSPs/project_budget_app/internal/utils"
	"github.com/SscSPs/project_budget_app/internal/validator"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	msgInvalidProjectNames = "Invalid project names"
	msgInvalidCurrency     = "Currency must adhere to ISO 4217 standards"
)

type conversionService struct {
	BaseService
	budgetRepo portsrepo.BudgetReader
	rates      portssvc.ExchangeRateProvider
}

// NewConversionService creates the service that projects stored budgets into other currencies.
func NewConversionService(budgetRepo portsrepo.BudgetReader, rates portssvc.ExchangeRateProvider) portssvc.BudgetConversionSvc {
	return &conversionService{budgetRepo: budgetRepo, rates: rates}
}

var _ portssvc.BudgetConversionSvc = (*conversionService)(nil)

func (s *conversionService) ConvertFinalBudgets(ctx context.Context, projectName string, year int, targetCurrency string) ([]domain.ConvertedBudget, error) {
	if !validator.ISO4217(targetCurrency) {
		return nil, apperrors.NewValidationError(msgInvalidCurrency)
	}

	budgets, err := s.budgetRepo.FindBudgetsByNameAndYear(ctx, projectName, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to find budgets by name and year", slog.String("project_name", projectName), slog.Int("year", year))
		return nil, err
	}

	converted := make([]domain.ConvertedBudget, 0, len(budgets))
	for _, budget := range budgets {
		c := domain.ConvertedBudget{ProjectBudget: budget}

		if budget.Currency == targetCurrency {
			// Local currency already matches: the final budget is re-baselined on the USD budget.
			c.FinalBudgetUSD = budget.BudgetUSD
		} else {
			amount, err := s.rates.ConvertAmount(ctx, domain.CurrencyUSD, targetCurrency, budget.FinalBudgetUSD)
			if err != nil {
				s.LogError(ctx, err, "Failed to convert final budget",
					slog.Int64("project_id", budget.ProjectID), slog.String("target_currency", targetCurrency))
				return nil, err
			}
			c.FinalBudgets = map[string]decimal.Decimal{targetCurrency: amount}
			s.LogDebug(ctx, "Converted final budget", slog.Int64("project_id", budget.ProjectID),
				slog.String("amount", utils.FormatWithPrecision(amount, utils.AmountPrecision)), slog.String("currency", targetCurrency))
		}
		converted = append(converted, c)
	}

	s.LogDebug(ctx, "Converted final budgets", slog.Int("count", len(converted)), slog.String("target_currency", targetCurrency))
	return converted, nil
}

func (s *conversionService) ConvertToTTD(ctx context.Context, projectNames []string) (map[string]domain.TTDProjection, error) {
	if len(projectNames) == 0 {
		return nil, apperrors.NewValidationError(msgInvalidProjectNames)
	}

	var (
		budgets []domain.ProjectBudget
		table   domain.RateTable
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		budgets, err = s.budgetRepo.FindBudgetsByNames(gctx, projectNames)
		return err
	})
	g.Go(func() error {
		var err error
		table, err = s.rates.FetchRateTable(gctx, domain.CurrencyTTD)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load budgets or TTD rate table", slog.Int("project_names", len(projectNames)))
		return nil, err
	}

	projections := make(map[string]domain.TTDProjection, len(budgets))
	for _, budget := range budgets {
		p, err := projectToTTD(budget, table)
		if err != nil {
			s.LogError(ctx, err, "Failed to project budget into TTD", slog.Int64("project_id", budget.ProjectID))
			return nil, err
		}
		// Several rows may share a name; the last one wins.
		projections[budget.ProjectName] = p
	}
	return projections, nil
}

// projectToTTD expresses budget in TTD using rates relative to TTD.
func projectToTTD(budget domain.ProjectBudget, table domain.RateTable) (domain.TTDProjection, error) {
	localRate, err := usableRate(table, budget.Currency)
	if err != nil {
		return domain.TTDProjection{}, err
	}
	usdRate, err := usableRate(table, domain.CurrencyUSD)
	if err != nil {
		return domain.TTDProjection{}, err
	}

	return domain.TTDProjection{
		ProjectID:          budget.ProjectID,
		Currency:           budget.Currency,
		TTDToLocalRate:     localRate,
		TTDToUSDRate:       usdRate,
		InitialBudgetLocal: budget.InitialBudgetLocal,
		InitialBudgetTTD:   toTTD(budget.InitialBudgetLocal, localRate),
		BudgetUSD:          budget.BudgetUSD,
		BudgetTTD:          toTTD(budget.BudgetUSD, usdRate),
		FinalBudgetUSD:     budget.FinalBudgetUSD,
		FinalBudgetTTD:     toTTD(budget.FinalBudgetUSD, usdRate),
	}, nil
}

func usableRate(table domain.RateTable, code string) (decimal.Decimal, error) {
	rate, ok := table.Rate(code)
	if !ok || rate.IsZero() {
		return decimal.Zero, apperrors.NewConversionError(fmt.Sprintf("No usable TTD exchange rate for currency %q", code), nil)
	}
	return rate, nil
}

func toTTD(amount, rate decimal.Decimal) decimal.Decimal {
	return utils.RoundAmount(amount.Div(rate), utils.AmountPrecision)
}
