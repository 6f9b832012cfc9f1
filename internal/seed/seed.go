// Package seed loads project budgets from the CSV export into storage.
package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/SscSPs/project_budget_app/internal/core/domain"
	"github.com/SscSPs/project_budget_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// nullValue marks an empty column in the CSV export.
const nullValue = "NULL"

// columnCount is the number of columns of the project table.
const columnCount = 11

// ParseCSV reads budgets from r. The first row is a header and is skipped.
// Columns follow the project table order; NULL becomes the zero value.
func ParseCSV(r io.Reader) ([]domain.ProjectBudget, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = columnCount
	reader.TrimLeadingSpace = true

	var budgets []domain.ProjectBudget
	for first := true; ; first = false {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if first {
			continue
		}

		line, _ := reader.FieldPos(0)
		budget, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		budgets = append(budgets, budget)
	}
	return budgets, nil
}

func parseRecord(record []string) (domain.ProjectBudget, error) {
	p := fieldParser{record: record}
	budget := domain.ProjectBudget{
		ProjectID:                      p.number(0, "projectId"),
		ProjectName:                    p.text(1),
		Year:                           p.integer(2, "year"),
		Currency:                       p.text(3),
		InitialBudgetLocal:             p.amount(4, "initialBudgetLocal"),
		BudgetUSD:                      p.amount(5, "budgetUsd"),
		InitialScheduleEstimateMonths:  p.integer(6, "initialScheduleEstimateMonths"),
		AdjustedScheduleEstimateMonths: p.integer(7, "adjustedScheduleEstimateMonths"),
		ContingencyRate:                p.amount(8, "contingencyRate"),
		EscalationRate:                 p.amount(9, "escalationRate"),
		FinalBudgetUSD:                 p.amount(10, "finalBudgetUsd"),
	}
	if p.err != nil {
		return domain.ProjectBudget{}, p.err
	}
	if budget.ProjectID == 0 {
		return domain.ProjectBudget{}, errors.New("projectId is required")
	}
	return budget, nil
}

// fieldParser keeps the first conversion error so a record can be parsed in one expression.
type fieldParser struct {
	record []string
	err    error
}

func (p *fieldParser) raw(i int) (string, bool) {
	v := strings.TrimSpace(p.record[i])
	return v, v != "" && v != nullValue
}

func (p *fieldParser) text(i int) string {
	v, ok := p.raw(i)
	if !ok {
		return ""
	}
	return v
}

func (p *fieldParser) number(i int, name string) int64 {
	v, ok := p.raw(i)
	if !ok || p.err != nil {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		p.err = fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	return n
}

func (p *fieldParser) integer(i int, name string) int {
	return int(p.number(i, name))
}

func (p *fieldParser) amount(i int, name string) decimal.Decimal {
	v, ok := p.raw(i)
	if !ok || p.err != nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		p.err = fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	return d
}

// Seed inserts budgets one by one and stops at the first failure.
func Seed(ctx context.Context, repo repositories.BudgetWriter, budgets []domain.ProjectBudget, logger *slog.Logger) error {
	for _, b := range budgets {
		if err := repo.CreateBudget(ctx, b); err != nil {
			return fmt.Errorf("insert project %d: %w", b.ProjectID, err)
		}
		logger.Debug("Seeded project budget", slog.Int64("project_id", b.ProjectID))
	}
	logger.Info("Seeding complete", slog.Int("projects", len(budgets)))
	return nil
}
