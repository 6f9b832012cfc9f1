package seed

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/SscSPs/project_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "projectId,projectName,year,currency,initialBudgetLocal,budgetUsd,initialScheduleEstimateMonths,adjustedScheduleEstimateMonths,contingencyRate,escalationRate,finalBudgetUsd\n"

func TestParseCSV(t *testing.T) {
	input := header +
		"1,Humitas Hewlett Packard,2024,EUR,316974.5,233724.23,13,12,2.19,3.46,247106.75\n" +
		"2,Quo Vadis,2023,USD,NULL,NULL,6,NULL,NULL,NULL,1000\n"

	budgets, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, budgets, 2)

	first := budgets[0]
	assert.Equal(t, int64(1), first.ProjectID)
	assert.Equal(t, "Humitas Hewlett Packard", first.ProjectName)
	assert.Equal(t, 2024, first.Year)
	assert.Equal(t, "EUR", first.Currency)
	assert.True(t, decimal.RequireFromString("316974.5").Equal(first.InitialBudgetLocal))
	assert.Equal(t, 12, first.AdjustedScheduleEstimateMonths)
	assert.True(t, decimal.RequireFromString("247106.75").Equal(first.FinalBudgetUSD))

	second := budgets[1]
	assert.True(t, second.InitialBudgetLocal.IsZero())
	assert.Equal(t, 0, second.AdjustedScheduleEstimateMonths)
	assert.Equal(t, 6, second.InitialScheduleEstimateMonths)
}

func TestParseCSV_QuotedNameWithComma(t *testing.T) {
	input := header + `3,"Acme, Inc",2022,GBP,1,2,3,4,5,6,7` + "\n"

	budgets, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, "Acme, Inc", budgets[0].ProjectName)
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	budgets, err := ParseCSV(strings.NewReader(header))
	require.NoError(t, err)
	assert.Empty(t, budgets)
}

func TestParseCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		row     string
		wantErr string
	}{
		{"bad number", "1,A,2024,EUR,abc,1,1,1,1,1,1", `line 2: invalid initialBudgetLocal "abc"`},
		{"bad year", "1,A,twenty,EUR,1,1,1,1,1,1,1", `line 2: invalid year "twenty"`},
		{"missing id", "NULL,A,2024,EUR,1,1,1,1,1,1,1", "line 2: projectId is required"},
		{"wrong column count", "1,A,2024", "wrong number of fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(header + tt.row + "\n"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

type recordingWriter struct {
	created []domain.ProjectBudget
	failOn  int64
}

func (w *recordingWriter) CreateBudget(_ context.Context, b domain.ProjectBudget) error {
	if b.ProjectID == w.failOn {
		return assert.AnError
	}
	w.created = append(w.created, b)
	return nil
}

func (w *recordingWriter) UpdateBudgetByID(context.Context, int64, domain.ProjectBudget) error {
	return nil
}

func (w *recordingWriter) DeleteBudgetByID(context.Context, int64) error {
	return nil
}

func TestSeed(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	budgets := []domain.ProjectBudget{{ProjectID: 1}, {ProjectID: 2}, {ProjectID: 3}}

	t.Run("inserts every budget", func(t *testing.T) {
		w := &recordingWriter{}
		require.NoError(t, Seed(context.Background(), w, budgets, logger))
		assert.Len(t, w.created, 3)
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		w := &recordingWriter{failOn: 2}
		err := Seed(context.Background(), w, budgets, logger)
		require.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "insert project 2")
		assert.Len(t, w.created, 1)
	})
}
