package domain_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/SscSPs/project_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalBudgetFieldName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"TTD", "finalBudgetTtd"},
		{"EUR", "finalBudgetEur"},
		{"usd", "finalBudgetUsd"},
		{"", "finalBudget"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.FinalBudgetFieldName(tt.code))
		})
	}
}

func TestConvertedBudget_MarshalJSONFlattensFinalBudgets(t *testing.T) {
	converted := domain.ConvertedBudget{
		ProjectBudget: domain.ProjectBudget{
			ProjectID:      1,
			ProjectName:    "Humitas Hewlett Packard",
			Year:           2024,
			Currency:       "USD",
			FinalBudgetUSD: decimal.NewFromInt(1000),
		},
		FinalBudgets: map[string]decimal.Decimal{"TTD": decimal.RequireFromString("6790.5")},
	}

	raw, err := json.Marshal(converted)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, float64(1), fields["projectId"])
	assert.Equal(t, "Humitas Hewlett Packard", fields["projectName"])
	assert.Contains(t, fields, "finalBudgetTtd")
	assert.NotContains(t, fields, "FinalBudgets")

	var amount decimal.Decimal
	require.NoError(t, json.Unmarshal(mustRaw(t, raw, "finalBudgetTtd"), &amount))
	assert.True(t, decimal.RequireFromString("6790.5").Equal(amount))
}

func TestConvertedBudget_MarshalJSONKeepsFieldOrder(t *testing.T) {
	converted := domain.ConvertedBudget{
		ProjectBudget: domain.ProjectBudget{ProjectID: 1, ProjectName: "Humitas", Year: 2024, Currency: "EUR"},
		FinalBudgets:  map[string]decimal.Decimal{"TTD": decimal.NewFromInt(5)},
	}

	raw, err := json.Marshal(converted)
	require.NoError(t, err)

	plain, err := json.Marshal(converted.ProjectBudget)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), strings.TrimSuffix(string(plain), "}")+","),
		"budget fields keep their declared order: %s", raw)
	assert.True(t, strings.HasSuffix(string(raw), `,"finalBudgetTtd":"5"}`), "got %s", raw)
}

func TestConvertedBudget_MarshalJSONUSDReplacesFinalBudgetUsd(t *testing.T) {
	converted := domain.ConvertedBudget{
		ProjectBudget: domain.ProjectBudget{ProjectID: 1, Currency: "EUR", FinalBudgetUSD: decimal.NewFromInt(100)},
		FinalBudgets:  map[string]decimal.Decimal{"USD": decimal.NewFromInt(100)},
	}

	raw, err := json.Marshal(converted)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(raw), `"finalBudgetUsd"`))
	assert.JSONEq(t, string(mustMarshal(t, converted.ProjectBudget)), string(raw))
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func TestConvertedBudget_MarshalJSONWithoutConversions(t *testing.T) {
	converted := domain.ConvertedBudget{ProjectBudget: domain.ProjectBudget{ProjectID: 7}}

	raw, err := json.Marshal(converted)
	require.NoError(t, err)

	plain, err := json.Marshal(converted.ProjectBudget)
	require.NoError(t, err)
	assert.JSONEq(t, string(plain), string(raw))
}

func TestRateTable_Rate(t *testing.T) {
	table := domain.RateTable{
		Base:  domain.CurrencyTTD,
		Rates: map[string]decimal.Decimal{"USD": decimal.RequireFromString("0.147")},
	}

	rate, ok := table.Rate("USD")
	assert.True(t, ok)
	assert.Equal(t, "0.147", rate.String())

	_, ok = table.Rate("EUR")
	assert.False(t, ok)
}

func mustRaw(t *testing.T, raw []byte, field string) json.RawMessage {
	t.Helper()
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	return fields[field]
}
