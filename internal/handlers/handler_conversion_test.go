package handlers_test

import (
	"net/http"

	"github.com/SscSPs/project_budget_app/internal/apperrors"
	"github.com/SscSPs/project_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func (s *BudgetHandlerTestSuite) TestConvertToTTD_Success() {
	projections := map[string]domain.TTDProjection{
		"Humitas Hewlett Packard": {
			ProjectID:        1,
			Currency:         "EUR",
			TTDToLocalRate:   decimal.RequireFromString("0.1359"),
			FinalBudgetTTD:   decimal.RequireFromString("1677512.07"),
			FinalBudgetUSD:   decimal.RequireFromString("247106.75"),
			InitialBudgetTTD: decimal.RequireFromString("2332410.15"),
		},
	}
	s.conversionSvc.On("ConvertToTTD", mock.Anything, []string{"Humitas Hewlett Packard"}).Return(projections, nil).Once()

	w := s.do(http.MethodPost, "/api/conversions", `{"projectNames":["Humitas Hewlett Packard"]}`)

	s.Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Equal(true, body["success"])
	data := body["data"].(map[string]any)
	s.Require().Contains(data, "Humitas Hewlett Packard")
	projection := data["Humitas Hewlett Packard"].(map[string]any)
	s.Equal(float64(1), projection["projectId"])
	s.Contains(projection, "finalBudgetTtd")
	s.Contains(projection, "ttdToLocalRate")
}

func (s *BudgetHandlerTestSuite) TestConvertToTTD_InvalidNames() {
	tests := []struct {
		name string
		body string
	}{
		{"missing field", `{}`},
		{"empty list", `{"projectNames":[]}`},
		{"not a list", `{"projectNames":"Humitas"}`},
		{"empty name", `{"projectNames":["Humitas",""]}`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.do(http.MethodPost, "/api/conversions", tt.body)

			s.Equal(http.StatusBadRequest, w.Code)
			s.JSONEq(`{"success":false,"error":"Invalid project names"}`, w.Body.String())
		})
	}
	s.conversionSvc.AssertNotCalled(s.T(), "ConvertToTTD", mock.Anything, mock.Anything)
}

func (s *BudgetHandlerTestSuite) TestConvertToTTD_RateFetchFailure() {
	s.conversionSvc.On("ConvertToTTD", mock.Anything, []string{"A"}).
		Return(nil, apperrors.NewRateFetchError("Failed to fetch exchange rates", assert.AnError)).Once()

	w := s.do(http.MethodPost, "/api/conversions", `{"projectNames":["A"]}`)

	s.Equal(http.StatusInternalServerError, w.Code)
	s.JSONEq(`{"success":false,"error":"Failed to fetch exchange rates"}`, w.Body.String())
}

func (s *BudgetHandlerTestSuite) TestConvertToTTD_UnknownProjectsGiveEmptyMap() {
	s.conversionSvc.On("ConvertToTTD", mock.Anything, []string{"nobody"}).
		Return(map[string]domain.TTDProjection{}, nil).Once()

	w := s.do(http.MethodPost, "/api/conversions", `{"projectNames":["nobody"]}`)

	s.Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Equal(true, body["success"])
	s.Equal(map[string]any{}, body["data"])
}
