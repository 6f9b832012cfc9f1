package handlers_test

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func (s *BudgetHandlerTestSuite) TestHealth_OK() {
	s.healthChecker.On("Ping", mock.Anything).Return(nil).Once()

	w := s.do(http.MethodGet, "/health", "")

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"ok","version":"test"}`, w.Body.String())
}

func (s *BudgetHandlerTestSuite) TestHealth_StorageDown() {
	s.healthChecker.On("Ping", mock.Anything).Return(assert.AnError).Once()

	w := s.do(http.MethodGet, "/health", "")

	s.Equal(http.StatusServiceUnavailable, w.Code)
	s.JSONEq(`{"status":"unhealthy"}`, w.Body.String())
}

func (s *BudgetHandlerTestSuite) TestAPIOk() {
	w := s.do(http.MethodGet, "/api/ok", "")

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"ok":true}`, w.Body.String())
}

func (s *BudgetHandlerTestSuite) TestCORSPreflight() {
	req, _ := http.NewRequest(http.MethodOptions, "/api/budgets/1", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	w := s.serve(req)

	s.Equal(http.StatusNoContent, w.Code)
	s.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
}

func (s *BudgetHandlerTestSuite) TestRequestIDHeader() {
	w := s.do(http.MethodGet, "/api/ok", "")

	s.NotEmpty(w.Header().Get("X-Request-ID"))
}
