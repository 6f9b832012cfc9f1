package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/project_budget_app/internal/core/ports/services"
	"github.com/SscSPs/project_budget_app/internal/dto"
	"github.com/SscSPs/project_budget_app/internal/middleware"
	"github.com/SscSPs/project_budget_app/internal/validator"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to project budgets.
type budgetHandler struct {
	budgetService     portssvc.BudgetSvcFacade
	conversionService portssvc.BudgetConversionSvc
}

// newBudgetHandler creates a new budgetHandler.
func newBudgetHandler(bs portssvc.BudgetSvcFacade, cs portssvc.BudgetConversionSvc) *budgetHandler {
	return &budgetHandler{
		budgetService:     bs,
		conversionService: cs,
	}
}

// registerBudgetRoutes registers routes related to project budgets.
// guard runs in front of the routes that modify stored budgets.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade, conversionService portssvc.BudgetConversionSvc, guard ...gin.HandlerFunc) {
	h := newBudgetHandler(budgetService, conversionService)

	budgets := rg.Group("/budgets")
	{
		budgets.GET("/:id", h.getBudget)
		budgets.POST("/currency", h.convertBudgetCurrency)
		budgets.POST("", guarded(guard, h.createBudget)...)
		budgets.PUT("/:id", guarded(guard, h.updateBudget)...)
		budgets.DELETE("/:id", guarded(guard, h.deleteBudget)...)
	}
}

// guarded returns a fresh chain of guard followed by handler.
func guarded(guard []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(guard)+1)
	chain = append(chain, guard...)
	return append(chain, handler)
}

// withActor tags logger with the authenticated token subject, if any.
func withActor(c *gin.Context, logger *slog.Logger) *slog.Logger {
	if subject, ok := middleware.GetSubjectFromCtx(c.Request.Context()); ok {
		return logger.With(slog.String("actor", subject))
	}
	return logger
}

// getBudget godoc
// @Summary Get a project budget
// @Description Retrieves the budget stored for a project ID
// @Tags budgets
// @Produce  json
// @Param   id path int true "Project ID"
// @Success 200 {object} dto.ProjectBudgetResponse
// @Failure 400 {object} dto.APIResponse "Invalid ID"
// @Failure 404 {object} dto.APIResponse "Budget not found"
// @Failure 500 {object} dto.APIResponse "Failed to find project"
// @Router /budgets/{id} [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID, ok := parseProjectID(c, logger)
	if !ok {
		return
	}

	budget, err := h.budgetService.GetBudgetByID(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectBudgetResponse(budget))
}

// createBudget godoc
// @Summary Create a project budget
// @Description Stores a new project budget. The project ID must not exist yet.
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   budget body dto.CreateProjectBudgetRequest true "Budget details"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Field errors, or the project ID already exists"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Failed to create project"
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProjectBudgetRequest
	if !bindValidated(c, logger, validator.CreateBudgetRules(), &req) {
		return
	}

	logger = withActor(c, logger).With(slog.Int64("project_id", req.ProjectID))
	logger.Info("Received request to create budget")

	if _, err := h.budgetService.CreateBudget(c.Request.Context(), req); err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Budget created")

	c.JSON(http.StatusCreated, dto.Succeeded(nil))
}

// updateBudget godoc
// @Summary Update a project budget
// @Description Replaces every field of an existing budget except its project ID
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   id path int true "Project ID"
// @Param   budget body dto.UpdateProjectBudgetRequest true "Budget details"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Invalid ID or field errors"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Budget not found"
// @Failure 500 {object} dto.APIResponse "Failed to update project"
// @Security BearerAuth
// @Router /budgets/{id} [put]
func (h *budgetHandler) updateBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID, ok := parseProjectID(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateProjectBudgetRequest
	if !bindValidated(c, logger, validator.UpdateBudgetRules(), &req) {
		return
	}

	logger = withActor(c, logger).With(slog.Int64("project_id", projectID))
	if _, err := h.budgetService.UpdateBudget(c.Request.Context(), projectID, req); err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Budget updated")

	c.JSON(http.StatusOK, dto.Succeeded(nil))
}

// deleteBudget godoc
// @Summary Delete a project budget
// @Tags budgets
// @Produce  json
// @Param   id path int true "Project ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Invalid ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Budget not found"
// @Failure 500 {object} dto.APIResponse "Failed to delete project"
// @Security BearerAuth
// @Router /budgets/{id} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID, ok := parseProjectID(c, logger)
	if !ok {
		return
	}

	logger = withActor(c, logger).With(slog.Int64("project_id", projectID))
	if err := h.budgetService.DeleteBudget(c.Request.Context(), projectID); err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Budget deleted")

	c.JSON(http.StatusOK, dto.Succeeded(nil))
}

// convertBudgetCurrency godoc
// @Summary Convert final budgets to another currency
// @Description Returns every budget of a project and year with its final budget expressed in the requested currency, as field finalBudget<Ccc>
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   request body dto.CurrencyConversionRequest true "Project, year and target currency"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Field errors"
// @Failure 500 {object} dto.APIResponse "Failed to convert currency"
// @Router /budgets/currency [post]
func (h *budgetHandler) convertBudgetCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CurrencyConversionRequest
	if !bindValidated(c, logger, validator.CurrencyRules(), &req) {
		return
	}

	converted, err := h.conversionService.ConvertFinalBudgets(c.Request.Context(), req.ProjectName, req.Year, req.Currency)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.Succeeded(converted))
}
