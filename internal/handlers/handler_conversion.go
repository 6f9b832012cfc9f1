package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/project_budget_app/internal/core/ports/services"
	"github.com/SscSPs/project_budget_app/internal/dto"
	"github.com/SscSPs/project_budget_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const msgInvalidProjectNames = "Invalid project names"

type conversionHandler struct {
	conversionService portssvc.BudgetConversionSvc
}

func registerConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.BudgetConversionSvc) {
	h := &conversionHandler{conversionService: conversionService}
	rg.POST("/conversions", h.convertToTTD)
}

// convertToTTD godoc
// @Summary Project budgets into TTD
// @Description Converts the budgets of the named projects into TTD with the current rate table, keyed by project name
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   request body dto.ConvertBudgetsRequest true "Project names"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Invalid project names"
// @Failure 500 {object} dto.APIResponse "Failed to fetch exchange rates"
// @Router /conversions [post]
func (h *conversionHandler) convertToTTD(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertBudgetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid project names", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Failed(msgInvalidProjectNames))
		return
	}

	projections, err := h.conversionService.ConvertToTTD(c.Request.Context(), req.ProjectNames)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Projected budgets into TTD", slog.Int("projects", len(projections)))
	c.JSON(http.StatusOK, dto.Succeeded(projections))
}
