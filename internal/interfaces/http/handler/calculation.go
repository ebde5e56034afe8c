package handler

import (
	"time"

	pricingapp "github.com/meatrics/backend/internal/application/pricing"
	"github.com/meatrics/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CalculationHandler handles pricing calculation API endpoints
type CalculationHandler struct {
	BaseHandler
	calculationService *pricingapp.CalculationService
}

// NewCalculationHandler creates a new CalculationHandler
func NewCalculationHandler(calculationService *pricingapp.CalculationService) *CalculationHandler {
	return &CalculationHandler{
		calculationService: calculationService,
	}
}

// ListSessionsFilter represents query options for the session list
type ListSessionsFilter struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}

// Calculate godoc
// @Summary      Run a pricing calculation
// @Description  Calculate prices for every line item, or for a single customer/product pair when both codes are supplied. Each run persists a session with per-rule snapshots.
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        request body pricingapp.CalculateRequest false "Calculation request"
// @Success      200 {object} dto.Response{data=pricingapp.CalculationResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /pricing/calculations [post]
func (h *CalculationHandler) Calculate(c *gin.Context) {
	var req pricingapp.CalculateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, err.Error())
			return
		}
	}

	asOf := time.Now()
	if req.AsOfDate != nil {
		asOf = *req.AsOfDate
	}

	if req.CustomerCode != "" || req.ProductCode != "" {
		if req.CustomerCode == "" || req.ProductCode == "" {
			h.BadRequest(c, "customer_code and product_code must be supplied together")
			return
		}
		result, err := h.calculationService.CalculateForItem(c.Request.Context(), req.CustomerCode, req.ProductCode, asOf)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, result)
		return
	}

	result, err := h.calculationService.CalculateAll(c.Request.Context(), asOf)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// ListSessions godoc
// @Summary      List pricing sessions
// @Description  Retrieve recent calculation sessions, newest first
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        limit query int false "Maximum sessions to return" default(20)
// @Success      200 {object} dto.Response{data=[]pricingapp.SessionResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /pricing/calculations/sessions [get]
func (h *CalculationHandler) ListSessions(c *gin.Context) {
	var filter ListSessionsFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if filter.Limit == 0 {
		filter.Limit = 20
	}

	sessions, err := h.calculationService.ListSessions(c.Request.Context(), filter.Limit)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, sessions)
}

// GetSessionSnapshots godoc
// @Summary      Get snapshots for a session
// @Description  Retrieve the applied rule snapshots recorded during one calculation session
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]pricingapp.SnapshotResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /pricing/calculations/sessions/{id}/snapshots [get]
func (h *CalculationHandler) GetSessionSnapshots(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid session ID format")
		return
	}

	snapshots, err := h.calculationService.GetSessionSnapshots(c.Request.Context(), sessionID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, snapshots)
}

// Ensure dto import is used
var _ = dto.Response{}
