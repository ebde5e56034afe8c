package handler

import (
	pricingapp "github.com/meatrics/backend/internal/application/pricing"
	"github.com/meatrics/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PricingRuleHandler handles pricing rule API endpoints
type PricingRuleHandler struct {
	BaseHandler
	ruleService *pricingapp.RuleService
}

// NewPricingRuleHandler creates a new PricingRuleHandler
func NewPricingRuleHandler(ruleService *pricingapp.RuleService) *PricingRuleHandler {
	return &PricingRuleHandler{
		ruleService: ruleService,
	}
}

// DefaultRuleExistsResponse reports whether a fallback base price rule exists
// @Description Default rule existence check result
type DefaultRuleExistsResponse struct {
	Exists bool `json:"exists" example:"true"`
}

// Create godoc
// @Summary      Create a pricing rule
// @Description  Create a new pricing rule in one of the four rule categories.
// @Tags         pricing-rules
// @Accept       json
// @Produce      json
// @Param        request body pricingapp.CreateRuleRequest true "Rule creation request"
// @Success      201 {object} dto.Response{data=pricingapp.RuleResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /pricing/rules [post]
func (h *PricingRuleHandler) Create(c *gin.Context) {
	var req pricingapp.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rule, err := h.ruleService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, rule)
}

// GetByID godoc
// @Summary      Get pricing rule by ID
// @Description  Retrieve a pricing rule by its ID
// @Tags         pricing-rules
// @Accept       json
// @Produce      json
// @Param        id path string true "Rule ID" format(uuid)
// @Success      200 {object} dto.Response{data=pricingapp.RuleResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /pricing/rules/{id} [get]
func (h *PricingRuleHandler) GetByID(c *gin.Context) {
	ruleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid rule ID format")
		return
	}

	rule, err := h.ruleService.GetByID(c.Request.Context(), ruleID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, rule)
}

// List godoc
// @Summary      List pricing rules
// @Description  Retrieve a paginated list of pricing rules
// @Tags         pricing-rules
// @Accept       json
// @Produce      json
// @Param        customer_code query string false "Customer code filter"
// @Param        rule_category query string false "Rule category filter" Enums(BASE_PRICE, CUSTOMER_ADJUSTMENT, PRODUCT_ADJUSTMENT, PROMOTIONAL)
// @Param        active_only query bool false "Only active rules"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Items per page" default(20)
// @Success      200 {object} dto.Response{data=[]pricingapp.RuleResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /pricing/rules [get]
func (h *PricingRuleHandler) List(c *gin.Context) {
	var filter pricingapp.RuleListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.PageSize == 0 {
		filter.PageSize = 20
	}

	rules, total, err := h.ruleService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, rules, total, filter.Page, filter.PageSize)
}

// Update godoc
// @Summary      Update a pricing rule
// @Description  Replace an existing pricing rule's definition
// @Tags         pricing-rules
// @Accept       json
// @Produce      json
// @Param        id path string true "Rule ID" format(uuid)
// @Param        request body pricingapp.UpdateRuleRequest true "Rule update request"
// @Success      200 {object} dto.Response{data=pricingapp.RuleResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /pricing/rules/{id} [put]
func (h *PricingRuleHandler) Update(c *gin.Context) {
	ruleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid rule ID format")
		return
	}

	var req pricingapp.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rule, err := h.ruleService.Update(c.Request.Context(), ruleID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, rule)
}

// Delete godoc
// @Summary      Delete a pricing rule
// @Description  Delete a pricing rule. The last fallback base price rule cannot be deleted.
// @Tags         pricing-rules
// @Accept       json
// @Produce      json
// @Param        id path string true "Rule ID" format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /pricing/rules/{id} [delete]
func (h *PricingRuleHandler) Delete(c *gin.Context) {
	ruleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid rule ID format")
		return
	}

	if err := h.ruleService.Delete(c.Request.Context(), ruleID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Preview godoc
// @Summary      Preview a pricing rule
// @Description  Project the price impact of a candidate rule across matching line items without saving it.
// @Tags         pricing-rules
// @Accept       json
// @Produce      json
// @Param        request body pricingapp.PreviewRuleRequest true "Rule preview request"
// @Success      200 {object} dto.Response{data=pricingapp.RulePreviewResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /pricing/rules/preview [post]
func (h *PricingRuleHandler) Preview(c *gin.Context) {
	var req pricingapp.PreviewRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	preview, err := h.ruleService.Preview(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, preview)
}

// DefaultExists godoc
// @Summary      Check for the default base price rule
// @Description  Report whether an all-products fallback base price rule exists
// @Tags         pricing-rules
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.Response{data=DefaultRuleExistsResponse}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /pricing/rules/default/exists [get]
func (h *PricingRuleHandler) DefaultExists(c *gin.Context) {
	exists, err := h.ruleService.HasDefaultRule(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, DefaultRuleExistsResponse{Exists: exists})
}

// Ensure dto import is used
var _ = dto.Response{}
