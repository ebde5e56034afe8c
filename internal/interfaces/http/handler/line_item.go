package handler

import (
	pricingapp "github.com/meatrics/backend/internal/application/pricing"
	"github.com/meatrics/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LineItemHandler handles grouped line item API endpoints
type LineItemHandler struct {
	BaseHandler
	lineItemService *pricingapp.LineItemService
}

// NewLineItemHandler creates a new LineItemHandler
func NewLineItemHandler(lineItemService *pricingapp.LineItemService) *LineItemHandler {
	return &LineItemHandler{
		lineItemService: lineItemService,
	}
}

// List godoc
// @Summary      List line items
// @Description  Retrieve a paginated list of grouped line items
// @Tags         line-items
// @Accept       json
// @Produce      json
// @Param        customer_code query string false "Customer code filter"
// @Param        product_code query string false "Product code filter"
// @Param        primary_group query string false "Primary group filter"
// @Param        search query string false "Search keyword"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Items per page" default(20)
// @Success      200 {object} dto.Response{data=[]pricingapp.LineItemResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /line-items [get]
func (h *LineItemHandler) List(c *gin.Context) {
	var filter pricingapp.LineItemListFilter
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

	items, total, err := h.lineItemService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// GetByID godoc
// @Summary      Get line item by ID
// @Description  Retrieve a single grouped line item by its ID
// @Tags         line-items
// @Accept       json
// @Produce      json
// @Param        id path string true "Line item ID" format(uuid)
// @Success      200 {object} dto.Response{data=pricingapp.LineItemResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /line-items/{id} [get]
func (h *LineItemHandler) GetByID(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid line item ID format")
		return
	}

	item, err := h.lineItemService.GetByID(c.Request.Context(), itemID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// UpsertBatch godoc
// @Summary      Load line items in bulk
// @Description  Create or replace grouped line items, upserting on the customer/product pair
// @Tags         line-items
// @Accept       json
// @Produce      json
// @Param        request body pricingapp.UpsertLineItemsRequest true "Line item rows"
// @Success      200 {object} dto.Response{data=pricingapp.UpsertLineItemsResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /line-items/batch [post]
func (h *LineItemHandler) UpsertBatch(c *gin.Context) {
	var req pricingapp.UpsertLineItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	loaded, err := h.lineItemService.Upsert(c.Request.Context(), req.Items)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, pricingapp.UpsertLineItemsResponse{Loaded: loaded})
}

// Ensure dto import is used
var _ = dto.Response{}
