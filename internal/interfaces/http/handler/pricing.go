package handler

import (
	"context"

	pricingapp "github.com/cruisehub/backend/internal/application/pricing"
	"github.com/cruisehub/backend/internal/infrastructure/scheduler"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RecalculationTrigger runs one repricing sweep on demand
type RecalculationTrigger interface {
	TriggerNow(ctx context.Context) (scheduler.RecalculationResult, error)
}

// PricingHandler handles price calculation and history endpoints
type PricingHandler struct {
	BaseHandler
	priceService *pricingapp.PriceService
	trigger      RecalculationTrigger
}

// NewPricingHandler creates a new PricingHandler
func NewPricingHandler(priceService *pricingapp.PriceService, trigger RecalculationTrigger) *PricingHandler {
	return &PricingHandler{
		priceService: priceService,
		trigger:      trigger,
	}
}

// RegisterRoutes registers the pricing routes
func (h *PricingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/pricing")
	g.POST("/calculate", h.Calculate)
	g.GET("/history", h.History)
	g.POST("/recalculate", h.Recalculate)
}

// Calculate computes a price quote
func (h *PricingHandler) Calculate(c *gin.Context) {
	var req pricingapp.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.priceService.Quote(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

type historyQuery struct {
	CruiseID string `form:"cruise_id" binding:"required,uuid"`
	Category string `form:"category" binding:"required"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// History lists recorded price changes for a cruise/category pair
func (h *PricingHandler) History(c *gin.Context) {
	var q historyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cruiseID, err := uuid.Parse(q.CruiseID)
	if err != nil {
		h.BadRequest(c, "Invalid cruise ID format")
		return
	}

	page, err := h.priceService.GetHistory(c.Request.Context(), cruiseID, q.Category, q.Page, q.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Recalculate runs a full repricing sweep immediately
func (h *PricingHandler) Recalculate(c *gin.Context) {
	result, err := h.trigger.TriggerNow(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{
		"pairs_checked": result.PairsChecked,
		"price_changes": result.PriceChanges,
		"errors":        result.Errors,
	})
}
