package handler

import (
	pricingapp "github.com/cruisehub/backend/internal/application/pricing"
	"github.com/cruisehub/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// PricingRuleHandler handles pricing rule administration endpoints
type PricingRuleHandler struct {
	BaseHandler
	ruleService *pricingapp.RuleService
}

// NewPricingRuleHandler creates a new PricingRuleHandler
func NewPricingRuleHandler(ruleService *pricingapp.RuleService) *PricingRuleHandler {
	return &PricingRuleHandler{ruleService: ruleService}
}

// RegisterRoutes registers the pricing rule routes
func (h *PricingRuleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/pricing/rules")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// Create creates a pricing rule
func (h *PricingRuleHandler) Create(c *gin.Context) {
	var req pricingapp.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.ruleService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

type ruleListQuery struct {
	dto.ListRequest
	IsActive *bool `form:"is_active"`
}

// List lists pricing rules
func (h *PricingRuleHandler) List(c *gin.Context) {
	var q ruleListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	q.Normalize()

	page, err := h.ruleService.List(c.Request.Context(), pricingapp.ListFilter{
		Search:   q.Search,
		IsActive: q.IsActive,
		Page:     q.Page,
		PageSize: q.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Get returns a pricing rule by ID
func (h *PricingRuleHandler) Get(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	resp, err := h.ruleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update updates a pricing rule
func (h *PricingRuleHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req pricingapp.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.ruleService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete deletes a pricing rule
func (h *PricingRuleHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.ruleService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
