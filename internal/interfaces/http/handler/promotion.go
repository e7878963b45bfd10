package handler

import (
	pricingapp "github.com/cruisehub/backend/internal/application/pricing"
	"github.com/cruisehub/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PromotionHandler handles promotion code endpoints
type PromotionHandler struct {
	BaseHandler
	promotionService *pricingapp.PromotionService
}

// NewPromotionHandler creates a new PromotionHandler
func NewPromotionHandler(promotionService *pricingapp.PromotionService) *PromotionHandler {
	return &PromotionHandler{promotionService: promotionService}
}

// RegisterRoutes registers the promotion routes. The wildcard segment
// carries a promotion ID on admin routes and the public code on the
// redemption route; gin requires a single name for both.
func (h *PromotionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/promotions")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.POST("/validate", h.Validate)
	g.GET("/:code", h.Get)
	g.PUT("/:code", h.Update)
	g.DELETE("/:code", h.Delete)
	g.GET("/:code/usages", h.ListUsages)
	g.POST("/:code/redeem", h.Redeem)
}

func (h *PromotionHandler) bindPromotionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("code"))
	if err != nil {
		h.BadRequest(c, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

// Create creates a promotion code
func (h *PromotionHandler) Create(c *gin.Context) {
	var req pricingapp.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.promotionService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

type promotionListQuery struct {
	dto.ListRequest
	IsActive *bool `form:"is_active"`
}

// List lists promotion codes
func (h *PromotionHandler) List(c *gin.Context) {
	var q promotionListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	q.Normalize()

	page, err := h.promotionService.List(c.Request.Context(), pricingapp.ListFilter{
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

// Get returns a promotion by ID
func (h *PromotionHandler) Get(c *gin.Context) {
	id, ok := h.bindPromotionID(c)
	if !ok {
		return
	}

	resp, err := h.promotionService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update updates a promotion
func (h *PromotionHandler) Update(c *gin.Context) {
	id, ok := h.bindPromotionID(c)
	if !ok {
		return
	}

	var req pricingapp.UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.promotionService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete deletes a promotion
func (h *PromotionHandler) Delete(c *gin.Context) {
	id, ok := h.bindPromotionID(c)
	if !ok {
		return
	}

	if err := h.promotionService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

type validatePromotionBody struct {
	Code string `json:"code" binding:"required"`
	pricingapp.ValidatePromotionRequest
}

// Validate checks a promotion code against an order without redeeming
// it. A rejected code is a successful response with is_valid false.
func (h *PromotionHandler) Validate(c *gin.Context) {
	var body validatePromotionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	validation, err := h.promotionService.Validate(c.Request.Context(), body.Code, body.ValidatePromotionRequest)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, validation)
}

// Redeem validates and atomically consumes one use of a promotion code
func (h *PromotionHandler) Redeem(c *gin.Context) {
	code := c.Param("code")

	var req pricingapp.RedeemPromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.promotionService.Redeem(c.Request.Context(), code, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListUsages lists redemptions of a promotion
func (h *PromotionHandler) ListUsages(c *gin.Context) {
	id, ok := h.bindPromotionID(c)
	if !ok {
		return
	}

	var q dto.ListRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	q.Normalize()

	usages, err := h.promotionService.ListUsages(c.Request.Context(), id, pricingapp.ListFilter{
		Page:     q.Page,
		PageSize: q.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, usages)
}
