package handler

import (
	"context"

	catalogapp "github.com/cruisehub/backend/internal/application/catalog"
	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/cruisehub/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CruiseHandler handles cruise catalog and inventory endpoints
type CruiseHandler struct {
	BaseHandler
	cruiseService    *catalogapp.CruiseService
	inventoryService *catalogapp.InventoryService
}

// NewCruiseHandler creates a new CruiseHandler
func NewCruiseHandler(cruiseService *catalogapp.CruiseService, inventoryService *catalogapp.InventoryService) *CruiseHandler {
	return &CruiseHandler{
		cruiseService:    cruiseService,
		inventoryService: inventoryService,
	}
}

// RegisterRoutes registers the cruise routes
func (h *CruiseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/cruises")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.GET("/:id/inventory", h.ListInventory)
	g.PUT("/:id/inventory", h.SetInventory)
	g.POST("/:id/inventory/reserve", h.ReserveCabins)
	g.POST("/:id/inventory/release", h.ReleaseCabins)
}

// Create creates a cruise
func (h *CruiseHandler) Create(c *gin.Context) {
	var req catalogapp.CreateCruiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.cruiseService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

type cruiseListQuery struct {
	dto.ListRequest
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
	SortBy   string `form:"sort_by" binding:"omitempty,oneof=code name departure_date base_price created_at"`
	SortDesc bool   `form:"sort_desc"`
}

// List lists cruises
func (h *CruiseHandler) List(c *gin.Context) {
	var q cruiseListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	q.Normalize()

	cruises, total, err := h.cruiseService.List(c.Request.Context(), catalogapp.CruiseListFilter{
		Search:   q.Search,
		Status:   q.Status,
		Page:     q.Page,
		PageSize: q.PageSize,
		SortBy:   q.SortBy,
		SortDesc: q.SortDesc,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, cruises, total, q.Page, q.PageSize)
}

// Get returns a cruise by ID
func (h *CruiseHandler) Get(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	resp, err := h.cruiseService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

type updateCruiseBody struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	DeparturePort *string          `json:"departure_port"`
	BasePrice     *decimal.Decimal `json:"base_price"`
	Status        *string          `json:"status" binding:"omitempty,oneof=active inactive"`
}

// Update applies the fields present in the body. Name, description and
// departure port travel together; a base price change goes through the
// dedicated operation so the repricing sweep attributes it correctly.
func (h *CruiseHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var body updateCruiseBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	resp, err := h.cruiseService.GetByID(ctx, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if body.Name != nil || body.Description != nil || body.DeparturePort != nil {
		req := catalogapp.UpdateCruiseRequest{
			Name:          resp.Name,
			Description:   resp.Description,
			DeparturePort: resp.DeparturePort,
		}
		if body.Name != nil {
			req.Name = *body.Name
		}
		if body.Description != nil {
			req.Description = *body.Description
		}
		if body.DeparturePort != nil {
			req.DeparturePort = *body.DeparturePort
		}
		if resp, err = h.cruiseService.Update(ctx, id, req); err != nil {
			h.HandleError(c, err)
			return
		}
	}

	if body.BasePrice != nil {
		if resp, err = h.cruiseService.UpdateBasePrice(ctx, id, catalogapp.UpdateBasePriceRequest{BasePrice: *body.BasePrice}); err != nil {
			h.HandleError(c, err)
			return
		}
	}

	if body.Status != nil {
		if resp, err = h.cruiseService.SetStatus(ctx, id, *body.Status); err != nil {
			h.HandleError(c, err)
			return
		}
	}

	h.Success(c, resp)
}

// Delete deletes a cruise
func (h *CruiseHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.cruiseService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListInventory returns per-category cabin inventory for a cruise
func (h *CruiseHandler) ListInventory(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	rows, err := h.inventoryService.ListByCruise(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// SetInventory creates or resizes inventory for a cabin category
func (h *CruiseHandler) SetInventory(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req catalogapp.SetInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.inventoryService.Set(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

type adjustInventoryBody struct {
	Category string `json:"category" binding:"required"`
	Count    int    `json:"count" binding:"required,min=1"`
}

// ReserveCabins removes cabins from the remaining pool
func (h *CruiseHandler) ReserveCabins(c *gin.Context) {
	h.adjustInventory(c, h.inventoryService.Reserve)
}

// ReleaseCabins returns cabins to the remaining pool
func (h *CruiseHandler) ReleaseCabins(c *gin.Context) {
	h.adjustInventory(c, h.inventoryService.Release)
}

type adjustFunc func(ctx context.Context, cruiseID uuid.UUID, category catalog.CabinCategory, count int) (*catalogapp.InventoryResponse, error)

func (h *CruiseHandler) adjustInventory(c *gin.Context, op adjustFunc) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var body adjustInventoryBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	category := catalog.CabinCategory(body.Category)
	if !category.IsValid() {
		h.BadRequest(c, "Unknown cabin category")
		return
	}

	resp, err := op(c.Request.Context(), id, category, body.Count)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
