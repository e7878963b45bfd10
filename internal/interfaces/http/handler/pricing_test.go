package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cruisehub/backend/internal/infrastructure/scheduler"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTrigger struct {
	result scheduler.RecalculationResult
	err    error
	calls  int
}

func (s *stubTrigger) TriggerNow(ctx context.Context) (scheduler.RecalculationResult, error) {
	s.calls++
	return s.result, s.err
}

func setupPricingRouter(h *PricingHandler) *gin.Engine {
	router := gin.New()
	api := router.Group("/api/v1")
	h.RegisterRoutes(api)
	return router
}

func TestPricingHandler_Recalculate(t *testing.T) {
	trigger := &stubTrigger{result: scheduler.RecalculationResult{
		PairsChecked: 12,
		PriceChanges: 3,
	}}
	router := setupPricingRouter(NewPricingHandler(nil, trigger))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/pricing/recalculate", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, trigger.calls)

	resp := decodeResponse(t, w)
	require.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(12), data["pairs_checked"])
	assert.Equal(t, float64(3), data["price_changes"])
	assert.Equal(t, float64(0), data["errors"])
}

func TestPricingHandler_Calculate_InvalidBody(t *testing.T) {
	router := setupPricingRouter(NewPricingHandler(nil, &stubTrigger{}))

	// cruise_id is required; binding rejects before the service is touched
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/calculate", strings.NewReader(`{"category":"inside"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
}

func TestPricingHandler_History_RequiresCruiseID(t *testing.T) {
	router := setupPricingRouter(NewPricingHandler(nil, &stubTrigger{}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/pricing/history?category=inside", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
