package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewCheckoutController(nil)
	router.POST("/checkout", ctrl.Checkout)
	return router
}

func postCheckout(t *testing.T, router *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validShipping() map[string]any {
	return map[string]any{
		"email":     "jo@example.com",
		"full_name": "Jo Perera",
		"address":   "12 Galle Road, Colombo",
	}
}

func TestCheckoutComputesTotal(t *testing.T) {
	router := checkoutRouter()

	w := postCheckout(t, router, map[string]any{
		"items": []map[string]any{
			{"productId": "p1", "size": "M", "priceCents": 299900, "quantity": 2},
			{"productId": "p2", "size": "32", "priceCents": 799900, "quantity": 1},
		},
		"shipping": validShipping(),
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			TotalCents   int64  `json:"total_cents"`
			TotalDisplay string `json:"total_display"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(1399700), resp.Data.TotalCents)
	assert.Equal(t, "Rs. 13,997.00", resp.Data.TotalDisplay)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	router := checkoutRouter()

	w := postCheckout(t, router, map[string]any{
		"items":    []map[string]any{},
		"shipping": validShipping(),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutRequiresShipping(t *testing.T) {
	router := checkoutRouter()

	w := postCheckout(t, router, map[string]any{
		"items": []map[string]any{
			{"productId": "p1", "size": "M", "priceCents": 299900, "quantity": 1},
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
