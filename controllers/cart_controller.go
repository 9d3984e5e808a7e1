package controllers

import (
	"errors"

	"dinkys-shop/config"
	"dinkys-shop/models"
	"dinkys-shop/repositories"
	"dinkys-shop/services"

	"github.com/gin-gonic/gin"
)

// CartController exposes the session cart over HTTP. The session is
// identified by the X-Cart-Session header; each session owns one durable
// storage slot, so no cross-session coordination is needed.
type CartController struct{}

func NewCartController() *CartController {
	return &CartController{}
}

func (ctrl *CartController) loadCart(c *gin.Context) (*services.CartStore, bool) {
	sessionKey := c.GetHeader("X-Cart-Session")
	if sessionKey == "" {
		c.JSON(400, gin.H{"success": false, "message": "X-Cart-Session header required"})
		return nil, false
	}

	if config.RedisClient == nil {
		c.JSON(503, gin.H{"success": false, "message": "Cart storage unavailable"})
		return nil, false
	}

	storage := repositories.NewRedisCartStorage(config.RedisClient)
	store, err := services.LoadCart(c.Request.Context(), storage, sessionKey)
	if err != nil {
		c.JSON(503, gin.H{"success": false, "message": "Cart storage unavailable"})
		return nil, false
	}
	return store, true
}

func cartPayload(store *services.CartStore) models.CartResponse {
	return models.CartResponse{
		Items:     store.Items(),
		Total:     store.Total(),
		ItemCount: store.ItemCount(),
	}
}

// @Summary Get cart
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string true "Cart session key"
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	store, ok := ctrl.loadCart(c)
	if !ok {
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Cart retrieved", "data": cartPayload(store)})
}

// @Summary Add cart item
// @Description Add one unit of a (product, size) line; an existing line's quantity goes up by one
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string true "Cart session key"
// @Param item body models.AddCartItemRequest true "Item payload"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid payload", "error": err.Error()})
		return
	}

	store, ok := ctrl.loadCart(c)
	if !ok {
		return
	}

	item := models.CartLineItem{
		ProductID:  req.ProductID,
		Slug:       req.Slug,
		Name:       req.Name,
		PriceCents: req.PriceCents,
		Size:       req.Size,
		ImageURL:   req.ImageURL,
	}

	if err := store.AddItem(c.Request.Context(), item); err != nil {
		if errors.Is(err, services.ErrInvalidCartItem) {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(503, gin.H{"success": false, "message": "Failed to persist cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Item added to cart", "data": cartPayload(store)})
}

// @Summary Update cart item quantity
// @Description Set a line's quantity; zero or less removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string true "Cart session key"
// @Param item body models.UpdateCartItemRequest true "Quantity payload"
// @Success 200 {object} models.Response
// @Router /cart/items [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid payload", "error": err.Error()})
		return
	}

	store, ok := ctrl.loadCart(c)
	if !ok {
		return
	}

	if err := store.UpdateQuantity(c.Request.Context(), req.ProductID, req.Size, req.Quantity); err != nil {
		c.JSON(503, gin.H{"success": false, "message": "Failed to persist cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Cart updated", "data": cartPayload(store)})
}

// @Summary Remove cart item
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string true "Cart session key"
// @Param item body models.RemoveCartItemRequest true "Line identity"
// @Success 200 {object} models.Response
// @Router /cart/items [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	var req models.RemoveCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid payload", "error": err.Error()})
		return
	}

	store, ok := ctrl.loadCart(c)
	if !ok {
		return
	}

	if err := store.RemoveItem(c.Request.Context(), req.ProductID, req.Size); err != nil {
		c.JSON(503, gin.H{"success": false, "message": "Failed to persist cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Item removed from cart", "data": cartPayload(store)})
}

// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string true "Cart session key"
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	store, ok := ctrl.loadCart(c)
	if !ok {
		return
	}

	if err := store.Clear(c.Request.Context()); err != nil {
		c.JSON(503, gin.H{"success": false, "message": "Failed to persist cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Cart cleared", "data": cartPayload(store)})
}
