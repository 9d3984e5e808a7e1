package controllers

import (
	"log"

	"dinkys-shop/models"
	"dinkys-shop/utils"

	"github.com/gin-gonic/gin"
)

// CheckoutController collects the checkout form. Payment is a stub: the
// payload is validated and acknowledged, no order row is written and no
// payment session is created.
type CheckoutController struct {
	emailService *models.EmailService
}

// NewCheckoutController takes an optional email collaborator; nil disables
// confirmation mail without affecting checkout.
func NewCheckoutController(emailService *models.EmailService) *CheckoutController {
	return &CheckoutController{emailService: emailService}
}

// @Summary Checkout
// @Description Validate cart items and shipping details (test mode, no payment)
// @Tags Checkout
// @Accept json
// @Produce json
// @Param checkout body models.CheckoutRequest true "Checkout payload"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid payload", "error": err.Error()})
		return
	}

	var totalCents int64
	for _, item := range req.Items {
		totalCents += item.PriceCents * int64(item.Quantity)
	}

	if ctrl.emailService != nil {
		if err := ctrl.emailService.SendOrderConfirmationEmail(
			req.Shipping.Email, req.Shipping.FullName, utils.FormatPrice(totalCents),
		); err != nil {
			log.Printf("Failed to send confirmation email: %v", err)
		}
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order placed successfully (test mode)",
		"data":    gin.H{"total_cents": totalCents, "total_display": utils.FormatPrice(totalCents)},
	})
}
