package checkout_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/config"
	"github.com/Joaovitor770/cnx-0110/models"
	"github.com/Joaovitor770/cnx-0110/services"
)

// SubmitCheckout godoc
// @Summary Submit checkout
// @Description Convert the session's cart into a persisted order, decrement stock and return the payment hand-off. Stock decrement failures are reported as warnings, not errors
// @Tags Storefront - Checkout
// @Accept json
// @Produce json
// @Param X-Cart-Session header string true "Cart session token"
// @Param payload body models.CheckoutRequest true "Shipping form and payment method"
// @Success 201 {object} models.ApiResponse{data=services.CheckoutResult}
// @Failure 400 {object} models.ApiResponse "Empty cart or invalid form"
// @Failure 500 {object} models.ApiResponse "Order could not be persisted"
// @Router /checkout [post]
func SubmitCheckout(c *gin.Context) {
	session := c.GetHeader("X-Cart-Session")
	if session == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Missing X-Cart-Session header"))
		return
	}

	var form models.CheckoutRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	// The workflow runs order persistence, stock decrements and the cart
	// clear sequentially; give it room beyond a single DB write
	ctx, cancel := config.WithCustomTimeout(30 * time.Second)
	defer cancel()

	result, err := checkout.Submit(ctx, carts.Get(session), form)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart is empty"))
			return
		}
		log.Printf("[storefront.checkout] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to place order"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order placed", result))
}
