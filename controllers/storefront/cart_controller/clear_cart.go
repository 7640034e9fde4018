package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/models"
)

// ClearCart godoc
// @Summary Clear cart
// @Description Empty the session's cart
// @Tags Storefront - Cart
// @Produce json
// @Param X-Cart-Session header string true "Cart session token"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Missing session header"
// @Router /cart [delete]
func ClearCart(c *gin.Context) {
	ct, ok := sessionCart(c)
	if !ok {
		return
	}

	if err := ct.Clear(c.Request.Context()); err != nil {
		log.Printf("[storefront.cart.clear] failed: %v", err)
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", cartPayload(ct)))
}
