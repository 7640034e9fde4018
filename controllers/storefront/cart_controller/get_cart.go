package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/models"
)

// GetCart godoc
// @Summary Get cart
// @Description Retrieve the session's cart lines, unit count and formatted total
// @Tags Storefront - Cart
// @Produce json
// @Param X-Cart-Session header string true "Cart session token"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Missing session header"
// @Router /cart [get]
func GetCart(c *gin.Context) {
	ct, ok := sessionCart(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched", cartPayload(ct)))
}
