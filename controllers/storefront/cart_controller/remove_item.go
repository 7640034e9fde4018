package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/models"
)

type removeItemRequest struct {
	ProductID int64  `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Color     string `json:"color"`
}

// RemoveItem godoc
// @Summary Remove item from cart
// @Description Drop the line matching product, size and color entirely
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string true "Cart session token"
// @Param payload body removeItemRequest true "Line identity"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Router /cart/items [delete]
func RemoveItem(c *gin.Context) {
	ct, ok := sessionCart(c)
	if !ok {
		return
	}

	var req removeItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ct.Remove(c.Request.Context(), req.ProductID, req.Size, req.Color)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed", cartPayload(ct)))
}
