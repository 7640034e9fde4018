package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/models"
)

type updateItemRequest struct {
	ProductID int64  `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

// UpdateItem godoc
// @Summary Update item quantity
// @Description Set a cart line's quantity. Zero or negative removes the line
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string true "Cart session token"
// @Param payload body updateItemRequest true "Line identity and new quantity"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Router /cart/items [patch]
func UpdateItem(c *gin.Context) {
	ct, ok := sessionCart(c)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ct.UpdateQuantity(c.Request.Context(), req.ProductID, req.Size, req.Color, req.Quantity)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", cartPayload(ct)))
}
