package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/cart"
	"github.com/Joaovitor770/cnx-0110/models"
	"github.com/Joaovitor770/cnx-0110/utils"
)

type addItemRequest struct {
	ProductID int64  `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Color     string `json:"color"`
}

// AddItem godoc
// @Summary Add item to cart
// @Description Add one unit of a product variant. An existing line with the same product, size and color merges by incrementing quantity
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string true "Cart session token"
// @Param payload body addItemRequest true "Item to add"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /cart/items [post]
func AddItem(c *gin.Context) {
	ct, ok := sessionCart(c)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	product, found := products.Get(req.ProductID)
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}

	// Cart lines carry the display price; the catalog's numeric price
	// crosses the boundary formatted.
	ct.Add(c.Request.Context(), cart.Line{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     utils.FormatBRLFloat(product.Price),
		Image:     image,
		Size:      req.Size,
		Color:     req.Color,
	})

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added", cartPayload(ct)))
}
