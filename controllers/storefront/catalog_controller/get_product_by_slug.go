package catalog_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/models"
)

// GetStorefrontProductBySlug godoc
// @Summary Get product by slug
// @Description Retrieve one product by its URL slug. If several products share a slug, the newest wins
// @Tags Storefront - Catalog
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /products/{slug} [get]
func GetStorefrontProductBySlug(c *gin.Context) {
	product, ok := products.GetBySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched", product))
}
