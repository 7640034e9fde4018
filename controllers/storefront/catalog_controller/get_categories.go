package catalog_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/models"
)

// GetStorefrontCategories godoc
// @Summary Browse categories
// @Description Retrieve all categories for storefront navigation
// @Tags Storefront - Catalog
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /categories [get]
func GetStorefrontCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched", categories.List()))
}
