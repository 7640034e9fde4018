package catalog_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/models"
)

// GetStorefrontProducts godoc
// @Summary Browse products
// @Description Retrieve catalog products, newest first, optionally filtered by category or collection
// @Tags Storefront - Catalog
// @Produce json
// @Param category query string false "Category slug"
// @Param collection query string false "Collection slug"
// @Success 200 {object} models.ApiResponse
// @Router /products [get]
func GetStorefrontProducts(c *gin.Context) {
	all := products.List()

	if slug := c.Query("category"); slug != "" {
		var categoryID int64 = -1
		for _, cat := range categories.List() {
			if cat.Slug == slug {
				categoryID = cat.ID
				break
			}
		}
		all = filterProducts(all, func(p models.Product) bool {
			return p.CategoryID != nil && *p.CategoryID == categoryID
		})
	}

	if slug := c.Query("collection"); slug != "" {
		collection, ok := collections.GetBySlug(slug)
		if !ok {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched", []models.Product{}))
			return
		}
		all = filterProducts(all, func(p models.Product) bool {
			return p.CollectionID != nil && *p.CollectionID == collection.ID
		})
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit < len(all) {
			all = all[:limit]
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched", all))
}

func filterProducts(in []models.Product, keep func(models.Product) bool) []models.Product {
	out := make([]models.Product, 0, len(in))
	for _, p := range in {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
