package catalog_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/models"
)

// GetStorefrontCollections godoc
// @Summary Browse collections
// @Description Retrieve all collections with their cover images
// @Tags Storefront - Catalog
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /collections [get]
func GetStorefrontCollections(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Collections fetched", collections.List()))
}

// GetStorefrontCollectionBySlug godoc
// @Summary Get collection by slug
// @Description Retrieve one collection and its products by URL slug
// @Tags Storefront - Catalog
// @Produce json
// @Param slug path string true "Collection slug"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Collection not found"
// @Router /collections/{slug} [get]
func GetStorefrontCollectionBySlug(c *gin.Context) {
	collection, ok := collections.GetBySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Collection not found"))
		return
	}

	items := filterProducts(products.List(), func(p models.Product) bool {
		return p.CollectionID != nil && *p.CollectionID == collection.ID
	})

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Collection fetched", gin.H{
		"collection": collection,
		"products":   items,
	}))
}
