package catalog_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/config"
	"github.com/Joaovitor770/cnx-0110/models"
)

// GetStorefrontSettings godoc
// @Summary Get public store settings
// @Description Retrieve store branding, contact info and shipping price for the storefront shell
// @Tags Storefront - Catalog
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.StoreSettings}
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /settings [get]
func GetStorefrontSettings(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	settings, err := catalog.GetSettings(ctx)
	if err != nil {
		log.Printf("[storefront.settings] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch settings"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings fetched", settings))
}
