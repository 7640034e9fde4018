package settings_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/config"
	"github.com/Joaovitor770/cnx-0110/models"
)

// GetSettings godoc
// @Summary Get store settings
// @Description Retrieve the singleton store settings row, creating defaults on first access
// @Tags Admin - Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.StoreSettings}
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/settings [get]
func GetSettings(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	settings, err := settingsStore.GetSettings(ctx)
	if err != nil {
		log.Printf("[admin.settings.get] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch settings"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings fetched", settings))
}
