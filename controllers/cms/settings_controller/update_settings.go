package settings_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/config"
	"github.com/Joaovitor770/cnx-0110/models"
)

// UpdateSettings godoc
// @Summary Update store settings
// @Description Partially merge fields onto the singleton settings row; absent fields keep their value
// @Tags Admin - Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.UpdateSettingsRequest true "Update payload"
// @Success 200 {object} models.ApiResponse{data=models.StoreSettings}
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/settings [patch]
func UpdateSettings(c *gin.Context) {
	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	updates := map[string]any{}
	if req.StoreName != nil {
		updates["store_name"] = *req.StoreName
	}
	if req.Logo != nil {
		updates["logo"] = *req.Logo
	}
	if req.Banner != nil {
		updates["banner"] = *req.Banner
	}
	if req.PrimaryColor != nil {
		updates["primary_color"] = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		updates["secondary_color"] = *req.SecondaryColor
	}
	if req.ContactEmail != nil {
		updates["contact_email"] = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		updates["contact_phone"] = *req.ContactPhone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.ShippingPrice != nil {
		updates["shipping_price"] = *req.ShippingPrice
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := settingsStore.UpdateSettings(ctx, updates); err != nil {
		log.Printf("[admin.settings.update] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update settings"))
		return
	}

	settings, err := settingsStore.GetSettings(ctx)
	if err != nil {
		log.Printf("[admin.settings.update] re-fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch settings"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings updated", settings))
}
