package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/controllers/cms/settings_controller"
)

func SetupSettingsRoutes(rg *gin.RouterGroup) {
	settings := rg.Group("/settings")

	settings.GET("", settings_controller.GetSettings)
	settings.PATCH("", settings_controller.UpdateSettings)
}
