package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/controllers/cms/client_controller"
)

func SetupClientRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients")

	clients.GET("", client_controller.GetClients)
	clients.POST("", client_controller.CreateClient)
	clients.PATCH("/:id", client_controller.UpdateClient)
	clients.DELETE("/:id", client_controller.DeleteClient)
}
