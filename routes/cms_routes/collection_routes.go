package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/controllers/cms/collection_controller"
)

func SetupCollectionRoutes(rg *gin.RouterGroup) {
	collections := rg.Group("/collections")

	collections.GET("", collection_controller.GetCollections)
	collections.POST("", collection_controller.CreateCollection)
	collections.PATCH("/:id", collection_controller.UpdateCollection)
	collections.DELETE("/:id", collection_controller.DeleteCollection)
}
