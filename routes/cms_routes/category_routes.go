package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/controllers/cms/category_controller"
)

func SetupCategoryRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")

	categories.GET("", category_controller.GetCategories)
	categories.POST("", category_controller.CreateCategory)
	categories.PATCH("/:id", category_controller.UpdateCategory)
	categories.DELETE("/:id", category_controller.DeleteCategory)
}
