package cms_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/controllers/cms/auth_controller"
	"github.com/Joaovitor770/cnx-0110/middleware"
	"github.com/Joaovitor770/cnx-0110/services"
)

// Setup registers the whole admin surface under /admin. Everything
// except login sits behind the admin JWT.
func Setup(rg *gin.RouterGroup, jwtService *services.JWTService) {
	admin := rg.Group("/admin")

	// Login is public but tightly rate limited
	admin.POST("/login", middleware.RateLimiter(10, time.Minute), auth_controller.AdminLogin)

	protected := admin.Group("")
	protected.Use(middleware.AdminAuth(jwtService))
	{
		protected.POST("/logout", auth_controller.AdminLogout)

		SetupCategoryRoutes(protected)
		SetupCollectionRoutes(protected)
		SetupProductRoutes(protected)
		SetupOrderRoutes(protected)
		SetupClientRoutes(protected)
		SetupSettingsRoutes(protected)
	}
}
