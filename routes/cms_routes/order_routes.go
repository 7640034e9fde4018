package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/controllers/cms/order_controller"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")

	orders.GET("", order_controller.GetOrders)
	orders.GET("/:id", order_controller.GetOrderByID)
	orders.PATCH("/:id/status", order_controller.UpdateOrderStatus)
	orders.GET("/:id/receipt", order_controller.DownloadOrderReceiptPDF)
}
