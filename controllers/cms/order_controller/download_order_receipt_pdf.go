package order_controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/config"
	"github.com/Joaovitor770/cnx-0110/models"
	"github.com/Joaovitor770/cnx-0110/services"
	"github.com/Joaovitor770/cnx-0110/store"
)

// DownloadOrderReceiptPDF godoc
// @Summary Download order receipt PDF
// @Description Generate and download a receipt PDF for the order
// @Tags Admin - Orders
// @Produce octet-stream
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 "PDF file"
// @Failure 400 {object} models.ApiResponse "Invalid order ID"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/orders/{id}/receipt [get]
func DownloadOrderReceiptPDF(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := orders.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[admin.order.receipt] failed to fetch order %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order"))
		return
	}

	settings, err := orders.GetSettings(ctx)
	if err != nil {
		log.Printf("[admin.order.receipt] failed to fetch settings: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch settings"))
		return
	}

	buf, err := services.GenerateOrderReceiptPDF(order, settings)
	if err != nil {
		log.Printf("[admin.order.receipt] PDF generation failed for order %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate receipt"))
		return
	}

	filename := fmt.Sprintf("pedido-%d.pdf", order.ID)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Length", strconv.Itoa(buf.Len()))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())

	log.Printf("[admin.order.receipt] receipt downloaded for order %d", id)
}
