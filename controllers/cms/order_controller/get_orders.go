package order_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/config"
	"github.com/Joaovitor770/cnx-0110/models"
)

// GetOrders godoc
// @Summary Get paginated orders
// @Description Retrieve orders newest first, optionally filtered by status
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "Filter by status (Pendente, Processando, Enviado, Entregue, Cancelado)"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/orders [get]
func GetOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	status := c.Query("status")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	all, err := orders.ListOrders(ctx)
	if err != nil {
		log.Printf("[admin.order.list] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	if status != "" {
		filtered := make([]models.Order, 0, len(all))
		for _, o := range all {
			if o.Status == status {
				filtered = append(filtered, o)
			}
		}
		all = filtered
	}

	total := len(all)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders fetched", all[start:end], meta))
}
