package product_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/config"
	"github.com/Joaovitor770/cnx-0110/models"
)

// CreateProduct godoc
// @Summary Create product
// @Description Create a new product; attached images run through the ingestion pipeline and the slug is derived from the name
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.ProductRequest true "Product payload"
// @Success 201 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	// Several images may need uploading; allow well beyond a DB write
	ctx, cancel := config.WithCustomTimeout(2 * time.Minute)
	defer cancel()

	product, err := products.Add(ctx, req)
	if err != nil {
		log.Printf("[admin.product.create] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created", product))
}
