package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/config"
	"github.com/Joaovitor770/cnx-0110/models"
)

// CreateCategory godoc
// @Summary Create category
// @Description Create a new category; the slug is derived from the name
// @Tags Admin - Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.CategoryRequest true "Category payload"
// @Success 201 {object} models.ApiResponse{data=models.Category}
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/categories [post]
func CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	category, err := categories.Add(ctx, req)
	if err != nil {
		log.Printf("[admin.category.create] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created", category))
}
