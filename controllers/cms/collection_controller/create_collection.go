package collection_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/config"
	"github.com/Joaovitor770/cnx-0110/models"
)

// CreateCollection godoc
// @Summary Create collection
// @Description Create a new collection; the cover image runs through the ingestion pipeline
// @Tags Admin - Collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.CollectionRequest true "Collection payload"
// @Success 201 {object} models.ApiResponse{data=models.Collection}
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/collections [post]
func CreateCollection(c *gin.Context) {
	var req models.CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	// Image upload can be slow; give it more room than a plain DB write
	ctx, cancel := config.WithCustomTimeout(60 * time.Second)
	defer cancel()

	collection, err := collections.Add(ctx, req)
	if err != nil {
		log.Printf("[admin.collection.create] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create collection"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Collection created", collection))
}
