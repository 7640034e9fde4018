package collection_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/config"
	"github.com/Joaovitor770/cnx-0110/models"
	"github.com/Joaovitor770/cnx-0110/store"
)

// DeleteCollection godoc
// @Summary Delete collection
// @Description Delete a collection
// @Tags Admin - Collections
// @Produce json
// @Security BearerAuth
// @Param id path int true "Collection ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid collection ID"
// @Failure 404 {object} models.ApiResponse "Collection not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/collections/{id} [delete]
func DeleteCollection(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid collection ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := collections.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Collection not found"))
			return
		}
		log.Printf("[admin.collection.delete] failed for id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete collection"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Collection deleted", nil))
}
