package client_controller

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

// DeleteClient godoc
// @Summary Delete client
// @Description Delete a client record; past orders keep their frozen client data
// @Tags Admin - Clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid client ID"
// @Failure 404 {object} models.ApiResponse "Client not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/clients/{id} [delete]
func DeleteClient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid client ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := clients.DeleteClient(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Client not found"))
			return
		}
		log.Printf("[admin.client.delete] failed for id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete client"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Client deleted", nil))
}
