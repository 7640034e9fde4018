package client_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/config"
	"github.com/Joaovitor770/cnx-0110/models"
)

// CreateClient godoc
// @Summary Create client
// @Description Register a new client record
// @Tags Admin - Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.ClientRequest true "Client payload"
// @Success 201 {object} models.ApiResponse{data=models.Client}
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/clients [post]
func CreateClient(c *gin.Context) {
	var req models.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	client := models.Client{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}
	if err := clients.InsertClient(ctx, &client); err != nil {
		log.Printf("[admin.client.create] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create client"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Client created", client))
}
