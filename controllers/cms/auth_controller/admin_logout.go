package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/models"
)

// AdminLogout godoc
// @Summary Admin logout
// @Description Clear the admin session cookie
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/logout [post]
func AdminLogout(c *gin.Context) {
	c.SetCookie("admin_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
