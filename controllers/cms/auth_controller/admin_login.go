package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/models"
	"github.com/Joaovitor770/cnx-0110/services"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin godoc
// @Summary Admin login
// @Description Authenticate the store operator and receive an admin token
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 401 {object} models.ApiResponse "Invalid credentials"
// @Router /admin/login [post]
func AdminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	token, err := authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
			return
		}
		log.Printf("[admin.login] login failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Login failed"))
		return
	}

	// Cookie for browser sessions, token in the body for API clients
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("admin_token", token, 7*24*3600, "/", "", false, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", gin.H{
		"token": token,
	}))
}
