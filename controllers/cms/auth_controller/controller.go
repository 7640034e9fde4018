package auth_controller

import (
	"github.com/Joaovitor770/cnx-0110/services"
)

var authService *services.AdminAuthService

// Init wires the controller to the auth service. Must be called before
// routes are registered.
func Init(a *services.AdminAuthService) {
	authService = a
}
