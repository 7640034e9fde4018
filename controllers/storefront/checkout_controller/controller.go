package checkout_controller

import (
	"github.com/Joaovitor770/cnx-0110/cart"
	"github.com/Joaovitor770/cnx-0110/services"
)

var (
	checkout *services.CheckoutService
	carts    *cart.Manager
)

// Init wires the controller to the checkout service and the cart
// manager.
func Init(s *services.CheckoutService, m *cart.Manager) {
	checkout = s
	carts = m
}
