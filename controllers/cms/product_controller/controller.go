package product_controller

import (
	"github.com/Joaovitor770/cnx-0110/mirror"
)

var products *mirror.ProductMirror

// Init wires the controller to the product mirror. Must be called
// before routes are registered.
func Init(m *mirror.ProductMirror) {
	products = m
}
