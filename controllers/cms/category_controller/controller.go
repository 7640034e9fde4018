package category_controller

import (
	"github.com/Joaovitor770/cnx-0110/mirror"
)

var categories *mirror.CategoryMirror

// Init wires the controller to the category mirror. Must be called
// before routes are registered.
func Init(m *mirror.CategoryMirror) {
	categories = m
}
