package collection_controller

import (
	"github.com/Joaovitor770/cnx-0110/mirror"
)

var collections *mirror.CollectionMirror

// Init wires the controller to the collection mirror. Must be called
// before routes are registered.
func Init(m *mirror.CollectionMirror) {
	collections = m
}
