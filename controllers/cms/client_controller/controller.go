package client_controller

import (
	"github.com/Joaovitor770/cnx-0110/store"
)

var clients *store.CatalogStore

// Init wires the controller to the catalog store.
func Init(s *store.CatalogStore) {
	clients = s
}
