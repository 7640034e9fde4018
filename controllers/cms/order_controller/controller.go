package order_controller

import (
	"github.com/Joaovitor770/cnx-0110/store"
)

var orders *store.CatalogStore

// Init wires the controller to the catalog store. Orders are read
// straight from the backend, no mirror in between.
func Init(s *store.CatalogStore) {
	orders = s
}
