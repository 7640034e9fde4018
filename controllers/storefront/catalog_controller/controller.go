package catalog_controller

import (
	"github.com/Joaovitor770/cnx-0110/mirror"
	"github.com/Joaovitor770/cnx-0110/store"
)

var (
	products    *mirror.ProductMirror
	categories  *mirror.CategoryMirror
	collections *mirror.CollectionMirror
	catalog     *store.CatalogStore
)

// Init wires the controller to the catalog mirrors. Must be called
// before routes are registered.
func Init(p *mirror.ProductMirror, cat *mirror.CategoryMirror, col *mirror.CollectionMirror, s *store.CatalogStore) {
	products = p
	categories = cat
	collections = col
	catalog = s
}
