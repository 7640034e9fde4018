package mirror

import (
	"context"
	"log"
	"sync"

	"github.com/Joaovitor770/cnx-0110/models"
	"github.com/Joaovitor770/cnx-0110/store"
	"github.com/Joaovitor770/cnx-0110/utils"
)

// ProductStore is the slice of the catalog store the product mirror
// writes through.
type ProductStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	InsertProduct(ctx context.Context, p *models.Product) error
	UpdateProduct(ctx context.Context, id int64, updates map[string]any) error
	DeleteProduct(ctx context.Context, id int64) error
}

// ImageIngestor converts attached image payloads into durable URLs
// before they are persisted. Already-durable URLs pass through
// unchanged.
type ImageIngestor interface {
	Ingest(ctx context.Context, image string) (string, error)
	IngestAll(ctx context.Context, images []string) ([]string, error)
}

// Subscriber is the notification side of the store boundary.
type Subscriber interface {
	Subscribe(ctx context.Context, table store.Table) (<-chan store.Event, func(), error)
}

// ProductMirror holds an in-memory ordered copy of the products table
// (newest-created first). The backend always wins: every change
// notification — including ones caused by this mirror's own writes —
// triggers a full re-fetch, never an incremental patch. A full
// re-fetch can never drift from the backend's state, and it
// automatically propagates writes from other sessions.
type ProductMirror struct {
	mu       sync.RWMutex
	products []models.Product

	store  ProductStore
	events Subscriber
	ingest ImageIngestor
}

func NewProductMirror(s ProductStore, events Subscriber, ingest ImageIngestor) *ProductMirror {
	return &ProductMirror{store: s, events: events, ingest: ingest}
}

// Start performs the initial full fetch and begins re-fetching on
// every change notification until ctx is cancelled.
func (m *ProductMirror) Start(ctx context.Context) error {
	if err := m.Refresh(ctx); err != nil {
		return err
	}
	ch, cancel, err := m.events.Subscribe(ctx, store.TableProducts)
	if err != nil {
		return err
	}
	go func() {
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-ch:
				if !ok {
					return
				}
				if err := m.Refresh(ctx); err != nil {
					log.Printf("[mirror.products] re-fetch failed: %v", err)
				}
			}
		}
	}()
	return nil
}

// Refresh replaces the local list with the backend's current state.
// On failure the local list is left untouched.
func (m *ProductMirror) Refresh(ctx context.Context) error {
	list, err := m.store.ListProducts(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.products = list
	m.mu.Unlock()
	return nil
}

// List returns a copy of the mirrored products, newest first.
func (m *ProductMirror) List() []models.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cp := make([]models.Product, len(m.products))
	copy(cp, m.products)
	return cp
}

func (m *ProductMirror) Get(id int64) (models.Product, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (m *ProductMirror) GetBySlug(slug string) (models.Product, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.products {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.Product{}, false
}

// Add ingests every attached image, derives the slug and persists the
// product. The local list is updated by the notification-triggered
// re-fetch, never patched in place.
func (m *ProductMirror) Add(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	images, err := m.ingest.IngestAll(ctx, req.Images)
	if err != nil {
		return nil, err
	}
	colors, err := m.ingestColors(ctx, req.Colors)
	if err != nil {
		return nil, err
	}

	product := models.Product{
		Name:         req.Name,
		Brand:        req.Brand,
		Price:        req.Price,
		Images:       images,
		Category:     req.Category,
		CategoryID:   req.CategoryID,
		Sizes:        models.SizesList(req.Sizes),
		Colors:       colors,
		Description:  req.Description,
		Slug:         utils.Slugify(req.Name),
		CollectionID: req.CollectionID,
	}
	if err := m.store.InsertProduct(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update persists a partial edit. The slug is regenerated only when
// the name actually changes, so unrelated edits never invalidate
// external links.
func (m *ProductMirror) Update(ctx context.Context, id int64, req models.UpdateProductRequest) error {
	current, ok := m.Get(id)
	if !ok {
		return store.ErrNotFound
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
		if *req.Name != current.Name {
			updates["slug"] = utils.Slugify(*req.Name)
		}
	}
	if req.Brand != nil {
		updates["brand"] = *req.Brand
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.CollectionID != nil {
		updates["collection_id"] = *req.CollectionID
	}
	if req.Sizes != nil {
		updates["sizes"] = models.SizesList(*req.Sizes)
	}
	if req.Images != nil {
		images, err := m.ingest.IngestAll(ctx, *req.Images)
		if err != nil {
			return err
		}
		updates["images"] = models.StringList(images)
	}
	if req.Colors != nil {
		colors, err := m.ingestColors(ctx, *req.Colors)
		if err != nil {
			return err
		}
		updates["colors"] = colors
	}

	return m.store.UpdateProduct(ctx, id, updates)
}

func (m *ProductMirror) Delete(ctx context.Context, id int64) error {
	return m.store.DeleteProduct(ctx, id)
}

// DecrementStock reduces the stock counter of one size label, clamped
// at zero, and writes back the full sizes list. This is a
// read-modify-write with no concurrency guard: two sessions
// decrementing the same product/size can race and one decrement can be
// lost. The store's DecrementStockAtomic is the race-free path.
func (m *ProductMirror) DecrementStock(ctx context.Context, id int64, size string, quantity int) error {
	current, ok := m.Get(id)
	if !ok {
		return store.ErrNotFound
	}

	sizes := make(models.SizesList, len(current.Sizes))
	copy(sizes, current.Sizes)
	for i, s := range sizes {
		if s.Size != size {
			continue
		}
		stock := s.Stock - quantity
		if stock < 0 {
			stock = 0
		}
		sizes[i].Stock = stock
	}

	return m.store.UpdateProduct(ctx, id, map[string]any{"sizes": sizes})
}

func (m *ProductMirror) ingestColors(ctx context.Context, colors []models.ProductColor) (models.ColorsList, error) {
	if len(colors) == 0 {
		return models.ColorsList{}, nil
	}
	out := make(models.ColorsList, len(colors))
	for i, c := range colors {
		images, err := m.ingest.IngestAll(ctx, c.Images)
		if err != nil {
			return nil, err
		}
		out[i] = models.ProductColor{Name: c.Name, Hex: c.Hex, Images: images}
	}
	return out, nil
}
