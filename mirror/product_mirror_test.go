package mirror

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joaovitor770/cnx-0110/models"
	"github.com/Joaovitor770/cnx-0110/store"
)

// fakeProductStore is an in-memory ProductStore that counts list calls
// and records partial updates.
type fakeProductStore struct {
	mu       sync.Mutex
	products []models.Product
	listErr  error

	listCalls   int
	lastUpdates map[string]any
	nextID      int64
}

func (f *fakeProductStore) ListProducts(context.Context) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	cp := make([]models.Product, len(f.products))
	copy(cp, f.products)
	return cp, nil
}

func (f *fakeProductStore) InsertProduct(_ context.Context, p *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	p.ID = f.nextID
	f.products = append(f.products, *p)
	return nil
}

func (f *fakeProductStore) UpdateProduct(_ context.Context, id int64, updates map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastUpdates = updates
	for _, p := range f.products {
		if p.ID == id {
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeProductStore) DeleteProduct(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.products {
		if p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeProductStore) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

func (f *fakeProductStore) updates() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastUpdates
}

// passthroughIngestor returns images unchanged.
type passthroughIngestor struct{}

func (passthroughIngestor) Ingest(_ context.Context, image string) (string, error) {
	return image, nil
}

func (passthroughIngestor) IngestAll(_ context.Context, images []string) ([]string, error) {
	return images, nil
}

func newTestMirror(t *testing.T, fake *fakeProductStore) (*ProductMirror, *store.MemoryNotifier, context.Context) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	notifier := store.NewMemoryNotifier()
	m := NewProductMirror(fake, notifier, passthroughIngestor{})
	require.NoError(t, m.Start(ctx))
	return m, notifier, ctx
}

func TestProductMirrorRefetchesOnNotification(t *testing.T) {
	fake := &fakeProductStore{products: []models.Product{{ID: 1, Name: "Camiseta", Slug: "camiseta"}}}
	m, notifier, ctx := newTestMirror(t, fake)

	require.Equal(t, 1, fake.calls(), "Start performs the initial full fetch")
	require.Len(t, m.List(), 1)

	// Change the backend, then notify: the mirror must re-fetch the
	// whole list rather than patch
	fake.mu.Lock()
	fake.products = append(fake.products, models.Product{ID: 2, Name: "Moletom", Slug: "moletom"})
	fake.mu.Unlock()

	require.NoError(t, notifier.Publish(ctx, store.TableProducts))
	require.Eventually(t, func() bool {
		return len(m.List()) == 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 2, fake.calls(), "exactly one re-fetch per notification")
}

func TestProductMirrorRefreshFailureKeepsList(t *testing.T) {
	fake := &fakeProductStore{products: []models.Product{{ID: 1, Name: "Camiseta"}}}
	m, _, ctx := newTestMirror(t, fake)

	fake.mu.Lock()
	fake.listErr = errors.New("backend down")
	fake.mu.Unlock()

	assert.Error(t, m.Refresh(ctx))
	assert.Len(t, m.List(), 1, "stale data beats no data")
}

func TestProductMirrorAddDerivesSlug(t *testing.T) {
	fake := &fakeProductStore{}
	m, _, ctx := newTestMirror(t, fake)

	product, err := m.Add(ctx, models.ProductRequest{
		Name:   "Calça Cargo Bege",
		Price:  189.90,
		Images: []string{"https://cdn.example.com/a.jpg"},
		Sizes:  []models.ProductSize{{Size: "40", Stock: 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, "calca-cargo-bege", product.Slug)
	assert.NotZero(t, product.ID)
}

func TestProductMirrorUpdateSlugOnlyOnNameChange(t *testing.T) {
	fake := &fakeProductStore{products: []models.Product{{ID: 1, Name: "Camiseta", Slug: "camiseta"}}}
	m, _, ctx := newTestMirror(t, fake)

	// Same name: no slug regeneration, external links stay valid
	same := "Camiseta"
	require.NoError(t, m.Update(ctx, 1, models.UpdateProductRequest{Name: &same}))
	updates := fake.updates()
	assert.Contains(t, updates, "name")
	assert.NotContains(t, updates, "slug")

	// Changed name: slug follows
	renamed := "Camiseta Básica"
	require.NoError(t, m.Update(ctx, 1, models.UpdateProductRequest{Name: &renamed}))
	updates = fake.updates()
	assert.Equal(t, "camiseta-basica", updates["slug"])
}

func TestProductMirrorUpdateMissingProduct(t *testing.T) {
	fake := &fakeProductStore{}
	m, _, ctx := newTestMirror(t, fake)

	name := "Novo"
	err := m.Update(ctx, 42, models.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestProductMirrorDecrementStockClampsAtZero(t *testing.T) {
	fake := &fakeProductStore{products: []models.Product{{
		ID:   1,
		Name: "Camiseta",
		Sizes: models.SizesList{
			{Size: "M", Stock: 2},
			{Size: "G", Stock: 5},
		},
	}}}
	m, _, ctx := newTestMirror(t, fake)

	require.NoError(t, m.DecrementStock(ctx, 1, "M", 10))

	sizes, ok := fake.updates()["sizes"].(models.SizesList)
	require.True(t, ok)
	require.Len(t, sizes, 2)
	assert.Equal(t, 0, sizes[0].Stock, "stock never goes negative")
	assert.Equal(t, 5, sizes[1].Stock, "other sizes untouched")
}

func TestProductMirrorGetBySlug(t *testing.T) {
	fake := &fakeProductStore{products: []models.Product{
		{ID: 2, Name: "Novo", Slug: "camiseta"},
		{ID: 1, Name: "Antigo", Slug: "camiseta"},
	}}
	m, _, _ := newTestMirror(t, fake)

	// Lists are newest first, so a duplicated slug resolves to the
	// newest product
	p, ok := m.GetBySlug("camiseta")
	require.True(t, ok)
	assert.Equal(t, int64(2), p.ID)

	_, ok = m.GetBySlug("missing")
	assert.False(t, ok)
}
