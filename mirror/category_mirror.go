package mirror

import (
	"context"
	"log"
	"sync"

	"github.com/Joaovitor770/cnx-0110/models"
	"github.com/Joaovitor770/cnx-0110/store"
	"github.com/Joaovitor770/cnx-0110/utils"
)

type CategoryStore interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	InsertCategory(ctx context.Context, c *models.Category) error
	UpdateCategory(ctx context.Context, id int64, updates map[string]any) error
	DeleteCategory(ctx context.Context, id int64) error
}

// CategoryMirror mirrors the categories table, newest first. Same
// re-fetch-on-any-change strategy as the product mirror.
type CategoryMirror struct {
	mu         sync.RWMutex
	categories []models.Category

	store  CategoryStore
	events Subscriber
}

func NewCategoryMirror(s CategoryStore, events Subscriber) *CategoryMirror {
	return &CategoryMirror{store: s, events: events}
}

func (m *CategoryMirror) Start(ctx context.Context) error {
	if err := m.Refresh(ctx); err != nil {
		return err
	}
	ch, cancel, err := m.events.Subscribe(ctx, store.TableCategories)
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
					log.Printf("[mirror.categories] re-fetch failed: %v", err)
				}
			}
		}
	}()
	return nil
}

func (m *CategoryMirror) Refresh(ctx context.Context) error {
	list, err := m.store.ListCategories(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.categories = list
	m.mu.Unlock()
	return nil
}

func (m *CategoryMirror) List() []models.Category {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cp := make([]models.Category, len(m.categories))
	copy(cp, m.categories)
	return cp
}

func (m *CategoryMirror) Get(id int64) (models.Category, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

func (m *CategoryMirror) Add(ctx context.Context, req models.CategoryRequest) (*models.Category, error) {
	category := models.Category{
		Name: req.Name,
		Slug: utils.Slugify(req.Name),
	}
	if err := m.store.InsertCategory(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Update regenerates the slug whenever the name changes.
func (m *CategoryMirror) Update(ctx context.Context, id int64, req models.UpdateCategoryRequest) error {
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
		updates["slug"] = utils.Slugify(*req.Name)
	}
	return m.store.UpdateCategory(ctx, id, updates)
}

func (m *CategoryMirror) Delete(ctx context.Context, id int64) error {
	return m.store.DeleteCategory(ctx, id)
}
