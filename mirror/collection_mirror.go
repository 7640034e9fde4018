package mirror

import (
	"context"
	"log"
	"sync"

	"github.com/Joaovitor770/cnx-0110/models"
	"github.com/Joaovitor770/cnx-0110/store"
	"github.com/Joaovitor770/cnx-0110/utils"
)

type CollectionStore interface {
	ListCollections(ctx context.Context) ([]models.Collection, error)
	InsertCollection(ctx context.Context, c *models.Collection) error
	UpdateCollection(ctx context.Context, id int64, updates map[string]any) error
	DeleteCollection(ctx context.Context, id int64) error
}

// CollectionMirror mirrors the collections table. Collection covers
// run their image through the ingestion pipeline before persisting.
type CollectionMirror struct {
	mu          sync.RWMutex
	collections []models.Collection

	store  CollectionStore
	events Subscriber
	ingest ImageIngestor
}

func NewCollectionMirror(s CollectionStore, events Subscriber, ingest ImageIngestor) *CollectionMirror {
	return &CollectionMirror{store: s, events: events, ingest: ingest}
}

func (m *CollectionMirror) Start(ctx context.Context) error {
	if err := m.Refresh(ctx); err != nil {
		return err
	}
	ch, cancel, err := m.events.Subscribe(ctx, store.TableCollections)
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
					log.Printf("[mirror.collections] re-fetch failed: %v", err)
				}
			}
		}
	}()
	return nil
}

func (m *CollectionMirror) Refresh(ctx context.Context) error {
	list, err := m.store.ListCollections(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.collections = list
	m.mu.Unlock()
	return nil
}

func (m *CollectionMirror) List() []models.Collection {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cp := make([]models.Collection, len(m.collections))
	copy(cp, m.collections)
	return cp
}

func (m *CollectionMirror) Get(id int64) (models.Collection, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.collections {
		if c.ID == id {
			return c, true
		}
	}
	return models.Collection{}, false
}

func (m *CollectionMirror) GetBySlug(slug string) (models.Collection, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.collections {
		if c.Slug == slug {
			return c, true
		}
	}
	return models.Collection{}, false
}

func (m *CollectionMirror) Add(ctx context.Context, req models.CollectionRequest) (*models.Collection, error) {
	image, err := m.ingest.Ingest(ctx, req.Image)
	if err != nil {
		return nil, err
	}
	collection := models.Collection{
		Name:        req.Name,
		Slug:        utils.Slugify(req.Name),
		Image:       image,
		Description: req.Description,
	}
	if err := m.store.InsertCollection(ctx, &collection); err != nil {
		return nil, err
	}
	return &collection, nil
}

func (m *CollectionMirror) Update(ctx context.Context, id int64, req models.UpdateCollectionRequest) error {
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
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Image != nil {
		image, err := m.ingest.Ingest(ctx, *req.Image)
		if err != nil {
			return err
		}
		updates["image"] = image
	}
	return m.store.UpdateCollection(ctx, id, updates)
}

func (m *CollectionMirror) Delete(ctx context.Context, id int64) error {
	return m.store.DeleteCollection(ctx, id)
}
