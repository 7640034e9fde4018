package store

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"

	"github.com/Joaovitor770/cnx-0110/models"
)

// ErrNotFound is returned when an update/delete targets a missing row.
var ErrNotFound = errors.New("record not found")

// CatalogStore is the durable backend for catalog, client, order and
// settings data. It exposes the five primitives the mirrors consume:
// ordered read, insert, partial update by identity, delete by identity
// — plus change notification on every successful write.
//
// The store is shared by any number of concurrent sessions; it never
// holds client-side locks.
type CatalogStore struct {
	db       *gorm.DB
	pool     *pgxpool.Pool
	notifier Notifier
}

func NewCatalogStore(db *gorm.DB, pool *pgxpool.Pool, notifier Notifier) *CatalogStore {
	return &CatalogStore{db: db, pool: pool, notifier: notifier}
}

// AutoMigrate creates/updates the backing tables.
func (s *CatalogStore) AutoMigrate() error {
	return s.db.AutoMigrate(
		&models.Category{},
		&models.Collection{},
		&models.Product{},
		&models.Client{},
		&models.Order{},
		&models.StoreSettings{},
	)
}

func (s *CatalogStore) notify(ctx context.Context, table Table) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(ctx, table); err != nil {
		// A missed notification only delays convergence until the next
		// full re-fetch; the write itself is already durable.
		log.Printf("[store] failed to publish change for table=%s: %v", table, err)
	}
}

// ── Categories ───────────────────────────────────────────────────────

func (s *CatalogStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (s *CatalogStore) InsertCategory(ctx context.Context, c *models.Category) error {
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return err
	}
	s.notify(ctx, TableCategories)
	return nil
}

func (s *CatalogStore) UpdateCategory(ctx context.Context, id int64, updates map[string]any) error {
	if err := s.partialUpdate(ctx, &models.Category{}, id, updates); err != nil {
		return err
	}
	s.notify(ctx, TableCategories)
	return nil
}

func (s *CatalogStore) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.deleteByID(ctx, &models.Category{}, id); err != nil {
		return err
	}
	s.notify(ctx, TableCategories)
	return nil
}

// ── Collections ──────────────────────────────────────────────────────

func (s *CatalogStore) ListCollections(ctx context.Context) ([]models.Collection, error) {
	var out []models.Collection
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (s *CatalogStore) InsertCollection(ctx context.Context, c *models.Collection) error {
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return err
	}
	s.notify(ctx, TableCollections)
	return nil
}

func (s *CatalogStore) UpdateCollection(ctx context.Context, id int64, updates map[string]any) error {
	if err := s.partialUpdate(ctx, &models.Collection{}, id, updates); err != nil {
		return err
	}
	s.notify(ctx, TableCollections)
	return nil
}

func (s *CatalogStore) DeleteCollection(ctx context.Context, id int64) error {
	if err := s.deleteByID(ctx, &models.Collection{}, id); err != nil {
		return err
	}
	s.notify(ctx, TableCollections)
	return nil
}

// ── Products ─────────────────────────────────────────────────────────

func (s *CatalogStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (s *CatalogStore) InsertProduct(ctx context.Context, p *models.Product) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return err
	}
	s.notify(ctx, TableProducts)
	return nil
}

func (s *CatalogStore) UpdateProduct(ctx context.Context, id int64, updates map[string]any) error {
	if err := s.partialUpdate(ctx, &models.Product{}, id, updates); err != nil {
		return err
	}
	s.notify(ctx, TableProducts)
	return nil
}

func (s *CatalogStore) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.deleteByID(ctx, &models.Product{}, id); err != nil {
		return err
	}
	s.notify(ctx, TableProducts)
	return nil
}

// DecrementStockAtomic applies a stock decrement for one size label as
// a single conditional UPDATE, clamped at zero on the server. This is
// the race-free alternative to the mirror's read-modify-write path.
func (s *CatalogStore) DecrementStockAtomic(ctx context.Context, productID int64, size string, quantity int) error {
	const q = `
		UPDATE products
		SET sizes = (
			SELECT COALESCE(jsonb_agg(
				CASE WHEN elem->>'size' = $2
					THEN jsonb_set(elem, '{stock}',
						to_jsonb(GREATEST((elem->>'stock')::int - $3, 0)))
					ELSE elem
				END), '[]'::jsonb)
			FROM jsonb_array_elements(sizes) elem)
		WHERE id = $1`

	tag, err := s.pool.Exec(ctx, q, productID, size, quantity)
	if err != nil {
		return fmt.Errorf("atomic stock decrement failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	s.notify(ctx, TableProducts)
	return nil
}

// ── Clients ──────────────────────────────────────────────────────────

func (s *CatalogStore) ListClients(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (s *CatalogStore) InsertClient(ctx context.Context, c *models.Client) error {
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return err
	}
	s.notify(ctx, TableClients)
	return nil
}

func (s *CatalogStore) UpdateClient(ctx context.Context, id int64, updates map[string]any) error {
	if err := s.partialUpdate(ctx, &models.Client{}, id, updates); err != nil {
		return err
	}
	s.notify(ctx, TableClients)
	return nil
}

func (s *CatalogStore) DeleteClient(ctx context.Context, id int64) error {
	if err := s.deleteByID(ctx, &models.Client{}, id); err != nil {
		return err
	}
	s.notify(ctx, TableClients)
	return nil
}

// ── Orders ───────────────────────────────────────────────────────────

func (s *CatalogStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (s *CatalogStore) GetOrder(ctx context.Context, id int64) (models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return order, ErrNotFound
	}
	return order, err
}

func (s *CatalogStore) InsertOrder(ctx context.Context, o *models.Order) error {
	if err := s.db.WithContext(ctx).Create(o).Error; err != nil {
		return err
	}
	s.notify(ctx, TableOrders)
	return nil
}

func (s *CatalogStore) UpdateOrderStatus(ctx context.Context, id int64, status string) error {
	if err := s.partialUpdate(ctx, &models.Order{}, id, map[string]any{"status": status}); err != nil {
		return err
	}
	s.notify(ctx, TableOrders)
	return nil
}

// ── Settings ─────────────────────────────────────────────────────────

// GetSettings returns the singleton settings row, creating the default
// row on first access.
func (s *CatalogStore) GetSettings(ctx context.Context) (models.StoreSettings, error) {
	var settings models.StoreSettings
	err := s.db.WithContext(ctx).First(&settings, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.DefaultStoreSettings()
		if err := s.db.WithContext(ctx).Create(&settings).Error; err != nil {
			return settings, err
		}
		return settings, nil
	}
	return settings, err
}

// UpdateSettings applies a partial merge onto the singleton row.
func (s *CatalogStore) UpdateSettings(ctx context.Context, updates map[string]any) error {
	if _, err := s.GetSettings(ctx); err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Model(&models.StoreSettings{}).
		Where("id = ?", 1).Updates(updates).Error; err != nil {
		return err
	}
	s.notify(ctx, TableSettings)
	return nil
}

// ── shared helpers ───────────────────────────────────────────────────

func (s *CatalogStore) partialUpdate(ctx context.Context, model any, id int64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	res := s.db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CatalogStore) deleteByID(ctx context.Context, model any, id int64) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
