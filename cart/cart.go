package cart

import (
	"context"
	"log"

	"sync"

	"github.com/shopspring/decimal"

	"github.com/Joaovitor770/cnx-0110/utils"
)

// Line is one cart entry. Identity is (ProductID, Size, Color) — two
// additions with the same key merge by incrementing Quantity instead
// of creating a duplicate line. Price crosses this boundary as a
// BRL-formatted display string.
type Line struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Image     string `json:"image"`
	Size      string `json:"size"`
	Color     string `json:"color,omitempty"`
	Quantity  int    `json:"quantity"`
}

func (l Line) sameIdentity(productID int64, size, color string) bool {
	return l.ProductID == productID && l.Size == size && l.Color == color
}

// Cart is the client-local shopping cart. It is the single source of
// truth for cart contents — the backend never sees it until checkout
// converts it into an order. Every mutation persists the whole line
// list to durable storage; sibling sessions of the same cart converge
// through the storage's change broadcast (last writer wins at the
// whole-list level, not per line).
type Cart struct {
	mu      sync.Mutex
	lines   []Line
	storage Storage
}

func New(storage Storage) *Cart {
	return &Cart{storage: storage}
}

// Load reads the persisted cart once at startup. A missing or
// unreadable snapshot yields an empty cart rather than an error the
// shopper would see.
func (c *Cart) Load(ctx context.Context) {
	lines, err := c.storage.Load(ctx)
	if err != nil {
		log.Printf("[cart] failed to load persisted cart: %v", err)
		return
	}
	c.mu.Lock()
	c.lines = lines
	c.mu.Unlock()
}

// StartSync begins applying whole-list updates broadcast by other
// sessions of the same cart, until ctx is cancelled. Storage backends
// without a broadcast mechanism are left alone.
func (c *Cart) StartSync(ctx context.Context) {
	w, ok := c.storage.(Watcher)
	if !ok {
		return
	}
	ch, cancel, err := w.Watch(ctx)
	if err != nil {
		log.Printf("[cart] watch unavailable: %v", err)
		return
	}
	go func() {
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case lines, ok := <-ch:
				if !ok {
					return
				}
				c.ApplyRemote(lines)
			}
		}
	}()
}

// ApplyRemote replaces the whole line list with a snapshot broadcast
// by another session. Last writer wins; no per-line merge.
func (c *Cart) ApplyRemote(lines []Line) {
	c.mu.Lock()
	c.lines = lines
	c.mu.Unlock()
}

// Add merges the item into the cart: an existing line with the same
// (product, size, color) has its quantity incremented, otherwise a new
// line with quantity 1 is appended.
func (c *Cart) Add(ctx context.Context, item Line) {
	c.mu.Lock()
	merged := false
	for i, l := range c.lines {
		if l.sameIdentity(item.ProductID, item.Size, item.Color) {
			c.lines[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		item.Quantity = 1
		c.lines = append(c.lines, item)
	}
	c.mu.Unlock()
	c.persist(ctx)
}

// Remove drops the line with the given identity entirely.
func (c *Cart) Remove(ctx context.Context, productID int64, size, color string) {
	c.mu.Lock()
	kept := c.lines[:0]
	for _, l := range c.lines {
		if !l.sameIdentity(productID, size, color) {
			kept = append(kept, l)
		}
	}
	c.lines = kept
	c.mu.Unlock()
	c.persist(ctx)
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less
// removes the line — quantities are never negative.
func (c *Cart) UpdateQuantity(ctx context.Context, productID int64, size, color string, quantity int) {
	if quantity <= 0 {
		c.Remove(ctx, productID, size, color)
		return
	}
	c.mu.Lock()
	for i, l := range c.lines {
		if l.sameIdentity(productID, size, color) {
			c.lines[i].Quantity = quantity
			break
		}
	}
	c.mu.Unlock()
	c.persist(ctx)
}

// Clear empties the cart.
func (c *Cart) Clear(ctx context.Context) error {
	c.mu.Lock()
	c.lines = nil
	c.mu.Unlock()
	c.persist(ctx)
	return nil
}

// Lines returns a copy of the current cart lines.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := make([]Line, len(c.lines))
	copy(cp, c.lines)
	return cp
}

// Count is the total number of units across all lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Subtotal parses each line's display price back into a decimal and
// sums price × quantity. Any unparseable price fails the whole sum —
// checkout must never guess at money.
func (c *Cart) Subtotal() (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, l := range c.Lines() {
		price, err := utils.ParseBRL(l.Price)
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return sum, nil
}

// Total returns the cart total as a BRL-formatted string. Lines whose
// price cannot be parsed are skipped (and logged) so the storefront
// keeps rendering.
func (c *Cart) Total() string {
	sum := decimal.Zero
	for _, l := range c.Lines() {
		price, err := utils.ParseBRL(l.Price)
		if err != nil {
			log.Printf("[cart] skipping unparseable price %q: %v", l.Price, err)
			continue
		}
		sum = sum.Add(price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return utils.FormatBRL(sum)
}

func (c *Cart) persist(ctx context.Context) {
	c.mu.Lock()
	snapshot := make([]Line, len(c.lines))
	copy(snapshot, c.lines)
	c.mu.Unlock()

	// The in-memory cart stays authoritative even if the write fails.
	if err := c.storage.Save(ctx, snapshot); err != nil {
		log.Printf("[cart] failed to persist cart: %v", err)
	}
}
