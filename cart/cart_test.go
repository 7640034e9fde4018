package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLine(productID int64, size, color, price string) Line {
	return Line{
		ProductID: productID,
		Name:      "Produto",
		Price:     price,
		Size:      size,
		Color:     color,
		Quantity:  1,
	}
}

func TestCartAddMergesSameIdentity(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStorage())

	c.Add(ctx, testLine(1, "M", "Preto", "R$ 50,00"))
	c.Add(ctx, testLine(1, "M", "Preto", "R$ 50,00"))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2, c.Count())
}

func TestCartAddDistinctVariants(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStorage())

	c.Add(ctx, testLine(1, "M", "Preto", "R$ 50,00"))
	c.Add(ctx, testLine(1, "G", "Preto", "R$ 50,00"))
	c.Add(ctx, testLine(1, "M", "Branco", "R$ 50,00"))

	// Same product but different size or color never merges
	assert.Len(t, c.Lines(), 3)
}

func TestCartUpdateQuantityFloor(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStorage())
	c.Add(ctx, testLine(1, "M", "", "R$ 10,00"))

	c.UpdateQuantity(ctx, 1, "M", "", 5)
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 5, c.Lines()[0].Quantity)

	// Zero or negative removes the line instead of storing it
	c.UpdateQuantity(ctx, 1, "M", "", 0)
	assert.Empty(t, c.Lines())

	c.Add(ctx, testLine(1, "M", "", "R$ 10,00"))
	c.UpdateQuantity(ctx, 1, "M", "", -3)
	assert.Empty(t, c.Lines())
}

func TestCartRemove(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStorage())
	c.Add(ctx, testLine(1, "M", "", "R$ 10,00"))
	c.Add(ctx, testLine(2, "G", "", "R$ 20,00"))

	c.Remove(ctx, 1, "M", "")

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].ProductID)
}

func TestCartSubtotalAndTotal(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStorage())
	c.Add(ctx, testLine(1, "M", "", "R$ 50,00"))
	c.Add(ctx, testLine(1, "M", "", "R$ 50,00"))
	c.Add(ctx, testLine(2, "G", "", "R$ 19,90"))

	subtotal, err := c.Subtotal()
	require.NoError(t, err)
	assert.Equal(t, "119.9", subtotal.String())
	assert.Equal(t, "R$ 119,90", c.Total())
}

func TestCartSubtotalFailsOnBadPrice(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStorage())
	c.Add(ctx, testLine(1, "M", "", "not a price"))

	_, err := c.Subtotal()
	assert.Error(t, err)

	// Total degrades instead of failing: the bad line is skipped
	assert.Equal(t, "R$ 0,00", c.Total())
}

func TestCartPersistsAcrossLoad(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	c := New(storage)
	c.Add(ctx, testLine(1, "M", "", "R$ 10,00"))
	c.Add(ctx, testLine(1, "M", "", "R$ 10,00"))

	// A fresh cart over the same storage sees the persisted lines
	reloaded := New(storage)
	reloaded.Load(ctx)
	require.Len(t, reloaded.Lines(), 1)
	assert.Equal(t, 2, reloaded.Lines()[0].Quantity)
}

func TestCartApplyRemoteLastWriterWins(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStorage())
	c.Add(ctx, testLine(1, "M", "", "R$ 10,00"))

	// A remote snapshot replaces the whole list, it never merges
	c.ApplyRemote([]Line{testLine(9, "G", "", "R$ 99,90")})

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(9), lines[0].ProductID)

	c.ApplyRemote(nil)
	assert.Empty(t, c.Lines())
}

func TestCartClear(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	c := New(storage)
	c.Add(ctx, testLine(1, "M", "", "R$ 10,00"))

	require.NoError(t, c.Clear(ctx))
	assert.Empty(t, c.Lines())

	// The empty list is persisted too
	persisted, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}
