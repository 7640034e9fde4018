package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joaovitor770/cnx-0110/cart"
	"github.com/Joaovitor770/cnx-0110/models"
)

type fakeOrderStore struct {
	insertErr error
	inserted  *models.Order
	settings  models.StoreSettings
}

func (f *fakeOrderStore) InsertOrder(_ context.Context, o *models.Order) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	o.ID = 101
	f.inserted = o
	return nil
}

func (f *fakeOrderStore) GetSettings(context.Context) (models.StoreSettings, error) {
	return f.settings, nil
}

type fakeDecrementer struct {
	failFor map[int64]error
	calls   []int64
}

func (f *fakeDecrementer) DecrementStock(_ context.Context, productID int64, _ string, _ int) error {
	f.calls = append(f.calls, productID)
	if err, ok := f.failFor[productID]; ok {
		return err
	}
	return nil
}

func validForm() models.CheckoutRequest {
	return models.CheckoutRequest{
		Name:          "Maria Silva",
		Phone:         "(11) 98888-7777",
		Street:        "Rua Augusta",
		Number:        "1500",
		Neighborhood:  "Consolação",
		City:          "São Paulo",
		PaymentMethod: PaymentPix,
	}
}

func loadedCart(ctx context.Context) *cart.Cart {
	c := cart.New(cart.NewMemoryStorage())
	c.Add(ctx, cart.Line{ProductID: 1, Name: "Camiseta", Price: "R$ 50,00", Size: "M"})
	c.Add(ctx, cart.Line{ProductID: 1, Name: "Camiseta", Price: "R$ 50,00", Size: "M"})
	c.Add(ctx, cart.Line{ProductID: 2, Name: "Boné", Price: "R$ 19,90", Size: "U"})
	return c
}

func newCheckout(orderStore *fakeOrderStore, dec *fakeDecrementer) *CheckoutService {
	return NewCheckoutService(orderStore, dec, NewPaymentHandoffService("5511999999999", "chave-pix"))
}

func TestCheckoutSubmitHappyPath(t *testing.T) {
	ctx := context.Background()
	orderStore := &fakeOrderStore{settings: models.StoreSettings{ShippingPrice: 15.00}}
	dec := &fakeDecrementer{}
	c := loadedCart(ctx)

	result, err := newCheckout(orderStore, dec).Submit(ctx, c, validForm())
	require.NoError(t, err)

	// 2 × 50,00 + 19,90 + 15,00 shipping
	assert.InDelta(t, 134.90, result.Order.Total, 0.001)
	assert.Equal(t, models.OrderStatusPending, result.Order.Status)
	assert.Equal(t, int64(101), result.Order.ID)
	require.Len(t, result.Order.Items, 2)
	assert.Equal(t, 2, result.Order.Items[0].Quantity)
	assert.InDelta(t, 50.00, result.Order.Items[0].Price, 0.001)

	assert.Empty(t, result.StockWarnings)
	assert.Equal(t, []int64{1, 2}, dec.calls, "one decrement per line, in order")
	assert.Empty(t, c.Lines(), "cart cleared after persistence")

	assert.Equal(t, PaymentPix, result.Handoff.Method)
	assert.Equal(t, "chave-pix", result.Handoff.PixKey)
}

func TestCheckoutSubmitEmptyCart(t *testing.T) {
	ctx := context.Background()
	c := cart.New(cart.NewMemoryStorage())

	_, err := newCheckout(&fakeOrderStore{}, &fakeDecrementer{}).Submit(ctx, c, validForm())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutSubmitMissingFormField(t *testing.T) {
	ctx := context.Background()
	c := loadedCart(ctx)

	form := validForm()
	form.City = ""
	_, err := newCheckout(&fakeOrderStore{}, &fakeDecrementer{}).Submit(ctx, c, form)
	assert.Error(t, err)
	assert.Len(t, c.Lines(), 2, "validation failure leaves the cart untouched")
}

func TestCheckoutSubmitInsertFailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	orderStore := &fakeOrderStore{insertErr: errors.New("backend down")}
	dec := &fakeDecrementer{}
	c := loadedCart(ctx)

	_, err := newCheckout(orderStore, dec).Submit(ctx, c, validForm())
	require.Error(t, err)

	// Persistence failed: nothing after it may run
	assert.Empty(t, dec.calls, "no decrement before the order is durable")
	assert.Len(t, c.Lines(), 2, "customer can resubmit the same cart")
}

func TestCheckoutSubmitDecrementFailureIsWarning(t *testing.T) {
	ctx := context.Background()
	orderStore := &fakeOrderStore{settings: models.StoreSettings{ShippingPrice: 0}}
	dec := &fakeDecrementer{failFor: map[int64]error{2: errors.New("conflict")}}
	c := loadedCart(ctx)

	result, err := newCheckout(orderStore, dec).Submit(ctx, c, validForm())
	require.NoError(t, err, "a decrement failure never fails the checkout")

	require.Len(t, result.StockWarnings, 1)
	assert.Contains(t, result.StockWarnings[0], "Boné")
	assert.Equal(t, models.OrderStatusPending, result.Order.Status, "order stays persisted as placed")
	assert.Empty(t, c.Lines(), "cart still cleared: the order exists")
}

func TestCheckoutSnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	orderStore := &fakeOrderStore{}
	c := loadedCart(ctx)

	result, err := newCheckout(orderStore, &fakeDecrementer{}).Submit(ctx, c, validForm())
	require.NoError(t, err)

	// The order keeps the frozen snapshot even though the cart is gone
	assert.Empty(t, c.Lines())
	assert.Len(t, result.Order.Items, 2)
	assert.Equal(t, "Camiseta", result.Order.Items[0].ProductName)
}

func TestCheckoutAddressFormatting(t *testing.T) {
	ctx := context.Background()
	orderStore := &fakeOrderStore{}

	form := validForm()
	form.Reference = "Próximo ao metrô"
	result, err := newCheckout(orderStore, &fakeDecrementer{}).Submit(ctx, loadedCart(ctx), form)
	require.NoError(t, err)
	assert.Equal(t,
		"Rua Augusta, 1500, Consolação, São Paulo - Ref: Próximo ao metrô",
		result.Order.ClientAddress)
}
