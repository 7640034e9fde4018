package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/Joaovitor770/cnx-0110/cart"
	"github.com/Joaovitor770/cnx-0110/models"
	"github.com/Joaovitor770/cnx-0110/utils"
)

// ErrEmptyCart is the terminal validation error for a checkout with no
// lines. Nothing is persisted and no state changes.
var ErrEmptyCart = errors.New("cart is empty")

// OrderStore is the persistence slice checkout needs.
type OrderStore interface {
	InsertOrder(ctx context.Context, o *models.Order) error
	GetSettings(ctx context.Context) (models.StoreSettings, error)
}

// StockDecrementer decrements one size's stock counter, clamped at
// zero.
type StockDecrementer interface {
	DecrementStock(ctx context.Context, productID int64, size string, quantity int) error
}

// CheckoutCart is the cart surface checkout consumes.
type CheckoutCart interface {
	Lines() []cart.Line
	Clear(ctx context.Context) error
}

// CheckoutResult reports one completed checkout attempt. StockWarnings
// carries the per-line decrement failures that were surfaced but NOT
// rolled back — the order stays persisted as Pendente for manual
// reconciliation.
type CheckoutResult struct {
	Order         models.Order `json:"order"`
	Handoff       Handoff      `json:"handoff"`
	StockWarnings []string     `json:"stock_warnings,omitempty"`
}

// CheckoutService turns a cart plus the customer's shipping form into
// a persisted order, decrements stock and hands payment off to an
// external channel.
//
// The steps are sequentially awaited, not transactional: order
// persistence strictly precedes every stock decrement, which strictly
// precedes cart clearing. A failure before persistence leaves the cart
// untouched so the customer can resubmit; a decrement failure after
// persistence is surfaced and accepted.
type CheckoutService struct {
	store    OrderStore
	products StockDecrementer
	handoff  *PaymentHandoffService
}

func NewCheckoutService(store OrderStore, products StockDecrementer, handoff *PaymentHandoffService) *CheckoutService {
	return &CheckoutService{store: store, products: products, handoff: handoff}
}

// Submit runs one checkout attempt.
func (s *CheckoutService) Submit(ctx context.Context, c CheckoutCart, form models.CheckoutRequest) (*CheckoutResult, error) {
	lines := c.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if err := validateShippingForm(form); err != nil {
		return nil, err
	}

	// Freeze the cart into a point-in-time snapshot. Order items keep
	// the unit price the customer saw; later catalog edits never touch
	// a placed order.
	items := make(models.OrderItemsList, 0, len(lines))
	subtotal := decimal.Zero
	for _, line := range lines {
		price, err := utils.ParseBRL(line.Price)
		if err != nil {
			return nil, fmt.Errorf("invalid price on cart line %q: %w", line.Name, err)
		}
		items = append(items, models.OrderItem{
			ProductID:   line.ProductID,
			ProductName: line.Name,
			Size:        line.Size,
			Quantity:    line.Quantity,
			Price:       price.InexactFloat64(),
		})
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load store settings: %w", err)
	}
	total := subtotal.Add(decimal.NewFromFloat(settings.ShippingPrice))

	order := models.Order{
		ClientID:      form.ClientID,
		ClientName:    form.Name,
		ClientPhone:   form.Phone,
		ClientAddress: formatAddress(form),
		Items:         items,
		Total:         total.InexactFloat64(),
		Status:        models.OrderStatusPending,
	}

	if err := s.store.InsertOrder(ctx, &order); err != nil {
		// Persistence failed: the cart is untouched and the customer may
		// resubmit.
		return nil, fmt.Errorf("persist order: %w", err)
	}
	log.Printf("[checkout] order %d persisted for %s, total %s", order.ID, order.ClientName, utils.FormatBRL(total))

	// Decrement stock per line, independently. A failure here is NOT
	// rolled back: the order stays Pendente and the gap is surfaced.
	var warnings []string
	for _, item := range items {
		if err := s.products.DecrementStock(ctx, item.ProductID, item.Size, item.Quantity); err != nil {
			log.Printf("[checkout] stock decrement failed for product %d size %s: %v", item.ProductID, item.Size, err)
			warnings = append(warnings,
				fmt.Sprintf("estoque não atualizado para %s (%s)", item.ProductName, item.Size))
		}
	}

	// The cart empties only after the order is durably persisted, so a
	// mid-workflow failure never loses the customer's cart.
	if err := c.Clear(ctx); err != nil {
		log.Printf("[checkout] failed to clear cart after order %d: %v", order.ID, err)
	}

	return &CheckoutResult{
		Order:         order,
		Handoff:       s.handoff.Build(order, form.PaymentMethod),
		StockWarnings: warnings,
	}, nil
}

func validateShippingForm(form models.CheckoutRequest) error {
	required := map[string]string{
		"name":         form.Name,
		"phone":        form.Phone,
		"street":       form.Street,
		"number":       form.Number,
		"neighborhood": form.Neighborhood,
		"city":         form.City,
	}
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("missing required field %q", field)
		}
	}
	return nil
}

func formatAddress(form models.CheckoutRequest) string {
	address := fmt.Sprintf("%s, %s, %s, %s", form.Street, form.Number, form.Neighborhood, form.City)
	if form.Reference != "" {
		address += " - Ref: " + form.Reference
	}
	return address
}
