package services

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joaovitor770/cnx-0110/models"
)

func testOrder() models.Order {
	return models.Order{
		ID:            7,
		ClientName:    "Maria Silva",
		ClientPhone:   "(11) 98888-7777",
		ClientAddress: "Rua Augusta, 1500, Consolação, São Paulo",
		Items: models.OrderItemsList{
			{ProductID: 1, ProductName: "Camiseta", Size: "M", Quantity: 2, Price: 50.00},
			{ProductID: 2, ProductName: "Boné", Size: "U", Quantity: 1, Price: 19.90},
		},
		Total:  119.90,
		Status: models.OrderStatusPending,
	}
}

func TestHandoffCreditCardBuildsWhatsAppLink(t *testing.T) {
	svc := NewPaymentHandoffService("5511999999999", "chave-pix")

	handoff := svc.Build(testOrder(), PaymentCreditCard)
	assert.Equal(t, PaymentCreditCard, handoff.Method)
	assert.Empty(t, handoff.PixKey)
	require.NotEmpty(t, handoff.RedirectURL)

	parsed, err := url.Parse(handoff.RedirectURL)
	require.NoError(t, err)
	assert.Equal(t, "api.whatsapp.com", parsed.Host)

	q := parsed.Query()
	assert.Equal(t, "5511999999999", q.Get("phone"))

	message := q.Get("text")
	assert.True(t, strings.HasPrefix(message, "*Novo Pedido - Cartão de Crédito*"))
	assert.Contains(t, message, "Maria Silva")
	assert.Contains(t, message, "• Camiseta (M) - Qtd: 2")
	assert.Contains(t, message, "• Boné (U) - Qtd: 1")
	assert.Contains(t, message, "*Total:* R$ 119,90")
}

func TestHandoffPix(t *testing.T) {
	svc := NewPaymentHandoffService("5511999999999", "chave-pix")

	handoff := svc.Build(testOrder(), PaymentPix)
	assert.Equal(t, PaymentPix, handoff.Method)
	assert.Equal(t, "chave-pix", handoff.PixKey)
	assert.Empty(t, handoff.RedirectURL)
	assert.NotEmpty(t, handoff.Instructions)
}

func TestHandoffDelivery(t *testing.T) {
	svc := NewPaymentHandoffService("5511999999999", "chave-pix")

	handoff := svc.Build(testOrder(), PaymentDelivery)
	assert.Equal(t, PaymentDelivery, handoff.Method)
	assert.Empty(t, handoff.PixKey)
	assert.Empty(t, handoff.RedirectURL)
	assert.NotEmpty(t, handoff.Instructions)
}
