package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Joaovitor770/cnx-0110/models"
	"github.com/Joaovitor770/cnx-0110/utils"
)

// Payment methods the storefront offers. None of them capture payment
// in-app — confirmation is always delegated to an external channel.
const (
	PaymentCreditCard = "credit_card"
	PaymentPix        = "pix"
	PaymentDelivery   = "delivery"
)

// Handoff tells the storefront what to do after an order is placed:
// redirect to the WhatsApp deep-link (credit card) or show the PIX key
// / delivery instructions on the confirmation view.
type Handoff struct {
	Method       string `json:"method"`
	RedirectURL  string `json:"redirect_url,omitempty"`
	PixKey       string `json:"pix_key,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

// PaymentHandoffService builds the external hand-off for each payment
// method.
type PaymentHandoffService struct {
	whatsAppPhone string
	pixKey        string
}

func NewPaymentHandoffService(whatsAppPhone, pixKey string) *PaymentHandoffService {
	return &PaymentHandoffService{whatsAppPhone: whatsAppPhone, pixKey: pixKey}
}

func (s *PaymentHandoffService) Build(order models.Order, method string) Handoff {
	switch method {
	case PaymentCreditCard:
		return Handoff{
			Method:      method,
			RedirectURL: s.whatsAppLink(order),
		}
	case PaymentPix:
		return Handoff{
			Method:       method,
			PixKey:       s.pixKey,
			Instructions: "O pagamento será confirmado via WhatsApp após a finalização do pedido.",
		}
	default:
		return Handoff{
			Method:       method,
			Instructions: "Pagamento na entrega. Aguarde o contato para confirmação do pedido.",
		}
	}
}

// whatsAppLink builds the deep-link with the itemized, human-readable
// order summary the store operator receives.
func (s *PaymentHandoffService) whatsAppLink(order models.Order) string {
	var items strings.Builder
	for i, item := range order.Items {
		if i > 0 {
			items.WriteString("\n")
		}
		fmt.Fprintf(&items, "• %s (%s) - Qtd: %d", item.ProductName, item.Size, item.Quantity)
	}

	message := fmt.Sprintf(
		"*Novo Pedido - Cartão de Crédito*\n\n"+
			"*Cliente:* %s\n"+
			"*Telefone:* %s\n"+
			"*Endereço:* %s\n\n"+
			"*Itens:*\n%s\n\n"+
			"*Total:* %s\n\n"+
			"Segue os dados da minha compra, aguardo o link de pagamento.",
		order.ClientName,
		order.ClientPhone,
		order.ClientAddress,
		items.String(),
		utils.FormatBRLFloat(order.Total),
	)

	q := url.Values{}
	q.Set("phone", s.whatsAppPhone)
	q.Set("text", message)
	q.Set("type", "phone_number")
	q.Set("app_absent", "0")
	return "https://api.whatsapp.com/send/?" + q.Encode()
}
