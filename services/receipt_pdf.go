package services

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/Joaovitor770/cnx-0110/models"
	"github.com/Joaovitor770/cnx-0110/utils"
)

// GenerateOrderReceiptPDF renders a printable receipt for one order
// for the admin panel.
func GenerateOrderReceiptPDF(order models.Order, settings models.StoreSettings) (bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(10, 15, 10)

	m.Row(14, func() {
		m.Col(12, func() {
			m.Text(settings.StoreName, props.Text{
				Size:  16,
				Style: consts.Bold,
				Align: consts.Center,
			})
		})
	})
	m.Row(8, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Pedido #%d — %s", order.ID, order.CreatedAt.Format("02/01/2006 15:04")), props.Text{
				Size:  10,
				Align: consts.Center,
			})
		})
	})

	m.Line(4)

	m.Row(6, func() {
		m.Col(12, func() {
			m.Text("Cliente: "+order.ClientName, props.Text{Size: 9})
		})
	})
	m.Row(6, func() {
		m.Col(12, func() {
			m.Text("Telefone: "+order.ClientPhone, props.Text{Size: 9})
		})
	})
	m.Row(6, func() {
		m.Col(12, func() {
			m.Text("Endereço: "+order.ClientAddress, props.Text{Size: 9})
		})
	})
	m.Row(6, func() {
		m.Col(12, func() {
			m.Text("Status: "+order.Status, props.Text{Size: 9})
		})
	})

	m.Line(4)

	headers := []string{"Produto", "Tamanho", "Qtd", "Preço"}
	contents := make([][]string, 0, len(order.Items))
	for _, item := range order.Items {
		contents = append(contents, []string{
			item.ProductName,
			item.Size,
			strconv.Itoa(item.Quantity),
			utils.FormatBRLFloat(item.Price),
		})
	}
	m.TableList(headers, contents, props.TableList{
		HeaderProp:  props.TableListContent{Size: 9, Style: consts.Bold},
		ContentProp: props.TableListContent{Size: 8},
		Align:       consts.Left,
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("Total: "+utils.FormatBRLFloat(order.Total), props.Text{
				Size:  11,
				Style: consts.Bold,
				Align: consts.Right,
			})
		})
	})

	return m.Output()
}
