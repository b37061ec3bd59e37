package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
)

const currency = "Ksh"

var emailTemplates = template.Must(template.New("email").Funcs(template.FuncMap{
	"upper": strings.ToUpper,
	"money": func(m kernel.Money) string { return currency + " " + m.String() },
}).Parse(`
{{- define "confirmation" -}}
<h2>Thank you for your order, {{.Name}}!</h2>
<p>Your order (ID: {{.ShortID}}) has been successfully placed and is currently <strong>{{.Status}}</strong>.</p>
<h3>Order Details:</h3>
<ul>
{{- range .Items}}
<li>{{.Title}} ({{.Quantity}} x {{money .PriceAtPurchase}})</li>
{{- end}}
</ul>
<p>Total Amount: <strong>{{money .Total}}</strong></p>
<p>We will notify you when your order status changes.</p>
<p>Shipping Address: {{.ShippingAddress}}</p>
{{- end -}}

{{- define "status_update" -}}
<h2>Order Status Update</h2>
<p>Dear {{.Name}},</p>
<p>Your order (ID: <strong>{{.ShortID}}</strong>) is now in the <strong>{{upper .Status}}</strong> stage.</p>
<p>You can contact us if you have any questions regarding your delivery.</p>
<p>Thank you for shopping with us!</p>
{{- end -}}
`))

type emailView struct {
	Name            string
	ShortID         string
	Status          string
	Items           []order.Item
	Total           kernel.Money
	ShippingAddress string
}

func newEmailView(o *order.Order) emailView {
	return emailView{
		Name:            o.Contact().Name,
		ShortID:         o.ID().Short(),
		Status:          o.Status().String(),
		Items:           o.Items(),
		Total:           o.TotalAmount(),
		ShippingAddress: o.ShippingAddress(),
	}
}

func renderConfirmation(o *order.Order) (Message, error) {
	body, err := execute("confirmation", newEmailView(o))
	if err != nil {
		return Message{}, err
	}
	return Message{
		Channel:   CustomerEmail,
		Recipient: o.Contact().Email,
		Subject:   fmt.Sprintf("Order #%s Confirmed!", o.ID().Short()),
		Body:      body,
	}, nil
}

func renderStatusUpdate(o *order.Order) (Message, error) {
	body, err := execute("status_update", newEmailView(o))
	if err != nil {
		return Message{}, err
	}
	return Message{
		Channel:   CustomerEmail,
		Recipient: o.Contact().Email,
		Subject: fmt.Sprintf("Update: Your Order #%s is now %s",
			o.ID().Short(), strings.ToUpper(o.Status().String())),
		Body: body,
	}, nil
}

func renderAdminOrderAlert(o *order.Order) string {
	var b strings.Builder
	b.WriteString("NEW ORDER PLACED!\n")
	fmt.Fprintf(&b, "ID: %s\n", o.ID().Short())
	fmt.Fprintf(&b, "Total: %s %s\n", currency, o.TotalAmount())
	fmt.Fprintf(&b, "Customer: %s (%s)\n", o.Contact().Name, o.Contact().Phone)
	fmt.Fprintf(&b, "Status: %s", o.Status())
	return b.String()
}

func renderLowStockAlert(books []LowStockBook) string {
	var b strings.Builder
	fmt.Fprintf(&b, "LOW STOCK: %d book(s)\n", len(books))
	for _, book := range books {
		fmt.Fprintf(&b, "- %s: %d left\n", book.Title, book.Stock)
	}
	return strings.TrimRight(b.String(), "\n")
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
