package receipt

import (
	"bytes"
	"strings"
	"text/template"
	"time"

	"aufburger/internal/cart"
	"aufburger/internal/pricing"
)

const PickupEstimate = "15-20 minutes"

type Header struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Notes string `json:"notes,omitempty"`
}

type Line struct {
	Name       string   `json:"name"`
	Size       string   `json:"size"`
	Extras     []string `json:"extras,omitempty"`
	Quantity   int      `json:"quantity"`
	TotalPrice string   `json:"total_price"`
}

// Receipt is a display-only view of a finalized cart. It is not stored.
type Receipt struct {
	Header         Header         `json:"header"`
	OrderNumber    int            `json:"order_number"`
	IssuedAt       time.Time      `json:"issued_at"`
	Customer       Customer       `json:"customer"`
	Lines          []Line         `json:"lines"`
	Totals         pricing.Totals `json:"-"`
	Subtotal       string         `json:"subtotal"`
	Tax            string         `json:"tax"`
	GrandTotal     string         `json:"grand_total"`
	PickupEstimate string         `json:"pickup_estimate"`
}

// Render formats the cart. Amounts are rounded to cents here and nowhere else.
func Render(h Header, c *cart.Cart, customer Customer, orderNumber int, issuedAt time.Time) *Receipt {
	lines := make([]Line, 0, len(c.Items))
	for _, li := range c.Items {
		lines = append(lines, Line{
			Name:       li.Name,
			Size:       li.Size,
			Extras:     li.Extras,
			Quantity:   li.Quantity,
			TotalPrice: pricing.Money(li.TotalPrice),
		})
	}

	totals := c.Totals()

	return &Receipt{
		Header:         h,
		OrderNumber:    orderNumber,
		IssuedAt:       issuedAt,
		Customer:       customer,
		Lines:          lines,
		Totals:         totals,
		Subtotal:       pricing.Money(totals.Subtotal),
		Tax:            pricing.Money(totals.Tax),
		GrandTotal:     pricing.Money(totals.GrandTotal),
		PickupEstimate: PickupEstimate,
	}
}

var textTemplate = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(`{{.Header.StoreName}}
{{.Header.Address}}
{{.Header.Phone}}
ORDER RECEIPT
{{if .Customer.Name}}Customer: {{.Customer.Name}}
{{end}}{{if .Customer.Phone}}Phone: {{.Customer.Phone}}
{{end}}
{{range .Lines}}{{.Name}}  {{.TotalPrice}}
  {{.Size}} • Qty: {{.Quantity}}
{{if .Extras}}  Extras: {{join .Extras ", "}}
{{end}}{{end}}
Subtotal: {{.Subtotal}}
Tax (8.5%): {{.Tax}}
Total: {{.GrandTotal}}
{{if .Customer.Notes}}
Special Instructions: {{.Customer.Notes}}
{{end}}
Order #{{.OrderNumber}}
{{.IssuedAt.Format "01/02/2006 - 03:04:05 PM"}}
Estimated pickup: {{.PickupEstimate}}
`))

// Text is the printable form shown to the cashier.
func (r *Receipt) Text() (string, error) {
	var buf bytes.Buffer
	if err := textTemplate.Execute(&buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}
