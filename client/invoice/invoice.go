// Package invoice renders single-sale invoices and multi-sale reports.
package invoice

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"stockroom/client/inventory"
)

const dateLayout = "2006-01-02"

// Company is the seller printed in the invoice header.
type Company struct {
	Name    string
	Address string
}

// Renderer formats money for one locale.
type Renderer struct {
	company Company
	printer *message.Printer
}

// NewRenderer returns a Renderer for company. The zero language tag falls
// back to English.
func NewRenderer(company Company, lang language.Tag) *Renderer {
	if lang == language.Und {
		lang = language.English
	}
	return &Renderer{company: company, printer: message.NewPrinter(lang)}
}

// Money formats v with two decimals and locale grouping.
func (r *Renderer) Money(v float64) string {
	return r.printer.Sprintf("%.2f", v)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

type invoiceView struct {
	Company  Company
	Product  string
	Price    string
	Quantity int
	Total    string
	Buyer    string
	Date     string
}

func (r *Renderer) view(s inventory.Sale) invoiceView {
	return invoiceView{
		Company:  r.company,
		Product:  s.ProductName,
		Price:    r.Money(s.ProductPrice),
		Quantity: s.Quantity,
		Total:    r.Money(s.TotalPrice),
		Buyer:    s.BuyerName,
		Date:     formatDate(s.Date),
	}
}

var invoiceHTML = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice</title>
<style>
body { font-family: Arial, sans-serif; padding: 20px; }
h1 { text-align: center; }
table { width: 100%; border-collapse: collapse; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
</style>
</head>
<body>
<div style="text-align: center">
<h1>{{.Company.Name}}</h1>
<p>{{.Company.Address}}</p>
<hr/>
</div>
<h3>Invoice</h3>
<table>
<tr><th>Product</th><td>{{.Product}}</td></tr>
<tr><th>Price</th><td>{{.Price}}</td></tr>
<tr><th>Quantity</th><td>{{.Quantity}}</td></tr>
<tr><th>Total</th><td>{{.Total}}</td></tr>
<tr><th>Buyer</th><td>{{.Buyer}}</td></tr>
<tr><th>Date</th><td>{{.Date}}</td></tr>
</table>
</body>
</html>
`))

// RenderHTML writes a printable invoice for s.
func (r *Renderer) RenderHTML(w io.Writer, s inventory.Sale) error {
	if err := invoiceHTML.Execute(w, r.view(s)); err != nil {
		return fmt.Errorf("render invoice %s: %w", s.ID, err)
	}
	return nil
}

// RenderText writes the plain-text invoice preview for s.
func (r *Renderer) RenderText(w io.Writer, s inventory.Sale) error {
	v := r.view(s)

	var b bytes.Buffer
	b.WriteString(v.Company.Name + "\n")
	b.WriteString(v.Company.Address + "\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	b.WriteString("Invoice\n\n")
	for _, row := range [][2]string{
		{"Product", v.Product},
		{"Price", v.Price},
		{"Quantity", strconv.Itoa(v.Quantity)},
		{"Total", v.Total},
		{"Buyer", v.Buyer},
		{"Date", v.Date},
	} {
		fmt.Fprintf(&b, "%-10s%s\n", row[0], row[1])
	}

	_, err := w.Write(b.Bytes())
	return err
}
