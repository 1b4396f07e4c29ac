package invoice

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"stockroom/client/inventory"
)

// Format selects the report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
)

var reportHeader = []string{"Product Name", "Price", "Buyer", "Qty", "Total", "Date"}

// WriteReport writes one row per sale in the given format.
func (r *Renderer) WriteReport(w io.Writer, sales []inventory.Sale, format Format) error {
	switch format {
	case FormatText, "":
		return r.writeTable(w, sales)
	case FormatCSV:
		return writeCSV(w, sales)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func (r *Renderer) writeTable(w io.Writer, sales []inventory.Sale) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Product Name\tPrice\tBuyer\tQty\tTotal\tDate")

	var sum float64
	for _, s := range sales {
		sum += s.TotalPrice
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			s.ProductName, r.Money(s.ProductPrice), s.BuyerName, s.Quantity, r.Money(s.TotalPrice), formatDate(s.Date))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	_, err := fmt.Fprintf(w, "\n%d sales, %s total\n", len(sales), r.Money(sum))
	return err
}

// CSV prices stay ungrouped so spreadsheets parse them as numbers.
func writeCSV(w io.Writer, sales []inventory.Sale) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	for _, s := range sales {
		err := cw.Write([]string{
			s.ProductName,
			strconv.FormatFloat(s.ProductPrice, 'f', 2, 64),
			s.BuyerName,
			strconv.Itoa(s.Quantity),
			strconv.FormatFloat(s.TotalPrice, 'f', 2, 64),
			formatDate(s.Date),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
