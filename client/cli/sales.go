package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stockroom/client/invoice"
	"stockroom/client/resource"
)

// QueryOptions holds the paging flags shared by list commands.
type QueryOptions struct {
	Page   int
	Limit  int
	Search string
}

func (q *QueryOptions) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&q.Page, "page", resource.DefaultPage, "page number")
	cmd.Flags().IntVar(&q.Limit, "limit", resource.DefaultLimit, "records per page")
	cmd.Flags().StringVarP(&q.Search, "search", "s", "", "filter by name")
}

func (q *QueryOptions) query() (resource.Query, error) {
	rq := resource.Query{Page: q.Page, Limit: q.Limit, Search: q.Search}
	if err := resource.Validate(rq); err != nil {
		return resource.Query{}, wrapError("invalid paging flags", err)
	}
	return rq, nil
}

// NewSalesCommand creates the sales command group.
func NewSalesCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "List, delete and print sales",
	}
	cmd.AddCommand(newSalesListCommand(opts))
	cmd.AddCommand(newSalesDeleteCommand(opts))
	cmd.AddCommand(newSalesInvoiceCommand(opts))
	cmd.AddCommand(newSalesReportCommand(opts))
	return cmd
}

func newSalesListCommand(opts *RootOptions) *cobra.Command {
	q := &QueryOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of sales",
		Example: `  stockroom sales list --page 2
  stockroom sales list --search rice --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rq, err := q.query()
			if err != nil {
				return err
			}
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			page, err := a.inventory.ListSales(cmd.Context(), rq)
			if err != nil {
				return wrapError("list sales", err)
			}

			rows := make([]string, 0, len(page.Records))
			for _, s := range page.Records {
				rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s\t%d\t%s\t%s",
					s.ID, s.ProductName, a.renderer.Money(s.ProductPrice), s.BuyerName, s.Quantity,
					a.renderer.Money(s.TotalPrice), s.Date.Format("2006-01-02")))
			}
			footer := fmt.Sprintf("page %d, %d of %d sales", page.Query.Page, len(page.Records), page.Total)
			return newPrinter(opts, cmd.OutOrStdout()).table(
				"ID\tProduct Name\tPrice\tBuyer\tQty\tTotal\tDate", rows, footer,
				page.Records, resource.Meta{Page: page.Query.Page, Limit: page.Query.Limit, Total: page.Total})
		},
	}
	q.bind(cmd)
	return cmd
}

func newSalesDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <id>",
		Short:         "Delete a sale",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			res, err := a.inventory.DeleteSale(cmd.Context(), args[0])
			if err != nil {
				return wrapError("delete sale "+args[0], err)
			}
			return newPrinter(opts, cmd.OutOrStdout()).result(res.Message, res.Record)
		},
	}
}

func newSalesInvoiceCommand(opts *RootOptions) *cobra.Command {
	var html string
	cmd := &cobra.Command{
		Use:   "invoice <id>",
		Short: "Preview a sale's invoice, or write it as HTML",
		Example: `  stockroom sales invoice 6f1c...
  stockroom sales invoice 6f1c... --html invoice.html`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			sale, err := a.inventory.FindSale(cmd.Context(), args[0])
			if err != nil {
				return wrapError("find sale "+args[0], err)
			}

			if html == "" {
				return a.renderer.RenderText(cmd.OutOrStdout(), sale)
			}
			return writeFile(html, func(f *os.File) error { return a.renderer.RenderHTML(f, sale) })
		},
	}
	cmd.Flags().StringVar(&html, "html", "", "write a printable HTML invoice to this file")
	return cmd
}

func newSalesReportCommand(opts *RootOptions) *cobra.Command {
	q := &QueryOptions{}
	var (
		out    string
		format string
	)
	cmd := &cobra.Command{
		Use:           "report",
		Short:         "Write a sales report for one page of sales",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rq, err := q.query()
			if err != nil {
				return err
			}
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			page, err := a.inventory.ListSales(cmd.Context(), rq)
			if err != nil {
				return wrapError("list sales", err)
			}

			if out == "" {
				return a.renderer.WriteReport(cmd.OutOrStdout(), page.Records, invoice.Format(format))
			}
			return writeFile(out, func(f *os.File) error {
				return a.renderer.WriteReport(f, page.Records, invoice.Format(format))
			})
		},
	}
	q.bind(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "report file (default stdout)")
	cmd.Flags().StringVar(&format, "report-format", string(invoice.FormatText), "report encoding (text|csv)")
	return cmd
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return wrapError("create "+path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return wrapError("write "+path, err)
	}
	return f.Close()
}
