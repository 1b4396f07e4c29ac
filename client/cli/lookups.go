package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"stockroom/client/inventory"
	"stockroom/client/resource"
)

var lookupKinds = []string{inventory.CategoryResource, inventory.BrandResource, inventory.SellerResource}

// NewLookupsCommand creates the command group for categories, brands and
// sellers.
func NewLookupsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookups",
		Short: "List and create categories, brands and sellers",
	}
	cmd.AddCommand(newLookupsListCommand(opts))
	cmd.AddCommand(newLookupsCreateCommand(opts))
	return cmd
}

func newLookupsListCommand(opts *RootOptions) *cobra.Command {
	q := &QueryOptions{}
	cmd := &cobra.Command{
		Use:           "list <category|brand|seller>",
		Short:         "List one page of a lookup collection",
		Args:          cobra.ExactArgs(1),
		ValidArgs:     lookupKinds,
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

			page, err := a.inventory.ListLookups(cmd.Context(), args[0], rq)
			if err != nil {
				return wrapError("list "+args[0], err)
			}

			rows := make([]string, 0, len(page.Records))
			for _, l := range page.Records {
				rows = append(rows, l.ID+"\t"+l.Name)
			}
			footer := fmt.Sprintf("page %d, %d of %d", page.Query.Page, len(page.Records), page.Total)
			return newPrinter(opts, cmd.OutOrStdout()).table("ID\tName", rows, footer,
				page.Records, resource.Meta{Page: page.Query.Page, Limit: page.Query.Limit, Total: page.Total})
		},
	}
	q.bind(cmd)
	return cmd
}

func newLookupsCreateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "create <category|brand|seller> <name>",
		Short:         "Create a category, brand or seller",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			res, err := a.inventory.CreateLookup(cmd.Context(), args[0], args[1])
			if err != nil {
				return wrapError("create "+args[0], err)
			}
			return newPrinter(opts, cmd.OutOrStdout()).result(res.Message, res.Record)
		},
	}
}
