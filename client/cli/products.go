package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"stockroom/client/inventory"
	"stockroom/client/resource"
)

// NewProductsCommand creates the products command group.
func NewProductsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List, create and delete products",
	}
	cmd.AddCommand(newProductsListCommand(opts))
	cmd.AddCommand(newProductsCreateCommand(opts))
	cmd.AddCommand(newProductsDeleteCommand(opts))
	return cmd
}

func newProductsListCommand(opts *RootOptions) *cobra.Command {
	q := &QueryOptions{}
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List one page of products",
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

			page, err := a.inventory.ListProducts(cmd.Context(), rq)
			if err != nil {
				return wrapError("list products", err)
			}

			rows := make([]string, 0, len(page.Records))
			for _, p := range page.Records {
				rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%d\t%s",
					p.ID, p.Name, a.renderer.Money(p.Price), p.Stock, p.Size))
			}
			footer := fmt.Sprintf("page %d, %d of %d products", page.Query.Page, len(page.Records), page.Total)
			return newPrinter(opts, cmd.OutOrStdout()).table(
				"ID\tName\tPrice\tStock\tSize", rows, footer,
				page.Records, resource.Meta{Page: page.Query.Page, Limit: page.Query.Limit, Total: page.Total})
		},
	}
	q.bind(cmd)
	return cmd
}

func newProductsCreateCommand(opts *RootOptions) *cobra.Command {
	var (
		form  inventory.ProductForm
		image string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product, uploading its image first",
		Example: `  stockroom products create --name "Basmati Rice" --price 12.5 --stock 40 \
    --seller <id> --category <id> --size medium --image rice.png`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			if image != "" {
				f, err := os.Open(image)
				if err != nil {
					return wrapError("open image", err)
				}
				defer f.Close()
				form.Image = &inventory.ImageFile{Name: filepath.Base(image), Reader: f}
			}

			res, err := a.inventory.CreateProduct(cmd.Context(), form)
			if err != nil {
				return wrapError("create product", err)
			}
			return newPrinter(opts, cmd.OutOrStdout()).result(res.Message, res.Record)
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "product name")
	cmd.Flags().Float64Var(&form.Price, "price", 0, "unit price")
	cmd.Flags().IntVar(&form.Stock, "stock", 0, "units in stock")
	cmd.Flags().StringVar(&form.Seller, "seller", "", "seller id")
	cmd.Flags().StringVar(&form.Category, "category", "", "category id")
	cmd.Flags().StringVar(&form.Brand, "brand", "", "brand id")
	cmd.Flags().StringVar(&form.Size, "size", "", "small, medium or large")
	cmd.Flags().StringVar(&form.Description, "description", "", "free text")
	cmd.Flags().StringVar(&form.ImageURL, "image-url", "", "already hosted image")
	cmd.Flags().StringVar(&image, "image", "", "image file to upload")
	cmd.MarkFlagsMutuallyExclusive("image", "image-url")
	return cmd
}

func newProductsDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <id>",
		Short:         "Delete a product",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			res, err := a.inventory.DeleteProduct(cmd.Context(), args[0])
			if err != nil {
				return wrapError("delete product "+args[0], err)
			}
			return newPrinter(opts, cmd.OutOrStdout()).result(res.Message, res.Record)
		},
	}
}
