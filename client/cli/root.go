// Package cli is the stockroom admin command line.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	EnvFile string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the stockroom CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "stockroom",
		Short: "Manage products and sales",
		Long: `Stockroom talks to the inventory API: list and search sales, print
invoices and reports, create products with images, and manage categories,
brands and sellers.

Settings come from the environment (STOCKROOM_API_URL, CLOUDINARY_*),
optionally loaded from a .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return CommandError{
					Message:  fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats),
					ExitCode: ExitCommandError,
				}
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "dotenv file to load when present")

	cmd.AddCommand(NewSalesCommand(opts))
	cmd.AddCommand(NewProductsCommand(opts))
	cmd.AddCommand(NewLookupsCommand(opts))
	cmd.AddCommand(NewUploadCommand(opts))

	return cmd
}
