package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewUploadCommand creates the upload command, which stores an image on
// the image host and prints its URL.
func NewUploadCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "upload <file>",
		Short:         "Upload a product image and print its URL",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			if a.uploader == nil {
				return CommandError{
					Message:    "image upload is not configured",
					Suggestion: "set CLOUDINARY_CLOUD_NAME and CLOUDINARY_UPLOAD_PRESET",
					ExitCode:   ExitCommandError,
				}
			}

			f, err := os.Open(args[0])
			if err != nil {
				return wrapError("open image", err)
			}
			defer f.Close()

			url, err := a.uploader.Upload(cmd.Context(), filepath.Base(args[0]), f)
			if err != nil {
				return wrapError("upload "+args[0], err)
			}
			return newPrinter(opts, cmd.OutOrStdout()).result(url, map[string]string{"url": url})
		},
	}
}
