package cli

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"stockroom/client/config"
	"stockroom/client/inventory"
	"stockroom/client/invoice"
	"stockroom/client/resource"
	"stockroom/client/upload"
)

// app is everything a command needs, built from the environment.
type app struct {
	cfg       config.Config
	logger    *zap.Logger
	inventory *inventory.Client
	uploader  *upload.Uploader
	renderer  *invoice.Renderer
}

func newLogger(verbose bool, level string) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	cfg.Level = lvl
	return cfg.Build()
}

func loadApp(opts *RootOptions) (*app, error) {
	cfg, err := config.Load(opts.EnvFile)
	if err != nil {
		return nil, CommandError{Message: "load config", Cause: err, ExitCode: ExitCommandError}
	}

	logger, err := newLogger(opts.Verbose, cfg.LogLevel)
	if err != nil {
		return nil, CommandError{Message: "build logger", Cause: err, ExitCode: ExitCommandError}
	}

	api, err := resource.New(cfg.APIURL,
		resource.WithTimeout(cfg.Timeout),
		resource.WithLogger(logger.Named("api")),
	)
	if err != nil {
		return nil, CommandError{Message: "configure api client", Cause: err, Suggestion: "set STOCKROOM_API_URL to an absolute URL", ExitCode: ExitCommandError}
	}

	a := &app{
		cfg:      cfg,
		logger:   logger,
		renderer: invoice.NewRenderer(invoice.Company{Name: cfg.Company.Name, Address: cfg.Company.Address}, language.English),
	}

	invOpts := []inventory.Option{inventory.WithLogger(logger)}
	if cfg.Cloudinary.Enabled() {
		a.uploader, err = upload.NewUploader(upload.Config{
			CloudName:    cfg.Cloudinary.CloudName,
			UploadPreset: cfg.Cloudinary.UploadPreset,
			Folder:       cfg.Cloudinary.Folder,
		}, nil, logger.Named("upload"))
		if err != nil {
			return nil, CommandError{Message: "configure image upload", Cause: err, ExitCode: ExitCommandError}
		}
		invOpts = append(invOpts, inventory.WithUploader(a.uploader))
	}

	a.inventory = inventory.New(api, invOpts...)
	return a, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}
