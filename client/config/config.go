// Package config loads client settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the admin client needs to reach the API and the
// image host.
type Config struct {
	APIURL   string        `env:"STOCKROOM_API_URL" envDefault:"http://localhost:4000"`
	Timeout  time.Duration `env:"STOCKROOM_TIMEOUT" envDefault:"15s"`
	LogLevel string        `env:"STOCKROOM_LOG_LEVEL" envDefault:"info"`
	PageSize int           `env:"STOCKROOM_PAGE_SIZE" envDefault:"10"`

	Cloudinary Cloudinary
	Company    Company
}

// Cloudinary names the unsigned upload preset used for product images.
type Cloudinary struct {
	CloudName    string `env:"CLOUDINARY_CLOUD_NAME"`
	UploadPreset string `env:"CLOUDINARY_UPLOAD_PRESET"`
	Folder       string `env:"CLOUDINARY_FOLDER" envDefault:"inventory"`
}

// Enabled reports whether uploads are configured.
func (c Cloudinary) Enabled() bool {
	return c.CloudName != "" && c.UploadPreset != ""
}

// Company is printed at the top of every invoice.
type Company struct {
	Name    string `env:"STOCKROOM_COMPANY_NAME" envDefault:"Masala Company Pvt Ltd"`
	Address string `env:"STOCKROOM_COMPANY_ADDRESS" envDefault:"123, Street Name, City, Country"`
}

// Load reads the dotenv files that exist, in order, and then parses the
// environment. Variables already set in the environment win over files.
func Load(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.PageSize < 1 {
		return Config{}, fmt.Errorf("STOCKROOM_PAGE_SIZE must be positive, got %d", cfg.PageSize)
	}
	return cfg, nil
}
