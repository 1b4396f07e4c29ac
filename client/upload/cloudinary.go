// Package upload sends product images to the image host and returns their
// public URL.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"go.uber.org/zap"

	"stockroom/client/resource"
)

const defaultEndpoint = "https://api.cloudinary.com/v1_1"

// ErrNoURL is returned when the host accepted the request but did not hand
// back a secure URL.
var ErrNoURL = errors.New("image upload failed: no secure_url in response")

// Config names the unsigned upload target.
type Config struct {
	CloudName    string `validate:"required"`
	UploadPreset string `validate:"required"`
	Folder       string
	// Endpoint overrides the API root, mainly for tests.
	Endpoint string
}

// Uploader posts multipart image uploads.
type Uploader struct {
	cfg        Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewUploader checks cfg and returns an Uploader.
func NewUploader(cfg Config, hc *http.Client, logger *zap.Logger) (*Uploader, error) {
	if err := resource.Validate(cfg); err != nil {
		return nil, err
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Uploader{cfg: cfg, httpClient: hc, logger: logger}, nil
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Upload sends the image read from r under filename and returns its secure URL.
func (u *Uploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	body, contentType, err := u.form(filename, r)
	if err != nil {
		return "", err
	}

	target := fmt.Sprintf("%s/%s/image/upload", u.cfg.Endpoint, u.cfg.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, body)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", &resource.NetworkError{Op: http.MethodPost, URL: target, Err: err}
	}
	defer resp.Body.Close()

	var out uploadResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		u.logger.Warn("image upload response unreadable", zap.Int("status", resp.StatusCode), zap.Error(err))
		return "", ErrNoURL
	}
	if out.SecureURL == "" {
		if out.Error == nil || out.Error.Message == "" {
			u.logger.Warn("image upload rejected", zap.Int("status", resp.StatusCode))
			return "", ErrNoURL
		}
		u.logger.Warn("image upload rejected", zap.Int("status", resp.StatusCode), zap.String("reason", out.Error.Message))
		return "", fmt.Errorf("%w: %s", ErrNoURL, out.Error.Message)
	}

	u.logger.Info("image uploaded", zap.String("file", filename), zap.String("public_id", out.PublicID))
	return out.SecureURL, nil
}

func (u *Uploader) form(filename string, r io.Reader) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, "", fmt.Errorf("create file part: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}

	fields := [][2]string{
		{"upload_preset", u.cfg.UploadPreset},
		{"cloud_name", u.cfg.CloudName},
	}
	if u.cfg.Folder != "" {
		fields = append(fields, [2]string{"folder", u.cfg.Folder})
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", fmt.Errorf("write %s: %w", f[0], err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
