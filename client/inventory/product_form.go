package inventory

import (
	"context"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"

	"stockroom/client/mutation"
	"stockroom/client/resource"
)

// ErrUploadUnavailable is returned when a form carries an image file but
// no uploader is configured.
var ErrUploadUnavailable = errors.New("image upload is not configured")

// ImageFile is an image picked for upload.
type ImageFile struct {
	Name   string
	Reader io.Reader
}

// ProductForm is what the "add product" screen collects. Either Image or
// ImageURL must be set; Image is uploaded first.
type ProductForm struct {
	Name        string
	Price       float64
	Stock       int
	Seller      string
	Category    string
	Brand       string
	Size        string
	Description string
	ImageURL    string
	Image       *ImageFile
}

func (f ProductForm) payload() NewProduct {
	return NewProduct{
		Name:        strings.TrimSpace(f.Name),
		Price:       f.Price,
		Stock:       f.Stock,
		Seller:      f.Seller,
		Category:    f.Category,
		Brand:       f.Brand,
		Size:        strings.ToUpper(strings.TrimSpace(f.Size)),
		Description: f.Description,
		ImageURL:    f.ImageURL,
	}
}

// CreateProduct validates the form, uploads its image when one is attached
// and creates the product. No request is sent when the form is invalid.
func (c *Client) CreateProduct(ctx context.Context, form ProductForm) (mutation.Result[Product], error) {
	p := form.payload()

	if err := resource.ValidateExcept(p, "ImageURL"); err != nil {
		return mutation.Result[Product]{}, err
	}

	if form.Image != nil {
		if c.uploader == nil {
			return mutation.Result[Product]{}, ErrUploadUnavailable
		}
		url, err := c.uploader.Upload(ctx, form.Image.Name, form.Image.Reader)
		if err != nil {
			return mutation.Result[Product]{}, err
		}
		c.logger.Debug("product image uploaded", zap.String("url", url))
		p.ImageURL = url
	}

	if p.ImageURL == "" {
		return mutation.Result[Product]{}, &resource.ValidationError{
			Field:   "imageUrl",
			Rule:    "required",
			Message: "please upload a product image",
		}
	}

	return mutation.Perform[Product](ctx, c.coord, c.Products, mutation.Mutation{Op: mutation.OpCreate, Payload: p})
}
