package inventory

import (
	"context"
	"net/http"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"stockroom/inventory/model"
)

type CreateProductRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Name        string            `json:"name" validate:"required,max=120"`
	Price       float64           `json:"price" validate:"gt=0"`
	Stock       int32             `json:"stock" validate:"gte=0"`
	Seller      string            `json:"seller" validate:"required"`
	Category    string            `json:"category" validate:"required"`
	Brand       *string           `json:"brand,omitempty" validate:"omitempty,min=1"`
	Size        model.ProductSize `json:"size,omitempty" validate:"omitempty,oneof=SMALL MEDIUM LARGE"`
	Description *string           `json:"description,omitempty" validate:"omitempty,max=1000"`
	ImageURL    *string           `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

//encore:api public method=POST path=/product tag:idempotency
func (s *Service) CreateProduct(ctx context.Context, req *CreateProductRequest) (*ProductResponse, error) {
	result, err := s.product.CreateProduct(ctx, &model.Product{
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock,
		Seller:      req.Seller,
		Category:    req.Category,
		Brand:       req.Brand,
		Size:        req.Size,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		rlog.Error("failed to create product", "error", err, "name", req.Name)
		return nil, err
	}

	return productResponse(http.StatusCreated, "Product created successfully", result), nil
}

// Validate implements validation for CreateProductRequest using go-playground/validator
func (r *CreateProductRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
