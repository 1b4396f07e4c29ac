package inventory

import (
	"context"
	"net/http"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"stockroom/inventory/model"
)

type UpdateProductRequest struct {
	Name        *string            `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Price       *float64           `json:"price,omitempty" validate:"omitempty,gt=0"`
	Stock       *int32             `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Brand       *string            `json:"brand,omitempty" validate:"omitempty,min=1"`
	Size        *model.ProductSize `json:"size,omitempty" validate:"omitempty,oneof=SMALL MEDIUM LARGE"`
	Description *string            `json:"description,omitempty" validate:"omitempty,max=1000"`
	ImageURL    *string            `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

//encore:api public method=PATCH path=/product/:id
func (s *Service) UpdateProduct(ctx context.Context, id string, req *UpdateProductRequest) (*ProductResponse, error) {
	result, err := s.product.UpdateProduct(ctx, id, model.ProductPatch{
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock,
		Brand:       req.Brand,
		Size:        req.Size,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		rlog.Error("failed to update product", "error", err, "id", id)
		return nil, err
	}

	return productResponse(http.StatusOK, "Product updated successfully", result), nil
}

func (r *UpdateProductRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	if r.Name == nil && r.Price == nil && r.Stock == nil && r.Brand == nil &&
		r.Size == nil && r.Description == nil && r.ImageURL == nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: "no fields to update"}
	}
	return nil
}
