package inventory

import (
	"context"
	"net/http"

	"encore.dev/rlog"

	"stockroom/inventory/model"
)

//encore:api public method=GET path=/product
func (s *Service) ListProducts(ctx context.Context, req *ListParams) (*ProductListResponse, error) {
	q := req.pageQuery()

	products, total, err := s.product.ListProducts(ctx, q)
	if err != nil {
		rlog.Error("failed to list products", "error", err, "page", q.Page, "search", q.Search)
		return nil, err
	}

	return &ProductListResponse{
		StatusCode: 200,
		Message:    "Products retrieved successfully",
		Data:       products,
		Meta:       model.NewMeta(q, total),
	}, nil
}

//encore:api public method=GET path=/product/:id
func (s *Service) GetProduct(ctx context.Context, id string) (*ProductResponse, error) {
	result, err := s.product.GetProduct(ctx, id)
	if err != nil {
		rlog.Error("failed to get product", "error", err, "id", id)
		return nil, err
	}
	return productResponse(http.StatusOK, "Product retrieved successfully", result), nil
}
