package inventory

import (
	"context"
	"net/http"

	"encore.dev/rlog"
)

//encore:api public method=DELETE path=/product/:id
func (s *Service) DeleteProduct(ctx context.Context, id string) (*ProductResponse, error) {
	result, err := s.product.DeleteProduct(ctx, id)
	if err != nil {
		rlog.Error("failed to delete product", "error", err, "id", id)
		return nil, err
	}

	return productResponse(http.StatusOK, "Product deleted successfully", result), nil
}
