package inventory

import (
	"context"
	"net/http"

	"encore.dev/rlog"

	"stockroom/inventory/model"
)

//encore:api public method=GET path=/sale
func (s *Service) ListSales(ctx context.Context, req *ListParams) (*SaleListResponse, error) {
	q := req.pageQuery()

	sales, total, err := s.sale.ListSales(ctx, q)
	if err != nil {
		rlog.Error("failed to list sales", "error", err, "page", q.Page, "search", q.Search)
		return nil, err
	}

	return &SaleListResponse{
		StatusCode: 200,
		Message:    "Sales retrieved successfully",
		Data:       sales,
		Meta:       model.NewMeta(q, total),
	}, nil
}

//encore:api public method=GET path=/sale/:id
func (s *Service) GetSale(ctx context.Context, id string) (*SaleResponse, error) {
	result, err := s.sale.GetSale(ctx, id)
	if err != nil {
		rlog.Error("failed to get sale", "error", err, "id", id)
		return nil, err
	}
	return saleResponse(http.StatusOK, "Sale retrieved successfully", result), nil
}
