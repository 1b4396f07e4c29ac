package inventory

import (
	"context"
	"net/http"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"stockroom/inventory/model"
)

type UpdateSaleRequest struct {
	BuyerName *string    `json:"buyerName,omitempty" validate:"omitempty,min=1,max=120"`
	Date      *time.Time `json:"date,omitempty"`
}

//encore:api public method=PATCH path=/sale/:id
func (s *Service) UpdateSale(ctx context.Context, id string, req *UpdateSaleRequest) (*SaleResponse, error) {
	result, err := s.sale.UpdateSale(ctx, id, model.SalePatch{
		BuyerName: req.BuyerName,
		Date:      req.Date,
	})
	if err != nil {
		rlog.Error("failed to update sale", "error", err, "id", id)
		return nil, err
	}
	return saleResponse(http.StatusOK, "Sale updated successfully", result), nil
}

func (r *UpdateSaleRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	if r.BuyerName == nil && r.Date == nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: "no fields to update"}
	}
	return nil
}

//encore:api public method=DELETE path=/sale/:id
func (s *Service) DeleteSale(ctx context.Context, id string) (*SaleResponse, error) {
	result, err := s.sale.DeleteSale(ctx, id)
	if err != nil {
		rlog.Error("failed to delete sale", "error", err, "id", id)
		return nil, err
	}
	return saleResponse(http.StatusOK, "Sale deleted successfully", result), nil
}
