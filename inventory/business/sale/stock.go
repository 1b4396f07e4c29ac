package sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"stockroom/inventory/model"
	"stockroom/inventory/store/products"
)

// ReserveStock atomically takes quantity units out of the product's stock
// and returns the product as it is after the decrement.
func (b *business) ReserveStock(ctx context.Context, productID string, quantity int32) (*model.Product, error) {
	dbProduct, err := b.productRepo.ReserveStock(ctx, products.ReserveStockParams{Quantity: quantity, ID: productID})
	if err == nil {
		return &model.Product{
			ID:    dbProduct.ID,
			Name:  dbProduct.Name,
			Price: dbProduct.Price,
			Stock: dbProduct.Stock,
		}, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to reserve stock"}
	}

	// No row updated: either the product is gone or the stock is short.
	current, err := b.productRepo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "product not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get product"}
	}
	return nil, &errs.Error{
		Code:    errs.FailedPrecondition,
		Message: fmt.Sprintf("insufficient stock: %d available, %d requested", current.Stock, quantity),
	}
}

// ReleaseStock puts quantity units back.
func (b *business) ReleaseStock(ctx context.Context, productID string, quantity int32) error {
	err := b.productRepo.ReleaseStock(ctx, products.ReleaseStockParams{Quantity: quantity, ID: productID})
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to release stock"}
	}
	return nil
}
