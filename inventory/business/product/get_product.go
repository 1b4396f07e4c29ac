package product

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"stockroom/inventory/model"
)

func (b *business) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	dbProduct, err := b.productRepo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "product not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get product"}
	}
	return convertDBProductToModel(dbProduct), nil
}
