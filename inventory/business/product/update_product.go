package product

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"stockroom/inventory/model"
	"stockroom/inventory/store/products"
)

// UpdateProduct applies the non-nil fields of patch.
func (b *business) UpdateProduct(ctx context.Context, id string, patch model.ProductPatch) (*model.Product, error) {
	if patch.Brand != nil {
		if err := b.checkLookup(ctx, model.KindBrand, *patch.Brand); err != nil {
			return nil, err
		}
	}

	params := products.UpdateProductParams{
		ID:          id,
		Name:        toText(patch.Name),
		BrandID:     toText(patch.Brand),
		Size:        toText((*string)(patch.Size)),
		Description: toText(patch.Description),
		ImageUrl:    toText(patch.ImageURL),
	}
	if patch.Price != nil {
		params.Price = pgtype.Float8{Float64: *patch.Price, Valid: true}
	}
	if patch.Stock != nil {
		params.Stock = pgtype.Int4{Int32: *patch.Stock, Valid: true}
	}

	dbProduct, err := b.productRepo.UpdateProduct(ctx, params)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "product not found"}
		}
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.CheckViolation {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: "product price must be positive and stock non-negative"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to update product"}
	}

	return convertDBProductToModel(dbProduct), nil
}
