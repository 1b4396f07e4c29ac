package product

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"

	"stockroom/inventory/model"
)

// DeleteProduct removes a product. Products with recorded sales are kept.
func (b *business) DeleteProduct(ctx context.Context, id string) (*model.Product, error) {
	dbProduct, err := b.productRepo.DeleteProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "product not found"}
		}
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.ForeignKeyViolation {
			return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "product has recorded sales"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to delete product"}
	}
	return convertDBProductToModel(dbProduct), nil
}
