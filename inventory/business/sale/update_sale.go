package sale

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"stockroom/inventory/model"
	"stockroom/inventory/store"
	"stockroom/inventory/store/products"
	"stockroom/inventory/store/sales"
)

// UpdateSale changes the buyer or the date. Product and quantity are fixed
// once stock has been taken.
func (b *business) UpdateSale(ctx context.Context, id string, patch model.SalePatch) (*model.Sale, error) {
	params := sales.UpdateSaleParams{ID: id}
	if patch.BuyerName != nil {
		params.BuyerName = pgtype.Text{String: *patch.BuyerName, Valid: true}
	}
	if patch.Date != nil {
		params.SaleDate = pgtype.Timestamptz{Time: *patch.Date, Valid: true}
	}

	dbSale, err := b.saleRepo.UpdateSale(ctx, params)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "sale not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to update sale"}
	}
	return convertDBSaleToModel(dbSale), nil
}

// DeleteSale removes a sale and returns its quantity to the product's stock
// in the same transaction.
func (b *business) DeleteSale(ctx context.Context, id string) (*model.Sale, error) {
	var deleted sales.Sale
	err := b.tx.InTx(ctx, func(s *store.Store) error {
		var err error
		deleted, err = s.Sales.DeleteSale(ctx, id)
		if err != nil {
			return err
		}
		return s.Products.ReleaseStock(ctx, products.ReleaseStockParams{Quantity: deleted.Quantity, ID: deleted.ProductID})
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "sale not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to delete sale"}
	}
	return convertDBSaleToModel(deleted), nil
}
