package sale

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"stockroom/inventory/model"
	"stockroom/inventory/store/sales"
)

// ListSales returns one page of sales, newest first, and the total match count.
func (b *business) ListSales(ctx context.Context, q model.PageQuery) ([]*model.Sale, int64, error) {
	q = q.Normalize()

	total, err := b.saleRepo.CountSales(ctx, q.Search)
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count sales"}
	}

	dbSales, err := b.saleRepo.ListSales(ctx, sales.ListSalesParams{
		Search:    q.Search,
		RowLimit:  int32(q.Limit),
		RowOffset: int32(q.Offset()),
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list sales"}
	}

	result := make([]*model.Sale, 0, len(dbSales))
	for _, s := range dbSales {
		result = append(result, convertDBSaleToModel(s))
	}
	return result, total, nil
}

func (b *business) GetSale(ctx context.Context, id string) (*model.Sale, error) {
	dbSale, err := b.saleRepo.GetSale(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "sale not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get sale"}
	}
	return convertDBSaleToModel(dbSale), nil
}

// convertDBSaleToModel converts a database Sale to a domain model Sale
func convertDBSaleToModel(dbSale sales.Sale) *model.Sale {
	return &model.Sale{
		ID:             dbSale.ID,
		Product:        dbSale.ProductID,
		ProductName:    dbSale.ProductName,
		ProductPrice:   dbSale.ProductPrice,
		BuyerName:      dbSale.BuyerName,
		Quantity:       dbSale.Quantity,
		TotalPrice:     dbSale.TotalPrice,
		Date:           dbSale.SaleDate.Time,
		IdempotencyKey: dbSale.IdempotencyKey,
		CreatedAt:      dbSale.CreatedAt.Time,
		UpdatedAt:      dbSale.UpdatedAt.Time,
	}
}
