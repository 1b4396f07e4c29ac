package sale

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"stockroom/inventory/model"
	"stockroom/inventory/store/sales"
)

const saleIDConstraint = "sales_pkey"

// InsertSale stores a sale whose product snapshot has already been taken.
// The total is always derived from price and quantity. Inserting the same
// sale id twice returns the stored row, so a retried insert is harmless.
func (b *business) InsertSale(ctx context.Context, sale *model.Sale) (*model.Sale, error) {
	date := sale.Date
	if date.IsZero() {
		date = time.Now()
	}

	dbSale, err := b.saleRepo.CreateSale(ctx, sales.CreateSaleParams{
		ID:             sale.ID,
		ProductID:      sale.Product,
		ProductName:    sale.ProductName,
		ProductPrice:   sale.ProductPrice,
		BuyerName:      sale.BuyerName,
		Quantity:       sale.Quantity,
		TotalPrice:     sale.ProductPrice * float64(sale.Quantity),
		SaleDate:       pgtype.Timestamptz{Time: date, Valid: true},
		IdempotencyKey: sale.IdempotencyKey,
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) {
			switch {
			case e.Code == pgerrcode.UniqueViolation && e.ConstraintName == saleIDConstraint:
				return b.GetSale(ctx, sale.ID)
			case e.Code == pgerrcode.UniqueViolation:
				return nil, &errs.Error{Code: errs.AlreadyExists, Message: "sale is duplicated"}
			case e.Code == pgerrcode.ForeignKeyViolation:
				return nil, &errs.Error{Code: errs.NotFound, Message: "product not found"}
			}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create sale"}
	}

	return convertDBSaleToModel(dbSale), nil
}
