package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"stockroom/inventory/model"
	"stockroom/inventory/store/products"
)

// CreateProduct stores a new product after checking that every referenced
// lookup exists and has the right kind.
func (b *business) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := b.checkLookup(ctx, model.KindSeller, product.Seller); err != nil {
		return nil, err
	}
	if err := b.checkLookup(ctx, model.KindCategory, product.Category); err != nil {
		return nil, err
	}
	if product.Brand != nil {
		if err := b.checkLookup(ctx, model.KindBrand, *product.Brand); err != nil {
			return nil, err
		}
	}

	dbProduct, err := b.productRepo.CreateProduct(ctx, products.CreateProductParams{
		ID:          b.newID(),
		Name:        product.Name,
		Price:       product.Price,
		Stock:       product.Stock,
		SellerID:    product.Seller,
		CategoryID:  product.Category,
		BrandID:     toText(product.Brand),
		Size:        toText((*string)(sizePtr(product.Size))),
		Description: toText(product.Description),
		ImageUrl:    toText(product.ImageURL),
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.ForeignKeyViolation {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: "product references an unknown lookup"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create product"}
	}

	return convertDBProductToModel(dbProduct), nil
}

func (b *business) checkLookup(ctx context.Context, kind model.LookupKind, id string) error {
	lookup, err := b.lookupRepo.GetLookup(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("%s %q not found", kind, id)}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to get " + string(kind)}
	}
	if lookup.Kind != string(kind) {
		return &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("%q is a %s, not a %s", id, lookup.Kind, kind)}
	}
	return nil
}

func sizePtr(s model.ProductSize) *model.ProductSize {
	if s == "" {
		return nil
	}
	return &s
}

func toText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// convertDBProductToModel converts a database Product to a domain model Product
func convertDBProductToModel(dbProduct products.Product) *model.Product {
	product := &model.Product{
		ID:        dbProduct.ID,
		Name:      dbProduct.Name,
		Price:     dbProduct.Price,
		Stock:     dbProduct.Stock,
		Seller:    dbProduct.SellerID,
		Category:  dbProduct.CategoryID,
		CreatedAt: dbProduct.CreatedAt.Time,
		UpdatedAt: dbProduct.UpdatedAt.Time,
	}

	if dbProduct.BrandID.Valid {
		product.Brand = &dbProduct.BrandID.String
	}

	if dbProduct.Size.Valid {
		product.Size = model.ProductSize(dbProduct.Size.String)
	}

	if dbProduct.Description.Valid {
		product.Description = &dbProduct.Description.String
	}

	if dbProduct.ImageUrl.Valid {
		product.ImageURL = &dbProduct.ImageUrl.String
	}

	return product
}
