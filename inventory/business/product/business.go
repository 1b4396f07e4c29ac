package product

import (
	"context"

	"github.com/google/uuid"

	"stockroom/inventory/model"
	"stockroom/inventory/store/lookups"
	"stockroom/inventory/store/products"
)

type Business interface {
	ListProducts(ctx context.Context, q model.PageQuery) ([]*model.Product, int64, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, patch model.ProductPatch) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) (*model.Product, error)
}

type business struct {
	productRepo products.Querier
	lookupRepo  lookups.Querier
	newID       func() string
}

// NewProductBusiness creates the product business layer
func NewProductBusiness(productRepo products.Querier, lookupRepo lookups.Querier) Business {
	return &business{
		productRepo: productRepo,
		lookupRepo:  lookupRepo,
		newID:       uuid.NewString,
	}
}
