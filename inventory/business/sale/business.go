package sale

import (
	"context"

	"stockroom/inventory/model"
	"stockroom/inventory/store"
	"stockroom/inventory/store/products"
	"stockroom/inventory/store/sales"
)

type Business interface {
	ListSales(ctx context.Context, q model.PageQuery) ([]*model.Sale, int64, error)
	GetSale(ctx context.Context, id string) (*model.Sale, error)
	ReserveStock(ctx context.Context, productID string, quantity int32) (*model.Product, error)
	ReleaseStock(ctx context.Context, productID string, quantity int32) error
	InsertSale(ctx context.Context, sale *model.Sale) (*model.Sale, error)
	UpdateSale(ctx context.Context, id string, patch model.SalePatch) (*model.Sale, error)
	DeleteSale(ctx context.Context, id string) (*model.Sale, error)
}

type business struct {
	saleRepo    sales.Querier
	productRepo products.Querier
	tx          store.Transactor
}

// NewSaleBusiness creates the sale business layer
func NewSaleBusiness(saleRepo sales.Querier, productRepo products.Querier, tx store.Transactor) Business {
	return &business{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		tx:          tx,
	}
}
