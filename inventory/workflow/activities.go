package workflow

import (
	"context"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"stockroom/inventory/business/sale"
	"stockroom/inventory/model"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	SaleBusiness sale.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(saleBusiness sale.Business) {
	activityDeps = &ActivityDependencies{
		SaleBusiness: saleBusiness,
	}
}

// SaleInput is the sale as handed to InsertSaleActivity, with the product
// snapshot already taken.
type SaleInput struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	ProductName    string    `json:"product_name"`
	ProductPrice   float64   `json:"product_price"`
	BuyerName      string    `json:"buyer_name"`
	Quantity       int32     `json:"quantity"`
	Date           time.Time `json:"date"`
	IdempotencyKey string    `json:"idempotency_key"`
}

func dependenciesMissing(ctx context.Context) error {
	if activityDeps == nil || activityDeps.SaleBusiness == nil {
		activity.GetLogger(ctx).Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}
	return nil
}

// ReserveStockActivity takes quantity units out of the product's stock
func ReserveStockActivity(ctx context.Context, productID string, quantity int32) (*model.Product, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Reserving stock", "productID", productID, "quantity", quantity)

	if err := dependenciesMissing(ctx); err != nil {
		return nil, err
	}

	product, err := activityDeps.SaleBusiness.ReserveStock(ctx, productID, quantity)
	if err != nil {
		logger.Error("Failed to reserve stock", "productID", productID, "error", err)
		return nil, activityError("failed to reserve stock", err)
	}

	logger.Info("Reserved stock", "productID", productID, "remaining", product.Stock)
	return product, nil
}

// InsertSaleActivity stores the sale row
func InsertSaleActivity(ctx context.Context, input SaleInput) (*model.Sale, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Inserting sale", "saleID", input.ID, "productID", input.ProductID)

	if err := dependenciesMissing(ctx); err != nil {
		return nil, err
	}

	s, err := activityDeps.SaleBusiness.InsertSale(ctx, &model.Sale{
		ID:             input.ID,
		Product:        input.ProductID,
		ProductName:    input.ProductName,
		ProductPrice:   input.ProductPrice,
		BuyerName:      input.BuyerName,
		Quantity:       input.Quantity,
		Date:           input.Date,
		IdempotencyKey: input.IdempotencyKey,
	})
	if err != nil {
		logger.Error("Failed to insert sale", "saleID", input.ID, "error", err)
		return nil, activityError("failed to insert sale", err)
	}

	logger.Info("Inserted sale", "saleID", s.ID, "total", s.TotalPrice)
	return s, nil
}

// ReleaseStockActivity returns quantity units to the product's stock
func ReleaseStockActivity(ctx context.Context, productID string, quantity int32) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Releasing stock", "productID", productID, "quantity", quantity)

	if err := dependenciesMissing(ctx); err != nil {
		return err
	}

	if err := activityDeps.SaleBusiness.ReleaseStock(ctx, productID, quantity); err != nil {
		logger.Error("Failed to release stock", "productID", productID, "error", err)
		return activityError("failed to release stock", err)
	}
	return nil
}
