package workflow

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"stockroom/inventory/model"
)

const TaskQueue = "inventory-sales"

// RecordSaleParams contains parameters for starting the RecordSale workflow
type RecordSaleParams struct {
	SaleID         string    `json:"sale_id"`
	ProductID      string    `json:"product_id"`
	BuyerName      string    `json:"buyer_name"`
	Quantity       int32     `json:"quantity"`
	Date           time.Time `json:"date"`
	IdempotencyKey string    `json:"idempotency_key"`
}

// WorkflowID is derived from the idempotency key so a resubmitted sale
// joins the run already in progress.
func WorkflowID(idempotencyKey string) string {
	return fmt.Sprintf("sale-%s", idempotencyKey)
}

// RecordSale takes the stock first and then writes the sale. A failed write
// gives the stock back before the workflow fails.
func RecordSale(ctx workflow.Context, params RecordSaleParams) (*model.Sale, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting record sale workflow", "saleID", params.SaleID, "productID", params.ProductID, "quantity", params.Quantity)

	var product model.Product
	err := workflow.ExecuteActivity(withActivityOptions(ctx), ReserveStockActivity, params.ProductID, params.Quantity).Get(ctx, &product)
	if err != nil {
		logger.Error("Failed to reserve stock", "productID", params.ProductID, "error", err)
		return nil, err
	}

	date := params.Date
	if date.IsZero() {
		date = workflow.Now(ctx)
	}

	var sale model.Sale
	err = workflow.ExecuteActivity(withActivityOptions(ctx), InsertSaleActivity, SaleInput{
		ID:             params.SaleID,
		ProductID:      product.ID,
		ProductName:    product.Name,
		ProductPrice:   product.Price,
		BuyerName:      params.BuyerName,
		Quantity:       params.Quantity,
		Date:           date,
		IdempotencyKey: params.IdempotencyKey,
	}).Get(ctx, &sale)
	if err != nil {
		logger.Error("Failed to insert sale, releasing stock", "saleID", params.SaleID, "error", err)

		compensateCtx, cancel := workflow.NewDisconnectedContext(ctx)
		defer cancel()
		releaseErr := workflow.ExecuteActivity(withActivityOptions(compensateCtx), ReleaseStockActivity, params.ProductID, params.Quantity).Get(compensateCtx, nil)
		if releaseErr != nil {
			logger.Error("Failed to release stock", "productID", params.ProductID, "quantity", params.Quantity, "error", releaseErr)
		}
		return nil, err
	}

	logger.Info("Record sale workflow completed", "saleID", sale.ID)
	return &sale, nil
}

func withActivityOptions(ctx workflow.Context) workflow.Context {
	return workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    3,
		},
	})
}
