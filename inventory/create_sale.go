package inventory

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"stockroom/inventory/model"
	"stockroom/inventory/workflow"
)

type CreateSaleRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Product   string    `json:"product" validate:"required"`
	BuyerName string    `json:"buyerName" validate:"required,max=120"`
	Quantity  int32     `json:"quantity" validate:"gte=1"`
	Date      time.Time `json:"date"`
}

// CreateSale records a sale through the RecordSale workflow and waits for it
// to finish. A repeated key joins the existing run, so it yields the same
// sale or the same failure.
//
//encore:api public method=POST path=/sale tag:idempotency
func (s *Service) CreateSale(ctx context.Context, req *CreateSaleRequest) (*SaleResponse, error) {
	workflowID := workflow.WorkflowID(req.IdempotencyKey)
	options := client.StartWorkflowOptions{
		ID:                                       workflowID,
		TaskQueue:                                workflow.TaskQueue,
		WorkflowIDReusePolicy:                    enumspb.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY,
		WorkflowExecutionErrorWhenAlreadyStarted: true,
	}
	params := workflow.RecordSaleParams{
		SaleID:         uuid.NewString(),
		ProductID:      req.Product,
		BuyerName:      req.BuyerName,
		Quantity:       req.Quantity,
		Date:           req.Date,
		IdempotencyKey: req.IdempotencyKey,
	}

	run, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.RecordSale, params)
	if err != nil {
		if !temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Error("failed to start record sale workflow", "error", err, "workflow_id", workflowID)
			return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to start sale workflow"}
		}
		rlog.Info("workflow already started", "workflow_id", workflowID)
		run = s.temporal.GetWorkflow(ctx, workflowID, "")
	}

	var result model.Sale
	if err := run.Get(ctx, &result); err != nil {
		rlog.Error("record sale workflow failed", "error", err, "workflow_id", workflowID)
		return nil, workflow.ToAPIError(err)
	}

	return saleResponse(http.StatusCreated, "Sale created successfully", &result), nil
}

// Validate implements validation for CreateSaleRequest using go-playground/validator
func (r *CreateSaleRequest) Validate() error {
	if r.IdempotencyKey == "" {
		return &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}
	}
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	if r.Date.After(time.Now().Add(24 * time.Hour)) {
		return &errs.Error{Code: errs.InvalidArgument, Message: "date is too far in the future"}
	}
	return nil
}
