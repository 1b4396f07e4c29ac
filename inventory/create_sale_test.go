package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/mocks"
	"go.temporal.io/sdk/temporal"

	"encore.dev/beta/errs"

	"stockroom/inventory/model"
	"stockroom/inventory/workflow"
)

func TestCreateSale(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	recorded := model.Sale{
		ID:           "s1",
		Product:      "p1",
		ProductName:  "Basmati Rice",
		ProductPrice: 12.5,
		BuyerName:    "Ann",
		Quantity:     2,
		TotalPrice:   25,
		Date:         date,
	}

	testCases := []struct {
		name           string
		startErr       error
		expectRejoin   bool
		runErr         error
		expectedCode   errs.ErrCode
		expectedError  string
		expectRunFetch bool
	}{
		{
			name:           "recorded",
			expectRunFetch: true,
		},
		{
			name:           "already_started_is_awaited",
			startErr:       serviceerror.NewWorkflowExecutionAlreadyStarted("workflow execution already started", "", ""),
			expectRejoin:   true,
			expectRunFetch: true,
		},
		{
			name:          "temporal_unavailable",
			startErr:      errors.New("connection refused"),
			expectedCode:  errs.Unavailable,
			expectedError: "failed to start sale workflow",
		},
		{
			name:           "insufficient_stock",
			runErr:         temporal.NewNonRetryableApplicationError("insufficient stock: 1 available, 2 requested", "FAILED_PRECONDITION", nil),
			expectRunFetch: true,
			expectedCode:   errs.FailedPrecondition,
			expectedError:  "insufficient stock",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockTemporal := mocks.NewClient(t)
			mockRun := mocks.NewWorkflowRun(t)

			service := &Service{temporal: mockTemporal}

			matchOptions := mock.MatchedBy(func(o client.StartWorkflowOptions) bool {
				return o.ID == "sale-key-1" && o.TaskQueue == workflow.TaskQueue && o.WorkflowExecutionErrorWhenAlreadyStarted
			})
			matchParams := mock.MatchedBy(func(p workflow.RecordSaleParams) bool {
				return p.ProductID == "p1" && p.Quantity == 2 && p.IdempotencyKey == "key-1" && p.SaleID != ""
			})

			if tc.startErr != nil {
				mockTemporal.On("ExecuteWorkflow", mock.Anything, matchOptions, mock.Anything, matchParams).
					Return(nil, tc.startErr)
			} else {
				mockTemporal.On("ExecuteWorkflow", mock.Anything, matchOptions, mock.Anything, matchParams).
					Return(mockRun, nil)
			}
			if tc.expectRejoin {
				mockTemporal.On("GetWorkflow", mock.Anything, "sale-key-1", "").Return(mockRun)
			}
			if tc.expectRunFetch {
				mockRun.On("Get", mock.Anything, mock.Anything).
					Run(func(args mock.Arguments) {
						if tc.runErr == nil {
							*args.Get(1).(*model.Sale) = recorded
						}
					}).
					Return(tc.runErr)
			}

			response, err := service.CreateSale(context.Background(), &CreateSaleRequest{
				IdempotencyKey: "key-1",
				Product:        "p1",
				BuyerName:      "Ann",
				Quantity:       2,
				Date:           date,
			})

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Nil(t, response)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 201, response.HTTPStatus)
			assert.Equal(t, 201, response.StatusCode)
			assert.Equal(t, "Sale created successfully", response.Message)
			assert.Equal(t, recorded, *response.Data)
		})
	}
}

func TestCreateSaleRequest_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		request       *CreateSaleRequest
		expectedError string
	}{
		{
			name:    "valid_request",
			request: &CreateSaleRequest{IdempotencyKey: "k", Product: "p1", BuyerName: "Ann", Quantity: 1},
		},
		{
			name:          "missing_key",
			request:       &CreateSaleRequest{Product: "p1", BuyerName: "Ann", Quantity: 1},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:          "zero_quantity",
			request:       &CreateSaleRequest{IdempotencyKey: "k", Product: "p1", BuyerName: "Ann", Quantity: 0},
			expectedError: "gte",
		},
		{
			name:          "missing_buyer",
			request:       &CreateSaleRequest{IdempotencyKey: "k", Product: "p1", Quantity: 1},
			expectedError: "required",
		},
		{
			name:          "date_far_in_future",
			request:       &CreateSaleRequest{IdempotencyKey: "k", Product: "p1", BuyerName: "Ann", Quantity: 1, Date: time.Now().Add(72 * time.Hour)},
			expectedError: "date is too far in the future",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()
			if tc.expectedError == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, errs.InvalidArgument, errs.Code(err))
			assert.Contains(t, err.Error(), tc.expectedError)
		})
	}
}
