package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	salemock "stockroom/inventory/mocks/business/sale_business"
	"stockroom/inventory/model"
)

func newTestEnv(t *testing.T) (*testsuite.TestWorkflowEnvironment, *salemock.MockBusiness) {
	ctrl := gomock.NewController(t)
	mockBiz := salemock.NewMockBusiness(ctrl)
	SetActivityDependencies(mockBiz)
	t.Cleanup(func() { SetActivityDependencies(nil) })

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterActivity(ReserveStockActivity)
	env.RegisterActivity(InsertSaleActivity)
	env.RegisterActivity(ReleaseStockActivity)
	return env, mockBiz
}

var saleDate = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func params() RecordSaleParams {
	return RecordSaleParams{
		SaleID:         "s1",
		ProductID:      "p1",
		BuyerName:      "Ann",
		Quantity:       2,
		Date:           saleDate,
		IdempotencyKey: "key-1",
	}
}

func TestRecordSale_HappyPath(t *testing.T) {
	env, mockBiz := newTestEnv(t)

	mockBiz.EXPECT().
		ReserveStock(gomock.Any(), "p1", int32(2)).
		Return(&model.Product{ID: "p1", Name: "Basmati Rice", Price: 12.5, Stock: 38}, nil).
		Times(1)
	mockBiz.EXPECT().
		InsertSale(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *model.Sale) (*model.Sale, error) {
			assert.Equal(t, "s1", s.ID)
			assert.Equal(t, "Basmati Rice", s.ProductName)
			assert.Equal(t, 12.5, s.ProductPrice)
			assert.Equal(t, "key-1", s.IdempotencyKey)
			assert.True(t, saleDate.Equal(s.Date))
			out := *s
			out.TotalPrice = 25
			return &out, nil
		}).
		Times(1)

	env.ExecuteWorkflow(RecordSale, params())
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var sale model.Sale
	require.NoError(t, env.GetWorkflowResult(&sale))
	assert.Equal(t, "s1", sale.ID)
	assert.Equal(t, 25.0, sale.TotalPrice)
	assert.Equal(t, "Ann", sale.BuyerName)
}

func TestRecordSale_InsufficientStock(t *testing.T) {
	env, mockBiz := newTestEnv(t)

	mockBiz.EXPECT().
		ReserveStock(gomock.Any(), "p1", int32(2)).
		Return(nil, &errs.Error{Code: errs.FailedPrecondition, Message: "insufficient stock: 1 available, 2 requested"}).
		Times(1)

	env.ExecuteWorkflow(RecordSale, params())
	require.True(t, env.IsWorkflowCompleted())

	err := ToAPIError(env.GetWorkflowError())
	assert.Equal(t, errs.FailedPrecondition, errs.Code(err))
	assert.Contains(t, err.Error(), "insufficient stock: 1 available, 2 requested")
}

func TestRecordSale_InsertFailureReleasesStock(t *testing.T) {
	testCases := []struct {
		name         string
		insertErr    error
		insertCalls  int
		expectedCode errs.ErrCode
	}{
		{
			name:         "duplicate_is_not_retried",
			insertErr:    &errs.Error{Code: errs.AlreadyExists, Message: "sale is duplicated"},
			insertCalls:  1,
			expectedCode: errs.AlreadyExists,
		},
		{
			name:         "internal_error_retried_then_compensated",
			insertErr:    errors.New("connection reset"),
			insertCalls:  3,
			expectedCode: errs.Internal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env, mockBiz := newTestEnv(t)

			mockBiz.EXPECT().
				ReserveStock(gomock.Any(), "p1", int32(2)).
				Return(&model.Product{ID: "p1", Name: "Basmati Rice", Price: 12.5}, nil).
				Times(1)
			mockBiz.EXPECT().
				InsertSale(gomock.Any(), gomock.Any()).
				Return(nil, tc.insertErr).
				Times(tc.insertCalls)
			mockBiz.EXPECT().
				ReleaseStock(gomock.Any(), "p1", int32(2)).
				Return(nil).
				Times(1)

			env.ExecuteWorkflow(RecordSale, params())
			require.True(t, env.IsWorkflowCompleted())
			require.Error(t, env.GetWorkflowError())
			assert.Equal(t, tc.expectedCode, errs.Code(ToAPIError(env.GetWorkflowError())))
		})
	}
}

func TestWorkflowID(t *testing.T) {
	assert.Equal(t, "sale-key-1", WorkflowID("key-1"))
}

func TestActivities_MissingDependencies(t *testing.T) {
	activityDeps = nil

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestActivityEnvironment()
	env.RegisterActivity(ReserveStockActivity)

	_, err := env.ExecuteActivity(ReserveStockActivity, "p1", int32(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "activity dependencies not initialized")
}

func TestActivities_FailurePaths(t *testing.T) {
	testErr := errors.New("boom")

	run := func(name string, expect func(m *salemock.MockBusiness), invoke func(env *testsuite.TestActivityEnvironment) error) {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockBiz := salemock.NewMockBusiness(ctrl)
			SetActivityDependencies(mockBiz)
			t.Cleanup(func() { SetActivityDependencies(nil) })

			var ts testsuite.WorkflowTestSuite
			env := ts.NewTestActivityEnvironment()
			env.RegisterActivity(ReserveStockActivity)
			env.RegisterActivity(InsertSaleActivity)
			env.RegisterActivity(ReleaseStockActivity)

			expect(mockBiz)
			err := invoke(env)
			if err == nil {
				t.Fatalf("expected error from activity but got nil")
			}
			assert.Contains(t, err.Error(), testErr.Error())
		})
	}

	run("ReserveStockActivity failure", func(m *salemock.MockBusiness) {
		m.EXPECT().ReserveStock(gomock.Any(), "p1", int32(1)).Return(nil, testErr).Times(1)
	}, func(env *testsuite.TestActivityEnvironment) error {
		_, err := env.ExecuteActivity(ReserveStockActivity, "p1", int32(1))
		return err
	})

	run("InsertSaleActivity failure", func(m *salemock.MockBusiness) {
		m.EXPECT().InsertSale(gomock.Any(), gomock.Any()).Return(nil, testErr).Times(1)
	}, func(env *testsuite.TestActivityEnvironment) error {
		_, err := env.ExecuteActivity(InsertSaleActivity, SaleInput{ID: "s1", ProductID: "p1", Quantity: 1})
		return err
	})

	run("ReleaseStockActivity failure", func(m *salemock.MockBusiness) {
		m.EXPECT().ReleaseStock(gomock.Any(), "p1", int32(1)).Return(testErr).Times(1)
	}, func(env *testsuite.TestActivityEnvironment) error {
		_, err := env.ExecuteActivity(ReleaseStockActivity, "p1", int32(1))
		return err
	})
}

func TestToAPIError(t *testing.T) {
	assert.Equal(t, errs.Internal, errs.Code(ToAPIError(errors.New("timeout"))))
	assert.Equal(t, errs.NotFound, errs.Code(ToAPIError(activityError("x", &errs.Error{Code: errs.NotFound, Message: "product not found"}))))
}
