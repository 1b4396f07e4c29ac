package sale

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"stockroom/inventory/mocks/store/product_store"
	"stockroom/inventory/store/products"
)

func TestReserveStock(t *testing.T) {
	testCases := []struct {
		name             string
		mockReserve      products.Product
		mockReserveError error
		mockGet          products.Product
		mockGetError     error
		expectGet        bool
		expectedCode     errs.ErrCode
		expectedError    string
	}{
		{
			name:        "happy_case",
			mockReserve: products.Product{ID: "p1", Name: "Rice", Price: 12.5, Stock: 38},
		},
		{
			name:             "insufficient_stock",
			mockReserveError: pgx.ErrNoRows,
			mockGet:          products.Product{ID: "p1", Stock: 1},
			expectGet:        true,
			expectedCode:     errs.FailedPrecondition,
			expectedError:    "insufficient stock: 1 available, 2 requested",
		},
		{
			name:             "product_missing",
			mockReserveError: pgx.ErrNoRows,
			mockGetError:     pgx.ErrNoRows,
			expectGet:        true,
			expectedCode:     errs.NotFound,
			expectedError:    "product not found",
		},
		{
			name:             "database_error",
			mockReserveError: errors.New("connection reset"),
			expectedCode:     errs.Internal,
			expectedError:    "failed to reserve stock",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProductRepo := product_store.NewMockQuerier(ctrl)
			business := &business{productRepo: mockProductRepo}

			mockProductRepo.EXPECT().
				ReserveStock(gomock.Any(), products.ReserveStockParams{Quantity: 2, ID: "p1"}).
				Return(tc.mockReserve, tc.mockReserveError)
			if tc.expectGet {
				mockProductRepo.EXPECT().
					GetProduct(gomock.Any(), "p1").
					Return(tc.mockGet, tc.mockGetError)
			}

			result, err := business.ReserveStock(context.Background(), "p1", 2)

			if tc.expectedError == "" {
				assert.NoError(t, err)
				assert.Equal(t, "Rice", result.Name)
				assert.Equal(t, 12.5, result.Price)
				assert.Equal(t, int32(38), result.Stock)
				return
			}
			assert.Nil(t, result)
			assert.Equal(t, tc.expectedCode, errs.Code(err))
			assert.Contains(t, err.Error(), tc.expectedError)
		})
	}
}

func TestReleaseStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := product_store.NewMockQuerier(ctrl)
	business := &business{productRepo: mockProductRepo}

	mockProductRepo.EXPECT().
		ReleaseStock(gomock.Any(), products.ReleaseStockParams{Quantity: 3, ID: "p1"}).
		Return(nil)
	assert.NoError(t, business.ReleaseStock(context.Background(), "p1", 3))

	mockProductRepo.EXPECT().
		ReleaseStock(gomock.Any(), gomock.Any()).
		Return(errors.New("boom"))
	assert.Equal(t, errs.Internal, errs.Code(business.ReleaseStock(context.Background(), "p1", 3)))
}
