package sale

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"stockroom/inventory/mocks/store/sale_store"
	"stockroom/inventory/model"
	"stockroom/inventory/store"
	"stockroom/inventory/store/sales"
)

var saleColumns = []string{"id", "product_id", "product_name", "product_price", "buyer_name", "quantity", "total_price", "sale_date", "idempotency_key", "created_at", "updated_at"}

func TestUpdateSale(t *testing.T) {
	buyer := "Bo"
	date := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		patch          model.SalePatch
		expectedParams sales.UpdateSaleParams
		mockError      error
		expectedCode   errs.ErrCode
	}{
		{
			name:           "buyer_only",
			patch:          model.SalePatch{BuyerName: &buyer},
			expectedParams: sales.UpdateSaleParams{ID: "s1", BuyerName: pgtype.Text{String: "Bo", Valid: true}},
		},
		{
			name:           "date_only",
			patch:          model.SalePatch{Date: &date},
			expectedParams: sales.UpdateSaleParams{ID: "s1", SaleDate: pgtype.Timestamptz{Time: date, Valid: true}},
		},
		{
			name:           "not_found",
			patch:          model.SalePatch{BuyerName: &buyer},
			expectedParams: sales.UpdateSaleParams{ID: "s1", BuyerName: pgtype.Text{String: "Bo", Valid: true}},
			mockError:      pgx.ErrNoRows,
			expectedCode:   errs.NotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSaleRepo := sale_store.NewMockQuerier(ctrl)
			business := &business{saleRepo: mockSaleRepo}

			mockSaleRepo.EXPECT().
				UpdateSale(gomock.Any(), tc.expectedParams).
				Return(sales.Sale{ID: "s1", BuyerName: "Bo"}, tc.mockError)

			result, err := business.UpdateSale(context.Background(), "s1", tc.patch)

			if tc.mockError == nil {
				assert.NoError(t, err)
				assert.Equal(t, "Bo", result.BuyerName)
				return
			}
			assert.Nil(t, result)
			assert.Equal(t, tc.expectedCode, errs.Code(err))
		})
	}
}

func TestDeleteSaleRestocks(t *testing.T) {
	testCases := []struct {
		name         string
		deleteErr    error
		releaseErr   error
		expectedCode errs.ErrCode
	}{
		{name: "happy_case"},
		{name: "sale_not_found", deleteErr: pgx.ErrNoRows, expectedCode: errs.NotFound},
		{name: "restock_fails", releaseErr: errors.New("deadlock"), expectedCode: errs.Internal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			now := time.Now()
			mock.ExpectBegin()
			del := mock.ExpectQuery("DELETE FROM sales").WithArgs("s1")
			if tc.deleteErr != nil {
				del.WillReturnError(tc.deleteErr)
				mock.ExpectRollback()
			} else {
				del.WillReturnRows(mock.NewRows(saleColumns).
					AddRow("s1", "p1", "Rice", 12.5, "Ann", int32(2), 25.0, now, "key-1", now, now))
				release := mock.ExpectExec("UPDATE products").WithArgs(int32(2), "p1")
				if tc.releaseErr != nil {
					release.WillReturnError(tc.releaseErr)
					mock.ExpectRollback()
				} else {
					release.WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					mock.ExpectCommit()
				}
			}

			business := &business{tx: store.NewStore(mock)}
			result, err := business.DeleteSale(context.Background(), "s1")

			if tc.expectedCode == errs.OK {
				assert.NoError(t, err)
				assert.Equal(t, "s1", result.ID)
				assert.Equal(t, int32(2), result.Quantity)
			} else {
				assert.Nil(t, result)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
