package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"stockroom/inventory/mocks/business/sale_business"
	"stockroom/inventory/model"
)

func TestListSales(t *testing.T) {
	testCases := []struct {
		name          string
		request       *ListParams
		expectedQuery model.PageQuery
		mockReturn    []*model.Sale
		mockTotal     int64
		mockError     error
		expectedMeta  model.Meta
	}{
		{
			name:          "defaults",
			request:       &ListParams{},
			expectedQuery: model.PageQuery{Page: 1, Limit: 10},
			mockReturn:    []*model.Sale{{ID: "s1"}, {ID: "s2"}},
			mockTotal:     25,
			expectedMeta:  model.Meta{Page: 1, Limit: 10, Total: 25, TotalPage: 3},
		},
		{
			name:          "limit_capped_with_search",
			request:       &ListParams{Page: 2, Limit: 1000, Search: "ann"},
			expectedQuery: model.PageQuery{Page: 2, Limit: 100, Search: "ann"},
			mockTotal:     100,
			expectedMeta:  model.Meta{Page: 2, Limit: 100, Total: 100, TotalPage: 1},
		},
		{
			name:          "business_error",
			request:       &ListParams{Page: 1, Limit: 10},
			expectedQuery: model.PageQuery{Page: 1, Limit: 10},
			mockError:     &errs.Error{Code: errs.Internal, Message: "failed to count sales"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBusiness := sale_business.NewMockBusiness(ctrl)
			service := &Service{sale: mockBusiness}

			mockBusiness.EXPECT().
				ListSales(gomock.Any(), tc.expectedQuery).
				Return(tc.mockReturn, tc.mockTotal, tc.mockError)

			response, err := service.ListSales(context.Background(), tc.request)

			if tc.mockError != nil {
				assert.Error(t, err)
				assert.Nil(t, response)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 200, response.StatusCode)
			assert.Equal(t, "Sales retrieved successfully", response.Message)
			assert.Len(t, response.Data, len(tc.mockReturn))
			assert.Equal(t, tc.expectedMeta, response.Meta)
		})
	}
}

func TestDeleteSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := sale_business.NewMockBusiness(ctrl)
	service := &Service{sale: mockBusiness}

	mockBusiness.EXPECT().DeleteSale(gomock.Any(), "s1").Return(&model.Sale{ID: "s1", Quantity: 2}, nil)
	response, err := service.DeleteSale(context.Background(), "s1")
	assert.NoError(t, err)
	assert.Equal(t, 200, response.HTTPStatus)
	assert.Equal(t, "Sale deleted successfully", response.Message)
	assert.Equal(t, "s1", response.Data.ID)

	mockBusiness.EXPECT().DeleteSale(gomock.Any(), "missing").Return(nil, &errs.Error{Code: errs.NotFound, Message: "sale not found"})
	response, err = service.DeleteSale(context.Background(), "missing")
	assert.Nil(t, response)
	assert.Equal(t, errs.NotFound, errs.Code(err))
}

func TestUpdateSaleRequest_Validation(t *testing.T) {
	buyer := "Bo"
	empty := ""

	assert.NoError(t, (&UpdateSaleRequest{BuyerName: &buyer}).Validate())
	assert.Equal(t, errs.InvalidArgument, errs.Code((&UpdateSaleRequest{}).Validate()))
	assert.Equal(t, errs.InvalidArgument, errs.Code((&UpdateSaleRequest{BuyerName: &empty}).Validate()))
}
