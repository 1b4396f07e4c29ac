package product

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stockroom/inventory/mocks/store/lookup_store"
	"stockroom/inventory/mocks/store/product_store"
	"stockroom/inventory/model"
	"stockroom/inventory/store/lookups"
	"stockroom/inventory/store/products"
)

func strPtr(s string) *string { return &s }

func TestCreateProduct(t *testing.T) {
	testCases := []struct {
		name             string
		product          *model.Product
		lookups          map[string]lookups.Lookup
		mockCreateReturn products.Product
		mockCreateError  error
		expectCreate     bool
		expectedError    string
		expectSuccess    bool
	}{
		{
			name: "happy_case_with_brand_and_size",
			product: &model.Product{
				Name: "Basmati Rice", Price: 12.5, Stock: 40,
				Seller: "s1", Category: "c1", Brand: strPtr("b1"), Size: model.SizeMedium,
				ImageURL: strPtr("https://img.example/rice.png"),
			},
			lookups: map[string]lookups.Lookup{
				"s1": {ID: "s1", Kind: "seller"},
				"c1": {ID: "c1", Kind: "category"},
				"b1": {ID: "b1", Kind: "brand"},
			},
			mockCreateReturn: products.Product{
				ID: "p1", Name: "Basmati Rice", Price: 12.5, Stock: 40,
				SellerID: "s1", CategoryID: "c1",
				BrandID:  pgtype.Text{String: "b1", Valid: true},
				Size:     pgtype.Text{String: "MEDIUM", Valid: true},
				ImageUrl: pgtype.Text{String: "https://img.example/rice.png", Valid: true},
			},
			expectCreate:  true,
			expectSuccess: true,
		},
		{
			name:          "unknown_seller",
			product:       &model.Product{Name: "Rice", Price: 1, Seller: "missing", Category: "c1"},
			lookups:       map[string]lookups.Lookup{},
			expectedError: `seller "missing" not found`,
		},
		{
			name:    "category_id_points_at_brand",
			product: &model.Product{Name: "Rice", Price: 1, Seller: "s1", Category: "b1"},
			lookups: map[string]lookups.Lookup{
				"s1": {ID: "s1", Kind: "seller"},
				"b1": {ID: "b1", Kind: "brand"},
			},
			expectedError: `"b1" is a brand, not a category`,
		},
		{
			name:    "foreign_key_race",
			product: &model.Product{Name: "Rice", Price: 1, Seller: "s1", Category: "c1"},
			lookups: map[string]lookups.Lookup{
				"s1": {ID: "s1", Kind: "seller"},
				"c1": {ID: "c1", Kind: "category"},
			},
			mockCreateError: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation},
			expectCreate:    true,
			expectedError:   "product references an unknown lookup",
		},
		{
			name:    "database_error",
			product: &model.Product{Name: "Rice", Price: 1, Seller: "s1", Category: "c1"},
			lookups: map[string]lookups.Lookup{
				"s1": {ID: "s1", Kind: "seller"},
				"c1": {ID: "c1", Kind: "category"},
			},
			mockCreateError: errors.New("connection reset"),
			expectCreate:    true,
			expectedError:   "failed to create product",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProductRepo := product_store.NewMockQuerier(ctrl)
			mockLookupRepo := lookup_store.NewMockQuerier(ctrl)

			business := &business{
				productRepo: mockProductRepo,
				lookupRepo:  mockLookupRepo,
				newID:       func() string { return "p1" },
			}

			mockLookupRepo.EXPECT().
				GetLookup(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, id string) (lookups.Lookup, error) {
					l, ok := tc.lookups[id]
					if !ok {
						return lookups.Lookup{}, pgx.ErrNoRows
					}
					return l, nil
				}).
				AnyTimes()

			if tc.expectCreate {
				mockProductRepo.EXPECT().
					CreateProduct(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg products.CreateProductParams) (products.Product, error) {
						assert.Equal(t, "p1", arg.ID)
						assert.Equal(t, tc.product.Seller, arg.SellerID)
						assert.Equal(t, tc.product.Brand != nil, arg.BrandID.Valid)
						assert.Equal(t, string(tc.product.Size), arg.Size.String)
						return tc.mockCreateReturn, tc.mockCreateError
					})
			}

			result, err := business.CreateProduct(context.Background(), tc.product)

			if tc.expectSuccess {
				assert.NoError(t, err)
				if assert.NotNil(t, result) {
					assert.Equal(t, "p1", result.ID)
					assert.Equal(t, model.SizeMedium, result.Size)
					assert.Equal(t, "b1", *result.Brand)
					assert.Nil(t, result.Description)
				}
			} else {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Contains(t, err.Error(), tc.expectedError)
			}
		})
	}
}
