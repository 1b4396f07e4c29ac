package product

import (
	"context"

	"encore.dev/beta/errs"

	"stockroom/inventory/model"
	"stockroom/inventory/store/products"
)

// ListProducts returns one page of products and the total match count.
func (b *business) ListProducts(ctx context.Context, q model.PageQuery) ([]*model.Product, int64, error) {
	q = q.Normalize()

	total, err := b.productRepo.CountProducts(ctx, q.Search)
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count products"}
	}

	dbProducts, err := b.productRepo.ListProducts(ctx, products.ListProductsParams{
		Search:    q.Search,
		RowLimit:  int32(q.Limit),
		RowOffset: int32(q.Offset()),
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list products"}
	}

	result := make([]*model.Product, 0, len(dbProducts))
	for _, p := range dbProducts {
		result = append(result, convertDBProductToModel(p))
	}
	return result, total, nil
}
