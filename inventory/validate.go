package inventory

import (
	"github.com/go-playground/validator/v10"

	"encore.dev/beta/errs"

	"stockroom/inventory/model"
)

var validate = validator.New()

// ListParams selects one page of a collection.
type ListParams struct {
	Page   int    `query:"page" validate:"gte=0,lte=1000000"`
	Limit  int    `query:"limit" validate:"gte=0"`
	Search string `query:"search" validate:"max=120"`
}

func (p *ListParams) Validate() error {
	if err := validate.Struct(p); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

func (p *ListParams) pageQuery() model.PageQuery {
	return model.PageQuery{Page: p.Page, Limit: p.Limit, Search: p.Search}.Normalize()
}
