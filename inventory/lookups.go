package inventory

import (
	"context"
	"net/http"
	"strings"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"stockroom/inventory/model"
)

type CreateLookupRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Name string `json:"name" validate:"required,max=80"`
}

func (r *CreateLookupRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	if strings.TrimSpace(r.Name) == "" {
		return &errs.Error{Code: errs.InvalidArgument, Message: "name must not be blank"}
	}
	return nil
}

// lookupTitles names each kind in response messages.
var lookupTitles = map[model.LookupKind]string{
	model.KindCategory: "Categories",
	model.KindBrand:    "Brands",
	model.KindSeller:   "Sellers",
}

func (s *Service) listLookups(ctx context.Context, kind model.LookupKind, req *ListParams) (*LookupListResponse, error) {
	q := req.pageQuery()

	lookups, total, err := s.lookup.ListLookups(ctx, kind, q)
	if err != nil {
		rlog.Error("failed to list lookups", "error", err, "kind", kind)
		return nil, err
	}

	return &LookupListResponse{
		StatusCode: 200,
		Message:    lookupTitles[kind] + " retrieved successfully",
		Data:       lookups,
		Meta:       model.NewMeta(q, total),
	}, nil
}

func (s *Service) createLookup(ctx context.Context, kind model.LookupKind, req *CreateLookupRequest) (*LookupResponse, error) {
	result, err := s.lookup.CreateLookup(ctx, kind, req.Name)
	if err != nil {
		rlog.Error("failed to create lookup", "error", err, "kind", kind, "name", req.Name)
		return nil, err
	}

	title := strings.ToUpper(string(kind[:1])) + string(kind[1:])
	return lookupResponse(http.StatusCreated, title+" created successfully", result), nil
}

//encore:api public method=GET path=/category
func (s *Service) ListCategories(ctx context.Context, req *ListParams) (*LookupListResponse, error) {
	return s.listLookups(ctx, model.KindCategory, req)
}

//encore:api public method=POST path=/category tag:idempotency
func (s *Service) CreateCategory(ctx context.Context, req *CreateLookupRequest) (*LookupResponse, error) {
	return s.createLookup(ctx, model.KindCategory, req)
}

//encore:api public method=GET path=/brand
func (s *Service) ListBrands(ctx context.Context, req *ListParams) (*LookupListResponse, error) {
	return s.listLookups(ctx, model.KindBrand, req)
}

//encore:api public method=POST path=/brand tag:idempotency
func (s *Service) CreateBrand(ctx context.Context, req *CreateLookupRequest) (*LookupResponse, error) {
	return s.createLookup(ctx, model.KindBrand, req)
}

//encore:api public method=GET path=/seller
func (s *Service) ListSellers(ctx context.Context, req *ListParams) (*LookupListResponse, error) {
	return s.listLookups(ctx, model.KindSeller, req)
}

//encore:api public method=POST path=/seller tag:idempotency
func (s *Service) CreateSeller(ctx context.Context, req *CreateLookupRequest) (*LookupResponse, error) {
	return s.createLookup(ctx, model.KindSeller, req)
}
