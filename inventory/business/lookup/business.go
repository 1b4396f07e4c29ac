package lookup

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"

	"stockroom/inventory/model"
	"stockroom/inventory/store/lookups"
)

// Business serves the category, brand and seller collections. They share a
// table and differ only by kind.
type Business interface {
	ListLookups(ctx context.Context, kind model.LookupKind, q model.PageQuery) ([]*model.Lookup, int64, error)
	CreateLookup(ctx context.Context, kind model.LookupKind, name string) (*model.Lookup, error)
}

type business struct {
	lookupRepo lookups.Querier
	newID      func() string
}

func NewLookupBusiness(lookupRepo lookups.Querier) Business {
	return &business{
		lookupRepo: lookupRepo,
		newID:      uuid.NewString,
	}
}

func (b *business) ListLookups(ctx context.Context, kind model.LookupKind, q model.PageQuery) ([]*model.Lookup, int64, error) {
	q = q.Normalize()

	total, err := b.lookupRepo.CountLookups(ctx, lookups.CountLookupsParams{Kind: string(kind), Search: q.Search})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count " + string(kind)}
	}

	dbLookups, err := b.lookupRepo.ListLookups(ctx, lookups.ListLookupsParams{
		Kind:      string(kind),
		Search:    q.Search,
		RowLimit:  int32(q.Limit),
		RowOffset: int32(q.Offset()),
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list " + string(kind)}
	}

	result := make([]*model.Lookup, 0, len(dbLookups))
	for _, l := range dbLookups {
		result = append(result, convertDBLookupToModel(l))
	}
	return result, total, nil
}

// CreateLookup names are unique per kind, ignoring case.
func (b *business) CreateLookup(ctx context.Context, kind model.LookupKind, name string) (*model.Lookup, error) {
	dbLookup, err := b.lookupRepo.CreateLookup(ctx, lookups.CreateLookupParams{
		ID:   b.newID(),
		Kind: string(kind),
		Name: strings.TrimSpace(name),
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: string(kind) + " already exists"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create " + string(kind)}
	}
	return convertDBLookupToModel(dbLookup), nil
}

func convertDBLookupToModel(dbLookup lookups.Lookup) *model.Lookup {
	return &model.Lookup{
		ID:        dbLookup.ID,
		Kind:      model.LookupKind(dbLookup.Kind),
		Name:      dbLookup.Name,
		CreatedAt: dbLookup.CreatedAt.Time,
	}
}
