// Package inventory is the typed client for the inventory API. Reads go
// through one query cache per record type; writes go through a mutation
// coordinator that invalidates the written collection.
package inventory

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"stockroom/client/mutation"
	"stockroom/client/querycache"
	"stockroom/client/resource"
)

// ImageUploader stores a product image and returns its public URL.
type ImageUploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

// Client groups the collections of the inventory API.
type Client struct {
	Products   *resource.Collection[Product]
	Sales      *resource.Collection[Sale]
	Categories *resource.Collection[Lookup]
	Brands     *resource.Collection[Lookup]
	Sellers    *resource.Collection[Lookup]

	products *querycache.Cache[Product]
	sales    *querycache.Cache[Sale]
	lookups  *querycache.Cache[Lookup]

	coord    *mutation.Coordinator
	uploader ImageUploader
	logger   *zap.Logger
}

// Option configures a Client.
type Option func(*settings)

type settings struct {
	uploader  ImageUploader
	logger    *zap.Logger
	cacheOpts []querycache.Option
}

// WithUploader enables image uploads in CreateProduct.
func WithUploader(u ImageUploader) Option {
	return func(s *settings) { s.uploader = u }
}

// WithLogger sets the logger used by the client and its caches.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCacheOptions passes options to every query cache.
func WithCacheOptions(opts ...querycache.Option) Option {
	return func(s *settings) { s.cacheOpts = append(s.cacheOpts, opts...) }
}

// New wires the collections, caches and coordinator over api.
func New(api *resource.Client, opts ...Option) *Client {
	s := settings{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&s)
	}
	cacheOpts := append([]querycache.Option{querycache.WithLogger(s.logger.Named("querycache"))}, s.cacheOpts...)

	c := &Client{
		Products:   resource.NewCollection[Product](api, ProductResource),
		Sales:      resource.NewCollection[Sale](api, SaleResource),
		Categories: resource.NewCollection[Lookup](api, CategoryResource),
		Brands:     resource.NewCollection[Lookup](api, BrandResource),
		Sellers:    resource.NewCollection[Lookup](api, SellerResource),

		products: querycache.New[Product](cacheOpts...),
		sales:    querycache.New[Sale](cacheOpts...),
		lookups:  querycache.New[Lookup](cacheOpts...),

		uploader: s.uploader,
		logger:   s.logger,
	}
	c.coord = mutation.NewCoordinator(s.logger.Named("mutation"), c.products, c.sales, c.lookups)
	return c
}

// Page is a cached list result.
type Page[T any] struct {
	querycache.Entry[T]
	Query resource.Query
}

func list[T any](ctx context.Context, cache *querycache.Cache[T], col *resource.Collection[T], q resource.Query, refresh bool) (Page[T], error) {
	q = q.Normalize()
	key := querycache.NewKey(col.Name(), q.Values())
	loader := func(ctx context.Context) (querycache.Result[T], error) {
		page, err := col.List(ctx, q)
		if err != nil {
			return querycache.Result[T]{}, err
		}
		return querycache.Result[T]{Records: page.Records, Total: page.Total}, nil
	}

	var (
		e   querycache.Entry[T]
		err error
	)
	if refresh {
		e, err = cache.Fetch(ctx, key, loader)
	} else {
		e, err = cache.Read(ctx, key, loader)
	}
	return Page[T]{Entry: e, Query: q}, err
}

// ListSales returns one page of sales, from cache when fresh.
func (c *Client) ListSales(ctx context.Context, q resource.Query) (Page[Sale], error) {
	return list(ctx, c.sales, c.Sales, q, false)
}

// RefreshSales refetches one page of sales.
func (c *Client) RefreshSales(ctx context.Context, q resource.Query) (Page[Sale], error) {
	return list(ctx, c.sales, c.Sales, q, true)
}

// CachedSales returns the cached page for q without any request.
func (c *Client) CachedSales(q resource.Query) (querycache.Entry[Sale], bool) {
	return c.sales.Get(querycache.NewKey(SaleResource, q.Values()))
}

// CancelSales drops the in-flight request for q, e.g. when the user moves
// to another page before it resolves.
func (c *Client) CancelSales(q resource.Query) bool {
	return c.sales.Cancel(querycache.NewKey(SaleResource, q.Values()))
}

// CreateSale records a sale. Only sale pages are invalidated; cached
// product pages keep the stock they were fetched with until RefreshProducts.
func (c *Client) CreateSale(ctx context.Context, s NewSale) (mutation.Result[Sale], error) {
	return mutation.Perform[Sale](ctx, c.coord, c.Sales, mutation.Mutation{Op: mutation.OpCreate, Payload: s})
}

func (c *Client) UpdateSale(ctx context.Context, id string, patch SalePatch) (mutation.Result[Sale], error) {
	return mutation.Perform[Sale](ctx, c.coord, c.Sales, mutation.Mutation{Op: mutation.OpUpdate, ID: id, Payload: patch})
}

func (c *Client) DeleteSale(ctx context.Context, id string) (mutation.Result[Sale], error) {
	return mutation.Perform[Sale](ctx, c.coord, c.Sales, mutation.Mutation{Op: mutation.OpRemove, ID: id})
}

// ListProducts returns one page of products, from cache when fresh.
func (c *Client) ListProducts(ctx context.Context, q resource.Query) (Page[Product], error) {
	return list(ctx, c.products, c.Products, q, false)
}

// RefreshProducts refetches one page of products, e.g. to pick up stock
// changed by a sale.
func (c *Client) RefreshProducts(ctx context.Context, q resource.Query) (Page[Product], error) {
	return list(ctx, c.products, c.Products, q, true)
}

// CachedProducts returns the cached page for q without any request.
func (c *Client) CachedProducts(q resource.Query) (querycache.Entry[Product], bool) {
	return c.products.Get(querycache.NewKey(ProductResource, q.Values()))
}

func (c *Client) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (mutation.Result[Product], error) {
	return mutation.Perform[Product](ctx, c.coord, c.Products, mutation.Mutation{Op: mutation.OpUpdate, ID: id, Payload: patch})
}

func (c *Client) DeleteProduct(ctx context.Context, id string) (mutation.Result[Product], error) {
	return mutation.Perform[Product](ctx, c.coord, c.Products, mutation.Mutation{Op: mutation.OpRemove, ID: id})
}

func (c *Client) lookupCollection(kind string) (*resource.Collection[Lookup], error) {
	switch kind {
	case CategoryResource:
		return c.Categories, nil
	case BrandResource:
		return c.Brands, nil
	case SellerResource:
		return c.Sellers, nil
	default:
		return nil, &resource.ValidationError{
			Field:   "kind",
			Rule:    "oneof",
			Message: fmt.Sprintf("must be one of %s %s %s, got %q", CategoryResource, BrandResource, SellerResource, kind),
		}
	}
}

// ListLookups returns one page of categories, brands or sellers.
func (c *Client) ListLookups(ctx context.Context, kind string, q resource.Query) (Page[Lookup], error) {
	col, err := c.lookupCollection(kind)
	if err != nil {
		return Page[Lookup]{}, err
	}
	return list(ctx, c.lookups, col, q, false)
}

// CreateLookup adds a category, brand or seller.
func (c *Client) CreateLookup(ctx context.Context, kind, name string) (mutation.Result[Lookup], error) {
	col, err := c.lookupCollection(kind)
	if err != nil {
		return mutation.Result[Lookup]{}, err
	}
	return mutation.Perform[Lookup](ctx, c.coord, col, mutation.Mutation{Op: mutation.OpCreate, Payload: NewLookup{Name: name}})
}

// FindSale fetches one sale by id. It bypasses the list cache.
func (c *Client) FindSale(ctx context.Context, id string) (Sale, error) {
	reply, err := c.Sales.Get(ctx, id)
	if err != nil {
		return Sale{}, err
	}
	return reply.Record, nil
}
