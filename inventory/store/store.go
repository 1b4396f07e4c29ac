package store

import (
	"context"

	"github.com/jackc/pgx/v5"

	"stockroom/inventory/store/lookups"
	"stockroom/inventory/store/products"
	"stockroom/inventory/store/sales"
)

// DB is satisfied by *pgxpool.Pool.
type DB interface {
	products.DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Transactor runs fn against a Store bound to one transaction.
type Transactor interface {
	InTx(ctx context.Context, fn func(*Store) error) error
}

// Store combines all domain-specific queriers
type Store struct {
	db       DB
	Products products.Querier
	Sales    sales.Querier
	Lookups  lookups.Querier
}

// NewStore creates a new Store with all domain queriers
func NewStore(db DB) *Store {
	return &Store{
		db:       db,
		Products: products.New(db),
		Sales:    sales.New(db),
		Lookups:  lookups.New(db),
	}
}

// WithTx returns a Store whose queriers run inside tx.
func (s *Store) WithTx(tx pgx.Tx) *Store {
	return &Store{
		db:       s.db,
		Products: products.New(tx),
		Sales:    sales.New(tx),
		Lookups:  lookups.New(tx),
	}
}

// InTx commits when fn returns nil and rolls back otherwise.
func (s *Store) InTx(ctx context.Context, fn func(*Store) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(s.WithTx(tx)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
