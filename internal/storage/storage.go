package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/wallet-server/internal/config"
	"github.com/carson-networks/wallet-server/internal/storage/card"
	"github.com/carson-networks/wallet-server/internal/storage/profile"
	"github.com/carson-networks/wallet-server/internal/storage/subscription"
	"github.com/carson-networks/wallet-server/internal/storage/transaction"
)

// Tables groups the per-entity tables bound to one executor.
type Tables struct {
	Cards         card.ICardTable
	Transactions  transaction.ITransactionTable
	Subscriptions subscription.ISubscriptionTable
	Profiles      profile.IProfileTable
}

func NewTables(exec bob.Executor) Tables {
	return Tables{
		Cards:         card.NewCardsTable(exec),
		Transactions:  transaction.NewTransactionsTable(exec),
		Subscriptions: subscription.NewSubscriptionsTable(exec),
		Profiles:      profile.NewProfilesTable(exec),
	}
}

// Storage serves reads directly from the pool. Writes go through Write.
type Storage struct {
	Tables

	// Begin opens a transaction and returns the tables bound to it.
	Begin func(ctx context.Context) (Tx, Tables, error)

	ping func(ctx context.Context) error
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		return nil, err
	}
	return FromDB(db), nil
}

func FromDB(db *sql.DB) *Storage {
	bdb := bob.NewDB(db)
	return &Storage{
		Tables: NewTables(bdb),
		ping:   db.PingContext,
		Begin: func(ctx context.Context) (Tx, Tables, error) {
			tx, err := bdb.BeginTx(ctx, nil)
			if err != nil {
				return nil, Tables{}, err
			}
			return tx, NewTables(tx), nil
		},
	}
}

// Write opens a Writer. The caller must Commit or Rollback it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, tables, err := s.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx, tables), nil
}

// Ping checks that the database is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	if s == nil || s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}
