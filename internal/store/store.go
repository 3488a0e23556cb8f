// Package store declares the persistence facade. The HTTP layer only ever
// talks to these interfaces; sqlstore owns the tables behind them.
package store

import (
	"context"

	"github.com/roamlog/roam-api/pkg/types"
)

type JournalEntryStore interface {
	Create(ctx context.Context, data types.JournalEntry) error
	// Get returns the entry owned by userID, joined with the current country
	// status. Missing rows surface as sql.ErrNoRows.
	Get(ctx context.Context, userID, id int64) (*types.JournalEntry, error)
	List(ctx context.Context, userID int64) ([]types.JournalEntry, error)
	ListByCountry(ctx context.Context, userID int64, countryCode string) ([]types.JournalEntry, error)
	// Update applies a partial update; nil fields keep their stored value.
	// Returns the number of matched rows, 0 when (id, userID) matched nothing.
	Update(ctx context.Context, userID, id int64, entry, visitStatus *string) (int64, error)
	Delete(ctx context.Context, userID, id int64) (int64, error)
}

type CountryStatusStore interface {
	// Upsert inserts or overwrites the single status row per (user, country).
	Upsert(ctx context.Context, data types.CountryStatus) error
	Get(ctx context.Context, userID int64, countryCode string) (*types.CountryStatus, error)
}

type UserStore interface {
	Create(ctx context.Context, data types.User) error
	GetUser(ctx context.Context, id int64) (*types.User, error)
	GetByUsername(ctx context.Context, username string) (*types.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

type Provider interface {
	// Transaction runs fn atomically; store calls made with the ctx it yields
	// join the same transaction.
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
	JournalEntryStore() JournalEntryStore
	CountryStatusStore() CountryStatusStore
	UserStore() UserStore
}
