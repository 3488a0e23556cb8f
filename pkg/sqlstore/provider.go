// Package sqlstore wires sqlx connections into a master/replica provider with
// context-scoped transactions: a transaction opened by Transaction travels in
// the context, so store methods running inside it transparently share it.
package sqlstore

import (
	"context"
	"database/sql"
	"math/rand"
	"time"

	"github.com/jmoiron/sqlx"
)

type ConnectConfig interface {
	FormatDSN() string
}

// Executor is satisfied by *sqlx.DB and *sqlx.Tx.
type Executor interface {
	Exec(query string, args ...any) (sql.Result, error)
	Get(dest any, query string, args ...any) error
	Select(dest any, query string, args ...any) error
}

type SqlProvider struct {
	master   *sqlx.DB
	replicas []*sqlx.DB
}

func MustSetupProvider(m ConnectConfig, replicas ...ConnectConfig) *SqlProvider {
	p := &SqlProvider{
		master: mustConnect(m),
	}
	for _, r := range replicas {
		p.replicas = append(p.replicas, mustConnect(r))
	}
	return p
}

func mustConnect(c ConnectConfig) *sqlx.DB {
	db, err := sqlx.Connect("postgres", c.FormatDSN())
	if err != nil {
		panic(err)
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(time.Hour)
	return db
}

type txContextKey struct{}

func (p *SqlProvider) GetMaster(ctx context.Context) Executor {
	if tx, ok := ctx.Value(txContextKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return p.master
}

func (p *SqlProvider) GetReplica(ctx context.Context) Executor {
	if tx, ok := ctx.Value(txContextKey{}).(*sqlx.Tx); ok {
		return tx
	}
	if len(p.replicas) == 0 {
		return p.master
	}
	return p.replicas[rand.Intn(len(p.replicas))]
}

// Transaction runs fn inside a transaction on the master. Nested calls join
// the transaction already carried by ctx.
func (p *SqlProvider) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txContextKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := p.master.Beginx()
	if err != nil {
		return err
	}
	if err = fn(context.WithValue(ctx, txContextKey{}, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
