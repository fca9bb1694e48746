// Package db carries the transaction plumbing shared by the repositories.
// A transaction opened by the TransactionManager travels through the
// context, and every repository resolves its handle via GetTxFromContext,
// so multi-step use cases commit or roll back as one unit.
package db

import (
	"context"

	"gorm.io/gorm"
)

// txKey keys the active transaction in a context.
type txKey struct{}

// TransactionManager opens transactions against the primary database.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction runs fn inside a single transaction. The context passed
// to fn carries the transaction; repositories called with that context write
// through it. fn returning an error rolls everything back.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// GetTxFromContext resolves the database handle for a repository call:
// the transaction carried by ctx when there is one, defaultDB otherwise.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
