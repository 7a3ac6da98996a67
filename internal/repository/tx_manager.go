package repository

import (
	"context"

	"gorm.io/gorm"
)

type txKeyType struct{}

var txKey txKeyType

// TransactionManager runs a unit of work inside a single database
// transaction. The transaction handle travels through the context, so every
// repository call made with the derived context joins the same transaction.
type TransactionManager interface {
	RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

type txManager struct {
	db *gorm.DB
}

// NewTransactionManager returns a new instance of TransactionManager
func NewTransactionManager(db *gorm.DB) TransactionManager {
	return &txManager{db: db}
}

// RunInTx opens a transaction, injects it into the context and invokes fn.
// An error from fn rolls the whole transaction back.
func (m *txManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey, tx))
	})
}

// GetDB resolves the handle repositories should use: the in-flight
// transaction when the context carries one, the root connection otherwise.
func GetDB(ctx context.Context, rootDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return rootDB.WithContext(ctx)
}
