package database

import (
	"context"

	"gorm.io/gorm"
	"weatherreminder.app/internal/ports"
)

type txContextKey struct{}

// TransactionManagerAdapter implements the TransactionManager port using GORM transactions
type TransactionManagerAdapter struct {
	db *gorm.DB
}

// NewTransactionManagerAdapter creates a new transaction manager adapter
func NewTransactionManagerAdapter(db *gorm.DB) ports.TransactionManager {
	return &TransactionManagerAdapter{db: db}
}

// WithinTransaction runs fn in a transaction carried by the context.
// Nested calls join the outer transaction.
func (m *TransactionManagerAdapter) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

// conn returns the transaction bound to ctx, or the base connection outside a transaction
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// Models lists every persistent model for migrations
func Models() []interface{} {
	return []interface{}{
		&UserModel{},
		&CityModel{},
		&SubscriptionModel{},
		&WeatherReadingModel{},
		&JobModel{},
	}
}
