package ports

import "context"

// TransactionManager runs fn inside a single storage transaction.
// Repositories called with the ctx passed to fn take part in that transaction.
type TransactionManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// KeyLocker serializes work on a logical key across goroutines or processes
type KeyLocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
