// Package db holds the storage-agnostic transaction contract. Each backend
// carries its open transaction inside the context handed to the callback,
// so repositories called with that context join it.
package db

import "context"

type TransactionFunc func(ctx context.Context) error

type TransactionManager interface {
	ExecuteTransaction(ctx context.Context, fn TransactionFunc) error
}
