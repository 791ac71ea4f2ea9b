package mysql

import (
	"context"
	"fmt"
	"hotelbooking/pkg/db"
	apperrors "hotelbooking/pkg/errors"

	"gorm.io/gorm"
)

type txKey struct{}

// Conn returns the gorm transaction bound to ctx, or base when there is none.
func Conn(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return base.WithContext(ctx)
}

type gormTransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(gdb *gorm.DB) db.TransactionManager {
	return &gormTransactionManager{db: gdb}
}

func (m *gormTransactionManager) ExecuteTransaction(ctx context.Context, fn db.TransactionFunc) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}
