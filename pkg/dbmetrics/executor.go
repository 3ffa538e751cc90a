package dbmetrics

import (
	"context"
	"database/sql"
)

// DBExecutor минимальный интерфейс выполнения запросов.
// Ему удовлетворяют *sql.DB, *sql.Tx, *dbmetrics.DB и *dbmetrics.Tx.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor executor внутри открытой транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type ctxKey struct{}

var executorKey ctxKey

// WithExecutor кладет executor транзакции в контекст.
// Репозитории достают его через GetExecutor и тем самым участвуют в
// транзакции, открытой transaction manager'ом, без изменения сигнатур.
func WithExecutor(ctx context.Context, exec DBExecutor) context.Context {
	return context.WithValue(ctx, executorKey, exec)
}

// GetExecutor возвращает executor из контекста, если там открыта
// транзакция, иначе fallback (обычно *sql.DB репозитория).
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if exec, ok := ctx.Value(executorKey).(DBExecutor); ok && exec != nil {
		return exec
	}
	return fallback
}

// IsInTransaction возвращает true, если в контексте есть executor транзакции
func IsInTransaction(ctx context.Context) bool {
	exec, ok := ctx.Value(executorKey).(DBExecutor)
	return ok && exec != nil
}
