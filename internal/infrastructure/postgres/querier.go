package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier es el subconjunto de pgx que usan los repositorios. Lo cumplen *pgxpool.Pool,
// pgx.Tx y los dobles de prueba, de modo que un mismo repositorio sirve con pool o con tx.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Beginner abre transacciones (pool real o mock).
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
