package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// NewPgxPool returns a live connection pool or an error.
func NewPgxPool(ctx context.Context, dsn string, maxConns int32) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}
	pool, err := pgxpool.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return pool, nil
}

// pickRow routes a single-row query through a tx handle when one is
// provided via qx, the pool otherwise.
func pickRow(ctx context.Context, pool *pgxpool.Pool, qx any, sql string, args ...any) pgx.Row {
	switch v := qx.(type) {
	case pgx.Tx:
		return v.QueryRow(ctx, sql, args...)
	case *pgxpool.Conn:
		return v.QueryRow(ctx, sql, args...)
	default:
		return pool.QueryRow(ctx, sql, args...)
	}
}

func queryRows(ctx context.Context, pool *pgxpool.Pool, qx any, sql string, args ...any) (pgx.Rows, error) {
	switch v := qx.(type) {
	case pgx.Tx:
		return v.Query(ctx, sql, args...)
	case *pgxpool.Conn:
		return v.Query(ctx, sql, args...)
	default:
		return pool.Query(ctx, sql, args...)
	}
}

func execQx(ctx context.Context, pool *pgxpool.Pool, qx any, sql string, args ...any) (int64, error) {
	switch v := qx.(type) {
	case pgx.Tx:
		tag, err := v.Exec(ctx, sql, args...)
		return tag.RowsAffected(), err
	case *pgxpool.Conn:
		tag, err := v.Exec(ctx, sql, args...)
		return tag.RowsAffected(), err
	default:
		tag, err := pool.Exec(ctx, sql, args...)
		return tag.RowsAffected(), err
	}
}
