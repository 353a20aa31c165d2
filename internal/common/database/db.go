package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

// OpenPgxPool opens a connection pool against the configured database and
// verifies connectivity with a ping.
func OpenPgxPool(ctx context.Context, connection string) (*pgxpool.Pool, error) {
	db, err := pgxpool.New(ctx, connection)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, errors.WithStack(err)
	}
	return db, nil
}
