package db

import "context"

// DB is a generic database port that allows swapping
// GORM, sqlc, pgx or an in-memory DB.
type DB interface {
	Conn() any
	Ping(ctx context.Context) error
	Close() error
}
