package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// driverName is registered by a blank import of github.com/jackc/pgx/v5/stdlib
// in each binary.
const driverName = "pgx"

// PoolOptions sizes the connection pool. The only table is the geocode cache,
// hit at most twice per route query, so the pool stays small.
type PoolOptions struct {
	MaxOpen     int
	MaxIdle     int
	MaxLifetime time.Duration
	MaxIdleTime time.Duration
}

func DefaultPoolOptions() PoolOptions {
	return PoolOptions{
		MaxOpen:     4,
		MaxIdle:     2,
		MaxLifetime: 15 * time.Minute,
		MaxIdleTime: 5 * time.Minute,
	}
}

// withDefaults fills unset fields and keeps MaxIdle within MaxOpen.
func (o PoolOptions) withDefaults() PoolOptions {
	def := DefaultPoolOptions()
	if o.MaxOpen <= 0 {
		o.MaxOpen = def.MaxOpen
	}
	if o.MaxIdle <= 0 {
		o.MaxIdle = def.MaxIdle
	}
	o.MaxIdle = min(o.MaxIdle, o.MaxOpen)
	if o.MaxLifetime <= 0 {
		o.MaxLifetime = def.MaxLifetime
	}
	if o.MaxIdleTime <= 0 {
		o.MaxIdleTime = def.MaxIdleTime
	}
	return o
}

// Open returns a verified Postgres handle for the geocode cache.
func Open(ctx context.Context, databaseURL string, opts PoolOptions) (*sql.DB, error) {
	if databaseURL == "" {
		return nil, errors.New("open cache db: database url is empty")
	}

	conn, err := sql.Open(driverName, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	opts = opts.withDefaults()
	conn.SetMaxOpenConns(opts.MaxOpen)
	conn.SetMaxIdleConns(opts.MaxIdle)
	conn.SetConnMaxLifetime(opts.MaxLifetime)
	conn.SetConnMaxIdleTime(opts.MaxIdleTime)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open cache db: ping: %w", err)
	}

	return conn, nil
}
