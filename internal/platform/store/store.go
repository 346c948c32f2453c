// Package store opens and owns the postgres pool used by gatherers that
// inspect a database
package store

import (
	"context"

	"factsagent/internal/platform/config"
	perr "factsagent/internal/platform/errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config configures the postgres connection
type Config struct {
	URL      string
	MaxConns int32
}

// FromConfig reads Config from the SERVICE_PGSQL_ env prefix
func FromConfig(cfg config.Conf) Config {
	pgCfg := cfg.Prefix("SERVICE_PGSQL_")
	return Config{
		URL:      pgCfg.MayString("DBURL", ""),
		MaxConns: int32(pgCfg.MayInt("MAX_CONNS", 2)),
	}
}

// Store holds the shared pgx pool
type Store struct {
	Pool *pgxpool.Pool
}

// Open parses cfg, builds the pool, and pings it once
func Open(ctx context.Context, cfg Config) (*Store, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeConfig, "invalid postgres url")
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "cannot create postgres pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "postgres unreachable")
	}
	return &Store{Pool: pool}, nil
}

// Close releases the pool
func (s *Store) Close() {
	if s != nil && s.Pool != nil {
		s.Pool.Close()
	}
}
