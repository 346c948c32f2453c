package store

import (
	"context"
	"testing"

	"factsagent/internal/platform/config"
	perr "factsagent/internal/platform/errors"
)

func TestFromConfigDefaults(t *testing.T) {
	t.Setenv("SERVICE_PGSQL_DBURL", "")
	t.Setenv("SERVICE_PGSQL_MAX_CONNS", "")

	cfg := FromConfig(config.New())
	if cfg.URL != "" {
		t.Fatalf("URL = %q, want empty", cfg.URL)
	}
	if cfg.MaxConns != 2 {
		t.Fatalf("MaxConns = %d, want 2", cfg.MaxConns)
	}
}

func TestFromConfigOverrides(t *testing.T) {
	t.Setenv("SERVICE_PGSQL_DBURL", "postgres://checks:checks@db:5432/checks")
	t.Setenv("SERVICE_PGSQL_MAX_CONNS", "8")

	cfg := FromConfig(config.New())
	if cfg.URL != "postgres://checks:checks@db:5432/checks" {
		t.Fatalf("URL = %q", cfg.URL)
	}
	if cfg.MaxConns != 8 {
		t.Fatalf("MaxConns = %d, want 8", cfg.MaxConns)
	}
}

func TestOpenRejectsBadURL(t *testing.T) {
	_, err := Open(context.Background(), Config{URL: "://not-a-url"})
	if !perr.IsCode(err, perr.ErrorCodeConfig) {
		t.Fatalf("code = %v, want Config", perr.CodeOf(err))
	}
}

func TestCloseNil(t *testing.T) {
	var s *Store
	s.Close() // must not panic
}
