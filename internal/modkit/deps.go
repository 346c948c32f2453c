// Package modkit provides module wiring and core deps
package modkit

import (
	"factsagent/internal/platform/config"
	"factsagent/internal/platform/logger"
	"factsagent/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  *store.Store // optional; nil when no database is configured
}
