// Package module implements the gathering module
package module

import (
	"factsagent/internal/modkit"
	phttp "factsagent/internal/platform/net/http"
	"factsagent/internal/services/gathering/domain"
	"factsagent/internal/services/gathering/service"
)

// Ports exposed by the gathering module
type Ports struct {
	Handler domain.HandlerPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the gathering module with the resolver/publisher ports
// injected via modkit.WithPorts. Missing identity or resolver is fatal:
// the agent cannot run without them
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("gathering"),
	}, opts...)...)

	// Basic guardrails against incorrect wiring
	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("gathering module: expected WithPorts(gathering/domain.Ports)")
	}

	cfg := FromConfig(deps.Cfg)
	if overrides.AgentID != "" {
		cfg.AgentID = overrides.AgentID
	}
	if overrides.Workers != 0 {
		cfg.Workers = overrides.Workers
	}

	dispatcher, err := service.New(service.Config{
		AgentID: cfg.AgentID,
		Workers: cfg.Workers,
	}, ports)
	if err != nil {
		panic(err)
	}

	m := &Module{deps: deps}
	m.ports = Ports{Handler: dispatcher}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "gathering" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(_ phttp.Router) {}
