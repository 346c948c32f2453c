// Package module implements the gatherers module: it builds the frozen
// registry (builtins plus caller registrations) and exposes resolve/inspect
// ports
package module

import (
	"net/http"

	"factsagent/internal/modkit"
	phttp "factsagent/internal/platform/net/http"
	"factsagent/internal/services/gatherers/builtins"
	"factsagent/internal/services/gatherers/domain"
	"factsagent/internal/services/gatherers/service"
	gatheringdom "factsagent/internal/services/gathering/domain"
)

// Registration is one (name, version, gatherer) triple supplied by the caller
type Registration struct {
	Name     string
	Version  string
	Gatherer gatheringdom.Gatherer
}

// Ports exposed by the gatherers module
type Ports struct {
	Resolver  gatheringdom.ResolverPort
	Inspector domain.InspectorPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the gatherers module. The registry is frozen here: there is
// no runtime backend discovery
func New(deps modkit.Deps, extra []Registration, opts ...modkit.Option) *Module {
	modkit.Build(append([]modkit.Option{
		modkit.WithName("gatherers"),
	}, opts...)...)

	b := service.NewBuilder()
	b.Add("env", "v1", builtins.NewEnv())
	b.Add("hostinfo", "v1", builtins.NewHostInfo())
	if deps.PG != nil {
		b.Add("postgres", "v1", builtins.NewPostgres(deps.PG.Pool))
	}
	for _, reg := range extra {
		b.Add(reg.Name, reg.Version, reg.Gatherer)
	}
	registry := b.Build()

	m := &Module{deps: deps}
	m.ports = Ports{
		Resolver:  registry,
		Inspector: registry,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "gatherers" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r phttp.Router) {
	r.Get("/gatherers", func(w http.ResponseWriter, _ *http.Request) {
		phttp.RespondOK(w, m.ports.Inspector.List())
	})
}
