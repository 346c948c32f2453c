// Package service implements the versioned gatherers registry
package service

import (
	"sort"
	"strings"

	perr "factsagent/internal/platform/errors"
	gatheringdom "factsagent/internal/services/gathering/domain"
)

// Registry maps gatherer name -> version -> shared handle. Built once via
// Builder before the agent starts consuming events; immutable thereafter, so
// concurrent Resolve calls need no locking
type Registry struct {
	gatherers map[string]map[string]gatheringdom.Gatherer
}

// Resolve parses ref as "<name>" or "<name>@<version>" and returns the shared
// handle for it. With no version, the lexicographically maximal registered
// version wins (plain string order, not semver: "v9" ranks above "v10")
func (r *Registry) Resolve(ref string) (gatheringdom.Gatherer, error) {
	name, version, err := splitReference(ref)
	if err != nil {
		return nil, err
	}

	if version == "" {
		version, err = r.latestVersion(name)
		if err != nil {
			return nil, err
		}
	}

	if g, ok := r.gatherers[name][version]; ok {
		return g, nil
	}
	return nil, perr.NotFoundf(ref, "gatherer %q not found", ref)
}

// List returns one diagnostic line per registered name with its versions in
// ascending lexicographic order
func (r *Registry) List() []string {
	lines := make([]string, 0, len(r.gatherers))
	for name, versioned := range r.gatherers {
		versions := make([]string, 0, len(versioned))
		for v := range versioned {
			versions = append(versions, v)
		}
		sort.Strings(versions)
		lines = append(lines, name+" - "+strings.Join(versions, "/"))
	}
	return lines
}

// latestVersion picks the lexicographically maximal version for name
func (r *Registry) latestVersion(name string) (string, error) {
	versioned, ok := r.gatherers[name]
	if !ok {
		return "", perr.NotFoundf(name, "gatherer %q not found", name)
	}
	latest := ""
	for v := range versioned {
		if v > latest {
			latest = v
		}
	}
	return latest, nil
}

// splitReference parses "<name>" or "<name>@<version>"; more than one
// separator is a format error that preserves the whole original string
func splitReference(ref string) (name, version string, err error) {
	parts := strings.Split(ref, "@")
	switch len(parts) {
	case 1:
		return parts[0], "", nil
	case 2:
		return parts[0], parts[1], nil
	default:
		return "", "", perr.NameFormatf(ref,
			"cannot extract a version from %q, expected <name>@<version>", ref)
	}
}

// registration is one pending (name, version, gatherer) triple
type registration struct {
	name     string
	version  string
	gatherer gatheringdom.Gatherer
}

// Builder accumulates registrations and freezes them into a Registry
type Builder struct {
	pending []registration
}

// NewBuilder returns an empty Builder
func NewBuilder() *Builder { return &Builder{} }

// Add registers one implementation under (name, version). Registering the
// same pair twice silently overwrites the prior one (last write wins)
func (b *Builder) Add(name, version string, g gatheringdom.Gatherer) *Builder {
	b.pending = append(b.pending, registration{name: name, version: version, gatherer: g})
	return b
}

// Build freezes the accumulated registrations into an immutable Registry
func (b *Builder) Build() *Registry {
	gatherers := make(map[string]map[string]gatheringdom.Gatherer)
	for _, reg := range b.pending {
		versioned, ok := gatherers[reg.name]
		if !ok {
			versioned = make(map[string]gatheringdom.Gatherer)
			gatherers[reg.name] = versioned
		}
		versioned[reg.version] = reg.gatherer
	}
	return &Registry{gatherers: gatherers}
}
