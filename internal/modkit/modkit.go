package modkit

import (
	phttp "factsagent/internal/platform/net/http"
)

// Module is the common surface for agent modules that can mount ops routes
// and expose ports; keep this tiny so modules stay decoupled
type Module interface {
	// MountRoutes mounts ops HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)
	// Ports returns a module specific port set interface for cross wiring
	Ports() any

	// Name returns the module name
	Name() string
}
