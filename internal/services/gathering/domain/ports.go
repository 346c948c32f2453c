package domain

import "context"

// Gatherer is the capability contract for one collection backend.
// Identity is the (name, version) pair it was registered under, not the
// string returned by Name(); the two are not kept in sync
type Gatherer interface {
	Name() string
	Gather(ctx context.Context, req FactsGatheringRequest) (GatheredFacts, error)
}

// ResolverPort maps a "<name>" or "<name>@<version>" reference to a shared
// gatherer handle. Safe for concurrent use; resolution never mutates state
type ResolverPort interface {
	Resolve(ref string) (Gatherer, error)
}

// PublisherPort hands gathered facts back to the orchestrator
type PublisherPort interface {
	PublishFactsGathered(ctx context.Context, facts GatheredFacts) error
}

// HandlerPort is the single inbound operation boundary, invoked once per
// delivered message by the message adapter
type HandlerPort interface {
	HandleEvent(ctx context.Context, raw []byte) error
}

// Ports are dependencies injected into the gathering module
type Ports struct {
	Resolver  ResolverPort  // required
	Publisher PublisherPort // optional; nil drops gathered facts after logging
}
