// Package domain defines the core types and ports for fact gathering
package domain

// FactRequest identifies one fact to collect, the gatherer that must produce
// it, and the check it belongs to. Immutable value, compared structurally
type FactRequest struct {
	Argument string
	CheckID  string
	Gatherer string
	Name     string
}

// GatheringTarget is one agent's slice of a broadcast execution request
type GatheringTarget struct {
	AgentID      string
	FactRequests []FactRequest
}

// FactsGatheringRequest is one execution's fact requests for the local agent,
// partitioned by gatherer name. Every request of the matching targets appears
// in exactly one bucket, keyed by its own Gatherer field; value order is the
// original relative order across targets
type FactsGatheringRequest struct {
	ExecutionID             string
	GroupID                 string
	FactsRequestsByGatherer map[string][]FactRequest
}

// Fact is a single collected value or its per-fact error
type Fact struct {
	Name    string
	CheckID string
	Value   any
	Error   string
}

// GatheredFacts is the outcome of running one execution's buckets
type GatheredFacts struct {
	AgentID     string
	ExecutionID string
	GroupID     string
	Facts       []Fact
}
