package events

// Wire payloads for the recognized event types. Field sets are owned by the
// checks orchestrator; keep them additive.

// FactRequestV1 names one fact a gatherer must produce for a check
type FactRequestV1 struct {
	Argument string `json:"argument"`
	CheckID  string `json:"check_id" validate:"required"`
	Gatherer string `json:"gatherer" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// TargetV1 is one agent's slice of a broadcast execution request
type TargetV1 struct {
	AgentID      string          `json:"agent_id" validate:"required"`
	FactRequests []FactRequestV1 `json:"fact_requests" validate:"dive"`
}

// FactsGatheringRequestedV1 is the payload of FactsGatheringRequestedType
type FactsGatheringRequestedV1 struct {
	ExecutionID string     `json:"execution_id" validate:"required"`
	GroupID     string     `json:"group_id" validate:"required"`
	Targets     []TargetV1 `json:"targets" validate:"dive"`
}

// FactV1 is one gathered fact or its per-fact error
type FactV1 struct {
	Name    string `json:"name"`
	CheckID string `json:"check_id"`
	Value   any    `json:"value,omitempty"`
	Error   string `json:"error,omitempty"`
}

// FactsGatheredV1 is the payload of FactsGatheredType
type FactsGatheredV1 struct {
	AgentID     string   `json:"agent_id"`
	ExecutionID string   `json:"execution_id"`
	GroupID     string   `json:"group_id"`
	Facts       []FactV1 `json:"facts"`
}
