package service

import (
	"factsagent/internal/services/gathering/domain"
)

// AggregateRequests flattens the targets' fact requests, preserving target
// order then within-target order, and groups them by gatherer name. Requests
// are never dropped, reordered within their bucket, or deduplicated; two
// structurally identical requests both appear. Pure and total
func AggregateRequests(
	targets []domain.GatheringTarget,
	executionID, groupID string,
) domain.FactsGatheringRequest {
	buckets := make(map[string][]domain.FactRequest)
	for _, t := range targets {
		for _, fr := range t.FactRequests {
			buckets[fr.Gatherer] = append(buckets[fr.Gatherer], fr)
		}
	}
	return domain.FactsGatheringRequest{
		ExecutionID:             executionID,
		GroupID:                 groupID,
		FactsRequestsByGatherer: buckets,
	}
}
