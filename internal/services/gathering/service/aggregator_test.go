package service

import (
	"reflect"
	"testing"

	"factsagent/internal/services/gathering/domain"
)

func req(gatherer, name string) domain.FactRequest {
	return domain.FactRequest{
		Argument: name,
		CheckID:  "check_1",
		Gatherer: gatherer,
		Name:     name,
	}
}

func TestAggregateRequestsGroupsByGatherer(t *testing.T) {
	targets := []domain.GatheringTarget{
		{
			AgentID:      "agent_1",
			FactRequests: []domain.FactRequest{req("disk", "size"), req("disk", "free")},
		},
		{
			AgentID:      "agent_1",
			FactRequests: []domain.FactRequest{req("disk", "mount"), req("cpu", "cores")},
		},
	}

	got := AggregateRequests(targets, "exec1", "group1")

	if got.ExecutionID != "exec1" || got.GroupID != "group1" {
		t.Fatalf("ids = (%q, %q), want (exec1, group1)", got.ExecutionID, got.GroupID)
	}
	wantDisk := []domain.FactRequest{req("disk", "size"), req("disk", "free"), req("disk", "mount")}
	if !reflect.DeepEqual(got.FactsRequestsByGatherer["disk"], wantDisk) {
		t.Fatalf("disk bucket = %v, want %v", got.FactsRequestsByGatherer["disk"], wantDisk)
	}
	wantCPU := []domain.FactRequest{req("cpu", "cores")}
	if !reflect.DeepEqual(got.FactsRequestsByGatherer["cpu"], wantCPU) {
		t.Fatalf("cpu bucket = %v, want %v", got.FactsRequestsByGatherer["cpu"], wantCPU)
	}
	if len(got.FactsRequestsByGatherer) != 2 {
		t.Fatalf("bucket count = %d, want 2", len(got.FactsRequestsByGatherer))
	}
}

// Partition law: the union of all buckets equals the multiset of all input
// requests; each request lands only in its own gatherer's bucket
func TestAggregateRequestsPartitionLaw(t *testing.T) {
	targets := []domain.GatheringTarget{
		{AgentID: "agent_1", FactRequests: []domain.FactRequest{
			req("disk", "size"), req("cpu", "cores"), req("disk", "size"), // duplicate kept
		}},
		{AgentID: "agent_1", FactRequests: []domain.FactRequest{
			req("mem", "total"), req("disk", "free"),
		}},
	}

	got := AggregateRequests(targets, "exec", "group")

	input := map[domain.FactRequest]int{}
	total := 0
	for _, tg := range targets {
		for _, fr := range tg.FactRequests {
			input[fr]++
			total++
		}
	}

	output := map[domain.FactRequest]int{}
	outTotal := 0
	for gatherer, bucket := range got.FactsRequestsByGatherer {
		for _, fr := range bucket {
			if fr.Gatherer != gatherer {
				t.Fatalf("request %v found in bucket %q", fr, gatherer)
			}
			output[fr]++
			outTotal++
		}
	}

	if outTotal != total {
		t.Fatalf("output count = %d, want %d", outTotal, total)
	}
	if !reflect.DeepEqual(input, output) {
		t.Fatalf("multisets differ: input %v, output %v", input, output)
	}
}

func TestAggregateRequestsEmptyTargets(t *testing.T) {
	got := AggregateRequests(nil, "exec", "group")
	if len(got.FactsRequestsByGatherer) != 0 {
		t.Fatalf("expected no buckets, got %v", got.FactsRequestsByGatherer)
	}
}
