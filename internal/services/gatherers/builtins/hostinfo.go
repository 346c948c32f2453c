package builtins

import (
	"context"
	"os"
	"runtime"

	"factsagent/internal/services/gathering/domain"
)

// HostInfo gathers basic host facts selected by Argument:
// hostname | os | arch | num_cpu
type HostInfo struct{}

// NewHostInfo returns the hostinfo gatherer
func NewHostInfo() *HostInfo { return &HostInfo{} }

// Name satisfies domain.Gatherer
func (g *HostInfo) Name() string { return "hostinfo" }

// Gather satisfies domain.Gatherer
func (g *HostInfo) Gather(_ context.Context, req domain.FactsGatheringRequest) (domain.GatheredFacts, error) {
	out := domain.GatheredFacts{ExecutionID: req.ExecutionID, GroupID: req.GroupID}
	for _, bucket := range req.FactsRequestsByGatherer {
		for _, fr := range bucket {
			fact := domain.Fact{Name: fr.Name, CheckID: fr.CheckID}
			switch fr.Argument {
			case "hostname":
				h, err := os.Hostname()
				if err != nil {
					fact.Error = err.Error()
				} else {
					fact.Value = h
				}
			case "os":
				fact.Value = runtime.GOOS
			case "arch":
				fact.Value = runtime.GOARCH
			case "num_cpu":
				fact.Value = runtime.NumCPU()
			default:
				fact.Error = "unknown hostinfo argument " + fr.Argument
			}
			out.Facts = append(out.Facts, fact)
		}
	}
	return out, nil
}
