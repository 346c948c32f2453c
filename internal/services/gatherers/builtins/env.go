// Package builtins ships the gatherers registered out of the box. Per-fact
// failures populate Fact.Error and never fail the whole bucket
package builtins

import (
	"context"
	"os"

	"factsagent/internal/services/gathering/domain"
)

// Env gathers environment variables; the fact Argument names the variable
type Env struct{}

// NewEnv returns the env gatherer
func NewEnv() *Env { return &Env{} }

// Name satisfies domain.Gatherer
func (g *Env) Name() string { return "env" }

// Gather satisfies domain.Gatherer
func (g *Env) Gather(_ context.Context, req domain.FactsGatheringRequest) (domain.GatheredFacts, error) {
	out := domain.GatheredFacts{ExecutionID: req.ExecutionID, GroupID: req.GroupID}
	for _, bucket := range req.FactsRequestsByGatherer {
		for _, fr := range bucket {
			fact := domain.Fact{Name: fr.Name, CheckID: fr.CheckID}
			if v, ok := os.LookupEnv(fr.Argument); ok {
				fact.Value = v
			} else {
				fact.Error = "environment variable " + fr.Argument + " not set"
			}
			out.Facts = append(out.Facts, fact)
		}
	}
	return out, nil
}
