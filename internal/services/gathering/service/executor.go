package service

import (
	"context"
	"sort"
	"sync"

	"factsagent/internal/platform/logger"
	"factsagent/internal/services/gathering/domain"
)

// execute resolves each bucket's gatherer and invokes it, bounded by the
// worker semaphore. A failing bucket becomes per-fact errors and never aborts
// its siblings; the merged outcome goes to the publisher. Returns nil once
// the event was decoded and addressed: per-gatherer failures are
// observability, not delivery failures
func (d *Dispatcher) execute(ctx context.Context, req domain.FactsGatheringRequest) error {
	log := logger.C(ctx)

	names := make([]string, 0, len(req.FactsRequestsByGatherer))
	for name := range req.FactsRequestsByGatherer {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([][]domain.Fact, len(names))

	sem := make(chan struct{}, d.workers)
	wg := sync.WaitGroup{}
	for i, name := range names {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, name string) {
			defer func() { <-sem; wg.Done() }()
			out[i] = d.runBucket(ctx, req, name)
		}(i, name)
	}
	wg.Wait()

	gathered := domain.GatheredFacts{
		AgentID:     d.agentID,
		ExecutionID: req.ExecutionID,
		GroupID:     req.GroupID,
	}
	for _, facts := range out {
		gathered.Facts = append(gathered.Facts, facts...)
	}

	if d.publisher == nil {
		log.Debug().Int("facts", len(gathered.Facts)).Msg("no publisher wired, dropping gathered facts")
		return nil
	}
	if err := d.publisher.PublishFactsGathered(ctx, gathered); err != nil {
		log.Error().Err(err).Msg("failed to publish gathered facts")
		return err
	}
	log.Info().Int("facts", len(gathered.Facts)).Msg("gathered facts published")
	return nil
}

// runBucket invokes one gatherer with its slice of the request.
// Resolution or gather failures degrade to per-fact errors
func (d *Dispatcher) runBucket(ctx context.Context, req domain.FactsGatheringRequest, name string) []domain.Fact {
	log := logger.C(ctx)
	bucket := req.FactsRequestsByGatherer[name]

	g, err := d.resolver.Resolve(name)
	if err != nil {
		log.Error().Err(err).Str("gatherer", name).Msg("cannot resolve gatherer")
		return faultBucket(bucket, err)
	}

	sub := domain.FactsGatheringRequest{
		ExecutionID:             req.ExecutionID,
		GroupID:                 req.GroupID,
		FactsRequestsByGatherer: map[string][]domain.FactRequest{name: bucket},
	}
	gathered, err := g.Gather(ctx, sub)
	if err != nil {
		log.Error().Err(err).Str("gatherer", name).Msg("gatherer run failed")
		return faultBucket(bucket, err)
	}
	return gathered.Facts
}

// faultBucket turns a whole-bucket failure into one errored Fact per request
func faultBucket(bucket []domain.FactRequest, err error) []domain.Fact {
	facts := make([]domain.Fact, 0, len(bucket))
	for _, fr := range bucket {
		facts = append(facts, domain.Fact{
			Name:    fr.Name,
			CheckID: fr.CheckID,
			Error:   err.Error(),
		})
	}
	return facts
}
