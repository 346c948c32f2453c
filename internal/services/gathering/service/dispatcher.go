// Package service implements the gathering dispatcher: decide what, if
// anything, a raw event means for this agent, and run the matching buckets
package service

import (
	"context"

	perr "factsagent/internal/platform/errors"
	"factsagent/internal/platform/events"
	"factsagent/internal/platform/logger"
	"factsagent/internal/services/gathering/domain"
)

// Config for the dispatcher
type Config struct {
	AgentID string
	Workers int // concurrent gatherer invocations per event
}

// Dispatcher implements domain.HandlerPort. Stateless and immutable after
// construction; safe to invoke concurrently for independent events
type Dispatcher struct {
	agentID   string
	workers   int
	resolver  domain.ResolverPort
	publisher domain.PublisherPort
}

// New constructs a Dispatcher. An empty agent id is a configuration error;
// the agent cannot run without a valid identity
func New(cfg Config, ports domain.Ports) (*Dispatcher, error) {
	if cfg.AgentID == "" {
		return nil, perr.Configf("missing agent id, cannot create dispatcher")
	}
	if ports.Resolver == nil {
		return nil, perr.Configf("missing gatherers resolver, cannot create dispatcher")
	}
	w := cfg.Workers
	if w <= 0 {
		w = 4
	}
	return &Dispatcher{
		agentID:   cfg.AgentID,
		workers:   w,
		resolver:  ports.Resolver,
		publisher: ports.Publisher,
	}, nil
}

// HandleEvent decodes one raw envelope, filters the targets addressed to this
// agent, and runs the aggregated request. Unknown event types and events that
// address no local target are success paths
func (d *Dispatcher) HandleEvent(ctx context.Context, raw []byte) error {
	env, err := events.Decode(raw)
	if err != nil {
		return err
	}
	ctx = logger.WithEvent(ctx, env.ID, "")
	log := logger.C(ctx)

	if env.Type != events.FactsGatheringRequestedType {
		log.Warn().Str("event_type", env.Type).Msg("unrecognized event type, skipping")
		return nil
	}

	var payload events.FactsGatheringRequestedV1
	if err := events.DataFromEnvelope(env, &payload); err != nil {
		return err
	}
	ctx = logger.WithEvent(ctx, "", payload.ExecutionID)
	log = logger.C(ctx)

	targets := d.targetsForAgent(payload.Targets)
	if len(targets) == 0 {
		log.Info().
			Str("group_id", payload.GroupID).
			Str("agent_id", d.agentID).
			Msg("gathering request does not address this agent, skipping")
		return nil
	}

	req := AggregateRequests(targets, payload.ExecutionID, payload.GroupID)
	log.Info().
		Str("group_id", req.GroupID).
		Int("gatherers", len(req.FactsRequestsByGatherer)).
		Msg("gathering requested for this agent")

	return d.execute(ctx, req)
}

// targetsForAgent keeps the targets addressed to this agent, preserving
// original relative order
func (d *Dispatcher) targetsForAgent(wire []events.TargetV1) []domain.GatheringTarget {
	var out []domain.GatheringTarget
	for _, t := range wire {
		if t.AgentID != d.agentID {
			continue
		}
		reqs := make([]domain.FactRequest, 0, len(t.FactRequests))
		for _, fr := range t.FactRequests {
			reqs = append(reqs, domain.FactRequest{
				Argument: fr.Argument,
				CheckID:  fr.CheckID,
				Gatherer: fr.Gatherer,
				Name:     fr.Name,
			})
		}
		out = append(out, domain.GatheringTarget{AgentID: t.AgentID, FactRequests: reqs})
	}
	return out
}
