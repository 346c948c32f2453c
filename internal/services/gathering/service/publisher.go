package service

import (
	"context"

	perr "factsagent/internal/platform/errors"
	"factsagent/internal/platform/events"
	"factsagent/internal/services/gathering/domain"
)

// Sender is the narrow transport surface the publisher needs (platform/bus
// Publisher satisfies it)
type Sender interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// EventPublisher frames GatheredFacts into a FactsGathered envelope and sends
// it on the bus. Implements domain.PublisherPort
type EventPublisher struct {
	Bus        Sender
	Source     string
	RoutingKey string
}

// PublishFactsGathered satisfies domain.PublisherPort
func (p *EventPublisher) PublishFactsGathered(ctx context.Context, facts domain.GatheredFacts) error {
	wire := events.FactsGatheredV1{
		AgentID:     facts.AgentID,
		ExecutionID: facts.ExecutionID,
		GroupID:     facts.GroupID,
		Facts:       make([]events.FactV1, 0, len(facts.Facts)),
	}
	for _, f := range facts.Facts {
		wire.Facts = append(wire.Facts, events.FactV1{
			Name:    f.Name,
			CheckID: f.CheckID,
			Value:   f.Value,
			Error:   f.Error,
		})
	}

	raw, err := events.Marshal(events.FactsGatheredType, p.Source, wire)
	if err != nil {
		return err
	}
	if err := p.Bus.Publish(ctx, p.RoutingKey, raw); err != nil {
		return perr.Wrap(err, perr.ErrorCodePublish, "cannot publish gathered facts")
	}
	return nil
}
