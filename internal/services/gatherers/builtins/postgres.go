package builtins

import (
	"context"

	"factsagent/internal/services/gathering/domain"

	"github.com/jackc/pgx/v5"
)

// Querier is the narrow pgx surface the postgres gatherer needs
// (*pgxpool.Pool satisfies it); seam for tests
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres gathers server settings from pg_settings; the fact Argument names
// the setting
type Postgres struct {
	db Querier
}

// NewPostgres returns the postgres gatherer backed by db
func NewPostgres(db Querier) *Postgres { return &Postgres{db: db} }

// Name satisfies domain.Gatherer
func (g *Postgres) Name() string { return "postgres" }

// Gather satisfies domain.Gatherer
func (g *Postgres) Gather(ctx context.Context, req domain.FactsGatheringRequest) (domain.GatheredFacts, error) {
	out := domain.GatheredFacts{ExecutionID: req.ExecutionID, GroupID: req.GroupID}
	for _, bucket := range req.FactsRequestsByGatherer {
		for _, fr := range bucket {
			fact := domain.Fact{Name: fr.Name, CheckID: fr.CheckID}
			var setting string
			err := g.db.QueryRow(ctx,
				`SELECT setting FROM pg_settings WHERE name = $1`, fr.Argument,
			).Scan(&setting)
			switch {
			case err == pgx.ErrNoRows:
				fact.Error = "unknown postgres setting " + fr.Argument
			case err != nil:
				fact.Error = err.Error()
			default:
				fact.Value = setting
			}
			out.Facts = append(out.Facts, fact)
		}
	}
	return out, nil
}
