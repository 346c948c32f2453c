package main

import (
	"context"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"factsagent/internal/modkit"
	"factsagent/internal/modkit/module"
	"factsagent/internal/platform/bus"
	"factsagent/internal/platform/config"
	"factsagent/internal/platform/logger"
	phttp "factsagent/internal/platform/net/http"
	"factsagent/internal/platform/net/middleware"
	"factsagent/internal/platform/store"

	gatheringdom "factsagent/internal/services/gathering/domain"
	gatheringmod "factsagent/internal/services/gathering/module"
	gatheringsvc "factsagent/internal/services/gathering/service"

	gatherersdom "factsagent/internal/services/gatherers/domain"
	gatherersmod "factsagent/internal/services/gatherers/module"

	"github.com/go-chi/chi/v5"
)

func main() {
	root := config.New()
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	agentID := root.Prefix("AGENT_").MustString("ID")

	// Postgres is optional; without it the postgres gatherer is not registered
	var st *store.Store
	if stCfg := store.FromConfig(root); stCfg.URL != "" {
		var err error
		st, err = store.Open(ctx, stCfg)
		if err != nil {
			l.Panic().Err(err).Msg("store.Open failed")
		}
		defer st.Close()
	}

	deps := modkit.Deps{
		Cfg: root,
		Log: *l,
		PG:  st,
	}

	// Registry is frozen before the agent starts consuming events
	gm := gatherersmod.New(deps, nil)
	for _, line := range module.MustPortsOf[gatherersdom.InspectorPort](gm).List() {
		l.Info().Str("gatherer", line).Msg("registered")
	}

	busCfg := bus.FromConfig(root)
	mq, err := bus.Connect(busCfg)
	if err != nil {
		l.Panic().Err(err).Msg("bus.Connect failed")
	}
	defer func() {
		if err := mq.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close bus")
		}
	}()

	hm := gatheringmod.New(
		deps,
		gatheringmod.Options{AgentID: agentID},
		modkit.WithPorts(gatheringdom.Ports{
			Resolver: module.MustPortsOf[gatheringdom.ResolverPort](gm),
			Publisher: &gatheringsvc.EventPublisher{
				Bus:        mq,
				Source:     "factsagent/" + agentID,
				RoutingKey: busCfg.PublishKey,
			},
		}),
	)

	// Register ports
	module.Register(gm.Name(), gm.Ports())
	module.Register(hm.Name(), hm.Ports())

	// Ops surface: health and registry inspection
	srv := phttp.NewServer(root, func(m *chi.Mux) {
		m.Use(middleware.Defaults()...)
	})
	r := srv.Router()
	r.Get("/healthz", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		phttp.RespondOK(w, map[string]string{"status": "ok", "agent_id": agentID})
	})
	gm.MountRoutes(r)
	hm.MountRoutes(r)
	go func() {
		if err := srv.Run(ctx); err != nil {
			l.Error().Err(err).Msg("ops server failed")
		}
	}()
	defer func() {
		if err := srv.Shutdown(context.Background()); err != nil {
			l.Error().Err(err).Msg("ops shutdown failed")
		}
	}()

	// Consume forever; ctrl+c to exit
	handler := module.MustPortsOf[gatheringdom.HandlerPort](hm)
	if err := mq.Consume(ctx, handler); err != nil {
		l.Fatal().Err(err).Msg("consume failed")
	}
}
