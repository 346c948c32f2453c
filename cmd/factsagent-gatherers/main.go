// Command factsagent-gatherers prints the gatherers the agent would register,
// one line per name with its versions
package main

import (
	"context"
	"fmt"

	"factsagent/internal/modkit"
	"factsagent/internal/modkit/module"
	"factsagent/internal/platform/config"
	"factsagent/internal/platform/logger"
	"factsagent/internal/platform/store"

	gatherersdom "factsagent/internal/services/gatherers/domain"
	gatherersmod "factsagent/internal/services/gatherers/module"
)

func main() {
	root := config.New()
	l := logger.Get()

	var st *store.Store
	if stCfg := store.FromConfig(root); stCfg.URL != "" {
		var err error
		st, err = store.Open(context.Background(), stCfg)
		if err != nil {
			l.Panic().Err(err).Msg("store.Open failed")
		}
		defer st.Close()
	}

	gm := gatherersmod.New(modkit.Deps{Cfg: root, Log: *l, PG: st}, nil)
	for _, line := range module.MustPortsOf[gatherersdom.InspectorPort](gm).List() {
		fmt.Println(line)
	}
}
