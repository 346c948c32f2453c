package module

import "factsagent/internal/platform/config"

// Options holds configuration settings for the gathering module
type Options struct {
	AgentID string
	Workers int
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	ag := cfg.Prefix("AGENT_")
	return Options{
		AgentID: ag.MayString("ID", ""),
		Workers: ag.MayInt("GATHER_WORKERS", 4),
	}
}
