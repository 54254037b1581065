package sim

import (
	"github.com/vovakirdan/turtlesim/internal/config"
	"github.com/vovakirdan/turtlesim/internal/registry"
)

// Built-in scenario ids.
const (
	ScenarioTunnel = "tunnel"
	ScenarioWalled = "walled"
	ScenarioOpen   = "open"
)

func init() {
	registry.Register(ScenarioTunnel, func() registry.Scenario {
		return New(ScenarioTunnel, config.DefaultTunnelConfig())
	})
	registry.Register(ScenarioWalled, func() registry.Scenario {
		return New(ScenarioWalled, config.DefaultWalledConfig())
	})
	registry.Register(ScenarioOpen, func() registry.Scenario {
		return New(ScenarioOpen, config.DefaultOpenConfig())
	})
}
