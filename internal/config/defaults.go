package config

import (
	_ "embed"
)

//go:embed defaults/tunnel.yaml
var defaultTunnelYAML []byte

//go:embed defaults/walled.yaml
var defaultWalledYAML []byte

//go:embed defaults/open.yaml
var defaultOpenYAML []byte

// DefaultTunnelConfig returns the canonical 12x10 tunnel scenario.
func DefaultTunnelConfig() SimConfig {
	return SimConfig{
		Name: "Tunnel",
		World: WorldConfig{
			Width:        12,
			Height:       10,
			SurfaceDepth: 2,
			TunnelCenter: &PointF{X: 6, Y: 2},
			TunnelWidth:  2.5,
		},
		Turtle: TurtleConfig{
			Spawn:  Point{X: 0, Y: 0},
			Offset: Point{X: 5, Y: 5},
			Speed:  1.0,
		},
		Timing: TimingConfig{
			TickRate:   30,
			StallLimit: 10,
		},
		Render: RenderConfig{
			ShowOverlay: true,
			ShowHUD:     true,
		},
	}
}

// DefaultWalledConfig returns the tunnel with its destination sealed off.
func DefaultWalledConfig() SimConfig {
	cfg := DefaultTunnelConfig()
	cfg.Name = "Walled Tunnel"
	cfg.World.Walls = []Rect{
		{X: 4, Y: 4, W: 3, H: 1},
		{X: 4, Y: 6, W: 3, H: 1},
		{X: 4, Y: 5, W: 1, H: 1},
		{X: 6, Y: 5, W: 1, H: 1},
	}
	cfg.Turtle.Speed = 2.0
	return cfg
}

// DefaultOpenConfig returns the flat 24x12 field.
func DefaultOpenConfig() SimConfig {
	return SimConfig{
		Name: "Open Field",
		World: WorldConfig{
			Width:  24,
			Height: 12,
			Flat:   true,
			Walls: []Rect{
				{X: 10, Y: 4, W: 2, H: 3},
				{X: 0, Y: 7, W: 3, H: 1},
				{X: 14, Y: 0, W: 1, H: 4},
			},
		},
		Turtle: TurtleConfig{
			Spawn:  Point{X: 18, Y: 2},
			Offset: Point{X: -14, Y: 7},
			Speed:  4.0,
		},
		Timing: TimingConfig{
			TickRate:   30,
			StallLimit: 10,
		},
		Render: RenderConfig{
			ShowOverlay: true,
			ShowHUD:     true,
		},
	}
}

// Default returns the hardcoded configuration for a scenario id.
func Default(id string) (SimConfig, bool) {
	switch id {
	case "tunnel":
		return DefaultTunnelConfig(), true
	case "walled":
		return DefaultWalledConfig(), true
	case "open":
		return DefaultOpenConfig(), true
	default:
		return SimConfig{}, false
	}
}

// GetDefaultYAML returns the embedded default YAML for a scenario.
func GetDefaultYAML(id string) []byte {
	switch id {
	case "tunnel":
		return defaultTunnelYAML
	case "walled":
		return defaultWalledYAML
	case "open":
		return defaultOpenYAML
	default:
		return nil
	}
}
