// Package config provides YAML-based scenario configuration loading and
// validation for the simulator.
package config

import (
	"github.com/vovakirdan/turtlesim/internal/core"
	"github.com/vovakirdan/turtlesim/internal/world"
)

// SimConfig contains all configuration for one scenario.
type SimConfig struct {
	Name   string       `yaml:"name" json:"name" jsonschema:"description=Human readable scenario title"`
	World  WorldConfig  `yaml:"world" json:"world"`
	Turtle TurtleConfig `yaml:"turtle" json:"turtle"`
	Timing TimingConfig `yaml:"timing" json:"timing"`
	Render RenderConfig `yaml:"render" json:"render"`
}

// Point is an integer grid coordinate.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Vector converts the point to a grid vector.
func (p Point) Vector() core.Vector2 {
	return core.V(p.X, p.Y)
}

// PointF is a fractional world position.
type PointF struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Rect is a wall rectangle in grid cells.
type Rect struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
	W int `yaml:"w" json:"w" jsonschema:"minimum=1"`
	H int `yaml:"h" json:"h" jsonschema:"minimum=1"`
}

// Bounds returns the wall as a grid rectangle.
func (r Rect) Bounds() core.Rect {
	return core.NewRect(r.X, r.Y, r.W, r.H)
}

// WorldConfig defines the generated grid.
type WorldConfig struct {
	Width        int     `yaml:"width" json:"width" jsonschema:"minimum=1"`
	Height       int     `yaml:"height" json:"height" jsonschema:"minimum=1"`
	SurfaceDepth int     `yaml:"surface_depth" json:"surface_depth" jsonschema:"description=Rows above this depth are always empty"`
	TunnelCenter *PointF `yaml:"tunnel_center,omitempty" json:"tunnel_center,omitempty" jsonschema:"description=Defaults to width/2 on the surface row"`
	TunnelWidth  float64 `yaml:"tunnel_width" json:"tunnel_width" jsonschema:"minimum=0"`
	Flat         bool    `yaml:"flat" json:"flat" jsonschema:"description=Skip the ground and tunnel entirely"`
	Walls        []Rect  `yaml:"walls,omitempty" json:"walls,omitempty"`
}

// TurtleConfig defines the agent.
type TurtleConfig struct {
	Spawn  Point   `yaml:"spawn" json:"spawn"`
	Offset Point   `yaml:"offset" json:"offset" jsonschema:"description=Destination relative to spawn"`
	Speed  float64 `yaml:"speed" json:"speed" jsonschema:"description=Turtle updates per second"`
}

// Destination returns the absolute destination cell.
func (t TurtleConfig) Destination() core.Vector2 {
	return t.Spawn.Vector().Add(t.Offset.Vector())
}

// TimingConfig defines the driver clock.
type TimingConfig struct {
	TickRate   int `yaml:"tick_rate" json:"tick_rate" jsonschema:"description=Frames per second,minimum=1"`
	StallLimit int `yaml:"stall_limit" json:"stall_limit" jsonschema:"description=Updates without moving before the run counts as stalled or zero to disable,minimum=0"`
	MaxUpdates int `yaml:"max_updates" json:"max_updates" jsonschema:"description=Abort after this many turtle updates or zero for no limit,minimum=0"`
}

// RenderConfig defines presentation defaults.
type RenderConfig struct {
	ShowOverlay bool `yaml:"show_overlay" json:"show_overlay" jsonschema:"description=Draw the destination marker and trail"`
	ShowHUD     bool `yaml:"show_hud" json:"show_hud"`
}

// WorldParams converts the world section into generator parameters.
func (c SimConfig) WorldParams() world.Params {
	p := world.Params{
		Width:        c.World.Width,
		Height:       c.World.Height,
		SurfaceDepth: c.World.SurfaceDepth,
		TunnelWidth:  c.World.TunnelWidth,
		Flat:         c.World.Flat,
	}
	if tc := c.World.TunnelCenter; tc != nil {
		center := core.VF(tc.X, tc.Y)
		p.TunnelCenter = &center
	}
	for _, w := range c.World.Walls {
		p.Walls = append(p.Walls, w.Bounds())
	}
	return p
}

// MoveEveryTicks returns how many frames pass between turtle updates.
func (c SimConfig) MoveEveryTicks(tickRate int) int {
	if tickRate <= 0 {
		tickRate = c.Timing.TickRate
	}
	if c.Turtle.Speed <= 0 {
		return max(1, tickRate)
	}
	return max(1, int(float64(tickRate)/c.Turtle.Speed+0.5))
}
