// Package world generates the initial grid for a simulation: an open
// surface band with an arc-shaped tunnel carved into solid ground.
package world

import (
	"fmt"

	"github.com/vovakirdan/turtlesim/internal/core"
	"github.com/vovakirdan/turtlesim/internal/grid"
)

// Params controls world generation. Generate is a pure function of Params.
type Params struct {
	Width        int
	Height       int
	SurfaceDepth int          // rows above this are always empty
	TunnelCenter *core.VectorF // nil means (Width/2, SurfaceDepth)
	TunnelWidth  float64      // inner radius; the tunnel spans (w, 2w)
	Walls        []core.Rect  // stamped solid after carving
	Flat         bool         // skip the ground entirely (open field)
}

// Center returns the tunnel center actually used.
func (p Params) Center() core.VectorF {
	if p.TunnelCenter != nil {
		return *p.TunnelCenter
	}
	return core.VF(float64(p.Width)/2, float64(p.SurfaceDepth))
}

// Generate builds a grid from p.
//
// Rows with y < SurfaceDepth are empty. Below the surface a cell is empty
// iff its distance d to the tunnel center satisfies TunnelWidth < d <
// 2*TunnelWidth, otherwise it is solid. Wall rectangles are applied last.
func Generate(p Params) (*grid.Grid, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("world: invalid size %dx%d", p.Width, p.Height)
	}

	g := grid.New(p.Width, p.Height)
	if !p.Flat {
		center := p.Center()
		for y := p.SurfaceDepth; y < p.Height; y++ {
			if y < 0 {
				continue
			}
			for x := 0; x < p.Width; x++ {
				if !inTunnel(center.Distance(core.V(x, y).Float()), p.TunnelWidth) {
					g.Set(core.V(x, y), grid.Solid(), grid.WriteForce)
				}
			}
		}
	}

	for _, wall := range p.Walls {
		g.Fill(wall, grid.Solid())
	}
	return g, nil
}

func inTunnel(dist, width float64) bool {
	return width < dist && dist < width*2
}
