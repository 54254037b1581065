package world

import (
	"strings"
	"testing"

	"github.com/vovakirdan/turtlesim/internal/core"
	"github.com/vovakirdan/turtlesim/internal/grid"
)

// ascii renders solid cells as '#' and everything else as '.'.
func ascii(g *grid.Grid) string {
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if cell, _ := g.Get(core.V(x, y)); cell.Kind == grid.KindSolid {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func TestGenerateTunnel(t *testing.T) {
	center := core.VF(6, 2)
	g, err := Generate(Params{
		Width:        12,
		Height:       10,
		SurfaceDepth: 2,
		TunnelCenter: &center,
		TunnelWidth:  2.5,
	})
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	expected := strings.Join([]string{
		"............",
		"............",
		"##..#####..#",
		"##..#####..#",
		"##...###...#",
		"###.......##",
		"####.....###",
		"############",
		"############",
		"############",
	}, "\n") + "\n"

	if got := ascii(g); got != expected {
		t.Errorf("tunnel layout mismatch:\ngot:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestGenerateDefaultCenter(t *testing.T) {
	p := Params{Width: 12, Height: 10, SurfaceDepth: 2, TunnelWidth: 2.5}
	if c := p.Center(); c != core.VF(6, 2) {
		t.Errorf("Center() = %v, expected (6,2)", c)
	}

	explicit := core.VF(6, 2)
	a, _ := Generate(p)
	p.TunnelCenter = &explicit
	b, _ := Generate(p)
	if !a.Equal(b) {
		t.Error("default center should match the explicit (width/2, surface) center")
	}
}

func TestGenerateIsPure(t *testing.T) {
	p := Params{Width: 20, Height: 15, SurfaceDepth: 3, TunnelWidth: 3}
	a, _ := Generate(p)
	b, _ := Generate(p)
	if !a.Equal(b) {
		t.Error("same params must produce the same grid")
	}
}

func TestGenerateSurfaceAlwaysEmpty(t *testing.T) {
	g, err := Generate(Params{Width: 8, Height: 8, SurfaceDepth: 3, TunnelWidth: 0.5})
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 8; x++ {
			if !g.IsEmpty(core.V(x, y)) {
				t.Errorf("surface cell (%d,%d) should be empty", x, y)
			}
		}
	}
}

func TestGenerateWallsAndFlat(t *testing.T) {
	g, err := Generate(Params{
		Width:  6,
		Height: 4,
		Flat:   true,
		Walls:  []core.Rect{core.NewRect(2, 0, 1, 4)},
	})
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	expected := "..#...\n..#...\n..#...\n..#...\n"
	if got := ascii(g); got != expected {
		t.Errorf("flat layout mismatch:\ngot:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestGenerateInvalidSize(t *testing.T) {
	if _, err := Generate(Params{Width: 0, Height: 5}); err == nil {
		t.Error("zero width should fail")
	}
	if _, err := Generate(Params{Width: 5, Height: -1}); err == nil {
		t.Error("negative height should fail")
	}
}
