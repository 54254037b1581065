package grid

import (
	"errors"
	"fmt"
)

// Kind is what occupies a cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindSolid
	KindAgent
	KindPathStart
	KindPathHoriz
	KindPathVert
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindSolid:
		return "solid"
	case KindAgent:
		return "agent"
	case KindPathStart:
		return "path-start"
	case KindPathHoriz:
		return "path-horiz"
	case KindPathVert:
		return "path-vert"
	default:
		return "unknown"
	}
}

// Numeric cell codes. They only exist at the boundary with the renderer
// and config files; everything inside the simulation works with Cell values.
const (
	CodeEmpty     = 0
	CodeSolid     = 1
	CodePathStart = 200
	CodePathHoriz = 201
	CodePathVert  = 202
	CodeAgent     = 255 // plus the facing index
	maxFacing     = 6
)

// ErrUnknownCode is returned when a numeric code has no cell meaning.
var ErrUnknownCode = errors.New("grid: unknown cell code")

// Cell is a tagged cell value. Facing is only meaningful for KindAgent and
// holds the heading index (1..6, 0 = none) so the renderer can draw it.
// Cell is comparable, which CompareAndSwap relies on.
type Cell struct {
	Kind   Kind
	Facing uint8
}

// Empty is the vacant cell.
func Empty() Cell { return Cell{Kind: KindEmpty} }

// Solid is a static obstacle.
func Solid() Cell { return Cell{Kind: KindSolid} }

// Agent returns an occupant cell tagged with a facing index.
func Agent(facing uint8) Cell { return Cell{Kind: KindAgent, Facing: facing} }

// IsEmpty reports whether the cell is vacant.
func (c Cell) IsEmpty() bool { return c.Kind == KindEmpty }

// Code returns the numeric serialization of the cell.
func (c Cell) Code() int {
	switch c.Kind {
	case KindSolid:
		return CodeSolid
	case KindAgent:
		return CodeAgent + int(c.Facing)
	case KindPathStart:
		return CodePathStart
	case KindPathHoriz:
		return CodePathHoriz
	case KindPathVert:
		return CodePathVert
	default:
		return CodeEmpty
	}
}

// CellFromCode parses a numeric code.
func CellFromCode(code int) (Cell, error) {
	switch {
	case code == CodeEmpty:
		return Empty(), nil
	case code == CodeSolid:
		return Solid(), nil
	case code == CodePathStart:
		return Cell{Kind: KindPathStart}, nil
	case code == CodePathHoriz:
		return Cell{Kind: KindPathHoriz}, nil
	case code == CodePathVert:
		return Cell{Kind: KindPathVert}, nil
	case code >= CodeAgent && code <= CodeAgent+maxFacing:
		return Agent(uint8(code - CodeAgent)), nil
	default:
		return Cell{}, fmt.Errorf("%w: %d", ErrUnknownCode, code)
	}
}

// String returns a short description of the cell.
func (c Cell) String() string {
	if c.Kind == KindAgent {
		return fmt.Sprintf("agent/%d", c.Facing)
	}
	return c.Kind.String()
}
