package core

import (
	"fmt"
	"math"
	"sort"
)

// Number is the set of component types a Vec2 can carry.
// Grid coordinates use int; measurements (tunnel centers, distances) use float64.
type Number interface {
	~int | ~float64
}

// Vec2 is an immutable 2D vector. Every operation returns a new value.
// X increases to the right, Y increases downward (screen coordinates).
type Vec2[T Number] struct {
	X T
	Y T
}

// Vector2 is the integer vector used for grid coordinates and moves.
type Vector2 = Vec2[int]

// VectorF is the real-valued vector used for measurements.
type VectorF = Vec2[float64]

// V is a convenience constructor for an integer vector.
func V(x, y int) Vector2 {
	return Vector2{X: x, Y: y}
}

// VF is a convenience constructor for a real-valued vector.
func VF(x, y float64) VectorF {
	return VectorF{X: x, Y: y}
}

// Axis labels a vector component.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// String returns the axis label.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "?"
	}
}

// AxisValue pairs a component with its axis label.
type AxisValue[T Number] struct {
	Axis  Axis
	Value T
}

// String returns a string representation of the vector.
func (v Vec2[T]) String() string {
	return fmt.Sprintf("(%v,%v)", v.X, v.Y)
}

// Add returns the component-wise sum.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Dot returns the dot product.
func (v Vec2[T]) Dot(o Vec2[T]) T {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the 2D cross product: the signed area of the
// parallelogram spanned by v and o.
func (v Vec2[T]) Cross(o Vec2[T]) T {
	return v.X*o.Y - o.X*v.Y
}

// DistanceSquared returns the squared Euclidean distance to o.
func (v Vec2[T]) DistanceSquared(o Vec2[T]) T {
	d := v.Sub(o)
	return d.Dot(d)
}

// Distance returns the Euclidean distance to o.
// It goes through a square root, so don't compare it for exact equality.
func (v Vec2[T]) Distance(o Vec2[T]) float64 {
	return math.Sqrt(float64(v.DistanceSquared(o)))
}

// IsZero reports whether both components are zero.
func (v Vec2[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Float converts the vector to its real-valued form.
func (v Vec2[T]) Float() VectorF {
	return VectorF{X: float64(v.X), Y: float64(v.Y)}
}

// IsOnSegment reports whether v lies on the closed segment between a and b.
// Endpoints count as on the segment.
//
// A degenerate segment (a == b) holds only that point. Axis-aligned segments
// are checked by interval containment on the free axis. Everything else uses
// collinearity (zero cross product) plus a projection bound on the dot product.
func (v Vec2[T]) IsOnSegment(a, b Vec2[T]) bool {
	if a == b {
		return v == a
	}
	if a.X == b.X && b.X == v.X {
		return between(v.Y, a.Y, b.Y)
	}
	if a.Y == b.Y && b.Y == v.Y {
		return between(v.X, a.X, b.X)
	}

	line := a.Sub(b)
	self := v.Sub(b)
	if line.Cross(self) != 0 {
		return false
	}
	proj := line.Dot(self)
	return proj >= 0 && proj <= a.DistanceSquared(b)
}

// AxisRank returns the components ordered by descending absolute magnitude.
// Ties keep X ahead of Y.
func (v Vec2[T]) AxisRank() []AxisValue[T] {
	rank := []AxisValue[T]{
		{Axis: AxisX, Value: v.X},
		{Axis: AxisY, Value: v.Y},
	}
	sort.SliceStable(rank, func(i, j int) bool {
		return Abs(rank[i].Value) > Abs(rank[j].Value)
	})
	return rank
}

// DominantAxis returns the component with the largest magnitude.
func (v Vec2[T]) DominantAxis() AxisValue[T] {
	return v.AxisRank()[0]
}

// OrthoNormalsByRank returns one unit vector per axis, most significant axis
// first. Each carries the sign of the original component on its own axis and
// zero elsewhere, so a zero component yields the zero vector.
func (v Vec2[T]) OrthoNormalsByRank() []Vec2[T] {
	rank := v.AxisRank()
	normals := make([]Vec2[T], 0, len(rank))
	for _, av := range rank {
		normals = append(normals, AxisUnit(av.Axis, Sign(av.Value)))
	}
	return normals
}

// AxisUnit builds a vector that is n on the given axis and zero on the other.
func AxisUnit[T Number](axis Axis, n T) Vec2[T] {
	if axis == AxisY {
		return Vec2[T]{Y: n}
	}
	return Vec2[T]{X: n}
}

// Sign clamps n to -1, 0 or 1.
func Sign[T Number](n T) T {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// Abs returns the absolute value of n.
func Abs[T Number](n T) T {
	if n < 0 {
		return -n
	}
	return n
}

func between[T Number](v, a, b T) bool {
	if a > b {
		a, b = b, a
	}
	return v >= a && v <= b
}
