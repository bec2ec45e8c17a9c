package vecmath

import "fmt"

// Pair is an ordered coordinate pair, structurally interchangeable
// with Vec2. It is the interop seam for callers that represent points
// or offsets as plain pairs rather than as the vector type.
type Pair [2]float32

// XY implements Coord.
func (p Pair) XY() (float32, float32) {
	return p[0], p[1]
}

// Vec2 converts the pair to a vector. The conversion is lossless in
// both directions.
func (p Pair) Vec2() Vec2 {
	return Vec2{X: p[0], Y: p[1]}
}

// Add accumulates other into p and returns p for chaining.
func (p *Pair) Add(other Coord) *Pair {
	x, y := other.XY()
	p[0] += x
	p[1] += y
	return p
}

// Sub subtracts other from p and returns p for chaining.
func (p *Pair) Sub(other Coord) *Pair {
	x, y := other.XY()
	p[0] -= x
	p[1] -= y
	return p
}

// Equals reports whether p and other match within Epsilon per
// component.
func (p Pair) Equals(other Coord) bool {
	x, y := other.XY()
	return approxEq(p[0], x) && approxEq(p[1], y)
}

func (p Pair) String() string {
	return fmt.Sprintf("(%g, %g)", p[0], p[1])
}
