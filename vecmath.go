// Package vecmath provides a 2D vector value type for geometry,
// physics, and graphics code, interoperable with plain coordinate
// pairs: anywhere an operation takes a Coord, a Vec2 and a Pair are
// accepted interchangeably, in either operand order.
package vecmath

// Epsilon is the absolute per-component tolerance used by Equals.
// Equality is approximate to absorb float32 rounding from the
// trigonometric operations; downstream comparisons rely on this
// tolerance rather than exact bit equality.
const Epsilon = 1e-6

// Coord is anything with x/y components: a Vec2 or a Pair.
type Coord interface {
	XY() (x, y float32)
}

// From converts any Coord to a Vec2. The conversion is lossless.
func From(c Coord) Vec2 {
	x, y := c.XY()
	return Vec2{X: x, Y: y}
}

// Add returns a + b without modifying either operand.
func Add(a, b Coord) Vec2 {
	ax, ay := a.XY()
	bx, by := b.XY()
	return Vec2{X: ax + bx, Y: ay + by}
}

// Sub returns a - b without modifying either operand.
func Sub(a, b Coord) Vec2 {
	ax, ay := a.XY()
	bx, by := b.XY()
	return Vec2{X: ax - bx, Y: ay - by}
}

func approxEq(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < Epsilon
}
