package vecmath

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector. The zero value is the zero vector.
type Vec2 struct {
	X, Y float32
}

func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// XY implements Coord.
func (v Vec2) XY() (float32, float32) {
	return v.X, v.Y
}

// Pair converts the vector to its coordinate-pair form.
func (v Vec2) Pair() Pair {
	return Pair{v.X, v.Y}
}

// Add accumulates other into v and returns v for chaining.
func (v *Vec2) Add(other Coord) *Vec2 {
	x, y := other.XY()
	v.X += x
	v.Y += y
	return v
}

// Sub subtracts other from v and returns v for chaining.
func (v *Vec2) Sub(other Coord) *Vec2 {
	x, y := other.XY()
	v.X -= x
	v.Y -= y
	return v
}

// Scale multiplies both components by k.
func (v *Vec2) Scale(k float32) *Vec2 {
	v.X *= k
	v.Y *= k
	return v
}

// Normalize scales v to unit magnitude. A zero vector is left
// unchanged rather than dividing by zero.
func (v *Vec2) Normalize() *Vec2 {
	mag := v.Magnitude()
	if mag != 0 {
		v.Scale(1.0 / mag)
	}
	return v
}

// SetDirection points v at the angle rad, in radians from the positive
// x axis, preserving its magnitude. A zero vector is left unchanged.
func (v *Vec2) SetDirection(rad float32) *Vec2 {
	mag := v.Magnitude()
	if mag != 0 {
		sin, cos := math.Sincos(float64(rad))
		v.X = float32(cos) * mag
		v.Y = float32(sin) * mag
	}
	return v
}

// Rotate turns v by rad radians about the origin, preserving magnitude.
func (v *Vec2) Rotate(rad float32) *Vec2 {
	return v.SetDirection(v.Direction() + rad)
}

// RotateOver turns v by rad radians about an arbitrary pivot:
// translate to the pivot, rotate, translate back.
func (v *Vec2) RotateOver(origin Coord, rad float32) *Vec2 {
	return v.Sub(origin).Rotate(rad).Add(origin)
}

// PointTowards sets v's direction to the bearing from v to target,
// preserving v's magnitude. It does not move v to target.
func (v *Vec2) PointTowards(target Coord) *Vec2 {
	return v.SetDirection(Sub(target, *v).Direction())
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Coord) float32 {
	x, y := other.XY()
	return v.X*x + v.Y*y
}

// Cross returns the scalar 2D cross product of v and other, a signed
// area and orientation indicator.
func (v Vec2) Cross(other Coord) float32 {
	x, y := other.XY()
	return v.X*y - v.Y*x
}

// Magnitude returns the Euclidean length of v.
func (v Vec2) Magnitude() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// MagnitudeSq returns the squared magnitude without the sqrt.
func (v Vec2) MagnitudeSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Direction returns the angle in radians between v and the positive x
// axis. The direction of the zero vector is defined as 0; the check is
// explicit so the result never depends on the host atan2(0, 0).
func (v Vec2) Direction() float32 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	return float32(math.Atan2(float64(v.Y), float64(v.X)))
}

// Distance returns the Euclidean distance between v and other.
func (v Vec2) Distance(other Coord) float32 {
	return Sub(v, other).Magnitude()
}

// Lerp linearly interpolates between v and other by t.
func (v Vec2) Lerp(other Coord, t float32) Vec2 {
	x, y := other.XY()
	return Vec2{X: v.X + (x-v.X)*t, Y: v.Y + (y-v.Y)*t}
}

func (v Vec2) Negate() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Equals reports whether v and other match within Epsilon per
// component.
func (v Vec2) Equals(other Coord) bool {
	x, y := other.XY()
	return approxEq(v.X, x) && approxEq(v.Y, y)
}

func (v Vec2) String() string {
	return fmt.Sprintf("Vector2(%g, %g)", v.X, v.Y)
}
