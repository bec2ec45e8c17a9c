package vecmath_test

import (
	"testing"

	"vecmath"
)

func BenchmarkVec2Add(b *testing.B) {
	v := vecmath.NewVec2(1, 2)
	w := vecmath.NewVec2(3, 4)

	for i := 0; i < b.N; i++ {
		_ = vecmath.Add(v, w)
	}
}

func BenchmarkVec2Magnitude(b *testing.B) {
	v := vecmath.NewVec2(3, 4)

	for i := 0; i < b.N; i++ {
		_ = v.Magnitude()
	}
}

func BenchmarkVec2Rotate(b *testing.B) {
	v := vecmath.NewVec2(1, 0)

	for i := 0; i < b.N; i++ {
		v.Rotate(0.01)
	}
}
