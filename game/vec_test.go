package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func unitFromAngle(a float64) Vec2 {
	return Vec2{math.Cos(a), math.Sin(a)}
}

func TestSlerp(t *testing.T) {
	right := Vec2{1, 0}
	down := Vec2{0, 1}

	t.Run("endpoints", func(t *testing.T) {
		start := Slerp(right, down, 0)
		end := Slerp(right, down, 1)
		assert.InDelta(t, 1, start.X, 1e-9)
		assert.InDelta(t, 0, start.Y, 1e-9)
		assert.InDelta(t, 0, end.X, 1e-9)
		assert.InDelta(t, 1, end.Y, 1e-9)
	})

	t.Run("midpoint bisects the angle", func(t *testing.T) {
		mid := Slerp(right, down, 0.5)
		assert.InDelta(t, math.Sqrt2/2, mid.X, 1e-9)
		assert.InDelta(t, math.Sqrt2/2, mid.Y, 1e-9)
	})

	t.Run("t is clamped", func(t *testing.T) {
		assert.Equal(t, Slerp(right, down, 0), Slerp(right, down, -3))
		assert.Equal(t, Slerp(right, down, 1), Slerp(right, down, 7))
	})

	t.Run("nearly equal directions return the end", func(t *testing.T) {
		end := unitFromAngle(0.0001)
		got := Slerp(right, end, 0.3)
		assert.InDelta(t, end.X, got.X, 1e-12)
		assert.InDelta(t, end.Y, got.Y, 1e-12)
	})

	t.Run("opposite directions turn through the perpendicular", func(t *testing.T) {
		mid := Slerp(right, Vec2{-1, 0}, 0.5)
		assert.InDelta(t, 0, mid.X, 1e-9)
		assert.InDelta(t, 1, mid.Y, 1e-9)

		end := Slerp(right, Vec2{-1, 0}, 1)
		assert.InDelta(t, -1, end.X, 1e-9)
		assert.InDelta(t, 0, end.Y, 1e-9)
	})
}

func TestSlerpStaysUnit(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := unitFromAngle(rapid.Float64Range(-math.Pi, math.Pi).Draw(t, "a"))
		b := unitFromAngle(rapid.Float64Range(-math.Pi, math.Pi).Draw(t, "b"))
		step := rapid.Float64Range(0, 1).Draw(t, "t")

		assert.InDelta(t, 1, Slerp(a, b, step).Len(), 1e-6)
	})
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Vec2{}, Vec2{}.Normalize())

	rapid.Check(t, func(t *rapid.T) {
		angle := rapid.Float64Range(-math.Pi, math.Pi).Draw(t, "angle")
		length := rapid.Float64Range(1e-3, 1e4).Draw(t, "length")
		v := unitFromAngle(angle).Scale(length)
		assert.InDelta(t, 1, v.Normalize().Len(), 1e-9)
	})
}

func TestClampLen(t *testing.T) {
	assert.Equal(t, Vec2{3, 4}, Vec2{3, 4}.ClampLen(10))
	clamped := Vec2{30, 40}.ClampLen(10)
	assert.InDelta(t, 10, clamped.Len(), 1e-9)
	assert.InDelta(t, 0.6, clamped.Normalize().X, 1e-9)
}

func TestRect(t *testing.T) {
	t.Run("corners in any order", func(t *testing.T) {
		want := Rect{X: 10, Y: 20, W: 30, H: 40}
		assert.Equal(t, want, RectFromCorners(10, 20, 40, 60))
		assert.Equal(t, want, RectFromCorners(40, 60, 10, 20))
	})

	t.Run("touching edges do not overlap", func(t *testing.T) {
		a := Rect{X: 0, Y: 0, W: 10, H: 10}
		assert.False(t, a.Overlaps(Rect{X: 10, Y: 0, W: 10, H: 10}))
		assert.True(t, a.Overlaps(Rect{X: 9.5, Y: 0, W: 10, H: 10}))
		assert.False(t, a.Overlaps(Rect{X: 5, Y: 5, W: 0, H: 10}))
	})

	t.Run("contains includes edges", func(t *testing.T) {
		r := Rect{X: 0, Y: 0, W: 10, H: 10}
		assert.True(t, r.Contains(Vec2{10, 10}))
		assert.False(t, r.Contains(Vec2{10.01, 5}))
	})

	t.Run("inflate keeps the centre", func(t *testing.T) {
		r := RectFromCenter(Vec2{50, 50}, 20, 10)
		shrunk := r.Inflate(-8, -30)
		assert.Equal(t, r.Center(), shrunk.Center())
		assert.Equal(t, 12.0, shrunk.W)
		assert.Equal(t, 0.0, shrunk.H)
	})
}
