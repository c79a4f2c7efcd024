package game

import "math"

// Vec2 is a 2D vector in world space (pixels, Y grows downward)
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and o
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Len returns the length of v
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// DistanceTo returns the distance between v and o
func (v Vec2) DistanceTo(o Vec2) float64 { return v.Sub(o).Len() }

// Perp returns v rotated by +90 degrees
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// Angle returns the angle of v from the positive X axis in radians
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// ClampLen returns v shortened to max if it is longer
func (v Vec2) ClampLen(limit float64) Vec2 {
	l := v.Len()
	if l > limit && l > 0 {
		return v.Scale(limit / l)
	}
	return v
}

// slerpEpsilon is the angle below which two directions are treated as equal
const slerpEpsilon = 0.001

// Slerp interpolates along the great circle between the unit directions a and b.
// t is clamped to [0, 1]. When the angle between a and b is below slerpEpsilon
// b is returned directly. Opposite directions turn through the +90 degree
// perpendicular of a.
func Slerp(a, b Vec2, t float64) Vec2 {
	t = clamp(t, 0, 1)
	start := a.Normalize()
	end := b.Normalize()

	dot := clamp(start.Dot(end), -1, 1)
	angle := math.Acos(dot)
	if angle < slerpEpsilon {
		return end
	}

	if math.Pi-angle < slerpEpsilon {
		return start.Scale(math.Cos(t * math.Pi)).Add(start.Perp().Scale(math.Sin(t * math.Pi)))
	}

	sin := math.Sin(angle)
	return start.Scale(math.Sin((1-t)*angle) / sin).Add(end.Scale(math.Sin(t*angle) / sin))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
