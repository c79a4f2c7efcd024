package game

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// RectFromCenter builds a w×h rectangle centred on c
func RectFromCenter(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// RectFromCorners builds the rectangle spanned by two opposite corners in any order
func RectFromCorners(x1, y1, x2, y2 float64) Rect {
	return Rect{X: min(x1, x2), Y: min(y1, y2), W: max(x1, x2) - min(x1, x2), H: max(y1, y2) - min(y1, y2)}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the centre point of the rectangle
func (r Rect) Center() Vec2 { return Vec2{r.X + r.W/2, r.Y + r.H/2} }

// WithCenter returns a copy of r moved so that its centre is c
func (r Rect) WithCenter(c Vec2) Rect {
	r.X = c.X - r.W/2
	r.Y = c.Y - r.H/2
	return r
}

// Translate returns r moved by d
func (r Rect) Translate(d Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Inflate grows r by dw and dh in total while keeping its centre.
// Negative values shrink it; the size never drops below zero.
func (r Rect) Inflate(dw, dh float64) Rect {
	c := r.Center()
	r.W = max(0, r.W+dw)
	r.H = max(0, r.H+dh)
	return r.WithCenter(c)
}

// Overlaps reports whether r and o share interior area. Touching edges and
// empty rectangles never overlap.
func (r Rect) Overlaps(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.Left() < o.Right() && r.Right() > o.Left() &&
		r.Top() < o.Bottom() && r.Bottom() > o.Top()
}

// Contains reports whether p lies inside r (edges included)
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}
