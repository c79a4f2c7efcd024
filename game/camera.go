package game

// FollowCamera represents the viewport into the world
type FollowCamera struct {
	X, Y   float64 // Top-left of the viewport in world coordinates
	Zoom   float64 // Zoom level
	Width  float64 // Viewport width
	Height float64 // Viewport height

	// Area the viewport is kept inside
	bounds Bounds
}

// NewFollowCamera creates a new camera kept inside bounds
func NewFollowCamera(width, height float64, bounds Bounds) *FollowCamera {
	return &FollowCamera{
		Zoom:   1.0,
		Width:  width,
		Height: height,
		bounds: bounds,
	}
}

// CenterOn moves the viewport so target is centred, clamped to the bounds
func (c *FollowCamera) CenterOn(target Vec2) {
	viewW := c.Width / c.Zoom
	viewH := c.Height / c.Zoom

	c.X = clampView(target.X-viewW/2, c.bounds.Left, c.bounds.Right-viewW)
	c.Y = clampView(target.Y-viewH/2, c.bounds.Top, c.bounds.Bottom-viewH)
}

// Offset returns the world position of the viewport's top-left corner
func (c *FollowCamera) Offset() Vec2 {
	return Vec2{c.X, c.Y}
}

// WorldToScreen converts world coordinates to screen coordinates
func (c *FollowCamera) WorldToScreen(p Vec2) Vec2 {
	return Vec2{(p.X - c.X) * c.Zoom, (p.Y - c.Y) * c.Zoom}
}

// ScreenToWorld converts screen coordinates to world coordinates
func (c *FollowCamera) ScreenToWorld(p Vec2) Vec2 {
	return Vec2{p.X/c.Zoom + c.X, p.Y/c.Zoom + c.Y}
}

// Visible reports whether r intersects the viewport
func (c *FollowCamera) Visible(r Rect) bool {
	return r.Overlaps(Rect{X: c.X, Y: c.Y, W: c.Width / c.Zoom, H: c.Height / c.Zoom})
}

// clampView clamps v into [lo, hi]; a viewport larger than the area pins to lo
func clampView(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return clamp(v, lo, hi)
}
