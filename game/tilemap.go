package game

// StaticMap is a TileMap built from configured rectangles
type StaticMap struct {
	bounds    Bounds
	obstacles []Rect
	props     []Rect
}

// NewStaticMap builds the map from the world config, adding border walls
// just outside the bounds when a thickness is configured
func NewStaticMap(cfg WorldConfig) *StaticMap {
	obstacles := make([]Rect, 0, len(cfg.Obstacles)+4)
	obstacles = append(obstacles, cfg.Obstacles...)

	if t := cfg.BorderWallThickness; t > 0 {
		b := cfg.Bounds
		obstacles = append(obstacles,
			Rect{X: b.Left - t, Y: b.Top - t, W: b.Width() + 2*t, H: t}, // north
			Rect{X: b.Left - t, Y: b.Bottom, W: b.Width() + 2*t, H: t},  // south
			Rect{X: b.Left - t, Y: b.Top, W: t, H: b.Height()},          // west
			Rect{X: b.Right, Y: b.Top, W: t, H: b.Height()},             // east
		)
	}

	return &StaticMap{
		bounds:    cfg.Bounds,
		obstacles: obstacles,
		props:     append([]Rect(nil), cfg.Props...),
	}
}

func (m *StaticMap) Obstacles() []Rect { return m.obstacles }
func (m *StaticMap) Props() []Rect     { return m.props }
func (m *StaticMap) Bounds() Bounds    { return m.bounds }
