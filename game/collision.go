package game

// CollisionSystem resolves movement against static geometry and answers
// proximity queries through the monster grid
type CollisionSystem struct {
	world *World
	tiles TileMap
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(world *World, tiles TileMap) *CollisionSystem {
	return &CollisionSystem{
		world: world,
		tiles: tiles,
	}
}

// Bounds returns the playable area
func (c *CollisionSystem) Bounds() Bounds {
	return c.tiles.Bounds()
}

// Move applies delta to box along X, resolves, then along Y and resolves again
func (c *CollisionSystem) Move(box Rect, delta Vec2) Rect {
	box = c.MoveAxis(box, delta.X, 0)
	box = c.MoveAxis(box, 0, delta.Y)
	return box
}

// MoveAxis moves box by (dx, dy) and snaps it flush against every obstacle
// it now overlaps, on the side it came from. Call it with one axis at a time.
func (c *CollisionSystem) MoveAxis(box Rect, dx, dy float64) Rect {
	box.X += dx
	box.Y += dy

	for _, o := range c.tiles.Obstacles() {
		if !box.Overlaps(o) {
			continue
		}
		switch {
		case dx > 0:
			box.X = min(box.X, o.Left()-box.W)
		case dx < 0:
			box.X = max(box.X, o.Right())
		}
		switch {
		case dy > 0:
			box.Y = min(box.Y, o.Top()-box.H)
		case dy < 0:
			box.Y = max(box.Y, o.Bottom())
		}
	}

	return box
}

// ClampToBounds keeps box inside the world and below the north limit
func (c *CollisionSystem) ClampToBounds(box Rect) Rect {
	b := c.tiles.Bounds()

	box.X = max(box.X, b.Left)
	if box.Right() > b.Right {
		box.X = b.Right - box.W
	}
	box.Y = max(box.Y, b.Top)
	if box.Bottom() > b.Bottom {
		box.Y = b.Bottom - box.H
	}
	if box.Y < b.NorthLimit {
		box.Y = b.NorthLimit
	}

	return box
}

// HitsObstacle reports whether r overlaps any obstacle
func (c *CollisionSystem) HitsObstacle(r Rect) bool {
	return overlapsAny(r, c.tiles.Obstacles())
}

// HitsProp reports whether r overlaps any prop
func (c *CollisionSystem) HitsProp(r Rect) bool {
	return overlapsAny(r, c.tiles.Props())
}

// MonstersInRadius returns live monsters whose centre is within radius of p
func (c *CollisionSystem) MonstersInRadius(p Vec2, radius float64) []*Monster {
	found := c.world.MonstersInRadius(p, radius)
	alive := found[:0]
	for _, m := range found {
		if m.Alive {
			alive = append(alive, m)
		}
	}
	return alive
}

// Repel returns box pushed distance pixels away from the centre of other.
// Coincident centres leave box unchanged.
func Repel(box, other Rect, distance float64) Rect {
	sep := box.Center().Sub(other.Center())
	if sep.IsZero() {
		return box
	}
	return box.Translate(sep.Normalize().Scale(distance))
}

func overlapsAny(r Rect, rects []Rect) bool {
	for _, o := range rects {
		if r.Overlaps(o) {
			return true
		}
	}
	return false
}
