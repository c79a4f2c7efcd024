package game

import (
	"github.com/google/uuid"
)

// Layer is the draw order of an entity; lower layers are drawn first
type Layer int

const (
	LayerGround     Layer = 0
	LayerProjectile Layer = 2
	LayerMonster    Layer = 3
	LayerEffect     Layer = 5
)

// Tag is a capability bit carried by an entity
type Tag uint8

const (
	TagPlayer Tag = 1 << iota
	TagHostile
)

// Has reports whether every bit of t2 is set in t
func (t Tag) Has(t2 Tag) bool { return t&t2 == t2 }

// Facing is the sprite orientation of an actor
type Facing int

const (
	FacingRight Facing = iota
	FacingRightUp
	FacingRightDown
	FacingLeft
	FacingLeftUp
	FacingLeftDown
)

// IsLeft reports whether the facing points to the left half-plane
func (f Facing) IsLeft() bool {
	return f == FacingLeft || f == FacingLeftUp || f == FacingLeftDown
}

func (f Facing) String() string {
	switch f {
	case FacingRight:
		return "right"
	case FacingRightUp:
		return "right_up"
	case FacingRightDown:
		return "right_down"
	case FacingLeft:
		return "left"
	case FacingLeftUp:
		return "left_up"
	case FacingLeftDown:
		return "left_down"
	default:
		return "right"
	}
}

// facingFor picks the facing for a movement direction given the last horizontal facing
func facingFor(dir Vec2, left bool) Facing {
	switch {
	case left && dir.Y < 0:
		return FacingLeftUp
	case left && dir.Y > 0:
		return FacingLeftDown
	case left:
		return FacingLeft
	case dir.Y < 0:
		return FacingRightUp
	case dir.Y > 0:
		return FacingRightDown
	default:
		return FacingRight
	}
}

// Entity is the record shared by every actor in the simulation
type Entity struct {
	// Unique identifier
	ID uuid.UUID

	// Visual rectangle in world coordinates
	Rect Rect

	// Collision rectangle, always centred on Rect
	Hitbox Rect

	// Movement direction (unit vector or zero)
	Direction Vec2

	// Health points (0 or less means dead)
	Health int

	// Maximum health
	MaxHealth int

	// Sprite orientation
	Facing Facing

	// Draw layer
	Layer Layer

	// Capability tags
	Tags Tag
}

// NewEntity creates an entity centred on center with a w×h visual rectangle.
// margin shrinks the hitbox by that fraction of each dimension.
func NewEntity(center Vec2, w, h, margin float64, health int) Entity {
	rect := RectFromCenter(center, w, h)
	return Entity{
		ID:        uuid.New(),
		Rect:      rect,
		Hitbox:    rect.Inflate(-float64(int(w*margin)), -float64(int(h*margin))),
		Health:    health,
		MaxHealth: health,
	}
}

// Center returns the centre of the visual rectangle
func (e *Entity) Center() Vec2 {
	return e.Rect.Center()
}

// SetCenter moves both rectangles so they are centred on c
func (e *Entity) SetCenter(c Vec2) {
	e.Rect = e.Rect.WithCenter(c)
	e.Hitbox = e.Hitbox.WithCenter(c)
}

// SyncToHitbox re-centres the visual rectangle on the hitbox after the hitbox moved
func (e *Entity) SyncToHitbox() {
	e.Rect = e.Rect.WithCenter(e.Hitbox.Center())
}
