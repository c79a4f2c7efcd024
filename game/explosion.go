package game

import "github.com/google/uuid"

// Explosion is the short impact effect left by a detonated torpedo
type Explosion struct {
	ID     uuid.UUID
	Center Vec2
	Frame  int
	Frames int

	interval float64
	timer    float64
	size     float64
}

// NewExplosion creates an explosion at center
func NewExplosion(center Vec2, cfg ExplosionConfig) *Explosion {
	return &Explosion{
		ID:       uuid.New(),
		Center:   center,
		Frames:   cfg.Frames,
		interval: 1 / cfg.FPS,
		size:     cfg.Size,
	}
}

// Update advances the animation. It returns false after the last frame.
func (e *Explosion) Update(dt float64) bool {
	e.timer += dt
	if e.timer >= e.interval {
		e.timer -= e.interval
		e.Frame++
	}
	return e.Frame < e.Frames
}

// Rect returns the drawn area
func (e *Explosion) Rect() Rect {
	return RectFromCenter(e.Center, e.size, e.size)
}

// Progress returns how far the animation is, from 0 to 1
func (e *Explosion) Progress() float64 {
	if e.Frames <= 0 {
		return 1
	}
	return clamp(float64(e.Frame)/float64(e.Frames), 0, 1)
}
