package game

import (
	"math"

	"github.com/google/uuid"
)

// TorpedoPhase is the flight phase of a torpedo
type TorpedoPhase int

const (
	PhaseDropping TorpedoPhase = iota
	PhaseFloating
	PhaseAccelerating
	PhaseActive
)

func (p TorpedoPhase) String() string {
	switch p {
	case PhaseDropping:
		return "dropping"
	case PhaseFloating:
		return "floating"
	case PhaseAccelerating:
		return "accelerating"
	case PhaseActive:
		return "active"
	default:
		return "unknown"
	}
}

// TorpedoOutcome is what happened to a torpedo during one tick
type TorpedoOutcome int

const (
	// TorpedoFlying means the torpedo stays in flight
	TorpedoFlying TorpedoOutcome = iota
	// TorpedoDetonated means it hit something and leaves an explosion
	TorpedoDetonated
	// TorpedoGone means it left the world or was already spent
	TorpedoGone
)

// TorpedoLaunch is a request to spawn a torpedo
type TorpedoLaunch struct {
	Origin   Vec2
	Aim      Vec2 // Unit vector toward the aim point
	FaceLeft bool // Shooter's horizontal facing
	Damage   int
}

// XPSink is credited with the XP of monsters a torpedo kills
type XPSink interface {
	AddXP(amount int)
}

// TorpedoEnv carries what a torpedo needs to resolve hits
type TorpedoEnv struct {
	Collision *CollisionSystem

	// Torpedoes outside this area are discarded
	Cleanup Rect
}

// Torpedo is a player projectile with a four-phase flight
type Torpedo struct {
	ID uuid.UUID

	Phase    TorpedoPhase
	Position Vec2
	Velocity Vec2

	// DropDir is horizontal and fixed at launch
	DropDir Vec2
	// TargetDir points at the aim point and is fixed at launch
	TargetDir Vec2
	// CurrentDir drives rotation and floating movement
	CurrentDir Vec2

	HasHit bool
	Damage int
	Owner  XPSink

	// FaceLeft is the launch facing; it selects the sprite variant
	FaceLeft bool

	Frame int

	phaseTimer float64
	animTimer  float64
	cfg        TorpedoConfig
}

// NewTorpedo creates a torpedo in the dropping phase
func NewTorpedo(l TorpedoLaunch, owner XPSink, cfg TorpedoConfig) *Torpedo {
	drop := Vec2{1, 0}
	if l.FaceLeft {
		drop = Vec2{-1, 0}
	}
	target := l.Aim.Normalize()
	if target.IsZero() {
		target = Vec2{1, 0}
	}

	return &Torpedo{
		ID:         uuid.New(),
		Phase:      PhaseDropping,
		Position:   l.Origin,
		DropDir:    drop,
		TargetDir:  target,
		CurrentDir: drop,
		Damage:     l.Damage,
		Owner:      owner,
		FaceLeft:   l.FaceLeft,
		cfg:        cfg,
	}
}

// PhaseElapsed returns the time spent in the current phase
func (t *Torpedo) PhaseElapsed() float64 {
	return t.phaseTimer
}

// Advance integrates one tick of flight. At most one phase transition
// happens per call; overshoot carries into the next phase.
func (t *Torpedo) Advance(dt float64) {
	if t.HasHit {
		return
	}
	cfg := t.cfg
	g := cfg.Gravity

	t.phaseTimer += dt
	t.animate(dt)

	switch t.Phase {
	case PhaseDropping:
		t.Velocity = t.DropDir.Scale(cfg.DropSpeed).Add(g.Scale(dt))
		t.CurrentDir = t.DropDir
		t.nextPhase(cfg.DropDuration)

	case PhaseFloating:
		t.CurrentDir = Slerp(t.DropDir, t.TargetDir, t.phaseTimer/cfg.FloatDuration)
		wobble := math.Sin(t.phaseTimer*cfg.WobbleFrequency) * cfg.FloatSpeed * 0.5
		t.Velocity = t.CurrentDir.Scale(cfg.FloatSpeed).
			Add(t.CurrentDir.Perp().Scale(wobble)).
			Add(g.Scale(dt * 0.5)).
			Scale(cfg.Drag)
		t.nextPhase(cfg.FloatDuration)

	case PhaseAccelerating:
		t.CurrentDir = t.TargetDir
		t.Velocity = t.Velocity.
			Add(t.TargetDir.Scale(cfg.Acceleration * dt)).
			Add(g.Scale(dt)).
			Scale(cfg.Drag).
			ClampLen(cfg.MaxSpeed)
		t.nextPhase(cfg.AccelDuration)

	case PhaseActive:
		if t.Velocity.Len() < cfg.MaxSpeed {
			t.Velocity = t.Velocity.Add(t.TargetDir.Scale(cfg.Acceleration * 0.5 * dt))
		}
		t.Velocity = t.Velocity.Add(g.Scale(dt)).Scale(cfg.Drag)
		if floor := cfg.MaxSpeed * cfg.MinSpeedRatio; t.Velocity.Len() < floor {
			t.Velocity = t.TargetDir.Scale(floor)
		}
	}

	t.Position = t.Position.Add(t.Velocity.Scale(dt))
}

// nextPhase moves to the following phase once duration is used up
func (t *Torpedo) nextPhase(duration float64) {
	if t.phaseTimer < duration {
		return
	}
	t.phaseTimer -= duration
	t.Phase++
}

func (t *Torpedo) animate(dt float64) {
	if t.cfg.Frames <= 1 || t.cfg.AnimationInterval <= 0 {
		return
	}
	t.animTimer += dt
	if t.animTimer >= t.cfg.AnimationInterval {
		t.animTimer -= t.cfg.AnimationInterval
		t.Frame = (t.Frame + 1) % t.cfg.Frames
	}
}

// Update advances the torpedo and resolves hits. Splash damage is applied to
// every live monster within the splash radius and any XP goes to the owner.
func (t *Torpedo) Update(dt float64, env *TorpedoEnv) TorpedoOutcome {
	if t.HasHit {
		return TorpedoGone
	}

	t.Advance(dt)

	if t.resolveHits(env.Collision) {
		t.HasHit = true
		t.Velocity = Vec2{}
		return TorpedoDetonated
	}

	if !env.Cleanup.Overlaps(t.Rect()) {
		return TorpedoGone
	}
	return TorpedoFlying
}

func (t *Torpedo) resolveHits(cs *CollisionSystem) bool {
	hit := false
	for _, m := range cs.MonstersInRadius(t.Position, t.cfg.SplashRadius) {
		if xp := m.TakeDamage(t.Damage); xp > 0 && t.Owner != nil {
			t.Owner.AddXP(xp)
		}
		hit = true
	}

	return hit || cs.HitsObstacle(t.HitRect()) || cs.HitsProp(t.Rect())
}

// RotationDegrees returns the sprite rotation. Torpedoes launched facing
// right use the mirrored sprite and are turned a further 180 degrees.
func (t *Torpedo) RotationDegrees() float64 {
	if t.CurrentDir.IsZero() {
		return 0
	}
	deg := t.CurrentDir.Angle() * 180 / math.Pi
	if !t.FaceLeft {
		deg += 180
	}
	return deg
}

// Rect returns the bounding box of the rotated sprite
func (t *Torpedo) Rect() Rect {
	a := t.CurrentDir.Angle()
	sin, cos := math.Abs(math.Sin(a)), math.Abs(math.Cos(a))
	w := t.cfg.Width*cos + t.cfg.Height*sin
	h := t.cfg.Width*sin + t.cfg.Height*cos
	return RectFromCenter(t.Position, w, h)
}

// HitRect returns the shrunk box tested against obstacles. It never
// collapses below one pixel.
func (t *Torpedo) HitRect() Rect {
	r := t.Rect()
	shrink := t.cfg.HitboxShrink
	return r.Inflate(-min(shrink, r.W-1), -min(shrink, r.H-1))
}
