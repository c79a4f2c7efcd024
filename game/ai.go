package game

import (
	"math/rand"
)

// AIState represents the current AI behavior state
type AIState int

const (
	AIStateWander AIState = iota
	AIStateChase
)

func (s AIState) String() string {
	if s == AIStateChase {
		return "chase"
	}
	return "wander"
}

// PlayerState is the view of the player that monsters react to. It is taken
// once per tick before the monster phase.
type PlayerState struct {
	Center     Vec2
	Hitbox     Rect
	Dead       bool
	Invincible bool

	SonarActive bool
	SonarRange  float64
}

// Untouchable reports whether monsters must leave the player alone
func (p PlayerState) Untouchable() bool {
	return p.Dead || p.Invincible
}

// DamageTarget receives monster attacks
type DamageTarget interface {
	TakeDamage(amount int) bool
}

// MonsterEnv carries what a monster needs from the rest of the simulation
type MonsterEnv struct {
	Collision *CollisionSystem
	Target    DamageTarget
	Rand      *rand.Rand
	Config    MonsterConfig
}

// NextState applies the detection hysteresis. Between the two ranges the
// current state is kept.
func NextState(current AIState, distance float64, cfg MonsterConfig) AIState {
	switch {
	case distance <= cfg.DetectionRange:
		return AIStateChase
	case distance >= cfg.LoseInterestRange:
		return AIStateWander
	default:
		return current
	}
}

// FogAlpha returns the opacity of something distance pixels from the player
func FogAlpha(distance float64, player PlayerState, cfg MonsterConfig) uint8 {
	if player.SonarActive && distance <= player.SonarRange {
		return 255
	}
	switch {
	case distance <= cfg.VisibilityRadius:
		return 255
	case distance >= cfg.FogRadius:
		return 0
	}
	ratio := 1 - (distance-cfg.VisibilityRadius)/(cfg.FogRadius-cfg.VisibilityRadius)
	return uint8(255 * ratio)
}

// randomDirection picks a direction from {-1,0,1}² and normalizes it.
// The zero draw stays zero.
func randomDirection(rng *rand.Rand) Vec2 {
	return Vec2{float64(rng.Intn(3) - 1), float64(rng.Intn(3) - 1)}.Normalize()
}

// wander re-rolls the direction every WanderInterval seconds
func (m *Monster) wander(dt float64, env *MonsterEnv) {
	m.wanderTimer += dt
	if m.wanderTimer >= env.Config.WanderInterval {
		m.wanderTimer -= env.Config.WanderInterval
		m.Direction = randomDirection(env.Rand)
	}
}

// chase heads straight for the target; on top of it the direction is kept
func (m *Monster) chase(target Vec2) {
	d := target.Sub(m.Center())
	if !d.IsZero() {
		m.Direction = d.Normalize()
	}
}

// think updates the AI state and direction for this tick
func (m *Monster) think(dt, distance float64, player PlayerState, env *MonsterEnv) {
	m.State = NextState(m.State, distance, env.Config)
	if player.Untouchable() {
		m.State = AIStateWander
	}

	switch m.State {
	case AIStateChase:
		m.chase(player.Center)
	default:
		m.wander(dt, env)
	}
}
