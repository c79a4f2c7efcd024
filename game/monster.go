package game

import (
	"math/rand"
)

// Monster is a hostile actor driven by the wander/chase AI
type Monster struct {
	Entity

	Kind    MonsterKind
	Profile MonsterProfile

	// Speed in pixels per second, drawn from the profile range
	Speed float64

	State AIState
	Alive bool

	// Opacity after fog and sonar (0-255)
	Alpha uint8

	// Animation frame within the current facing
	Frame int

	wanderTimer    float64
	attackCooldown float64
	animTimer      float64

	// Grid cell the monster is registered in
	cellX, cellY int
}

// NewMonster creates a monster of the given kind centred on pos
func NewMonster(kind MonsterKind, pos Vec2, rng *rand.Rand, cfg MonsterConfig) *Monster {
	profile := GetMonsterProfile(kind)

	speed := profile.SpeedMin
	if span := profile.SpeedMax - profile.SpeedMin; span > 0 {
		speed += rng.Intn(span + 1)
	}

	m := &Monster{
		Entity:  NewEntity(pos, profile.Width, profile.Height, cfg.HitboxMargin, profile.Health),
		Kind:    profile.Kind,
		Profile: profile,
		Speed:   float64(speed),
		State:   AIStateWander,
		Alive:   true,
		Alpha:   255,
	}
	m.Direction = randomDirection(rng)
	m.Facing = FacingRight
	m.Layer = LayerMonster
	m.Tags = TagHostile
	return m
}

// Update advances the monster one tick. It returns false once the monster is
// dead and must be removed.
func (m *Monster) Update(dt float64, player PlayerState, env *MonsterEnv) bool {
	if !m.Alive {
		return false
	}

	if m.attackCooldown > 0 {
		m.attackCooldown -= dt
	}

	distance := player.Center.DistanceTo(m.Center())
	m.think(dt, distance, player, env)
	m.Alpha = FogAlpha(distance, player, env.Config)
	m.move(dt, player, env)
	m.attack(player, env)
	m.animate(dt, env.Config)

	return true
}

// move applies the direction axis by axis, clamps to the world and keeps
// the monster from sitting on top of the player
func (m *Monster) move(dt float64, player PlayerState, env *MonsterEnv) {
	cs := env.Collision

	if !m.Direction.IsZero() {
		m.Hitbox = cs.Move(m.Hitbox, m.Direction.Scale(m.Speed*dt))
	}
	m.Hitbox = cs.ClampToBounds(m.Hitbox)

	if m.Hitbox.Overlaps(player.Hitbox) {
		m.Hitbox = cs.ClampToBounds(Repel(m.Hitbox, player.Hitbox, env.Config.RepulsionDistance))
	}

	m.SyncToHitbox()
}

// attack bites the player when touching and off cooldown, then bounces back
func (m *Monster) attack(player PlayerState, env *MonsterEnv) {
	if player.Untouchable() || m.attackCooldown > 0 || !m.Hitbox.Overlaps(player.Hitbox) {
		return
	}

	if env.Target != nil {
		env.Target.TakeDamage(m.Profile.Damage)
	}
	m.attackCooldown = env.Config.AttackCooldown

	push := m.Hitbox.Center().Sub(player.Hitbox.Center())
	if push.IsZero() {
		push = Vec2{float64(env.Rand.Intn(3) - 1), float64(env.Rand.Intn(3) - 1)}
	}
	if push.IsZero() {
		push = Vec2{1, 0}
	}
	m.Hitbox = env.Collision.ClampToBounds(m.Hitbox.Translate(push.Normalize().Scale(env.Config.KnockbackDistance)))
	m.SyncToHitbox()
}

// animate turns the sprite with the horizontal direction and steps frames
func (m *Monster) animate(dt float64, cfg MonsterConfig) {
	switch {
	case m.Direction.X < 0:
		m.Facing = FacingLeft
	case m.Direction.X > 0:
		m.Facing = FacingRight
	}

	if m.Profile.Frames <= 1 || cfg.AnimationInterval <= 0 {
		m.Frame = 0
		return
	}
	m.animTimer += dt
	if m.animTimer >= cfg.AnimationInterval {
		m.animTimer -= cfg.AnimationInterval
		m.Frame = (m.Frame + 1) % m.Profile.Frames
	}
}

// TakeDamage applies damage and returns the XP reward the first time the
// monster dies. Later calls return 0.
func (m *Monster) TakeDamage(amount int) int {
	m.Health -= amount
	if m.Health <= 0 && m.Alive {
		m.Alive = false
		return m.Profile.XP
	}
	return 0
}
