package game

import (
	"math"

	"github.com/sirupsen/logrus"
)

// never is the timestamp of an action that has not happened yet
var never = math.Inf(-1)

// DeathHandler is notified once when the player dies
type DeathHandler interface {
	StartRespawn() bool
}

// SonarRejection explains why the sonar did not fire
type SonarRejection int

const (
	SonarAccepted SonarRejection = iota
	SonarPlayerDead
	SonarLevelTooLow
	SonarLowPower
	SonarCoolingDown
)

func (r SonarRejection) String() string {
	switch r {
	case SonarAccepted:
		return "accepted"
	case SonarPlayerDead:
		return "player dead"
	case SonarLevelTooLow:
		return "level too low"
	case SonarLowPower:
		return "not enough power"
	case SonarCoolingDown:
		return "cooling down"
	default:
		return "unknown"
	}
}

// Player is the submarine controlled by the user
type Player struct {
	Entity

	// Power core spent on boost, torpedoes and sonar
	Power    float64
	MaxPower float64

	Level int
	XP    int

	// Torpedo damage for the current level
	Damage int

	// Current ability costs (reduced with level)
	BoostCost   float64
	TorpedoCost float64

	// HP regenerated per second once the regen delay has passed
	HPRegenRate float64

	// Current movement speed (normal or boost)
	Speed float64

	Dead       bool
	Invincible bool

	// FlashVisible toggles while invincible
	FlashVisible bool

	// Hit is set for a short flash after taking damage
	Hit bool

	// Aim is the unit vector toward the cursor
	Aim Vec2

	// Crosshair is drawn a fixed distance along Aim
	Crosshair Vec2

	// Animation frame within the current facing
	Frame int

	// OnDeath is notified when health reaches zero
	OnDeath DeathHandler

	faceLeft bool

	// Simulation clock and event timestamps, in seconds
	clock      float64
	lastHit    float64
	lastDamage float64
	lastFire   float64
	lastSonar  float64
	sonarStart float64
	sonarUntil float64
	lastPortal float64

	regenCarry       float64
	hitTimer         float64
	animTimer        float64
	lowHealthAlerted bool

	cfg   PlayerConfig
	sonar SonarConfig
	audio Audio
	log   *logrus.Entry
}

// NewPlayer creates a player centred on pos
func NewPlayer(pos Vec2, cfg PlayerConfig, sonar SonarConfig, audio Audio, log *logrus.Entry) *Player {
	p := &Player{
		Entity:       NewEntity(pos, cfg.Width, cfg.Height, 0, cfg.Health),
		Power:        cfg.Power,
		MaxPower:     cfg.Power,
		Level:        1,
		Damage:       cfg.BaseDamage,
		BoostCost:    cfg.BoostCost,
		TorpedoCost:  cfg.TorpedoCost,
		Speed:        cfg.Speed,
		FlashVisible: true,
		Aim:          Vec2{1, 0},
		lastHit:      never,
		lastDamage:   never,
		lastFire:     never,
		lastSonar:    never,
		sonarStart:   never,
		sonarUntil:   never,
		lastPortal:   never,
		cfg:          cfg,
		sonar:        sonar,
		audio:        orNop(audio),
		log:          orDiscard(log),
	}
	p.Layer = LayerGround
	p.Tags = TagPlayer
	p.Crosshair = p.Center().Add(p.Aim.Scale(cfg.CrosshairLen))
	p.updateHPRegenRate()
	return p
}

// Now returns the player's simulation clock
func (p *Player) Now() float64 { return p.clock }

// State returns the snapshot monsters react to
func (p *Player) State() PlayerState {
	return PlayerState{
		Center:      p.Center(),
		Hitbox:      p.Hitbox,
		Dead:        p.Dead,
		Invincible:  p.Invincible,
		SonarActive: p.SonarActive(),
		SonarRange:  p.sonar.Range,
	}
}

// FaceLeft reports whether the last horizontal input pointed left
func (p *Player) FaceLeft() bool { return p.faceLeft }

// ApplyInput turns the input into movement intent and abilities. A fired
// torpedo is returned for the caller to spawn.
func (p *Player) ApplyInput(in InputState, dt float64) (TorpedoLaunch, bool) {
	if p.Dead {
		p.Direction = Vec2{}
		return TorpedoLaunch{}, false
	}

	move := in.Movement()
	if move.X != 0 {
		p.faceLeft = move.X < 0
	}
	p.Direction = move.Normalize()

	if in.Boost && p.Power > 0 {
		p.Speed = p.cfg.BoostSpeed
		p.Power = max(0, p.Power-p.BoostCost*dt)
	} else {
		p.Speed = p.cfg.Speed
	}

	p.aimAt(in.Cursor)

	var launch TorpedoLaunch
	var fired bool
	if in.Fire {
		launch, fired = p.TryFire()
	}
	if in.Sonar {
		p.TryActivateSonar()
	}
	return launch, fired
}

// aimAt points the aim at a world position, falling back to +X on top of it
func (p *Player) aimAt(cursor Vec2) {
	d := cursor.Sub(p.Center())
	if d.IsZero() {
		d = Vec2{1, 0}
	}
	p.Aim = d.Normalize()
	p.Crosshair = p.Center().Add(p.Aim.Scale(p.cfg.CrosshairLen))
}

// TryFire launches a torpedo when power and cooldown allow
func (p *Player) TryFire() (TorpedoLaunch, bool) {
	if p.Dead || p.Power < p.TorpedoCost || p.clock-p.lastFire < p.cfg.TorpedoCooldown {
		return TorpedoLaunch{}, false
	}

	p.Power -= p.TorpedoCost
	p.lastFire = p.clock
	p.audio.Play(SoundTorpedoLaunch)

	return TorpedoLaunch{
		Origin:   p.Center(),
		Aim:      p.Aim,
		FaceLeft: p.faceLeft,
		Damage:   p.Damage,
	}, true
}

// TryActivateSonar reveals monsters within sonar range for a while
func (p *Player) TryActivateSonar() (bool, SonarRejection) {
	reason := SonarAccepted
	switch {
	case p.Dead:
		reason = SonarPlayerDead
	case p.Level < p.sonar.Level:
		reason = SonarLevelTooLow
	case p.Power < p.sonar.Cost:
		reason = SonarLowPower
	case p.clock-p.lastSonar < p.sonar.Cooldown:
		reason = SonarCoolingDown
	}
	if reason != SonarAccepted {
		p.log.WithField("reason", reason).Debug("sonar rejected")
		return false, reason
	}

	p.Power -= p.sonar.Cost
	p.lastSonar = p.clock
	p.sonarStart = p.clock
	p.sonarUntil = p.clock + p.sonar.Duration
	p.audio.Play(SoundSonarPing)
	return true, SonarAccepted
}

// SonarActive reports whether the sonar is revealing monsters
func (p *Player) SonarActive() bool {
	return p.clock < p.sonarUntil
}

// SonarRemaining returns the seconds left on the active sonar
func (p *Player) SonarRemaining() float64 {
	return max(0, p.sonarUntil-p.clock)
}

// SonarCooldownRemaining returns the seconds until the sonar can fire again
func (p *Player) SonarCooldownRemaining() float64 {
	return max(0, p.sonar.Cooldown-(p.clock-p.lastSonar))
}

// PortalCooldownRemaining returns the seconds until the next teleport is allowed
func (p *Player) PortalCooldownRemaining(cooldown float64) float64 {
	return max(0, cooldown-(p.clock-p.lastPortal))
}

// Update advances regeneration, movement, animation and alerts
func (p *Player) Update(dt float64, cs *CollisionSystem) {
	p.clock += dt

	p.regenerateHP(dt)
	p.regeneratePower(dt)

	if !p.Dead {
		p.move(dt, cs)
		p.animate(dt)
		p.Crosshair = p.Center().Add(p.Aim.Scale(p.cfg.CrosshairLen))
	}

	if p.Hit {
		p.hitTimer += dt
		if p.hitTimer >= p.cfg.HitFlash {
			p.Hit = false
		}
	}

	if p.Health <= p.cfg.LowHealth {
		if !p.lowHealthAlerted {
			p.audio.Play(SoundLowHealth)
			p.lowHealthAlerted = true
		}
	} else {
		p.lowHealthAlerted = false
	}
}

func (p *Player) move(dt float64, cs *CollisionSystem) {
	if p.Direction.IsZero() {
		return
	}
	p.Hitbox = cs.ClampToBounds(cs.Move(p.Hitbox, p.Direction.Scale(p.Speed*dt)))
	p.SyncToHitbox()
}

func (p *Player) animate(dt float64) {
	facing := facingFor(p.Direction, p.faceLeft)
	if facing != p.Facing {
		p.Facing = facing
		p.Frame = 0
		p.animTimer = 0
	}
	if p.Direction.IsZero() {
		p.Frame = 0
		return
	}
	p.animTimer += dt
	if p.animTimer >= p.cfg.AnimationInterval {
		p.animTimer -= p.cfg.AnimationInterval
		p.Frame = (p.Frame + 1) % 4
	}
}

// TakeDamage applies a hit. It is rejected while dead, invincible or within
// the hit cooldown of the previous hit.
func (p *Player) TakeDamage(amount int) bool {
	if p.Invincible || p.Dead {
		return false
	}
	if p.clock-p.lastHit <= p.cfg.HitCooldown {
		return false
	}

	p.Health = max(0, p.Health-amount)
	p.Hit = true
	p.hitTimer = 0
	p.lastHit = p.clock
	p.lastDamage = p.clock
	p.regenCarry = 0
	p.audio.Play(SoundDamage)

	if p.Health <= 0 {
		p.die()
	}
	return true
}

func (p *Player) die() {
	if p.Dead {
		return
	}
	p.Dead = true
	p.Health = 0
	p.Direction = Vec2{}
	p.log.WithFields(logrus.Fields{
		"id":    p.ID,
		"point": p.Center(),
	}).Info("player died")

	if p.OnDeath != nil {
		p.OnDeath.StartRespawn()
	}
}

// Respawn brings the player back at pos with full health and power
func (p *Player) Respawn(pos Vec2) {
	p.Dead = false
	p.Health = p.MaxHealth
	p.Power = p.MaxPower
	p.Hit = false
	p.regenCarry = 0
	p.lowHealthAlerted = false
	p.SetCenter(pos)
	p.Crosshair = p.Center().Add(p.Aim.Scale(p.cfg.CrosshairLen))
}

// regenerateHP heals after HPRegenDelay seconds without damage. Fractions
// accumulate until a whole point is reached.
func (p *Player) regenerateHP(dt float64) {
	if p.Dead || p.Health >= p.MaxHealth || p.HPRegenRate <= 0 {
		return
	}
	if p.clock-p.lastDamage < p.cfg.HPRegenDelay {
		return
	}

	p.regenCarry += p.HPRegenRate * dt
	whole := int(p.regenCarry)
	p.regenCarry -= float64(whole)
	p.Health = min(p.MaxHealth, p.Health+whole)
}

func (p *Player) regeneratePower(dt float64) {
	p.Power = min(p.MaxPower, p.Power+p.cfg.PowerRegen*dt)
}
