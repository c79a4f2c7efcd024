package game

import (
	"github.com/sirupsen/logrus"
)

// TorpedoClearer removes every torpedo in flight
type TorpedoClearer interface {
	ClearTorpedoes() int
}

// RespawnSystem brings the player back after death at a point away from
// monsters and grants a short invincibility window
type RespawnSystem struct {
	// Respawning is set between death and the respawn itself
	Respawning bool

	points []Vec2
	cursor int

	delayTimer      float64
	protectionTimer float64
	flashTimer      float64

	cfg       RespawnConfig
	player    *Player
	collision *CollisionSystem
	torpedoes TorpedoClearer
	camera    Camera
	audio     Audio
	log       *logrus.Entry
}

// NewRespawnSystem creates the respawn system. The candidate points are
// shuffled once here.
func NewRespawnSystem(cfg RespawnConfig, player *Player, cs *CollisionSystem, torpedoes TorpedoClearer, svc Services) *RespawnSystem {
	points := append([]Vec2(nil), cfg.Points...)
	if svc.Rand != nil {
		svc.Rand.Shuffle(len(points), func(i, j int) {
			points[i], points[j] = points[j], points[i]
		})
	}

	return &RespawnSystem{
		points:    points,
		cfg:       cfg,
		player:    player,
		collision: cs,
		torpedoes: torpedoes,
		camera:    svc.Camera,
		audio:     orNop(svc.Audio),
		log:       orDiscard(svc.Log),
	}
}

// Points returns the candidate points in rotation order
func (r *RespawnSystem) Points() []Vec2 {
	return r.points
}

// StartRespawn begins the respawn delay. It does nothing unless the player
// is dead and no respawn is pending.
func (r *RespawnSystem) StartRespawn() bool {
	if r.Respawning || r.player.Health > 0 {
		return false
	}
	r.Respawning = true
	r.delayTimer = 0
	r.log.WithField("delay", r.cfg.Delay).Info("respawn scheduled")
	return true
}

// Remaining returns the seconds until a pending respawn
func (r *RespawnSystem) Remaining() float64 {
	if !r.Respawning {
		return 0
	}
	return max(0, r.cfg.Delay-r.delayTimer)
}

// Update advances the respawn delay and the invincibility window
func (r *RespawnSystem) Update(dt float64) {
	if r.Respawning {
		r.delayTimer += dt
		if r.delayTimer >= r.cfg.Delay {
			r.execute()
			return
		}
	}

	p := r.player
	if !p.Invincible {
		return
	}

	r.protectionTimer += dt
	if r.protectionTimer >= r.cfg.Protection {
		p.Invincible = false
		p.FlashVisible = true
		r.log.Debug("invincibility ended")
		return
	}

	r.flashTimer += dt
	if r.flashTimer >= r.cfg.FlashInterval {
		r.flashTimer -= r.cfg.FlashInterval
		p.FlashVisible = !p.FlashVisible
	}
}

// FindSafePoint walks the candidates from the cursor and returns the first
// one with no live monster inside the safe radius and no obstacle under the
// player's footprint. When none qualifies the first candidate is returned.
func (r *RespawnSystem) FindSafePoint() Vec2 {
	if len(r.points) == 0 {
		return r.player.Center()
	}

	for range r.points {
		point := r.points[r.cursor]
		r.cursor = (r.cursor + 1) % len(r.points)
		if r.isSafe(point) {
			return point
		}
	}

	r.log.WithField("point", r.points[0]).Warn("no safe respawn point")
	return r.points[0]
}

func (r *RespawnSystem) isSafe(point Vec2) bool {
	for _, m := range r.collision.MonstersInRadius(point, r.cfg.SafeRadius) {
		if m.Center().DistanceTo(point) < r.cfg.SafeRadius {
			return false
		}
	}
	return !r.collision.HitsObstacle(r.player.Rect.WithCenter(point))
}

func (r *RespawnSystem) execute() {
	point := r.FindSafePoint()
	r.player.Respawn(point)

	r.player.Invincible = true
	r.player.FlashVisible = true
	r.protectionTimer = 0
	r.flashTimer = 0

	cleared := 0
	if r.torpedoes != nil {
		cleared = r.torpedoes.ClearTorpedoes()
	}
	r.Respawning = false

	if r.camera != nil {
		r.camera.CenterOn(point)
	}
	r.audio.Play(SoundRespawn)

	r.log.WithFields(logrus.Fields{
		"id":      r.player.ID,
		"point":   point,
		"cleared": cleared,
	}).Info("player respawned")
}
