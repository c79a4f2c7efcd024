package game

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Stats summarises a running simulation
type Stats struct {
	Elapsed    float64
	Ticks      int
	Kills      int
	Waves      int
	Difficulty float64
	Monsters   int
	Torpedoes  int
	Explosions int
}

// Game represents the simulation state
type Game struct {
	config Config
	svc    Services
	log    *logrus.Entry

	world     *World
	collision *CollisionSystem

	player     *Player
	monsters   []*Monster
	torpedoes  []*Torpedo
	explosions []*Explosion

	spawner *Spawner
	respawn *RespawnSystem
	portals *PortalNetwork

	monsterEnv MonsterEnv
	torpedoEnv TorpedoEnv

	elapsed float64
	ticks   int
	kills   int
}

// NewGame creates a new simulation. Nil services are replaced by defaults and
// a config that fails validation is replaced by DefaultConfig, keeping its seed.
func NewGame(config Config, svc Services) *Game {
	if err := config.Validate(); err != nil {
		orDiscard(svc.Log).WithError(err).Error("invalid config, using defaults")
		seed := config.Seed
		config = DefaultConfig()
		config.Seed = seed
	}
	svc = svc.withDefaults(config)

	world := NewWorld(config)
	collision := NewCollisionSystem(world, svc.Map)

	g := &Game{
		config:     config,
		svc:        svc,
		log:        svc.Log.WithField("component", "game"),
		world:      world,
		collision:  collision,
		monsters:   make([]*Monster, 0, 256),
		torpedoes:  make([]*Torpedo, 0, 16),
		explosions: make([]*Explosion, 0, 16),
	}

	g.player = NewPlayer(config.World.PlayerStart, config.Player, config.Sonar, svc.Audio, svc.Log.WithField("component", "player"))
	g.respawn = NewRespawnSystem(config.Respawn, g.player, collision, g, svc)
	g.player.OnDeath = g.respawn
	g.portals = NewPortalNetwork(config.Portals.Rects, config.Portals, svc)
	g.spawner = NewSpawner(config.Spawner, config.Monsters, g, svc.Rand, svc.Log.WithField("component", "spawner"))

	g.monsterEnv = MonsterEnv{
		Collision: collision,
		Target:    g.player,
		Rand:      svc.Rand,
		Config:    config.Monsters,
	}
	b := svc.Map.Bounds()
	g.torpedoEnv = TorpedoEnv{
		Collision: collision,
		Cleanup:   RectFromCorners(b.Left, config.World.CleanupTop, b.Right, b.Bottom),
	}

	g.spawner.Start()
	svc.Camera.CenterOn(g.player.Center())

	g.log.WithFields(logrus.Fields{
		"monsters": len(g.monsters),
		"portals":  len(g.portals.Nodes()),
	}).Info("simulation ready")

	return g
}

// Step advances the simulation by dt seconds. Non-positive dt is ignored.
// Phases run in a fixed order: spawner, respawn, player, monsters,
// torpedoes, explosions, portals, camera.
func (g *Game) Step(dt float64) {
	if dt <= 0 {
		return
	}
	g.elapsed += dt
	g.ticks++

	g.spawner.Update(dt)
	g.respawn.Update(dt)

	in := g.svc.Input.Poll()
	if launch, ok := g.player.ApplyInput(in, dt); ok {
		g.torpedoes = append(g.torpedoes, NewTorpedo(launch, g.player, g.config.Torpedo))
	}
	g.player.Update(dt, g.collision)

	g.updateMonsters(dt)
	g.updateTorpedoes(dt)
	g.updateExplosions(dt)

	g.portals.Update(dt, g.player, in)
	g.svc.Camera.CenterOn(g.player.Center())
}

func (g *Game) updateMonsters(dt float64) {
	state := g.player.State()

	alive := g.monsters[:0]
	for _, m := range g.monsters {
		if m.Update(dt, state, &g.monsterEnv) {
			g.world.UpdateMonsterCell(m)
			alive = append(alive, m)
			continue
		}
		g.world.Unregister(m)
		g.kills++
		g.log.WithFields(logrus.Fields{
			"id":   m.ID,
			"kind": m.Kind,
		}).Debug("monster killed")
	}
	clear(g.monsters[len(alive):])
	g.monsters = alive
}

func (g *Game) updateTorpedoes(dt float64) {
	kept := g.torpedoes[:0]
	for _, t := range g.torpedoes {
		switch t.Update(dt, &g.torpedoEnv) {
		case TorpedoFlying:
			kept = append(kept, t)
		case TorpedoDetonated:
			e := NewExplosion(t.Position, g.config.Explosion)
			g.explosions = append(g.explosions, e)
			g.svc.Audio.Play(SoundTorpedoHit)
			g.log.WithFields(logrus.Fields{
				"id":        t.ID,
				"explosion": e.ID,
				"point":     t.Position,
			}).Debug("torpedo detonated")
		}
	}
	clear(g.torpedoes[len(kept):])
	g.torpedoes = kept
}

func (g *Game) updateExplosions(dt float64) {
	kept := g.explosions[:0]
	for _, e := range g.explosions {
		if e.Update(dt) {
			kept = append(kept, e)
		}
	}
	clear(g.explosions[len(kept):])
	g.explosions = kept
}

// AddMonster registers a spawned monster
func (g *Game) AddMonster(m *Monster) {
	g.monsters = append(g.monsters, m)
	g.world.Register(m)
}

// ClearTorpedoes removes every torpedo in flight and returns how many there were
func (g *Game) ClearTorpedoes() int {
	n := len(g.torpedoes)
	clear(g.torpedoes)
	g.torpedoes = g.torpedoes[:0]
	return n
}

func (g *Game) Config() Config              { return g.config }
func (g *Game) Player() *Player             { return g.player }
func (g *Game) Monsters() []*Monster        { return g.monsters }
func (g *Game) Torpedoes() []*Torpedo       { return g.torpedoes }
func (g *Game) Explosions() []*Explosion    { return g.explosions }
func (g *Game) Portals() *PortalNetwork     { return g.portals }
func (g *Game) Spawner() *Spawner           { return g.spawner }
func (g *Game) Respawn() *RespawnSystem     { return g.respawn }
func (g *Game) Collision() *CollisionSystem { return g.collision }
func (g *Game) Camera() Camera              { return g.svc.Camera }
func (g *Game) Map() TileMap                { return g.svc.Map }
func (g *Game) Elapsed() float64            { return g.elapsed }

// Stats returns counters for the HUD and logs
func (g *Game) Stats() Stats {
	return Stats{
		Elapsed:    g.elapsed,
		Ticks:      g.ticks,
		Kills:      g.kills,
		Waves:      g.spawner.Wave,
		Difficulty: g.spawner.Difficulty,
		Monsters:   len(g.monsters),
		Torpedoes:  len(g.torpedoes),
		Explosions: len(g.explosions),
	}
}

// SpriteKind tells the renderer what a sprite is
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpritePortal
	SpriteTorpedo
	SpriteMonster
	SpriteExplosion
)

// Sprite is one entry of the draw list
type Sprite struct {
	// ID of the entity drawn, stable across frames
	ID uuid.UUID

	Kind   SpriteKind
	Layer  Layer
	Rect   Rect
	Facing Facing
	Frame  int

	// Alpha is the opacity (0-255)
	Alpha uint8

	// Rotation in degrees, for torpedoes
	Rotation float64

	// Monster species, for monster sprites
	Monster MonsterKind

	// Highlighted marks the portal the player can use
	Highlighted bool
}

// Sprites returns the draw list sorted by layer, then by centre Y
func (g *Game) Sprites() []Sprite {
	sprites := make([]Sprite, 0, 1+len(g.portals.Nodes())+len(g.monsters)+len(g.torpedoes)+len(g.explosions))

	for _, n := range g.portals.Nodes() {
		sprites = append(sprites, Sprite{
			ID:          n.ID,
			Kind:        SpritePortal,
			Layer:       LayerGround,
			Rect:        n.Rect,
			Frame:       g.portals.Frame,
			Alpha:       255,
			Highlighted: n == g.portals.Current,
		})
	}

	p := g.player
	alpha := uint8(255)
	switch {
	case p.Dead:
		alpha = 100
	case p.Invincible && !p.FlashVisible:
		alpha = 100
	case p.Hit:
		alpha = 128
	}
	sprites = append(sprites, Sprite{
		ID:     p.ID,
		Kind:   SpritePlayer,
		Layer:  p.Layer,
		Rect:   p.Rect,
		Facing: p.Facing,
		Frame:  p.Frame,
		Alpha:  alpha,
	})

	for _, m := range g.monsters {
		sprites = append(sprites, Sprite{
			ID:      m.ID,
			Kind:    SpriteMonster,
			Layer:   m.Layer,
			Rect:    m.Rect,
			Facing:  m.Facing,
			Frame:   m.Frame,
			Alpha:   m.Alpha,
			Monster: m.Kind,
		})
	}

	for _, t := range g.torpedoes {
		sprites = append(sprites, Sprite{
			ID:       t.ID,
			Kind:     SpriteTorpedo,
			Layer:    LayerProjectile,
			Rect:     t.Rect(),
			Frame:    t.Frame,
			Alpha:    255,
			Rotation: t.RotationDegrees(),
		})
	}

	for _, e := range g.explosions {
		sprites = append(sprites, Sprite{
			ID:    e.ID,
			Kind:  SpriteExplosion,
			Layer: LayerEffect,
			Rect:  e.Rect(),
			Frame: e.Frame,
			Alpha: 255,
		})
	}

	slices.SortStableFunc(sprites, func(a, b Sprite) int {
		if c := cmp.Compare(a.Layer, b.Layer); c != 0 {
			return c
		}
		return cmp.Compare(a.Rect.Center().Y, b.Rect.Center().Y)
	})
	return sprites
}
