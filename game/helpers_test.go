package game

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// openConfig returns the defaults on a 2000x2000 area centred on the origin
// with no static geometry
func openConfig() Config {
	cfg := DefaultConfig()
	cfg.World.Bounds = Bounds{Left: -1000, Right: 1000, Top: -1000, Bottom: 1000, NorthLimit: -1000}
	cfg.World.Obstacles = nil
	cfg.World.Props = nil
	cfg.World.BorderWallThickness = 0
	return cfg
}

func nullLog() *logrus.Entry {
	logger, _ := test.NewNullLogger()
	return logrus.NewEntry(logger)
}

func newCollision(cfg Config) (*World, *CollisionSystem) {
	world := NewWorld(cfg)
	return world, NewCollisionSystem(world, NewStaticMap(cfg.World))
}

func newTestPlayer(cfg Config, pos Vec2, audio Audio) *Player {
	return NewPlayer(pos, cfg.Player, cfg.Sonar, audio, nullLog())
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

type fakeTarget struct {
	hits []int
}

func (f *fakeTarget) TakeDamage(amount int) bool {
	f.hits = append(f.hits, amount)
	return true
}

type fakeXP struct {
	total int
	calls int
}

func (f *fakeXP) AddXP(amount int) {
	f.total += amount
	f.calls++
}

type fakeSink struct {
	monsters []*Monster
}

func (f *fakeSink) AddMonster(m *Monster) {
	f.monsters = append(f.monsters, m)
}

type fakeClearer struct {
	calls int
}

func (f *fakeClearer) ClearTorpedoes() int {
	f.calls++
	return 3
}
