package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

//go:generate go tool mockgen -destination=mock_services_test.go -package=game . Audio,Camera

// SoundKey names a fire-and-forget sound effect
type SoundKey string

const (
	SoundTorpedoLaunch SoundKey = "torpedo_launch"
	SoundTorpedoHit    SoundKey = "torpedo_hit"
	SoundSonarPing     SoundKey = "sonar_ping"
	SoundDamage        SoundKey = "damage"
	SoundLowHealth     SoundKey = "low_health"
	SoundTeleport      SoundKey = "teleport"
	SoundRespawn       SoundKey = "respawn"
)

// Audio plays sound effects. Failures are the implementation's problem.
type Audio interface {
	Play(key SoundKey)
}

// NopAudio is the silent Audio used when none is provided
type NopAudio struct{}

// Play does nothing
func (NopAudio) Play(SoundKey) {}

// Camera follows the player through the world
type Camera interface {
	CenterOn(target Vec2)
	Offset() Vec2
}

// TileMap exposes the static geometry of the world
type TileMap interface {
	Obstacles() []Rect
	Props() []Rect
	Bounds() Bounds
}

// InputSource is polled once per tick
type InputSource interface {
	Poll() InputState
}

// Services are the collaborators the simulation calls into
type Services struct {
	Camera Camera
	Audio  Audio
	Map    TileMap
	Input  InputSource
	Log    *logrus.Entry
	Rand   *rand.Rand
}

// withDefaults fills every nil service with a working default
func (s Services) withDefaults(cfg Config) Services {
	if s.Map == nil {
		s.Map = NewStaticMap(cfg.World)
	}
	if s.Camera == nil {
		s.Camera = NewFollowCamera(float64(cfg.ScreenWidth), float64(cfg.ScreenHeight), s.Map.Bounds())
	}
	if s.Input == nil {
		s.Input = InputFunc(func() InputState { return InputState{} })
	}
	s.Audio = orNop(s.Audio)
	s.Log = orDiscard(s.Log)
	if s.Rand == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.Rand = rand.New(rand.NewSource(seed))
	}
	return s
}

func orNop(a Audio) Audio {
	if a == nil {
		return NopAudio{}
	}
	return a
}

func orDiscard(log *logrus.Entry) *logrus.Entry {
	if log != nil {
		return log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
