package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"
)

type countingDeath struct {
	calls int
}

func (c *countingDeath) StartRespawn() bool {
	c.calls++
	return true
}

func TestPlayerProgression(t *testing.T) {
	cfg := openConfig()

	t.Run("below the threshold", func(t *testing.T) {
		p := newTestPlayer(cfg, Vec2{}, nil)
		p.AddXP(49)
		assert.Equal(t, 1, p.Level)
		assert.Equal(t, 49, p.XP)
	})

	t.Run("first level", func(t *testing.T) {
		p := newTestPlayer(cfg, Vec2{}, nil)
		p.AddXP(50)
		assert.Equal(t, 2, p.Level)
		assert.Equal(t, 0, p.XP)
		assert.Equal(t, 24, p.Damage)
		assert.InDelta(t, 9.2, p.BoostCost, 1e-9)
		assert.InDelta(t, 13.8, p.TorpedoCost, 1e-9)
		assert.Zero(t, p.HPRegenRate)
	})

	t.Run("several levels at once", func(t *testing.T) {
		p := newTestPlayer(cfg, Vec2{}, nil)
		p.AddXP(50 + 75 + 10)
		assert.Equal(t, 3, p.Level)
		assert.Equal(t, 10, p.XP)
		assert.Equal(t, 1.0, p.HPRegenRate)
	})

	t.Run("max level", func(t *testing.T) {
		p := newTestPlayer(cfg, Vec2{}, nil)
		p.AddXP(10000)
		assert.Equal(t, 20, p.Level)
		assert.Equal(t, p.XPToNext(20), p.XP)
		assert.Equal(t, 100, p.Damage)
		assert.Equal(t, 3.0, p.BoostCost)
		assert.Equal(t, 5.0, p.TorpedoCost)
		assert.Equal(t, 5.0, p.HPRegenRate)

		p.AddXP(500)
		assert.Equal(t, 20, p.Level)
		assert.Equal(t, p.XPToNext(20), p.XP)
	})

	t.Run("regen rate bands", func(t *testing.T) {
		p := newTestPlayer(cfg, Vec2{}, nil)
		for p.Level < 11 {
			p.AddXP(p.XPToNext(p.Level))
		}
		assert.Equal(t, 1.0, p.HPRegenRate)
		p.AddXP(p.XPToNext(p.Level))
		assert.Equal(t, 12, p.Level)
		assert.Equal(t, 5.0, p.HPRegenRate)
	})
}

func TestPlayerFire(t *testing.T) {
	cfg := openConfig()
	_, cs := newCollision(cfg)
	ctrl := gomock.NewController(t)
	audio := NewMockAudio(ctrl)
	audio.EXPECT().Play(SoundTorpedoLaunch).Times(2)

	p := newTestPlayer(cfg, Vec2{}, audio)
	p.aimAt(Vec2{0, 100})

	launch, ok := p.TryFire()
	require.True(t, ok)
	assert.Equal(t, Vec2{0, 1}, launch.Aim)
	assert.Equal(t, p.Damage, launch.Damage)
	assert.InDelta(t, 85, p.Power, 1e-9)

	_, ok = p.TryFire()
	assert.False(t, ok, "cooldown")

	p.Update(0.5, cs)
	_, ok = p.TryFire()
	assert.True(t, ok)

	p.Update(0.5, cs)
	p.Power = p.TorpedoCost - 1
	_, ok = p.TryFire()
	assert.False(t, ok, "not enough power")
}

func TestPlayerSonar(t *testing.T) {
	cfg := openConfig()
	_, cs := newCollision(cfg)
	ctrl := gomock.NewController(t)
	audio := NewMockAudio(ctrl)
	audio.EXPECT().Play(SoundSonarPing).Times(1)

	p := newTestPlayer(cfg, Vec2{}, audio)

	ok, reason := p.TryActivateSonar()
	assert.False(t, ok)
	assert.Equal(t, SonarLevelTooLow, reason)

	p.Level = cfg.Sonar.Level
	p.Power = cfg.Sonar.Cost - 1
	_, reason = p.TryActivateSonar()
	assert.Equal(t, SonarLowPower, reason)

	p.Power = 100
	ok, reason = p.TryActivateSonar()
	require.True(t, ok)
	assert.Equal(t, SonarAccepted, reason)
	assert.True(t, p.SonarActive())
	assert.True(t, p.State().SonarActive)
	assert.InDelta(t, cfg.Sonar.Duration, p.SonarRemaining(), 1e-9)

	_, reason = p.TryActivateSonar()
	assert.Equal(t, SonarCoolingDown, reason)

	p.Update(cfg.Sonar.Duration, cs)
	assert.False(t, p.SonarActive())
	assert.Zero(t, p.SonarRemaining())
	assert.InDelta(t, cfg.Sonar.Cooldown-cfg.Sonar.Duration, p.SonarCooldownRemaining(), 1e-9)

	p.Dead = true
	_, reason = p.TryActivateSonar()
	assert.Equal(t, SonarPlayerDead, reason)
}

func TestPlayerTakeDamage(t *testing.T) {
	cfg := openConfig()
	_, cs := newCollision(cfg)
	ctrl := gomock.NewController(t)
	audio := NewMockAudio(ctrl)
	audio.EXPECT().Play(SoundDamage).Times(3)
	audio.EXPECT().Play(SoundLowHealth).Times(1)

	p := newTestPlayer(cfg, Vec2{}, audio)
	death := &countingDeath{}
	p.OnDeath = death

	require.True(t, p.TakeDamage(30))
	assert.Equal(t, 70, p.Health)
	assert.True(t, p.Hit)
	assert.False(t, p.TakeDamage(30), "hit cooldown")

	p.Update(cfg.Player.HitCooldown+0.1, cs)
	assert.False(t, p.Hit)
	require.True(t, p.TakeDamage(60))
	p.Update(0.1, cs)
	p.Update(0.1, cs)

	p.Invincible = true
	p.Update(cfg.Player.HitCooldown+0.1, cs)
	assert.False(t, p.TakeDamage(5), "invincible")
	p.Invincible = false

	require.True(t, p.TakeDamage(500))
	assert.Equal(t, 0, p.Health)
	assert.True(t, p.Dead)
	assert.Equal(t, 1, death.calls)

	p.Update(cfg.Player.HitCooldown+0.1, cs)
	assert.False(t, p.TakeDamage(5), "dead")
	assert.Equal(t, 1, death.calls)
}

func TestPlayerRegeneration(t *testing.T) {
	cfg := openConfig()
	_, cs := newCollision(cfg)

	p := newTestPlayer(cfg, Vec2{}, nil)
	for p.Level < cfg.Player.HPRegenLevel {
		p.AddXP(p.XPToNext(p.Level))
	}
	require.Equal(t, 1.0, p.HPRegenRate)

	require.True(t, p.TakeDamage(10))
	p.Update(cfg.Player.HPRegenDelay-0.5, cs)
	assert.Equal(t, 90, p.Health, "still inside the regen delay")

	for i := 0; i < 2; i++ {
		p.Update(0.25, cs)
	}
	for i := 0; i < 4; i++ {
		p.Update(0.25, cs)
	}
	assert.Equal(t, 91, p.Health)

	p.Power = 0
	p.Update(2, cs)
	assert.InDelta(t, 2*cfg.Player.PowerRegen, p.Power, 1e-9)
}

func TestPlayerMovement(t *testing.T) {
	cfg := openConfig()
	_, cs := newCollision(cfg)
	p := newTestPlayer(cfg, Vec2{}, nil)

	_, fired := p.ApplyInput(InputState{Right: true, Cursor: Vec2{}}, 1)
	assert.False(t, fired)
	assert.Equal(t, Vec2{1, 0}, p.Aim, "cursor on the player aims along +X")
	p.Update(1, cs)
	assert.InDelta(t, cfg.Player.Speed, p.Center().X, 1e-9)
	assert.Equal(t, FacingRight, p.Facing)

	p.ApplyInput(InputState{Left: true, Up: true, Boost: true}, 1)
	assert.Equal(t, cfg.Player.BoostSpeed, p.Speed)
	assert.InDelta(t, 100-cfg.Player.BoostCost, p.Power, 1e-9)
	p.Update(1, cs)
	assert.True(t, p.FaceLeft())
	assert.Equal(t, FacingLeftUp, p.Facing)

	p.Dead = true
	launch, fired := p.ApplyInput(InputState{Right: true, Fire: true}, 1)
	assert.False(t, fired)
	assert.Equal(t, TorpedoLaunch{}, launch)
	assert.True(t, p.Direction.IsZero())
}

func TestPlayerStaysWithinLimits(t *testing.T) {
	cfg := openConfig()

	rapid.Check(t, func(t *rapid.T) {
		_, cs := newCollision(cfg)
		p := newTestPlayer(cfg, Vec2{}, nil)

		steps := rapid.IntRange(1, 80).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			in := InputState{
				Up:     rapid.Bool().Draw(t, "up"),
				Down:   rapid.Bool().Draw(t, "down"),
				Left:   rapid.Bool().Draw(t, "left"),
				Right:  rapid.Bool().Draw(t, "right"),
				Boost:  rapid.Bool().Draw(t, "boost"),
				Fire:   rapid.Bool().Draw(t, "fire"),
				Sonar:  rapid.Bool().Draw(t, "sonar"),
				Cursor: Vec2{X: rapid.Float64Range(-500, 500).Draw(t, "cx"), Y: rapid.Float64Range(-500, 500).Draw(t, "cy")},
			}
			dt := rapid.Float64Range(0.001, 0.2).Draw(t, "dt")

			p.ApplyInput(in, dt)
			if rapid.Bool().Draw(t, "hit") {
				p.TakeDamage(rapid.IntRange(0, 40).Draw(t, "damage"))
			}
			p.AddXP(rapid.IntRange(0, 30).Draw(t, "xp"))
			p.Update(dt, cs)

			if p.Power < 0 || p.Power > p.MaxPower {
				t.Fatalf("power %v outside [0, %v]", p.Power, p.MaxPower)
			}
			if p.Health < 0 || p.Health > p.MaxHealth {
				t.Fatalf("health %v outside [0, %v]", p.Health, p.MaxHealth)
			}
			if p.Level > cfg.Player.MaxLevel {
				t.Fatalf("level %d above max", p.Level)
			}
			if !cs.Bounds().Rect().Contains(p.Center()) {
				t.Fatalf("player left the world at %v", p.Center())
			}
		}
	})
}
