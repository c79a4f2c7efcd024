package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 51, cfg.CellCountX())
	assert.Equal(t, 11, cfg.CellCountY())
}

func TestParseConfigOverrides(t *testing.T) {
	data := []byte(`
seed: 7
monsters:
  detection_range: 300
spawner:
  kinds:
    - kind: squid
      areas: [{x: 0, y: 1000, w: 10, h: 10}]
      initial_count: 2
      wave_ratio: 1.5
    - kind: kraken
      areas: [{x: 0, y: 1000, w: 10, h: 10}]
respawn:
  points: [{x: 1, y: 2}]
`)

	cfg, err := ParseConfig(data)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 300.0, cfg.Monsters.DetectionRange)
	assert.Equal(t, 500.0, cfg.Monsters.LoseInterestRange, "untouched fields keep their defaults")

	require.Len(t, cfg.Spawner.Kinds, 2)
	assert.Equal(t, MonsterSquid, cfg.Spawner.Kinds[0].Kind)
	assert.Equal(t, 1.5, cfg.Spawner.Kinds[0].WaveRatio)
	assert.Equal(t, MonsterFly, cfg.Spawner.Kinds[1].Kind, "unknown species fall back to the default")
	assert.Equal(t, []Vec2{{X: 1, Y: 2}}, cfg.Respawn.Points)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"malformed yaml", "monsters: [", false},
		{"hysteresis inverted", "monsters: {detection_range: 600}", true},
		{"fog inside visibility", "monsters: {fog_radius: 100}", true},
		{"empty bounds", "world: {bounds: {left: 10, right: 10}}", true},
		{"max level too low", "player: {max_level: 1}", true},
		{"spawner kind without areas", "spawner: {kinds: [{kind: squid}]}", true},
		{"zero explosion fps", "explosion: {fps: 0}", true},
		{"negative difficulty step", "spawner: {difficulty_step: -1}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalidConfig), err.Error())
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("screen_width: 800\nsonar: {range: 600}\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.ScreenWidth)
	assert.Equal(t, 600.0, cfg.Sonar.Range)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
