package game

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnerInitialBatch(t *testing.T) {
	cfg := DefaultConfig()
	sink := &fakeSink{}
	s := NewSpawner(cfg.Spawner, cfg.Monsters, sink, newRand(), nullLog())

	s.Start()
	s.Start()

	require.Len(t, sink.monsters, 43)
	assert.Equal(t, 43, s.Spawned)

	counts := map[MonsterKind]int{}
	for _, m := range sink.monsters {
		counts[m.Kind]++
	}
	assert.Equal(t, map[MonsterKind]int{
		MonsterLamprey:    20,
		MonsterSquid:      4,
		MonsterAnglerFish: 15,
		MonsterSwordFish:  4,
	}, counts)
}

func TestSpawnerPlacesMonstersInsideAreas(t *testing.T) {
	cfg := DefaultConfig()
	sink := &fakeSink{}
	s := NewSpawner(cfg.Spawner, cfg.Monsters, sink, newRand(), nullLog())
	s.Start()

	areas := map[MonsterKind][]Rect{}
	for _, k := range cfg.Spawner.Kinds {
		areas[k.Kind] = k.Areas
	}

	for _, m := range sink.monsters {
		inside := false
		for _, a := range areas[m.Kind] {
			if a.Contains(m.Center()) {
				inside = true
			}
		}
		assert.True(t, inside, "%s spawned at %v", m.Kind, m.Center())
	}
}

func TestSpawnerWaves(t *testing.T) {
	cfg := DefaultConfig()
	logger, hook := test.NewNullLogger()
	sink := &fakeSink{}
	s := NewSpawner(cfg.Spawner, cfg.Monsters, sink, newRand(), logrus.NewEntry(logger))
	s.Start()

	for i := 0; i < 180; i++ {
		s.Update(0.5)
	}

	assert.Equal(t, 3, s.Wave)
	assert.Equal(t, 1.25, s.Difficulty)
	assert.Equal(t, 90.0, s.Elapsed)
	// 10 monsters at difficulty 1, then 13 twice at 1.25
	assert.Equal(t, 43+10+13+13, len(sink.monsters))

	var waves []logrus.Fields
	for _, e := range hook.AllEntries() {
		if e.Message == "wave spawned" {
			waves = append(waves, e.Data)
		}
	}
	require.Len(t, waves, 3)
	assert.Equal(t, 10, waves[0]["spawned"])
	assert.Equal(t, 13, waves[2]["spawned"])
}

func TestSpawnerWavesAtFrameRates(t *testing.T) {
	tests := []struct {
		name  string
		dt    float64
		ticks int
	}{
		{"60 Hz", 1.0 / 60, 5400},
		{"16 ms", 0.016, 5625},
		{"144 Hz", 1.0 / 144, 12960},
		{"30 Hz", 1.0 / 30, 2700},
		{"100 ms", 0.1, 900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			s := NewSpawner(cfg.Spawner, cfg.Monsters, &fakeSink{}, newRand(), nullLog())

			for i := 0; i < tt.ticks; i++ {
				s.Update(tt.dt)
			}

			assert.InDelta(t, 90, s.Elapsed, 1e-6)
			assert.Equal(t, 3, s.Wave)
			assert.Equal(t, 1.25, s.Difficulty)
			assert.InDelta(t, 30, s.NextWaveIn(), 1e-6)
		})
	}
}

func TestSpawnerWithoutIntervals(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Spawner.Interval = 0
	cfg.Spawner.DifficultyInterval = 0
	sink := &fakeSink{}
	s := NewSpawner(cfg.Spawner, cfg.Monsters, sink, newRand(), nullLog())

	s.Update(1)
	s.Update(100)

	assert.Zero(t, s.Wave)
	assert.Equal(t, 1.0, s.Difficulty)
	assert.Empty(t, sink.monsters)
}

func TestSpawnerCatchesUpOnLongTicks(t *testing.T) {
	cfg := DefaultConfig()
	sink := &fakeSink{}
	s := NewSpawner(cfg.Spawner, cfg.Monsters, sink, newRand(), nullLog())

	s.Update(125)

	assert.Equal(t, 4, s.Wave)
	assert.Equal(t, 1.5, s.Difficulty)
	assert.InDelta(t, 25, s.NextWaveIn(), 1e-9)
}

func TestWaveCount(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSpawner(cfg.Spawner, cfg.Monsters, &fakeSink{}, newRand(), nullLog())

	assert.Equal(t, 1, s.WaveCount(SpawnKindConfig{WaveRatio: 0}))
	assert.Equal(t, 4, s.WaveCount(SpawnKindConfig{WaveRatio: 4}))

	s.Difficulty = 1.25
	assert.Equal(t, 3, s.WaveCount(SpawnKindConfig{WaveRatio: 2}))
	assert.Equal(t, 4, s.WaveCount(SpawnKindConfig{WaveRatio: 3}))
}
