package game

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// timeEpsilon absorbs the rounding of summed frame times
const timeEpsilon = 1e-9

// MonsterSink takes ownership of spawned monsters
type MonsterSink interface {
	AddMonster(m *Monster)
}

// Spawner seeds the world with monsters and sends scaled waves over time
type Spawner struct {
	// Wave counter
	Wave int

	// Difficulty multiplies every wave's per-kind count. It only grows.
	Difficulty float64

	// Elapsed simulation time
	Elapsed float64

	// Spawned counts every monster created so far
	Spawned int

	difficultySteps int
	started         bool

	cfg        SpawnerConfig
	monsterCfg MonsterConfig
	sink       MonsterSink
	rng        *rand.Rand
	log        *logrus.Entry
}

// NewSpawner creates a spawner that hands monsters to sink
func NewSpawner(cfg SpawnerConfig, monsterCfg MonsterConfig, sink MonsterSink, rng *rand.Rand, log *logrus.Entry) *Spawner {
	return &Spawner{
		Difficulty: 1.0,
		cfg:        cfg,
		monsterCfg: monsterCfg,
		sink:       sink,
		rng:        rng,
		log:        orDiscard(log),
	}
}

// Start spawns the initial batch. Only the first call has an effect.
func (s *Spawner) Start() {
	if s.started {
		return
	}
	s.started = true

	for _, k := range s.cfg.Kinds {
		for i := 0; i < k.InitialCount; i++ {
			s.spawn(k)
		}
	}
	s.log.WithField("spawned", s.Spawned).Info("initial batch spawned")
}

// Update advances the clock, then raises the difficulty and sends the waves
// that fell due. Both schedules are counted from Elapsed.
func (s *Spawner) Update(dt float64) {
	s.Elapsed += dt

	for s.difficultySteps < dueCount(s.Elapsed, s.cfg.DifficultyInterval) {
		s.difficultySteps++
		s.Difficulty += s.cfg.DifficultyStep
		s.log.WithField("difficulty", s.Difficulty).Debug("difficulty increased")
	}

	for s.Wave < dueCount(s.Elapsed, s.cfg.Interval) {
		s.spawnWave()
	}
}

// dueCount returns how many whole intervals fit in elapsed. A non-positive
// interval never comes due.
func dueCount(elapsed, interval float64) int {
	if interval <= 0 {
		return 0
	}
	return int(elapsed/interval + timeEpsilon)
}

// WaveCount returns how many monsters of a kind the next wave brings
func (s *Spawner) WaveCount(k SpawnKindConfig) int {
	return max(1, int(math.Round(k.WaveRatio*s.Difficulty)))
}

// NextWaveIn returns the seconds until the next wave
func (s *Spawner) NextWaveIn() float64 {
	return float64(s.Wave+1)*s.cfg.Interval - s.Elapsed
}

func (s *Spawner) spawnWave() {
	s.Wave++
	total := 0
	for _, k := range s.cfg.Kinds {
		n := s.WaveCount(k)
		for i := 0; i < n; i++ {
			s.spawn(k)
		}
		total += n
	}

	s.log.WithFields(logrus.Fields{
		"wave":       s.Wave,
		"difficulty": s.Difficulty,
		"spawned":    total,
	}).Info("wave spawned")
}

// spawn places one monster at a uniform point inside a random area of its kind
func (s *Spawner) spawn(k SpawnKindConfig) {
	if len(k.Areas) == 0 {
		s.log.WithField("kind", k.Kind).Warn("no spawn area")
		return
	}

	area := k.Areas[s.rng.Intn(len(k.Areas))]
	pos := Vec2{
		X: area.X + s.rng.Float64()*area.W,
		Y: area.Y + s.rng.Float64()*area.H,
	}

	s.sink.AddMonster(NewMonster(k.Kind, pos, s.rng, s.monsterCfg))
	s.Spawned++
}
