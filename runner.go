package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"subnautic/game"
)

// runner adapts the simulation to ebiten's game loop
type runner struct {
	sim      *game.Game
	renderer *renderer
	profiler *Profiler
	log      *logrus.Entry

	width, height int

	lastUpdateTime time.Time
	startTime      time.Time
	debug          bool

	// FPS tracking
	fps              float64
	fpsUpdateTimer   float64
	fpsUpdateCounter int
}

func newRunner(sim *game.Game, camera *game.FollowCamera, profiler *Profiler, log *logrus.Entry) *runner {
	cfg := sim.Config()
	now := time.Now()
	rng := rand.New(rand.NewSource(now.UnixNano()))
	snow := newMarineSnow(rng, sim.Player().Center(), camera.Width, camera.Height)

	return &runner{
		sim:            sim,
		renderer:       &renderer{sim: sim, camera: camera, snow: snow},
		profiler:       profiler,
		log:            log.WithField("component", "runner"),
		width:          cfg.ScreenWidth,
		height:         cfg.ScreenHeight,
		lastUpdateTime: now,
		startTime:      now,
	}
}

// Update advances the simulation by the wall-clock time since the last call
func (r *runner) Update() error {
	now := time.Now()
	deltaTime := now.Sub(r.lastUpdateTime).Seconds()
	r.lastUpdateTime = now

	// Clamp delta time to prevent large jumps
	if deltaTime > 0.1 {
		deltaTime = 0.1
	}

	// F1 toggles the debug overlay
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		r.debug = !r.debug
	}
	handleWindowKeys()

	r.sim.Step(deltaTime)
	r.renderer.snow.Update(deltaTime, r.renderer.viewCenter(), r.renderer.camera.Width, r.renderer.camera.Height)
	r.trackFPS(deltaTime)
	return nil
}

// trackFPS updates the FPS estimate every half second and captures a
// profile when it drops
func (r *runner) trackFPS(dt float64) {
	r.fpsUpdateTimer += dt
	r.fpsUpdateCounter++
	if r.fpsUpdateTimer < 0.5 {
		return
	}

	r.fps = float64(r.fpsUpdateCounter) / r.fpsUpdateTimer
	r.fpsUpdateTimer = 0
	r.fpsUpdateCounter = 0

	if r.profiler == nil || r.fps >= 45 || time.Since(r.startTime) < 3*time.Second {
		return
	}

	stats := r.sim.Stats()
	reason := fmt.Sprintf("fps%.0f-monsters%d-torpedoes%d", r.fps, stats.Monsters, stats.Torpedoes)
	if err := r.profiler.CaptureProfile(reason); err != nil {
		r.log.WithError(err).Debug("profile skipped")
		return
	}
	r.log.WithField("fps", r.fps).Warn("fps drop detected, capturing profile")
}

func (r *runner) Draw(screen *ebiten.Image) {
	r.renderer.Draw(screen, r.debug)
}

func (r *runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.width, r.height
}
