package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"subnautic/game"
	"subnautic/logger"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config overriding the defaults")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	volume := flag.Float64("volume", 0.3, "effect volume, 0 mutes")
	profileDir := flag.String("profiles", "profiles", "directory for FPS-drop CPU profiles")
	flag.Parse()

	log := logger.FromEnv().WithField("app", "subnautic")

	config := game.DefaultConfig()
	if *configPath != "" {
		loaded, err := game.LoadConfig(*configPath)
		if err != nil {
			log.WithError(err).Error("config rejected, using defaults")
		} else {
			config = loaded
		}
	}
	if *seed != 0 {
		config.Seed = *seed
	}

	camera := game.NewFollowCamera(float64(config.ScreenWidth), float64(config.ScreenHeight), config.World.Bounds)
	sim := game.NewGame(config, game.Services{
		Camera: camera,
		Audio:  newAudio(*volume, log),
		Input:  ebitenInput{camera: camera},
		Log:    log,
	})

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Subnautic")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(newRunner(sim, camera, NewProfiler(*profileDir, log), log)); err != nil {
		log.WithError(err).Error("game loop stopped")
		os.Exit(1)
	}
}
