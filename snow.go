package main

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"subnautic/game"
)

const (
	snowCount           = 90
	snowSinkSpeed       = 12.0
	snowSpanMultiplier  = 1.5
	snowDriftAmplitude  = 6.0
	snowParallaxMinimum = 0.6
)

var colorSnow = color.RGBA{180, 210, 230, 90}

// flake is one particle of marine snow
type flake struct {
	pos   game.Vec2
	depth float64 // Parallax factor; nearer flakes move and draw larger
	phase float64
}

// marineSnow is decorative drift kept in a torus around the camera so it
// never depends on the absolute world origin
type marineSnow struct {
	flakes []flake
	time   float64
}

func newMarineSnow(rng *rand.Rand, around game.Vec2, width, height float64) *marineSnow {
	span := math.Hypot(width, height) * snowSpanMultiplier
	s := &marineSnow{flakes: make([]flake, snowCount)}
	for i := range s.flakes {
		s.flakes[i] = flake{
			pos: game.Vec2{
				X: around.X + (rng.Float64()-0.5)*span,
				Y: around.Y + (rng.Float64()-0.5)*span,
			},
			depth: snowParallaxMinimum + rng.Float64()*(1-snowParallaxMinimum),
			phase: rng.Float64() * 2 * math.Pi,
		}
	}
	return s
}

// Update sinks the flakes and wraps them around the camera centre
func (s *marineSnow) Update(dt float64, center game.Vec2, width, height float64) {
	s.time += dt
	span := math.Hypot(width, height) * snowSpanMultiplier
	half := span * 0.5

	for i := range s.flakes {
		f := &s.flakes[i]
		f.pos.Y += snowSinkSpeed * f.depth * dt

		d := f.pos.Sub(center)
		if d.X < -half {
			f.pos.X += span
		}
		if d.X > half {
			f.pos.X -= span
		}
		if d.Y < -half {
			f.pos.Y += span
		}
		if d.Y > half {
			f.pos.Y -= span
		}
	}
}

func (s *marineSnow) Draw(screen *ebiten.Image, camera *game.FollowCamera) {
	for _, f := range s.flakes {
		drift := math.Sin(s.time+f.phase) * snowDriftAmplitude
		p := camera.WorldToScreen(game.Vec2{X: f.pos.X + drift, Y: f.pos.Y})
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(f.depth*1.5), colorSnow, false)
	}
}
