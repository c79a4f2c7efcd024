package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"subnautic/game"
)

// ebitenInput reads the keyboard and mouse once per tick
type ebitenInput struct {
	camera *game.FollowCamera
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Poll returns the current input. Sonar and portal keys fire on press only.
func (in ebitenInput) Poll() game.InputState {
	cx, cy := ebiten.CursorPosition()

	return game.InputState{
		Up:    anyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:  anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:  anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right: anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Boost: anyPressed(ebiten.KeyShiftLeft, ebiten.KeyShiftRight),

		Fire: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace),

		Sonar:      inpututil.IsKeyJustPressed(ebiten.KeyF),
		PortalNext: inpututil.IsKeyJustPressed(ebiten.KeyE),
		PortalPrev: inpututil.IsKeyJustPressed(ebiten.KeyQ),

		Cursor: in.camera.ScreenToWorld(game.Vec2{X: float64(cx), Y: float64(cy)}),
	}
}

// handleWindowKeys toggles fullscreen on Alt+Enter
func handleWindowKeys() {
	if anyPressed(ebiten.KeyAlt, ebiten.KeyAltLeft, ebiten.KeyAltRight) && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
}
