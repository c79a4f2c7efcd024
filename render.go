package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"subnautic/game"
)

var (
	colorWater      = color.RGBA{8, 24, 48, 255}
	colorObstacle   = colornames.Darkslategray
	colorProp       = colornames.Seagreen
	colorPlayer     = colornames.Gold
	colorPortal     = colornames.Mediumpurple
	colorPortalLit  = colornames.Violet
	colorTorpedo    = colornames.Lightgray
	colorExplosion  = colornames.Orange
	colorCrosshair  = colornames.White
	colorSonar      = colornames.Aquamarine
	colorHealthBack = color.RGBA{100, 0, 0, 255}
	colorHealth     = color.RGBA{0, 255, 0, 255}
	colorPower      = colornames.Deepskyblue
	colorGrid       = color.RGBA{255, 255, 255, 24}
	colorHitbox     = colornames.Red
)

var monsterColors = map[game.MonsterKind]color.RGBA{
	game.MonsterFly:        colornames.Yellowgreen,
	game.MonsterAnglerFish: colornames.Tomato,
	game.MonsterLamprey:    colornames.Sienna,
	game.MonsterSquid:      colornames.Orchid,
	game.MonsterSwordFish:  colornames.Steelblue,
}

// fadeStep is how much a monster's drawn alpha moves towards its fog alpha per frame
const fadeStep = 24.0

// renderer draws the simulation with vector shapes
type renderer struct {
	sim    *game.Game
	camera *game.FollowCamera
	snow   *marineSnow

	// Drawn alpha per monster, so fog and sonar changes ease in
	fades map[uuid.UUID]float64
}

// easeAlpha moves the drawn alpha of id one step towards target
func (r *renderer) easeAlpha(id uuid.UUID, target uint8) uint8 {
	if r.fades == nil {
		r.fades = make(map[uuid.UUID]float64)
	}
	cur, ok := r.fades[id]
	if !ok {
		cur = float64(target)
	}
	switch t := float64(target); {
	case cur < t:
		cur = math.Min(t, cur+fadeStep)
	case cur > t:
		cur = math.Max(t, cur-fadeStep)
	}
	r.fades[id] = cur
	return uint8(cur)
}

// viewCenter returns the world point at the middle of the screen
func (r *renderer) viewCenter() game.Vec2 {
	c := r.camera
	return c.Offset().Add(game.Vec2{X: c.Width / 2, Y: c.Height / 2}.Scale(1 / c.Zoom))
}

// fade scales a colour by alpha (0-255)
func fade(c color.RGBA, alpha uint8) color.RGBA {
	f := float64(alpha) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}

func (r *renderer) fillRect(dst *ebiten.Image, rect game.Rect, clr color.Color) {
	p := r.camera.WorldToScreen(game.Vec2{X: rect.X, Y: rect.Y})
	z := r.camera.Zoom
	vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), float32(rect.W*z), float32(rect.H*z), clr, true)
}

func (r *renderer) strokeRect(dst *ebiten.Image, rect game.Rect, clr color.Color) {
	p := r.camera.WorldToScreen(game.Vec2{X: rect.X, Y: rect.Y})
	z := r.camera.Zoom
	vector.StrokeRect(dst, float32(p.X), float32(p.Y), float32(rect.W*z), float32(rect.H*z), 1, clr, true)
}

// Draw renders the world, the sprites and the HUD
func (r *renderer) Draw(screen *ebiten.Image, debug bool) {
	screen.Fill(colorWater)
	if r.snow != nil {
		r.snow.Draw(screen, r.camera)
	}

	m := r.sim.Map()
	for _, o := range m.Obstacles() {
		if r.camera.Visible(o) {
			r.fillRect(screen, o, colorObstacle)
		}
	}
	for _, p := range m.Props() {
		if r.camera.Visible(p) {
			r.fillRect(screen, p, colorProp)
		}
	}

	seen := make(map[uuid.UUID]struct{}, len(r.fades))
	for _, s := range r.sim.Sprites() {
		if !r.camera.Visible(s.Rect) {
			continue
		}
		if s.Kind == game.SpriteMonster {
			s.Alpha = r.easeAlpha(s.ID, s.Alpha)
			seen[s.ID] = struct{}{}
		}
		r.drawSprite(screen, s)
	}
	for id := range r.fades {
		if _, ok := seen[id]; !ok {
			delete(r.fades, id)
		}
	}

	r.drawSonar(screen)
	r.drawCrosshair(screen)

	if debug {
		r.drawDebug(screen)
	}
	r.drawHUD(screen)
}

func (r *renderer) drawSprite(screen *ebiten.Image, s game.Sprite) {
	switch s.Kind {
	case game.SpritePortal:
		clr := colorPortal
		if s.Highlighted {
			clr = colorPortalLit
		}
		r.strokeRect(screen, s.Rect, clr)
		c := r.camera.WorldToScreen(s.Rect.Center())
		radius := (4 + float64(s.Frame%4)*2) * r.camera.Zoom
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(radius), clr, true)

	case game.SpritePlayer:
		r.fillRect(screen, s.Rect, fade(colorPlayer, s.Alpha))
		r.drawFacing(screen, s, fade(colorPlayer, s.Alpha))

	case game.SpriteMonster:
		if s.Alpha == 0 {
			return
		}
		clr, ok := monsterColors[s.Monster]
		if !ok {
			clr = colornames.White
		}
		r.fillRect(screen, s.Rect, fade(clr, s.Alpha))
		r.drawFacing(screen, s, fade(clr, s.Alpha))

	case game.SpriteTorpedo:
		c := r.camera.WorldToScreen(s.Rect.Center())
		angle := s.Rotation * math.Pi / 180
		half := s.Rect.W / 4 * r.camera.Zoom
		dx, dy := math.Cos(angle)*half, math.Sin(angle)*half
		vector.StrokeLine(screen, float32(c.X-dx), float32(c.Y-dy), float32(c.X+dx), float32(c.Y+dy), 4, colorTorpedo, true)

	case game.SpriteExplosion:
		c := r.camera.WorldToScreen(s.Rect.Center())
		radius := s.Rect.W / 2 * r.camera.Zoom
		alpha := uint8(255 - min(255, s.Frame*40))
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(radius), fade(colorExplosion, alpha), true)
	}
}

// drawFacing draws a short line on the side the entity faces
func (r *renderer) drawFacing(screen *ebiten.Image, s game.Sprite, clr color.Color) {
	c := r.camera.WorldToScreen(s.Rect.Center())
	length := s.Rect.W / 2 * r.camera.Zoom
	dx := length
	if s.Facing.IsLeft() {
		dx = -length
	}
	dy := 0.0
	switch s.Facing {
	case game.FacingRightUp, game.FacingLeftUp:
		dy = -length / 2
	case game.FacingRightDown, game.FacingLeftDown:
		dy = length / 2
	}
	vector.StrokeLine(screen, float32(c.X), float32(c.Y), float32(c.X+dx), float32(c.Y+dy), 2, clr, true)
}

func (r *renderer) drawSonar(screen *ebiten.Image) {
	p := r.sim.Player()
	if !p.SonarActive() {
		return
	}
	c := r.camera.WorldToScreen(p.Center())
	radius := r.sim.Config().Sonar.Range * r.camera.Zoom
	vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(radius), 2, colorSonar, true)
}

func (r *renderer) drawCrosshair(screen *ebiten.Image) {
	p := r.sim.Player()
	if p.Dead {
		return
	}
	c := r.camera.WorldToScreen(p.Crosshair)
	vector.StrokeLine(screen, float32(c.X-6), float32(c.Y), float32(c.X+6), float32(c.Y), 1, colorCrosshair, true)
	vector.StrokeLine(screen, float32(c.X), float32(c.Y-6), float32(c.X), float32(c.Y+6), 1, colorCrosshair, true)
}

func (r *renderer) drawHUD(screen *ebiten.Image) {
	p := r.sim.Player()
	cfg := r.sim.Config()

	barX, barY, barW, barH := float32(10), float32(10), float32(200), float32(10)
	vector.DrawFilledRect(screen, barX, barY, barW, barH, colorHealthBack, true)
	health := float32(max(0, p.Health)) / float32(max(1, p.MaxHealth))
	vector.DrawFilledRect(screen, barX, barY, barW*health, barH, colorHealth, true)

	power := float32(p.Power / math.Max(1, p.MaxPower))
	vector.DrawFilledRect(screen, barX, barY+barH+4, barW*power, barH/2, colorPower, true)

	stats := r.sim.Stats()
	hud := fmt.Sprintf("\n\n\nLVL %d  XP %d/%d  DMG %d\nWave %d  Difficulty %.2f  Monsters %d  Kills %d",
		p.Level, p.XP, p.XPToNext(p.Level), p.Damage,
		stats.Waves, stats.Difficulty, stats.Monsters, stats.Kills)

	if left := p.SonarRemaining(); left > 0 {
		hud += fmt.Sprintf("\nSonar active %.1fs", left)
	} else if cd := p.SonarCooldownRemaining(); cd > 0 {
		hud += fmt.Sprintf("\nSonar %.0fs", cd)
	}
	if cd := p.PortalCooldownRemaining(cfg.Portals.Cooldown); cd > 0 {
		hud += fmt.Sprintf("\nPortal %.0fs", cd)
	}
	if r.sim.Respawn().Respawning {
		hud += fmt.Sprintf("\nRespawning in %.1fs", r.sim.Respawn().Remaining())
	}
	ebitenutil.DebugPrint(screen, hud)
}

// drawDebug overlays the spatial grid and hitboxes
func (r *renderer) drawDebug(screen *ebiten.Image) {
	cfg := r.sim.Config()
	b := cfg.World.Bounds
	size := cfg.World.CellSize

	for x := b.Left; x <= b.Right; x += size {
		top := r.camera.WorldToScreen(game.Vec2{X: x, Y: b.Top})
		bottom := r.camera.WorldToScreen(game.Vec2{X: x, Y: b.Bottom})
		vector.StrokeLine(screen, float32(top.X), float32(top.Y), float32(bottom.X), float32(bottom.Y), 1, colorGrid, false)
	}
	for y := b.Top; y <= b.Bottom; y += size {
		left := r.camera.WorldToScreen(game.Vec2{X: b.Left, Y: y})
		right := r.camera.WorldToScreen(game.Vec2{X: b.Right, Y: y})
		vector.StrokeLine(screen, float32(left.X), float32(left.Y), float32(right.X), float32(right.Y), 1, colorGrid, false)
	}

	r.strokeRect(screen, r.sim.Player().Hitbox, colorHitbox)
	for _, m := range r.sim.Monsters() {
		if r.camera.Visible(m.Rect) {
			r.strokeRect(screen, m.Hitbox, colorHitbox)
		}
	}
	for _, t := range r.sim.Torpedoes() {
		r.strokeRect(screen, t.HitRect(), colorHitbox)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		int(r.camera.Width)-140, 10)
}
