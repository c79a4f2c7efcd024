package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFollowCamera(t *testing.T) {
	bounds := Bounds{Left: 0, Top: 0, Right: 2000, Bottom: 1000}

	t.Run("centres inside the bounds", func(t *testing.T) {
		c := NewFollowCamera(400, 200, bounds)
		c.CenterOn(Vec2{X: 1000, Y: 500})
		assert.Equal(t, Vec2{X: 800, Y: 400}, c.Offset())
	})

	t.Run("clamps at the edges", func(t *testing.T) {
		c := NewFollowCamera(400, 200, bounds)
		c.CenterOn(Vec2{X: 10, Y: 990})
		assert.Equal(t, Vec2{X: 0, Y: 800}, c.Offset())

		c.CenterOn(Vec2{X: 1990, Y: 10})
		assert.Equal(t, Vec2{X: 1600, Y: 0}, c.Offset())
	})

	t.Run("viewport larger than the world pins to the corner", func(t *testing.T) {
		c := NewFollowCamera(4000, 2000, bounds)
		c.CenterOn(Vec2{X: 1000, Y: 500})
		assert.Equal(t, Vec2{}, c.Offset())
	})

	t.Run("screen and world round trip", func(t *testing.T) {
		c := NewFollowCamera(400, 200, bounds)
		c.Zoom = 2
		c.CenterOn(Vec2{X: 1000, Y: 500})

		p := Vec2{X: 1010, Y: 480}
		s := c.WorldToScreen(p)
		assert.Equal(t, Vec2{X: 220, Y: 60}, s)
		assert.Equal(t, p, c.ScreenToWorld(s))
	})

	t.Run("visibility", func(t *testing.T) {
		c := NewFollowCamera(400, 200, bounds)
		c.CenterOn(Vec2{X: 1000, Y: 500})
		assert.True(t, c.Visible(RectFromCenter(Vec2{X: 1000, Y: 500}, 10, 10)))
		assert.False(t, c.Visible(RectFromCenter(Vec2{X: 100, Y: 100}, 10, 10)))
	})
}
