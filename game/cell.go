package game

// Cell is one square of the spatial grid. Order inside a cell is not stable.
type Cell struct {
	monsters []*Monster
}

// NewCell creates an empty cell with room for capacity monsters
func NewCell(capacity int) *Cell {
	return &Cell{monsters: make([]*Monster, 0, capacity)}
}

// Add inserts m and reports whether it was not already present
func (c *Cell) Add(m *Monster) bool {
	if c.indexOf(m) >= 0 {
		return false
	}
	c.monsters = append(c.monsters, m)
	return true
}

// Remove swap-removes m and reports whether it was present
func (c *Cell) Remove(m *Monster) bool {
	i := c.indexOf(m)
	if i < 0 {
		return false
	}
	last := len(c.monsters) - 1
	c.monsters[i] = c.monsters[last]
	c.monsters[last] = nil
	c.monsters = c.monsters[:last]
	return true
}

// Len returns the number of monsters in the cell
func (c *Cell) Len() int { return len(c.monsters) }

// All returns the monsters in this cell
func (c *Cell) All() []*Monster { return c.monsters }

func (c *Cell) indexOf(m *Monster) int {
	for i, other := range c.monsters {
		if other == m {
			return i
		}
	}
	return -1
}
