package game

// World manages the spatial partitioning grid for monsters
type World struct {
	// Preallocated 2D grid of cells
	Cells [][]*Cell

	bounds   Bounds
	cellSize float64
	countX   int
	countY   int

	// Number of registered monsters
	population int
}

// NewWorld creates a new world with preallocated cells
func NewWorld(config Config) *World {
	countX := config.CellCountX()
	countY := config.CellCountY()

	cells := make([][]*Cell, countX)
	for x := 0; x < countX; x++ {
		cells[x] = make([]*Cell, countY)
		for y := 0; y < countY; y++ {
			cells[x][y] = NewCell(8)
		}
	}

	return &World{
		Cells:    cells,
		bounds:   config.World.Bounds,
		cellSize: config.World.CellSize,
		countX:   countX,
		countY:   countY,
	}
}

// WorldToCell converts world coordinates to cell coordinates
func (w *World) WorldToCell(p Vec2) (int, int) {
	cellX := int((p.X - w.bounds.Left) / w.cellSize)
	cellY := int((p.Y - w.bounds.Top) / w.cellSize)

	// Clamp to valid cell range
	cellX = max(0, min(cellX, w.countX-1))
	cellY = max(0, min(cellY, w.countY-1))

	return cellX, cellY
}

// GetCell returns the cell at the given cell coordinates
func (w *World) GetCell(cellX, cellY int) *Cell {
	if cellX < 0 || cellX >= w.countX || cellY < 0 || cellY >= w.countY {
		return nil
	}
	return w.Cells[cellX][cellY]
}

// Population returns the number of registered monsters
func (w *World) Population() int {
	return w.population
}

// Register adds a monster to the cell under its centre
func (w *World) Register(m *Monster) {
	m.cellX, m.cellY = w.WorldToCell(m.Center())
	if cell := w.GetCell(m.cellX, m.cellY); cell != nil {
		if cell.Add(m) {
			w.population++
		}
	}
}

// Unregister removes a monster from the grid
func (w *World) Unregister(m *Monster) {
	if cell := w.GetCell(m.cellX, m.cellY); cell != nil {
		if cell.Remove(m) {
			w.population--
		}
	}
}

// UpdateMonsterCell updates a monster's cell membership if it moved
func (w *World) UpdateMonsterCell(m *Monster) {
	newX, newY := w.WorldToCell(m.Center())
	if newX == m.cellX && newY == m.cellY {
		return
	}

	if old := w.GetCell(m.cellX, m.cellY); old != nil {
		old.Remove(m)
	}
	m.cellX, m.cellY = newX, newY
	if cell := w.GetCell(newX, newY); cell != nil {
		cell.Add(m)
	}
}

// MonstersInRadius returns the registered monsters whose centre lies within radius of p
func (w *World) MonstersInRadius(p Vec2, radius float64) []*Monster {
	var found []*Monster

	minX, minY := w.WorldToCell(Vec2{p.X - radius, p.Y - radius})
	maxX, maxY := w.WorldToCell(Vec2{p.X + radius, p.Y + radius})
	radiusSq := radius * radius

	for cellX := minX; cellX <= maxX; cellX++ {
		for cellY := minY; cellY <= maxY; cellY++ {
			cell := w.GetCell(cellX, cellY)
			if cell == nil {
				continue
			}
			for _, m := range cell.All() {
				d := m.Center().Sub(p)
				if d.Dot(d) <= radiusSq {
					found = append(found, m)
				}
			}
		}
	}

	return found
}
