package walk

// Grid is the occupancy grid for walks of up to Radius steps.
// It is square with Side = 2*Radius+1, stored row-major, and the walk
// origin is the center cell (Radius, Radius).
//
// Every cell a walk of Radius steps can reach, and every neighbour probed
// from a cell reached in fewer steps, lies inside the grid, so moves are
// plain index arithmetic without bounds tests.
type Grid struct {
	Side   int
	Radius int
	cells  []bool
	delta  [4]int // index delta per Direction
}

// NewGrid allocates an empty grid sized for n-step walks.
// Returns ErrNegativeSteps or ErrTooManySteps before allocating anything.
func NewGrid(n int) (*Grid, error) {
	if err := validateSteps(n); err != nil {
		return nil, err
	}
	side := 2*n + 1
	g := &Grid{
		Side:   side,
		Radius: n,
		cells:  make([]bool, side*side),
	}
	for _, d := range Directions {
		dx, dy := d.Offset()
		g.delta[d] = dy*side + dx
	}

	return g, nil
}

// Center returns the row-major index of the origin cell.
func (g *Grid) Center() int {
	return g.Index(g.Radius, g.Radius)
}

// Index maps (x,y) to a row-major index: y*Side + x.
func (g *Grid) Index(x, y int) int {
	return y*g.Side + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Side, idx / g.Side
}

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Side && y >= 0 && y < g.Side
}

// Neighbor returns the index one step from idx in direction d.
// The caller guarantees idx is at most Radius-1 steps from the center.
func (g *Grid) Neighbor(idx int, d Direction) int {
	return idx + g.delta[d]
}

// Occupied reports whether (x,y) is marked. Cells outside the grid are never occupied.
func (g *Grid) Occupied(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}

	return g.cells[g.Index(x, y)]
}

// OccupiedCount returns the number of marked cells.
func (g *Grid) OccupiedCount() int {
	c := 0
	for _, v := range g.cells {
		if v {
			c++
		}
	}

	return c
}
