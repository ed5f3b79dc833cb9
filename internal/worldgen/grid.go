package worldgen

import "fmt"

// Grid is a dense width×height field of float64 values indexed by (x, y).
// Grids are produced once by a pipeline stage and read-only afterward.
type Grid struct {
	Width  int
	Height int
	Cells  []float64 // Row-major, Cells[y*Width+x]
}

// NewGrid creates a zeroed grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]float64, width*height),
	}
}

// At returns the value at (x, y). Out-of-bounds access panics via the
// underlying slice; callers are expected to check InBounds first.
func (g *Grid) At(x, y int) float64 {
	return g.Cells[y*g.Width+x]
}

// Set writes the value at (x, y).
func (g *Grid) Set(x, y int, v float64) {
	g.Cells[y*g.Width+x] = v
}

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.Width, g.Height)
	copy(c.Cells, g.Cells)
	return c
}

// String returns a summary of the grid.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid(%dx%d)", g.Width, g.Height)
}

// BiomeGrid is a dense width×height field of biome tags, parallel to the
// elevation and climate grids.
type BiomeGrid struct {
	Width  int
	Height int
	Cells  []Biome
}

// NewBiomeGrid creates a biome grid of the given dimensions.
func NewBiomeGrid(width, height int) *BiomeGrid {
	return &BiomeGrid{
		Width:  width,
		Height: height,
		Cells:  make([]Biome, width*height),
	}
}

// At returns the biome at (x, y).
func (g *BiomeGrid) At(x, y int) Biome {
	return g.Cells[y*g.Width+x]
}

// Set writes the biome at (x, y).
func (g *BiomeGrid) Set(x, y int, b Biome) {
	g.Cells[y*g.Width+x] = b
}
