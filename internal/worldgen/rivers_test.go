package worldgen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// radialGrid slopes from high at the center to low at the corners.
func radialGrid(w, h int, peak float64) *Grid {
	g := NewGrid(w, h)
	cx, cy := float64(w)/2, float64(h)/2
	maxDist := math.Hypot(cx, cy)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy)
			g.Set(x, y, peak*(1-d/maxDist))
		}
	}
	return g
}

func flatGrid(w, h int, elev float64) *Grid {
	g := NewGrid(w, h)
	for i := range g.Cells {
		g.Cells[i] = elev
	}
	return g
}

func assertRiverInvariants(t *testing.T, rivers []River, elev *Grid) {
	t.Helper()
	for _, r := range rivers {
		assert.Greater(t, len(r.Path), minRiverLength, "river %d too short", r.ID)
		assert.GreaterOrEqual(t, r.Source.Elevation, highlandLevel, "river %d source below highlands", r.ID)
		if !r.IsLake {
			assert.Less(t, r.Terminus.Elevation, seaLevel, "river %d terminus not in water", r.ID)
		}
		for i := 1; i < len(r.Path); i++ {
			assert.LessOrEqual(t, r.Path[i].Elevation, r.Path[i-1].Elevation+riverInvariantEps,
				"river %d flows uphill at step %d", r.ID, i)
		}
		// Stored elevations must match the grid exactly: the search's
		// tie-break perturbation may never leak into the path.
		for _, tile := range r.Path {
			assert.Equal(t, elev.At(tile.X, tile.Y), tile.Elevation)
		}
		assert.Equal(t, r.Path[0], r.Source)
		assert.Equal(t, r.Path[len(r.Path)-1], r.Terminus)
	}
}

// A fully flat ocean-depth map has no highland sources and yields no rivers.
func TestCarveRiversFlatOcean(t *testing.T) {
	cfg := testConfig(1, 64, 64)
	cfg.RiverCount = 10

	rivers := carveRivers(cfg, flatGrid(64, 64, 0.1))
	assert.Empty(t, rivers)
}

// A radially graded map drains every requested river from the interior to
// the low corners.
func TestCarveRiversRadial(t *testing.T) {
	cfg := testConfig(12345, 64, 64)
	cfg.RiverCount = 3

	elev := radialGrid(64, 64, 0.9)
	rivers := carveRivers(cfg, elev)

	require.Len(t, rivers, 3)
	assertRiverInvariants(t, rivers, elev)
	for _, r := range rivers {
		assert.False(t, r.IsLake, "radial map drains to ocean, river %d flagged lake", r.ID)
	}
}

func TestCarveRiversDeterministic(t *testing.T) {
	cfg := testConfig(777, 64, 64)
	cfg.RiverCount = 5
	elev := radialGrid(64, 64, 0.9)

	a := carveRivers(cfg, elev)
	b := carveRivers(cfg, elev)
	assert.Equal(t, a, b)

	cfg2 := cfg
	cfg2.Seed = 778
	c := carveRivers(cfg2, elev)
	assert.NotEqual(t, a, c, "different seeds should pick different sources")
}

// A descending channel walled off from any ocean terminates in a closed
// basin and is flagged as a lake.
func TestCarveRiversLakeTerminus(t *testing.T) {
	const w, h = 40, 40
	elev := flatGrid(w, h, 0.99)

	// Channel along y=20 dropping from 0.7 to 0.3; walls at 0.99 are
	// inadmissible from inside the channel.
	const channelLen = 16
	for i := 0; i < channelLen; i++ {
		elev.Set(4+i, 20, 0.7-0.4*float64(i)/float64(channelLen-1))
	}

	cfg := testConfig(5, w, h)
	cfg.RiverCount = 1

	rivers := carveRivers(cfg, elev)
	require.Len(t, rivers, 1)

	r := rivers[0]
	assert.True(t, r.IsLake)
	assert.InDelta(t, 0.3, r.Terminus.Elevation, 1e-9)
	assertRiverInvariants(t, rivers, elev)
}

// A high flat plateau with no drainage exhausts the explored-node budget on
// every source and yields no rivers. Bounded termination, not an error.
func TestCarveRiversBudgetExhaustion(t *testing.T) {
	cfg := testConfig(9, 40, 40)
	cfg.RiverCount = 5

	rivers := carveRivers(cfg, flatGrid(40, 40, 0.65))
	assert.Empty(t, rivers)
}

// Returned paths are fresh copies; mutating one must not affect a re-run.
func TestRiverPathIsolation(t *testing.T) {
	cfg := testConfig(12345, 64, 64)
	cfg.RiverCount = 2
	elev := radialGrid(64, 64, 0.9)

	a := carveRivers(cfg, elev)
	require.NotEmpty(t, a)
	a[0].Path[0].Elevation = -1

	b := carveRivers(cfg, elev)
	assert.Equal(t, elev.At(b[0].Path[0].X, b[0].Path[0].Y), b[0].Path[0].Elevation)
}

func TestValidateDownhill(t *testing.T) {
	good := River{Path: []Tile{{0, 0, 0.5}, {1, 0, 0.4}, {2, 0, 0.4005}}}
	assert.NoError(t, good.validateDownhill())

	bad := River{Path: []Tile{{0, 0, 0.5}, {1, 0, 0.6}}}
	assert.Error(t, bad.validateDownhill())
}
