// Elevation synthesis: layered simplex noise plus uplift at convergent
// plate boundaries. Pure per tile, parallel per row.
package worldgen

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
	"golang.org/x/sync/errgroup"
)

// boundaryBand is how far (in tiles, Chebyshev) a tile looks for a
// neighboring plate when accumulating uplift.
const boundaryBand = 2

// synthesizeElevation produces the elevation grid in [0,1] from multi-octave
// noise and plate-collision uplift. Rows are computed concurrently; each
// tile reads only the immutable plate field and owner grid.
func synthesizeElevation(cfg GenConfig, plates []Plate, owner []int) *Grid {
	noise := opensimplex.NewNormalized(subSeed(cfg.Seed, stageElevation))
	g := NewGrid(cfg.Width, cfg.Height)

	var eg errgroup.Group
	for y := 0; y < cfg.Height; y++ {
		y := y
		eg.Go(func() error {
			for x := 0; x < cfg.Width; x++ {
				base := octaveNoise(noise, float64(x), float64(y),
					cfg.NoiseOctaves, cfg.NoiseFrequency, cfg.NoisePersistence)
				elev := base + upliftAt(cfg, plates, owner, x, y)
				if elev < 0 {
					elev = 0
				} else if elev > 1 {
					elev = 1
				}
				g.Set(x, y, elev)
			}
			return nil
		})
	}
	// Rows never fail; Wait is the barrier before the next stage.
	_ = eg.Wait()
	return g
}

// upliftAt returns the collision uplift for a tile: for each distinct
// neighboring plate within the boundary band, if the owner plate is
// drifting into it, add collision intensity scaled by cfg.UpliftScale.
// Divergent and passive boundaries contribute nothing.
func upliftAt(cfg GenConfig, plates []Plate, owner []int, x, y int) float64 {
	own := owner[y*cfg.Width+x]

	// The band holds at most 24 foreign tiles, so the dedup list can never
	// saturate even when every neighbor belongs to a different plate.
	var counted [(2*boundaryBand+1)*(2*boundaryBand+1) - 1]int
	nCounted := 0
	uplift := 0.0

	for dy := -boundaryBand; dy <= boundaryBand; dy++ {
		for dx := -boundaryBand; dx <= boundaryBand; dx++ {
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= cfg.Width || ny < 0 || ny >= cfg.Height {
				continue
			}
			other := owner[ny*cfg.Width+nx]
			if other == own {
				continue
			}
			already := false
			for i := 0; i < nCounted; i++ {
				if counted[i] == other {
					already = true
					break
				}
			}
			if already {
				continue
			}
			if nCounted < len(counted) {
				counted[nCounted] = other
				nCounted++
			}
			a, b := &plates[own], &plates[other]
			if a.Colliding(b) {
				uplift += CollisionIntensity(a, b) * cfg.UpliftScale
			}
		}
	}
	return uplift
}

// octaveNoise generates fractal noise by layering multiple frequencies with
// decreasing amplitude. Output stays in [0,1] for normalized noise.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
