// Climate fields derived from elevation: temperature from latitude,
// altitude lapse, and noise; moisture from noise and distance to open water.
package worldgen

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

const (
	climateOctaves   = 3
	climateFrequency = 0.06

	equatorTempC   = 32.0 // Sea-level temperature at the map's horizontal midline
	latitudeLapseC = 57.0 // Drop from equator to pole
	altitudeLapseC = 28.0 // Drop from sea level to peak elevation
	tempNoiseSpanC = 12.0 // Local variation, centered on zero
)

// deriveTemperature produces the per-tile temperature grid in °C.
// Practically bounded to roughly [-50, 50].
func deriveTemperature(cfg GenConfig, elev *Grid) *Grid {
	noise := opensimplex.NewNormalized(subSeed(cfg.Seed, stageTemperature))
	g := NewGrid(cfg.Width, cfg.Height)

	for y := 0; y < cfg.Height; y++ {
		// Latitude 0 at the equator row, 1 at either pole edge.
		lat := math.Abs(float64(y)-float64(cfg.Height)/2) / (float64(cfg.Height) / 2)
		for x := 0; x < cfg.Width; x++ {
			n := octaveNoise(noise, float64(x), float64(y), climateOctaves, climateFrequency, cfg.NoisePersistence)
			t := equatorTempC - lat*latitudeLapseC - elev.At(x, y)*altitudeLapseC + (n-0.5)*tempNoiseSpanC
			g.Set(x, y, t)
		}
	}
	return g
}

// moistureOceanReach controls how far inland ocean proximity still raises
// moisture; at this distance the proximity term has decayed to 1/e.
const moistureOceanReach = 18.0

// deriveMoisture produces the per-tile moisture grid in [0,1]: a noise base
// blended with exponential decay over the tile's distance to open water.
func deriveMoisture(cfg GenConfig, elev *Grid) *Grid {
	noise := opensimplex.NewNormalized(subSeed(cfg.Seed, stageMoisture))
	dist := oceanDistance(elev)
	g := NewGrid(cfg.Width, cfg.Height)

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			n := octaveNoise(noise, float64(x), float64(y), climateOctaves, climateFrequency, cfg.NoisePersistence)
			proximity := 0.0
			if d := dist[y*cfg.Width+x]; d >= 0 {
				proximity = math.Exp(-float64(d) / moistureOceanReach)
			}
			g.Set(x, y, clamp01(n*0.7+proximity*0.3))
		}
	}
	return g
}

// oceanDistance returns per-tile 4-connected step distance to the nearest
// open-water tile (elevation below sea level), via multi-source BFS.
// Tiles unreachable from any water (or a waterless map) hold -1.
func oceanDistance(elev *Grid) []int {
	w, h := elev.Width, elev.Height
	dist := make([]int, w*h)
	for i := range dist {
		dist[i] = -1
	}

	queue := make([]int, 0, w*h/4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if elev.At(x, y) < seaLevel {
				dist[y*w+x] = 0
				queue = append(queue, y*w+x)
			}
		}
	}

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		x, y := idx%w, idx/w
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := x+d[0], y+d[1]
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			nidx := ny*w + nx
			if dist[nidx] < 0 {
				dist[nidx] = dist[idx] + 1
				queue = append(queue, nidx)
			}
		}
	}
	return dist
}
