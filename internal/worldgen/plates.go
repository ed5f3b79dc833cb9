// Tectonic plate field: seeded plate scatter plus a discrete Voronoi
// partition of the tile grid.
package worldgen

import "math/rand"

// PlateKind distinguishes continental from oceanic plates.
type PlateKind uint8

const (
	PlateContinental PlateKind = iota
	PlateOceanic
)

// TileCoord identifies a tile on the grid.
type TileCoord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Plate is a stylized tectonic region. Immutable once generated; the Tiles
// membership list is populated during partitioning and not serialized (it
// is rederivable from the centers).
type Plate struct {
	ID      int       `json:"id"`
	CenterX int       `json:"center_x"`
	CenterY int       `json:"center_y"`
	DriftX  float64   `json:"drift_x"`
	DriftY  float64   `json:"drift_y"`
	Kind    PlateKind `json:"kind"`

	Tiles []TileCoord `json:"-"`
}

// Colliding reports whether p is drifting toward q: the dot product of the
// center-to-center vector with p's drift is positive.
func (p *Plate) Colliding(q *Plate) bool {
	dx := float64(q.CenterX - p.CenterX)
	dy := float64(q.CenterY - p.CenterY)
	return dx*p.DriftX+dy*p.DriftY > 0
}

// CollisionIntensity is the symmetric strength of a plate collision,
// ‖drift_p − drift_q‖²/4, in [0, 0.25].
func CollisionIntensity(p, q *Plate) float64 {
	dx := p.DriftX - q.DriftX
	dy := p.DriftY - q.DriftY
	return (dx*dx + dy*dy) / 4
}

// oceanicPlateShare matches a realistic ocean/land ratio.
const oceanicPlateShare = 0.3

// generatePlates scatters cfg.PlateCount plates across the grid from a
// stage-scoped seeded stream.
func generatePlates(cfg GenConfig) []Plate {
	rng := rand.New(rand.NewSource(subSeed(cfg.Seed, stagePlates)))

	plates := make([]Plate, cfg.PlateCount)
	for i := range plates {
		kind := PlateContinental
		if rng.Float64() < oceanicPlateShare {
			kind = PlateOceanic
		}
		plates[i] = Plate{
			ID:      i,
			CenterX: rng.Intn(cfg.Width),
			CenterY: rng.Intn(cfg.Height),
			DriftX:  rng.Float64() - 0.5,
			DriftY:  rng.Float64() - 0.5,
			Kind:    kind,
		}
	}
	return plates
}

// partitionPlates assigns every tile to its nearest plate center
// (Euclidean), recording membership on the plate. Returns the per-tile
// owner index grid used by the uplift pass.
func partitionPlates(cfg GenConfig, plates []Plate) []int {
	owner := make([]int, cfg.Width*cfg.Height)

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			best := 0
			bestDist := plateDistSq(&plates[0], x, y)
			for i := 1; i < len(plates); i++ {
				if d := plateDistSq(&plates[i], x, y); d < bestDist {
					best = i
					bestDist = d
				}
			}
			owner[y*cfg.Width+x] = best
			plates[best].Tiles = append(plates[best].Tiles, TileCoord{X: x, Y: y})
		}
	}
	return owner
}

func plateDistSq(p *Plate, x, y int) int {
	dx := x - p.CenterX
	dy := y - p.CenterY
	return dx*dx + dy*dy
}
