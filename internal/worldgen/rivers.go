// River pathfinding: best-first descent from highland sources to ocean or
// closed basin. Each search keeps isolated state; rivers are carved
// sequentially in a seeded, deterministic order.
package worldgen

import (
	"container/heap"
	"fmt"
	"math/rand"
)

const (
	// riverFlatTolerance lets the search cross near-flat plateaus: a
	// neighbor is admissible if it rises no more than this above the
	// current tile.
	riverFlatTolerance = 0.001

	// riverInvariantEps is the post-condition tolerance: along a finished
	// path, elevation may only increase by floating-point noise.
	riverInvariantEps = 0.002

	// minRiverLength is exclusive: a returned path must be longer.
	minRiverLength = 5
)

// Tile is a point on a river path carrying its stored elevation.
type Tile struct {
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Elevation float64 `json:"elevation"`
}

// River is an immutable downhill path from a highland source to an ocean
// tile or a closed-basin minimum (IsLake). The path is a fresh copy per
// river; callers cannot reach generator state through it.
type River struct {
	ID       int    `json:"id"`
	Source   Tile   `json:"source"`
	Terminus Tile   `json:"terminus"`
	Path     []Tile `json:"path"`
	IsLake   bool   `json:"is_lake"`
}

// riverNode is a search node. Stored and priority elevation are deliberately
// separate fields: stored feeds the downhill invariant and the final path,
// priority additionally carries the per-coordinate tie-break perturbation
// that orders the frontier on flat plateaus. Conflating them would let the
// perturbation surface as spurious uphill segments.
type riverNode struct {
	x, y     int
	stored   float64
	priority float64
	parent   *riverNode
}

// nodeHeap is a min-heap over priority, with coordinate order as the final
// tie-break so frontier order never depends on insertion history.
type nodeHeap []*riverNode

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	if h[i].y != h[j].y {
		return h[i].y < h[j].y
	}
	return h[i].x < h[j].x
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(*riverNode)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return node
}

// carveRivers selects a seeded subset of highland sources and traces a
// river from each. Identical (seed, dimensions, river count) inputs yield
// an identical ordered river list.
func carveRivers(cfg GenConfig, elev *Grid) []River {
	// Candidate sources in scan order, then a seeded shuffle. Scan order
	// first keeps the shuffle independent of anything upstream.
	var sources []TileCoord
	for y := 0; y < elev.Height; y++ {
		for x := 0; x < elev.Width; x++ {
			if elev.At(x, y) >= highlandLevel {
				sources = append(sources, TileCoord{X: x, Y: y})
			}
		}
	}
	if len(sources) == 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(subSeed(cfg.Seed, stageRivers)))
	rng.Shuffle(len(sources), func(i, j int) {
		sources[i], sources[j] = sources[j], sources[i]
	})

	budget := cfg.RiverMaxLength * 4
	if areaCap := elev.Width * elev.Height / 4; areaCap < budget {
		budget = areaCap
	}

	rivers := make([]River, 0, cfg.RiverCount)
	for _, src := range sources {
		if len(rivers) >= cfg.RiverCount {
			break
		}
		if river, ok := traceRiver(cfg, elev, src, len(rivers), budget); ok {
			rivers = append(rivers, river)
		}
	}
	return rivers
}

// traceRiver runs one best-first descent from src. It terminates at the
// first ocean tile reached. If the frontier empties without finding ocean,
// it terminates at the lowest point explored (closed basin, lake terminus).
// Exhausting the explored-node budget discards the source instead.
func traceRiver(cfg GenConfig, elev *Grid, src TileCoord, id, budget int) (River, bool) {
	visited := make(map[int]bool)
	start := &riverNode{
		x:        src.X,
		y:        src.Y,
		stored:   elev.At(src.X, src.Y),
		priority: elev.At(src.X, src.Y) + tieBreak(cfg.Seed, src.X, src.Y),
	}
	visited[src.Y*elev.Width+src.X] = true

	frontier := nodeHeap{start}
	heap.Init(&frontier)

	var basinLow *riverNode
	explored := 0

	for frontier.Len() > 0 {
		node := heap.Pop(&frontier).(*riverNode)
		explored++
		if explored > budget {
			return River{}, false
		}

		if node.stored < seaLevel {
			return buildRiver(node, id, false)
		}
		if basinLow == nil || node.stored < basinLow.stored {
			basinLow = node
		}

		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := node.x+d[0], node.y+d[1]
			if !elev.InBounds(nx, ny) || visited[ny*elev.Width+nx] {
				continue
			}
			ne := elev.At(nx, ny)
			if ne > node.stored+riverFlatTolerance {
				continue
			}
			visited[ny*elev.Width+nx] = true
			heap.Push(&frontier, &riverNode{
				x:        nx,
				y:        ny,
				stored:   ne,
				priority: ne + tieBreak(cfg.Seed, nx, ny),
				parent:   node,
			})
		}
	}

	// Frontier exhausted: the source drains into an enclosed minimum.
	if basinLow == nil {
		return River{}, false
	}
	return buildRiver(basinLow, id, true)
}

// buildRiver reconstructs the source-to-terminus path from parent pointers,
// rejects too-short paths, and asserts the downhill invariant. An invariant
// violation is a programming bug and panics rather than being filtered.
func buildRiver(goal *riverNode, id int, isLake bool) (River, bool) {
	var path []Tile
	for n := goal; n != nil; n = n.parent {
		path = append(path, Tile{X: n.x, Y: n.y, Elevation: n.stored})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	if len(path) <= minRiverLength {
		return River{}, false
	}

	river := River{
		ID:       id,
		Source:   path[0],
		Terminus: path[len(path)-1],
		Path:     path,
		IsLake:   isLake,
	}
	if err := river.validateDownhill(); err != nil {
		panic(err)
	}
	return river, true
}

// validateDownhill checks that stored elevation never rises by more than
// the invariant tolerance along the path.
func (r River) validateDownhill() error {
	for i := 1; i < len(r.Path); i++ {
		prev, curr := r.Path[i-1], r.Path[i]
		if curr.Elevation > prev.Elevation+riverInvariantEps {
			return fmt.Errorf("river %d: uphill segment at step %d: %.6f -> %.6f (%d,%d)",
				r.ID, i, prev.Elevation, curr.Elevation, curr.X, curr.Y)
		}
	}
	return nil
}
