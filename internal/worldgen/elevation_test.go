package worldgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizeElevationDeterministic(t *testing.T) {
	cfg := testConfig(21, 48, 48)
	plates := generatePlates(cfg)
	owner := partitionPlates(cfg, plates)

	a := synthesizeElevation(cfg, plates, owner)
	b := synthesizeElevation(cfg, plates, owner)
	assert.Equal(t, a.Cells, b.Cells, "row parallelism must not affect output")

	for _, v := range a.Cells {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

// Each colliding neighbor plate contributes its intensity exactly once,
// even when more distinct plates fall inside the boundary band than a
// small dedup list would hold and some of them own several band tiles.
func TestUpliftCountsEachPlateOnce(t *testing.T) {
	cfg := testConfig(1, 5, 5)

	plates := make([]Plate, 11)
	for i := range plates {
		plates[i] = Plate{
			ID:      i,
			CenterX: i,
			CenterY: i,
			DriftX:  -0.5 + float64(i)*0.05,
			DriftY:  0.2,
		}
	}
	plates[0].DriftX = 0.3
	plates[0].DriftY = 0.4

	// Ten distinct foreign plates around the owner at (2,2); plates 9 and
	// 10 own several band tiles each.
	owner := []int{
		1, 2, 3, 4, 5,
		6, 7, 8, 9, 9,
		9, 10, 0, 10, 10,
		10, 10, 10, 10, 10,
		10, 10, 10, 10, 10,
	}

	// Independent sum over distinct colliding neighbor plates.
	want := 0.0
	for i := 1; i < len(plates); i++ {
		if plates[0].Colliding(&plates[i]) {
			want += CollisionIntensity(&plates[0], &plates[i]) * cfg.UpliftScale
		}
	}
	assert.Greater(t, want, 0.0, "fixture should produce collisions")

	assert.InDelta(t, want, upliftAt(cfg, plates, owner, 2, 2), 1e-12)
}
