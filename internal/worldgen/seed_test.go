package worldgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubSeed(t *testing.T) {
	assert.Equal(t, subSeed(42, stagePlates), subSeed(42, stagePlates))
	assert.NotEqual(t, subSeed(42, stagePlates), subSeed(42, stageRivers),
		"stages must draw from independent streams")
	assert.NotEqual(t, subSeed(42, stagePlates), subSeed(43, stagePlates))
}

func TestTieBreakBounds(t *testing.T) {
	for x := 0; x < 50; x++ {
		for y := 0; y < 50; y++ {
			v := tieBreak(123, x, y)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1e-6, "perturbation must stay below the flow tolerance")
			assert.Equal(t, v, tieBreak(123, x, y))
		}
	}
}
