package worldgen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GenConfig)
	}{
		{"zero width", func(c *GenConfig) { c.Width = 0 }},
		{"negative height", func(c *GenConfig) { c.Height = -1 }},
		{"zero plates", func(c *GenConfig) { c.PlateCount = 0 }},
		{"zero rivers", func(c *GenConfig) { c.RiverCount = 0 }},
		{"negative rivers", func(c *GenConfig) { c.RiverCount = -1 }},
		{"negative features", func(c *GenConfig) { c.FeatureCount = -1 }},
		{"zero octaves", func(c *GenConfig) { c.NoiseOctaves = 0 }},
		{"zero max length", func(c *GenConfig) { c.RiverMaxLength = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGenConfig()
			cfg.Seed = 1
			tt.mutate(&cfg)
			w, err := Generate(cfg)
			assert.Error(t, err)
			assert.Nil(t, w, "no partial world on validation failure")
		})
	}
}

// Two independent runs of the reference scenario must agree bit for bit.
func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 123456789

	a, err := Generate(cfg)
	require.NoError(t, err)
	b, err := Generate(cfg)
	require.NoError(t, err)

	assert.Equal(t, a.Checksum, b.Checksum)
	assert.Equal(t, a.Elevation.Cells, b.Elevation.Cells)
	assert.Equal(t, a.Rivers, b.Rivers)
	assert.Equal(t, a.Features, b.Features)
	assert.Equal(t, a.Biomes.Cells, b.Biomes.Cells)
}

func TestGenerateSeedVariation(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 1
	a, err := Generate(cfg)
	require.NoError(t, err)

	cfg.Seed = 2
	b, err := Generate(cfg)
	require.NoError(t, err)

	assert.NotEqual(t, a.Checksum, b.Checksum)
	assert.NotEqual(t, a.Elevation.Cells, b.Elevation.Cells)
}

func TestGenerateOutputInvariants(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 424242

	w, err := Generate(cfg)
	require.NoError(t, err)

	for _, v := range w.Elevation.Cells {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}

	assert.LessOrEqual(t, len(w.Rivers), cfg.RiverCount)
	assertRiverInvariants(t, w.Rivers, w.Elevation)

	assert.LessOrEqual(t, len(w.Features), cfg.FeatureCount)
	for i, f := range w.Features {
		elev := w.Elevation.At(f.X, f.Y)
		biome := w.Biomes.At(f.X, f.Y)

		assert.GreaterOrEqual(t, f.Intensity, 0.0)
		assert.LessOrEqual(t, f.Intensity, 1.0)

		switch f.Type {
		case FeatureVolcano:
			assert.Greater(t, elev, volcanoMinElevation)
			assert.False(t, biome.IsWater())
		case FeatureSubmergedCity:
			assert.Less(t, elev, seaLevel)
			assert.True(t, biome.IsWater())
		default:
			assert.GreaterOrEqual(t, elev, seaLevel)
		}

		for j := i + 1; j < len(w.Features); j++ {
			g := w.Features[j]
			d := math.Hypot(float64(f.X-g.X), float64(f.Y-g.Y))
			assert.GreaterOrEqual(t, d, featureMinSeparation,
				"features %d and %d too close", i, j)
		}
	}

	assert.Equal(t, w.Checksum, w.ComputeChecksum())
}

func TestBiomeCounts(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 7
	cfg.Width = 32
	cfg.Height = 32

	w, err := Generate(cfg)
	require.NoError(t, err)

	total := 0
	for _, n := range w.BiomeCounts() {
		total += n
	}
	assert.Equal(t, 32*32, total)
}
