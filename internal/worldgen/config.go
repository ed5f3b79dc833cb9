package worldgen

import "fmt"

// GenConfig holds world generation parameters.
type GenConfig struct {
	Seed   int64 // Run seed; every random draw in the pipeline derives from it
	Width  int   // Grid width in tiles
	Height int   // Grid height in tiles

	PlateCount   int // Tectonic plates to scatter
	RiverCount   int // Rivers to attempt (upper bound, not a guarantee)
	FeatureCount int // Regional features to attempt (upper bound)

	// Noise shape for the elevation base layer. Climate layers use fewer
	// octaves at a slightly higher base frequency.
	NoiseOctaves     int
	NoiseFrequency   float64
	NoisePersistence float64

	// UpliftScale multiplies collision intensity at convergent plate
	// boundaries before it is added to the noise base.
	UpliftScale float64

	// RiverMaxLength bounds a single river path; the search's explored-node
	// budget is derived from it.
	RiverMaxLength int
}

// DefaultGenConfig returns a reasonable starting configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:            128,
		Height:           128,
		PlateCount:       12,
		RiverCount:       8,
		FeatureCount:     20,
		NoiseOctaves:     4,
		NoiseFrequency:   0.04,
		NoisePersistence: 0.5,
		UpliftScale:      0.3,
		RiverMaxLength:   256,
	}
}

// Validate rejects degenerate inputs before any generation work begins.
// A failed validation is fatal to the run; no partial world is produced.
func (c GenConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("worldgen: dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.PlateCount <= 0 {
		return fmt.Errorf("worldgen: plate count must be positive, got %d", c.PlateCount)
	}
	if c.RiverCount <= 0 {
		return fmt.Errorf("worldgen: river count must be positive, got %d", c.RiverCount)
	}
	if c.FeatureCount < 0 {
		return fmt.Errorf("worldgen: feature count must be non-negative, got %d", c.FeatureCount)
	}
	if c.NoiseOctaves <= 0 {
		return fmt.Errorf("worldgen: noise octaves must be positive, got %d", c.NoiseOctaves)
	}
	if c.RiverMaxLength <= 0 {
		return fmt.Errorf("worldgen: river max length must be positive, got %d", c.RiverMaxLength)
	}
	return nil
}
