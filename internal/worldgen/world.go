// Package worldgen turns a 64-bit seed and world dimensions into a complete
// tile grid of elevation, climate, hydrology, biomes, and regional features.
// Generation is bit-for-bit reproducible: identical inputs yield identical
// output, independent of parallelism inside any stage.
package worldgen

import "log/slog"

// WorldData is the immutable result of one generation run. Downstream
// consumers (simulation, persistence) read it; nothing mutates it.
type WorldData struct {
	Seed   int64
	Width  int
	Height int

	Plates      []Plate
	Elevation   *Grid
	Temperature *Grid
	Moisture    *Grid
	Biomes      *BiomeGrid
	Rivers      []River
	Features    []RegionalFeature

	Checksum uint64
}

// Generate runs the full pipeline: plates, elevation, climate, rivers,
// biomes, features, checksum. Blocking and re-entrant; each invocation is
// independent. Requested river/feature counts are upper bounds; shortfalls
// are valid results, not errors.
func Generate(cfg GenConfig) (*WorldData, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("generating world", "seed", cfg.Seed, "width", cfg.Width, "height", cfg.Height)

	plates := generatePlates(cfg)
	owner := partitionPlates(cfg, plates)
	slog.Debug("plate field ready", "plates", len(plates))

	elev := synthesizeElevation(cfg, plates, owner)
	temp := deriveTemperature(cfg, elev)
	moist := deriveMoisture(cfg, elev)

	rivers := carveRivers(cfg, elev)
	slog.Debug("rivers carved", "requested", cfg.RiverCount, "placed", len(rivers))

	biomes := classifyGrid(elev, temp, moist)

	features := placeFeatures(cfg, elev, biomes)
	slog.Debug("features placed", "requested", cfg.FeatureCount, "placed", len(features))

	w := &WorldData{
		Seed:        cfg.Seed,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Plates:      plates,
		Elevation:   elev,
		Temperature: temp,
		Moisture:    moist,
		Biomes:      biomes,
		Rivers:      rivers,
		Features:    features,
	}
	w.Checksum = w.ComputeChecksum()
	return w, nil
}

// BiomeCounts returns the distribution of biome tags across the grid.
func (w *WorldData) BiomeCounts() map[Biome]int {
	counts := make(map[Biome]int)
	for _, b := range w.Biomes.Cells {
		counts[b]++
	}
	return counts
}
