// Biome classification: a total, pure mapping from (elevation, temperature,
// moisture) to a fixed set of biome tags, plus the static trait table the
// economy layer reads resource abundance from.
package worldgen

import "golang.org/x/sync/errgroup"

// Elevation thresholds shared across classification, river search goals,
// and feature compatibility.
const (
	deepOceanLevel = 0.15 // Below: open ocean
	seaLevel       = 0.2  // Below: standing water (ocean or lake band)
	highlandLevel  = 0.6  // Above: hills, river sources
	mountainLevel  = 0.8  // Above: mountain
)

// Volcanic compound condition: hot, wet highland. Takes precedence over
// Hills and Mountain inside the highland band.
const (
	volcanicTempMinC    = 25.0
	volcanicMoistureMin = 0.6
)

// Biome is a discrete environmental classification tag.
type Biome uint8

const (
	BiomeOcean Biome = iota
	BiomeLake
	BiomeMountain
	BiomeHills
	BiomeVolcanic
	BiomeTundra
	BiomeTaiga
	BiomeDesert
	BiomeJungle
	BiomeSavanna
	BiomeForest
	BiomeSwamp
	BiomeGrassland

	biomeCount
)

// BiomeTraits holds the static properties of a biome tag. The table is a
// plain immutable value array; nothing mutates it after init.
type BiomeTraits struct {
	Name      string
	ElevMin   float64 // Typical elevation band the biome occupies
	ElevMax   float64
	TempMinC  float64 // Typical temperature band
	TempMaxC  float64
	Moisture  float64 // Preferred moisture level
	Abundance float64 // Resource-abundance multiplier for the economy layer
	Water     bool
	Habitable bool
}

var biomeTraits = [biomeCount]BiomeTraits{
	BiomeOcean:     {Name: "Ocean", ElevMin: 0, ElevMax: deepOceanLevel, TempMinC: -50, TempMaxC: 50, Moisture: 1, Abundance: 0.6, Water: true},
	BiomeLake:      {Name: "Lake", ElevMin: deepOceanLevel, ElevMax: seaLevel, TempMinC: -50, TempMaxC: 50, Moisture: 1, Abundance: 0.8, Water: true},
	BiomeMountain:  {Name: "Mountain", ElevMin: mountainLevel, ElevMax: 1, TempMinC: -50, TempMaxC: 20, Moisture: 0.4, Abundance: 1.1},
	BiomeHills:     {Name: "Hills", ElevMin: highlandLevel, ElevMax: mountainLevel, TempMinC: -30, TempMaxC: 30, Moisture: 0.5, Abundance: 0.9, Habitable: true},
	BiomeVolcanic:  {Name: "Volcanic", ElevMin: highlandLevel, ElevMax: 1, TempMinC: volcanicTempMinC, TempMaxC: 50, Moisture: volcanicMoistureMin, Abundance: 1.4},
	BiomeTundra:    {Name: "Tundra", ElevMin: seaLevel, ElevMax: highlandLevel, TempMinC: -50, TempMaxC: 0, Moisture: 0.3, Abundance: 0.4, Habitable: true},
	BiomeTaiga:     {Name: "Taiga", ElevMin: seaLevel, ElevMax: highlandLevel, TempMinC: 0, TempMaxC: 10, Moisture: 0.5, Abundance: 0.7, Habitable: true},
	BiomeDesert:    {Name: "Desert", ElevMin: seaLevel, ElevMax: highlandLevel, TempMinC: 25, TempMaxC: 50, Moisture: 0.15, Abundance: 0.3, Habitable: true},
	BiomeJungle:    {Name: "Jungle", ElevMin: seaLevel, ElevMax: highlandLevel, TempMinC: 25, TempMaxC: 50, Moisture: 0.85, Abundance: 1.3, Habitable: true},
	BiomeSavanna:   {Name: "Savanna", ElevMin: seaLevel, ElevMax: highlandLevel, TempMinC: 20, TempMaxC: 50, Moisture: 0.35, Abundance: 0.8, Habitable: true},
	BiomeForest:    {Name: "Forest", ElevMin: seaLevel, ElevMax: highlandLevel, TempMinC: 10, TempMaxC: 25, Moisture: 0.6, Abundance: 1.2, Habitable: true},
	BiomeSwamp:     {Name: "Swamp", ElevMin: seaLevel, ElevMax: highlandLevel, TempMinC: 10, TempMaxC: 30, Moisture: 0.9, Abundance: 0.9, Habitable: true},
	BiomeGrassland: {Name: "Grassland", ElevMin: seaLevel, ElevMax: highlandLevel, TempMinC: 10, TempMaxC: 25, Moisture: 0.45, Abundance: 1.0, Habitable: true},
}

// Traits returns the static properties of the biome.
func (b Biome) Traits() BiomeTraits {
	return biomeTraits[b]
}

// IsWater reports whether the biome is a standing-water tile.
func (b Biome) IsWater() bool {
	return biomeTraits[b].Water
}

// IsHabitable reports whether settlements can occupy the biome.
func (b Biome) IsHabitable() bool {
	return biomeTraits[b].Habitable
}

// String returns a human-readable name for the biome.
func (b Biome) String() string {
	if b >= biomeCount {
		return "Unknown"
	}
	return biomeTraits[b].Name
}

// Classify maps (elevation, temperature °C, moisture) to a biome tag.
// Total and pure: fixed thresholds, no I/O, safe to call concurrently for
// every tile. Rules are evaluated in priority order: water first, then
// high terrain (volcanic compound condition winning inside the highland
// band), then temperature bands, then temperature/moisture combinations
// with Grassland as the fallback.
func Classify(elev, tempC, moisture float64) Biome {
	switch {
	case elev < deepOceanLevel:
		return BiomeOcean
	case elev < seaLevel:
		return BiomeLake
	}

	if elev > highlandLevel && tempC > volcanicTempMinC && moisture > volcanicMoistureMin {
		return BiomeVolcanic
	}
	if elev > mountainLevel {
		return BiomeMountain
	}
	if elev >= highlandLevel {
		return BiomeHills
	}

	if tempC < 0 {
		return BiomeTundra
	}
	if tempC < 10 {
		return BiomeTaiga
	}

	switch {
	case tempC > 25 && moisture < 0.3:
		return BiomeDesert
	case tempC > 25 && moisture > 0.7:
		return BiomeJungle
	case tempC > 20 && moisture < 0.5:
		return BiomeSavanna
	case moisture > 0.75:
		return BiomeSwamp
	case moisture > 0.45:
		return BiomeForest
	default:
		return BiomeGrassland
	}
}

// classifyGrid evaluates Classify for every tile, parallel per row.
func classifyGrid(elev, temp, moist *Grid) *BiomeGrid {
	g := NewBiomeGrid(elev.Width, elev.Height)

	var eg errgroup.Group
	for y := 0; y < elev.Height; y++ {
		y := y
		eg.Go(func() error {
			for x := 0; x < elev.Width; x++ {
				g.Set(x, y, Classify(elev.At(x, y), temp.At(x, y), moist.At(x, y)))
			}
			return nil
		})
	}
	_ = eg.Wait()
	return g
}
