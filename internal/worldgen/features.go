// Regional feature placement: seeded, weighted scatter of rare points of
// interest under biome/elevation compatibility and minimum separation.
package worldgen

import "math/rand"

// FeatureType enumerates placeable points of interest.
type FeatureType uint8

const (
	FeatureVolcano FeatureType = iota
	FeatureMagicZone
	FeatureSubmergedCity
	FeatureAncientRuins
	FeatureCrystalCave

	featureTypeCount
)

var featureNames = [featureTypeCount]string{
	FeatureVolcano:       "Volcano",
	FeatureMagicZone:     "MagicZone",
	FeatureSubmergedCity: "SubmergedCity",
	FeatureAncientRuins:  "AncientRuins",
	FeatureCrystalCave:   "CrystalCave",
}

// String returns a human-readable name for the feature type.
func (t FeatureType) String() string {
	if t >= featureTypeCount {
		return "Unknown"
	}
	return featureNames[t]
}

// RegionalFeature is a placed point of interest. Immutable.
type RegionalFeature struct {
	Type      FeatureType `json:"type"`
	X         int         `json:"x"`
	Y         int         `json:"y"`
	Intensity float64     `json:"intensity"`
}

const (
	// featureMinSeparation is the minimum Euclidean distance between any
	// two placed features, in tiles.
	featureMinSeparation = 10.0

	// volcanoMinElevation is stricter than the general land threshold.
	volcanoMinElevation = 0.7

	// featureAttemptFactor bounds total placement attempts per requested
	// feature; the placer returns fewer features rather than looping.
	featureAttemptFactor = 30
)

// featureWeights drives the seeded type draw. Ruins and magic zones are
// common; volcanoes and submerged cities are rare.
var featureWeights = [featureTypeCount]int{
	FeatureVolcano:       15,
	FeatureMagicZone:     25,
	FeatureSubmergedCity: 10,
	FeatureAncientRuins:  30,
	FeatureCrystalCave:   20,
}

// placeFeatures scatters up to cfg.FeatureCount features. Rejected
// candidates are discarded, never retried; the result may be smaller than
// requested and that is not an error.
func placeFeatures(cfg GenConfig, elev *Grid, biomes *BiomeGrid) []RegionalFeature {
	if cfg.FeatureCount == 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(subSeed(cfg.Seed, stageFeatures)))

	totalWeight := 0
	for _, w := range featureWeights {
		totalWeight += w
	}

	placed := make([]RegionalFeature, 0, cfg.FeatureCount)
	maxAttempts := cfg.FeatureCount * featureAttemptFactor

	for attempt := 0; attempt < maxAttempts && len(placed) < cfg.FeatureCount; attempt++ {
		ftype := pickFeatureType(rng, totalWeight)
		x := rng.Intn(cfg.Width)
		y := rng.Intn(cfg.Height)
		intensity := rng.Float64()

		if !featureCompatible(ftype, elev.At(x, y), biomes.At(x, y)) {
			continue
		}
		if tooCloseToAny(x, y, placed) {
			continue
		}
		placed = append(placed, RegionalFeature{Type: ftype, X: x, Y: y, Intensity: intensity})
	}
	return placed
}

func pickFeatureType(rng *rand.Rand, totalWeight int) FeatureType {
	roll := rng.Intn(totalWeight)
	for t, w := range featureWeights {
		if roll < w {
			return FeatureType(t)
		}
		roll -= w
	}
	return FeatureAncientRuins // Unreachable; weights cover the roll range
}

// featureCompatible applies the per-type placement rule.
func featureCompatible(t FeatureType, elev float64, biome Biome) bool {
	switch t {
	case FeatureVolcano:
		return elev > volcanoMinElevation && !biome.IsWater()
	case FeatureSubmergedCity:
		return elev < seaLevel && biome.IsWater()
	default:
		return elev >= seaLevel
	}
}

func tooCloseToAny(x, y int, placed []RegionalFeature) bool {
	for _, f := range placed {
		dx := float64(x - f.X)
		dy := float64(y - f.Y)
		if dx*dx+dy*dy < featureMinSeparation*featureMinSeparation {
			return true
		}
	}
	return false
}
