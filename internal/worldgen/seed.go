// Deterministic sub-seeding. Every stage derives its own random stream from
// the run seed so that reordering or parallelizing stages can never shift
// another stage's draws.
package worldgen

// Stage identifiers for sub-seed derivation. Values are part of the
// determinism contract: changing them changes every generated world.
const (
	stagePlates uint32 = iota + 1
	stageElevation
	stageTemperature
	stageMoisture
	stageRivers
	stageFeatures
)

// hash32 mixes a 32-bit input into a well-distributed 32-bit output
// (murmur finalizer-style avalanching). Stable across versions; never
// replace with anything rand-derived.
func hash32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

// hash2 returns a stable hash for 2D integer coordinates plus a seed.
// Large odd constants decorrelate the axes.
func hash2(seed uint32, x, y int32) uint32 {
	h := seed
	h ^= uint32(x) * 0x9e3779b1
	h ^= uint32(y) * 0x85ebca6b
	return hash32(h)
}

// subSeed derives a stage-scoped 64-bit seed from the run seed.
func subSeed(seed int64, stage uint32) int64 {
	lo := hash2(uint32(seed), int32(stage), int32(seed>>32))
	hi := hash2(uint32(seed>>32), int32(stage), int32(seed))
	return int64(uint64(hi)<<32 | uint64(lo))
}

// tieBreak returns a deterministic perturbation in [0, 1e-6) for the given
// coordinate. Used only to order the river search frontier on flat
// plateaus; it must never leak into a stored elevation.
func tieBreak(seed int64, x, y int) float64 {
	h := hash2(uint32(seed)^hash32(uint32(seed>>32)), int32(x), int32(y))
	return float64(h) / (1 << 32) * 1e-6
}
