package worldgen

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ComputeChecksum returns the xxhash64 content checksum over the generated
// grids, rivers, and features. The persistence layer uses it to detect
// corruption; tests use it to assert determinism without comparing grids.
func (w *WorldData) ComputeChecksum() uint64 {
	d := xxhash.New()
	var buf [8]byte

	writeU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		d.Write(buf[:])
	}
	writeFloat := func(v float64) {
		writeU64(math.Float64bits(v))
	}

	writeU64(uint64(w.Seed))
	writeU64(uint64(w.Width))
	writeU64(uint64(w.Height))

	for _, g := range []*Grid{w.Elevation, w.Temperature, w.Moisture} {
		for _, v := range g.Cells {
			writeFloat(v)
		}
	}
	for _, b := range w.Biomes.Cells {
		d.Write([]byte{byte(b)})
	}

	for _, r := range w.Rivers {
		writeU64(uint64(r.ID))
		lake := uint64(0)
		if r.IsLake {
			lake = 1
		}
		writeU64(lake)
		for _, t := range r.Path {
			writeU64(uint64(t.X))
			writeU64(uint64(t.Y))
			writeFloat(t.Elevation)
		}
	}

	for _, f := range w.Features {
		writeU64(uint64(f.Type))
		writeU64(uint64(f.X))
		writeU64(uint64(f.Y))
		writeFloat(f.Intensity)
	}

	return d.Sum64()
}
