// Package persistence provides SQLite-based storage for generated world
// snapshots. The determinism contract lives in worldgen; this layer only
// stores output and verifies checksums on the way back out.
package persistence

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/terragen/internal/worldgen"
)

// DB wraps a SQLite connection for snapshot storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		checksum TEXT NOT NULL,
		created_at TEXT NOT NULL,
		elevation BLOB NOT NULL,
		temperature BLOB NOT NULL,
		moisture BLOB NOT NULL,
		biomes BLOB NOT NULL,
		plates_json TEXT NOT NULL,
		rivers_json TEXT NOT NULL,
		features_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_seed ON snapshots(seed);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SnapshotInfo is a row summary for listing.
type SnapshotInfo struct {
	ID        string `db:"id"`
	Seed      int64  `db:"seed"`
	Width     int    `db:"width"`
	Height    int    `db:"height"`
	Checksum  string `db:"checksum"`
	CreatedAt string `db:"created_at"`
}

// SaveSnapshot stores a generated world and returns its snapshot id.
func (db *DB) SaveSnapshot(w *worldgen.WorldData) (string, error) {
	id := uuid.NewString()

	platesJSON, err := json.Marshal(w.Plates)
	if err != nil {
		return "", fmt.Errorf("marshal plates: %w", err)
	}
	riversJSON, err := json.Marshal(w.Rivers)
	if err != nil {
		return "", fmt.Errorf("marshal rivers: %w", err)
	}
	featuresJSON, err := json.Marshal(w.Features)
	if err != nil {
		return "", fmt.Errorf("marshal features: %w", err)
	}

	_, err = db.conn.Exec(`
		INSERT INTO snapshots
		(id, seed, width, height, checksum, created_at,
		 elevation, temperature, moisture, biomes,
		 plates_json, rivers_json, features_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, w.Seed, w.Width, w.Height,
		fmt.Sprintf("%016x", w.Checksum),
		time.Now().UTC().Format(time.RFC3339),
		encodeGrid(w.Elevation), encodeGrid(w.Temperature), encodeGrid(w.Moisture),
		encodeBiomes(w.Biomes),
		string(platesJSON), string(riversJSON), string(featuresJSON),
	)
	if err != nil {
		return "", fmt.Errorf("insert snapshot: %w", err)
	}
	return id, nil
}

// LoadSnapshot restores a world by snapshot id and verifies that the
// recomputed checksum matches the stored one.
func (db *DB) LoadSnapshot(id string) (*worldgen.WorldData, error) {
	var row struct {
		Seed         int64  `db:"seed"`
		Width        int    `db:"width"`
		Height       int    `db:"height"`
		Checksum     string `db:"checksum"`
		Elevation    []byte `db:"elevation"`
		Temperature  []byte `db:"temperature"`
		Moisture     []byte `db:"moisture"`
		Biomes       []byte `db:"biomes"`
		PlatesJSON   string `db:"plates_json"`
		RiversJSON   string `db:"rivers_json"`
		FeaturesJSON string `db:"features_json"`
	}
	err := db.conn.Get(&row, `
		SELECT seed, width, height, checksum,
		       elevation, temperature, moisture, biomes,
		       plates_json, rivers_json, features_json
		FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", id, err)
	}

	w := &worldgen.WorldData{
		Seed:   row.Seed,
		Width:  row.Width,
		Height: row.Height,
	}
	if w.Elevation, err = decodeGrid(row.Elevation, row.Width, row.Height); err != nil {
		return nil, fmt.Errorf("decode elevation: %w", err)
	}
	if w.Temperature, err = decodeGrid(row.Temperature, row.Width, row.Height); err != nil {
		return nil, fmt.Errorf("decode temperature: %w", err)
	}
	if w.Moisture, err = decodeGrid(row.Moisture, row.Width, row.Height); err != nil {
		return nil, fmt.Errorf("decode moisture: %w", err)
	}
	if w.Biomes, err = decodeBiomes(row.Biomes, row.Width, row.Height); err != nil {
		return nil, fmt.Errorf("decode biomes: %w", err)
	}
	if err := json.Unmarshal([]byte(row.PlatesJSON), &w.Plates); err != nil {
		return nil, fmt.Errorf("unmarshal plates: %w", err)
	}
	if err := json.Unmarshal([]byte(row.RiversJSON), &w.Rivers); err != nil {
		return nil, fmt.Errorf("unmarshal rivers: %w", err)
	}
	if err := json.Unmarshal([]byte(row.FeaturesJSON), &w.Features); err != nil {
		return nil, fmt.Errorf("unmarshal features: %w", err)
	}

	w.Checksum = w.ComputeChecksum()
	if stored := fmt.Sprintf("%016x", w.Checksum); stored != row.Checksum {
		return nil, fmt.Errorf("snapshot %s: checksum mismatch: stored %s, recomputed %s",
			id, row.Checksum, stored)
	}
	return w, nil
}

// ListSnapshots returns summaries of all stored snapshots, newest first.
func (db *DB) ListSnapshots() ([]SnapshotInfo, error) {
	var infos []SnapshotInfo
	err := db.conn.Select(&infos, `
		SELECT id, seed, width, height, checksum, created_at
		FROM snapshots ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return infos, nil
}

// encodeGrid packs grid cells as little-endian float64 bits.
func encodeGrid(g *worldgen.Grid) []byte {
	buf := make([]byte, 8*len(g.Cells))
	for i, v := range g.Cells {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return buf
}

func decodeGrid(buf []byte, width, height int) (*worldgen.Grid, error) {
	if len(buf) != 8*width*height {
		return nil, fmt.Errorf("grid blob is %d bytes, want %d", len(buf), 8*width*height)
	}
	g := worldgen.NewGrid(width, height)
	for i := range g.Cells {
		g.Cells[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[i*8:]))
	}
	return g, nil
}

func encodeBiomes(g *worldgen.BiomeGrid) []byte {
	buf := make([]byte, len(g.Cells))
	for i, b := range g.Cells {
		buf[i] = byte(b)
	}
	return buf
}

func decodeBiomes(buf []byte, width, height int) (*worldgen.BiomeGrid, error) {
	if len(buf) != width*height {
		return nil, fmt.Errorf("biome blob is %d bytes, want %d", len(buf), width*height)
	}
	g := worldgen.NewBiomeGrid(width, height)
	for i := range g.Cells {
		g.Cells[i] = worldgen.Biome(buf[i])
	}
	return g, nil
}
