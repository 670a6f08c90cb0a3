package store

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/capturequest/warpclass/pkg/tileset"
	"github.com/capturequest/warpclass/pkg/warp"
)

// Store reads the staging database written by the extractor.
type Store struct {
	db *sql.DB
}

// Open connects to the staging database and verifies the connection.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the maps, warp events and blocksets into a Dataset.
func (s *Store) Load() (*Dataset, error) {
	maps, err := s.loadMaps()
	if err != nil {
		return nil, err
	}
	events, err := s.loadEvents()
	if err != nil {
		return nil, err
	}
	blocks, err := s.loadBlocks()
	if err != nil {
		return nil, err
	}
	return NewDataset(maps, events, blocks), nil
}

func (s *Store) loadMaps() ([]MapRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, name, width, height, is_overworld
		FROM maps
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying maps: %w", err)
	}
	defer rows.Close()

	var maps []MapRecord
	index := make(map[int]int)
	for rows.Next() {
		var m MapRecord
		if err := rows.Scan(&m.ID, &m.Name, &m.Width, &m.Height, &m.Overworld); err != nil {
			return nil, fmt.Errorf("scanning map: %w", err)
		}
		index[m.ID] = len(maps)
		maps = append(maps, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading maps: %w", err)
	}

	// Warp positions per map, in creation order. Destination warp numbers
	// index into these lists.
	warps, err := s.db.Query(`
		SELECT map_id, x, y
		FROM warp_events
		ORDER BY map_id, id`)
	if err != nil {
		return nil, fmt.Errorf("querying warp positions: %w", err)
	}
	defer warps.Close()

	for warps.Next() {
		var mapID int
		var p warp.Point
		if err := warps.Scan(&mapID, &p.X, &p.Y); err != nil {
			return nil, fmt.Errorf("scanning warp position: %w", err)
		}
		if i, ok := index[mapID]; ok {
			maps[i].Warps = append(maps[i].Warps, p)
		}
	}
	if err := warps.Err(); err != nil {
		return nil, fmt.Errorf("reading warp positions: %w", err)
	}

	return maps, nil
}

func (s *Store) loadEvents() ([]warp.Event, error) {
	// The tiles_raw join resolves the block under each warp; tile
	// coordinates halve to block coordinates.
	rows, err := s.db.Query(`
		SELECT w.map_id, m.name, w.x, w.y, w.dest_map, w.dest_warp_index,
		       tr.tileset_id, tr.block_index,
		       m.width, m.height, m.is_overworld
		FROM warp_events w
		JOIN maps m ON m.id = w.map_id
		JOIN tiles_raw tr ON tr.map_id = w.map_id
			AND tr.x = w.x / 2 AND tr.y = w.y / 2
		ORDER BY w.map_id, w.x, w.y`)
	if err != nil {
		return nil, fmt.Errorf("querying warp events: %w", err)
	}
	defer rows.Close()

	var events []warp.Event
	for rows.Next() {
		var ev warp.Event
		var tilesetID int
		if err := rows.Scan(&ev.MapID, &ev.Map, &ev.X, &ev.Y,
			&ev.DestMap, &ev.DestWarpIndex, &tilesetID, &ev.BlockIndex,
			&ev.Width, &ev.Height, &ev.Overworld); err != nil {
			return nil, fmt.Errorf("scanning warp event: %w", err)
		}
		ev.Tileset = tileset.ID(tilesetID)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading warp events: %w", err)
	}
	return events, nil
}

func (s *Store) loadBlocks() ([]BlockRecord, error) {
	rows, err := s.db.Query(`
		SELECT tileset_id, block_index, block_data
		FROM blocksets
		ORDER BY tileset_id, block_index`)
	if err != nil {
		return nil, fmt.Errorf("querying blocksets: %w", err)
	}
	defer rows.Close()

	var blocks []BlockRecord
	for rows.Next() {
		var b BlockRecord
		var tilesetID int
		if err := rows.Scan(&tilesetID, &b.BlockIndex, &b.Data); err != nil {
			return nil, fmt.Errorf("scanning blockset: %w", err)
		}
		b.Tileset = tileset.ID(tilesetID)
		blocks = append(blocks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading blocksets: %w", err)
	}
	return blocks, nil
}
