// Package warp classifies Gen-1 map warps as doors or carpets and infers
// the activation direction for carpets.
//
// The walk-time rule (home/overworld.asm, CheckWarpsNoCollision) is: a warp
// whose feet tile is a door tile or a warp tile of the map's tileset fires
// the moment the player steps on it. Every other warp is a carpet and only
// fires while the player holds a specific direction.
package warp

import "github.com/capturequest/warpclass/pkg/tileset"

// Point is a position in map tile coordinates.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MapInfo describes one map header. Width and Height are in blocks; a block
// covers 2x2 tiles.
type MapInfo struct {
	ID        int
	Width     int
	Height    int
	Overworld bool
}

// TileWidth returns the map width in tiles.
func (m MapInfo) TileWidth() int { return m.Width * 2 }

// TileHeight returns the map height in tiles.
func (m MapInfo) TileHeight() int { return m.Height * 2 }

// Block is the tile data of one map block: 16 8x8 tile IDs laid out as a
// 4x4 grid in row-major order.
type Block []byte

// Event is one warp event joined with the block under it and its map
// header, matching the warp_events, tiles_raw and maps rows of the staging
// database. Width and Height are the source map's dimensions in blocks.
type Event struct {
	Map           string     `json:"map_name"`
	MapID         int        `json:"map_id"`
	X             int        `json:"x"`
	Y             int        `json:"y"`
	DestMap       string     `json:"dest_map"`
	DestWarpIndex int        `json:"dest_warp_index"`
	Tileset       tileset.ID `json:"tileset_id"`
	BlockIndex    int        `json:"block_index"`
	Width         int        `json:"width"`
	Height        int        `json:"height"`
	Overworld     bool       `json:"is_overworld"`
}

// BlockSource resolves block tile data by blockset.
type BlockSource interface {
	// Block returns the block stored at index in the given tileset's
	// blockset. The error wraps ErrBlockNotFound when the blockset has no
	// such block.
	Block(id tileset.ID, index int) (Block, error)
}

// MapSource resolves map headers by name.
type MapSource interface {
	Map(name string) (MapInfo, bool)
}

// WarpSource resolves the warp list of a map.
type WarpSource interface {
	// Warps returns the map's warp positions in creation order, or nil
	// for an unknown map.
	Warps(mapID int) []Point
}

// World bundles the lookups classification needs.
type World interface {
	BlockSource
	MapSource
	WarpSource
}
