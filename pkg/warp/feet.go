package warp

import (
	"errors"
	"fmt"

	"github.com/capturequest/warpclass/pkg/tileset"
)

// Feet tile resolution errors.
var (
	ErrBlockNotFound      = errors.New("no block data")
	ErrFeetTileOutOfRange = errors.New("feet tile outside block data")
)

// feetIndex holds the block-data index of the feet tile for each quadrant.
// A block is 4x4 8x8 tiles; each map tile covers a 2x2 quadrant of it and
// the player's feet land on the quadrant's bottom-left 8x8 tile:
//
//	[0]  [1]  [2]  [3]
//	[4]  [5]  [6]  [7]
//	[8]  [9]  [10] [11]
//	[12] [13] [14] [15]
var feetIndex = [4]int{4, 6, 12, 14}

// Quadrant returns which quadrant of its block the tile at (x, y) occupies,
// decided by coordinate parity: 0 top-left, 1 top-right, 2 bottom-left,
// 3 bottom-right.
func Quadrant(x, y int) int {
	return (x & 1) + 2*(y&1)
}

// ResolveFeetTile returns the 8x8 tile ID under the player's feet when
// standing on the event's position. Block data is looked up under the
// event tileset's graphics tileset; door and warp rules elsewhere keep
// using the original tileset.
func ResolveFeetTile(ev Event, blocks BlockSource) (byte, error) {
	block, err := blocks.Block(tileset.GraphicsID(ev.Tileset), ev.BlockIndex)
	if err != nil {
		return 0, fmt.Errorf("map %s at %d,%d: %w", ev.Map, ev.X, ev.Y, err)
	}

	idx := feetIndex[Quadrant(ev.X, ev.Y)]
	if idx >= len(block) {
		return 0, fmt.Errorf("map %s at %d,%d: %w: index %d in %d-byte block",
			ev.Map, ev.X, ev.Y, ErrFeetTileOutOfRange, idx, len(block))
	}
	return block[idx], nil
}
