// Package store loads the staging data warp classification runs on, either
// from the extractor's Postgres database or from a JSON snapshot, and
// serves lookups over it in memory.
package store

import (
	"fmt"

	"github.com/capturequest/warpclass/pkg/tileset"
	"github.com/capturequest/warpclass/pkg/warp"
)

// MapRecord is one maps row plus the map's warp positions in creation
// order.
type MapRecord struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Overworld bool         `json:"is_overworld"`
	Warps     []warp.Point `json:"warps,omitempty"`
}

// BlockRecord is one blocksets row.
type BlockRecord struct {
	Tileset    tileset.ID `json:"tileset_id"`
	BlockIndex int        `json:"block_index"`
	Data       []byte     `json:"block_data"`
}

type blockKey struct {
	tileset tileset.ID
	index   int
}

// Dataset holds everything a classification run needs. Events keep the
// batch order (map id, then x, then y); MapRecord.Warps keep creation
// order for destination warp numbering.
type Dataset struct {
	Maps   []MapRecord   `json:"maps"`
	Events []warp.Event  `json:"events"`
	Blocks []BlockRecord `json:"blocks"`

	byName  map[string]int
	byID    map[int]int
	byBlock map[blockKey]warp.Block
}

// NewDataset builds the lookup indexes over the given records.
func NewDataset(maps []MapRecord, events []warp.Event, blocks []BlockRecord) *Dataset {
	d := &Dataset{Maps: maps, Events: events, Blocks: blocks}
	d.reindex()
	return d
}

func (d *Dataset) reindex() {
	d.byName = make(map[string]int, len(d.Maps))
	d.byID = make(map[int]int, len(d.Maps))
	for i, m := range d.Maps {
		d.byName[m.Name] = i
		d.byID[m.ID] = i
	}
	d.byBlock = make(map[blockKey]warp.Block, len(d.Blocks))
	for _, b := range d.Blocks {
		d.byBlock[blockKey{b.Tileset, b.BlockIndex}] = warp.Block(b.Data)
	}
}

// Map returns the header of the named map.
func (d *Dataset) Map(name string) (warp.MapInfo, bool) {
	i, ok := d.byName[name]
	if !ok {
		return warp.MapInfo{}, false
	}
	m := d.Maps[i]
	return warp.MapInfo{ID: m.ID, Width: m.Width, Height: m.Height, Overworld: m.Overworld}, true
}

// Warps returns the map's warp positions in creation order.
func (d *Dataset) Warps(mapID int) []warp.Point {
	i, ok := d.byID[mapID]
	if !ok {
		return nil
	}
	return d.Maps[i].Warps
}

// Block returns the block at index in the given tileset's blockset.
func (d *Dataset) Block(id tileset.ID, index int) (warp.Block, error) {
	b, ok := d.byBlock[blockKey{id, index}]
	if !ok {
		return nil, fmt.Errorf("%w: tileset %s, block %d", warp.ErrBlockNotFound, id, index)
	}
	return b, nil
}
