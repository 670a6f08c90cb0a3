package warp

import "github.com/capturequest/warpclass/pkg/tileset"

// Kind labels how a warp activates.
type Kind string

// Warp kinds.
const (
	Door   Kind = "door"   // fires the moment the player steps on it
	Carpet Kind = "carpet" // fires only while holding a direction
)

// Method labels how a carpet's direction was inferred.
type Method string

// Direction inference methods.
const (
	ByDestWarp Method = "dest_warp" // from the destination warp's position
	ByEdge     Method = "edge"      // from the warp's own map edges
)

// Result is the classification of a single warp event.
type Result struct {
	Kind      Kind      `json:"kind"`
	Direction Direction `json:"direction,omitempty"`
	Method    Method    `json:"method,omitempty"`
	FeetTile  byte      `json:"feet_tile"`
}

// Classify determines whether the event's warp is a door or a carpet, and
// for carpets which facing activates it. Rule membership always checks the
// event's original tileset even when its block data lives in another
// tileset's blockset.
//
// Classification fails only when the feet tile cannot be resolved; a carpet
// always gets a direction, from the destination warp when it resolves and
// from the warp's own map edges otherwise.
func Classify(ev Event, world World) (Result, error) {
	feet, err := ResolveFeetTile(ev, world)
	if err != nil {
		return Result{}, err
	}

	if tileset.IsDoorOrWarpTile(ev.Tileset, feet) {
		return Result{Kind: Door, FeetTile: feet}, nil
	}

	if dir, ok := directionFromDest(ev, world); ok {
		return Result{Kind: Carpet, Direction: dir, Method: ByDestWarp, FeetTile: feet}, nil
	}
	return Result{Kind: Carpet, Direction: directionFromEdge(ev), Method: ByEdge, FeetTile: feet}, nil
}

// directionFromDest infers the facing from where the matching destination
// warp sits on the destination map. A warp that drops the player near the
// top edge over there is walked into downward over here, so the facing is
// the opposite of the nearest destination edge.
//
// Destination warps are numbered from one; number zero means the
// destination is dynamic (LAST_MAP) and cannot be resolved.
func directionFromDest(ev Event, world World) (Direction, bool) {
	if ev.DestWarpIndex < 1 {
		return "", false
	}
	info, ok := world.Map(ev.DestMap)
	if !ok {
		return "", false
	}
	dest := world.Warps(info.ID)
	if ev.DestWarpIndex > len(dest) {
		return "", false
	}
	p := dest[ev.DestWarpIndex-1]
	e := nearestEdge(p.X, p.Y, info.TileWidth(), info.TileHeight())
	return e.direction().Opposite(), true
}

// directionFromEdge infers the facing from the warp's own position. A warp
// sitting on a hard edge points off that edge; an interior warp points at
// the nearest edge.
func directionFromEdge(ev Event) Direction {
	w, h := ev.Width*2, ev.Height*2

	switch {
	case ev.Y <= 0:
		return Up
	case ev.Y >= h-1:
		return Down
	case ev.X <= 0:
		return Left
	case ev.X >= w-1:
		return Right
	}
	return nearestEdge(ev.X, ev.Y, w, h).direction()
}
