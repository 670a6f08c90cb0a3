package tileset

// doorTiles lists the 8x8 tile IDs that count as door tiles per tileset,
// reproduced from data/tilesets/door_tile_ids.asm. A player standing on one
// of these triggers its warp immediately.
var doorTiles = map[ID][]byte{
	Overworld:  {0x1B, 0x58},
	Mart:       {0x5E},
	Forest:     {0x3A},
	House:      {0x54},
	ForestGate: {0x3B},
	Museum:     {0x3B},
	Gate:       {0x3B},
	Ship:       {0x1E},
	Lobby:      {0x1C, 0x38, 0x1A},
	Mansion:    {0x1A, 0x1C, 0x53},
	Lab:        {0x34},
	Facility:   {0x43, 0x58, 0x1B},
	Plateau:    {0x3B, 0x1B},
}

// warpTiles lists the additional warp tile IDs per tileset, reproduced from
// data/tilesets/warp_tile_ids.asm. These also trigger immediately.
var warpTiles = map[ID][]byte{
	Overworld:   {0x1B, 0x58},
	RedsHouse1:  {0x3B, 0x1A, 0x1C},
	Mart:        {0x5E},
	Forest:      {0x5A, 0x5C, 0x3A},
	RedsHouse2:  {0x3B, 0x1A, 0x1C},
	Dojo:        {0x4A},
	Pokecenter:  {0x5E},
	Gym:         {0x4A},
	House:       {0x54, 0x5C, 0x32},
	ForestGate:  {0x3B, 0x1A, 0x1C},
	Museum:      {0x3B, 0x1A, 0x1C},
	Underground: {0x13},
	Gate:        {0x3B, 0x1A, 0x1C},
	Ship:        {0x37, 0x39, 0x1E, 0x4A},
	ShipPort:    {},
	Cemetery:    {0x1B, 0x13},
	Interior:    {0x15, 0x55, 0x04},
	Cavern:      {0x18, 0x1A, 0x22},
	Lobby:       {0x1A, 0x1C, 0x38},
	Mansion:     {0x1A, 0x1C, 0x53},
	Lab:         {0x34},
	Club:        {},
	Facility:    {0x43, 0x58, 0x20, 0x1B, 0x13},
	Plateau:     {0x1B, 0x3B},
}

// graphicsRemap maps tilesets that share a graphics bank to the tileset whose
// blockset actually holds their block data. The remap applies to block-data
// lookup only; ground-rule classification always uses the original ID.
var graphicsRemap = map[ID]ID{
	Dojo:       Gym,
	Mart:       Pokecenter,
	Museum:     Gate,
	ForestGate: Gate,
	RedsHouse2: RedsHouse1,
}

// GraphicsID returns the tileset whose blockset stores id's block data.
// Tilesets without a shared bank map to themselves.
func GraphicsID(id ID) ID {
	if g, ok := graphicsRemap[id]; ok {
		return g
	}
	return id
}

// IsDoorTile reports whether tile is a door tile in the given tileset.
func IsDoorTile(id ID, tile byte) bool {
	return contains(doorTiles[id], tile)
}

// IsWarpTile reports whether tile is a warp tile in the given tileset.
func IsWarpTile(id ID, tile byte) bool {
	return contains(warpTiles[id], tile)
}

// IsDoorOrWarpTile reports whether a player whose feet rest on tile triggers
// warps immediately in the given tileset. This mirrors the walk-time
// IsPlayerStandingOnDoorTileOrWarpTile check.
func IsDoorOrWarpTile(id ID, tile byte) bool {
	return IsDoorTile(id, tile) || IsWarpTile(id, tile)
}

// DoorTiles returns a copy of the door tile IDs for the given tileset.
// Tilesets without door tiles yield an empty slice.
func DoorTiles(id ID) []byte {
	return append([]byte(nil), doorTiles[id]...)
}

// WarpTiles returns a copy of the warp tile IDs for the given tileset.
func WarpTiles(id ID) []byte {
	return append([]byte(nil), warpTiles[id]...)
}

func contains(tiles []byte, tile byte) bool {
	for _, t := range tiles {
		if t == tile {
			return true
		}
	}
	return false
}
