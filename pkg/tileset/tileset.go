// Package tileset identifies the Gen-1 tilesets and carries their ground
// behavior tables: which 8x8 tiles act as door tiles or warp tiles, and which
// tilesets borrow another tileset's graphics bank for block data.
package tileset

import "fmt"

// ID is a tileset identifier as stored in the staging database.
type ID uint8

// The 24 tilesets, in header order.
const (
	Overworld ID = iota
	RedsHouse1
	Mart
	Forest
	RedsHouse2
	Dojo
	Pokecenter
	Gym
	House
	ForestGate
	Museum
	Underground
	Gate
	Ship
	ShipPort
	Cemetery
	Interior
	Cavern
	Lobby
	Mansion
	Lab
	Club
	Facility
	Plateau
)

// names uses the canonical constant names from the tileset headers.
var names = [...]string{
	Overworld:   "OVERWORLD",
	RedsHouse1:  "REDS_HOUSE_1",
	Mart:        "MART",
	Forest:      "FOREST",
	RedsHouse2:  "REDS_HOUSE_2",
	Dojo:        "DOJO",
	Pokecenter:  "POKECENTER",
	Gym:         "GYM",
	House:       "HOUSE",
	ForestGate:  "FOREST_GATE",
	Museum:      "MUSEUM",
	Underground: "UNDERGROUND",
	Gate:        "GATE",
	Ship:        "SHIP",
	ShipPort:    "SHIP_PORT",
	Cemetery:    "CEMETERY",
	Interior:    "INTERIOR",
	Cavern:      "CAVERN",
	Lobby:       "LOBBY",
	Mansion:     "MANSION",
	Lab:         "LAB",
	Club:        "CLUB",
	Facility:    "FACILITY",
	Plateau:     "PLATEAU",
}

// String returns the canonical tileset name.
func (id ID) String() string {
	if int(id) < len(names) {
		return names[id]
	}
	return fmt.Sprintf("TILESET_%d", uint8(id))
}
