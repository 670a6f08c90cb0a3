package tileset

import "testing"

func TestID_String(t *testing.T) {
	tests := []struct {
		id       ID
		expected string
	}{
		{Overworld, "OVERWORLD"},
		{RedsHouse1, "REDS_HOUSE_1"},
		{Mart, "MART"},
		{Forest, "FOREST"},
		{Dojo, "DOJO"},
		{Pokecenter, "POKECENTER"},
		{Gym, "GYM"},
		{Underground, "UNDERGROUND"},
		{Plateau, "PLATEAU"},
		{ID(24), "TILESET_24"},
		{ID(99), "TILESET_99"},
	}

	for _, tc := range tests {
		if tc.id.String() != tc.expected {
			t.Errorf("ID(%d).String() = %q, expected %q", uint8(tc.id), tc.id.String(), tc.expected)
		}
	}
}

func TestGraphicsID_Remapped(t *testing.T) {
	tests := []struct {
		id       ID
		expected ID
	}{
		{Dojo, Gym},
		{Mart, Pokecenter},
		{Museum, Gate},
		{ForestGate, Gate},
		{RedsHouse2, RedsHouse1},
	}

	for _, tc := range tests {
		if got := GraphicsID(tc.id); got != tc.expected {
			t.Errorf("GraphicsID(%s) = %s, expected %s", tc.id, got, tc.expected)
		}
	}
}

func TestGraphicsID_Identity(t *testing.T) {
	for _, id := range []ID{Overworld, RedsHouse1, Forest, Pokecenter, Gym, House, Gate, Ship, Cavern, Plateau} {
		if got := GraphicsID(id); got != id {
			t.Errorf("GraphicsID(%s) = %s, expected identity", id, got)
		}
	}
}

func TestIsDoorTile(t *testing.T) {
	tests := []struct {
		id       ID
		tile     byte
		expected bool
	}{
		{Overworld, 0x1B, true},
		{Overworld, 0x58, true},
		{Overworld, 0x3B, false},
		{Forest, 0x3A, true},
		{Mart, 0x5E, true},
		{House, 0x54, true},
		{Ship, 0x1E, true},
		{Lobby, 0x38, true},
		{Facility, 0x43, true},
		{Plateau, 0x1B, true},
		// Pokecenter has warp tiles but no door tiles.
		{Pokecenter, 0x5E, false},
		// Dojo rules are NOT remapped; only block data is shared with Gym.
		{Dojo, 0x4A, false},
	}

	for _, tc := range tests {
		if got := IsDoorTile(tc.id, tc.tile); got != tc.expected {
			t.Errorf("IsDoorTile(%s, 0x%02X) = %v, expected %v", tc.id, tc.tile, got, tc.expected)
		}
	}
}

func TestIsWarpTile(t *testing.T) {
	tests := []struct {
		id       ID
		tile     byte
		expected bool
	}{
		{Overworld, 0x1B, true},
		{RedsHouse1, 0x3B, true},
		{RedsHouse1, 0x1A, true},
		{RedsHouse1, 0x1C, true},
		{Forest, 0x5A, true},
		{Forest, 0x5C, true},
		{Dojo, 0x4A, true},
		{Pokecenter, 0x5E, true},
		{Underground, 0x13, true},
		{Ship, 0x37, true},
		{Interior, 0x04, true},
		{Cavern, 0x18, true},
		{Facility, 0x20, true},
		{Overworld, 0x00, false},
		{Cavern, 0x1B, false},
	}

	for _, tc := range tests {
		if got := IsWarpTile(tc.id, tc.tile); got != tc.expected {
			t.Errorf("IsWarpTile(%s, 0x%02X) = %v, expected %v", tc.id, tc.tile, got, tc.expected)
		}
	}
}

func TestIsWarpTile_EmptyTilesets(t *testing.T) {
	// ShipPort and Club carry empty warp tile lists; nothing matches.
	for _, id := range []ID{ShipPort, Club} {
		for tile := 0; tile < 256; tile++ {
			if IsWarpTile(id, byte(tile)) {
				t.Errorf("IsWarpTile(%s, 0x%02X) = true, expected false", id, tile)
			}
		}
	}
}

func TestIsDoorOrWarpTile(t *testing.T) {
	tests := []struct {
		id       ID
		tile     byte
		expected bool
	}{
		{Overworld, 0x1B, true},
		{Gym, 0x4A, true},
		{Ship, 0x1E, true},
		{Ship, 0x39, true},
		{Overworld, 0x59, false},
		{Gate, 0x3B, true},
		{Cemetery, 0x1B, true},
		{Cemetery, 0x13, true},
		{Cemetery, 0x58, false},
	}

	for _, tc := range tests {
		if got := IsDoorOrWarpTile(tc.id, tc.tile); got != tc.expected {
			t.Errorf("IsDoorOrWarpTile(%s, 0x%02X) = %v, expected %v", tc.id, tc.tile, got, tc.expected)
		}
	}
}

func TestDoorTiles_Copy(t *testing.T) {
	tiles := DoorTiles(Overworld)
	if len(tiles) != 2 {
		t.Fatalf("expected 2 door tiles for OVERWORLD, got %d", len(tiles))
	}

	tiles[0] = 0xFF
	if !IsDoorTile(Overworld, 0x1B) {
		t.Error("mutating the returned slice changed the rule table")
	}
}

func TestWarpTiles_Copy(t *testing.T) {
	tiles := WarpTiles(Facility)
	if len(tiles) != 5 {
		t.Fatalf("expected 5 warp tiles for FACILITY, got %d", len(tiles))
	}

	tiles[0] = 0xFF
	if !IsWarpTile(Facility, 0x43) {
		t.Error("mutating the returned slice changed the rule table")
	}
}

func TestWarpTiles_UnknownTileset(t *testing.T) {
	if tiles := WarpTiles(ID(200)); len(tiles) != 0 {
		t.Errorf("expected no warp tiles for unknown tileset, got %v", tiles)
	}
	if tiles := DoorTiles(ID(200)); len(tiles) != 0 {
		t.Errorf("expected no door tiles for unknown tileset, got %v", tiles)
	}
}
