package warp

// Direction is the facing a player must hold to activate a carpet warp.
// The zero value means no direction is required.
type Direction string

// Facing constants, stored as the strings the database uses.
const (
	Up    Direction = "UP"
	Down  Direction = "DOWN"
	Left  Direction = "LEFT"
	Right Direction = "RIGHT"
)

// Opposite returns the reverse facing. Unknown values are returned
// unchanged.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// edge identifies one side of a map.
type edge int

const (
	edgeTop edge = iota
	edgeBottom
	edgeLeft
	edgeRight
)

// direction returns the facing that walks toward the edge.
func (e edge) direction() Direction {
	switch e {
	case edgeTop:
		return Up
	case edgeBottom:
		return Down
	case edgeLeft:
		return Left
	default:
		return Right
	}
}

// nearestEdge returns the edge closest to tile (x, y) on a w by h tile
// grid. Ties resolve top, then bottom, then left, then right.
func nearestEdge(x, y, w, h int) edge {
	best, dist := edgeTop, y
	if d := (h - 1) - y; d < dist {
		best, dist = edgeBottom, d
	}
	if x < dist {
		best, dist = edgeLeft, x
	}
	if (w-1)-x < dist {
		best = edgeRight
	}
	return best
}
