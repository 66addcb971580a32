package graph

//*******************************************
// enums
//*******************************************

// Direction is a movement direction on the grid. The integer value is the
// band index of the direction in every directional cost surface, so the
// ordering here is the single source of truth for band layouts.
type Direction byte

const (
	NORTH      Direction = 0
	SOUTH      Direction = 1
	EAST       Direction = 2
	WEST       Direction = 3
	NORTH_EAST Direction = 4
	NORTH_WEST Direction = 5
	SOUTH_EAST Direction = 6
	SOUTH_WEST Direction = 7
)

const DIRECTION_COUNT = 8

var DIRECTIONS = [DIRECTION_COUNT]Direction{
	NORTH, SOUTH, EAST, WEST, NORTH_EAST, NORTH_WEST, SOUTH_EAST, SOUTH_WEST,
}

var _OFFSETS = [DIRECTION_COUNT][2]int{
	{-1, 0},  // NORTH
	{1, 0},   // SOUTH
	{0, 1},   // EAST
	{0, -1},  // WEST
	{-1, 1},  // NORTH_EAST
	{-1, -1}, // NORTH_WEST
	{1, 1},   // SOUTH_EAST
	{1, -1},  // SOUTH_WEST
}

// Offset returns the (row, col) delta of the direction.
func (self Direction) Offset() (int, int) {
	offset := _OFFSETS[self]
	return offset[0], offset[1]
}

func (self Direction) IsDiagonal() bool {
	return self >= NORTH_EAST
}

func (self Direction) String() string {
	switch self {
	case NORTH:
		return "north"
	case SOUTH:
		return "south"
	case EAST:
		return "east"
	case WEST:
		return "west"
	case NORTH_EAST:
		return "north-east"
	case NORTH_WEST:
		return "north-west"
	case SOUTH_EAST:
		return "south-east"
	case SOUTH_WEST:
		return "south-west"
	default:
		panic("unknown direction")
	}
}

// DirectionFromOffset maps a (row, col) delta back onto the Direction enum.
func DirectionFromOffset(dr, dc int) (Direction, bool) {
	for _, dir := range DIRECTIONS {
		offset := _OFFSETS[dir]
		if offset[0] == dr && offset[1] == dc {
			return dir, true
		}
	}
	return NORTH, false
}
