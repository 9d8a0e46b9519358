package maze

// Direction indexes the eight neighbours of a node, clockwise from up.
type Direction int

const (
	Up Direction = iota
	UpRight
	Right
	RightDown
	Down
	DownLeft
	Left
	UpLeft
)

// directionCount is the number of neighbour directions of a node.
const directionCount = 8

// directionOffsets holds the (dx, dy) step for each Direction.
var directionOffsets = [directionCount][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

var directionNames = [directionCount]string{
	"up", "up-right", "right", "right-down", "down", "down-left", "left", "up-left",
}

// Directions returns all eight directions in index order.
func Directions() []Direction {
	return []Direction{Up, UpRight, Right, RightDown, Down, DownLeft, Left, UpLeft}
}

// Opposite returns the direction pointing back from the neighbour in d.
func (d Direction) Opposite() Direction {
	return (d + directionCount/2) % directionCount
}

// Offset returns the coordinate step taken when moving in d.
func (d Direction) Offset() (dx, dy int) {
	return directionOffsets[d][0], directionOffsets[d][1]
}

// IsDiagonal reports whether d moves along both axes.
func (d Direction) IsDiagonal() bool {
	return d%2 == 1
}

func (d Direction) String() string {
	if d < 0 || d >= directionCount {
		return "invalid"
	}
	return directionNames[d]
}

// DirectionSet is an 8-bit flag set, bit d set when the edge in Direction d exists.
type DirectionSet uint8

// Has reports whether d is in the set.
func (s DirectionSet) Has(d Direction) bool {
	return s&(1<<uint(d)) != 0
}

// With returns a copy of s with d set or cleared.
func (s DirectionSet) With(d Direction, on bool) DirectionSet {
	if on {
		return s | 1<<uint(d)
	}
	return s &^ (1 << uint(d))
}

// Empty reports whether no direction is set.
func (s DirectionSet) Empty() bool {
	return s == 0
}

// Count returns the number of directions in the set.
func (s DirectionSet) Count() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Directions lists the set members in index order.
func (s DirectionSet) Directions() []Direction {
	dirs := make([]Direction, 0, directionCount)
	for d := Up; d < directionCount; d++ {
		if s.Has(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Position is a cell coordinate in the maze grid.
type Position struct {
	X int `json:"x" bson:"x" yaml:"x"`
	Y int `json:"y" bson:"y" yaml:"y"`
}

// Node is a single cell of the maze grid.
type Node struct {
	X int // Column of the node
	Y int // Row of the node

	// Outside marks a node excluded from the playable region.
	Outside bool

	// Possible holds the edges the grid and shape permit. It is fixed
	// before path carving starts.
	Possible DirectionSet

	// Actual holds the corridors chosen by the path carver. Before carving
	// it is the working set that grid building and shape carving edit.
	Actual DirectionSet
}

// HasAnyConnection reports whether any corridor leaves the node.
func (n *Node) HasAnyConnection() bool {
	return !n.Actual.Empty()
}
