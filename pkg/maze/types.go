package maze

// Point is a grid coordinate, column-first: X is the column, Y is the row.
type Point struct {
	X, Y int
}

// Cell values stored in Grid.Cells.
const (
	Wall    byte = 0
	Passage byte = 1
)

// Grid is a rows*cols matrix of cell values, stored row-major. All
// access goes through At/Set/InBounds so the storage layout stays an
// implementation detail; the grid boundary is always a wall to callers
// that respect InBounds.
type Grid struct {
	Rows, Cols int
	Cells      []byte
}

// NewGrid allocates a rows*cols grid with every cell a wall.
func NewGrid(rows, cols int) *Grid {
	return &Grid{Rows: rows, Cols: cols, Cells: make([]byte, rows*cols)}
}

// InBounds reports whether (x,y) is inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Cols && y >= 0 && y < g.Rows
}

// At returns the cell value at (x,y). Callers must check InBounds first.
func (g *Grid) At(x, y int) byte {
	return g.Cells[y*g.Cols+x]
}

// Set writes the cell value at (x,y). Callers must check InBounds first.
func (g *Grid) Set(x, y int, v byte) {
	g.Cells[y*g.Cols+x] = v
}

// IsPassage reports whether (x,y) is in bounds and a passage cell.
func (g *Grid) IsPassage(x, y int) bool {
	return g.InBounds(x, y) && g.At(x, y) == Passage
}

// MazeSpec is a generated maze: its grid and its start/goal pair. Not
// every generator guarantees a path between them (cellular_automata does
// not check connectivity).
type MazeSpec struct {
	Grid  *Grid
	Start Point
	Goal  Point
}

// EventTag identifies a reasoning event kind.
type EventTag string

const (
	EventClose  EventTag = "close"
	EventCreate EventTag = "create"
)

// ReasoningEvent is one step of the solver's trace: a node popped from
// the open set ("close") or a node whose score improved ("create"). G
// and H are rendered as cost tokens ("c"+integer) by the serializer.
type ReasoningEvent struct {
	Tag  EventTag
	X, Y int
	G, H int
}

// Trace is the solver's full output: its reasoning events in emission
// order, and the final plan (nil if no plan was found).
type Trace struct {
	Reasoning []ReasoningEvent
	Plan      []Point
}

// EncodedSpec is the opaque wire form of a MazeSpec: a 24-byte header of
// six little-endian uint32 fields (rows, cols, startX, startY, goalX,
// goalY) followed by rows*cols grid bytes. It is the transfer unit
// between the producer and a solver worker; the producer never retains
// it after handing it off.
type EncodedSpec []byte

// HeaderSize is the fixed byte length of an EncodedSpec's header.
const HeaderSize = 24
