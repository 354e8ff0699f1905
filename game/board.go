package game

import "fmt"

// Cell is a square of the board, 0-indexed from the top-left corner.
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns the cell one step away in direction d. The result may be off the board.
func (c Cell) Add(d Direction) Cell {
	dr, dc := d.Delta()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Direction is one of the four orthogonal directions a pawn can step in.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in the fixed expansion order used by
// neighbor queries and path searches.
var Directions = [...]Direction{Up, Down, Left, Right}

func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		panic(fmt.Sprintf("unknown direction %d", d))
	}
}

// Perpendicular returns the two directions at right angles to d.
func (d Direction) Perpendicular() [2]Direction {
	if d == Up || d == Down {
		return [2]Direction{Left, Right}
	}
	return [2]Direction{Up, Down}
}

func (d Direction) String() string {
	return [...]string{"up", "down", "left", "right"}[d]
}

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "H"
	}
	return "V"
}

// Wall is a two-cell wall segment. Its anchor is the top-left cell of the
// 2x2 block whose centre intersection the wall passes through.
//
// A horizontal wall at (r,c) separates rows r and r+1 for columns c and c+1.
// A vertical wall at (r,c) separates columns c and c+1 for rows r and r+1.
type Wall struct {
	Orientation Orientation
	Anchor      Cell
}

func (w Wall) String() string {
	return w.Orientation.String() + w.Anchor.String()
}

// Board is the grid plus the walls placed on it. A Board is never modified
// after construction: WithWall returns a new value.
type Board struct {
	size       int
	horizontal []bool // indexed by anchor, (size-1)*(size-1) entries
	vertical   []bool
	walls      int
}

// NewBoard returns an empty size x size board.
func NewBoard(size int) Board {
	anchors := 0
	if size > 1 {
		anchors = (size - 1) * (size - 1)
	}
	return Board{
		size:       size,
		horizontal: make([]bool, anchors),
		vertical:   make([]bool, anchors),
	}
}

func (b Board) Size() int {
	return b.size
}

// WallCount returns the number of walls placed on the board.
func (b Board) WallCount() int {
	return b.walls
}

func (b Board) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < b.size && c.Col >= 0 && c.Col < b.size
}

// AnchorInBounds reports whether a wall anchored at c lies fully on the board.
func (b Board) AnchorInBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < b.size-1 && c.Col >= 0 && c.Col < b.size-1
}

func (b Board) index(c Cell) int {
	return c.Row*(b.size-1) + c.Col
}

// wallAt reports whether a wall of orientation o sits at anchor (row, col).
// Anchors off the board hold no wall.
func (b Board) wallAt(o Orientation, row, col int) bool {
	c := Cell{Row: row, Col: col}
	if !b.AnchorInBounds(c) {
		return false
	}
	if o == Horizontal {
		return b.horizontal[b.index(c)]
	}
	return b.vertical[b.index(c)]
}

// HasWall reports whether exactly this wall has been placed.
func (b Board) HasWall(w Wall) bool {
	return b.wallAt(w.Orientation, w.Anchor.Row, w.Anchor.Col)
}

// Blocked reports whether a wall separates c from its neighbor in direction d.
func (b Board) Blocked(c Cell, d Direction) bool {
	r, col := c.Row, c.Col
	switch d {
	case Up:
		return b.wallAt(Horizontal, r-1, col) || b.wallAt(Horizontal, r-1, col-1)
	case Down:
		return b.wallAt(Horizontal, r, col) || b.wallAt(Horizontal, r, col-1)
	case Left:
		return b.wallAt(Vertical, r, col-1) || b.wallAt(Vertical, r-1, col-1)
	case Right:
		return b.wallAt(Vertical, r, col) || b.wallAt(Vertical, r-1, col)
	default:
		panic(fmt.Sprintf("unknown direction %d", d))
	}
}

// Step returns the neighbor of c in direction d, and false when that cell is
// off the board or a wall is in the way.
func (b Board) Step(c Cell, d Direction) (Cell, bool) {
	next := c.Add(d)
	if !b.InBounds(next) || b.Blocked(c, d) {
		return Cell{}, false
	}
	return next, true
}

// Neighbors returns the orthogonally adjacent cells reachable from c without
// crossing a wall, in the order up, down, left, right.
func (b Board) Neighbors(c Cell) []Cell {
	neighbors := make([]Cell, 0, len(Directions))
	for _, d := range Directions {
		if next, ok := b.Step(c, d); ok {
			neighbors = append(neighbors, next)
		}
	}
	return neighbors
}

// IsWallFree reports whether w lies on the board and conflicts with no placed
// wall. Same-orientation walls conflict when they share a segment; walls of
// opposite orientation conflict when they cross at the same anchor.
func (b Board) IsWallFree(w Wall) bool {
	if !b.AnchorInBounds(w.Anchor) {
		return false
	}
	r, c := w.Anchor.Row, w.Anchor.Col
	switch w.Orientation {
	case Horizontal:
		return !b.wallAt(Horizontal, r, c) &&
			!b.wallAt(Horizontal, r, c-1) &&
			!b.wallAt(Horizontal, r, c+1) &&
			!b.wallAt(Vertical, r, c)
	case Vertical:
		return !b.wallAt(Vertical, r, c) &&
			!b.wallAt(Vertical, r-1, c) &&
			!b.wallAt(Vertical, r+1, c) &&
			!b.wallAt(Horizontal, r, c)
	default:
		return false
	}
}

// WithWall returns a copy of the board with w added. It does not check that
// w is free or that paths remain open. Off-board walls are ignored.
func (b Board) WithWall(w Wall) Board {
	next := Board{
		size:       b.size,
		horizontal: make([]bool, len(b.horizontal)),
		vertical:   make([]bool, len(b.vertical)),
		walls:      b.walls,
	}
	copy(next.horizontal, b.horizontal)
	copy(next.vertical, b.vertical)

	if b.AnchorInBounds(w.Anchor) && !b.HasWall(w) {
		i := b.index(w.Anchor)
		if w.Orientation == Horizontal {
			next.horizontal[i] = true
		} else {
			next.vertical[i] = true
		}
		next.walls++
	}
	return next
}

// Walls returns the placed walls ordered by anchor row, anchor column, then
// orientation (horizontal first).
func (b Board) Walls() []Wall {
	walls := make([]Wall, 0, b.walls)
	for r := 0; r < b.size-1; r++ {
		for c := 0; c < b.size-1; c++ {
			anchor := Cell{Row: r, Col: c}
			if b.horizontal[b.index(anchor)] {
				walls = append(walls, Wall{Orientation: Horizontal, Anchor: anchor})
			}
			if b.vertical[b.index(anchor)] {
				walls = append(walls, Wall{Orientation: Vertical, Anchor: anchor})
			}
		}
	}
	return walls
}

// Anchors enumerates every wall position on the board, placed or not, in the
// same order as Walls.
func (b Board) Anchors() []Wall {
	if b.size < 2 {
		return nil
	}
	all := make([]Wall, 0, 2*len(b.horizontal))
	for r := 0; r < b.size-1; r++ {
		for c := 0; c < b.size-1; c++ {
			anchor := Cell{Row: r, Col: c}
			all = append(all,
				Wall{Orientation: Horizontal, Anchor: anchor},
				Wall{Orientation: Vertical, Anchor: anchor},
			)
		}
	}
	return all
}
