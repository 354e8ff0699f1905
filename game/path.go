package game

import "fmt"

type Axis int

const (
	RowAxis Axis = iota
	ColAxis
)

// Goal is the edge a pawn must reach: every cell whose row (or column) equals Index.
type Goal struct {
	Axis  Axis
	Index int
}

func (g Goal) Contains(c Cell) bool {
	if g.Axis == RowAxis {
		return c.Row == g.Index
	}
	return c.Col == g.Index
}

// Cells returns the goal cells on a size x size board.
func (g Goal) Cells(size int) []Cell {
	cells := make([]Cell, 0, size)
	for i := 0; i < size; i++ {
		if g.Axis == RowAxis {
			cells = append(cells, Cell{Row: g.Index, Col: i})
		} else {
			cells = append(cells, Cell{Row: i, Col: g.Index})
		}
	}
	return cells
}

func (g Goal) String() string {
	if g.Axis == RowAxis {
		return fmt.Sprintf("row %d", g.Index)
	}
	return fmt.Sprintf("col %d", g.Index)
}

// HasPath reports whether any goal cell is reachable from `from` on board b.
// Only walls obstruct; pawns are ignored since they can move out of the way.
func HasPath(b Board, from Cell, goal Goal) bool {
	return Distance(b, from, goal) >= 0
}

// Distance returns the fewest steps from `from` to the goal edge ignoring
// pawns, or -1 when the goal is unreachable.
func Distance(b Board, from Cell, goal Goal) int {
	if !b.InBounds(from) {
		return -1
	}
	if goal.Contains(from) {
		return 0
	}

	size := b.Size()
	dist := make([]int, size*size)
	for i := range dist {
		dist[i] = -1
	}
	dist[from.Row*size+from.Col] = 0

	// Just BFS
	queue := []Cell{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		d := dist[current.Row*size+current.Col]

		for _, next := range b.Neighbors(current) {
			i := next.Row*size + next.Col
			if dist[i] >= 0 {
				continue
			}
			if goal.Contains(next) {
				return d + 1
			}
			dist[i] = d + 1
			queue = append(queue, next)
		}
	}
	return -1
}
