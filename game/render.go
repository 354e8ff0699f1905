package game

import (
	"strconv"
	"strings"
)

// render draws the board as ASCII, one text row per board row plus one
// separator row between board rows. Walls show as '|' and '---'.
func render(b Board, pawns []Pawn) string {
	var sb strings.Builder
	n := b.Size()

	// Top boundary
	sb.WriteString("+" + strings.Repeat("---+", n) + "\n")

	for r := 0; r < n; r++ {
		sb.WriteString("|")
		for c := 0; c < n; c++ {
			cell := Cell{Row: r, Col: c}
			mark := " . "
			for _, p := range pawns {
				if p.Cell == cell {
					mark = " " + strconv.Itoa(p.Player) + " "
				}
			}
			sb.WriteString(mark)
			if c == n-1 || b.Blocked(cell, Right) {
				sb.WriteString("|")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")

		sb.WriteString("+")
		for c := 0; c < n; c++ {
			if r == n-1 || b.Blocked(Cell{Row: r, Col: c}, Down) {
				sb.WriteString("---+")
			} else {
				sb.WriteString("   +")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
