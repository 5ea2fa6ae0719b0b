package game

import "fmt"

// Cell is the state of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return ""
	case X:
		return "X"
	case O:
		return "O"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

// Player identifies one of the two sides.
type Player uint8

const (
	PlayerX Player = iota
	PlayerO
)

// Other returns the opponent of p.
func (p Player) Other() Player {
	if p == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Cell returns the mark p places on the board.
func (p Player) Cell() Cell {
	if p == PlayerX {
		return X
	}
	return O
}

func (p Player) String() string {
	return p.Cell().String()
}

// playerOf maps an occupied cell back to its owner.
func playerOf(c Cell) (Player, bool) {
	switch c {
	case X:
		return PlayerX, true
	case O:
		return PlayerO, true
	}
	return PlayerX, false
}

// Board boundaries
const (
	BorderMin = 0 // First index of the board
	BorderMax = 2 // Last index of the board
	Size      = BorderMax + 1
)

// Position addresses a cell by column and row.
type Position struct {
	Col int
	Row int
}

// At is shorthand for Position{Col: col, Row: row}.
func At(col, row int) Position {
	return Position{Col: col, Row: row}
}

// InBounds reports whether both coordinates fall within the board.
func (p Position) InBounds() bool {
	return p.Col >= BorderMin && p.Col <= BorderMax && p.Row >= BorderMin && p.Row <= BorderMax
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}
