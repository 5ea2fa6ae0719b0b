package game

// Line is three positions that win the game when owned by one player.
type Line [3]Position

// lines holds the 3 columns, 3 rows and 2 diagonals.
var lines = [8]Line{
	{At(0, 0), At(0, 1), At(0, 2)},
	{At(1, 0), At(1, 1), At(1, 2)},
	{At(2, 0), At(2, 1), At(2, 2)},
	{At(0, 0), At(1, 0), At(2, 0)},
	{At(0, 1), At(1, 1), At(2, 1)},
	{At(0, 2), At(1, 2), At(2, 2)},
	{At(0, 0), At(1, 1), At(2, 2)},
	{At(0, 2), At(1, 1), At(2, 0)},
}

// Lines returns the eight winning lines.
func Lines() [8]Line {
	return lines
}

// Board is a 3x3 grid indexed as [col][row].
type Board [Size][Size]Cell

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// BoardFromArray builds a board from explicit cell values, indexed [col][row].
func BoardFromArray(values [Size][Size]Cell) Board {
	return Board(values)
}

// Get returns the occupant of pos, or Empty when pos is off the board.
func (b Board) Get(pos Position) Cell {
	if !pos.InBounds() {
		return Empty
	}
	return b[pos.Col][pos.Row]
}

// Set writes p's mark at pos without checking occupancy. Off-board writes are ignored.
func (b *Board) Set(pos Position, p Player) {
	if !pos.InBounds() {
		return
	}
	b[pos.Col][pos.Row] = p.Cell()
}

// Winner reports the player owning a full line, if any.
func (b Board) Winner() (Player, bool) {
	for _, line := range lines {
		first := b.Get(line[0])
		if first == Empty {
			continue
		}
		if first == b.Get(line[1]) && first == b.Get(line[2]) {
			return playerOf(first)
		}
	}
	return PlayerX, false
}

// IsFull reports whether no empty cell remains.
func (b Board) IsFull() bool {
	for col := range b {
		for row := range b[col] {
			if b[col][row] == Empty {
				return false
			}
		}
	}
	return true
}

// Count returns how many cells are occupied.
func (b Board) Count() int {
	n := 0
	for col := range b {
		for row := range b[col] {
			if b[col][row] != Empty {
				n++
			}
		}
	}
	return n
}

// Strings converts the board to a grid of marks, keeping the [col][row] layout.
func (b Board) Strings() [Size][Size]string {
	var out [Size][Size]string
	for col := range b {
		for row := range b[col] {
			out[col][row] = b[col][row].String()
		}
	}
	return out
}
