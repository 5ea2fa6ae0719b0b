package game

import (
	"testing"
)

// fromRows builds a board from a row-major layout so test boards read the way they look.
func fromRows(rows [3][3]Cell) Board {
	var b Board
	for row := range rows {
		for col := range rows[row] {
			b[col][row] = rows[row][col]
		}
	}
	return b
}

func TestBoardWinner(t *testing.T) {
	tests := []struct {
		name   string
		board  Board
		want   Player
		wantOK bool
	}{
		{
			name:  "No winner - empty board",
			board: NewBoard(),
		},
		{
			name: "No winner - partial board",
			board: fromRows([3][3]Cell{
				{X, Empty, Empty},
				{Empty, O, Empty},
				{Empty, Empty, Empty},
			}),
		},
		{
			name: "No winner - full board (draw)",
			board: fromRows([3][3]Cell{
				{X, O, X},
				{X, X, O},
				{O, X, O},
			}),
		},
		{
			name: "No winner - mixed row",
			board: fromRows([3][3]Cell{
				{O, X, X},
				{Empty, Empty, Empty},
				{Empty, Empty, Empty},
			}),
		},
		{
			name: "No winner - mixed column",
			board: fromRows([3][3]Cell{
				{Empty, X, Empty},
				{Empty, O, Empty},
				{Empty, X, Empty},
			}),
		},
		{
			name: "No winner - corners",
			board: fromRows([3][3]Cell{
				{X, Empty, X},
				{Empty, Empty, Empty},
				{X, Empty, X},
			}),
		},
		{
			name: "X wins - two lines at once",
			board: fromRows([3][3]Cell{
				{X, X, X},
				{X, O, O},
				{X, O, O},
			}),
			want:   PlayerX,
			wantOK: true,
		},
		{
			name: "X wins - full board",
			board: fromRows([3][3]Cell{
				{X, O, X},
				{O, X, O},
				{O, X, X},
			}),
			want:   PlayerX,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.board.Winner()
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("Winner() got = %v, %v, want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestBoardWinnerEveryLine(t *testing.T) {
	for i, line := range Lines() {
		for _, p := range []Player{PlayerX, PlayerO} {
			var b Board
			for _, pos := range line {
				b.Set(pos, p)
			}
			got, ok := b.Winner()
			if !ok || got != p {
				t.Errorf("line %d %v for %v: Winner() got = %v, %v", i, line, p, got, ok)
			}
		}
	}
}

func TestBoardWinnerIgnoresEmptyLine(t *testing.T) {
	b := fromRows([3][3]Cell{
		{Empty, Empty, Empty},
		{X, O, X},
		{O, X, O},
	})
	if got, ok := b.Winner(); ok {
		t.Errorf("Winner() got = %v, want no winner for an empty row", got)
	}
}

func TestBoardIsFull(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  bool
	}{
		{
			name:  "Empty board is not full",
			board: NewBoard(),
			want:  false,
		},
		{
			name: "Partial board is not full",
			board: fromRows([3][3]Cell{
				{X, Empty, Empty},
				{Empty, O, Empty},
				{Empty, Empty, Empty},
			}),
			want: false,
		},
		{
			name: "Full board is full",
			board: fromRows([3][3]Cell{
				{X, O, X},
				{X, O, O},
				{O, X, X},
			}),
			want: true,
		},
		{
			name: "Full board with winner is full",
			board: fromRows([3][3]Cell{
				{X, X, X},
				{O, O, X},
				{O, X, O},
			}),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.board.IsFull(); got != tt.want {
				t.Errorf("IsFull() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoardGetOutOfBounds(t *testing.T) {
	b := fromRows([3][3]Cell{
		{X, X, X},
		{X, X, X},
		{X, X, X},
	})
	for _, pos := range []Position{At(3, 0), At(0, 3), At(-1, 0), At(0, -1), At(9, 9)} {
		if got := b.Get(pos); got != Empty {
			t.Errorf("Get(%v) got = %v, want Empty", pos, got)
		}
	}
}

func TestBoardSetAndGet(t *testing.T) {
	var b Board
	b.Set(At(2, 1), PlayerO)
	b.Set(At(5, 5), PlayerX)

	if got := b.Get(At(2, 1)); got != O {
		t.Errorf("Get((2,1)) got = %v, want O", got)
	}
	if got := b[2][1]; got != O {
		t.Errorf("board[2][1] got = %v, want O (boards are indexed [col][row])", got)
	}
	if got := b.Count(); got != 1 {
		t.Errorf("Count() got = %d, want 1", got)
	}
}

func TestBoardEvaluatorsDoNotMutate(t *testing.T) {
	b := fromRows([3][3]Cell{
		{X, O, Empty},
		{Empty, X, Empty},
		{O, Empty, Empty},
	})
	before := b
	b.Winner()
	b.IsFull()
	b.Count()
	if b != before {
		t.Errorf("evaluators changed the board: got %v, want %v", b, before)
	}
}
