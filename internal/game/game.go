package game

import "fmt"

// Kind classifies what a call to Play produced.
type Kind uint8

const (
	NoChange Kind = iota
	Switch
	Win
	Draw
)

func (k Kind) String() string {
	switch k {
	case NoChange:
		return "NoChange"
	case Switch:
		return "Switch"
	case Win:
		return "Win"
	case Draw:
		return "Draw"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Outcome is the result of a move. Player is only meaningful when Kind is Win.
type Outcome struct {
	Kind   Kind
	Player Player
}

var (
	NoChangeOutcome = Outcome{Kind: NoChange}
	SwitchOutcome   = Outcome{Kind: Switch}
	DrawOutcome     = Outcome{Kind: Draw}
)

// Won returns the winning outcome for p.
func Won(p Player) Outcome {
	return Outcome{Kind: Win, Player: p}
}

// Terminal reports whether the outcome ended the round.
func (o Outcome) Terminal() bool {
	return o.Kind == Win || o.Kind == Draw
}

func (o Outcome) String() string {
	if o.Kind == Win {
		return fmt.Sprintf("Win(%s)", o.Player)
	}
	return o.Kind.String()
}

// Record counts finished rounds across resets.
type Record struct {
	XWins uint32 `json:"xwins"`
	OWins uint32 `json:"owins"`
	Draws uint32 `json:"draws"`
}

// Game is the turn-taking state machine. It is not safe for concurrent use.
type Game struct {
	board   Board
	turn    Player
	ongoing bool
	winner  Player
	won     bool
	record  Record
}

// New starts a session with an empty board and X to move.
func New() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// Play places the active player's mark at pos.
//
// Moves on a finished game, off the board or onto an occupied cell return
// NoChange and leave the game untouched.
func (g *Game) Play(pos Position) Outcome {
	if !g.ongoing {
		return NoChangeOutcome
	}
	if !pos.InBounds() || g.board.Get(pos) != Empty {
		return NoChangeOutcome
	}

	g.board.Set(pos, g.turn)

	if winner, ok := g.board.Winner(); ok {
		g.ongoing = false
		g.winner, g.won = winner, true
		if winner == PlayerX {
			g.record.XWins++
		} else {
			g.record.OWins++
		}
		return Won(winner)
	}

	if g.board.IsFull() {
		g.ongoing = false
		g.record.Draws++
		return DrawOutcome
	}

	g.turn = g.turn.Other()
	return SwitchOutcome
}

// Reset clears the board for a new round. The record is kept.
func (g *Game) Reset() {
	g.board = NewBoard()
	g.turn = PlayerX
	g.ongoing = true
	g.winner, g.won = PlayerX, false
}

// Board returns a copy of the grid.
func (g *Game) Board() Board { return g.board }

// Turn returns the player to move.
func (g *Game) Turn() Player { return g.turn }

// Ongoing reports whether moves are still accepted.
func (g *Game) Ongoing() bool { return g.ongoing }

// Winner returns the winner of the round, if it was won.
func (g *Game) Winner() (Player, bool) { return g.winner, g.won }

// Record returns the cumulative tally.
func (g *Game) Record() Record { return g.record }

// Moves returns the number of marks placed this round.
func (g *Game) Moves() int { return g.board.Count() }
