package proto

import "ctchen222/tictactoe-engine/internal/game"

// Command types
const (
	CommandMove  = "move"
	CommandReset = "reset"
)

// MoveCommand is one step of a scripted session.
type MoveCommand struct {
	Type     string `json:"type" validate:"required,oneof=move reset"`
	Position []int  `json:"position,omitempty" validate:"required_if=Type move,omitempty,len=2"`
}

// Pos converts the command's coordinates to a board position.
func (m MoveCommand) Pos() game.Position {
	if len(m.Position) != 2 {
		return game.At(-1, -1)
	}
	return game.At(m.Position[0], m.Position[1])
}

// State is a point-in-time view of a session.
type State struct {
	SessionID string                       `json:"session_id,omitempty"`
	Round     int                          `json:"round"`
	Board     [game.Size][game.Size]string `json:"board"`
	Turn      string                       `json:"turn"`
	Ongoing   bool                         `json:"ongoing"`
	Winner    string                       `json:"winner,omitempty"`
	Record    game.Record                  `json:"record"`
}

// StepResult pairs a command with what it produced.
type StepResult struct {
	Step    int         `json:"step"`
	Command MoveCommand `json:"command"`
	Player  string      `json:"player,omitempty"`
	Outcome string      `json:"outcome"`
	State   State       `json:"state"`
}
