package validator

import (
	"testing"

	"ctchen222/tictactoe-engine/pkg/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckMoveCommand(t *testing.T) {
	tests := []struct {
		name    string
		cmd     proto.MoveCommand
		wantErr string
	}{
		{name: "move", cmd: proto.MoveCommand{Type: "move", Position: []int{0, 2}}},
		{name: "out of range move is still well formed", cmd: proto.MoveCommand{Type: "move", Position: []int{3, 7}}},
		{name: "reset", cmd: proto.MoveCommand{Type: "reset"}},
		{name: "missing type", cmd: proto.MoveCommand{Position: []int{0, 0}}, wantErr: "MoveCommand.Type failed required"},
		{name: "unknown type", cmd: proto.MoveCommand{Type: "undo"}, wantErr: "MoveCommand.Type failed oneof=move reset"},
		{name: "move without position", cmd: proto.MoveCommand{Type: "move"}, wantErr: "MoveCommand.Position failed required_if"},
		{name: "short position", cmd: proto.MoveCommand{Type: "move", Position: []int{1}}, wantErr: "MoveCommand.Position failed len=2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.cmd)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetValidatorIsShared(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
