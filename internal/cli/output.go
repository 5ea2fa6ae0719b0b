package cli

import (
	"context"
	"ctchen222/tictactoe-engine/internal/session"
	"ctchen222/tictactoe-engine/pkg/proto"
	"encoding/json"
	"fmt"
	"io"
)

// Replay applies commands to sess in order and collects the results.
func Replay(ctx context.Context, sess *session.Session, commands []proto.MoveCommand) Transcript {
	transcript := Transcript{
		SessionID: sess.ID,
		Steps:     make([]proto.StepResult, 0, len(commands)),
	}

	for i, c := range commands {
		step := proto.StepResult{Step: i + 1, Command: c}

		switch c.Type {
		case proto.CommandReset:
			sess.Reset(ctx)
			step.Outcome = "Reset"
		default:
			step.Player = sess.Snapshot().Turn
			step.Outcome = sess.Play(ctx, c.Pos()).String()
		}

		step.State = sess.Snapshot()
		step.State.SessionID = ""
		transcript.Steps = append(transcript.Steps, step)
	}

	transcript.Record = sess.Record()
	return transcript
}

func writeJSON(w io.Writer, t Transcript) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal transcript: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func writeText(w io.Writer, t Transcript) error {
	for _, step := range t.Steps {
		var err error
		switch step.Command.Type {
		case proto.CommandReset:
			_, err = fmt.Fprintf(w, "step %d: reset -> round %d\n", step.Step, step.State.Round)
		default:
			_, err = fmt.Fprintf(w, "step %d: %s plays %s -> %s\n", step.Step, step.Player, step.Command.Pos(), step.Outcome)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "record: X wins %d, O wins %d, draws %d\n", t.Record.XWins, t.Record.OWins, t.Record.Draws)
	return err
}
