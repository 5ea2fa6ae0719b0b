package cli

import (
	"ctchen222/tictactoe-engine/internal/events"
	"ctchen222/tictactoe-engine/internal/game"
	"ctchen222/tictactoe-engine/internal/session"
	"ctchen222/tictactoe-engine/internal/validator"
	"ctchen222/tictactoe-engine/pkg/proto"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	ErrInvalidMove = errors.New("invalid move")
	ErrNoMoves     = errors.New("no moves given")
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	File      string
	SessionID string
}

// Transcript is the full result of a replay.
type Transcript struct {
	SessionID string             `json:"session_id"`
	Steps     []proto.StepResult `json:"steps"`
	Record    game.Record        `json:"record"`
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay [col,row | reset]...",
		Short: "Play a scripted sequence of moves",
		Long: `Play moves in order against a fresh session and print each outcome.

Moves are column,row pairs counted from 0; "reset" starts a new round and keeps the record.
Moves can also be read from a JSON file holding [{"type":"move","position":[0,0]},{"type":"reset"}].`,
		Example: "  tictactoe replay 0,0 1,0 0,1 1,1 0,2 reset 1,1",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "JSON file of move commands")
	cmd.Flags().StringVar(&opts.SessionID, "session-id", "", "session ID to report (generated when empty)")

	return cmd
}

func runReplay(cmd *cobra.Command, opts *ReplayOptions, args []string) error {
	commands, err := loadCommands(opts.File, args)
	if err != nil {
		return err
	}

	journal := events.NewJournal()
	sessOpts := []session.Option{
		session.WithPublisher(journal),
		session.WithLogger(opts.logger()),
	}
	if opts.SessionID != "" {
		sessOpts = append(sessOpts, session.WithID(opts.SessionID))
	}
	sess := session.New(sessOpts...)

	transcript := Replay(cmd.Context(), sess, commands)
	opts.logger().Debug("replay finished", "session.id", sess.ID, "steps", len(commands), "events", len(journal.Events()))

	switch opts.Format {
	case "json":
		return writeJSON(cmd.OutOrStdout(), transcript)
	default:
		return writeText(cmd.OutOrStdout(), transcript)
	}
}

// loadCommands reads commands from file, or parses args when no file is given.
func loadCommands(file string, args []string) ([]proto.MoveCommand, error) {
	if file != "" && len(args) > 0 {
		return nil, errors.New("use either --file or positional moves, not both")
	}

	var commands []proto.MoveCommand
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read moves file: %w", err)
		}
		if err := json.Unmarshal(data, &commands); err != nil {
			return nil, fmt.Errorf("failed to parse moves file: %w", err)
		}
	} else {
		for _, arg := range args {
			c, err := parseToken(arg)
			if err != nil {
				return nil, err
			}
			commands = append(commands, c)
		}
	}

	if len(commands) == 0 {
		return nil, ErrNoMoves
	}
	for i, c := range commands {
		if err := validator.Check(c); err != nil {
			return nil, fmt.Errorf("%w: step %d: %w", ErrInvalidMove, i+1, err)
		}
	}
	return commands, nil
}

// parseToken turns "col,row" or "reset" into a command.
func parseToken(token string) (proto.MoveCommand, error) {
	if strings.EqualFold(token, proto.CommandReset) {
		return proto.MoveCommand{Type: proto.CommandReset}, nil
	}

	colStr, rowStr, ok := strings.Cut(token, ",")
	if !ok {
		return proto.MoveCommand{}, fmt.Errorf("%w %q: want col,row or reset", ErrInvalidMove, token)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return proto.MoveCommand{}, fmt.Errorf("%w %q: bad column: %w", ErrInvalidMove, token, err)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return proto.MoveCommand{}, fmt.Errorf("%w %q: bad row: %w", ErrInvalidMove, token, err)
	}
	return proto.MoveCommand{Type: proto.CommandMove, Position: []int{col, row}}, nil
}
