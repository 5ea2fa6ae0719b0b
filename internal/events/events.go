package events

import (
	"context"
	"ctchen222/tictactoe-engine/internal/game"
	"encoding/json"
	"fmt"
	"sync"
)

// Event types
const (
	TypeMovePlayed = "move_played"
	TypeRoundReset = "round_reset"
)

// Event represents a state change published by a session.
type Event struct {
	Type    string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// MovePlayedPayload is the payload for the "move_played" event.
type MovePlayedPayload struct {
	SessionID string `json:"session_id"`
	Round     int    `json:"round"`
	Col       int    `json:"col"`
	Row       int    `json:"row"`
	Player    string `json:"player"`
	Outcome   string `json:"outcome"`
}

// RoundResetPayload is the payload for the "round_reset" event.
type RoundResetPayload struct {
	SessionID string      `json:"session_id"`
	Round     int         `json:"round"`
	Record    game.Record `json:"record"`
}

// New wraps payload in an Event of the given type.
func New(eventType string, payload any) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	return Event{Type: eventType, Payload: raw}, nil
}

// Decode unmarshals the payload into v.
func (e Event) Decode(v any) error {
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s payload: %w", e.Type, err)
	}
	return nil
}

// Journal keeps published events in memory, in order.
type Journal struct {
	mu     sync.Mutex
	events []Event
}

// NewJournal creates an empty Journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Publish appends e to the journal.
func (j *Journal) Publish(_ context.Context, e Event) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, e)
	return nil
}

// Events returns a copy of everything published so far.
func (j *Journal) Events() []Event {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Event, len(j.events))
	copy(out, j.events)
	return out
}
