package session

import (
	"context"
	"ctchen222/tictactoe-engine/internal/events"
	"ctchen222/tictactoe-engine/internal/game"
	"ctchen222/tictactoe-engine/pkg/proto"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "ctchen222/tictactoe-engine/session"

//go:generate mockgen -destination=mock_publisher_test.go -package=session . Publisher

// Publisher receives the events a session emits.
type Publisher interface {
	Publish(ctx context.Context, e events.Event) error
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, events.Event) error { return nil }

// Session serializes access to one Game and reports what happens to it.
type Session struct {
	ID string

	mu    sync.Mutex
	game  *game.Game
	round int

	publisher Publisher
	logger    *slog.Logger
	tracer    trace.Tracer

	moves  metric.Int64Counter
	rounds metric.Int64Counter
}

// Option configures a Session.
type Option func(*Session)

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) { s.ID = id }
}

// WithPublisher sets where events are sent.
func WithPublisher(p Publisher) Option {
	return func(s *Session) { s.publisher = p }
}

// WithLogger sets the logger; the default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithTracerProvider sets the provider used for spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Session) { s.tracer = tp.Tracer(instrumentationName) }
}

// WithMeterProvider sets the provider used for counters.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(s *Session) { s.initMetrics(mp) }
}

// New creates a session on a fresh game.
func New(opts ...Option) *Session {
	s := &Session{
		ID:        uuid.New().String(),
		game:      game.New(),
		round:     1,
		publisher: noopPublisher{},
		tracer:    otel.Tracer(instrumentationName),
	}
	s.initMetrics(otel.GetMeterProvider())
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("session.id", s.ID)
	return s
}

func (s *Session) initMetrics(mp metric.MeterProvider) {
	meter := mp.Meter(instrumentationName)
	// Instrument creation only fails on invalid names; both are constant.
	s.moves, _ = meter.Int64Counter("tictactoe.moves",
		metric.WithDescription("Moves submitted, by outcome kind"))
	s.rounds, _ = meter.Int64Counter("tictactoe.rounds.finished",
		metric.WithDescription("Rounds finished, by result"))
}

// Play submits a move for the player whose turn it is.
func (s *Session) Play(ctx context.Context, pos game.Position) game.Outcome {
	ctx, span := s.tracer.Start(ctx, "session.Play", trace.WithAttributes(
		attribute.String("session.id", s.ID),
		attribute.Int("move.col", pos.Col),
		attribute.Int("move.row", pos.Row),
	))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	player := s.game.Turn()
	outcome := s.game.Play(pos)

	span.SetAttributes(
		attribute.String("move.player", player.String()),
		attribute.String("move.outcome", outcome.String()),
		attribute.Bool("move.valid", outcome.Kind != game.NoChange),
	)
	s.moves.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome.Kind.String())))

	switch outcome.Kind {
	case game.NoChange:
		s.logger.WarnContext(ctx, "move rejected", "round", s.round, "col", pos.Col, "row", pos.Row, "ongoing", s.game.Ongoing())
		return outcome
	case game.Win, game.Draw:
		s.rounds.Add(ctx, 1, metric.WithAttributes(attribute.String("result", outcome.String())))
		s.logger.InfoContext(ctx, "round finished", "round", s.round, "outcome", outcome.String(), "record", s.game.Record())
	default:
		s.logger.DebugContext(ctx, "move accepted", "round", s.round, "player", player.String(), "col", pos.Col, "row", pos.Row)
	}

	s.publish(ctx, span, events.TypeMovePlayed, events.MovePlayedPayload{
		SessionID: s.ID,
		Round:     s.round,
		Col:       pos.Col,
		Row:       pos.Row,
		Player:    player.String(),
		Outcome:   outcome.String(),
	})

	return outcome
}

// Reset starts the next round. The record carries over.
func (s *Session) Reset(ctx context.Context) {
	ctx, span := s.tracer.Start(ctx, "session.Reset", trace.WithAttributes(
		attribute.String("session.id", s.ID),
	))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.game.Reset()
	s.round++
	span.SetAttributes(attribute.Int("session.round", s.round))
	s.logger.InfoContext(ctx, "round reset", "round", s.round)

	s.publish(ctx, span, events.TypeRoundReset, events.RoundResetPayload{
		SessionID: s.ID,
		Round:     s.round,
		Record:    s.game.Record(),
	})
}

// publish sends an event; failures are logged and never affect game state.
func (s *Session) publish(ctx context.Context, span trace.Span, eventType string, payload any) {
	event, err := events.New(eventType, payload)
	if err == nil {
		err = s.publisher.Publish(ctx, event)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to publish event", "event", eventType, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to publish "+eventType+" event")
	}
}

// Round returns the 1-based number of the current round.
func (s *Session) Round() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.round
}

// Record returns the cumulative tally.
func (s *Session) Record() game.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Record()
}

// Snapshot returns a consistent view of the session.
func (s *Session) Snapshot() proto.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := proto.State{
		SessionID: s.ID,
		Round:     s.round,
		Board:     s.game.Board().Strings(),
		Turn:      s.game.Turn().String(),
		Ongoing:   s.game.Ongoing(),
		Record:    s.game.Record(),
	}
	if winner, ok := s.game.Winner(); ok {
		state.Winner = winner.String()
	}
	return state
}
