package session

import (
	"quoridor/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Status reports whether a session still accepts actions.
type Status int

const (
	InProgress Status = iota
	Terminal
)

func (s Status) String() string {
	if s == Terminal {
		return "terminal"
	}
	return "in_progress"
}

// Update is published to observers after every accepted action.
type Update struct {
	Action   game.Action
	Snapshot game.Snapshot
}

type Observer func(Update)

// Session owns the canonical state of one game. It is not safe for
// concurrent use; callers serialize Propose.
type Session struct {
	id        uuid.UUID
	state     *game.GameState
	logger    zerolog.Logger
	observers []Observer
}

type Option func(*Session)

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithObserver registers fn to be called synchronously after each accepted action.
func WithObserver(fn Observer) Option {
	return func(s *Session) {
		s.observers = append(s.observers, fn)
	}
}

func WithID(id uuid.UUID) Option {
	return func(s *Session) {
		s.id = id
	}
}

// New validates cfg and starts a game. Invalid configs return a *game.ConfigError.
func New(cfg game.Config, opts ...Option) (*Session, error) {
	state, err := game.NewGameState(cfg)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:     uuid.New(),
		state:  state,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().Str("session", s.id.String()).Logger()

	s.logger.Debug().
		Int("board_size", cfg.BoardSize).
		Int("walls_per_player", cfg.WallsPerPlayer).
		Str("diagonal", cfg.Diagonal.String()).
		Msg("session started")
	return s, nil
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// Propose validates and applies a. On success the new state becomes
// canonical and its snapshot is returned. On failure the returned error is
// a *game.RuleViolation and the session is unchanged.
func (s *Session) Propose(a game.Action) (game.Snapshot, error) {
	next, err := s.state.Rules.Apply(s.state, a)
	if err != nil {
		s.logger.Debug().Err(err).Stringer("action", a).Msg("action rejected")
		return game.Snapshot{}, err
	}
	s.state = next

	snap := next.Snapshot()
	event := s.logger.Debug().Int("turn", next.Turn).Stringer("action", a)
	if next.IsTerminal() {
		event = s.logger.Info().Int("turn", next.Turn).Int("winner", next.Winner())
	}
	event.Msg("action accepted")

	for _, fn := range s.observers {
		fn(Update{Action: a, Snapshot: snap})
	}
	return snap, nil
}

func (s *Session) Snapshot() game.Snapshot {
	return s.state.Snapshot()
}

// LegalActions lists player's legal actions, empty when the game is over or
// it is not player's turn.
func (s *Session) LegalActions(player int) []game.Action {
	return s.state.LegalActions(player)
}

func (s *Session) Status() Status {
	if s.state.IsTerminal() {
		return Terminal
	}
	return InProgress
}

// Winner returns the winning player, or game.NoPlayer while in progress.
func (s *Session) Winner() int {
	return s.state.Winner()
}

// CurrentPlayer returns the player to move.
func (s *Session) CurrentPlayer() int {
	return s.state.CurrentPlayer
}

// State returns a copy of the current state for searchers. Changes to the
// copy never reach the session.
func (s *Session) State() *game.GameState {
	return s.state.Copy()
}
