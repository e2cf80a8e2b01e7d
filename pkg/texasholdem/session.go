package texasholdem

import (
	"context"

	"github.com/sirupsen/logrus"
	"holdem/internal/rng"
	"holdem/pkg/event"
)

// Session is a single table playing hand after hand
// Players who can no longer cover the forced bets are eliminated and the button
// moves left after every hand. Sessions share nothing, so any number can run at once.
type Session struct {
	logger  logrus.FieldLogger
	options Options
	sink    event.Sink
	engine  *RoundEngine

	players    []*Player
	eliminated []*Player
	button     int

	handsPlayed int
	closed      bool
}

// NewSession seats players, in seating order, at a new table
// The first player starts on the button.
func NewSession(logger logrus.FieldLogger, players []*Player, opts Options, gen rng.Generator, sink event.Sink) (*Session, error) {
	if sink == nil {
		sink = event.Nop
	}

	seated := make([]*Player, len(players))
	copy(seated, players)

	engine, err := NewRoundEngine(logger, seated, opts, gen, sink)
	if err != nil {
		return nil, err
	}

	return &Session{
		logger:     logger,
		options:    opts,
		sink:       sink,
		engine:     engine,
		players:    seated,
		eliminated: make([]*Player, 0),
	}, nil
}

// Players returns the players still at the table, in seating order
func (s *Session) Players() []*Player {
	players := make([]*Player, len(s.players))
	copy(players, s.players)
	return players
}

// Eliminated returns the players who were knocked out, in the order they left
func (s *Session) Eliminated() []*Player {
	eliminated := make([]*Player, len(s.eliminated))
	copy(eliminated, s.eliminated)
	return eliminated
}

// Button returns the player on the button for the next hand
func (s *Session) Button() *Player {
	return s.players[s.button]
}

// HandsPlayed returns the number of hands that finished
func (s *Session) HandsPlayed() int {
	return s.handsPlayed
}

// Engine returns the engine playing the table's hands
func (s *Session) Engine() *RoundEngine {
	return s.engine
}

// IsOver returns true if there aren't enough players left for a hand
func (s *Session) IsOver() bool {
	return len(s.players) < 2
}

// Close ends the session
func (s *Session) Close() {
	s.closed = true
}

// PlayHand plays the next hand
func (s *Session) PlayHand(ctx context.Context) (*Result, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}

	if s.IsOver() {
		return nil, ErrIllegalState
	}

	s.engine.ResetHand()
	if err := s.engine.SeatPlayers(s.players, s.button); err != nil {
		return nil, err
	}

	result, err := s.engine.PlayHand(ctx)
	if err != nil {
		return nil, err
	}

	s.handsPlayed++
	s.eliminatePlayers(result.HandID)
	return result, nil
}

// Play plays hands until one player is left, maxHands have been played, or ctx is done
// A maxHands of 0 means no limit.
func (s *Session) Play(ctx context.Context, maxHands int) ([]*Result, error) {
	results := make([]*Result, 0)
	for i := 0; maxHands == 0 || i < maxHands; i++ {
		if s.IsOver() {
			break
		}

		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := s.PlayHand(ctx)
		if err != nil {
			return results, err
		}

		results = append(results, result)
	}

	return results, nil
}

// eliminatePlayers removes busted players and moves the button to the next remaining seat
func (s *Session) eliminatePlayers(handID string) {
	remaining := make([]*Player, 0, len(s.players))
	nextButton := -1
	n := len(s.players)

	for i := 1; i <= n; i++ {
		p := s.players[(s.button+i)%n]
		if p.stack < s.options.forcedBets() {
			s.eliminated = append(s.eliminated, p)
			s.logger.WithFields(logrus.Fields{
				"player": p.Name,
				"stack":  p.stack,
			}).Info("player eliminated")
			s.sink.Notify(event.New(event.PlayerEliminated, handID, p.Name, "was eliminated"))
			continue
		}

		if nextButton == -1 {
			nextButton = (s.button + i) % n
		}
	}

	// keep the original seating order
	for _, p := range s.players {
		if p.stack >= s.options.forcedBets() {
			remaining = append(remaining, p)
		}
	}

	s.button = 0
	if nextButton != -1 {
		for i, p := range remaining {
			if p == s.players[nextButton] {
				s.button = i
				break
			}
		}
	}

	s.players = remaining
}
