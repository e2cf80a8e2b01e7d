package texasholdem

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"holdem/pkg/action"
	"holdem/pkg/deck"
	"holdem/pkg/event"
)

// scriptedSource plays the decisions it was given, then calls
type scriptedSource struct {
	decisions []action.Decision
	requests  []*DecisionRequest
}

func script(decisions ...action.Decision) *scriptedSource {
	return &scriptedSource{decisions: decisions}
}

func (s *scriptedSource) Decide(ctx context.Context, req *DecisionRequest) (action.Decision, error) {
	s.requests = append(s.requests, req)
	if len(s.decisions) == 0 {
		return action.Decision{Action: action.Call}, nil
	}

	d := s.decisions[0]
	s.decisions = s.decisions[1:]
	return d, nil
}

func fold() action.Decision {
	return action.Decision{Action: action.Fold}
}

func call() action.Decision {
	return action.Decision{Action: action.Call}
}

func raise(amount int) action.Decision {
	return action.Decision{Action: action.Raise, Amount: amount}
}

var errSourceFailed = errors.New("source failed")

// failingSource always fails
type failingSource struct{}

func (failingSource) Decide(ctx context.Context, req *DecisionRequest) (action.Decision, error) {
	return action.Decision{}, errSourceFailed
}

// randomSource picks a random legal action, and sometimes an illegal raise
type randomSource struct {
	rng *rand.Rand
}

func (r *randomSource) Decide(ctx context.Context, req *DecisionRequest) (action.Decision, error) {
	if req.Attempt == 1 && r.rng.Intn(20) == 0 {
		return raise(req.Options.MaxRaise + 1), nil
	}

	actions := req.Options.Actions()
	a := actions[r.rng.Intn(len(actions))]
	if a != action.Raise {
		return action.Decision{Action: a}, nil
	}

	amount := req.Options.MinRaise + r.rng.Intn(req.Options.MaxRaise-req.Options.MinRaise+1)
	return raise(amount), nil
}

// shoveSource raises as much as it can, or calls
type shoveSource struct{}

func (shoveSource) Decide(ctx context.Context, req *DecisionRequest) (action.Decision, error) {
	if req.Options.CanRaise {
		return raise(req.Options.MaxRaise), nil
	}

	return call(), nil
}

// noShuffle leaves the deck in the order it was built
type noShuffle struct{}

func (noShuffle) Intn(n int) int {
	return n - 1
}

// eventRecorder keeps every event
type eventRecorder struct {
	mu     sync.Mutex
	events []*event.Event
}

func (e *eventRecorder) Notify(ev *event.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, ev)
}

func (e *eventRecorder) ofKind(kind event.Kind) []*event.Event {
	e.mu.Lock()
	defer e.mu.Unlock()

	events := make([]*event.Event, 0)
	for _, ev := range e.events {
		if ev.Kind == kind {
			events = append(events, ev)
		}
	}

	return events
}

func newTestLogger() logrus.FieldLogger {
	logger, _ := logrustest.NewNullLogger()
	return logger
}

// setupPlayers returns players named A, B, C, ... with the stacks and sources given
func setupPlayers(stack int, sources ...DecisionSource) []*Player {
	players := make([]*Player, len(sources))
	for i, source := range sources {
		players[i] = NewPlayer(string(rune('A'+i)), stack, source)
	}

	return players
}

func setupEngine(opts Options, players []*Player, sink event.Sink) *RoundEngine {
	e, err := NewRoundEngine(newTestLogger(), players, opts, noShuffle{}, sink)
	if err != nil {
		panic(err)
	}

	return e
}

// stackDeck puts the cards on top of the deck, followed by the rest in the standard order
func stackDeck(e *RoundEngine, cards string) {
	top := deck.CardsFromString(cards)
	stacked := make([]*deck.Card, 0, deck.Size)
	stacked = append(stacked, top...)

	onTop := make(map[string]bool, len(top))
	for _, card := range top {
		onTop[deck.CardToString(card)] = true
	}

	full := deck.New(noShuffle{})
	for _, card := range full.Cards {
		if !onTop[deck.CardToString(card)] {
			stacked = append(stacked, card)
		}
	}

	e.deck.Cards = stacked
}

func totalChips(players []*Player) int {
	total := 0
	for _, p := range players {
		total += p.Stack()
	}

	return total
}
