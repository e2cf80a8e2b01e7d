package event

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"holdem/pkg/deck"
)

// Kind is the type of event
type Kind string

// Kind constants
const (
	HandStarted       Kind = "hand-started"
	ForcedBetPosted   Kind = "forced-bet-posted"
	HoleCardsDealt    Kind = "hole-cards-dealt"
	CommunityDealt    Kind = "community-dealt"
	BetPlaced         Kind = "bet-placed"
	PlayerFolded      Kind = "player-folded"
	InvalidAction     Kind = "invalid-action"
	BettingRoundEnded Kind = "betting-round-ended"
	Showdown          Kind = "showdown"
	PotWon            Kind = "pot-won"
	PlayerEliminated  Kind = "player-eliminated"
	HandAborted       Kind = "hand-aborted"
)

// Event is an observable change in the state of a hand
// If Player is empty, it's a general statement about the table.
// Private events (hole cards, invalid actions) are only meant for Player.
type Event struct {
	UUID    string    `json:"uuid"`
	Kind    Kind      `json:"kind"`
	HandID  string    `json:"handId"`
	Player  string    `json:"player,omitempty"`
	Cards   deck.Hand `json:"cards,omitempty"`
	Amount  int       `json:"amount"`
	Message string    `json:"message"`
	Private bool      `json:"private"`
	Time    time.Time `json:"time"`
}

// New returns a new Event
func New(kind Kind, handID, player string, format string, a ...interface{}) *Event {
	return &Event{
		UUID:    uuid.New().String(),
		Kind:    kind,
		HandID:  handID,
		Player:  player,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// WithCards attaches cards to the event
func (e *Event) WithCards(cards ...*deck.Card) *Event {
	e.Cards = deck.Hand(cards).Clone()
	return e
}

// WithAmount attaches a chip amount to the event
func (e *Event) WithAmount(amount int) *Event {
	e.Amount = amount
	return e
}

// AsPrivate marks the event as only visible to its player
func (e *Event) AsPrivate() *Event {
	e.Private = true
	return e
}

func (e *Event) String() string {
	if e.Player == "" {
		return e.Message
	}

	return fmt.Sprintf("%s %s", e.Player, e.Message)
}
