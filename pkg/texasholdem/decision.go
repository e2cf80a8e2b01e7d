package texasholdem

import (
	"context"

	"holdem/pkg/action"
	"holdem/pkg/deck"
)

// DecisionSource decides what a player does when they are on the clock
// Decide is called synchronously and may block, i.e., while waiting on a human.
// Returning an error aborts the hand. An invalid decision does not, the source is
// simply asked again with DecisionRequest.Rejected explaining why.
type DecisionSource interface {
	Decide(ctx context.Context, req *DecisionRequest) (action.Decision, error)
}

// DecisionFunc is an adapter to allow an ordinary function to be a DecisionSource
type DecisionFunc func(ctx context.Context, req *DecisionRequest) (action.Decision, error)

// Decide calls f(ctx, req)
func (f DecisionFunc) Decide(ctx context.Context, req *DecisionRequest) (action.Decision, error) {
	return f(ctx, req)
}

// DecisionRequest is everything a player is allowed to see when making a decision
type DecisionRequest struct {
	Player    string         `json:"player"`
	Stack     int            `json:"stack"`
	Bet       int            `json:"bet"`
	HoleCards deck.Hand      `json:"holeCards"`
	Options   action.Options `json:"options"`
	State     *PublicState   `json:"state"`
	// Attempt starts at 1 and goes up every time a decision is rejected
	Attempt  int    `json:"attempt"`
	Rejected string `json:"rejected,omitempty"`
}

// PublicState is the state of the hand that every player can see
type PublicState struct {
	HandID     string         `json:"handId"`
	Stage      Stage          `json:"stage"`
	Community  deck.Hand      `json:"community"`
	Pot        int            `json:"pot"`
	CurrentBet int            `json:"currentBet"`
	Button     string         `json:"button"`
	Players    []*PlayerState `json:"players"`
}

// PlayerState is the public view of a player
type PlayerState struct {
	Name        string `json:"name"`
	Stack       int    `json:"stack"`
	Bet         int    `json:"bet"`
	Contributed int    `json:"contributed"`
	Folded      bool   `json:"folded"`
}
