package texasholdem

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"holdem/pkg/action"
	"holdem/pkg/event"
	"holdem/pkg/potledger"
)

// RoundState is the state of a betting round after a transition
type RoundState int

// RoundState constants
const (
	AwaitingAction RoundState = iota
	Folded
	Called
	Raised
	Complete
)

func (r RoundState) String() string {
	switch r {
	case AwaitingAction:
		return "awaiting action"
	case Folded:
		return "folded"
	case Called:
		return "called"
	case Raised:
		return "raised"
	case Complete:
		return "complete"
	}

	return ""
}

// BettingRound runs a single street of betting
// Players act in seating order starting with the first player given. A raise
// restarts the pass at the raiser so every other player gets to act on it.
type BettingRound struct {
	logger  logrus.FieldLogger
	ledger  *potledger.PotLedger
	options Options
	sink    event.Sink

	handID string
	stage  Stage
	state  func() *PublicState

	players []*Player

	actionStartIndex int
	actionAtIndex    int

	currentBet int
	lastRaise  int
}

// NewBettingRound returns a betting round for players, who must be in the order they act
// Any bets already made (i.e., blinds) are carried into the round.
func NewBettingRound(logger logrus.FieldLogger, ledger *potledger.PotLedger, players []*Player, opts Options) *BettingRound {
	currentBet := 0
	for _, p := range players {
		if p.bet > currentBet {
			currentBet = p.bet
		}
	}

	b := &BettingRound{
		logger:     logger,
		ledger:     ledger,
		options:    opts,
		sink:       event.Nop,
		players:    players,
		currentBet: currentBet,
	}

	b.state = b.defaultState
	b.skipToActor()
	return b
}

// CurrentBet returns the amount every player must match
func (b *BettingRound) CurrentBet() int {
	return b.currentBet
}

// State returns AwaitingAction or Complete
func (b *BettingRound) State() RoundState {
	if b.IsComplete() {
		return Complete
	}

	return AwaitingAction
}

// IsComplete returns true if nobody else needs to act
func (b *BettingRound) IsComplete() bool {
	return b.activeCount() <= 1 || b.actionAtIndex >= len(b.players)
}

// InTurn returns the player who must act next, or nil if the round is over
func (b *BettingRound) InTurn() *Player {
	if b.IsComplete() {
		return nil
	}

	return b.players[b.normalizedIndex()]
}

// ValidActions returns the legal actions for the player in turn
func (b *BettingRound) ValidActions() action.Options {
	p := b.InTurn()
	if p == nil {
		return action.Options{}
	}

	minRaise := max(b.options.minRaise(), b.lastRaise)
	maxRaise := b.maxRaise()

	return action.Options{
		CallAmount: b.owed(p),
		CanRaise:   maxRaise >= minRaise,
		MinRaise:   minRaise,
		MaxRaise:   maxRaise,
	}
}

// Apply performs the decision for the player in turn
// An invalid decision leaves the round untouched and returns an error wrapping
// ErrInvalidAction, or potledger.ErrInsufficientChips.
func (b *BettingRound) Apply(p *Player, d action.Decision) (RoundState, error) {
	if b.IsComplete() {
		return Complete, fmt.Errorf("%w: betting round is over", ErrIllegalState)
	}

	if inTurn := b.InTurn(); inTurn != p {
		return AwaitingAction, fmt.Errorf("%w: it is not %s's turn", ErrInvalidAction, p.Name)
	}

	if err := b.ValidActions().Validate(d); err != nil {
		return AwaitingAction, fmt.Errorf("%w: %s", ErrInvalidAction, err.Error())
	}

	log := b.logger.WithFields(logrus.Fields{
		"player": p.Name,
		"action": string(d.Action),
	})

	switch d.Action {
	case action.Fold:
		p.folded = true
		log.Debug("player folded")
		b.notify(event.New(event.PlayerFolded, b.handID, p.Name, "%s", action.Fold.LogMessage(0)))
		b.completeTurn()
		return Folded, nil
	case action.Call, action.Check:
		owed := b.owed(p)
		if err := b.ledger.Contribute(p, owed); err != nil {
			return AwaitingAction, err
		}

		log.WithField("amount", owed).Debug("player called")
		b.notify(event.New(event.BetPlaced, b.handID, p.Name, "%s", action.Call.LogMessage(owed)).WithAmount(owed))
		b.completeTurn()
		return Called, nil
	case action.Raise:
		amount := b.owed(p) + d.Amount
		if err := b.ledger.Contribute(p, amount); err != nil {
			return AwaitingAction, err
		}

		b.currentBet += d.Amount
		b.lastRaise = d.Amount
		b.actionStartIndex = b.normalizedIndex()
		b.actionAtIndex = 0

		log.WithField("amount", d.Amount).Debug("player raised")
		b.notify(event.New(event.BetPlaced, b.handID, p.Name, "%s", action.Raise.LogMessage(d.Amount)).WithAmount(amount))
		b.completeTurn()
		return Raised, nil
	}

	return AwaitingAction, fmt.Errorf("%w: unknown action %q", ErrInvalidAction, string(d.Action))
}

// Run asks every player in turn for a decision until the round is complete
func (b *BettingRound) Run(ctx context.Context) error {
	for !b.IsComplete() {
		if err := b.solicit(ctx, b.InTurn()); err != nil {
			return err
		}
	}

	b.notify(event.New(event.BettingRoundEnded, b.handID, "", "%s betting is over, pot is ${%d}", b.stage, b.ledger.Total()).WithAmount(b.ledger.Total()))
	return nil
}

// solicit asks the player for a decision until it's a valid one
func (b *BettingRound) solicit(ctx context.Context, p *Player) error {
	if p.source == nil {
		return fmt.Errorf("%w: %s has no decision source", ErrIllegalState, p.Name)
	}

	var lastErr error
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if limit := b.options.MaxInvalidAttempts; limit > 0 && attempt > limit {
			return fmt.Errorf("%s: %w: %v", p.Name, ErrTooManyInvalidActions, lastErr)
		}

		d, err := p.source.Decide(ctx, b.newDecisionRequest(p, attempt, lastErr))
		if err != nil {
			return fmt.Errorf("decision source for %s: %w", p.Name, err)
		}

		if _, err := b.Apply(p, d); err != nil {
			if !isRecoverable(err) {
				return err
			}

			b.logger.WithError(err).WithField("player", p.Name).Warn("invalid action")
			b.notify(event.New(event.InvalidAction, b.handID, p.Name, "%s", err.Error()).AsPrivate())
			lastErr = err
			continue
		}

		return nil
	}
}

func (b *BettingRound) newDecisionRequest(p *Player, attempt int, lastErr error) *DecisionRequest {
	req := &DecisionRequest{
		Player:    p.Name,
		Stack:     p.stack,
		Bet:       p.bet,
		HoleCards: p.HoleCards(),
		Options:   b.ValidActions(),
		State:     b.state(),
		Attempt:   attempt,
	}

	if lastErr != nil {
		req.Rejected = lastErr.Error()
	}

	return req
}

func (b *BettingRound) defaultState() *PublicState {
	players := make([]*PlayerState, len(b.players))
	for i, p := range b.players {
		players[i] = newPlayerState(p, b.ledger)
	}

	return &PublicState{
		HandID:     b.handID,
		Stage:      b.stage,
		Pot:        b.ledger.Total(),
		CurrentBet: b.currentBet,
		Players:    players,
	}
}

func (b *BettingRound) notify(e *event.Event) {
	b.sink.Notify(e)
}

func (b *BettingRound) owed(p *Player) int {
	return b.currentBet - p.bet
}

// maxRaise caps a raise so every player still in the hand can call it
func (b *BettingRound) maxRaise() int {
	maxRaise := -1
	for _, p := range b.players {
		if p.folded {
			continue
		}

		if headroom := p.stack + p.bet - b.currentBet; maxRaise == -1 || headroom < maxRaise {
			maxRaise = headroom
		}
	}

	if maxRaise < 0 {
		return 0
	}

	return maxRaise
}

func (b *BettingRound) normalizedIndex() int {
	return (b.actionStartIndex + b.actionAtIndex) % len(b.players)
}

// completeTurn moves action to the next player who needs to make a decision
func (b *BettingRound) completeTurn() {
	b.actionAtIndex++
	b.skipToActor()
}

func (b *BettingRound) skipToActor() {
	for ; b.actionAtIndex < len(b.players); b.actionAtIndex++ {
		if b.needsDecision(b.players[b.normalizedIndex()]) {
			return
		}
	}
}

// needsDecision returns false for folded and all-in players, and for the
// last player with chips when they have nothing to call
func (b *BettingRound) needsDecision(p *Player) bool {
	if !p.canAct() {
		return false
	}

	if b.owed(p) == 0 && b.canActCount() <= 1 {
		return false
	}

	return true
}

func (b *BettingRound) activeCount() int {
	count := 0
	for _, p := range b.players {
		if !p.folded {
			count++
		}
	}

	return count
}

func (b *BettingRound) canActCount() int {
	count := 0
	for _, p := range b.players {
		if p.canAct() {
			count++
		}
	}

	return count
}

func newPlayerState(p *Player, ledger *potledger.PotLedger) *PlayerState {
	return &PlayerState{
		Name:        p.Name,
		Stack:       p.stack,
		Bet:         p.bet,
		Contributed: ledger.ContributionOf(p),
		Folded:      p.folded,
	}
}
