package texasholdem

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"holdem/internal/rng"
	"holdem/pkg/deck"
	"holdem/pkg/event"
	"holdem/pkg/handanalyzer"
	"holdem/pkg/potledger"
)

// Result is the outcome of a hand
type Result struct {
	HandID      string                            `json:"handId"`
	Winners     []string                          `json:"winners"`
	Payouts     map[string]int                    `json:"payouts"`
	Pot         int                               `json:"pot"`
	Community   deck.Hand                         `json:"community"`
	Hands       map[string]*handanalyzer.HandRank `json:"-"`
	Uncontested bool                              `json:"uncontested"`
}

// street is a betting round and the community cards dealt before it
type street struct {
	stage Stage
	cards int
}

var streets = []street{
	{stage: StagePreFlop, cards: 0},
	{stage: StageFlop, cards: 3},
	{stage: StageTurn, cards: 1},
	{stage: StageRiver, cards: 1},
}

// RoundEngine plays one hand of Texas Hold'em at a time
// The engine owns the deck, the pot and the community cards. Players are borrowed
// and are only changed while PlayHand is running.
type RoundEngine struct {
	logger  logrus.FieldLogger
	options Options
	sink    event.Sink

	deck      *deck.Deck
	ledger    *potledger.PotLedger
	community deck.Hand

	// players are in seating order
	players []*Player
	button  int

	handID string
	stage  Stage
	round  *BettingRound
}

// NewRoundEngine returns a new engine for players, who must be in seating order
// A nil generator shuffles with crypto/rand, a nil sink discards events.
func NewRoundEngine(logger logrus.FieldLogger, players []*Player, opts Options, gen rng.Generator, sink event.Sink) (*RoundEngine, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if err := validatePlayers(players); err != nil {
		return nil, err
	}

	if sink == nil {
		sink = event.Nop
	}

	return &RoundEngine{
		logger:    logger,
		options:   opts,
		sink:      sink,
		deck:      deck.New(gen),
		ledger:    potledger.New(),
		community: make(deck.Hand, 0, 5),
		players:   players,
		stage:     StageStart,
	}, nil
}

func validatePlayers(players []*Player) error {
	if len(players) < 2 {
		return errors.New("there must be at least two players")
	}

	if len(players) > MaxPlayers {
		return fmt.Errorf("there can be at most %d players", MaxPlayers)
	}

	names := make(map[string]bool, len(players))
	for _, p := range players {
		if p == nil || p.Name == "" {
			return errors.New("every player must have a name")
		}

		if names[p.Name] {
			return fmt.Errorf("player name %s is not unique", p.Name)
		}

		names[p.Name] = true

		if p.stack < 0 {
			return fmt.Errorf("player %s has a negative stack", p.Name)
		}

		if p.source == nil {
			return fmt.Errorf("player %s has no decision source", p.Name)
		}
	}

	return nil
}

// Stage returns the stage of the current hand
func (e *RoundEngine) Stage() Stage {
	return e.stage
}

// Community returns a copy of the community cards
func (e *RoundEngine) Community() deck.Hand {
	return e.community.Clone()
}

// Pot returns what's in the pot
func (e *RoundEngine) Pot() int {
	return e.ledger.Total()
}

// Button returns the player on the button
func (e *RoundEngine) Button() *Player {
	return e.players[e.button]
}

// Round returns the betting round in progress, or nil
func (e *RoundEngine) Round() *BettingRound {
	return e.round
}

// SeatPlayers replaces the players between hands
func (e *RoundEngine) SeatPlayers(players []*Player, button int) error {
	if e.stage != StageStart {
		return fmt.Errorf("%w: players can only be seated before a hand", ErrIllegalState)
	}

	if err := validatePlayers(players); err != nil {
		return err
	}

	if button < 0 || button >= len(players) {
		return fmt.Errorf("button %d is not a seat", button)
	}

	e.players = players
	e.button = button
	return nil
}

// PublicState returns the state of the hand every player can see
func (e *RoundEngine) PublicState() *PublicState {
	players := make([]*PlayerState, len(e.players))
	for i, p := range e.players {
		players[i] = newPlayerState(p, e.ledger)
	}

	currentBet := 0
	if e.round != nil {
		currentBet = e.round.CurrentBet()
	}

	return &PublicState{
		HandID:     e.handID,
		Stage:      e.stage,
		Community:  e.community.Clone(),
		Pot:        e.ledger.Total(),
		CurrentBet: currentBet,
		Button:     e.players[e.button].Name,
		Players:    players,
	}
}

// ResetHand clears everything from the last hand but the stacks and the seating
func (e *RoundEngine) ResetHand() {
	e.deck.Reset()
	e.ledger.Reset()
	e.community = make(deck.Hand, 0, 5)
	for _, p := range e.players {
		p.resetHand()
	}

	e.handID = ""
	e.round = nil
	e.stage = StageStart
}

// PlayHand plays a hand from the shuffle to the payout
// If the hand cannot be finished, every chip in the pot is returned and the error is returned.
func (e *RoundEngine) PlayHand(ctx context.Context) (*Result, error) {
	if e.stage != StageStart {
		return nil, fmt.Errorf("%w: hand is %s, reset the hand first", ErrIllegalState, e.stage)
	}

	e.handID = uuid.New().String()
	log := e.logger.WithField("handId", e.handID)

	for _, p := range e.players {
		if p.stack < e.options.forcedBets() {
			return nil, e.abort(log, fmt.Errorf("%w: %s cannot cover the forced bets", ErrIllegalState, p.Name))
		}
	}

	if err := e.deck.Shuffle(); err != nil {
		return nil, e.abort(log, err)
	}

	if need := 2*len(e.players) + 5; !e.deck.CanDeal(need) {
		return nil, e.abort(log, fmt.Errorf("%w: %d cards are needed, %d are left", deck.ErrDeckExhausted, need, e.deck.CardsLeft()))
	}

	log.WithFields(logrus.Fields{
		"deckHash": e.deck.HashCode(),
		"button":   e.Button().Name,
	}).Info("hand started")
	e.notify(event.New(event.HandStarted, e.handID, "", "%s has the button", e.Button().Name))

	if err := e.postForcedBets(); err != nil {
		return nil, e.abort(log, err)
	}

	if err := e.dealHoleCards(); err != nil {
		return nil, e.abort(log, err)
	}

	for _, st := range streets {
		if err := e.dealCommunity(st.cards); err != nil {
			return nil, e.abort(log, err)
		}

		e.stage = st.stage
		if err := e.runBettingRound(ctx, log); err != nil {
			return nil, e.abort(log, err)
		}

		if active := e.activePlayers(); len(active) == 1 {
			return e.awardUncontested(log, active[0]), nil
		}
	}

	e.stage = StageShowdown
	result, err := e.showdown(log)
	if err != nil {
		return nil, e.abort(log, err)
	}

	return result, nil
}

// seat returns the player offset seats left of the button
func (e *RoundEngine) seat(offset int) *Player {
	return e.players[(e.button+offset)%len(e.players)]
}

// orderFrom returns every player in seating order starting offset seats left of the button
func (e *RoundEngine) orderFrom(offset int) []*Player {
	players := make([]*Player, len(e.players))
	for i := range e.players {
		players[i] = e.seat(offset + i)
	}

	return players
}

// blindOffsets returns the seats of the small and big blind
// Heads up, the button posts the small blind.
func (e *RoundEngine) blindOffsets() (small, big int) {
	if len(e.players) == 2 {
		return 0, 1
	}

	return 1, 2
}

func (e *RoundEngine) postForcedBets() error {
	if e.options.Ante > 0 {
		for _, p := range e.orderFrom(1) {
			if err := e.ledger.Contribute(p, e.options.Ante); err != nil {
				return err
			}

			// antes are dead money and don't count toward the pre-flop bet
			p.newRound()
			e.notify(event.New(event.ForcedBetPosted, e.handID, p.Name, "paid the ${%d} ante", e.options.Ante).WithAmount(e.options.Ante))
		}
	}

	small, big := e.blindOffsets()
	blinds := []struct {
		offset int
		amount int
		name   string
	}{
		{offset: small, amount: e.options.SmallBlind, name: "small"},
		{offset: big, amount: e.options.BigBlind, name: "big"},
	}

	for _, blind := range blinds {
		if blind.amount == 0 {
			continue
		}

		p := e.seat(blind.offset)
		if err := e.ledger.Contribute(p, blind.amount); err != nil {
			return err
		}

		e.notify(event.New(event.ForcedBetPosted, e.handID, p.Name, "posted the ${%d} %s blind", blind.amount, blind.name).WithAmount(blind.amount))
	}

	return nil
}

func (e *RoundEngine) dealHoleCards() error {
	for i := 0; i < 2; i++ {
		for _, p := range e.orderFrom(1) {
			card, err := e.deck.Deal()
			if err != nil {
				return err
			}

			p.cards.AddCard(card)
		}
	}

	for _, p := range e.players {
		e.notify(event.New(event.HoleCardsDealt, e.handID, p.Name, "was dealt %s", p.cards.String()).WithCards(p.cards...).AsPrivate())
	}

	return nil
}

func (e *RoundEngine) dealCommunity(n int) error {
	if n == 0 {
		return nil
	}

	cards := make(deck.Hand, 0, n)
	for i := 0; i < n; i++ {
		card, err := e.deck.Deal()
		if err != nil {
			return err
		}

		cards.AddCard(card)
	}

	e.community = append(e.community, cards...)
	e.notify(event.New(event.CommunityDealt, e.handID, "", "board is %s", e.community.String()).WithCards(cards...))
	return nil
}

// firstToAct returns the offset from the button of the first player to act
// After the flop, and heads up that means the big blind, it's the first seat left of the button.
func (e *RoundEngine) firstToAct() int {
	if e.stage != StagePreFlop || e.options.BigBlind == 0 {
		return 1
	}

	_, big := e.blindOffsets()
	return big + 1
}

func (e *RoundEngine) runBettingRound(ctx context.Context, log logrus.FieldLogger) error {
	if e.stage != StagePreFlop {
		for _, p := range e.players {
			p.newRound()
		}
	}

	round := NewBettingRound(log.WithField("stage", e.stage.String()), e.ledger, e.orderFrom(e.firstToAct()), e.options)
	round.sink = e.sink
	round.handID = e.handID
	round.stage = e.stage
	round.state = e.PublicState
	e.round = round

	return round.Run(ctx)
}

func (e *RoundEngine) activePlayers() []*Player {
	active := make([]*Player, 0, len(e.players))
	for _, p := range e.orderFrom(1) {
		if !p.folded {
			active = append(active, p)
		}
	}

	return active
}

func (e *RoundEngine) awardUncontested(log logrus.FieldLogger, winner *Player) *Result {
	pot := e.ledger.Resolve(winner)
	e.stage = StageEnd

	log.WithFields(logrus.Fields{
		"winner": winner.Name,
		"pot":    pot,
	}).Info("pot won uncontested")
	e.notify(event.New(event.PotWon, e.handID, winner.Name, "won ${%d}", pot).WithAmount(pot))

	return &Result{
		HandID:      e.handID,
		Winners:     []string{winner.Name},
		Payouts:     map[string]int{winner.Name: pot},
		Pot:         pot,
		Community:   e.community.Clone(),
		Hands:       map[string]*handanalyzer.HandRank{},
		Uncontested: true,
	}
}

func (e *RoundEngine) showdown(log logrus.FieldLogger) (*Result, error) {
	wm := potledger.NewWinManager()
	hands := make(map[string]*handanalyzer.HandRank)

	for _, p := range e.activePlayers() {
		cards := append(p.cards.Clone(), e.community...)
		rank, err := handanalyzer.Evaluate(cards)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrIllegalState, err.Error())
		}

		hands[p.Name] = rank
		wm.AddParticipant(p, rank.Strength())
		e.notify(event.New(event.Showdown, e.handID, p.Name, "shows %s", rank.String()).WithCards(p.cards...))
	}

	pot := e.ledger.Total()
	winners := wm.Winners()
	payouts, err := e.ledger.Split(winners)
	if err != nil {
		return nil, err
	}

	result := &Result{
		HandID:    e.handID,
		Winners:   make([]string, len(winners)),
		Payouts:   payouts,
		Pot:       pot,
		Community: e.community.Clone(),
		Hands:     hands,
	}

	for i, w := range winners {
		result.Winners[i] = w.ID()
		log.WithFields(logrus.Fields{
			"winner": w.ID(),
			"amount": payouts[w.ID()],
			"hand":   hands[w.ID()].Hand.String(),
		}).Info("pot won at showdown")
		e.notify(event.New(event.PotWon, e.handID, w.ID(), "won ${%d} with %s", payouts[w.ID()], hands[w.ID()].Hand.String()).WithAmount(payouts[w.ID()]))
	}

	e.stage = StageEnd
	return result, nil
}

// abort refunds the pot and ends the hand
func (e *RoundEngine) abort(log logrus.FieldLogger, err error) error {
	refunds := e.ledger.Refund()
	e.stage = StageEnd

	log.WithError(err).WithField("refunds", refunds).Error("hand aborted")
	e.notify(event.New(event.HandAborted, e.handID, "", "hand aborted: %s", err.Error()))

	return fmt.Errorf("hand %s aborted: %w", e.handID, err)
}

func (e *RoundEngine) notify(ev *event.Event) {
	e.sink.Notify(ev)
}
