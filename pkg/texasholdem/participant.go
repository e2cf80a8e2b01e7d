package texasholdem

import (
	"holdem/pkg/deck"
)

// Player represents an individual player at the table
// Players belong to the session and are only changed by the engine while a hand is played.
type Player struct {
	Name string

	stack  int
	bet    int
	cards  deck.Hand
	folded bool
	source DecisionSource
}

// NewPlayer returns a player with a starting stack who decides with source
func NewPlayer(name string, stack int, source DecisionSource) *Player {
	return &Player{
		Name:   name,
		stack:  stack,
		cards:  make(deck.Hand, 0, 2),
		source: source,
	}
}

// Stack returns the chips the player has behind
func (p *Player) Stack() int {
	return p.stack
}

// Bet returns what the player has put in during the current betting round
func (p *Player) Bet() int {
	return p.bet
}

// HoleCards returns a copy of the player's hole cards
func (p *Player) HoleCards() deck.Hand {
	return p.cards.Clone()
}

// Folded returns true if the player folded this hand
func (p *Player) Folded() bool {
	return p.folded
}

// canAct returns true if the player can still make decisions this hand
func (p *Player) canAct() bool {
	return !p.folded && p.stack > 0
}

// newRound resets the player for a new betting round
func (p *Player) newRound() {
	p.bet = 0
}

// resetHand clears everything but the stack
func (p *Player) resetHand() {
	p.bet = 0
	p.cards = make(deck.Hand, 0, 2)
	p.folded = false
}

// potledger.Participant interface

// ID returns the player's name, which is unique at a table
func (p *Player) ID() string {
	return p.Name
}

// Balance returns the stack
func (p *Player) Balance() int {
	return p.stack
}

// AdjustBalance adds to the stack
func (p *Player) AdjustBalance(amount int) {
	p.stack += amount
}

// AdjustAmountInPlay adds to the current bet
func (p *Player) AdjustAmountInPlay(amount int) {
	p.bet += amount
}
