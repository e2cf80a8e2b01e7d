package potledger

import (
	"errors"
	"fmt"
)

// ErrInsufficientChips is an error when a participant contributes more than their balance
var ErrInsufficientChips = errors.New("insufficient chips")

// ErrInvalidAmount is an error when a negative amount is contributed
var ErrInvalidAmount = errors.New("amount must be >= 0")

// ErrNoWinners is an error when the pot is paid to nobody
var ErrNoWinners = errors.New("at least one winner is required")

// PotLedger keeps track of the pot and what each participant put into it for a single hand
// There are no side pots. The whole pot always goes to the winner(s).
type PotLedger struct {
	pot           int
	contributions map[string]*contribution
	// order is the order participants first contributed in
	order []string
}

// New instantiates a new PotLedger
func New() *PotLedger {
	return &PotLedger{
		contributions: make(map[string]*contribution),
		order:         make([]string, 0),
	}
}

// Contribute moves chips from the participant's balance into the pot
func (p *PotLedger) Contribute(pt Participant, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}

	if amount > pt.Balance() {
		return fmt.Errorf("%w: %s cannot cover ${%d} with ${%d}", ErrInsufficientChips, pt.ID(), amount, pt.Balance())
	}

	c, ok := p.contributions[pt.ID()]
	if !ok {
		c = &contribution{Participant: pt}
		p.contributions[pt.ID()] = c
		p.order = append(p.order, pt.ID())
	}

	pt.AdjustBalance(-1 * amount)
	pt.AdjustAmountInPlay(amount)
	c.amount += amount
	p.pot += amount

	return nil
}

// Total returns what is currently in the pot
func (p *PotLedger) Total() int {
	return p.pot
}

// ContributionOf returns how much the participant has put in the pot this hand
func (p *PotLedger) ContributionOf(pt Participant) int {
	if c, ok := p.contributions[pt.ID()]; ok {
		return c.amount
	}

	return 0
}

// Contributions returns a copy of every contribution, keyed by participant ID
func (p *PotLedger) Contributions() map[string]int {
	contributions := make(map[string]int, len(p.contributions))
	for id, c := range p.contributions {
		contributions[id] = c.amount
	}

	return contributions
}

// Contributed returns the sum of every contribution made this hand
func (p *PotLedger) Contributed() int {
	total := 0
	for _, c := range p.contributions {
		total += c.amount
	}

	return total
}

// Resolve pays the entire pot to the winner and returns the amount paid
func (p *PotLedger) Resolve(winner Participant) int {
	amount := p.pot
	winner.AdjustBalance(amount)
	p.pot = 0

	return amount
}

// Split divides the pot evenly between the winners
// Chips that cannot be divided evenly go to the first winner, so winners must be
// in seating order starting left of the dealer.
func (p *PotLedger) Split(winners []Participant) (map[string]int, error) {
	if len(winners) == 0 {
		return nil, ErrNoWinners
	}

	share := p.pot / len(winners)
	remainder := p.pot % len(winners)

	payouts := make(map[string]int, len(winners))
	for i, winner := range winners {
		amount := share
		if i == 0 {
			amount += remainder
		}

		winner.AdjustBalance(amount)
		payouts[winner.ID()] += amount
	}

	p.pot = 0
	return payouts, nil
}

// Refund returns every contribution to the participant who made it
// This is used when a hand cannot be completed.
func (p *PotLedger) Refund() map[string]int {
	refunds := make(map[string]int, len(p.order))
	for _, id := range p.order {
		c := p.contributions[id]
		if c.amount == 0 {
			continue
		}

		c.AdjustBalance(c.amount)
		refunds[id] = c.amount
		c.amount = 0
	}

	p.pot = 0
	return refunds
}

// Reset clears the ledger for a new hand
func (p *PotLedger) Reset() {
	p.pot = 0
	p.contributions = make(map[string]*contribution)
	p.order = make([]string, 0)
}
