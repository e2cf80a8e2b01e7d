package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"holdem/internal/rng"
)

// ErrDeckExhausted is an error when Deal() is attempted and there are no more cards
var ErrDeckExhausted = errors.New("deck exhausted")

// ErrIllegalState is an error when the deck is used out of order, i.e., shuffling after a deal
var ErrIllegalState = errors.New("illegal deck state")

// Size is the number of cards in a standard deck
const Size = 52

// Deck represents a playing deck
// Cards holds the remaining cards, the top of the deck is index 0.
// Every card is either in Cards or in dealt, never both.
type Deck struct {
	Cards []*Card `json:"cards"`
	dealt []*Card
	rng   rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
// If gen is nil, the crypto generator is used
func New(gen rng.Generator) *Deck {
	if gen == nil {
		gen = rng.Crypto{}
	}

	d := &Deck{rng: gen}
	_ = d.Build()
	return d
}

// Build fills an empty deck with the 52 standard cards
func (d *Deck) Build() error {
	if len(d.Cards) > 0 || len(d.dealt) > 0 {
		return ErrIllegalState
	}

	cards := make([]*Card, 0, Size)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
	return nil
}

// Reset empties the deck and builds it back up in the standard order
func (d *Deck) Reset() {
	d.Cards = nil
	d.dealt = nil
	_ = d.Build()
}

// Shuffle will shuffle the remaining cards using Fisher-Yates
// Shuffling is only allowed before the first card is dealt.
func (d *Deck) Shuffle() error {
	if len(d.dealt) > 0 {
		return ErrIllegalState
	}

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}

	return nil
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// Deal will deal the top card
// If there are no more cards, an ErrDeckExhausted is returned along with a nil card.
func (d *Deck) Deal() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrDeckExhausted
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]
	d.dealt = append(d.dealt, card)

	return card, nil
}

// CanDeal returns true if there are {want} cards left in the deck
func (d *Deck) CanDeal(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// Dealt returns the cards that have been dealt, in the order they were dealt
func (d *Deck) Dealt() Hand {
	return Hand(d.dealt).Clone()
}
