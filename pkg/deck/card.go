package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
// Suits have no ranking in Hold'em, the string value is only used for identity and display.
type Suit string

// suit constants
const (
	Spades   Suit = "spades"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
)

// Suits is every suit, in the order a deck is built
var Suits = []Suit{Spades, Clubs, Diamonds, Hearts}

// Card is an individual playing card
// Cards are never mutated once built.
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Jack    = 11
	Queen   = 12
	King    = 13
	Ace     = 14
	HighAce = Ace
	LowAce  = 1
)

// NewCard returns a card after validating the rank and suit
func NewCard(rank int, suit Suit) (*Card, error) {
	if rank < 2 || rank > Ace {
		return nil, fmt.Errorf("invalid rank: %d", rank)
	}

	switch suit {
	case Spades, Clubs, Diamonds, Hearts:
	default:
		return nil, fmt.Errorf("invalid suit: %s", suit)
	}

	return &Card{Rank: rank, Suit: suit}, nil
}

func (c *Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	return rank + c.Suit.Symbol()
}

// Symbol returns the unicode symbol for the suit
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♢"
	case Hearts:
		return "♡"
	case Spades:
		return "♠"
	}

	panic(fmt.Sprintf("unknown suit: %s", string(s)))
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// AceLowRank return the rank where Ace is considered low instead of high
func (c *Card) AceLowRank() int {
	if c.Rank == Ace {
		return LowAce
	}

	return c.Rank
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs]
// This panics on malformed input and is meant for fixtures and tests. Use ParseCard for user input.
func CardFromString(s string) *Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err.Error())
	}

	return card
}

// ParseCard parses a card in the <rank><suit> format, i.e., 14s or 10h
func ParseCard(s string) (*Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return nil, fmt.Errorf("could not parse card: %s", s)
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		return nil, fmt.Errorf("could not parse card `%s`: %w", s, err)
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}, nil
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	return fmt.Sprintf("%d%c", card.Rank, card.Suit[0])
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
