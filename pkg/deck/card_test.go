package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♡", (&Card{Rank: 2, Suit: Hearts}).String())
	assert.Equal(t, "10♣", (&Card{Rank: 10, Suit: Clubs}).String())
	assert.Equal(t, "J♣", (&Card{Rank: 11, Suit: Clubs}).String())
	assert.Equal(t, "Q♢", (&Card{Rank: 12, Suit: Diamonds}).String())
	assert.Equal(t, "K♠", (&Card{Rank: 13, Suit: Spades}).String())
	assert.Equal(t, "A♠", (&Card{Rank: 14, Suit: Spades}).String())
}

func TestNewCard(t *testing.T) {
	a := assert.New(t)

	card, err := NewCard(Ace, Spades)
	a.NoError(err)
	a.Equal(&Card{Rank: 14, Suit: Spades}, card)

	_, err = NewCard(1, Spades)
	a.EqualError(err, "invalid rank: 1")

	_, err = NewCard(15, Spades)
	a.EqualError(err, "invalid rank: 15")

	_, err = NewCard(5, Suit("stars"))
	a.EqualError(err, "invalid suit: stars")
}

func TestParseCard(t *testing.T) {
	a := assert.New(t)

	card, err := ParseCard("10H")
	a.NoError(err)
	a.Equal(&Card{Rank: 10, Suit: Hearts}, card)

	_, err = ParseCard("1c")
	a.EqualError(err, "could not parse card: 1c")

	_, err = ParseCard("!5c")
	a.Error(err)

	a.Panics(func() { CardFromString("xx") })
}

func TestCardsToString(t *testing.T) {
	a := assert.New(t)

	cards := CardsFromString("14s,2c,10d,13h")
	a.Equal("14s,2c,10d,13h", CardsToString(cards))
	a.Equal("", CardToString(nil))
	a.Len(CardsFromString(""), 0)
}

func TestCard_AceLowRank(t *testing.T) {
	assert.Equal(t, 1, CardFromString("14c").AceLowRank())
	assert.Equal(t, 13, CardFromString("13c").AceLowRank())
}
