package texasholdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem/pkg/deck"
	"holdem/pkg/potledger"
)

func TestPlayer(t *testing.T) {
	a := assert.New(t)

	var p potledger.Participant = NewPlayer("Alice", 100, script())
	a.Equal("Alice", p.ID())
	a.Equal(100, p.Balance())

	p.AdjustBalance(-25)
	p.AdjustAmountInPlay(25)

	player := p.(*Player)
	a.Equal(75, player.Stack())
	a.Equal(25, player.Bet())

	player.cards.AddCard(deck.CardFromString("14s"))
	player.cards.AddCard(deck.CardFromString("13s"))
	player.folded = true

	// hole cards are a copy
	cards := player.HoleCards()
	cards[0] = deck.CardFromString("2c")
	a.Equal("14s,13s", deck.CardsToString(player.HoleCards()))

	a.False(player.canAct())

	player.newRound()
	a.Equal(0, player.Bet())
	a.True(player.Folded())

	player.resetHand()
	a.Empty(player.HoleCards())
	a.False(player.Folded())
	a.Equal(75, player.Stack())
	a.True(player.canAct())

	player.stack = 0
	a.False(player.canAct())
}

func TestOptions(t *testing.T) {
	a := assert.New(t)

	opts := DefaultOptions()
	a.NoError(validateOptions(opts))
	a.Equal(10, opts.forcedBets())
	a.Equal(10, opts.minRaise())

	a.Equal(1, Options{}.forcedBets())
	a.Equal(1, Options{}.minRaise())
	a.Equal(25, Options{Ante: 5, BigBlind: 20, MinRaise: 50}.forcedBets())
	a.Equal(50, Options{Ante: 5, BigBlind: 20, MinRaise: 50}.minRaise())

	a.EqualError(validateOptions(Options{Ante: -1}), "ante must be >= 0")
	a.EqualError(validateOptions(Options{BigBlind: -1}), "blinds must be >= 0")
	a.EqualError(validateOptions(Options{MinRaise: -1}), "minimum raise must be >= 0")
	a.EqualError(validateOptions(Options{MaxInvalidAttempts: -1}), "max invalid attempts must be >= 0")
}
