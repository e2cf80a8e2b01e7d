package handanalyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem/pkg/deck"
)

func analyze(s string) *HandAnalyzer {
	return newHandAnalyzer(deck.CardsFromString(s))
}

func TestHandAnalyzer_GetFourOfAKind(t *testing.T) {
	h := analyze("2c,3c,3d,3h,3s")
	r, ok := h.GetFourOfAKind()
	assert.True(t, ok)
	assert.Equal(t, 3, r)
	_, ok = h.GetThreeOfAKind()
	assert.False(t, ok)
	_, ok = h.GetPair()
	assert.False(t, ok)
	assert.Equal(t, []int{3, 2}, h.tieBreak())

	h = analyze("9s,4h,5c,4d,4c")
	r, ok = h.GetFourOfAKind()
	assert.False(t, ok)
	assert.Equal(t, 0, r)
}

func TestHandAnalyzer_GetFullHouse(t *testing.T) {
	h := analyze("14c,2c,14d,2d,14h")
	r, ok := h.GetFullHouse()
	assert.True(t, ok)
	assert.Equal(t, []int{14, 2}, r)
	assert.Equal(t, FullHouse, h.GetHand())

	h = analyze("3c,3d,3h,4c,5d")
	r, ok = h.GetFullHouse()
	assert.False(t, ok)
	assert.Nil(t, r)
	assert.Equal(t, ThreeOfAKind, h.GetHand())
	assert.Equal(t, []int{3, 5, 4}, h.tieBreak())
}

func TestHandAnalyzer_GetHighCard(t *testing.T) {
	h := analyze("14c,2c,5c,8d,3h")
	r, ok := h.GetHighCard()
	assert.Equal(t, []int{14, 8, 5, 3, 2}, r)
	assert.True(t, ok)
	assert.Equal(t, HighCard, h.GetHand())
}

func TestHandAnalyzer_GetPair(t *testing.T) {
	h := analyze("2c,9c,2h,5h,6d")
	r, ok := h.GetPair()
	assert.True(t, ok)
	assert.Equal(t, 2, r)
	assert.Equal(t, OnePair, h.GetHand())
	assert.Equal(t, []int{2, 9, 6, 5}, h.tieBreak())

	h = analyze("2c,3c,4h,7h,6d")
	r, ok = h.GetPair()
	assert.False(t, ok)
	assert.Equal(t, 0, r)
}

func TestHandAnalyzer_GetTwoPair(t *testing.T) {
	h := analyze("5c,5d,6h,6d,3h")
	r, ok := h.GetTwoPair()
	assert.True(t, ok)
	assert.Equal(t, []int{6, 5}, r)
	assert.Equal(t, []int{6, 5, 3}, h.tieBreak())

	h = analyze("2c,2d,3h,4h,5d")
	r, ok = h.GetTwoPair()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestHandAnalyzer_GetFlush(t *testing.T) {
	h := analyze("2c,3c,4c,5c,7c")
	r, ok := h.GetFlush()
	assert.True(t, ok)
	assert.Equal(t, []int{7, 5, 4, 3, 2}, r)
	assert.Equal(t, Flush, h.GetHand())

	h = analyze("2c,3c,4c,5c,7d")
	r, ok = h.GetFlush()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestHandAnalyzer_GetStraight(t *testing.T) {
	h := analyze("6c,2d,3c,4h,5s")
	r, ok := h.GetStraight()
	assert.True(t, ok)
	assert.Equal(t, 6, r)
	assert.Equal(t, Straight, h.GetHand())

	// wheel
	h = analyze("14c,2d,3c,4h,5s")
	r, ok = h.GetStraight()
	assert.True(t, ok)
	assert.Equal(t, 5, r)

	// broadway
	h = analyze("14c,13d,12c,11h,10s")
	r, ok = h.GetStraight()
	assert.True(t, ok)
	assert.Equal(t, 14, r)

	// no wrap-around
	h = analyze("13c,14d,2c,3h,4s")
	_, ok = h.GetStraight()
	assert.False(t, ok)
}

func TestHandAnalyzer_GetStraightFlush(t *testing.T) {
	h := analyze("9h,10h,11h,12h,13h")
	r, ok := h.GetStraightFlush()
	assert.True(t, ok)
	assert.Equal(t, 13, r)
	assert.False(t, h.GetRoyalFlush())
	assert.Equal(t, StraightFlush, h.GetHand())

	h = analyze("14h,2h,3h,4h,5h")
	r, ok = h.GetStraightFlush()
	assert.True(t, ok)
	assert.Equal(t, 5, r)
	assert.False(t, h.GetRoyalFlush())

	h = analyze("14s,13s,12s,11s,10s")
	assert.True(t, h.GetRoyalFlush())
	assert.Equal(t, RoyalFlush, h.GetHand())
}

func TestHand_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("High card", HighCard.String())
	a.Equal("Pair", OnePair.String())
	a.Equal("Two pair", TwoPair.String())
	a.Equal("Three of a kind", ThreeOfAKind.String())
	a.Equal("Straight", Straight.String())
	a.Equal("Flush", Flush.String())
	a.Equal("Full house", FullHouse.String())
	a.Equal("Four of a kind", FourOfAKind.String())
	a.Equal("Straight flush", StraightFlush.String())
	a.Equal("Royal flush", RoyalFlush.String())
	a.Panics(func() { _ = Hand(99).String() })
}

func Test_calculateStrength(t *testing.T) {
	a := assert.New(t)

	// every category beats the best hand of the category below it
	a.Greater(calculateStrength(OnePair, []int{2, 5, 4, 3}), calculateStrength(HighCard, []int{14, 13, 12, 11, 9}))
	a.Greater(calculateStrength(FourOfAKind, []int{2, 3}), calculateStrength(FullHouse, []int{14, 13}))
	a.Greater(calculateStrength(Flush, []int{9, 7, 5, 3, 2}), calculateStrength(Flush, []int{9, 7, 5, 3}))
}
