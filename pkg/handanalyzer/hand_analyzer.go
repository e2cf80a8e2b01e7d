package handanalyzer

import (
	"math"
	"sort"

	"holdem/pkg/deck"
)

// handSize is the number of cards that make up a poker hand
const handSize = 5

// HandAnalyzer classifies exactly five cards
type HandAnalyzer struct {
	cards         deck.Hand
	flush         []int
	quads         []int
	trips         []int
	pairs         []int
	singles       []int
	straightFlush int
	straight      int

	hand Hand
}

// newHandAnalyzer analyzes five cards
// The caller guarantees the length. Use Evaluate() for anything else.
func newHandAnalyzer(cards []*deck.Card) *HandAnalyzer {
	// clone to prevent modifying original
	sortedCards := make(deck.Hand, len(cards))
	copy(sortedCards, cards)
	sort.Stable(sort.Reverse(sortByRank(sortedCards)))

	h := &HandAnalyzer{
		cards: sortedCards,
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateHand()

	return h
}

// analyzeHand walks the sorted cards once and records flushes, straights and groups
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	h.checkFlush()
	h.checkStraight()

	if h.flush != nil && h.straight > 0 {
		h.straightFlush = h.straight
	}

	// keeps track of pairs, trips, and quads
	prevRank := math.MaxInt8
	numOfRank := 0
	for i, card := range h.cards {
		isLastCard := i+1 == len(h.cards)
		h.checkPairs(card, &prevRank, &numOfRank, isLastCard)
	}
}

func (h *HandAnalyzer) checkFlush() {
	suit := h.cards[0].Suit
	for _, card := range h.cards[1:] {
		if card.Suit != suit {
			return
		}
	}

	h.flush = h.cards.Ranks()
}

// checkStraight records the high card of a straight
// The wheel (A-2-3-4-5) is a five-high straight.
func (h *HandAnalyzer) checkStraight() {
	ranks := h.cards.Ranks()
	for i := 1; i < len(ranks); i++ {
		if ranks[i] == ranks[i-1] {
			return
		}
	}

	if ranks[0]-ranks[len(ranks)-1] == handSize-1 {
		h.straight = ranks[0]
		return
	}

	if h.cards[0].AceLowRank() == deck.LowAce && ranks[1] == 5 && ranks[len(ranks)-1] == 2 {
		h.straight = 5
	}
}

// checkPairs groups runs of the same rank; the cards must be sorted
func (h *HandAnalyzer) checkPairs(card *deck.Card, prevRank, numOfRank *int, isLastCard bool) {
	if card.Rank != *prevRank {
		h.recordGroup(*prevRank, *numOfRank)
		*numOfRank = 0
	}

	*prevRank = card.Rank
	*numOfRank++

	if isLastCard {
		h.recordGroup(*prevRank, *numOfRank)
	}
}

func (h *HandAnalyzer) recordGroup(rank, count int) {
	switch count {
	case 4:
		h.quads = append(h.quads, rank)
	case 3:
		h.trips = append(h.trips, rank)
	case 2:
		h.pairs = append(h.pairs, rank)
	case 1:
		h.singles = append(h.singles, rank)
	}
}

// GetHand will return the best possible hand the cards can make
func (h *HandAnalyzer) GetHand() Hand {
	return h.hand
}

// GetRoyalFlush will return true if there's a royal flush
func (h *HandAnalyzer) GetRoyalFlush() bool {
	return h.straightFlush == deck.Ace
}

// GetStraightFlush will return the best straight flush, if possible
func (h *HandAnalyzer) GetStraightFlush() (int, bool) {
	if h.straightFlush > 0 {
		return h.straightFlush, true
	}

	return 0, false
}

// GetFourOfAKind will return the four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (int, bool) {
	if len(h.quads) > 0 {
		return h.quads[0], true
	}

	return 0, false
}

// GetFullHouse will return the trips and the pair of a full house, if possible
func (h *HandAnalyzer) GetFullHouse() ([]int, bool) {
	if len(h.trips) == 0 || len(h.pairs) == 0 {
		return nil, false
	}

	return []int{h.trips[0], h.pairs[0]}, true
}

// GetFlush will return the flush, if possible
func (h *HandAnalyzer) GetFlush() ([]int, bool) {
	if h.flush != nil {
		return h.flush, true
	}

	return nil, false
}

// GetStraight will return the high card of the straight, if possible
func (h *HandAnalyzer) GetStraight() (int, bool) {
	if h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// GetThreeOfAKind will return the three of a kind, if possible
func (h *HandAnalyzer) GetThreeOfAKind() (int, bool) {
	if len(h.trips) > 0 {
		return h.trips[0], true
	}

	return 0, false
}

// GetTwoPair will return the two pairs, highest first, if possible
func (h *HandAnalyzer) GetTwoPair() ([]int, bool) {
	if len(h.pairs) < 2 {
		return nil, false
	}

	return []int{h.pairs[0], h.pairs[1]}, true
}

// GetPair will return the best pair, if possible
func (h *HandAnalyzer) GetPair() (int, bool) {
	if len(h.pairs) > 0 {
		return h.pairs[0], true
	}

	return 0, false
}

// GetHighCard will return the ranks of the cards, highest first
func (h *HandAnalyzer) GetHighCard() ([]int, bool) {
	return h.cards.Ranks(), true
}

// calculateHand will determine the best hand
// Categories are tested from best to worst, the first match wins
func (h *HandAnalyzer) calculateHand() {
	if h.GetRoyalFlush() {
		h.hand = RoyalFlush
	} else if _, ok := h.GetStraightFlush(); ok {
		h.hand = StraightFlush
	} else if _, ok := h.GetFourOfAKind(); ok {
		h.hand = FourOfAKind
	} else if _, ok := h.GetFullHouse(); ok {
		h.hand = FullHouse
	} else if _, ok := h.GetFlush(); ok {
		h.hand = Flush
	} else if _, ok := h.GetStraight(); ok {
		h.hand = Straight
	} else if _, ok := h.GetThreeOfAKind(); ok {
		h.hand = ThreeOfAKind
	} else if _, ok := h.GetTwoPair(); ok {
		h.hand = TwoPair
	} else if _, ok := h.GetPair(); ok {
		h.hand = OnePair
	} else {
		h.hand = HighCard
	}
}

// tieBreak returns the ranks that order two hands of the same category, most significant first
func (h *HandAnalyzer) tieBreak() []int {
	switch h.hand {
	case RoyalFlush, StraightFlush:
		s, _ := h.GetStraightFlush()
		return []int{s}
	case FourOfAKind:
		fk, _ := h.GetFourOfAKind()
		return []int{fk, h.singles[0]}
	case FullHouse:
		fh, _ := h.GetFullHouse()
		return fh
	case Flush:
		f, _ := h.GetFlush()
		return f
	case Straight:
		s, _ := h.GetStraight()
		return []int{s}
	case ThreeOfAKind:
		trips, _ := h.GetThreeOfAKind()
		return append([]int{trips}, h.singles...)
	case TwoPair:
		twoPair, _ := h.GetTwoPair()
		return append(twoPair, h.singles...)
	case OnePair:
		pair, _ := h.GetPair()
		return append([]int{pair}, h.singles...)
	case HighCard:
		hc, _ := h.GetHighCard()
		return hc
	}

	panic("unknown hand")
}

// calculateStrength packs a hand and its tie-break ranks into a single comparable integer
func calculateStrength(hand Hand, values []int) int {
	fiveCards := make([]int, handSize)
	copy(fiveCards, values)

	strength := math.Pow(15, handSize) * float64(hand)
	for i := 0; i < handSize; i++ {
		val := fiveCards[handSize-1-i]
		strength += math.Pow(15, float64(i)) * float64(val)
	}

	return int(strength)
}
