package handanalyzer

import (
	"errors"
	"fmt"
	"sort"

	"holdem/pkg/deck"
)

// ErrNotEnoughCards is an error when fewer than five cards are evaluated
var ErrNotEnoughCards = errors.New("at least five cards are required")

// HandRank is the best five-card hand that can be made from a set of cards
type HandRank struct {
	Hand Hand `json:"hand"`
	// Values are the ranks used to break ties within the same Hand, most significant first
	Values []int `json:"values"`
	// Cards are the five cards that make up the hand
	Cards deck.Hand `json:"cards"`

	strength int
}

func newHandRank(h *HandAnalyzer) *HandRank {
	values := h.tieBreak()
	return &HandRank{
		Hand:     h.hand,
		Values:   values,
		Cards:    h.cards,
		strength: calculateStrength(h.hand, values),
	}
}

// Strength returns a single integer that orders hands
// A higher strength is a better hand, and equal strengths are a split.
func (r *HandRank) Strength() int {
	return r.strength
}

// Compare returns 1 if r beats o, -1 if o beats r, and 0 on a tie
func (r *HandRank) Compare(o *HandRank) int {
	if r.Hand != o.Hand {
		if r.Hand > o.Hand {
			return 1
		}

		return -1
	}

	for i := 0; i < len(r.Values) && i < len(o.Values); i++ {
		if r.Values[i] > o.Values[i] {
			return 1
		} else if r.Values[i] < o.Values[i] {
			return -1
		}
	}

	return 0
}

func (r *HandRank) String() string {
	return fmt.Sprintf("%s (%s)", r.Hand, r.Cards.String())
}

// Evaluate returns the best hand that can be made from five to seven cards
// Every five-card combination is analyzed. The cards are put in rank then suit order
// first, so when two combinations are equally strong the same one is picked no matter
// how the cards were given.
func Evaluate(cards []*deck.Card) (*HandRank, error) {
	if len(cards) < handSize {
		return nil, fmt.Errorf("cannot evaluate %d cards: %w", len(cards), ErrNotEnoughCards)
	}

	cards = append([]*deck.Card(nil), cards...)
	sort.Sort(sortCanonical(cards))

	var best *HandRank
	subset := make([]*deck.Card, handSize)
	forEachCombination(len(cards), handSize, func(indexes []int) {
		for i, index := range indexes {
			subset[i] = cards[index]
		}

		rank := newHandRank(newHandAnalyzer(subset))
		if best == nil || rank.Compare(best) > 0 {
			best = rank
		}
	})

	return best, nil
}

// MustEvaluate is like Evaluate, but panics on error
func MustEvaluate(cards []*deck.Card) *HandRank {
	rank, err := Evaluate(cards)
	if err != nil {
		panic(err)
	}

	return rank
}

// forEachCombination calls fn with every k-sized set of indexes in [0,n), in lexicographic order
// The slice passed to fn is reused between calls.
func forEachCombination(n, k int, fn func(indexes []int)) {
	indexes := make([]int, k)
	for i := range indexes {
		indexes[i] = i
	}

	for {
		fn(indexes)

		// find the right-most index that can still move right
		i := k - 1
		for i >= 0 && indexes[i] == n-k+i {
			i--
		}

		if i < 0 {
			return
		}

		indexes[i]++
		for j := i + 1; j < k; j++ {
			indexes[j] = indexes[j-1] + 1
		}
	}
}
