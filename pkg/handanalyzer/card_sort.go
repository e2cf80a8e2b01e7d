package handanalyzer

import "holdem/pkg/deck"

type sortByRank []*deck.Card

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	return s[i].Rank < s[j].Rank
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

var suitOrder = func() map[deck.Suit]int {
	order := make(map[deck.Suit]int, len(deck.Suits))
	for i, suit := range deck.Suits {
		order[suit] = i
	}

	return order
}()

// sortCanonical orders cards by rank, highest first, then by suit in deck order
type sortCanonical []*deck.Card

func (s sortCanonical) Len() int {
	return len(s)
}

func (s sortCanonical) Less(i, j int) bool {
	if s[i].Rank != s[j].Rank {
		return s[i].Rank > s[j].Rank
	}

	return suitOrder[s[i].Suit] < suitOrder[s[j].Suit]
}

func (s sortCanonical) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
