package deck

// Hand represents a collection of cards
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// Ranks returns the rank of every card, in hand order
func (h Hand) Ranks() []int {
	ranks := make([]int, len(h))
	for i, card := range h {
		ranks[i] = card.Rank
	}

	return ranks
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
