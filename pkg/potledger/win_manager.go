package potledger

import (
	"sort"
)

type tier struct {
	strength     int
	participants []Participant
}

// WinManager groups participants by hand strength
type WinManager struct {
	tiers map[int]*tier
}

// NewWinManager returns an empty WinManager
func NewWinManager() *WinManager {
	return &WinManager{tiers: make(map[int]*tier)}
}

// AddParticipant adds a participant with their hand strength
// Participants must be added in seating order, that order is kept within a tier.
func (w *WinManager) AddParticipant(p Participant, handStrength int) {
	t, ok := w.tiers[handStrength]
	if !ok {
		t = &tier{
			strength:     handStrength,
			participants: make([]Participant, 0, 1),
		}
		w.tiers[handStrength] = t
	}

	t.participants = append(t.participants, p)
}

// GetSortedTiers returns the participants grouped by strength, best first
func (w *WinManager) GetSortedTiers() [][]Participant {
	tiers := make([]*tier, 0, len(w.tiers))
	for _, t := range w.tiers {
		tiers = append(tiers, t)
	}

	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].strength > tiers[j].strength
	})

	tieredParticipants := make([][]Participant, len(tiers))
	for i, t := range tiers {
		tieredParticipants[i] = t.participants
	}

	return tieredParticipants
}

// Winners returns the best tier, or nil if nobody was added
func (w *WinManager) Winners() []Participant {
	tiers := w.GetSortedTiers()
	if len(tiers) == 0 {
		return nil
	}

	return tiers[0]
}
