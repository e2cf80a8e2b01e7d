package texasholdem

import (
	"encoding/json"
)

// Stage represents how far the hand has progressed
type Stage int

// constants for Stage
const (
	StageStart Stage = iota
	StagePreFlop
	StageFlop
	StageTurn
	StageRiver
	StageShowdown
	StageEnd
)

// IsBettingRound returns true if players act during the stage
func (s Stage) IsBettingRound() bool {
	return s >= StagePreFlop && s <= StageRiver
}

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StagePreFlop:
		return "pre-flop"
	case StageFlop:
		return "flop"
	case StageTurn:
		return "turn"
	case StageRiver:
		return "river"
	case StageShowdown:
		return "showdown"
	case StageEnd:
		return "end"
	}

	return ""
}

// MarshalJSON encodes JSON
func (s Stage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(s),
		Name: s.String(),
	})
}
