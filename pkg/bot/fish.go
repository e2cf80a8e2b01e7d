package bot

import (
	"context"

	"holdem/pkg/action"
	"holdem/pkg/texasholdem"
)

// Fish calls everything
type Fish struct{}

// Decide always calls
func (Fish) Decide(ctx context.Context, req *texasholdem.DecisionRequest) (action.Decision, error) {
	return action.Decision{Action: action.Call}, nil
}
