package action

import "fmt"

// Decision is what a player chose to do
// Amount is only read for a Raise, and is the amount raised on top of the current bet.
type Decision struct {
	Action Action `json:"action"`
	Amount int    `json:"amount"`
}

// Options are the legal actions for the player on the clock
// Fold is always legal. Call is always offered, a CallAmount of 0 is a check.
// A raise is legal when CanRaise is true and MinRaise <= amount <= MaxRaise.
type Options struct {
	CallAmount int  `json:"callAmount"`
	CanRaise   bool `json:"canRaise"`
	MinRaise   int  `json:"minRaise"`
	MaxRaise   int  `json:"maxRaise"`
}

// Actions returns the list of legal actions
func (o Options) Actions() []Action {
	actions := make([]Action, 0, 3)
	if o.CallAmount == 0 {
		actions = append(actions, Check)
	} else {
		actions = append(actions, Call)
	}

	if o.CanRaise {
		actions = append(actions, Raise)
	}

	return append(actions, Fold)
}

// Validate returns an error if the decision is not allowed by the options
func (o Options) Validate(d Decision) error {
	switch d.Action {
	case Fold, Call:
		return nil
	case Check:
		if o.CallAmount > 0 {
			return fmt.Errorf("you cannot check, ${%d} is owed", o.CallAmount)
		}

		return nil
	case Raise:
		if !o.CanRaise {
			return fmt.Errorf("you cannot raise")
		}

		if d.Amount < o.MinRaise {
			return fmt.Errorf("raise must be at least ${%d}", o.MinRaise)
		}

		if d.Amount > o.MaxRaise {
			return fmt.Errorf("raise must not exceed ${%d}", o.MaxRaise)
		}

		return nil
	}

	return fmt.Errorf("you cannot perform %s", string(d.Action))
}

func (o Options) String() string {
	if o.CanRaise {
		return fmt.Sprintf("call ${%d}, raise ${%d}-${%d}, or fold", o.CallAmount, o.MinRaise, o.MaxRaise)
	}

	return fmt.Sprintf("call ${%d} or fold", o.CallAmount)
}
