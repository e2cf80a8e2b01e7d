package potledger

// Participant provides an interface for retrieving and adjusting a participants balance
type Participant interface {
	ID() string
	Balance() int
	AdjustBalance(amount int)
	// AdjustAmountInPlay adds to what the participant has bet in the current betting round
	AdjustAmountInPlay(amount int)
}

type contribution struct {
	Participant
	amount int
}
