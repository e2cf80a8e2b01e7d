package texasholdem

import "errors"

// MaxPlayers is the most players that can be seated at a table
const MaxPlayers = 9

// Options configures how Texas Hold'em is played
type Options struct {
	Ante       int `yaml:"ante"`
	SmallBlind int `yaml:"smallBlind"`
	BigBlind   int `yaml:"bigBlind"`
	// MinRaise is the smallest raise allowed, the big blind is used if it's larger
	MinRaise int `yaml:"minRaise"`
	// MaxInvalidAttempts is how many invalid decisions a player can make in a row before
	// the hand is aborted. 0 means the player is asked until they make a valid decision.
	MaxInvalidAttempts int `yaml:"maxInvalidAttempts"`
}

// DefaultOptions returns the default options for Texas Hold'em
func DefaultOptions() Options {
	return Options{
		Ante:       0,
		SmallBlind: 5,
		BigBlind:   10,
		MinRaise:   10,
	}
}

func validateOptions(opts Options) error {
	if opts.Ante < 0 {
		return errors.New("ante must be >= 0")
	}

	if opts.SmallBlind < 0 || opts.BigBlind < 0 {
		return errors.New("blinds must be >= 0")
	}

	if opts.SmallBlind > opts.BigBlind {
		return errors.New("small blind must not exceed the big blind")
	}

	if opts.MinRaise < 0 {
		return errors.New("minimum raise must be >= 0")
	}

	if opts.MaxInvalidAttempts < 0 {
		return errors.New("max invalid attempts must be >= 0")
	}

	return nil
}

// forcedBets is the most a player can be forced to put in before seeing their cards
// A player who cannot cover it is eliminated. With no antes or blinds, that's anyone without chips.
func (o Options) forcedBets() int {
	if f := o.Ante + o.BigBlind; f > 0 {
		return f
	}

	return 1
}

// minRaise is the floor for every raise
func (o Options) minRaise() int {
	return max(o.MinRaise, o.BigBlind, 1)
}
