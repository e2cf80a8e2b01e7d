package bot

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"holdem/pkg/action"
	"holdem/pkg/deck"
	"holdem/pkg/texasholdem"
)

func newRequest() *texasholdem.DecisionRequest {
	return &texasholdem.DecisionRequest{
		Player:    "Alice",
		Stack:     90,
		HoleCards: deck.CardsFromString("14s,13s"),
		Options: action.Options{
			CallAmount: 10,
			CanRaise:   true,
			MinRaise:   10,
			MaxRaise:   90,
		},
		Attempt: 1,
	}
}

func TestFish_Decide(t *testing.T) {
	a := assert.New(t)

	d, err := Fish{}.Decide(context.Background(), newRequest())
	a.NoError(err)
	a.Equal(action.Decision{Action: action.Call}, d)
}

func TestParseDecision(t *testing.T) {
	a := assert.New(t)

	a.Equal(action.Decision{Action: action.Fold}, ParseDecision("fold"))
	a.Equal(action.Decision{Action: action.Call}, ParseDecision("  CALL "))
	a.Equal(action.Decision{Action: action.Check}, ParseDecision("check"))
	a.Equal(action.Decision{Action: action.Raise, Amount: 25}, ParseDecision("raise 25"))

	// not understood, so it will be rejected
	a.Equal(action.Decision{Action: "raise lots"}, ParseDecision("raise lots"))
	a.Equal(action.Decision{Action: "raise"}, ParseDecision("raise"))
	a.Equal(action.Decision{Action: "call 5"}, ParseDecision("call 5"))
	a.Equal(action.Decision{Action: "all in"}, ParseDecision("all in"))
	a.Equal(action.Decision{Action: ""}, ParseDecision(""))

	opts := newRequest().Options
	a.Error(opts.Validate(ParseDecision("raise lots")))
	a.Error(opts.Validate(ParseDecision("")))
	a.NoError(opts.Validate(ParseDecision("raise 25")))
}

func TestConsole_Decide(t *testing.T) {
	a := assert.New(t)

	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader("raise abc\nraise 20\nfold"), out)

	d, err := c.Decide(context.Background(), newRequest())
	a.NoError(err)
	a.Equal(action.Decision{Action: "raise abc"}, d)
	a.Equal("Alice, you have A♠ K♠ and ${90}. call ${10}, raise ${10}-${90}, or fold: ", out.String())

	out.Reset()
	req := newRequest()
	req.Attempt = 2
	req.Rejected = "invalid action: you cannot perform raise abc"

	d, err = c.Decide(context.Background(), req)
	a.NoError(err)
	a.Equal(action.Decision{Action: action.Raise, Amount: 20}, d)
	a.True(strings.HasPrefix(out.String(), "invalid action: you cannot perform raise abc\n"))

	// the last line has no newline
	d, err = c.Decide(context.Background(), newRequest())
	a.NoError(err)
	a.Equal(action.Decision{Action: action.Fold}, d)

	_, err = c.Decide(context.Background(), newRequest())
	a.True(errors.Is(err, ErrNoInput))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Decide(ctx, newRequest())
	a.True(errors.Is(err, context.Canceled))
}

func TestConsole_Decide_contextDoneWhileWaiting(t *testing.T) {
	a := assert.New(t)

	in, w := io.Pipe()
	defer w.Close()

	c := NewConsole(in, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Decide(ctx, newRequest())
	a.True(errors.Is(err, context.DeadlineExceeded))

	// the line typed after giving up answers the next prompt
	go func() {
		_, _ = w.Write([]byte("call\n"))
	}()

	d, err := c.Decide(context.Background(), newRequest())
	a.NoError(err)
	a.Equal(action.Decision{Action: action.Call}, d)
}
