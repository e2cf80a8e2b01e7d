package bot

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"holdem/pkg/action"
	"holdem/pkg/deck"
	"holdem/pkg/texasholdem"
)

// ErrNoInput is an error when the console has no more input
var ErrNoInput = errors.New("no more input")

// Console asks a person for decisions, one line at a time
// A line is an action optionally followed by an amount, i.e., "call" or "raise 20".
// Input that cannot be understood is passed along as is so it gets rejected, a
// default action is never chosen for the player.
//
// Reads happen in the background so Decide returns as soon as ctx is done. A
// read that was given up on keeps going, and its line answers the next prompt.
type Console struct {
	reader  *bufio.Reader
	out     io.Writer
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

// NewConsole returns a Console reading from in and prompting on out
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Decide prompts for and reads a decision
func (c *Console) Decide(ctx context.Context, req *texasholdem.DecisionRequest) (action.Decision, error) {
	if err := ctx.Err(); err != nil {
		return action.Decision{}, err
	}

	if req.Rejected != "" {
		_, _ = fmt.Fprintf(c.out, "%s\n", req.Rejected)
	}

	_, _ = fmt.Fprintf(c.out, "%s, you have %s and ${%d}. %s: ", req.Player, FormatCards(req.HoleCards), req.Stack, req.Options.String())

	if c.pending == nil {
		c.pending = make(chan readResult, 1)
		go c.readLine(c.pending)
	}

	select {
	case <-ctx.Done():
		return action.Decision{}, ctx.Err()
	case res := <-c.pending:
		c.pending = nil
		if res.err != nil {
			return action.Decision{}, res.err
		}

		return ParseDecision(res.line), nil
	}
}

func (c *Console) readLine(result chan<- readResult) {
	str, err := c.reader.ReadString('\n')
	if err != nil && (err != io.EOF || str == "") {
		if err == io.EOF {
			err = ErrNoInput
		}

		result <- readResult{err: err}
		return
	}

	result <- readResult{line: strings.TrimRight(str, "\r\n")}
}

// ParseDecision parses a line of input into a decision
func ParseDecision(line string) action.Decision {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return action.Decision{Action: action.Action(line)}
	}

	a, err := action.FromString(fields[0])
	if err != nil {
		return action.Decision{Action: action.Action(strings.ToLower(line))}
	}

	if a != action.Raise {
		if len(fields) > 1 {
			return action.Decision{Action: action.Action(strings.ToLower(line))}
		}

		return action.Decision{Action: a}
	}

	if len(fields) != 2 {
		return action.Decision{Action: action.Action(strings.ToLower(line))}
	}

	amount, err := strconv.Atoi(fields[1])
	if err != nil {
		return action.Decision{Action: action.Action(strings.ToLower(line))}
	}

	return action.Decision{Action: action.Raise, Amount: amount}
}

// FormatCards returns the cards for display, i.e., "A♠ K♠"
func FormatCards(cards deck.Hand) string {
	s := make([]string, len(cards))
	for i, card := range cards {
		s[i] = card.String()
	}

	return strings.Join(s, " ")
}
