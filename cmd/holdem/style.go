package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"holdem/pkg/bot"
	"holdem/pkg/event"
	"holdem/pkg/texasholdem"
)

// presenter prints the table to the terminal
// Private events are only shown when they belong to the human.
type presenter struct {
	human string
}

func newPresenter(human string) *presenter {
	return &presenter{human: human}
}

// Notify prints the event
func (p *presenter) Notify(e *event.Event) {
	if e.Private && (p.human == "" || e.Player != p.human) {
		return
	}

	switch e.Kind {
	case event.HandStarted:
		pterm.DefaultSection.Println(e.Message)
	case event.HoleCardsDealt:
		pterm.DefaultBox.WithTitle(pterm.LightYellow("|YOUR HAND|")).WithTitleTopCenter().Println(bot.FormatCards(e.Cards))
	case event.CommunityDealt:
		pterm.DefaultBox.WithTitle(pterm.LightYellow("|BOARD|")).WithTitleTopCenter().Println(bot.FormatCards(e.Cards))
	case event.InvalidAction:
		pterm.Warning.Println(e.Message)
	case event.Showdown:
		pterm.Info.Println(describe(e))
	case event.PotWon:
		pterm.Success.Println(describe(e))
	case event.PlayerEliminated:
		pterm.Error.Println(describe(e))
	case event.HandAborted:
		pterm.Error.Println(e.Message)
	default:
		pterm.Println(describe(e))
	}
}

func describe(e *event.Event) string {
	if e.Player == "" {
		return e.Message
	}

	msg := fmt.Sprintf("%s %s", pterm.LightCyan(e.Player), e.Message)
	if len(e.Cards) > 0 {
		msg = fmt.Sprintf("%s [%s]", msg, bot.FormatCards(e.Cards))
	}

	return msg
}

func standingsData(session *texasholdem.Session) pterm.TableData {
	data := pterm.TableData{{"Player", "Stack"}}
	for _, p := range session.Players() {
		data = append(data, []string{p.Name, strconv.Itoa(p.Stack())})
	}

	for _, p := range session.Eliminated() {
		data = append(data, []string{p.Name, "eliminated"})
	}

	return data
}

func printStandings(session *texasholdem.Session) {
	if err := pterm.DefaultTable.WithHasHeader().WithData(standingsData(session)).Render(); err != nil {
		pterm.Error.Println(err.Error())
	}
}
