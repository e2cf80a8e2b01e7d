package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"holdem/internal/config"
	"holdem/internal/rng"
	"holdem/internal/util"
	"holdem/pkg/bot"
	"holdem/pkg/event"
	"holdem/pkg/texasholdem"
)

var hands = flag.Int("hands", -1, "the number of hands to play, overrides the configuration")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	if *hands >= 0 {
		cfg.Hands = *hands
	}

	gen := rng.New(cfg.Seed)
	players, human := seatPlayers(cfg, gen)

	session, err := texasholdem.NewSession(logrus.StandardLogger(), players, cfg.Options(), gen, newSink(cfg, human))
	if err != nil {
		logrus.WithError(err).Fatal("could not start the table")
	}
	defer session.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := session.Play(ctx, cfg.Hands)
	if err != nil && !errors.Is(err, context.Canceled) {
		logrus.WithError(err).Error("could not finish the session")
	}

	logrus.WithField("hands", len(results)).Info("session over")
	printStandings(session)
}

// seatPlayers returns the players in seating order, and the human's name if one is seated
func seatPlayers(cfg config.Config, gen rng.Generator) ([]*texasholdem.Player, string) {
	names := util.GetRandomNames(gen, cfg.Players)
	players := make([]*texasholdem.Player, len(names))

	human := ""
	if cfg.Human != "" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			human = cfg.Human
		} else {
			logrus.WithField("human", cfg.Human).Warn("stdin is not a terminal, a bot will play instead")
		}
	}

	for i, name := range names {
		if i == 0 && human != "" {
			players[i] = texasholdem.NewPlayer(human, cfg.InitialStack, bot.NewConsole(os.Stdin, os.Stdout))
			continue
		}

		players[i] = texasholdem.NewPlayer(name, cfg.InitialStack, bot.Fish{})
	}

	return players, human
}

// newSink returns the terminal presenter, and with JSON logging a log sink as well
func newSink(cfg config.Config, human string) event.Multi {
	sinks := event.Multi{newPresenter(human)}
	if isJSONLog(cfg) {
		sinks = append(sinks, event.LogSink{Logger: logrus.StandardLogger()})
	}

	return sinks
}

func isJSONLog(cfg config.Config) bool {
	return strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" || cfg.Log.Format == "json"
}

func setupLogger() {
	cfg := config.Instance()
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if isJSONLog(cfg) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
