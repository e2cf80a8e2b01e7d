package event

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"holdem/pkg/deck"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	e := New(BetPlaced, "hand-1", "alice", "called ${%d}", 25).WithAmount(25)
	a.NotEmpty(e.UUID)
	a.Equal(BetPlaced, e.Kind)
	a.Equal("hand-1", e.HandID)
	a.Equal(25, e.Amount)
	a.Equal("alice called ${25}", e.String())
	a.False(e.Private)

	cards := deck.CardsFromString("14s,13s")
	e = New(HoleCardsDealt, "hand-1", "alice", "was dealt hole cards").WithCards(cards...).AsPrivate()
	a.True(e.Private)
	a.Equal("14s,13s", e.Cards.String())

	e = New(CommunityDealt, "hand-1", "", "the flop")
	a.Equal("the flop", e.String())
	a.NotEqual(New(CommunityDealt, "", "", "").UUID, New(CommunityDealt, "", "", "").UUID)
}

func TestMulti(t *testing.T) {
	var got []string
	s := Multi{
		SinkFunc(func(e *Event) { got = append(got, "1:"+e.Message) }),
		Nop,
		SinkFunc(func(e *Event) { got = append(got, "2:"+e.Message) }),
	}

	s.Notify(New(PotWon, "", "bob", "won"))
	assert.Equal(t, []string{"1:won", "2:won"}, got)
}

func TestLogSink(t *testing.T) {
	a := assert.New(t)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	s := LogSink{Logger: logger}

	s.Notify(New(PotWon, "h1", "bob", "won ${100}"))
	if a.Len(hook.AllEntries(), 1) {
		entry := hook.LastEntry()
		a.Equal(logrus.InfoLevel, entry.Level)
		a.Equal("won ${100}", entry.Message)
		a.Equal("bob", entry.Data["player"])
		a.Equal(PotWon, entry.Data["kind"])
	}

	s.Notify(New(HoleCardsDealt, "h1", "bob", "dealt").WithCards(deck.CardsFromString("2c,3c")...).AsPrivate())
	if a.Len(hook.AllEntries(), 2) {
		entry := hook.LastEntry()
		a.Equal(logrus.DebugLevel, entry.Level)
		a.Equal("2c,3c", entry.Data["cards"])
	}
}

func TestChanSink(t *testing.T) {
	a := assert.New(t)

	s := NewChanSink(1)
	s.Notify(New(PotWon, "", "", "first"))
	s.Notify(New(PotWon, "", "", "dropped"))

	e := <-s.C()
	a.Equal("first", e.Message)

	select {
	case e := <-s.C():
		a.Failf("unexpected event", "%v", e)
	default:
	}
}
