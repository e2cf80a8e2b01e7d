package event

import "github.com/sirupsen/logrus"

// Sink receives events
// Notify must not block for long and must not call back into the engine.
type Sink interface {
	Notify(e *Event)
}

// SinkFunc is an adapter to allow an ordinary function to be a Sink
type SinkFunc func(e *Event)

// Notify calls f(e)
func (f SinkFunc) Notify(e *Event) {
	f(e)
}

// Nop discards every event
var Nop Sink = SinkFunc(func(*Event) {})

// Multi fans an event out to every sink, in order
type Multi []Sink

// Notify sends the event to every sink
func (m Multi) Notify(e *Event) {
	for _, s := range m {
		s.Notify(e)
	}
}

// LogSink writes events to a logrus logger
// Private events are logged at debug level.
type LogSink struct {
	Logger logrus.FieldLogger
}

// Notify logs the event
func (l LogSink) Notify(e *Event) {
	log := l.Logger.WithFields(logrus.Fields{
		"kind":   e.Kind,
		"handId": e.HandID,
	})

	if e.Player != "" {
		log = log.WithField("player", e.Player)
	}

	if len(e.Cards) > 0 {
		log = log.WithField("cards", e.Cards.String())
	}

	if e.Private {
		log.Debug(e.Message)
		return
	}

	log.Info(e.Message)
}

// ChanSink sends events on a buffered channel
// Events are dropped when the buffer is full, the engine never waits on a reader.
type ChanSink struct {
	ch chan *Event
}

// NewChanSink returns a ChanSink with the given buffer size
func NewChanSink(size int) *ChanSink {
	return &ChanSink{ch: make(chan *Event, size)}
}

// Notify queues the event
func (c *ChanSink) Notify(e *Event) {
	select {
	case c.ch <- e:
	default:
	}
}

// C returns the channel events are sent on
func (c *ChanSink) C() <-chan *Event {
	return c.ch
}
