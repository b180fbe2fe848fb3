// Package notify is the transient-message boundary between the core and
// whatever surface the user is looking at. The store reports every success
// and failure here; renderers decide how to show them.
package notify

import (
	"context"
	"fmt"
	"io"

	"github.com/raghul07102002/holofolio/internal/logging"
)

// Sink receives transient user-facing messages.
type Sink interface {
	Success(msg string)
	Failure(msg string)
}

// WriterSink prints messages to a writer, one per line. The CLI uses it with
// stdout.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Success(msg string) {
	fmt.Fprintln(s.W, msg)
}

func (s WriterSink) Failure(msg string) {
	fmt.Fprintln(s.W, "error:", msg)
}

// LogSink routes messages to a structured logger. The web front-end uses it;
// HTTP responses carry the message to the page separately.
type LogSink struct {
	Log logging.Logger
}

func (s LogSink) Success(msg string) {
	s.Log.Info(context.Background(), msg)
}

func (s LogSink) Failure(msg string) {
	s.Log.Error(context.Background(), msg)
}

// Discard drops all messages. Useful in tests.
type Discard struct{}

func (Discard) Success(string) {}
func (Discard) Failure(string) {}
