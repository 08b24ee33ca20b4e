package logging

import (
	"fmt"
	"io"
	"time"
)

// Logger writes verbose diagnostics. Regular output is owned by the
// presentation layer, so every method is gated on Verbose, and a nil
// Writer turns all of them into no-ops.
type Logger struct {
	Writer  io.Writer
	Verbose bool
}

func New(writer io.Writer, verbose bool) Logger {
	return Logger{Writer: writer, Verbose: verbose}
}

func (l Logger) enabled() bool {
	return l.Verbose && l.Writer != nil
}

func (l Logger) Verbosef(format string, args ...any) {
	if !l.enabled() {
		return
	}
	fmt.Fprintf(l.Writer, "Verbose: "+format+"\n", args...)
}

// Measure announces the labelled step and returns a stop function that
// logs the elapsed time when called.
func (l Logger) Measure(label string) func() {
	if !l.enabled() {
		return func() {}
	}
	l.Verbosef("%s...", label)
	start := time.Now()
	return func() {
		l.Verbosef("%s took %s", label, time.Since(start).Round(time.Millisecond))
	}
}
