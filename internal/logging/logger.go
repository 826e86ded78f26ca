package logging

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Logger provides optional verbose logging and lightweight timing helpers.
// Copies share one lock, so a Logger may be passed by value to workers.
type Logger struct {
	Writer    io.Writer
	ErrWriter io.Writer
	Verbose   bool

	mu *sync.Mutex
}

func New(writer, errWriter io.Writer, verbose bool) Logger {
	return Logger{Writer: writer, ErrWriter: errWriter, Verbose: verbose, mu: &sync.Mutex{}}
}

func (l Logger) Infof(format string, args ...any) {
	l.write(l.Writer, format, args...)
}

func (l Logger) Verbosef(format string, args ...any) {
	if !l.Verbose {
		return
	}
	l.Infof("Verbose: "+format, args...)
}

// Errorf writes to ErrWriter, falling back to Writer.
func (l Logger) Errorf(format string, args ...any) {
	w := l.ErrWriter
	if w == nil {
		w = l.Writer
	}
	l.write(w, format, args...)
}

// Measure returns a stop function that logs the elapsed time when called.
func (l Logger) Measure(label string) func() {
	if !l.Verbose {
		return func() {}
	}
	start := time.Now()
	return func() {
		elapsed := time.Since(start).Round(time.Millisecond)
		l.Verbosef("%s took %s", label, elapsed)
	}
}

func (l Logger) write(w io.Writer, format string, args ...any) {
	if w == nil {
		return
	}
	if l.mu != nil {
		l.mu.Lock()
		defer l.mu.Unlock()
	}
	fmt.Fprintf(w, format+"\n", args...)
}
