package tracker

import (
	"fmt"
	"io"
)

// Logger writes the total quality of every n-th episode to an
// io.Writer as a line "episode totalQuality". Nothing is saved.
type Logger struct {
	out   io.Writer
	every int
}

// NewLogger returns a new Logger which logs every n-th episode to out
func NewLogger(out io.Writer, every int) *Logger {
	if every <= 0 {
		every = 1
	}
	return &Logger{out: out, every: every}
}

// Track logs the episode if it is an n-th episode
func (l *Logger) Track(episode int, totalQuality float64) {
	if episode%l.every != 0 {
		return
	}
	fmt.Fprintf(l.out, "%d %v\n", episode, totalQuality)
}

// Save does nothing, since logged data is written as it is tracked
func (l *Logger) Save() error {
	return nil
}
