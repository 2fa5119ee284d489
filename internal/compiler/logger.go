package compiler

import (
	"fmt"
	"io"
	"os"

	"github.com/KromDaniel/thompson/internal/nfa"
)

// Logger writes verbose construction and generation traces.
// A disabled logger discards everything.
type Logger struct {
	enabled bool
	out     io.Writer
}

// NewLogger creates a logger writing to stderr when enabled is true.
func NewLogger(enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		out:     os.Stderr,
	}
}

// SetOutput redirects the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Log prints a formatted message if verbose mode is enabled.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.enabled {
		fmt.Fprintf(l.out, "[thompson] "+format+"\n", args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func (l *Logger) Section(name string) {
	if l.enabled {
		fmt.Fprintf(l.out, "\n[thompson] === %s ===\n", name)
	}
}

// Fragment traces a fragment returned by the construction.
func (l *Logger) Fragment(variant string, entry, exit nfa.NodeHandle) {
	l.Log("fragment %-7s entry=%d exit=%d", variant, entry, exit)
}

// Stats logs the shape of a finished automaton.
func (l *Logger) Stats(n *nfa.NFA) {
	if !l.enabled {
		return
	}
	s := n.Stats()
	l.Log("NFA nodes: %d, transitions: %d (ε: %d), alphabet: %q", s.Nodes, s.Transitions, s.Epsilons, string(s.Alphabet))
	l.Log("start: %d, accept: %d", n.Start(), n.Accept())
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}
