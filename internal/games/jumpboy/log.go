package jumpboy

import (
	"io"

	"github.com/charmbracelet/log"
)

var logger = log.New(io.Discard)

// SetLogger routes entity and scene transition logs to l.
// Passing nil discards them again.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}
