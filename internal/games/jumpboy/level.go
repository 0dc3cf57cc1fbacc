package jumpboy

import "fmt"

// Level identifies a ruleset: a mode (normal, hard) and a stage inside it.
// Both are zero-based.
type Level struct {
	Mode  int
	Stage int
}

func (l Level) String() string {
	return fmt.Sprintf("mode %d stage %d", l.Mode, l.Stage+1)
}
