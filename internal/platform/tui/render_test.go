package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/jumpboy/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColor(0, 0, "JUMP", core.ColorBrightCyan)
	s.DrawTextColor(5, 0, "BOY", core.ColorBrown)
	s.DrawText(0, 1, "READY")

	out := RenderScreen(s)
	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, expected 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "JUMP BOY") {
		t.Errorf("line 0 = %q, expected it to start with JUMP BOY", lines[0])
	}
	if !strings.HasPrefix(lines[1], "READY") {
		t.Errorf("line 1 = %q, expected it to start with READY", lines[1])
	}
	for i, l := range lines {
		if n := len([]rune(l)); n != 12 {
			t.Errorf("line %d width = %d, expected 12", i, n)
		}
	}
}

func TestEveryColorHasAStyle(t *testing.T) {
	for c := range palette {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %v has no style", c)
		}
	}
}
