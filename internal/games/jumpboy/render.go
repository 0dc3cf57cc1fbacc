package jumpboy

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/jumpboy/internal/core"
)

// Visual characters for rendering
const (
	JumperChar    = '█'
	FallenChar    = '▄'
	GroundChar    = '▀'
	SoilChar      = '░'
	WallChar      = '║'
	BurstChar     = '*'
	LifeChar      = '♥'
	LostLifeChar  = '♡'
	hudRow        = 0
	blinkPeriodMs = 500
)

var ballChars = [4]rune{'◐', '◓', '◑', '◒'}

var surfaceColors = map[string]core.Color{
	"road":  core.ColorGray,
	"grass": core.ColorGreen,
	"clay":  core.ColorOrange,
	"wood":  core.ColorBrown,
}

// view maps world pixels to screen cells below the HUD row.
type view struct {
	dst    *core.Screen
	scaleX float64
	scaleY float64
}

func newView(dst *core.Screen, f *Field) view {
	rows := max(dst.Height()-1, 1)
	return view{
		dst:    dst,
		scaleX: f.MaxSize.W / float64(max(dst.Width(), 1)),
		scaleY: f.MaxSize.H / float64(rows),
	}
}

func (v view) col(x float64) int { return int(x / v.scaleX) }
func (v view) row(y float64) int { return 1 + int(y/v.scaleY) }

// rect returns the cells covered by a world box, at least one cell.
func (v view) rect(b core.Box) core.Rect {
	x0, y0 := v.col(b.Left()), v.row(b.Top())
	x1, y1 := v.col(b.Right()), v.row(b.Bottom())
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.s.snap
	v := newView(dst, snap.Field)

	g.renderField(v)
	for _, b := range snap.Balls {
		renderBall(v, b, surfaceColors[snap.Field.Surface])
	}
	g.renderJumper(v)
	g.renderHUD(dst)
	g.renderBanners(v)
}

func (g *Game) renderField(v view) {
	f := g.s.snap.Field
	color := surfaceColors[f.Surface]

	ground := v.row(f.Bottom())
	for x := 0; x < v.dst.Width(); x++ {
		v.dst.SetColor(x, ground, GroundChar, color)
		for y := ground + 1; y < v.dst.Height(); y++ {
			v.dst.SetColor(x, y, SoilChar, color)
		}
	}

	for _, o := range f.Obstacles {
		r := v.rect(f.obstacle(o))
		x := core.Clamp(r.X, 0, v.dst.Width()-1)
		for y := max(r.Y, 1); y < r.Bottom() && y < ground; y++ {
			v.dst.SetColor(x, y, WallChar, color)
		}
	}
}

func renderBall(v view, b *Ball, color core.Color) {
	if !b.Visible() {
		return
	}
	glyph := BurstChar
	if b.motion < len(ballChars) {
		glyph = ballChars[b.motion]
	}
	if b.Bursting() {
		color = core.ColorBrightYellow
	}
	v.dst.DrawRectColor(v.rect(b.Box()), glyph, color)
}

func (g *Game) renderJumper(v view) {
	j := g.s.snap.Jumper
	if !j.Visible() {
		return
	}
	color := core.ColorBrightCyan
	if g.s.snap.Level.Mode > 0 {
		color = core.ColorBrightMagenta
	}
	glyph := JumperChar
	if j.Motion() == JumperMotionFallDown {
		glyph, color = FallenChar, core.ColorGray
	}
	v.dst.DrawRectColor(v.rect(j.Box()), glyph, color)
}

func (g *Game) renderHUD(dst *core.Screen) {
	st, ok := g.scene.(interface {
		Point() int
		PlayRemainingMs() int
	})
	if !ok {
		return
	}
	j := g.s.snap.Jumper

	var life strings.Builder
	for i := 0; i < j.Param.MaxLife; i++ {
		if i < j.Life() {
			life.WriteRune(LifeChar)
		} else {
			life.WriteRune(LostLifeChar)
		}
	}

	dst.DrawTextColor(1, hudRow, fmt.Sprintf("SCORE %05d", st.Point()), core.ColorBrightWhite)
	dst.DrawTextColor(14, hudRow, life.String(), core.ColorBrightRed)
	right := fmt.Sprintf("STAGE %d  TIME %02d", g.s.snap.Level.Stage+1, (st.PlayRemainingMs()+999)/1000)
	dst.DrawTextColor(dst.Width()-len(right)-1, hudRow, right, core.ColorBrightWhite)
}

// blink reports whether blinking text is shown this frame.
func (g *Game) blink(periodMs int) bool {
	return (g.s.sw.NowMs()/periodMs)%2 == 0
}

func (g *Game) renderBanners(v view) {
	dst := v.dst
	text := func(y float64, s string) {
		dst.DrawTextCenteredColor(v.row(y), s, core.ColorBrightWhite)
	}
	modeTitle := g.s.design.ModeTitle(g.s.snap.Level)

	switch sc := g.scene.(type) {
	case *opening:
		if sc.showTitle {
			text(sc.title.pos, modeTitle)
		}
	case *title:
		if !sc.showRanking {
			text(titleY, modeTitle)
		} else {
			for i, s := range sc.Ranking() {
				line := fmt.Sprintf("%d. %05d  STAGE %d  %s", i+1, s.Point, s.Level.Stage+1, s.CreatedAt.Format("2006-01-02"))
				text(sc.ranking.pos+float64(i)*v.scaleY, line)
			}
		}
		period := blinkPeriodMs
		if sc.waitStart {
			period = 120
		}
		if sc.showStart && g.blink(period) {
			text(subtitleY, "PRESS ENTER")
		}
	case *ready:
		switch sc.describe {
		case describeStage:
			text(titleY, fmt.Sprintf("STAGE %d", g.s.snap.Level.Stage+1))
		case describeReady:
			text(titleY, "READY")
		}
		if n := sc.Countdown(); n > 0 {
			text(subtitleY, fmt.Sprintf("%d", n))
		}
	case *pause:
		if g.blink(1000) {
			text(titleY, "PAUSE")
		}
	case *gameOver:
		if sc.showGameOver {
			text(titleY, "GAME OVER")
		}
		if sc.showGameEnd && g.blink(1000) {
			text(subtitleY, "PRESS ENTER")
		}
	case *stageClear:
		if sc.showClear {
			text(titleY, "STAGE CLEAR")
			if sc.bonus > 0 {
				text(titleY+v.scaleY, fmt.Sprintf("LIFE BONUS %d", sc.bonus))
			}
		}
		if next, ok := sc.Next(); sc.showNext && ok {
			text(subtitleY, fmt.Sprintf("NEXT STAGE %d", next.Stage+1))
		}
	case *gameClear:
		if sc.showClear {
			text(titleY, "CONGRATULATIONS")
		}
		if sc.showThanks {
			text(subtitleY, "THANK YOU FOR PLAYING")
		}
		if sc.showBye {
			text(subtitleY+v.scaleY, "BYE")
		}
	}
}
