package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// cellAspect is how many times taller than wide a terminal cell is.
const cellAspect = 2.0

// projection maps world coordinates (origin at the center, y up) onto a
// rectangle of terminal cells, preserving the aspect ratio of the play area.
type projection struct {
	bounds sim.Bounds
	area   core.Rect // Cells covered by the play area
	scale  float64   // World units per column
}

// newProjection fits the play area into the available cells, centered.
func newProjection(b sim.Bounds, avail core.Rect) projection {
	if avail.W < 1 || avail.H < 1 {
		return projection{bounds: b, scale: 1}
	}
	scale := math.Max(b.Width/float64(avail.W), b.Height/(cellAspect*float64(avail.H)))
	cols := core.Clamp(int(math.Round(b.Width/scale)), 1, avail.W)
	rows := core.Clamp(int(math.Round(b.Height/(cellAspect*scale))), 1, avail.H)

	return projection{
		bounds: b,
		area:   core.NewRect(avail.X+(avail.W-cols)/2, avail.Y+(avail.H-rows)/2, cols, rows),
		scale:  scale,
	}
}

// Area returns the cells covered by the play area.
func (p projection) Area() core.Rect {
	return p.area
}

// Point returns the cell containing a world position.
func (p projection) Point(v core.Vec2) (x, y int) {
	col := int(math.Floor((v.X + p.bounds.HalfWidth()) / p.scale))
	row := int(math.Floor((p.bounds.HalfHeight() - v.Y) / (cellAspect * p.scale)))
	return p.area.X + col, p.area.Y + row
}

// Box returns the cells touched by a world box, clipped to the play area.
func (p projection) Box(b core.Box) core.Rect {
	lo, hi := b.Min(), b.Max()
	x0 := math.Floor((lo.X + p.bounds.HalfWidth()) / p.scale)
	x1 := math.Ceil((hi.X + p.bounds.HalfWidth()) / p.scale)
	y0 := math.Floor((p.bounds.HalfHeight() - hi.Y) / (cellAspect * p.scale))
	y1 := math.Ceil((p.bounds.HalfHeight() - lo.Y) / (cellAspect * p.scale))

	r := core.NewRect(p.area.X+int(x0), p.area.Y+int(y0), int(x1-x0), int(y1-y0))
	return r.Clip(p.area)
}

// wingGlyphs is the actor's wing per animation frame.
var wingGlyphs = []rune{'^', '-', 'v'}

// overlay carries frontend-only state drawn on top of the world.
type overlay struct {
	Best     int
	Flash    bool   // Score was just increased
	Caption  string // Why the last attempt ended
	Paused   bool
	Playback string // Replay progress, empty when playing live
}

// drawWorld renders a snapshot into the screen below a one-line HUD.
func drawWorld(s *core.Screen, snap sim.Snapshot, ov overlay) {
	s.Clear()
	avail := core.NewRect(0, 1, s.Width(), s.Height()-1)
	proj := newProjection(snap.Bounds, avail)
	area := proj.Area()

	for _, o := range snap.Obstacles {
		r := proj.Box(o.Box())
		s.FillRect(r, '█', core.ColorGreen)
		// Cap the end facing the gap.
		capY := r.Y
		if o.Member == sim.MemberUpper {
			capY = r.Bottom() - 1
		}
		if !r.Empty() {
			s.DrawHLine(r.X, capY, r.W, '▀', core.ColorBrightGreen)
		}
	}

	if snap.Phase != sim.PhaseMainMenu {
		actor := core.NewBox(snap.Actor.Pos, snap.Actor.Size)
		r := proj.Box(actor)
		s.FillRect(r, '●', core.ColorBrightYellow)
		if !r.Empty() {
			wing := wingGlyphs[snap.Actor.WingFrame%len(wingGlyphs)]
			s.SetColored(r.X, r.Y+r.H/2, wing, core.ColorOrange)
		}
	}

	// Frame the play area when there is room for it.
	if area.X > 0 && area.Right() < s.Width() {
		for y := area.Y; y < area.Bottom(); y++ {
			s.SetColored(area.X-1, y, '│', core.ColorGray)
			s.SetColored(area.Right(), y, '│', core.ColorGray)
		}
	}

	scoreColor := core.ColorBrightWhite
	if ov.Flash {
		scoreColor = core.ColorBrightYellow
	}
	s.DrawTextCentered(0, fmt.Sprintf("SCORE %d   BEST %d", snap.Score, max(ov.Best, snap.Score)), scoreColor)

	mid := area.Y + area.H/2
	switch snap.Phase {
	case sim.PhaseMainMenu:
		s.DrawTextCentered(mid-2, "F L A P P Y", core.ColorBrightCyan)
		s.DrawTextCentered(mid, "press SPACE to start", core.ColorWhite)
	case sim.PhaseGameOver:
		s.DrawTextCentered(mid-2, "GAME OVER", core.ColorBrightRed)
		if ov.Caption != "" {
			s.DrawTextCentered(mid-1, ov.Caption, core.ColorRed)
		}
		s.DrawTextCentered(mid+1, fmt.Sprintf("score %d", snap.Score), core.ColorWhite)
		s.DrawTextCentered(mid+2, "press ENTER to restart", core.ColorGray)
	}

	if ov.Paused {
		s.DrawTextCentered(mid+4, "PAUSED", core.ColorBrightMagenta)
	}
	if ov.Playback != "" {
		s.DrawTextColored(area.X, area.Bottom()-1, ov.Playback, core.ColorCyan)
	}
}
