package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

var playArea = sim.Bounds{Width: 288, Height: 512}

func TestProjectionExactFit(t *testing.T) {
	// 288/36 = 8 units per column, 512/(2*32) = 8 units per half row.
	p := newProjection(playArea, core.NewRect(0, 0, 36, 32))

	if p.Area() != core.NewRect(0, 0, 36, 32) {
		t.Fatalf("Area() = %+v", p.Area())
	}

	tests := []struct {
		name  string
		world core.Vec2
		x, y  int
	}{
		{"origin", core.Vec2{}, 18, 16},
		{"top left", core.Vec2{X: -144, Y: 256}, 0, 0},
		{"bottom right", core.Vec2{X: 143.9, Y: -255.9}, 35, 31},
		{"y up", core.Vec2{Y: 17}, 18, 14},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := p.Point(tc.world)
			if x != tc.x || y != tc.y {
				t.Errorf("Point(%v) = (%d, %d), expected (%d, %d)", tc.world, x, y, tc.x, tc.y)
			}
		})
	}
}

func TestProjectionBox(t *testing.T) {
	p := newProjection(playArea, core.NewRect(0, 0, 36, 32))

	actor := core.NewBox(core.Vec2{}, core.Vec2{X: 34, Y: 24})
	if got := p.Box(actor); got != core.NewRect(15, 15, 6, 2) {
		t.Errorf("Box(actor) = %+v, expected {15 15 6 2}", got)
	}

	// An obstacle hanging off the top is clipped to the area.
	upper := core.NewBox(core.Vec2{X: 0, Y: 300}, core.Vec2{X: 52, Y: 320})
	got := p.Box(upper)
	if got.Y != 0 || got.Bottom() > 32 {
		t.Errorf("Box(upper) = %+v should be clipped to the area", got)
	}

	// Entirely outside: empty.
	gone := core.NewBox(core.Vec2{X: 400, Y: 0}, core.Vec2{X: 52, Y: 320})
	if r := p.Box(gone); !r.Empty() {
		t.Errorf("Box(offscreen) = %+v, expected empty", r)
	}
}

func TestProjectionKeepsAspectAndCenters(t *testing.T) {
	p := newProjection(playArea, core.NewRect(0, 1, 120, 30))
	a := p.Area()

	if a.H != 30 {
		t.Errorf("a tall play area should use the full height, got %d rows", a.H)
	}
	// 512/(2*30) units per column -> 288/8.533 ~ 34 columns.
	if a.W < 33 || a.W > 35 {
		t.Errorf("width = %d, expected about 34", a.W)
	}
	left, right := a.X, 120-a.Right()
	if left-right > 1 || right-left > 1 {
		t.Errorf("area should be centered, margins %d and %d", left, right)
	}
}

func TestDrawWorldPhases(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	s := sim.New(cfg, 1)
	screen := core.NewScreen(60, 30)

	drawWorld(screen, s.Snapshot(), overlay{})
	if !strings.Contains(screen.String(), "press SPACE to start") {
		t.Error("main menu should prompt to start")
	}

	s.Tick(0, core.FrameOf(core.ActionStart))
	drawWorld(screen, s.Snapshot(), overlay{Best: 7})
	out := screen.String()
	if !strings.Contains(out, "SCORE 0   BEST 7") {
		t.Errorf("HUD missing, first row = %q", screen.Row(0))
	}
	if !strings.ContainsRune(out, '●') {
		t.Error("actor should be drawn while playing")
	}

	for s.Phase() == sim.PhasePlaying {
		s.Tick(0.1, core.NewInputFrame())
	}
	drawWorld(screen, s.Snapshot(), overlay{Caption: "FELL"})
	out = screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "FELL") {
		t.Error("game over overlay should show its caption")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorGreen)

	out := RenderScreen(s)
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Errorf("expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() lost %q", want)
		}
	}
}

func TestCaptionFor(t *testing.T) {
	if captionFor(sim.TriggerCollision) != "HIT" {
		t.Error("collision should read HIT")
	}
	if captionFor(sim.TriggerOutOfBounds) != "FELL" {
		t.Error("out of bounds should read FELL")
	}
}
