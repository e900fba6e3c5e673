package runner

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vovakirdan/square-runner/internal/config"
	"github.com/vovakirdan/square-runner/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()

	g, err := New(config.DefaultRunnerConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func TestGameJumpInput(t *testing.T) {
	g := newTestGame(t, 1)

	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	g.Step(in)

	if p := g.Session().Player(); !p.IsJumping || p.Y >= g.Session().GroundY() {
		t.Errorf("jump input should launch the player, got %+v", p)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, 1)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	result := g.Step(pause)
	if !result.State.Paused {
		t.Fatal("pause action should pause the game")
	}

	ticks := g.Session().Ticks()
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Session().Ticks() != ticks {
		t.Error("paused game should not advance")
	}

	result = g.Step(pause)
	if result.State.Paused {
		t.Error("second pause action should resume")
	}
	if g.Session().Ticks() != ticks+1 {
		t.Errorf("resume tick should step once, ticks = %d", g.Session().Ticks())
	}
}

func TestGameStateReportsGameOver(t *testing.T) {
	g := newTestGame(t, 2)

	var state core.GameState
	for i := 0; i < 1000 && !state.GameOver; i++ {
		state = g.Step(core.NewInputFrame()).State
	}

	if !state.GameOver {
		t.Fatal("game should end without jumping")
	}
	if state.Score != g.Session().Score() {
		t.Errorf("State().Score = %d, session score %d", state.Score, g.Session().Score())
	}
}

func TestGameResetReseeds(t *testing.T) {
	g := newTestGame(t, 1)
	first := g.Session().Obstacles()

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	again := g.Session().Obstacles()

	for i := range first {
		if first[i] != again[i] {
			t.Fatalf("same seed should reproduce obstacle %d: %+v vs %+v", i, first[i], again[i])
		}
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Player.Size = 0

	if _, err := New(cfg); err == nil {
		t.Error("New should reject an invalid config")
	}
}

func TestRenderPlayerAndGround(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	// 800x400 world on 80x23 cells below the HUD: player spans cols 10-13, rows 18-20.
	for y := 18; y <= 20; y++ {
		for x := 10; x <= 13; x++ {
			if c := screen.GetCell(x, y); c.Rune != PlayerChar || c.Color != core.ColorOrange {
				t.Errorf("expected player at (%d, %d), got %+v", x, y, c)
			}
		}
	}
	if screen.Get(14, 19) == PlayerChar {
		t.Error("player should not extend past col 13")
	}

	if screen.Get(0, 21) != GroundTopChar {
		t.Errorf("expected ground line on row 21, got %q", screen.Get(0, 21))
	}
	if screen.Get(0, 23) != GroundChar {
		t.Errorf("expected ground fill on row 23, got %q", screen.Get(0, 23))
	}

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD should show score, row 0 = %q", screen.Row(0))
	}
}

func TestRenderObstacleShapes(t *testing.T) {
	g := newTestGame(t, 1)
	cfg := g.cfg
	groundLine := cfg.World.GroundLine()

	g.session.obstacles = []Obstacle{
		MakeBlock(cfg.Obstacles, 300, groundLine),
		MakeSpike(cfg.Obstacles, 500, groundLine),
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Block: cols 30-32, rows 17-20 with a highlighted top row.
	if c := screen.GetCell(30, 17); c.Rune != BlockTopChar || c.Color != core.ColorTeal {
		t.Errorf("expected block highlight at (30, 17), got %+v", c)
	}
	if c := screen.GetCell(31, 20); c.Rune != BlockChar || c.Color != core.ColorBlue {
		t.Errorf("expected block body at (31, 20), got %+v", c)
	}

	// Spike: cols 50-52, rows 19-20, widening toward the base.
	if c := screen.GetCell(50, 20); c.Rune != SpikeChar || c.Color != core.ColorRed {
		t.Errorf("expected spike base at (50, 20), got %+v", c)
	}
	if screen.Get(50, 19) == SpikeChar {
		t.Error("spike tip row should be narrower than the base")
	}
	if screen.Get(51, 19) != SpikeChar {
		t.Errorf("expected spike tip at (51, 19), got %q", screen.Get(51, 19))
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(t, 2)
	for i := 0; i < 1000 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over overlay should be drawn")
	}
	if !strings.Contains(out, fmt.Sprintf("Score: %d", g.State().Score)) {
		t.Error("game over overlay should show the final score")
	}
}
