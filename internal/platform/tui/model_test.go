package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/square-runner/internal/config"
	"github.com/vovakirdan/square-runner/internal/core"
	"github.com/vovakirdan/square-runner/internal/platform/tui/mocks"
	"github.com/vovakirdan/square-runner/internal/storage"
)

// fakeGame ends after overAt steps with a fixed score.
type fakeGame struct {
	steps  int
	jumps  int
	resets int
	overAt int
	score  int
	paused bool
	over   bool
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.paused = false
	g.over = false
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	if g.over {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionJump) {
		g.jumps++
	}
	g.steps++
	if g.overAt > 0 && g.steps >= g.overAt {
		g.over = true
	}
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake frame")
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over, Paused: g.paused}
}

func newTestModel(t *testing.T, g *fakeGame, opts Options) Model {
	t.Helper()

	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, opts)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should arm the tick loop")
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, TickMsg(time.Now()))
}

func TestModelTickAppliesBufferedInput(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, runeKey('w'))
	m, cmd := tick(t, m)

	if g.jumps != 1 {
		t.Errorf("expected 1 jump, got %d", g.jumps)
	}
	if cmd == nil {
		t.Error("live game should keep ticking")
	}

	tick(t, m)
	if g.jumps != 1 {
		t.Error("input frame should be cleared after each tick")
	}
}

func TestModelStopsTickingOnGameOver(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockScoreStore(ctrl)
	store.EXPECT().SaveScore("fake", "hard", "alice", 42).Return(int64(1), nil).Times(1)

	g := &fakeGame{overAt: 2, score: 42}
	m := newTestModel(t, g, Options{Store: store, Mode: config.DifficultyHard, Player: "alice"})

	m, cmd := tick(t, m)
	if cmd == nil {
		t.Fatal("first tick should re-arm")
	}

	m, cmd = tick(t, m)
	if cmd != nil {
		t.Error("tick loop should stop after game over")
	}
	if m.Ticking() {
		t.Error("Ticking() should be false after game over")
	}
	if !m.GameState().GameOver {
		t.Error("model should see the game over state")
	}

	// A stray tick must neither step nor save again.
	tick(t, m)
	if g.steps != 2 {
		t.Errorf("stopped model should not step, steps = %d", g.steps)
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockScoreStore(ctrl) // no calls expected

	g := &fakeGame{overAt: 1}
	m := newTestModel(t, g, Options{Store: store})

	tick(t, m)
}

func TestModelRestart(t *testing.T) {
	g := &fakeGame{overAt: 1}
	m := newTestModel(t, g, Options{})

	m, _ = tick(t, m)

	// Restart is ignored while the run is live.
	live := &fakeGame{}
	lm := newTestModel(t, live, Options{})
	if _, cmd := update(t, lm, runeKey('r')); cmd != nil || live.resets != 1 {
		t.Error("restart should be ignored during a live run")
	}

	m, cmd := update(t, m, runeKey('r'))
	if cmd == nil {
		t.Fatal("restart should re-arm the tick loop")
	}
	if g.resets != 2 {
		t.Errorf("expected a second Reset, got %d", g.resets)
	}
	if m.GameState().GameOver || !m.Ticking() {
		t.Errorf("restarted model should be live and ticking, state %+v", m.GameState())
	}
}

func TestModelPauseStopsAndResumes(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, runeKey('p'))
	m, cmd := tick(t, m)
	if cmd != nil {
		t.Error("tick loop should stop while paused")
	}
	if !m.GameState().Paused {
		t.Fatal("game should be paused")
	}

	steps := g.steps
	m, cmd = update(t, m, runeKey('p'))
	if cmd == nil {
		t.Fatal("resume should re-arm the tick loop")
	}
	if m.GameState().Paused {
		t.Error("game should be running after resume")
	}
	if g.steps != steps+1 {
		t.Errorf("resume should step once, steps %d -> %d", steps, g.steps)
	}
}

func TestModelScoreboardAfterGameOver(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockScoreStore(ctrl)
	store.EXPECT().SaveScore(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
	store.EXPECT().TopScores("fake", "normal", maxScores).Return([]storage.ScoreEntry{
		{Score: 42, Player: "alice", Mode: "normal", CreatedAt: time.Now()},
	}, nil)

	g := &fakeGame{overAt: 1, score: 42}
	m := newTestModel(t, g, Options{Store: store, Player: "alice"})

	m, _ = tick(t, m)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	view := m.View()
	if !strings.Contains(view, "HIGH SCORES") || !strings.Contains(view, "alice") {
		t.Errorf("scoreboard should be shown, got:\n%s", view)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !strings.Contains(m.View(), "fake frame") {
		t.Error("esc should return to the game view")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, Options{})

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, &fakeGame{}, Options{ScreenshotDir: dir})

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 screenshot, got %d", len(entries))
	}
	if !strings.HasPrefix(entries[0].Name(), "fake_") {
		t.Errorf("unexpected screenshot name %q", entries[0].Name())
	}
}

func TestModelResize(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen should follow the window above the help row, got %dx%d", m.screen.Width(), m.screen.Height())
	}
	if g.resets != 1 {
		t.Error("resize should not restart the run")
	}
}

func TestModelHelpFollowsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockScoreStore(ctrl)
	store.EXPECT().SaveScore(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)

	m := newTestModel(t, &fakeGame{overAt: 2, score: 7}, Options{Store: store})

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 24 {
		t.Fatalf("view should fill the window, got %d lines", len(lines))
	}
	hint := lines[len(lines)-1]
	if !strings.Contains(hint, "jump") || strings.Contains(hint, "restart") {
		t.Errorf("live help should offer jump, got %q", hint)
	}

	m, _ = tick(t, m)
	m, _ = tick(t, m)
	if !m.GameState().GameOver {
		t.Fatal("fake game should be over")
	}

	lines = strings.Split(m.View(), "\n")
	hint = lines[len(lines)-1]
	if !strings.Contains(hint, "restart") || !strings.Contains(hint, "high scores") {
		t.Errorf("game over help should offer restart and scores, got %q", hint)
	}
	if strings.Contains(hint, "jump") {
		t.Errorf("game over help should not offer jump, got %q", hint)
	}
}
