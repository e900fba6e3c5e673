package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/square-runner/internal/config"
	"github.com/vovakirdan/square-runner/internal/platform/tui/mocks"
	"github.com/vovakirdan/square-runner/internal/storage"
)

func TestScoreboardCyclesModes(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockScoreStore(ctrl)
	gomock.InOrder(
		store.EXPECT().TopScores("runner", "normal", maxScores).Return(nil, nil),
		store.EXPECT().TopScores("runner", "hard", maxScores).Return([]storage.ScoreEntry{
			{Score: 99, Player: "bob", CreatedAt: time.Now()},
		}, nil),
		store.EXPECT().TopScores("runner", "easy", maxScores).Return(nil, nil),
		store.EXPECT().TopScores("runner", "hard", maxScores).Return(nil, nil),
	)

	m := NewScoreboardModel(store, ScoreboardConfig{
		GameID: "runner",
		Title:  "Square Runner",
		Mode:   config.DifficultyNormal,
		Width:  100,
		Height: 30,
	})
	if m.Mode() != config.DifficultyNormal {
		t.Fatalf("initial mode = %s, expected normal", m.Mode())
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty leaderboard should say so")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Mode() != config.DifficultyHard {
		t.Errorf("tab should move to hard, got %s", m.Mode())
	}
	if !strings.Contains(m.View(), "bob") {
		t.Error("hard leaderboard should list bob")
	}

	// Wraps around.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Mode() != config.DifficultyEasy {
		t.Errorf("tab should wrap to easy, got %s", m.Mode())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.Mode() != config.DifficultyHard {
		t.Errorf("shift+tab should wrap back to hard, got %s", m.Mode())
	}
}

func TestScoreboardLoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockScoreStore(ctrl)
	store.EXPECT().TopScores(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("disk gone"))

	m := NewScoreboardModel(store, ScoreboardConfig{GameID: "runner", Title: "Square Runner", Width: 60, Height: 24})

	if !strings.Contains(m.View(), "disk gone") {
		t.Error("load errors should be shown")
	}
}

func TestScoreboardBack(t *testing.T) {
	standalone := NewScoreboardModel(nil, ScoreboardConfig{Width: 80, Height: 24})
	next, cmd := standalone.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should mark going back")
	}
	if cmd == nil {
		t.Error("standalone scoreboard should quit on back")
	}

	embedded := NewScoreboardModel(nil, ScoreboardConfig{Width: 80, Height: 24, Embedded: true})
	next, cmd = embedded.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should mark going back")
	}
	if cmd != nil {
		t.Error("embedded scoreboard should leave the program running")
	}
}
