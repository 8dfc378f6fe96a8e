package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "pong.db"))
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, m := range []storage.Match{
		{Player: "alice", ScoreLeft: 3, ScoreRight: 1, Duration: 42 * time.Second},
		{Player: "bob", ScoreLeft: 0, ScoreRight: 2},
		{Player: "alice", ScoreLeft: 5, ScoreRight: 5},
	} {
		if _, err := store.SaveMatch(m); err != nil {
			t.Fatalf("SaveMatch() error = %v", err)
		}
	}
	return store
}

func TestHistoryLoadsAllMatches(t *testing.T) {
	m := NewHistoryModel(seededStore(t), "alice", 100, 30)

	if len(m.matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(m.matches))
	}
	if m.stats == nil || m.stats.Matches != 2 {
		t.Errorf("stats = %+v, want 2 matches for alice", m.stats)
	}

	view := m.View()
	if !strings.Contains(view, "all players") {
		t.Error("title should name the all filter")
	}
	if !strings.Contains(view, "alice: 2 matches") {
		t.Error("view should show the player's stats")
	}
}

func TestHistoryFilterToggle(t *testing.T) {
	m := NewHistoryModel(seededStore(t), "alice", 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if m.filter != filterPlayer {
		t.Fatal("tab should switch to the player filter")
	}
	if len(m.matches) != 2 {
		t.Errorf("got %d matches for alice, want 2", len(m.matches))
	}
	for _, mt := range m.matches {
		if mt.Player != "alice" {
			t.Errorf("filtered list contains %s", mt.Player)
		}
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if m.filter != filterAll || len(m.matches) != 3 {
		t.Error("second tab should return to all matches")
	}
}

func TestHistoryWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, "", 80, 24)

	if !strings.Contains(m.View(), "No matches recorded yet") {
		t.Error("empty history should say so")
	}

	// No player: the filter stays on all.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(HistoryModel).filter != filterAll {
		t.Error("filter should stay on all without a player")
	}
}

func TestHistoryQuit(t *testing.T) {
	m := NewHistoryModel(nil, "", 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(HistoryModel).View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestMatchRow(t *testing.T) {
	row := MatchRow(storage.Match{
		Player:     "carol",
		ScoreLeft:  4,
		ScoreRight: 7,
		Duration:   95*time.Second + 300*time.Millisecond,
		CreatedAt:  time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC),
	})

	want := []string{"Mar 09 14:05", "carol", "4:7", "right", "1m35s"}
	for i, w := range want {
		if row[i] != w {
			t.Errorf("column %d = %q, want %q", i, row[i], w)
		}
	}
}
