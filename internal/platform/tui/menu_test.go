package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyfire/internal/config"
	"github.com/vovakirdan/skyfire/internal/storage"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, expected MenuModel", next)
	}
	return model, cmd
}

func TestMenuCyclesPresets(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), config.DifficultyHard)
	if m.Preset() != config.DifficultyHard {
		t.Fatalf("Preset = %s, expected hard", m.Preset())
	}

	expected := []config.DifficultyPreset{config.DifficultyFixed, config.DifficultyEasy, config.DifficultyNormal}
	for _, want := range expected {
		m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyRight})
		if m.Preset() != want {
			t.Errorf("Preset = %s, expected %s", m.Preset(), want)
		}
	}

	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Preset() != config.DifficultyEasy {
		t.Errorf("Preset = %s after left, expected easy", m.Preset())
	}
}

func TestMenuChoices(t *testing.T) {
	tests := []struct {
		name     string
		downs    int
		expected MenuChoice
		quitting bool
	}{
		{"play", 0, MenuChoicePlay, false},
		{"scores", 1, MenuChoiceScores, false},
		{"quit", 2, MenuChoiceQuit, true},
		{"cursor stops at the last item", 5, MenuChoiceQuit, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMenuModel(nil, testRuntime(), config.DifficultyNormal)
			for i := 0; i < tc.downs; i++ {
				m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
			}
			if m.Choice() != MenuChoiceNone {
				t.Fatal("choice made before select")
			}

			m, cmd := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			if m.Choice() != tc.expected {
				t.Errorf("Choice = %d, expected %d", m.Choice(), tc.expected)
			}
			if m.IsQuitting() != tc.quitting {
				t.Errorf("IsQuitting = %v, expected %v", m.IsQuitting(), tc.quitting)
			}
			if !isQuit(cmd) {
				t.Error("select should end the menu program")
			}
		})
	}
}

func TestMenuViewShowsBestPerPreset(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(storage.ScoreEntry{Mode: "hard", Score: 700}); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}

	m := NewMenuModel(store, testRuntime(), config.DifficultyHard)
	view := m.View()
	for _, want := range []string{"S K Y F I R E", "Difficulty: < hard >", "best 700", "High Scores"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if !strings.Contains(m.View(), "best 0") {
		t.Error("normal preset should show best 0")
	}
}

func TestMenuTracksWindowSize(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), config.DifficultyNormal)
	m, _ = updateMenu(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	cfg := m.Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config size = %dx%d, expected 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}
