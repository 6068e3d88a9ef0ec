package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// recordingGame remembers what the model fed it.
type recordingGame struct {
	resets   []core.RuntimeConfig
	frames   []core.InputFrame
	gameOver bool
}

func (g *recordingGame) ID() string    { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }

func (g *recordingGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
	g.gameOver = false
}

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.State()}
}

func (g *recordingGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "ARENA")
}

func (g *recordingGame) State() core.GameState {
	return core.GameState{GameOver: g.gameOver}
}

func (g *recordingGame) lastFrame() core.InputFrame {
	return g.frames[len(g.frames)-1]
}

func newTestModel(g *recordingGame) Model {
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 12, TickRate: 60, Seed: 5}, nil)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelReservesFooterRow(t *testing.T) {
	g := &recordingGame{}
	newTestModel(g)

	if len(g.resets) != 1 {
		t.Fatalf("expected one reset, got %d", len(g.resets))
	}
	if rc := g.resets[0]; rc.ScreenW != 80 || rc.ScreenH != 11 || rc.Seed != 5 {
		t.Errorf("game runtime config = %+v", rc)
	}
}

func TestModelHeldKeysReachGame(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, runeKey('w'))
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	f := g.lastFrame()
	if !f.Has(core.ActionLeft) || !f.Has(core.ActionUp) {
		t.Errorf("frame = %v, expected left and up", f.Actions)
	}

	// Still held on the following tick without a new press
	m, _ = update(t, m, TickMsg{})
	if !g.lastFrame().Has(core.ActionLeft) {
		t.Error("left should remain held between key repeats")
	}
	_ = m
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg{})
	if g.lastFrame().Has(core.ActionRestart) || len(g.resets) != 1 {
		t.Fatal("restart should be ignored while running")
	}

	g.gameOver = true
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg{})

	if len(g.resets) != 2 {
		t.Fatalf("expected a restart, resets = %d", len(g.resets))
	}
	if g.resets[1].Seed != 5 {
		t.Errorf("fixed seed not replayed: %d", g.resets[1].Seed)
	}
	_ = m
}

func TestModelQuitAndBack(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		back bool
	}{
		{"quit", runeKey('q'), false},
		{"back", tea.KeyMsg{Type: tea.KeyEsc}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(&recordingGame{})
			m, cmd := update(t, m, tt.msg)

			if cmd == nil || !m.quitting {
				t.Fatal("expected the program to quit")
			}
			if m.back != tt.back {
				t.Errorf("back = %v, expected %v", m.back, tt.back)
			}
			if m.View() != "" {
				t.Error("view should be empty after quitting")
			}
		})
	}
}

func TestModelResize(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	if len(g.resets) != 2 {
		t.Fatalf("resize should reset a running game, resets = %d", len(g.resets))
	}
	if rc := g.resets[1]; rc.ScreenW != 60 || rc.ScreenH != 19 {
		t.Errorf("resized runtime config = %+v", rc)
	}
	if m.screen.Width() != 60 || m.screen.Height() != 19 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&recordingGame{})
	out := m.View()

	lines := strings.Split(out, "\n")
	if len(lines) != 12 {
		t.Fatalf("view has %d lines, expected 12", len(lines))
	}
	if !strings.Contains(lines[0], "ARENA") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[11], "move") || !strings.Contains(lines[11], "quit") {
		t.Errorf("footer = %q, expected help", lines[11])
	}

	m.setStatus("saved /tmp/x.txt", false)
	if !strings.Contains(m.View(), "saved /tmp/x.txt") {
		t.Error("status should replace the help line")
	}
}
