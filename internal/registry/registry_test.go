package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string               { return g.id }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Render(*core.Screen)      {}
func (g *stubGame) State() core.GameState    { return g.state }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state}
}

func TestRegisterAndCreate(t *testing.T) {
	var got Options
	Register(GameInfo{ID: "zz_stub", Title: "Stub", Description: "test game"}, func(opts Options) (Game, error) {
		got = opts
		return &stubGame{id: "zz_stub"}, nil
	})

	if !Exists("zz_stub") {
		t.Fatal("registered game does not exist")
	}

	g, err := Create("zz_stub", Options{Preset: "hard"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID() = %q", g.ID())
	}
	if got.Preset != "hard" {
		t.Errorf("options not passed through: %+v", got)
	}
	if got.Logger == nil {
		t.Error("Create should fill in a logger")
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = info.Title == "Stub" && info.Description == "test game"
		}
	}
	if !found {
		t.Error("List() missing registered game info")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(Options) (Game, error) { return &stubGame{}, nil }
	Register(GameInfo{ID: "zz_dup"}, f)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(GameInfo{ID: "zz_dup"}, f)
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("zz_missing", Options{}); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(missing) error = %v", err)
	}

	boom := errors.New("boom")
	Register(GameInfo{ID: "zz_broken"}, func(Options) (Game, error) { return nil, boom })
	if _, err := Create("zz_broken", Options{}); !errors.Is(err, boom) {
		t.Errorf("factory error not wrapped: %v", err)
	}
}

func TestListSorted(t *testing.T) {
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
