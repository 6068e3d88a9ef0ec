package sim

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestStepPlayer(t *testing.T) {
	tests := []struct {
		name string
		keys []core.Action
		want core.Vec
	}{
		{"idle", nil, core.Vec{X: 50, Y: 50}},
		{"left", []core.Action{core.ActionLeft}, core.Vec{X: 48, Y: 50}},
		{"right", []core.Action{core.ActionRight}, core.Vec{X: 52, Y: 50}},
		{"up", []core.Action{core.ActionUp}, core.Vec{X: 50, Y: 48}},
		{"down", []core.Action{core.ActionDown}, core.Vec{X: 50, Y: 52}},
		{"diagonal", []core.Action{core.ActionRight, core.ActionDown}, core.Vec{X: 52, Y: 52}},
		{"left beats right", []core.Action{core.ActionLeft, core.ActionRight}, core.Vec{X: 48, Y: 50}},
		{"up beats down", []core.Action{core.ActionDown, core.ActionUp}, core.Vec{X: 50, Y: 48}},
		{"fire ignored", []core.Action{core.ActionFire}, core.Vec{X: 50, Y: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entity{Kind: KindPlayer, Box: core.NewBox(50, 50, 10, 10)}
			e.stepPlayer(core.NewInputFrame(tt.keys...), 2)

			if e.Box.Center != tt.want {
				t.Errorf("center = %+v, expected %+v", e.Box.Center, tt.want)
			}
			if e.Box.Size() != (core.Vec{X: 10, Y: 10}) {
				t.Errorf("movement changed size to %+v", e.Box.Size())
			}
		})
	}
}

func TestStepInvader(t *testing.T) {
	e := Entity{
		Kind:     KindInvader,
		Box:      core.NewBox(10, 10, 6, 6),
		Velocity: core.Vec{X: -1.5, Y: 0.5},
	}

	e.stepInvader(core.Vec{})
	if e.Box.Center != (core.Vec{X: 8.5, Y: 10.5}) {
		t.Errorf("after one step center = %+v", e.Box.Center)
	}

	e.stepInvader(core.Vec{X: 0.25, Y: 0.5})
	if e.Box.Center != (core.Vec{X: 7.25, Y: 11.5}) {
		t.Errorf("jitter not applied, center = %+v", e.Box.Center)
	}
}

func TestAbsorbAddsSize(t *testing.T) {
	p := Entity{Kind: KindPlayer, Box: core.NewBox(0, 0, 10, 10)}
	p.absorb(Entity{Kind: KindInvader, Box: core.NewBox(30, 30, 6, 4)})

	if p.Box.Size() != (core.Vec{X: 16, Y: 14}) {
		t.Errorf("size after absorb = %+v, expected 16x14", p.Box.Size())
	}
	if p.Box.Center != (core.Vec{}) {
		t.Errorf("absorb moved the player to %+v", p.Box.Center)
	}
	if p.Area() != 16*14 {
		t.Errorf("Area() = %g", p.Area())
	}
}

func TestKindString(t *testing.T) {
	if KindPlayer.String() != "player" || KindInvader.String() != "invader" {
		t.Error("unexpected kind names")
	}
	if Kind(0).String() != "kind(0)" {
		t.Errorf("zero kind = %q", Kind(0).String())
	}
}
