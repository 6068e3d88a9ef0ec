package tui

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// keyHold is how long a single key press counts as held. Terminals send
// presses and auto-repeats but no releases; a repeat arriving inside this
// window keeps the action held.
const keyHold = 150 * time.Millisecond

// holdTicks converts keyHold to ticks at the given rate.
func holdTicks(tickRate int) int {
	return max(1, int(keyHold*time.Duration(tickRate)/time.Second))
}

// opposite pairs directions that cancel each other.
var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
}

// KeyState turns terminal key presses into per-tick held-key snapshots.
// Directions stay held for a few ticks after each press; other actions
// are delivered in exactly one frame.
type KeyState struct {
	hold    int
	held    map[core.Action]int // Remaining ticks per held direction
	pending map[core.Action]bool
}

// NewKeyState creates a tracker holding directions for hold ticks.
func NewKeyState(hold int) *KeyState {
	return &KeyState{
		hold:    max(1, hold),
		held:    make(map[core.Action]int),
		pending: make(map[core.Action]bool),
	}
}

// Press records a key press for the given action.
func (k *KeyState) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if opp, ok := opposite[a]; ok {
		delete(k.held, opp)
		k.held[a] = k.hold
		return
	}
	k.pending[a] = true
}

// Frame returns the actions held for this tick and ages the tracker.
func (k *KeyState) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for a, left := range k.held {
		f.Set(a)
		if left <= 1 {
			delete(k.held, a)
		} else {
			k.held[a] = left - 1
		}
	}
	for a := range k.pending {
		f.Set(a)
		delete(k.pending, a)
	}
	return f
}

// Reset releases every key.
func (k *KeyState) Reset() {
	clear(k.held)
	clear(k.pending)
}
