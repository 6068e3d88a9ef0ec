package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Kind tags an entity as the player or an invader. The set is closed;
// every switch over Kind handles both values.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindInvader
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindInvader:
		return "invader"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Input is the read-only key snapshot the simulation consumes each tick.
// core.InputFrame satisfies it.
type Input interface {
	Has(a core.Action) bool
}

// Entity is a simulated body. Identity is ID, never the slice position.
type Entity struct {
	ID       uint64
	Kind     Kind
	Box      core.Box
	Velocity core.Vec // Invaders only
}

// Area is the collision resolution metric: width * height.
func (e Entity) Area() float64 {
	return e.Box.Area()
}

// IsPlayer reports whether the entity is the player.
func (e Entity) IsPlayer() bool {
	return e.Kind == KindPlayer
}

// stepPlayer moves the player by speed along each axis with a held key.
// Left beats Right and Up beats Down when both are held.
func (e *Entity) stepPlayer(in Input, speed float64) {
	if in.Has(core.ActionLeft) {
		e.Box.Center.X -= speed
	} else if in.Has(core.ActionRight) {
		e.Box.Center.X += speed
	}

	if in.Has(core.ActionUp) {
		e.Box.Center.Y -= speed
	} else if in.Has(core.ActionDown) {
		e.Box.Center.Y += speed
	}
}

// stepInvader drifts the invader by its velocity plus jitter.
func (e *Entity) stepInvader(jitter core.Vec) {
	e.Box.Center = e.Box.Center.Add(e.Velocity).Add(jitter)
}

// absorb grows the entity by the other's full size.
func (e *Entity) absorb(other Entity) {
	e.Box.Half = e.Box.Half.Add(other.Box.Half)
}
