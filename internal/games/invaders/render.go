package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/sim"
)

// Visual characters for rendering
const (
	PlayerChar  = '█'
	InvaderChar = '▓'
)

// Render draws the arena, HUD and any overlay to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		drawCenteredMessage(dst, "WINDOW TOO SMALL",
			fmt.Sprintf("Need at least %dx%d", MinCols, MinRows))
		return
	}
	if g.sim == nil {
		msg := "no simulation"
		if g.err != nil {
			msg = g.err.Error()
		}
		drawCenteredMessage(dst, "CANNOT START", msg)
		return
	}

	state := g.sim.State()
	if state != sim.StateLost {
		g.drawEntities(dst)
	}
	g.drawHUD(dst)

	switch {
	case state == sim.StateWon:
		drawCenteredMessage(dst, "YOU WIN",
			fmt.Sprintf("Ate %d invaders  |  Press R to restart", g.sim.Eaten()))
	case state == sim.StateLost:
		drawCenteredMessage(dst, "YOU LOST",
			fmt.Sprintf("Ate %d invaders  |  Press R to restart", g.sim.Eaten()))
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawEntities paints every live entity in simulation order, clipped to
// the area below the HUD.
func (g *Game) drawEntities(dst *core.Screen) {
	hud := g.cfg.Arena.HUDRows
	cols, rows := g.arenaCells()
	arena := core.NewRect(0, hud, cols, rows)

	playerArea := 0.0
	if p, ok := g.sim.Player(); ok {
		playerArea = p.Area()
	}

	for _, e := range g.sim.Entities() {
		r := core.CellRect(e.Box, g.cfg.Arena.UnitsPerCol, g.cfg.Arena.UnitsPerRow)
		r.Y += hud
		r = r.Intersect(arena)
		if r.Empty() {
			continue
		}
		ch, color := entityStyle(e, playerArea)
		dst.DrawRect(r, ch, color)
	}
}

// entityStyle picks the glyph and color for an entity. Invaders the
// player cannot eat are drawn red.
func entityStyle(e sim.Entity, playerArea float64) (rune, core.Color) {
	switch e.Kind {
	case sim.KindPlayer:
		return PlayerChar, core.ColorGray
	case sim.KindInvader:
		if e.Area() >= playerArea {
			return InvaderChar, core.ColorRed
		}
		return InvaderChar, core.ColorWhite
	default:
		panic(fmt.Sprintf("invaders: unhandled entity kind %v", e.Kind))
	}
}

// drawHUD writes score and size on the left and the frame counter on the right.
func (g *Game) drawHUD(dst *core.Screen) {
	if g.cfg.Arena.HUDRows < 1 {
		return
	}

	size := 0.0
	if p, ok := g.sim.Player(); ok {
		size = p.Box.Size().X
	}
	left := fmt.Sprintf(" Score: %d  Size: %.0f  Invaders: %d", g.sim.Eaten(), size, g.sim.Invaders())
	dst.DrawTextColor(0, 0, left, core.ColorBrightWhite)

	frame := fmt.Sprintf("%d ", g.sim.FrameCount())
	dst.DrawTextColor(dst.Width()-len(frame), 0, frame, core.ColorYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(runeLen(title), runeLen(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawTextColor(boxX+(boxW-runeLen(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-runeLen(subtitle))/2, boxY+3, subtitle)
}

func runeLen(s string) int {
	return len([]rune(s))
}
