package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// flashFrames is how long a HUD flash message stays up (60 updates/s).
const flashFrames = 120

// handleInput polls pointer and keyboard state once per Update and forwards
// edge-triggered events to the controller. Each event maps to exactly one
// controller call.
func (g *Game) handleInput() {
	mx, my := ebiten.CursorPosition()
	px, py := float64(mx), float64(my)
	g.ctrl.Hover(px, py)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctrl.Click(px, py)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.ctrl.RightClick(px, py)
	}

	// Touch: a tap reveals. Flagging needs a mouse.
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		g.ctrl.Click(float64(tx), float64(ty))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctrl.Reset()
		g.panel.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		if g.ctrl.ToggleHelp() {
			g.hud.Flash("help on", flashFrames)
		} else {
			g.hud.Flash("help off", flashFrames)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := g.ctrl.CopyDebugReport(); err != nil {
			g.hud.Flash("copy failed", flashFrames)
		} else {
			g.hud.Flash("report copied", flashFrames)
		}
	}
}
