package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Mine-Sense/internal/board"
)

// hudScale is the integer upscale factor applied to status text.
const hudScale = 2

// statusHeight is the strip above the board holding the status line.
const statusHeight = 40

// HUD draws the status strip and the key legend. Text is rendered into a
// 1× buffer and blitted at hudScale so the debug font stays crisp.
type HUD struct {
	buf   *ebiten.Image
	width int
	flash string // transient message, e.g. clipboard result
	ttl   int    // frames left for flash
}

func NewHUD(width int) *HUD {
	return &HUD{
		buf:   ebiten.NewImage(width/hudScale, statusHeight/hudScale),
		width: width,
	}
}

// Flash shows msg in the legend line for frames updates.
func (h *HUD) Flash(msg string, frames int) {
	h.flash, h.ttl = msg, frames
}

// Tick ages the flash message; call once per Update.
func (h *HUD) Tick() {
	if h.ttl > 0 {
		h.ttl--
		if h.ttl == 0 {
			h.flash = ""
		}
	}
}

func stateColor(st board.State) color.RGBA {
	switch st {
	case board.StateWon:
		return color.RGBA{R: 40, G: 120, B: 40, A: 255}
	case board.StateLost:
		return color.RGBA{R: 140, G: 30, B: 30, A: 255}
	default:
		return color.RGBA{R: 28, G: 28, B: 34, A: 255}
	}
}

// Draw renders status at the top of screen and the legend below the board.
func (h *HUD) Draw(screen *ebiten.Image, st Status, help bool, legendY int) {
	h.buf.Clear()
	bw, bh := h.buf.Bounds().Dx(), h.buf.Bounds().Dy()
	vector.FillRect(h.buf, 0, 0, float32(bw), float32(bh), stateColor(st.State), false)
	ebitenutil.DebugPrintAt(h.buf, st.Text(), 6, 2)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(hudScale, hudScale)
	screen.DrawImage(h.buf, opts)

	legend := "L-click reveal  R-click flag  N new  H help"
	if help {
		legend += "*"
	}
	legend += "  C copy"
	if d := st.DebugText(); d != "" {
		legend += "  |  " + d
	}
	if h.flash != "" {
		legend += "  |  " + h.flash
	}
	ebitenutil.DebugPrintAt(screen, legend, borderWidth, legendY)
}
