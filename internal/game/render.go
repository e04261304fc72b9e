package game

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Mine-Sense/internal/board"
)

// CellKind is the visual variant a cell renders as.
type CellKind uint8

const (
	KindHidden CellKind = iota
	KindFlagged
	KindNumber // revealed safe cell; Value may be 0 (no glyph)
	KindMine   // revealed mine, or any mine once the game is lost
)

// CellView is everything the renderer needs to draw one cell.
type CellView struct {
	Kind     CellKind
	Value    int
	Exploded bool // the mine the player actually revealed
}

// ViewOf classifies c for drawing. With disclose set (game lost) every mine
// shows.
func ViewOf(c *board.Cell, disclose bool) CellView {
	switch {
	case c.IsMine() && c.IsRevealed():
		return CellView{Kind: KindMine, Exploded: true}
	case c.IsMine() && disclose:
		return CellView{Kind: KindMine}
	case c.IsRevealed():
		return CellView{Kind: KindNumber, Value: c.AdjacentMines()}
	case c.IsFlagged():
		return CellView{Kind: KindFlagged}
	default:
		return CellView{Kind: KindHidden}
	}
}

var (
	colBgRevealed = color.RGBA{R: 211, G: 211, B: 211, A: 255} // lightgray
	colBgHidden   = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	colGrid       = color.RGBA{A: 255}
	colHelp       = color.RGBA{R: 255, G: 255, A: 255}
	colFlag       = color.RGBA{R: 230, G: 40, B: 40, A: 255}
	colPole       = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colMine       = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	colMineLost   = color.RGBA{R: 180, G: 180, B: 180, A: 255}
	colExploded   = color.RGBA{R: 255, G: 60, B: 30, A: 255}
)

// digitColor follows the classic palette: 1 blue, 2 green, 3+ red.
func digitColor(v int) color.RGBA {
	switch {
	case v == 1:
		return color.RGBA{B: 255, A: 255}
	case v == 2:
		return color.RGBA{G: 128, A: 255}
	default:
		return color.RGBA{R: 255, A: 255}
	}
}

// Renderer draws a board. It carries its own geometry and font face instead
// of reaching for package state, so several can coexist.
type Renderer struct {
	geom Geometry
	face text.Face
}

func NewRenderer(geom Geometry) *Renderer {
	return &Renderer{
		geom: geom,
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// DrawBoard draws every cell, then the help outlines on top.
func (r *Renderer) DrawBoard(screen *ebiten.Image, b *board.Board, help []*board.Cell) {
	disclose := b.State() == board.StateLost
	for _, c := range b.Cells() {
		r.drawCell(screen, c.Bounds(), ViewOf(c, disclose))
	}
	for _, c := range help {
		rc := c.Bounds()
		vector.StrokeRect(screen, float32(rc.X+2), float32(rc.Y+2), float32(rc.W-4), float32(rc.H-4), 2, colHelp, false)
	}
}

// drawCell is the single draw path for a cell; the view's kind selects the
// background and glyph.
func (r *Renderer) drawCell(screen *ebiten.Image, rc board.Rect, v CellView) {
	x, y := float32(rc.X), float32(rc.Y)
	w, h := float32(rc.W), float32(rc.H)
	cx, cy := x+w/2, y+h/2

	bg := colBgHidden
	if v.Kind == KindNumber {
		bg = colBgRevealed
	}
	vector.FillRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, colGrid, false)

	switch v.Kind {
	case KindHidden:
		// background only
	case KindFlagged:
		pole := h * 0.5
		vector.StrokeLine(screen, cx, cy-pole/2, cx, cy+pole/2, 2, colPole, false)
		vector.FillRect(screen, cx-w*0.22, cy-pole/2, w*0.22, pole*0.45, colFlag, false)
	case KindNumber:
		if v.Value > 0 {
			r.drawGlyph(screen, strconv.Itoa(v.Value), rc, digitColor(v.Value))
		}
	case KindMine:
		col := colMineLost
		if v.Exploded {
			col = colExploded
		}
		rad := min(w, h) * 0.25
		vector.FillCircle(screen, cx, cy, rad, col, true)
		vector.StrokeLine(screen, cx-rad*1.4, cy, cx+rad*1.4, cy, 2, col, true)
		vector.StrokeLine(screen, cx, cy-rad*1.4, cx, cy+rad*1.4, 2, col, true)
		vector.FillCircle(screen, cx-rad*0.35, cy-rad*0.35, rad*0.2, colMine, true)
	}
}

// drawGlyph centres s in rc, scaled to roughly 70% of the cell height.
func (r *Renderer) drawGlyph(screen *ebiten.Image, s string, rc board.Rect, clr color.Color) {
	tw, th := text.Measure(s, r.face, 0)
	if tw == 0 || th == 0 {
		return
	}
	scale := rc.H * 0.7 / th
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(rc.X+(rc.W-tw*scale)/2, rc.Y+(rc.H-th*scale)/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, r.face, op)
}
