package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// borderWidth is the pixel gap between the window edge and the board.
const borderWidth = 24

// legendHeight is the strip under the board holding the key legend.
const legendHeight = 20

// Game adapts a Controller to ebiten's Update/Draw loop. ebiten calls both on
// one goroutine, which is the only owner of the board.
type Game struct {
	width   int
	height  int
	offX    int // board left edge in window pixels
	offY    int // board top edge in window pixels
	boardPx int

	ctrl     *Controller
	renderer *Renderer
	hud      *HUD
	panel    *EventPanel
}

// New validates cfg and builds the window layout, controller and views.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	boardPx := cfg.BoardPixels
	g := &Game{
		width:   borderWidth + boardPx + borderWidth + panelWidth,
		height:  statusHeight + borderWidth + boardPx + legendHeight + borderWidth,
		offX:    borderWidth,
		offY:    statusHeight + borderWidth,
		boardPx: boardPx,
		panel:   NewEventPanel(),
	}
	geom := Geometry{
		OriginX: float64(g.offX),
		OriginY: float64(g.offY),
		CellW:   cfg.CellPixels(),
		CellH:   cfg.CellPixels(),
	}
	g.ctrl = NewController(cfg, geom)
	g.renderer = NewRenderer(geom)
	g.hud = NewHUD(g.width - panelWidth)
	Log.WithFields(cfg.Fields()).Info("game created")
	return g, nil
}

// WindowSize is the window size the layout was built for.
func (g *Game) WindowSize() (int, int) {
	return g.width, g.height
}

func (g *Game) Update() error {
	g.handleInput()
	g.panel.Sync(g.ctrl.Events())
	g.hud.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 12, B: 14, A: 255})

	g.renderer.DrawBoard(screen, g.ctrl.Board(), g.ctrl.HelpTargets())

	// Board frame.
	ox, oy := float32(g.offX), float32(g.offY)
	bp := float32(g.boardPx)
	vector.StrokeRect(screen, ox-2, oy-2, bp+4, bp+4, 2.0, color.RGBA{R: 90, G: 90, B: 100, A: 255}, false)

	g.hud.Draw(screen, g.ctrl.Status(), g.ctrl.HelpMode(), g.offY+g.boardPx+6)
	g.panel.Draw(screen, g.width-panelWidth, g.height)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
