package game

import (
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Garsondee/Mine-Sense/internal/board"
)

// Log is the front end's logger. Entry points configure level and output.
var Log = logrus.New()

// Geometry places the board on the drawing surface.
type Geometry struct {
	OriginX, OriginY float64
	CellW, CellH     float64
}

// Controller is the input boundary: it turns pointer positions into board
// operations and exposes the state renderers and the status display read.
// It is not safe for concurrent use; one goroutine owns it.
type Controller struct {
	cfg  Config
	geom Geometry
	now  func() time.Time

	board   *board.Board
	events  *board.EventLog
	hovered *board.Cell
	help    bool
	round   uint64 // games played; advances the seed on Reset
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithNow replaces the wall clock.
func WithNow(now func() time.Time) ControllerOption {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// NewController builds a controller and its first board.
func NewController(cfg Config, geom Geometry, opts ...ControllerOption) *Controller {
	c := &Controller{
		cfg:  cfg,
		geom: geom,
		now:  time.Now,
		help: cfg.HelpMode,
	}
	for _, o := range opts {
		o(c)
	}
	c.newBoard()
	return c
}

func (c *Controller) newBoard() {
	seed := c.cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	seed += c.round
	c.events = board.NewEventLog(c.cfg.Verbose)
	c.hovered = nil
	c.board = board.New(c.cfg.GridSize, c.cfg.MineTarget(),
		board.WithOrigin(c.geom.OriginX, c.geom.OriginY),
		board.WithCellSize(c.geom.CellW, c.geom.CellH),
		board.WithRand(rand.New(rand.NewPCG(seed, 0xc0ffee))), // #nosec G404 -- game only
		board.WithClock(c.now),
		board.WithEventLog(c.events),
	)
	Log.WithFields(logrus.Fields{
		"round": c.round,
		"seed":  seed,
		"size":  c.board.Size(),
		"mines": c.board.MineTarget(),
	}).Debug("new board")
}

// Board exposes the current board for rendering.
func (c *Controller) Board() *board.Board { return c.board }

// Events is the current board's event log.
func (c *Controller) Events() *board.EventLog { return c.events }

func (c *Controller) Config() Config     { return c.cfg }
func (c *Controller) Geometry() Geometry { return c.geom }

// Reset throws the board away and starts a fresh one with the same config.
func (c *Controller) Reset() {
	c.round++
	c.newBoard()
}

// Click handles a primary press at (px,py). The first click on a board starts
// the game on the clicked cell before revealing it. Returns whether the board
// changed.
func (c *Controller) Click(px, py float64) bool {
	before := c.board.State()
	if before.Terminal() {
		return false
	}
	cell := c.board.FindCellAt(px, py)
	if cell == nil {
		return false
	}
	if !c.board.Started() {
		c.board.StartGame(cell)
	}
	changed := c.board.Reveal(cell)
	if after := c.board.State(); after != before && after.Terminal() {
		c.logFinish(after)
	}
	return changed
}

// RightClick toggles a flag at (px,py). Flags are ignored until the game has
// started and after it ends.
func (c *Controller) RightClick(px, py float64) bool {
	if c.board.State() != board.StateInProgress {
		return false
	}
	cell := c.board.FindCellAt(px, py)
	if cell == nil {
		return false
	}
	return c.board.ToggleFlag(cell)
}

// Hover records the cell under the pointer; nil when off the board.
func (c *Controller) Hover(px, py float64) {
	c.hovered = c.board.FindCellAt(px, py)
}

// Hovered returns the cell under the pointer, or nil.
func (c *Controller) Hovered() *board.Cell { return c.hovered }

// ToggleHelp flips help mode and returns the new setting.
func (c *Controller) ToggleHelp() bool {
	c.help = !c.help
	return c.help
}

func (c *Controller) HelpMode() bool { return c.help }

// HelpTargets are the hidden neighbours of the hovered cell, outlined while
// help mode is on and the game is in progress.
func (c *Controller) HelpTargets() []*board.Cell {
	if !c.help || c.hovered == nil || c.board.State() != board.StateInProgress {
		return nil
	}
	var out []*board.Cell
	for _, n := range c.hovered.Neighbors(c.board) {
		if !n.IsRevealed() {
			out = append(out, n)
		}
	}
	return out
}

// Status snapshots the values the status display needs.
func (c *Controller) Status() Status {
	s := Status{
		ElapsedSeconds: int(c.board.Elapsed(c.now()) / time.Second),
		RemainingMines: c.board.RemainingMines(),
		State:          c.board.State(),
	}
	if c.hovered != nil {
		s.HoverX, s.HoverY, s.Hovering = c.hovered.X(), c.hovered.Y(), true
	}
	return s
}

func (c *Controller) logFinish(st board.State) {
	entry := Log.WithFields(logrus.Fields{
		"round":     c.round,
		"elapsed":   c.board.Elapsed(c.now()).Round(time.Millisecond).String(),
		"remaining": c.board.RemainingMines(),
	})
	if st == board.StateWon {
		entry.Info("game won")
	} else {
		entry.Info("game lost")
	}
}
