package game

import (
	"time"

	"github.com/Garsondee/Mine-Sense/internal/autoplay"
	"github.com/Garsondee/Mine-Sense/internal/board"
)

// TestSession is a headless harness around a Controller. It has no ebiten
// dependency at runtime, drives the controller with pixel coordinates the way
// the input layer does, and owns a manual clock.
type TestSession struct {
	Config Config
	Geom   Geometry
	Ctrl   *Controller
	Now    time.Time
}

// sessionOptionKind controls the pass in which an option is applied.
type sessionOptionKind int

const (
	sessOptConfig sessionOptionKind = iota // grid, mines, seed: applied before the controller exists
	sessOptScript                          // clicks: applied in order once the board is built
)

// SessionOption is a builder function applied to a TestSession during construction.
type SessionOption struct {
	kind sessionOptionKind
	fn   func(*TestSession)
}

// WithGridSize sets N.
func WithGridSize(n int) SessionOption {
	return SessionOption{sessOptConfig, func(ts *TestSession) {
		ts.Config.GridSize = n
	}}
}

// WithMines sets an explicit mine target.
func WithMines(m int) SessionOption {
	return SessionOption{sessOptConfig, func(ts *TestSession) {
		ts.Config.Mines = m
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed uint64) SessionOption {
	return SessionOption{sessOptConfig, func(ts *TestSession) {
		ts.Config.Seed = seed
	}}
}

// WithVerbose records per-cell flood events.
func WithVerbose(v bool) SessionOption {
	return SessionOption{sessOptConfig, func(ts *TestSession) {
		ts.Config.Verbose = v
	}}
}

// WithHelp starts the session with help mode on.
func WithHelp(on bool) SessionOption {
	return SessionOption{sessOptConfig, func(ts *TestSession) {
		ts.Config.HelpMode = on
	}}
}

// WithClickAt left-clicks grid cell (x,y) during construction.
func WithClickAt(x, y int) SessionOption {
	return SessionOption{sessOptScript, func(ts *TestSession) {
		ts.ClickCell(x, y)
	}}
}

// WithFlagAt right-clicks grid cell (x,y) during construction.
func WithFlagAt(x, y int) SessionOption {
	return SessionOption{sessOptScript, func(ts *TestSession) {
		ts.FlagCell(x, y)
	}}
}

// NewTestSession builds a session in two ordered passes:
//  1. Config options, then the controller and its board
//  2. Scripted clicks, in the order given
func NewTestSession(opts ...SessionOption) *TestSession {
	ts := &TestSession{
		Config: DefaultConfig(),
		Now:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	ts.Config.Seed = 1
	for _, o := range opts {
		if o.kind == sessOptConfig {
			o.fn(ts)
		}
	}
	cell := ts.Config.CellPixels()
	ts.Geom = Geometry{OriginX: borderWidth, OriginY: statusHeight + borderWidth, CellW: cell, CellH: cell}
	ts.Ctrl = NewController(ts.Config, ts.Geom, WithNow(func() time.Time { return ts.Now }))
	for _, o := range opts {
		if o.kind == sessOptScript {
			o.fn(ts)
		}
	}
	return ts
}

// Board is the controller's current board.
func (ts *TestSession) Board() *board.Board { return ts.Ctrl.Board() }

// Events is the current board's event log.
func (ts *TestSession) Events() *board.EventLog { return ts.Ctrl.Events() }

// CellCenter is the pixel at the middle of grid cell (x,y).
func (ts *TestSession) CellCenter(x, y int) (float64, float64) {
	return ts.Geom.OriginX + (float64(x)+0.5)*ts.Geom.CellW,
		ts.Geom.OriginY + (float64(y)+0.5)*ts.Geom.CellH
}

// ClickCell left-clicks the centre of grid cell (x,y).
func (ts *TestSession) ClickCell(x, y int) bool {
	return ts.Ctrl.Click(ts.CellCenter(x, y))
}

// FlagCell right-clicks the centre of grid cell (x,y).
func (ts *TestSession) FlagCell(x, y int) bool {
	return ts.Ctrl.RightClick(ts.CellCenter(x, y))
}

// HoverCell moves the pointer over grid cell (x,y).
func (ts *TestSession) HoverCell(x, y int) {
	ts.Ctrl.Hover(ts.CellCenter(x, y))
}

// Advance moves the manual clock forward.
func (ts *TestSession) Advance(d time.Duration) {
	ts.Now = ts.Now.Add(d)
}

// RunAutoplay plays the current board to the end through the controller,
// clicking (x,y) first. Every move goes through pixel coordinates.
func (ts *TestSession) RunAutoplay(p *autoplay.Player, x, y int) autoplay.Result {
	b := ts.Board()
	ts.ClickCell(x, y)
	res := autoplay.Result{Placed: b.PlacedMines(), Moves: 1}

	limit := 2 * b.Size() * b.Size()
	for i := 0; i < limit; i++ {
		m, ok := p.Step(b)
		if !ok {
			break
		}
		var changed bool
		if m.Kind == autoplay.MoveFlag {
			changed = ts.FlagCell(m.X, m.Y)
			res.Flags++
		} else {
			changed = ts.ClickCell(m.X, m.Y)
		}
		if !changed {
			break
		}
		res.Moves++
		if m.Guess {
			res.Guesses++
		}
		ts.Advance(time.Second)
	}
	res.State = b.State()
	return res
}
