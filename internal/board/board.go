package board

import (
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
)

// Log receives debug-level traces of board internals. Callers may replace its
// output, level or formatter.
var Log = logrus.New()

// State is the board's position in its lifecycle.
type State uint8

const (
	StateNotStarted State = iota // no reveal yet, no mines placed
	StateInProgress              // mines placed, game running
	StateWon                     // every non-mine cell revealed (terminal)
	StateLost                    // a mine was revealed (terminal)
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateInProgress:
		return "in_progress"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further mutation is meaningful.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// Board owns an N×N grid of cells and the game state around it.
type Board struct {
	size   int
	target int // mine target fixed at construction
	placed int // mines actually placed by StartGame

	// remaining is the informational mine counter shown to the player:
	// target minus flags placed. It may go negative.
	remaining int

	cells []Cell // row-major: index = y*size + x

	started   bool
	lost      bool
	startedAt time.Time
	endedAt   time.Time

	// Geometry used for point lookup.
	originX, originY float64
	cellW, cellH     float64

	rnd    *rand.Rand
	now    func() time.Time
	events *EventLog
}

// Option configures a Board at construction.
type Option func(*Board)

// WithCellSize sets the on-screen size of each cell.
func WithCellSize(w, h float64) Option {
	return func(b *Board) {
		if w > 0 && h > 0 {
			b.cellW, b.cellH = w, h
		}
	}
}

// WithOrigin sets the screen position of cell (0,0)'s top-left corner.
func WithOrigin(x, y float64) Option {
	return func(b *Board) {
		b.originX, b.originY = x, y
	}
}

// WithRand sets the random source used for mine placement.
func WithRand(r *rand.Rand) Option {
	return func(b *Board) {
		if r != nil {
			b.rnd = r
		}
	}
}

// WithSeed seeds a PCG source for deterministic mine placement.
func WithSeed(seed uint64) Option {
	return func(b *Board) {
		b.rnd = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithClock replaces time.Now for start/end timestamps.
func WithClock(now func() time.Time) Option {
	return func(b *Board) {
		if now != nil {
			b.now = now
		}
	}
}

// WithEventLog records board events into el.
func WithEventLog(el *EventLog) Option {
	return func(b *Board) {
		b.events = el
	}
}

// New allocates a size×size board with a target of mines mines. No mines are
// placed until StartGame. A size below 1 is raised to 1 and the mine target
// is clamped to [0, size²-1] so the start cell always has room.
func New(size, mines int, opts ...Option) *Board {
	if size < 1 {
		size = 1
	}
	if maxMines := size*size - 1; mines > maxMines {
		mines = maxMines
	}
	if mines < 0 {
		mines = 0
	}
	b := &Board{
		size:      size,
		target:    mines,
		remaining: mines,
		cellW:     1,
		cellH:     1,
		now:       time.Now,
	}
	for _, o := range opts {
		o(b)
	}
	if b.rnd == nil {
		b.rnd = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)) // #nosec G404 -- game only
	}
	b.cells = make([]Cell, size*size)
	for i := range b.cells {
		x, y := i%size, i/size
		b.cells[i] = Cell{
			x: x,
			y: y,
			bounds: Rect{
				X: b.originX + float64(x)*b.cellW,
				Y: b.originY + float64(y)*b.cellH,
				W: b.cellW,
				H: b.cellH,
			},
		}
	}
	return b
}

// Size is the grid side length N.
func (b *Board) Size() int { return b.size }

// MineTarget is the number of mines requested at construction (after clamping).
func (b *Board) MineTarget() int { return b.target }

// PlacedMines is the number of mines actually placed; zero before StartGame.
func (b *Board) PlacedMines() int { return b.placed }

// RemainingMines is the mine target minus flags placed. Purely informational.
func (b *Board) RemainingMines() int { return b.remaining }

func (b *Board) Started() bool { return b.started }
func (b *Board) Lost() bool    { return b.lost }

// StartedAt returns the time of the first reveal, or the zero time.
func (b *Board) StartedAt() time.Time { return b.startedAt }

// Events returns the attached event log, which may be nil.
func (b *Board) Events() *EventLog { return b.events }

// Cell returns the cell at grid position (x,y), or nil when out of bounds.
func (b *Board) Cell(x, y int) *Cell {
	if x < 0 || x >= b.size || y < 0 || y >= b.size {
		return nil
	}
	return &b.cells[y*b.size+x]
}

// Cells returns every cell in row-major order.
func (b *Board) Cells() []*Cell {
	out := make([]*Cell, len(b.cells))
	for i := range b.cells {
		out[i] = &b.cells[i]
	}
	return out
}

// owns reports whether c is one of this board's cells.
func (b *Board) owns(c *Cell) bool {
	return c != nil && b.Cell(c.x, c.y) == c
}

// State derives the lifecycle state. Lost takes precedence over Won.
func (b *Board) State() State {
	switch {
	case !b.started:
		return StateNotStarted
	case b.lost:
		return StateLost
	case b.AllSafeCellsRevealed():
		return StateWon
	default:
		return StateInProgress
	}
}

// Elapsed is the wall-clock time since the first reveal. It stops advancing
// once the board reaches a terminal state.
func (b *Board) Elapsed(now time.Time) time.Duration {
	if !b.started {
		return 0
	}
	if !b.endedAt.IsZero() {
		return b.endedAt.Sub(b.startedAt)
	}
	return now.Sub(b.startedAt)
}

// AllSafeCellsRevealed reports whether every non-mine cell is revealed. This
// is the sole win condition; flags play no part.
func (b *Board) AllSafeCellsRevealed() bool {
	for i := range b.cells {
		if !b.cells[i].mine && !b.cells[i].revealed {
			return false
		}
	}
	return true
}

// AllMineCells returns every mine cell, revealed or not.
func (b *Board) AllMineCells() []*Cell {
	out := make([]*Cell, 0, b.placed)
	for i := range b.cells {
		if b.cells[i].mine {
			out = append(out, &b.cells[i])
		}
	}
	return out
}

// FindCellAt maps a screen point to the cell containing it, or nil.
func (b *Board) FindCellAt(px, py float64) *Cell {
	if px < b.originX || py < b.originY {
		return nil
	}
	x := int((px - b.originX) / b.cellW)
	y := int((py - b.originY) / b.cellH)
	// Floating point division can land one cell off at an exact edge;
	// ContainsPoint is authoritative.
	for _, dy := range [3]int{0, -1, 1} {
		for _, dx := range [3]int{0, -1, 1} {
			if c := b.Cell(x+dx, y+dy); c != nil && c.ContainsPoint(px, py) {
				return c
			}
		}
	}
	return nil
}

// ToggleFlag flips the flag on an unrevealed cell and adjusts the remaining
// mine counter. It returns false when nothing changed.
func (b *Board) ToggleFlag(c *Cell) bool {
	if !b.owns(c) || c.revealed || b.State().Terminal() {
		return false
	}
	c.flagged = !c.flagged
	if c.flagged {
		b.remaining--
		b.record(c.x, c.y, CatFlag, "place", "flagged", b.remaining)
	} else {
		b.remaining++
		b.record(c.x, c.y, CatFlag, "remove", "unflagged", b.remaining)
	}
	return true
}

// finish stamps the end time once the board enters a terminal state.
func (b *Board) finish() {
	if !b.endedAt.IsZero() {
		return
	}
	st := b.State()
	if !st.Terminal() {
		return
	}
	b.endedAt = b.now()
	b.record(-1, -1, CatState, "change", "in_progress → "+st.String(), 0)
	Log.WithFields(logrus.Fields{
		"state":   st.String(),
		"elapsed": b.endedAt.Sub(b.startedAt).String(),
	}).Debug("board finished")
}

func (b *Board) record(x, y int, category, key, value string, num int) {
	if b.events == nil {
		return
	}
	b.events.Add(x, y, category, key, value, num)
}

func (b *Board) recordVerbose(x, y int, category, key, value string, num int) {
	if b.events == nil {
		return
	}
	b.events.AddVerbose(x, y, category, key, value, num)
}
