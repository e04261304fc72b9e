// Package autoplay drives a board to completion with simple single-cell
// deductions and seeded guesses. It backs the headless report and tests.
package autoplay

import (
	"math/rand/v2"

	"github.com/Garsondee/Mine-Sense/internal/board"
)

type MoveKind int

const (
	MoveReveal MoveKind = iota
	MoveFlag
)

func (k MoveKind) String() string {
	if k == MoveFlag {
		return "flag"
	}
	return "reveal"
}

// Move is one player action.
type Move struct {
	X, Y  int
	Kind  MoveKind
	Guess bool // true when no deduction applied
}

// Result summarises a finished game.
type Result struct {
	State   board.State
	Moves   int
	Guesses int
	Flags   int
	Placed  int
}

// Player picks moves. The zero value is not usable; use New.
type Player struct {
	rnd *rand.Rand
}

func New(r *rand.Rand) *Player {
	return &Player{rnd: r}
}

// Step returns the next move for b, or false when b is terminal or offers no
// hidden unflagged cell.
func (p *Player) Step(b *board.Board) (Move, bool) {
	if b.State().Terminal() {
		return Move{}, false
	}
	if m, ok := deduce(b); ok {
		return m, true
	}
	return p.guess(b)
}

// deduce applies the two single-cell rules to every revealed number:
// hidden neighbours all mines when hidden+flags == value, and all safe when
// flags == value. The start cell is skipped because its shown value is
// forced to zero and says nothing about its neighbours.
func deduce(b *board.Board) (Move, bool) {
	for _, c := range b.Cells() {
		if !c.IsRevealed() || c.IsMine() || c.IsStart() || c.AdjacentMines() == 0 {
			continue
		}
		var hidden []*board.Cell
		flags := 0
		for _, n := range c.Neighbors(b) {
			switch {
			case n.IsFlagged():
				flags++
			case !n.IsRevealed():
				hidden = append(hidden, n)
			}
		}
		if len(hidden) == 0 {
			continue
		}
		if flags == c.AdjacentMines() {
			return Move{X: hidden[0].X(), Y: hidden[0].Y(), Kind: MoveReveal}, true
		}
		if flags+len(hidden) == c.AdjacentMines() {
			return Move{X: hidden[0].X(), Y: hidden[0].Y(), Kind: MoveFlag}, true
		}
	}
	return Move{}, false
}

func (p *Player) guess(b *board.Board) (Move, bool) {
	var open []*board.Cell
	for _, c := range b.Cells() {
		if !c.IsRevealed() && !c.IsFlagged() {
			open = append(open, c)
		}
	}
	if len(open) == 0 {
		return Move{}, false
	}
	c := open[p.rnd.IntN(len(open))]
	return Move{X: c.X(), Y: c.Y(), Kind: MoveReveal, Guess: true}, true
}

// Apply performs m on b and reports whether anything changed.
func Apply(b *board.Board, m Move) bool {
	c := b.Cell(m.X, m.Y)
	if m.Kind == MoveFlag {
		return b.ToggleFlag(c)
	}
	return b.Reveal(c)
}

// Play starts b at first and keeps stepping until the board is terminal.
// The loop is bounded by the cell count: every applied move either reveals
// at least one cell or flags one, and flags are never removed.
func (p *Player) Play(b *board.Board, first *board.Cell) Result {
	res := Result{Placed: b.StartGame(first)}
	b.Reveal(first)
	res.Moves++

	limit := 2 * b.Size() * b.Size()
	for i := 0; i < limit; i++ {
		m, ok := p.Step(b)
		if !ok {
			break
		}
		if !Apply(b, m) {
			break
		}
		res.Moves++
		if m.Guess {
			res.Guesses++
		}
		if m.Kind == MoveFlag {
			res.Flags++
		}
	}
	res.State = b.State()
	return res
}
