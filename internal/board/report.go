package board

import (
	"fmt"
	"strings"
)

// Glyphs used by Report.
const (
	glyphHidden  = '-'
	glyphFlag    = 'F'
	glyphMine    = '*'
	glyphBadFlag = 'x' // flag on a safe cell, only shown with showMines
	glyphZero    = '.'
)

// Report returns a fixed-width text dump of the grid as the player sees it.
// With showMines, unrevealed mines are shown as well and wrong flags are
// marked.
//
//	    0 1 2
//	0:  . 1 -
//	1:  . 1 F
func (b *Board) Report(showMines bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "state=%s size=%d mines=%d/%d remaining=%d\n",
		b.State(), b.size, b.placed, b.target, b.remaining)

	sb.WriteString("    ")
	for x := 0; x < b.size; x++ {
		fmt.Fprintf(&sb, "%d ", x%10)
	}
	sb.WriteByte('\n')

	for y := 0; y < b.size; y++ {
		fmt.Fprintf(&sb, "%2d: ", y)
		for x := 0; x < b.size; x++ {
			sb.WriteRune(b.glyph(b.Cell(x, y), showMines))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) glyph(c *Cell, showMines bool) rune {
	switch {
	case c.revealed && c.mine:
		return glyphMine
	case c.revealed && c.adjacent == 0:
		return glyphZero
	case c.revealed:
		return rune('0' + c.adjacent)
	case c.flagged && showMines && !c.mine:
		return glyphBadFlag
	case c.flagged:
		return glyphFlag
	case showMines && c.mine:
		return glyphMine
	default:
		return glyphHidden
	}
}
