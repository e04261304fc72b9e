package main

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/Garsondee/Mine-Sense/internal/board"
	"github.com/Garsondee/Mine-Sense/internal/game"
)

// cellStyle maps a cell view to its table text and colours.
func cellStyle(v game.CellView) (string, tcell.Color, tcell.Color) {
	switch v.Kind {
	case game.KindFlagged:
		return " F ", tcell.ColorRed, tcell.ColorDarkSlateGray
	case game.KindMine:
		if v.Exploded {
			return " * ", tcell.ColorWhite, tcell.ColorRed
		}
		return " * ", tcell.ColorBlack, tcell.ColorSilver
	case game.KindNumber:
		if v.Value == 0 {
			return "   ", tcell.ColorBlack, tcell.ColorLightGray
		}
		return " " + strconv.Itoa(v.Value) + " ", digitColor(v.Value), tcell.ColorLightGray
	default:
		return "   ", tcell.ColorWhite, tcell.ColorDarkSlateGray
	}
}

func digitColor(v int) tcell.Color {
	switch v {
	case 1:
		return tcell.ColorBlue
	case 2:
		return tcell.ColorGreen
	default:
		return tcell.ColorRed
	}
}

// drawBoard rewrites every table cell from b.
func drawBoard(table *tview.Table, b *board.Board) {
	disclose := b.State() == board.StateLost
	for _, c := range b.Cells() {
		text, fg, bg := cellStyle(game.ViewOf(c, disclose))
		table.SetCell(c.Y(), c.X(), tview.NewTableCell(text).
			SetAlign(tview.AlignCenter).
			SetTextColor(fg).
			SetBackgroundColor(bg))
	}
}
