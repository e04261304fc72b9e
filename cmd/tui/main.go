// Command tui plays Minesweeper in a terminal. Arrow keys move the selection,
// Enter or space reveals, f flags, n starts a new board, q quits. A mouse
// click selects and reveals.
package main

import (
	"flag"
	"io"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/Garsondee/Mine-Sense/internal/board"
	"github.com/Garsondee/Mine-Sense/internal/game"
)

// tuiGeometry makes one grid cell one unit wide, so a selection (row, col)
// maps to the point (col+0.5, row+0.5).
var tuiGeometry = game.Geometry{CellW: 1, CellH: 1}

type tui struct {
	app    *tview.Application
	table  *tview.Table
	status *tview.TextView
	ctrl   *game.Controller
}

func newTUI(cfg game.Config) *tui {
	t := &tui{
		app:    tview.NewApplication(),
		table:  tview.NewTable(),
		status: tview.NewTextView(),
		ctrl:   game.NewController(cfg, tuiGeometry),
	}
	t.table.SetSelectable(true, true).SetBorders(false)
	t.table.SetSelectedStyle(tcell.StyleDefault.Reverse(true))
	t.table.SetInputCapture(t.handleKey)
	t.table.SetMouseCapture(t.handleMouse)
	t.table.SetSelectionChangedFunc(func(row, col int) {
		t.ctrl.Hover(center(row, col))
		t.refreshStatus()
	})

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(t.status, 1, 0, false).
		AddItem(t.table, 0, 1, true)
	t.app.SetRoot(layout, true).EnableMouse(true)
	t.redraw()
	return t
}

func center(row, col int) (float64, float64) {
	return float64(col) + 0.5, float64(row) + 0.5
}

func (t *tui) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	row, col := t.table.GetSelection()
	switch {
	case ev.Key() == tcell.KeyEnter || ev.Rune() == ' ':
		t.ctrl.Click(center(row, col))
	case ev.Rune() == 'f' || ev.Rune() == 'F':
		t.ctrl.RightClick(center(row, col))
	case ev.Rune() == 'n' || ev.Rune() == 'N':
		t.ctrl.Reset()
	case ev.Rune() == 'q' || ev.Rune() == 'Q':
		t.app.Stop()
		return nil
	default:
		return ev
	}
	t.redraw()
	return nil
}

// handleMouse lets the table move its selection first, then acts on the newly
// selected cell.
func (t *tui) handleMouse(action tview.MouseAction, ev *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if action != tview.MouseLeftClick {
		return action, ev
	}
	t.app.QueueUpdateDraw(func() {
		t.ctrl.Click(center(t.table.GetSelection()))
		t.redraw()
	})
	return action, ev
}

func (t *tui) redraw() {
	drawBoard(t.table, t.ctrl.Board())
	t.refreshStatus()
}

func (t *tui) refreshStatus() {
	st := t.ctrl.Status()
	text := st.Text()
	if d := st.DebugText(); d != "" {
		text += "  |  " + d
	}
	t.status.SetText(text)
}

// tick refreshes the clock once a second until done closes.
func (t *tui) tick(done <-chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			t.app.QueueUpdateDraw(t.refreshStatus)
		}
	}
}

func main() {
	cfg := game.DefaultConfig()
	var configPath string
	flag.StringVar(&configPath, "config", "", "JSON config file")
	flag.IntVar(&cfg.GridSize, "grid", cfg.GridSize, "cells per side")
	flag.IntVar(&cfg.Mines, "mines", cfg.Mines, "explicit mine count (0 uses the default density)")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed, 0 for clock")
	flag.Parse()

	if configPath != "" {
		if err := game.ReadConfig(configPath, &cfg); err != nil {
			log.Fatal(err)
		}
	}
	// The pixel check is meaningless in a terminal.
	cfg.BoardPixels = cfg.GridSize * 8
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// Log lines would corrupt the screen.
	game.Log.SetOutput(io.Discard)
	board.Log.SetOutput(io.Discard)

	t := newTUI(cfg)
	done := make(chan struct{})
	go t.tick(done)
	err := t.app.Run()
	close(done)
	if err != nil {
		log.Fatal(err)
	}
}
