package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Mine-Sense/internal/board"
)

const (
	panelWidth      = 260
	panelMaxEntries = 40
	panelLineHeight = 14
)

// EventPanel is a ring buffer of recent board events rendered beside the
// board. It pulls from the board's EventLog rather than being written to.
type EventPanel struct {
	entries []board.EventLogEntry
	head    int
	count   int
	lastSeq int
}

func NewEventPanel() *EventPanel {
	return &EventPanel{
		entries: make([]board.EventLogEntry, panelMaxEntries),
	}
}

// Sync copies entries added to el since the last call.
func (p *EventPanel) Sync(el *board.EventLog) {
	if el == nil {
		return
	}
	for _, e := range el.Since(p.lastSeq) {
		p.add(e)
		p.lastSeq = e.Seq
	}
}

// Reset empties the panel, for a new board.
func (p *EventPanel) Reset() {
	p.head, p.count, p.lastSeq = 0, 0, 0
}

func (p *EventPanel) add(e board.EventLogEntry) {
	p.entries[p.head] = e
	p.head = (p.head + 1) % panelMaxEntries
	if p.count < panelMaxEntries {
		p.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (p *EventPanel) Recent() []board.EventLogEntry {
	result := make([]board.EventLogEntry, p.count)
	for i := 0; i < p.count; i++ {
		idx := (p.head - p.count + i + panelMaxEntries) % panelMaxEntries
		result[i] = p.entries[idx]
	}
	return result
}

func categoryColor(cat string) color.RGBA {
	switch cat {
	case board.CatStart:
		return color.RGBA{R: 90, G: 200, B: 90, A: 255}
	case board.CatFlag:
		return color.RGBA{R: 230, G: 60, B: 60, A: 255}
	case board.CatState:
		return color.RGBA{R: 255, G: 210, B: 40, A: 255}
	default:
		return color.RGBA{R: 110, G: 140, B: 220, A: 255}
	}
}

// Draw renders the panel at panelX, full height.
func (p *EventPanel) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(panelWidth), float32(panelH), color.RGBA{R: 18, G: 18, B: 20, A: 250}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 70, G: 70, B: 80, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(panelWidth), 16, color.RGBA{R: 32, G: 32, B: 40, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 0)

	entries := p.Recent()

	// Newest at the bottom.
	maxVisible := (panelH - 24) / panelLineHeight
	startIdx := 0
	if len(entries) > maxVisible {
		startIdx = len(entries) - maxVisible
	}
	visible := entries[startIdx:]

	y := 20
	for i, e := range visible {
		if i == len(visible)-1 {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(panelWidth-4), float32(panelLineHeight), color.RGBA{R: 40, G: 40, B: 52, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 6, categoryColor(e.Category), false)
		ebitenutil.DebugPrintAt(screen, panelLine(e), panelX+12, y)
		y += panelLineHeight
	}
}

// panelLine is the compact form of an entry shown in the panel.
func panelLine(e board.EventLogEntry) string {
	if e.X < 0 {
		return fmt.Sprintf("%3d %s", e.Seq, e.Value)
	}
	return fmt.Sprintf("%3d (%d,%d) %s %s", e.Seq, e.X, e.Y, e.Key, e.Value)
}
