package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Mine-Sense/internal/board"
)

func TestEventPanel_KeepsNewest(t *testing.T) {
	el := board.NewEventLog(false)
	for i := 0; i < 50; i++ {
		el.Add(i%9, i/9, board.CatReveal, "open", "value=1", 1)
	}
	p := NewEventPanel()
	p.Sync(el)

	recent := p.Recent()
	require.Len(t, recent, panelMaxEntries)
	assert.Equal(t, 11, recent[0].Seq)
	assert.Equal(t, 50, recent[len(recent)-1].Seq)

	// Nothing new, nothing added.
	p.Sync(el)
	assert.Len(t, p.Recent(), panelMaxEntries)

	el.Add(-1, -1, board.CatState, "change", "in_progress → won", 0)
	p.Sync(el)
	recent = p.Recent()
	assert.Equal(t, 51, recent[len(recent)-1].Seq)
	assert.Equal(t, 12, recent[0].Seq)
}

func TestEventPanel_ResetForNewBoard(t *testing.T) {
	p := NewEventPanel()
	first := board.NewEventLog(false)
	for i := 0; i < 5; i++ {
		first.Add(0, 0, board.CatFlag, "place", "flagged", 0)
	}
	p.Sync(first)
	require.Len(t, p.Recent(), 5)

	p.Reset()
	assert.Empty(t, p.Recent())

	second := board.NewEventLog(false)
	second.Add(3, 3, board.CatStart, "mines", "placed 12 of 12", 12)
	p.Sync(second)
	require.Len(t, p.Recent(), 1)
	assert.Equal(t, board.CatStart, p.Recent()[0].Category)
}

func TestEventPanel_NilLog(t *testing.T) {
	p := NewEventPanel()
	p.Sync(nil)
	assert.Empty(t, p.Recent())
}

func TestPanelLine(t *testing.T) {
	assert.Equal(t, "  7 (4,4) open value=0",
		panelLine(board.EventLogEntry{Seq: 7, X: 4, Y: 4, Category: board.CatReveal, Key: "open", Value: "value=0"}))
	assert.Equal(t, " 12 in_progress → won",
		panelLine(board.EventLogEntry{Seq: 12, X: -1, Y: -1, Category: board.CatState, Key: "change", Value: "in_progress → won"}))
}
