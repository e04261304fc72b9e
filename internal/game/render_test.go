package game

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Mine-Sense/internal/board"
)

func TestViewOf(t *testing.T) {
	b := board.New(4, 2, board.WithSeed(3))
	require.Equal(t, 2, b.StartGame(b.Cell(0, 0)))
	mines := b.AllMineCells()
	require.Len(t, mines, 2)
	mine := mines[0]

	assert.Equal(t, CellView{Kind: KindHidden}, ViewOf(mine, false))
	assert.Equal(t, CellView{Kind: KindMine}, ViewOf(mine, true))

	// A numbered safe cell that is not the start cell.
	var numbered, other *board.Cell
	for _, c := range b.Cells() {
		if c.IsMine() || c.IsStart() {
			continue
		}
		if numbered == nil && c.AdjacentMines() > 0 {
			numbered = c
		} else if other == nil {
			other = c
		}
	}
	require.NotNil(t, numbered)
	require.NotNil(t, other)

	require.True(t, b.ToggleFlag(other))
	assert.Equal(t, CellView{Kind: KindFlagged}, ViewOf(other, false))

	require.True(t, b.Reveal(numbered))
	assert.Equal(t, CellView{Kind: KindNumber, Value: numbered.AdjacentMines()}, ViewOf(numbered, false))

	require.True(t, b.Reveal(mine))
	assert.Equal(t, CellView{Kind: KindMine, Exploded: true}, ViewOf(mine, true))
	assert.Equal(t, CellView{Kind: KindMine}, ViewOf(mines[1], true))
}

func TestDigitColor(t *testing.T) {
	assert.Equal(t, color.RGBA{B: 255, A: 255}, digitColor(1))
	assert.Equal(t, color.RGBA{G: 128, A: 255}, digitColor(2))
	for v := 3; v <= 8; v++ {
		assert.Equal(t, color.RGBA{R: 255, A: 255}, digitColor(v))
	}
}
