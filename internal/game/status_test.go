package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Garsondee/Mine-Sense/internal/board"
)

func TestStatus_Text(t *testing.T) {
	tests := []struct {
		name string
		st   Status
		want string
	}{
		{"not started", Status{RemainingMines: 12, State: board.StateNotStarted}, "Time: 0s  |  Mines: 12"},
		{"in progress", Status{ElapsedSeconds: 37, RemainingMines: 3, State: board.StateInProgress}, "Time: 37s  |  Mines: 3"},
		{"negative counter", Status{ElapsedSeconds: 2, RemainingMines: -1, State: board.StateInProgress}, "Time: 2s  |  Mines: -1"},
		{"won", Status{ElapsedSeconds: 60, State: board.StateWon}, "Time: 60s  |  Mines: 0  |  GAME WON!"},
		{"lost", Status{ElapsedSeconds: 4, RemainingMines: 11, State: board.StateLost}, "Time: 4s  |  Mines: 11  |  GAME LOST!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.st.Text())
		})
	}
}

func TestStatus_DebugText(t *testing.T) {
	assert.Equal(t, "", Status{}.DebugText())
	assert.Equal(t, "X: 0 Y: 8", Status{HoverX: 0, HoverY: 8, Hovering: true}.DebugText())
}
