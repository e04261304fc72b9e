package game

import (
	"fmt"

	"github.com/Garsondee/Mine-Sense/internal/board"
)

// Status is what the status display reads once per frame.
type Status struct {
	ElapsedSeconds int
	RemainingMines int
	State          board.State

	HoverX, HoverY int
	Hovering       bool
}

// Text formats the status line.
//
//	Time: 12s  |  Mines: 9  |  GAME WON!
func (s Status) Text() string {
	text := fmt.Sprintf("Time: %ds  |  Mines: %d", s.ElapsedSeconds, s.RemainingMines)
	switch s.State {
	case board.StateWon:
		text += "  |  GAME WON!"
	case board.StateLost:
		text += "  |  GAME LOST!"
	}
	return text
}

// DebugText shows the hovered cell's grid position.
func (s Status) DebugText() string {
	if !s.Hovering {
		return ""
	}
	return fmt.Sprintf("X: %d Y: %d", s.HoverX, s.HoverY)
}
