package board

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// StartGame marks first as the start cell, places the mines and computes every
// cell's adjacency count. It runs once per board; later calls, or a cell that
// does not belong to this board, return 0 without changing anything.
//
// Exactly MineTarget mines are placed, none on the start cell. The return
// value is the number actually placed.
func (b *Board) StartGame(first *Cell) int {
	if b.started || !b.owns(first) {
		return 0
	}
	first.start = true
	b.placed = b.placeMines(first)
	b.computeAdjacency()

	b.started = true
	b.startedAt = b.now()

	b.record(first.x, first.y, CatStart, "mines", fmt.Sprintf("placed %d of %d", b.placed, b.target), b.placed)
	Log.WithFields(logrus.Fields{
		"size":   b.size,
		"target": b.target,
		"placed": b.placed,
		"startX": first.x,
		"startY": first.y,
	}).Debug("mines placed")
	return b.placed
}

// placeMines picks target distinct cells other than start with a partial
// Fisher–Yates shuffle over the candidate indices.
func (b *Board) placeMines(start *Cell) int {
	startIdx := start.y*b.size + start.x
	candidates := make([]int, 0, len(b.cells)-1)
	for i := range b.cells {
		if i != startIdx {
			candidates = append(candidates, i)
		}
	}

	n := min(b.target, len(candidates))
	for i := 0; i < n; i++ {
		j := i + b.rnd.IntN(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		b.cells[candidates[i]].mine = true
	}
	return n
}

// computeAdjacency fills in adjacent mine counts. The start cell is forced to
// zero regardless of its true surroundings.
func (b *Board) computeAdjacency() {
	for i := range b.cells {
		c := &b.cells[i]
		if c.start {
			c.adjacent = 0
			continue
		}
		count := 0
		for _, n := range c.Neighbors(b) {
			if n.mine {
				count++
			}
		}
		c.adjacent = count
	}
}
