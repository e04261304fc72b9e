package board

import "fmt"

// Reveal opens c. It is a no-op returning false when c is not on this board,
// the game has not started, the board is already terminal, or c is already
// revealed.
//
// Revealing a mine loses the game. Revealing a zero-valued safe cell opens its
// whole connected zero region plus the ring of numbered cells around it; mines
// are never opened by the flood. Flags on cells opened this way are cleared.
func (b *Board) Reveal(c *Cell) bool {
	if !b.owns(c) || !b.started || c.revealed || b.State().Terminal() {
		return false
	}

	b.open(c)
	if c.mine {
		b.lost = true
		b.record(c.x, c.y, CatReveal, "mine", "mine revealed", 0)
		b.finish()
		return true
	}
	b.record(c.x, c.y, CatReveal, "open", fmt.Sprintf("value=%d", c.adjacent), c.adjacent)

	if c.adjacent == 0 {
		opened := b.flood(c)
		b.record(c.x, c.y, CatFlood, "region", fmt.Sprintf("opened %d cells", opened), opened)
	}
	b.finish()
	return true
}

// open marks a single cell revealed, dropping any flag on it.
func (b *Board) open(c *Cell) {
	c.revealed = true
	if c.flagged {
		c.flagged = false
		b.remaining++
	}
}

// flood walks the zero region starting at origin with an explicit stack so
// call depth stays constant regardless of board size. It returns how many
// cells it opened, not counting origin.
func (b *Board) flood(origin *Cell) int {
	opened := 0
	stack := []*Cell{origin}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range cur.Neighbors(b) {
			if n.mine || n.revealed {
				continue
			}
			b.open(n)
			opened++
			b.recordVerbose(n.x, n.y, CatFlood, "open", fmt.Sprintf("value=%d", n.adjacent), n.adjacent)
			if n.adjacent == 0 {
				stack = append(stack, n)
			}
		}
	}
	return opened
}
