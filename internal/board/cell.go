package board

// neighborOffsets are the 8 compass offsets around a cell.
var neighborOffsets = [8][2]int{
	{0, -1},  // N
	{1, -1},  // NE
	{1, 0},   // E
	{1, 1},   // SE
	{0, 1},   // S
	{-1, 1},  // SW
	{-1, 0},  // W
	{-1, -1}, // NW
}

// Rect is a screen-space rectangle in continuous coordinates.
type Rect struct {
	X, Y float64
	W, H float64
}

// Contains reports whether (px,py) lies inside the half-open rectangle
// [X, X+W) × [Y, Y+H).
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// Cell is a single grid position.
type Cell struct {
	x, y int

	bounds Rect

	adjacent int
	mine     bool
	revealed bool
	flagged  bool
	start    bool
}

func (c *Cell) X() int { return c.x }
func (c *Cell) Y() int { return c.y }

// AdjacentMines is the number of mines in the 8 surrounding cells. It is only
// meaningful once mines are placed and the cell is not itself a mine.
func (c *Cell) AdjacentMines() int { return c.adjacent }

func (c *Cell) IsMine() bool     { return c.mine }
func (c *Cell) IsRevealed() bool { return c.revealed }
func (c *Cell) IsFlagged() bool  { return c.flagged }
func (c *Cell) IsStart() bool    { return c.start }

// Bounds returns the cell's screen rectangle.
func (c *Cell) Bounds() Rect { return c.bounds }

// ContainsPoint reports whether a screen point falls within this cell.
func (c *Cell) ContainsPoint(px, py float64) bool {
	return c.bounds.Contains(px, py)
}

// Neighbors returns the up-to-8 in-bounds cells surrounding c on board b.
func (c *Cell) Neighbors(b *Board) []*Cell {
	out := make([]*Cell, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		if n := b.Cell(c.x+off[0], c.y+off[1]); n != nil {
			out = append(out, n)
		}
	}
	return out
}
