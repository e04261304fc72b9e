package board

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log.SetOutput(io.Discard)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

// fixedBoard builds a started board with mines at exactly the given
// coordinates, bypassing random placement. start is marked as the start cell.
func fixedBoard(t *testing.T, size int, start [2]int, mines ...[2]int) *Board {
	t.Helper()
	b := New(size, len(mines), WithSeed(1), WithEventLog(NewEventLog(true)))
	for _, m := range mines {
		c := b.Cell(m[0], m[1])
		require.NotNil(t, c, "mine (%d,%d) out of bounds", m[0], m[1])
		require.NotEqual(t, start, m, "mine on start cell")
		c.mine = true
	}
	b.Cell(start[0], start[1]).start = true
	b.placed = len(mines)
	b.computeAdjacency()
	b.started = true
	b.startedAt = b.now()
	return b
}

func countMines(b *Board) int {
	n := 0
	for _, c := range b.Cells() {
		if c.IsMine() {
			n++
		}
	}
	return n
}

func TestNew_AllocatesRowMajorGrid(t *testing.T) {
	b := New(9, 10)
	cells := b.Cells()
	require.Len(t, cells, 81)
	for i, c := range cells {
		assert.Equal(t, i%9, c.X())
		assert.Equal(t, i/9, c.Y())
		assert.False(t, c.IsMine())
		assert.False(t, c.IsRevealed())
	}
	assert.False(t, b.Started())
	assert.Equal(t, StateNotStarted, b.State())
	assert.Equal(t, 10, b.RemainingMines())
	assert.Zero(t, b.PlacedMines())
}

func TestNew_ClampsArguments(t *testing.T) {
	b := New(0, 5)
	assert.Equal(t, 1, b.Size())
	assert.Equal(t, 0, b.MineTarget())

	b = New(3, 50)
	assert.Equal(t, 8, b.MineTarget())

	b = New(3, -2)
	assert.Equal(t, 0, b.MineTarget())
}

func TestCell_OutOfBoundsIsNil(t *testing.T) {
	b := New(4, 1)
	assert.Nil(t, b.Cell(-1, 0))
	assert.Nil(t, b.Cell(0, -1))
	assert.Nil(t, b.Cell(4, 0))
	assert.Nil(t, b.Cell(0, 4))
	assert.NotNil(t, b.Cell(3, 3))
}

func TestStartGame_PlacesExactlyTarget(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		mines int
	}{
		{"9x9(10)", 9, 10},
		{"9x9(12)", 9, 12},
		{"16x16(40)", 16, 40},
		{"5x5(24)", 5, 24},
		{"3x3(0)", 3, 0},
		{"1x1(0)", 1, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for seed := uint64(0); seed < 50; seed++ {
				b := New(test.size, test.mines, WithSeed(seed))
				start := b.Cell(int(seed)%test.size, int(seed/3)%test.size)
				placed := b.StartGame(start)

				require.Equal(t, test.mines, placed, "seed %d", seed)
				require.Equal(t, test.mines, countMines(b), "seed %d", seed)
				require.Equal(t, test.mines, b.PlacedMines())
				require.False(t, start.IsMine(), "start cell is a mine (seed %d)", seed)
				require.True(t, start.IsStart())
			}
		})
	}
}

func TestStartGame_OnlyOnce(t *testing.T) {
	b := New(9, 10, WithSeed(3))
	first := b.Cell(4, 4)
	require.Equal(t, 10, b.StartGame(first))
	before := b.Report(true)

	assert.Zero(t, b.StartGame(b.Cell(0, 0)))
	assert.False(t, b.Cell(0, 0).IsStart())
	assert.Equal(t, before, b.Report(true))
}

func TestStartGame_ForeignCellIgnored(t *testing.T) {
	a := New(4, 2, WithSeed(1))
	other := New(4, 2, WithSeed(1))
	assert.Zero(t, a.StartGame(other.Cell(0, 0)))
	assert.False(t, a.Started())
	assert.Zero(t, a.StartGame(nil))
}

func TestStartGame_AdjacencyMatchesMines(t *testing.T) {
	for seed := uint64(0); seed < 25; seed++ {
		b := New(9, 12, WithSeed(seed))
		start := b.Cell(2, 6)
		b.StartGame(start)

		for _, c := range b.Cells() {
			if c.IsStart() {
				assert.Zero(t, c.AdjacentMines(), "start cell must be forced to 0")
				continue
			}
			if c.IsMine() {
				continue
			}
			want := 0
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if n := b.Cell(c.X()+dx, c.Y()+dy); n != nil && n.IsMine() {
						want++
					}
				}
			}
			assert.Equal(t, want, c.AdjacentMines(), "cell (%d,%d) seed %d", c.X(), c.Y(), seed)
		}
	}
}

func TestStartGame_RecordsTimestamp(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	b := New(5, 3, WithSeed(1), WithClock(func() time.Time { return t0 }))
	b.StartGame(b.Cell(0, 0))
	assert.Equal(t, t0, b.StartedAt())
	assert.Equal(t, 7*time.Second, b.Elapsed(t0.Add(7*time.Second)))
}

func TestFindCellAt(t *testing.T) {
	b := New(9, 10, WithCellSize(600.0/9, 600.0/9))
	w := 600.0 / 9

	tests := []struct {
		name   string
		px, py float64
		wantX  int
		wantY  int
		noCell bool
	}{
		{name: "origin", px: 0, py: 0, wantX: 0, wantY: 0},
		{name: "centre", px: 300, py: 300, wantX: 4, wantY: 4},
		{name: "edge belongs to right cell", px: w, py: 0, wantX: 1, wantY: 0},
		{name: "just before edge", px: w - 0.001, py: 0, wantX: 0, wantY: 0},
		{name: "last pixel", px: 599.9, py: 599.9, wantX: 8, wantY: 8},
		{name: "past far edge", px: 600.5, py: 10, noCell: true},
		{name: "negative", px: -1, py: 10, noCell: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := b.FindCellAt(test.px, test.py)
			if test.noCell {
				assert.Nil(t, c)
				return
			}
			require.NotNil(t, c)
			assert.Equal(t, test.wantX, c.X())
			assert.Equal(t, test.wantY, c.Y())
			assert.True(t, c.ContainsPoint(test.px, test.py))
		})
	}
}

func TestFindCellAt_WithOrigin(t *testing.T) {
	b := New(3, 1, WithCellSize(3, 1), WithOrigin(2, 1))
	assert.Nil(t, b.FindCellAt(1, 1))
	c := b.FindCellAt(5, 3.5)
	require.NotNil(t, c)
	assert.Equal(t, 1, c.X())
	assert.Equal(t, 2, c.Y())
}

func TestAllMineCells(t *testing.T) {
	b := fixedBoard(t, 4, [2]int{0, 0}, [2]int{3, 3}, [2]int{1, 3})
	mines := b.AllMineCells()
	require.Len(t, mines, 2)
	for _, m := range mines {
		assert.True(t, m.IsMine())
	}
	// Query does not mutate.
	for _, c := range b.Cells() {
		assert.False(t, c.IsRevealed())
	}
}

func TestReport(t *testing.T) {
	b := fixedBoard(t, 4, [2]int{0, 0}, [2]int{3, 0}, [2]int{3, 3})
	require.True(t, b.Reveal(b.Cell(0, 0)))
	require.True(t, b.ToggleFlag(b.Cell(3, 3)))

	report := b.Report(false)
	assert.Contains(t, report, "state=in_progress")
	assert.Contains(t, report, " 0: . . 1 - \n")
	assert.Contains(t, report, " 3: . . 1 F \n")

	full := b.Report(true)
	assert.Contains(t, full, " 0: . . 1 * \n")
}
