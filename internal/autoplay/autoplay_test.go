package autoplay

import (
	"io"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Mine-Sense/internal/board"
)

func TestMain(m *testing.M) {
	board.Log.SetOutput(io.Discard)
	m.Run()
}

func TestPlay_AlwaysTerminates(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		mines int
	}{
		{"9x9(12)", 9, 12},
		{"9x9(10)", 9, 10},
		{"16x16(40)", 16, 40},
		{"5x5(20)", 5, 20},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for seed := uint64(0); seed < 30; seed++ {
				b := board.New(test.size, test.mines, board.WithSeed(seed))
				p := New(rand.New(rand.NewPCG(seed, 1)))
				res := p.Play(b, b.Cell(test.size/2, test.size/2))

				require.True(t, res.State.Terminal(), "seed %d ended in %s", seed, res.State)
				assert.Equal(t, test.mines, res.Placed)
				assert.GreaterOrEqual(t, res.Moves, 1)
			}
		})
	}
}

func TestStep_DeductionsNeverHitMines(t *testing.T) {
	for seed := uint64(0); seed < 40; seed++ {
		b := board.New(9, 12, board.WithSeed(seed))
		first := b.Cell(4, 4)
		b.StartGame(first)
		b.Reveal(first)

		p := New(rand.New(rand.NewPCG(seed, 2)))
		for !b.State().Terminal() {
			m, ok := p.Step(b)
			require.True(t, ok)
			c := b.Cell(m.X, m.Y)
			if !m.Guess {
				if m.Kind == MoveFlag {
					require.True(t, c.IsMine(), "seed %d flagged safe (%d,%d)", seed, m.X, m.Y)
				} else {
					require.False(t, c.IsMine(), "seed %d revealed mine (%d,%d)", seed, m.X, m.Y)
				}
			}
			require.True(t, Apply(b, m))
		}
	}
}

func TestStep_TerminalBoardHasNoMove(t *testing.T) {
	b := board.New(3, 0, board.WithSeed(1))
	b.StartGame(b.Cell(0, 0))
	b.Reveal(b.Cell(0, 0))
	require.Equal(t, board.StateWon, b.State())

	_, ok := New(rand.New(rand.NewPCG(1, 1))).Step(b)
	assert.False(t, ok)
}

func TestMoveKind_String(t *testing.T) {
	assert.Equal(t, "reveal", MoveReveal.String())
	assert.Equal(t, "flag", MoveFlag.String())
}
