package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/Garsondee/Mine-Sense/internal/autoplay"
	"github.com/Garsondee/Mine-Sense/internal/board"
	"github.com/Garsondee/Mine-Sense/internal/game"
)

type runStats struct {
	runIndex int
	seed     uint64

	state   board.State
	moves   int
	guesses int
	flags   int
	placed  int

	floods        int // zero regions opened
	largestRegion int // most cells opened by one flood
	wrongFlags    int // flags left on safe cells at the end
}

type options struct {
	runs     int
	grid     int
	mines    int
	seedBase uint64
	seedStep uint64
	workers  int
	verbose  bool
}

func (o options) validate() error {
	switch {
	case o.runs <= 0:
		return errors.New("-runs must be > 0")
	case o.grid < 2:
		return errors.New("-grid must be >= 2")
	case o.mines < 1 || o.mines >= o.grid*o.grid:
		return fmt.Errorf("-mines must be in [1, %d)", o.grid*o.grid)
	case o.workers <= 0:
		return errors.New("-workers must be > 0")
	}
	return nil
}

func main() {
	var o options
	flag.IntVar(&o.runs, "runs", 20, "number of headless games")
	flag.IntVar(&o.grid, "grid", 9, "cells per side")
	flag.IntVar(&o.mines, "mines", 12, "mines per board")
	flag.Uint64Var(&o.seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Uint64Var(&o.seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&o.workers, "workers", runtime.NumCPU(), "games played concurrently")
	flag.BoolVar(&o.verbose, "verbose", false, "record per-cell flood events")
	flag.Parse()

	if err := o.validate(); err != nil {
		fmt.Println("error:", err)
		os.Exit(2)
	}

	fmt.Printf("=== Headless Minesweeper Report ===\n")
	fmt.Printf("grid=%dx%d mines=%d runs=%d seed_base=%d seed_step=%d\n\n",
		o.grid, o.grid, o.mines, o.runs, o.seedBase, o.seedStep)

	all, err := runAll(context.Background(), o)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	for _, rs := range all {
		printRun(rs)
	}
	printAggregate(summarize(all))
}

// runAll plays o.runs games on up to o.workers goroutines. Each game owns its
// session; results come back ordered by run index.
func runAll(ctx context.Context, o options) ([]runStats, error) {
	all := make([]runStats, o.runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := 0; i < o.runs; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seed := o.seedBase + uint64(i)*o.seedStep
			all[i] = runGame(i+1, seed, o)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return all, nil
}

func runGame(runIndex int, seed uint64, o options) runStats {
	ts := game.NewTestSession(
		game.WithGridSize(o.grid),
		game.WithMines(o.mines),
		game.WithSeed(seed),
		game.WithVerbose(o.verbose),
	)
	p := autoplay.New(rand.New(rand.NewPCG(seed, seed>>1|1))) // #nosec G404 -- simulation only
	res := ts.RunAutoplay(p, o.grid/2, o.grid/2)
	return collect(runIndex, seed, res, ts.Board())
}

func collect(runIndex int, seed uint64, res autoplay.Result, b *board.Board) runStats {
	rs := runStats{
		runIndex: runIndex,
		seed:     seed,
		state:    res.State,
		moves:    res.Moves,
		guesses:  res.Guesses,
		flags:    res.Flags,
		placed:   res.Placed,
	}
	for _, e := range b.Events().Filter(board.CatFlood, "region") {
		rs.floods++
		if e.NumVal > rs.largestRegion {
			rs.largestRegion = e.NumVal
		}
	}
	for _, c := range b.Cells() {
		if c.IsFlagged() && !c.IsMine() {
			rs.wrongFlags++
		}
	}
	return rs
}

func printRun(rs runStats) {
	fmt.Printf("run=%02d seed=%d result=%-5s moves=%3d guesses=%2d flags=%2d floods=%2d largest_region=%3d wrong_flags=%d\n",
		rs.runIndex, rs.seed, rs.state, rs.moves, rs.guesses, rs.flags, rs.floods, rs.largestRegion, rs.wrongFlags)
}

type aggregate struct {
	runs        int
	wins        int
	losses      int
	unfinished  int
	avgMoves    float64
	avgGuesses  float64
	noGuessWins int // wins that needed no guess at all
	medianMoves int
}

func summarize(all []runStats) aggregate {
	a := aggregate{runs: len(all)}
	if len(all) == 0 {
		return a
	}
	moves := make([]int, 0, len(all))
	totalMoves, totalGuesses := 0, 0
	for _, rs := range all {
		switch rs.state {
		case board.StateWon:
			a.wins++
			if rs.guesses == 0 {
				a.noGuessWins++
			}
		case board.StateLost:
			a.losses++
		default:
			a.unfinished++
		}
		totalMoves += rs.moves
		totalGuesses += rs.guesses
		moves = append(moves, rs.moves)
	}
	sort.Ints(moves)
	a.medianMoves = moves[len(moves)/2]
	a.avgMoves = float64(totalMoves) / float64(len(all))
	a.avgGuesses = float64(totalGuesses) / float64(len(all))
	return a
}

func (a aggregate) winRate() float64 {
	if a.runs == 0 {
		return 0
	}
	return float64(a.wins) / float64(a.runs)
}

func printAggregate(a aggregate) {
	fmt.Printf("\n=== Aggregate ===\n")
	fmt.Printf("runs=%d wins=%d losses=%d unfinished=%d win_rate=%.1f%%\n",
		a.runs, a.wins, a.losses, a.unfinished, a.winRate()*100)
	fmt.Printf("avg_moves=%.1f median_moves=%d avg_guesses=%.2f no_guess_wins=%d\n",
		a.avgMoves, a.medianMoves, a.avgGuesses, a.noGuessWins)
}
