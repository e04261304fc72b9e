package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/Garsondee/Mine-Sense/internal/board"
	"github.com/Garsondee/Mine-Sense/internal/game"
)

func main() {
	cfg := game.DefaultConfig()

	var configPath string
	var logLevel string
	flag.StringVar(&configPath, "config", "", "JSON config file; flags given explicitly override it")
	flag.StringVar(&logLevel, "log-level", "info", "logrus level (debug, info, warn, error)")
	flag.IntVar(&cfg.GridSize, "grid", cfg.GridSize, "cells per side")
	flag.Float64Var(&cfg.MineDensity, "density", cfg.MineDensity, "fraction of cells that are mines")
	flag.IntVar(&cfg.Mines, "mines", cfg.Mines, "explicit mine count (overrides -density)")
	flag.IntVar(&cfg.BoardPixels, "pixels", cfg.BoardPixels, "board side in pixels")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed, 0 for clock")
	flag.BoolVar(&cfg.HelpMode, "help-mode", cfg.HelpMode, "start with neighbour outlines on")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "record per-cell flood events")
	flag.Parse()

	if configPath != "" {
		fileCfg := game.DefaultConfig()
		if err := game.ReadConfig(configPath, &fileCfg); err != nil {
			log.Fatal(err)
		}
		cfg = mergeFlags(fileCfg, cfg)
	}

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		log.Fatal(err)
	}
	for _, l := range []*logrus.Logger{game.Log, board.Log} {
		l.SetLevel(level)
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowTitle("Mine Sense")
	ebiten.SetWindowSize(g.WindowSize())
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// mergeFlags copies every explicitly set flag from flags onto file.
func mergeFlags(file, flags game.Config) game.Config {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "grid":
			file.GridSize = flags.GridSize
		case "density":
			file.MineDensity = flags.MineDensity
		case "mines":
			file.Mines = flags.Mines
		case "pixels":
			file.BoardPixels = flags.BoardPixels
		case "seed":
			file.Seed = flags.Seed
		case "help-mode":
			file.HelpMode = flags.HelpMode
		case "verbose":
			file.Verbose = flags.Verbose
		}
	})
	return file
}
