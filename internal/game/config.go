package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the fixed game parameters. Nothing here changes at runtime.
type Config struct {
	GridSize    int     `json:"grid_size"`    // cells per side (N)
	MineDensity float64 `json:"mine_density"` // fraction of cells that are mines
	Mines       int     `json:"mines"`        // explicit mine target; 0 derives it from MineDensity
	BoardPixels int     `json:"board_pixels"` // side of the square playfield in pixels
	Seed        uint64  `json:"seed"`         // 0 = seed from the clock
	HelpMode    bool    `json:"help_mode"`    // outline hidden neighbours of the hovered cell
	Verbose     bool    `json:"verbose"`      // record per-cell flood events
}

// DefaultConfig is a 9×9 grid on a 600px surface at 15% mine density.
func DefaultConfig() Config {
	return Config{
		GridSize:    9,
		MineDensity: 0.15,
		BoardPixels: 600,
	}
}

// MineTarget is the number of mines a board built from c receives.
func (c Config) MineTarget() int {
	if c.Mines > 0 {
		return c.Mines
	}
	return int(math.Round(float64(c.GridSize*c.GridSize) * c.MineDensity))
}

// CellPixels is the on-screen side of one cell.
func (c Config) CellPixels() float64 {
	return float64(c.BoardPixels) / float64(c.GridSize)
}

// Validate rejects configurations that cannot produce a playable board.
func (c Config) Validate() error {
	if c.GridSize < 2 || c.GridSize > 64 {
		return fmt.Errorf("%w: grid_size %d outside [2, 64]", ErrInvalidConfig, c.GridSize)
	}
	if c.Mines < 0 {
		return fmt.Errorf("%w: mines %d is negative", ErrInvalidConfig, c.Mines)
	}
	if c.Mines == 0 && (c.MineDensity <= 0 || c.MineDensity >= 1) {
		return fmt.Errorf("%w: mine_density %.2f outside (0, 1)", ErrInvalidConfig, c.MineDensity)
	}
	if m := c.MineTarget(); m >= c.GridSize*c.GridSize {
		return fmt.Errorf("%w: %d mines do not fit a %dx%d grid with a safe start",
			ErrInvalidConfig, m, c.GridSize, c.GridSize)
	}
	if c.BoardPixels < c.GridSize*8 {
		return fmt.Errorf("%w: board_pixels %d too small for %d cells", ErrInvalidConfig, c.BoardPixels, c.GridSize)
	}
	return nil
}

// Fields renders the config for structured logging.
func (c Config) Fields() logrus.Fields {
	return logrus.Fields{
		"grid_size":    c.GridSize,
		"mine_density": c.MineDensity,
		"mines":        c.MineTarget(),
		"board_pixels": c.BoardPixels,
		"seed":         c.Seed,
		"help_mode":    c.HelpMode,
	}
}

// ReadConfig overlays the JSON file at path onto config.
func ReadConfig(path string, config *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(b, config); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
