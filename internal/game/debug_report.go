package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/sirupsen/logrus"
)

// clipboardWrite is swapped out in tests; headless hosts have no clipboard.
var clipboardWrite = clipboard.WriteAll

// debugReport renders the board, status and the last lastEvents board events
// as plain text for bug reports.
func (c *Controller) debugReport(lastEvents int) string {
	if lastEvents <= 0 {
		lastEvents = 30
	}
	cfg := c.cfg
	st := c.Status()

	var b strings.Builder
	fmt.Fprintf(&b, "--- Mine-Sense debug report ---\n")
	fmt.Fprintf(&b, "seed=%d round=%d grid=%dx%d mines=%d help=%t\n",
		cfg.Seed, c.round, cfg.GridSize, cfg.GridSize, cfg.MineTarget(), c.help)
	fmt.Fprintf(&b, "%s\n", st.Text())
	if d := st.DebugText(); d != "" {
		fmt.Fprintf(&b, "hover %s\n", d)
	}
	b.WriteByte('\n')

	// Mines are only disclosed once the game is over.
	b.WriteString(c.board.Report(st.State.Terminal()))
	b.WriteByte('\n')

	entries := c.events.Entries()
	if len(entries) > lastEvents {
		entries = entries[len(entries)-lastEvents:]
	}
	fmt.Fprintf(&b, "events (last %d of %d):\n", len(entries), c.events.Len())
	for _, e := range entries {
		b.WriteString("  ")
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// CopyDebugReport puts the debug report on the system clipboard.
func (c *Controller) CopyDebugReport() error {
	report := c.debugReport(0)
	if err := clipboardWrite(report); err != nil {
		Log.WithFields(logrus.Fields{
			"bytes": len(report),
		}).WithError(err).Warn("clipboard copy failed")
		return fmt.Errorf("copy debug report: %w", err)
	}
	Log.WithField("bytes", len(report)).Debug("debug report copied")
	return nil
}
