// Package replay implements the replay command: it feeds an ordered
// directory of captured DOM snapshots through the lifecycle tracker, which
// is the closest thing to exercising the state machine against the live
// site without a browser attached.
package replay

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Tpypan/wwlens/internal/enhance"
	"github.com/Tpypan/wwlens/pkg/dom"
	"github.com/Tpypan/wwlens/pkg/notify"
	"github.com/Tpypan/wwlens/pkg/settings"
	"github.com/Tpypan/wwlens/pkg/shortlist"
	"github.com/Tpypan/wwlens/pkg/tracker"
	"github.com/urfave/cli/v2"
)

// ReplayAction steps the tracker through every *.html snapshot in the given
// directory, in filename order, logging state transitions as it goes.
func ReplayAction(c *cli.Context) error {
	logger := enhance.NewLogger(c)

	dir := c.String("snapshots")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read snapshot dir: %w", err)
	}
	var snaps []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".html") {
			snaps = append(snaps, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(snaps)
	if len(snaps) == 0 {
		return fmt.Errorf("no .html snapshots in %s", dir)
	}

	first, err := os.ReadFile(snaps[0])
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	page, err := dom.NewMemoryPage(string(first), nil)
	if err != nil {
		return err
	}

	st := settings.Load(c.String("settings"), logger)
	var store *shortlist.Store
	if dbPath := c.String("db"); dbPath != "" {
		store, err = shortlist.Open(dbPath, logger)
		if err != nil {
			logger.Warn("shortlist store unavailable", "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	tr := tracker.New(page, st, store, &notify.Slog{Logger: logger}, logger, tracker.Config{
		PollAttempts: 1, // snapshots are already settled
	})

	for i, snap := range snaps {
		if i > 0 {
			raw, err := os.ReadFile(snap)
			if err != nil {
				return fmt.Errorf("read snapshot: %w", err)
			}
			if err := page.SetHTML(string(raw)); err != nil {
				return err
			}
		}
		before := tr.State()
		tr.Step(c.Context)
		logger.Info("snapshot replayed",
			"snapshot", filepath.Base(snap),
			"state_before", before.String(),
			"state_after", tr.State().String(),
			"index", tr.CurrentIndex(),
			"rows", len(tr.Rows()),
		)
	}
	return nil
}
