// Package tracker watches the live document for the posting detail overlay
// and listing-table changes, runs the enhancement pipeline exactly once per
// distinct open state, and drives next/previous navigation across postings
// and pages.
//
// The tracker is a single-threaded event loop: all DOM access happens on
// the goroutine running Run, in response to mutation notifications,
// navigation requests, and poll timer ticks. There is no locking; the
// processed flag on the detail root is the only guard against duplicate
// work, and superseded polls verify DOM state before acting so their late
// completion is a harmless no-op.
package tracker

import (
	"context"
	"log/slog"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/Tpypan/wwlens/models"
	"github.com/Tpypan/wwlens/pkg/compose"
	"github.com/Tpypan/wwlens/pkg/dom"
	"github.com/Tpypan/wwlens/pkg/extract"
	"github.com/Tpypan/wwlens/pkg/notify"
	"github.com/Tpypan/wwlens/pkg/pageclass"
	"github.com/Tpypan/wwlens/pkg/render"
	"github.com/Tpypan/wwlens/pkg/settings"
	"github.com/Tpypan/wwlens/pkg/shortlist"
)

// State is the tracker's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateWatchingDetailOpen
	StateDetailProcessed
	StateWatchingTableUpdate
)

func (s State) String() string {
	switch s {
	case StateWatchingDetailOpen:
		return "watching_detail_open"
	case StateDetailProcessed:
		return "detail_processed"
	case StateWatchingTableUpdate:
		return "watching_table_update"
	}
	return "idle"
}

// edge records which end of a freshly loaded page to auto-open after a
// pagination hand-off.
type edge int

const (
	edgeNone edge = iota
	edgeFirst
	edgeLast
)

// closeSuppressWindow is how long after a synthetic close user-initiated
// close requests are ignored, so our own interactions don't recurse.
const closeSuppressWindow = 500 * time.Millisecond

// Config bounds the tracker's polling loops.
type Config struct {
	PollAttempts int
	PollInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.PollAttempts <= 0 {
		c.PollAttempts = 10
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 150 * time.Millisecond
	}
	return c
}

// Tracker owns the navigation state for one page load.
type Tracker struct {
	page     dom.Page
	settings *settings.Store
	store    *shortlist.Store
	notifier notify.Notifier
	logger   *slog.Logger
	cfg      Config

	state   State
	rows    []models.RowRef
	current int

	pendingEdge        edge
	prevRowIDs         map[string]struct{}
	suppressCloseUntil time.Time
	processing         bool

	navCh    chan int
	rescanCh chan struct{}
}

// New builds a tracker over page. The shortlist store may be nil, in which
// case no star affordances are rendered.
func New(page dom.Page, st *settings.Store, store *shortlist.Store, n notify.Notifier, logger *slog.Logger, cfg Config) *Tracker {
	t := &Tracker{
		page:     page,
		settings: st,
		store:    store,
		notifier: n,
		logger:   logger,
		cfg:      cfg.withDefaults(),
		state:    StateIdle,
		current:  models.IndexUnset,
		navCh:    make(chan int, 4),
		rescanCh: make(chan struct{}, 1),
	}
	if st != nil {
		// A settings change invalidates the current enhancement; the open
		// view is reprocessed on the event loop.
		st.OnChange(func([]string) { t.requestRescan() })
	}
	return t
}

func (t *Tracker) requestRescan() {
	select {
	case t.rescanCh <- struct{}{}:
	default:
	}
}

// reprocessOpenDetail clears the processed flag on the open detail view and
// runs the pipeline again under the new settings.
func (t *Tracker) reprocessOpenDetail(ctx context.Context) {
	doc := t.page.Doc()
	root := pageclass.DetailRoot.Find(doc.Selection).First()
	if root.Length() > 0 {
		root.RemoveAttr(render.AttrProcessed)
		root.Find("[" + render.AttrHidden + "]").RemoveAttr(render.AttrHidden)
	}
	if t.state == StateDetailProcessed {
		t.state = StateWatchingDetailOpen
	}
	t.scan(ctx)
}

// State returns the current lifecycle state.
func (t *Tracker) State() State { return t.state }

// CurrentIndex returns the cached navigation index, or models.IndexUnset.
func (t *Tracker) CurrentIndex() int { return t.current }

// Rows returns the tracked listing rows.
func (t *Tracker) Rows() []models.RowRef { return t.rows }

// Navigate requests a relative move (-1 previous, +1 next). Safe to call
// from any goroutine; the move runs on the tracker's event loop.
func (t *Tracker) Navigate(delta int) {
	select {
	case t.navCh <- delta:
	default:
		t.logger.Debug("navigation request dropped, queue full", "delta", delta)
	}
}

// Run starts the event loop and blocks until ctx is done. The tracker
// begins watching for the detail overlay immediately; an overlay already
// present at start is processed on the first scan.
func (t *Tracker) Run(ctx context.Context) error {
	t.state = StateWatchingDetailOpen
	t.scan(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.page.Mutations():
			t.scan(ctx)
		case delta := <-t.navCh:
			t.navigate(ctx, delta)
		case <-t.rescanCh:
			t.reprocessOpenDetail(ctx)
		}
	}
}

// Step processes the current document state once, outside the event loop.
// The replay tooling uses it to drive the tracker from recorded snapshots.
func (t *Tracker) Step(ctx context.Context) {
	if t.state == StateIdle {
		t.state = StateWatchingDetailOpen
	}
	t.scan(ctx)
}

// scan inspects the document after a mutation and advances the state
// machine.
func (t *Tracker) scan(ctx context.Context) {
	doc := t.page.Doc()
	root := pageclass.DetailRoot.Find(doc.Selection).First()

	switch t.state {
	case StateIdle:
		t.state = StateWatchingDetailOpen
		fallthrough

	case StateWatchingDetailOpen:
		if root.Length() == 0 {
			// No overlay; the mutation may still have touched the table.
			t.refreshRows()
			return
		}
		t.processDetail(ctx, root)

	case StateDetailProcessed:
		if root.Length() == 0 {
			t.logger.Debug("detail closed")
			t.state = StateWatchingDetailOpen
			return
		}
		// Same open state re-notifying; the processed flag makes this a
		// no-op. A rebuilt overlay loses the flag and is processed fresh.
		t.processDetail(ctx, root)

	case StateWatchingTableUpdate:
		// Table progress is handled by the bounded poll inside navigate;
		// nothing to do on stray mutations here.
	}
}

// processDetail runs the pipeline once for an open detail view: wait for
// the content sub-panel to populate, extract, compose, render, and refresh
// the navigable row index.
func (t *Tracker) processDetail(ctx context.Context, root *goquery.Selection) {
	if t.processing {
		return
	}
	t.processing = true
	defer func() { t.processing = false }()

	populated := t.await(ctx, func() bool {
		content := pageclass.DetailContent.Find(root).First()
		return content.Length() > 0 && len(content.Text()) > 0
	})
	if !populated {
		t.logger.Debug("detail content never populated, leaving view as is")
		return
	}

	doc := t.page.Doc()
	cfg := t.settings.Get()
	jobID := pageclass.OpenJobID(root)
	_, repeat := root.Attr(render.AttrProcessed)

	if cfg.RearrangerEnabled {
		content := pageclass.DetailContent.Find(root).First()
		fields := extract.Extract(content)
		items := compose.Compose(fields, cfg)
		err := render.Render(render.Input{
			Doc:         doc,
			Root:        root,
			Items:       items,
			Fields:      fields,
			Settings:    cfg,
			JobID:       jobID,
			Shortlisted: t.shortlisted(jobID),
		}, t.logger)
		if err != nil {
			// Anchor missing or similar: abort this pass, a fresh open
			// event will retry.
			t.logger.Warn("render pass aborted", "job_id", jobID, "error", err)
		}
	} else {
		root.SetAttr(render.AttrProcessed, "true")
	}

	t.refreshRows()
	t.current = t.indexOf(jobID)
	t.state = StateDetailProcessed
	if repeat {
		// Re-notification of the same open state; the pass above was a no-op.
		t.logger.Debug("detail processed", "job_id", jobID, "index", t.current, "rows", len(t.rows))
	} else {
		t.logger.Info("detail processed", "job_id", jobID, "index", t.current, "rows", len(t.rows))
	}
}

// shortlisted resolves the star state for a posting id.
func (t *Tracker) shortlisted(id string) bool {
	return t.store != nil && id != "" && t.store.Contains(id)
}

// indexOf returns the tracked index of posting id, falling back to the
// cached index when the id is unknown and a cached value exists.
func (t *Tracker) indexOf(id string) int {
	if id != "" {
		for i, r := range t.rows {
			if r.ID == id {
				return i
			}
		}
	}
	return t.current
}

// ToggleShortlist flips the shortlist state of id and refreshes the row
// glyphs. It returns the new state.
func (t *Tracker) ToggleShortlist(id string) bool {
	if t.store == nil || id == "" {
		return false
	}
	now := t.store.Toggle(id)
	render.DecorateRows(t.rows, t.store.Contains)
	return now
}

// RequestClose handles a user-initiated close of the detail view. Requests
// arriving inside the synthetic-close suppression window are ignored.
func (t *Tracker) RequestClose() {
	if time.Now().Before(t.suppressCloseUntil) {
		t.logger.Debug("close request suppressed during synthetic close")
		return
	}
	t.closeDetail()
}

// closeDetail simulates activation of the overlay's close control and arms
// the re-entrancy guard.
func (t *Tracker) closeDetail() {
	t.suppressCloseUntil = time.Now().Add(closeSuppressWindow)
	doc := t.page.Doc()
	btn := pageclass.DetailClose.Find(doc.Selection).First()
	if btn.Length() == 0 {
		return
	}
	if err := t.page.Activate(btn); err != nil {
		t.logger.Warn("close activation failed", "error", err)
	}
}
