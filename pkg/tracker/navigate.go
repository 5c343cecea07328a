package tracker

import (
	"context"

	"github.com/Tpypan/wwlens/models"
	"github.com/Tpypan/wwlens/pkg/pageclass"
)

// navigate moves delta postings from the currently open one. The index is
// re-derived from the open view's posting id on every request: the user may
// have opened a posting by direct click, so the cached index cannot be
// trusted across such gaps.
func (t *Tracker) navigate(ctx context.Context, delta int) {
	if t.state != StateDetailProcessed || delta == 0 {
		return
	}

	doc := t.page.Doc()
	root := pageclass.DetailRoot.Find(doc.Selection).First()
	idx := t.indexOf(pageclass.OpenJobID(root))
	if idx == models.IndexUnset || len(t.rows) == 0 {
		t.logger.Debug("navigation ignored, no known position", "delta", delta)
		return
	}
	t.current = idx

	next := idx + delta
	if next >= 0 && next < len(t.rows) {
		t.closeDetail()
		t.openRow(next)
		t.state = StateWatchingDetailOpen
		return
	}

	t.handOffToPager(ctx, delta, next)
}

// handOffToPager runs an off-the-end navigation through the listing's own
// page controls. With no control present the index clamps to the boundary
// and the user gets a transient notice; no state changes.
func (t *Tracker) handOffToPager(ctx context.Context, delta, next int) {
	doc := t.page.Doc()

	chain := pageclass.PagerNext
	intent := edgeFirst
	notice := "Last job on the last page."
	if delta < 0 {
		chain = pageclass.PagerPrev
		intent = edgeLast
		notice = "First job on the first page."
	}

	pager := chain.Find(doc.Selection).First()
	if pager.Length() == 0 {
		if next < 0 {
			t.current = 0
		} else {
			t.current = len(t.rows) - 1
		}
		t.notifier.Notify(notice)
		return
	}

	t.prevRowIDs = t.rowIDSet()
	t.pendingEdge = intent
	t.closeDetail()
	if err := t.page.Activate(pager); err != nil {
		t.logger.Warn("pager activation failed", "error", err)
		t.pendingEdge = edgeNone
		return
	}
	t.state = StateWatchingTableUpdate
	t.awaitTableUpdate(ctx)
}

// awaitTableUpdate polls until the visible row ids differ from the
// pre-navigation snapshot, then opens the recorded end of the new page. On
// timeout the hand-off is abandoned silently so navigation never wedges.
func (t *Tracker) awaitTableUpdate(ctx context.Context) {
	changed := t.await(ctx, func() bool {
		t.refreshRows()
		return rowsChanged(t.prevRowIDs, t.rows)
	})

	intent := t.pendingEdge
	t.pendingEdge = edgeNone
	t.prevRowIDs = nil

	if !changed {
		t.logger.Warn("listing table never updated after pager activation")
		t.state = StateWatchingDetailOpen
		return
	}

	idx := 0
	if intent == edgeLast {
		idx = len(t.rows) - 1
	}
	t.openRow(idx)
	t.state = StateWatchingDetailOpen
}

// openRow simulates activation of the target row's posting link.
func (t *Tracker) openRow(idx int) {
	if idx < 0 || idx >= len(t.rows) {
		return
	}
	t.current = idx
	row := t.rows[idx]
	if row.Link == nil || row.Link.Length() == 0 {
		t.logger.Warn("tracked row has no activation link", "id", row.ID, "index", idx)
		return
	}
	if err := t.page.Activate(row.Link); err != nil {
		t.logger.Warn("row activation failed", "id", row.ID, "error", err)
	}
}
