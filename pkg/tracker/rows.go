package tracker

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/Tpypan/wwlens/models"
	"github.com/Tpypan/wwlens/pkg/pageclass"
	"github.com/Tpypan/wwlens/pkg/render"
)

// deadlineLayouts are the date formats the listing table has been observed
// to use for the deadline column.
var deadlineLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"2006-01-02",
	"01/02/2006",
}

// refreshRows rebuilds the navigable row index from the currently visible
// listing rows and re-applies the row decorations. Rows without a
// recognizable posting id are skipped.
func (t *Tracker) refreshRows() {
	doc := t.page.Doc()
	table := pageclass.ListingTable.Find(doc.Selection).First()
	if table.Length() == 0 {
		t.rows = nil
		return
	}

	threshold := t.settings.Get().NewJobDaysThreshold
	var rows []models.RowRef
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		id := pageclass.RowID(row)
		if id == "" {
			return
		}
		rows = append(rows, models.RowRef{
			ID:    id,
			Row:   row,
			Link:  pageclass.RowLink(row),
			Fresh: rowIsFresh(row, threshold),
		})
	})
	t.rows = rows

	shortlisted := func(string) bool { return false }
	if t.store != nil {
		shortlisted = t.store.Contains
	}
	render.DecorateRows(t.rows, shortlisted)
}

// rowIsFresh reports whether the row's deadline is close enough to
// highlight. The comparison against threshold-7 reproduces the behavior
// users already rely on.
// TODO: revisit the -7 offset; it probably wants to be a second setting.
func rowIsFresh(row *goquery.Selection, threshold int) bool {
	deadline, ok := rowDeadline(row)
	if !ok {
		return false
	}
	days := int(time.Until(deadline).Hours() / 24)
	return days >= 0 && days <= threshold-7
}

// rowDeadline scans the row's cells for the first parseable date.
func rowDeadline(row *goquery.Selection) (time.Time, bool) {
	var deadline time.Time
	var found bool
	row.Find("td").EachWithBreak(func(_ int, td *goquery.Selection) bool {
		text := strings.TrimSpace(td.Text())
		if text == "" {
			return true
		}
		for _, layout := range deadlineLayouts {
			if ts, err := time.Parse(layout, text); err == nil {
				deadline = ts
				found = true
				return false
			}
		}
		return true
	})
	return deadline, found
}

// rowIDSet snapshots the ids of the tracked rows, used to detect that a
// page change has actually landed.
func (t *Tracker) rowIDSet() map[string]struct{} {
	ids := make(map[string]struct{}, len(t.rows))
	for _, r := range t.rows {
		ids[r.ID] = struct{}{}
	}
	return ids
}

// rowsChanged reports whether the currently visible rows differ from the
// given snapshot.
func rowsChanged(snapshot map[string]struct{}, rows []models.RowRef) bool {
	if len(rows) != len(snapshot) {
		return len(rows) > 0
	}
	for _, r := range rows {
		if _, ok := snapshot[r.ID]; !ok {
			return true
		}
	}
	return false
}
