package tracker

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
)

func tableRow(t *testing.T, cells ...string) *goquery.Selection {
	t.Helper()
	var b strings.Builder
	b.WriteString("<table><tbody><tr>")
	for _, c := range cells {
		b.WriteString("<td>" + c + "</td>")
	}
	b.WriteString("</tr></tbody></table>")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	if err != nil {
		t.Fatal(err)
	}
	return doc.Find("tr").First()
}

func TestRowIsFresh_ThresholdWindow(t *testing.T) {
	deadline := time.Now().Add(4 * 24 * time.Hour).Format("Jan 2, 2006")
	row := tableRow(t, "123456", "Acme Corp", deadline)

	if !rowIsFresh(row, 14) {
		t.Error("deadline in 4 days with threshold 14 not fresh")
	}
	if rowIsFresh(row, 8) {
		t.Error("deadline in 4 days with threshold 8 reported fresh")
	}
}

func TestRowIsFresh_PastDeadline(t *testing.T) {
	deadline := time.Now().Add(-2 * 24 * time.Hour).Format("Jan 2, 2006")
	row := tableRow(t, "123456", deadline)

	if rowIsFresh(row, 14) {
		t.Error("expired deadline reported fresh")
	}
}

func TestRowDeadline_FirstParseableCellWins(t *testing.T) {
	row := tableRow(t, "123456", "Acme Corp", "2026-09-15", "Oct 1, 2026")

	got, ok := rowDeadline(row)
	if !ok {
		t.Fatal("no deadline found")
	}
	want := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("deadline = %v, want %v", got, want)
	}
}

func TestRowDeadline_NoDateCells(t *testing.T) {
	row := tableRow(t, "123456", "Acme Corp", "Waterloo")
	if _, ok := rowDeadline(row); ok {
		t.Error("found a deadline in a row with no date cells")
	}
}

func TestRowsChanged(t *testing.T) {
	fs := newFakeSite(t, false)
	tr, _, _ := newTestTracker(t, fs)
	tr.Step(context.Background())

	snapshot := tr.rowIDSet()
	if rowsChanged(snapshot, tr.rows) {
		t.Error("unchanged rows reported as changed")
	}

	fs.page.Mutate(func(doc *goquery.Document) {
		doc.Find(`table[class*="table--data"] tbody`).SetHtml(rowHTML(pageTwoIDs))
	})
	tr.refreshRows()
	if !rowsChanged(snapshot, tr.rows) {
		t.Error("replaced rows not reported as changed")
	}
}
