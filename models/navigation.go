package models

import "github.com/PuerkitoBio/goquery"

// IndexUnset marks a navigation index that has not been derived yet.
const IndexUnset = -1

// RowRef is one tracked listing row: the posting id plus the live row and
// posting-link selections needed to re-activate it. Row refs are rebuilt
// whenever the listing table's subtree mutates and are never persisted.
type RowRef struct {
	ID   string
	Row  *goquery.Selection
	Link *goquery.Selection
	// Fresh marks a posting whose deadline is near enough to highlight.
	Fresh bool
}
