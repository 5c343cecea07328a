// Package pageclass centralizes knowledge of the site's markup: page
// category detection and the candidate selectors for the structures the
// pipeline touches.
//
// Selector chains are ordered candidate lists evaluated first match wins;
// they exist because the site has shipped several markup generations and
// the same logical element answers to different selectors across them. The
// chains are plain data so they can be inspected and tested apart from the
// traversal.
package pageclass

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Category is the coarse page classification.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryListing
	CategoryDetail
)

func (c Category) String() string {
	switch c {
	case CategoryListing:
		return "listing"
	case CategoryDetail:
		return "detail"
	}
	return "unknown"
}

// SelectorChain is an ordered list of candidate selectors. Find evaluates
// them in order and returns the first non-empty match.
type SelectorChain []string

// Find returns the first candidate's match under root, or an empty
// selection when no candidate matches.
func (c SelectorChain) Find(root *goquery.Selection) *goquery.Selection {
	last := root.Slice(0, 0)
	for _, sel := range c {
		last = root.Find(sel)
		if last.Length() > 0 {
			break
		}
	}
	return last
}

// Selector chains for the structures the pipeline touches, newest markup
// generation first.
var (
	DetailRoot = SelectorChain{
		`div[class*="posting__overlay"]`,
		"#postingDiv",
	}
	DetailContent = SelectorChain{
		`div[class*="posting__content"]`,
		"#postingDiv .panel-body",
	}
	DetailClose = SelectorChain{
		`button[aria-label="Close"]`,
		`[class*="overlay__close"]`,
		"#postingClose",
	}
	AnchorSection = SelectorChain{
		`section[class*="posting__summary"]`,
		`div[class*="posting__content"] section`,
		"#postingDiv .panel",
	}
	ListingTable = SelectorChain{
		`table[class*="table--data"] tbody`,
		"#postingsTable tbody",
		"table.tableData tbody",
	}
	PagerNext = SelectorChain{
		`a[aria-label="Go to next page"]`,
		".pagination .next a",
	}
	PagerPrev = SelectorChain{
		`a[aria-label="Go to previous page"]`,
		".pagination .prev a",
	}
)

// rePostingID matches the six-or-more digit posting ids the site uses.
var rePostingID = regexp.MustCompile(`\b(\d{6,})\b`)

// Classify returns the page category for doc. A detail overlay takes
// precedence because it renders on top of the listing.
func Classify(doc *goquery.Document) Category {
	if DetailRoot.Find(doc.Selection).Length() > 0 {
		return CategoryDetail
	}
	if ListingTable.Find(doc.Selection).Length() > 0 {
		return CategoryListing
	}
	return CategoryUnknown
}

// OpenJobID extracts the posting id of an open detail view: the root's
// data attribute when present, otherwise the first posting-id-shaped number
// in the header text.
func OpenJobID(root *goquery.Selection) string {
	if root == nil || root.Length() == 0 {
		return ""
	}
	if id, ok := root.Attr("data-posting-id"); ok && id != "" {
		return id
	}
	header := root.Find(`[class*="posting__header"],h1,h2`).First()
	if m := rePostingID.FindStringSubmatch(header.Text()); m != nil {
		return m[1]
	}
	return ""
}

// RowID extracts the posting id of a listing row: the row's data attribute
// when present, otherwise the first cell holding only a posting-id-shaped
// number.
func RowID(row *goquery.Selection) string {
	if id, ok := row.Attr("data-posting-id"); ok && id != "" {
		return id
	}
	var id string
	row.Find("td").EachWithBreak(func(_ int, td *goquery.Selection) bool {
		text := strings.TrimSpace(td.Text())
		if rePostingID.MatchString(text) && text == rePostingID.FindString(text) {
			id = text
			return false
		}
		return true
	})
	return id
}

// RowLink returns the activation link of a listing row.
func RowLink(row *goquery.Selection) *goquery.Selection {
	if link := row.Find(`a[href*="posting"]`).First(); link.Length() > 0 {
		return link
	}
	return row.Find("td a").First()
}
