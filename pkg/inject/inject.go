// Package inject provides the generic DOM insertion helpers: stylesheet and
// style-block insertion with insert-once semantics, plus tagging so every
// injected element can be swept in one pass.
package inject

import (
	stdhtml "html"

	"github.com/PuerkitoBio/goquery"
)

// AttrInjected tags every element this module inserts.
const AttrInjected = "data-wwlens-injected"

// attrLogicalID keys insert-once semantics: one element per logical id,
// updated in place on repeat calls.
const attrLogicalID = "data-wwlens-id"

// EnsureStyle inserts an inline style block under head exactly once per
// logical id. Repeat calls replace the block's content in place.
func EnsureStyle(doc *goquery.Document, id, css string) {
	if existing := find(doc, "style", id); existing.Length() > 0 {
		existing.SetHtml(css)
		return
	}
	head(doc).AppendHtml(
		`<style ` + attrLogicalID + `="` + stdhtml.EscapeString(id) + `" ` +
			AttrInjected + `="true">` + css + `</style>`)
}

// EnsureStylesheet inserts a stylesheet link under head exactly once per
// logical id. Repeat calls update the href in place.
func EnsureStylesheet(doc *goquery.Document, id, href string) {
	if existing := find(doc, "link", id); existing.Length() > 0 {
		existing.SetAttr("href", href)
		return
	}
	head(doc).AppendHtml(
		`<link rel="stylesheet" href="` + stdhtml.EscapeString(href) + `" ` +
			attrLogicalID + `="` + stdhtml.EscapeString(id) + `" ` +
			AttrInjected + `="true">`)
}

// Tag marks sel as injected so Cleanup can remove it later.
func Tag(sel *goquery.Selection) {
	sel.SetAttr(AttrInjected, "true")
}

// Cleanup removes every injected element from doc and returns how many were
// removed.
func Cleanup(doc *goquery.Document) int {
	matched := doc.Find("[" + AttrInjected + "]")
	n := matched.Length()
	matched.Remove()
	return n
}

func find(doc *goquery.Document, tag, id string) *goquery.Selection {
	return doc.Find(tag + `[` + attrLogicalID + `="` + id + `"]`).First()
}

func head(doc *goquery.Document) *goquery.Selection {
	if h := doc.Find("head").First(); h.Length() > 0 {
		return h
	}
	return doc.Selection.Children().First()
}
