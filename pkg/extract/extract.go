// Package extract walks an open posting detail view and pulls label/value
// pairs into a normalized field mapping.
//
// The site has shipped two markup dialects for the detail view: a newer
// component-based layout built from key-value widgets, and an older layout
// where bold headings introduce free-text values. Extraction probes for the
// structured-widget marker first and falls back to free-text parsing.
// Extraction is best-effort throughout: a field that cannot be located or
// resolved is simply absent from the result.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/Tpypan/wwlens/models"
	"github.com/Tpypan/wwlens/pkg/labels"
)

// StructuredPairMarker identifies the key-value widgets of the newer layout.
// Its presence under a detail root selects the structured strategy.
const StructuredPairMarker = `[class*="tag__key-value"]`

// blockSelector matches the block-level ancestors we retain as field owners
// for later visibility toggling.
const blockSelector = "tr,div,p,li,section"

// Extract walks root and returns the normalized field mapping. The first
// structural match per canonical key wins; an empty mapping is a valid
// result meaning the view held nothing recognizable.
func Extract(root *goquery.Selection) models.FieldMapping {
	fields := models.FieldMapping{}
	if root == nil || root.Length() == 0 {
		return fields
	}

	lang := labels.DetectLang(sampleText(root))

	if root.Find(StructuredPairMarker).Length() > 0 {
		extractStructured(root, lang, fields)
		return fields
	}
	extractFreeText(root, lang, fields)
	return fields
}

// sampleRuneLimit bounds the language-detection sample.
const sampleRuneLimit = 400

// sampleText returns a bounded slice of the root's visible text, enough for
// language detection without paying for the whole subtree.
func sampleText(root *goquery.Selection) string {
	text := cleanText(root.Text())
	if runes := []rune(text); len(runes) > sampleRuneLimit {
		text = string(runes[:sampleRuneLimit])
	}
	return text
}

// cleanText collapses runs of whitespace into single spaces and trims the
// ends.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ownerOf returns the nearest block-level ancestor of sel, falling back to
// sel itself when no such ancestor exists under the parsed fragment.
func ownerOf(sel *goquery.Selection) *goquery.Selection {
	if sel == nil || sel.Length() == 0 {
		return sel
	}
	if owner := sel.Closest(blockSelector); owner.Length() > 0 {
		return owner
	}
	return sel
}
