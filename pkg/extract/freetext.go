package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/Tpypan/wwlens/models"
	"github.com/Tpypan/wwlens/pkg/labels"
	"golang.org/x/net/html"
)

// inlineColonLimit bounds how far into an element's text the colon of an
// inline "label: value" pair may sit before we stop treating it as a label.
const inlineColonLimit = 60

// extractFreeText handles the older layout: bold headings introduce values
// that run as loose siblings until the next heading or block boundary. A
// secondary pass scans for inline "label: value" text to fill keys the bold
// pass missed.
func extractFreeText(root *goquery.Selection, lang labels.Lang, fields models.FieldMapping) {
	root.Find("b,strong").Each(func(_ int, bold *goquery.Selection) {
		rawLabel := cleanText(bold.Text())
		key, ok := labels.Resolve(rawLabel, lang)
		if !ok {
			return
		}
		value := collectSiblingText(bold)
		if value == "" {
			return
		}
		fields.Put(models.Field{
			Key:   key,
			Label: labels.Normalize(rawLabel),
			Value: value,
			Owner: ownerOf(bold),
		})
	})

	extractInlinePairs(root, lang, fields)
}

// collectSiblingText accumulates the content following a bold heading: text
// nodes verbatim, line breaks as a single space, inline elements by their
// text, stopping at the next bold/strong element or any block boundary.
func collectSiblingText(bold *goquery.Selection) string {
	if len(bold.Nodes) == 0 {
		return ""
	}

	var b strings.Builder
	for n := bold.Nodes[0].NextSibling; n != nil; n = n.NextSibling {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
		case html.ElementNode:
			switch n.Data {
			case "b", "strong":
				return cleanText(b.String())
			case "br":
				b.WriteString(" ")
			case "div", "p", "table", "ul", "ol", "h1", "h2", "h3", "h4", "h5", "h6", "hr":
				return cleanText(b.String())
			default:
				b.WriteString(nodeText(n))
			}
		}
	}
	return cleanText(b.String())
}

// nodeText flattens the text content of an inline element.
func nodeText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		} else if c.Type == html.ElementNode {
			b.WriteString(nodeText(c))
		}
	}
	return b.String()
}

// extractInlinePairs fills still-unpopulated keys from elements whose text
// reads "label: value" with the colon near the front.
func extractInlinePairs(root *goquery.Selection, lang labels.Lang, fields models.FieldMapping) {
	root.Find("p,div,span,td").Each(func(_ int, sel *goquery.Selection) {
		text := cleanText(sel.Text())
		idx := strings.Index(text, ":")
		if idx <= 0 || idx > inlineColonLimit {
			return
		}
		key, ok := labels.Resolve(text[:idx], lang)
		if !ok {
			return
		}
		value := strings.TrimSpace(text[idx+1:])
		if value == "" {
			return
		}
		fields.Put(models.Field{
			Key:   key,
			Label: labels.Normalize(text[:idx]),
			Value: value,
			Owner: ownerOf(sel),
		})
	})
}
