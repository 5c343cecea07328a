// Package render mutates the live document: it inserts the priority summary
// panel, hides the original fields the panel supersedes, and decorates
// listing rows with shortlist and freshness affordances.
package render

import (
	"errors"
	stdhtml "html"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/Tpypan/wwlens/models"
	"github.com/Tpypan/wwlens/pkg/inject"
	"github.com/Tpypan/wwlens/pkg/pageclass"
)

const (
	// PanelID is the DOM id of the injected summary panel.
	PanelID = "wwlens-priority-panel"

	// AttrProcessed marks a detail root whose open state has already been
	// enhanced; re-triggers against it are no-ops until the view is torn
	// down and rebuilt.
	AttrProcessed = "data-wwlens-processed"

	// AttrHidden records why an original element was hidden.
	AttrHidden = "data-wwlens-hidden"

	styleID      = "wwlens-style"
	maxLinkChars = 40

	starFilled = "★"
	starEmpty  = "☆"
)

// ErrNoAnchor reports that the detail view lacks the expected insertion
// point; the render pass is abandoned and a fresh open event will retry.
var ErrNoAnchor = errors.New("render: no anchor section in detail view")

const panelCSS = `
#` + PanelID + ` { margin: 8px 0; padding: 8px 12px; border: 1px solid #cbd4e1; border-radius: 6px; }
#` + PanelID + ` .wwlens-cell { display: inline-block; margin-right: 16px; }
#` + PanelID + ` .wwlens-cell b { margin-right: 4px; }
.wwlens-fresh { background-color: #fff7d6; }
[` + AttrHidden + `] { display: none !important; }
`

// Input carries one render pass.
type Input struct {
	Doc      *goquery.Document
	Root     *goquery.Selection // detail root; receives the processed flag
	Items    []models.PriorityItem
	Fields   models.FieldMapping
	Settings models.Settings

	JobID       string
	Shortlisted bool
}

// Render performs one pipeline pass against the live document. It is
// idempotent per open state: a root already marked processed is left
// untouched, and a re-render within one state never stacks panels.
func Render(in Input, logger *slog.Logger) error {
	if in.Root == nil || in.Root.Length() == 0 {
		return nil
	}
	if _, done := in.Root.Attr(AttrProcessed); done {
		return nil
	}

	// Nothing qualified: drop any panel from a previous pass, mark the view
	// handled, and leave it as the site rendered it.
	if len(in.Items) == 0 {
		in.Doc.Find("#" + PanelID).Remove()
		in.Root.SetAttr(AttrProcessed, "true")
		return nil
	}

	anchor := pageclass.AnchorSection.Find(in.Root).First()
	if anchor.Length() == 0 {
		return ErrNoAnchor
	}

	inject.EnsureStyle(in.Doc, styleID, panelCSS)

	// Never stack duplicate panels across passes.
	in.Doc.Find("#" + PanelID).Remove()

	panel := buildPanel(in.Items, in.JobID, in.Shortlisted)
	if heading := anchor.Find("h1,h2,h3,h4").First(); heading.Length() > 0 {
		heading.AfterHtml(panel)
	} else {
		anchor.PrependHtml(panel)
	}

	hideSuperseded(in)

	in.Root.SetAttr(AttrProcessed, "true")
	logger.Debug("panel rendered", "job_id", in.JobID, "items", len(in.Items))
	return nil
}

// buildPanel assembles the panel markup: a header with the shortlist glyph
// and one cell per item.
func buildPanel(items []models.PriorityItem, jobID string, shortlisted bool) string {
	star := starEmpty
	if shortlisted {
		star = starFilled
	}

	var b strings.Builder
	b.WriteString(`<div id="` + PanelID + `" ` + inject.AttrInjected + `="true">`)
	b.WriteString(`<div class="wwlens-header"><b>Priority info</b> `)
	b.WriteString(`<span class="wwlens-star" data-posting-id="` + stdhtml.EscapeString(jobID) + `">` + star + `</span>`)
	b.WriteString(`</div>`)
	for _, it := range items {
		b.WriteString(`<span class="wwlens-cell" data-key="` + stdhtml.EscapeString(it.Key) + `">`)
		b.WriteString(`<b>` + stdhtml.EscapeString(it.Label) + `</b>`)
		b.WriteString(cellValue(it))
		b.WriteString(`</span>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// cellValue renders a link-flagged item as a truncated anchor when its value
// is a well-formed absolute http(s) URL, and as plain text otherwise.
func cellValue(it models.PriorityItem) string {
	if it.IsLink {
		if u, err := url.Parse(strings.TrimSpace(it.Value)); err == nil &&
			(u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
			display := it.Value
			if runes := []rune(display); len(runes) > maxLinkChars {
				display = string(runes[:maxLinkChars]) + "…"
			}
			return `<a href="` + stdhtml.EscapeString(it.Value) + `" target="_blank">` +
				stdhtml.EscapeString(display) + `</a>`
		}
	}
	return stdhtml.EscapeString(it.Value)
}

// locationConstituents are hidden whenever a location item was promoted:
// the site duplicates them in an unrelated page region.
var locationConstituents = []string{
	models.KeyCity, models.KeyProvince, models.KeyCountry,
	models.KeyAddress, models.KeyPostal, models.KeyRegion,
}

// alwaysHidden fields are duplicated elsewhere on the page regardless of
// promotion.
var alwaysHidden = []string{
	models.KeyDeadline, models.KeyMethod, models.KeyExternalURL,
}

// hideSuperseded hides (never removes) the original elements backing the
// promoted fields.
func hideSuperseded(in Input) {
	locationPromoted := false
	for _, it := range in.Items {
		if it.Key == models.KeyLocation {
			locationPromoted = true
		}
	}

	hideOne := func(key string) {
		f, ok := in.Fields[key]
		if !ok || f.Owner == nil || f.Owner.Length() == 0 {
			return
		}
		f.Owner.SetAttr(AttrHidden, key)
	}
	// A promoted item may be backed by a synonym field; hide the whole group
	// so a "Salary" row does not survive its promotion as "compensation".
	hide := func(key string) {
		hideOne(key)
		for _, syn := range models.Synonyms[key] {
			hideOne(syn)
		}
	}

	for _, key := range in.Settings.PriorityKeys {
		hide(key)
	}
	if locationPromoted {
		for _, key := range locationConstituents {
			hide(key)
		}
	}
	for _, key := range alwaysHidden {
		hide(key)
	}
}
