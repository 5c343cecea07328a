package render

import (
	stdhtml "html"

	"github.com/Tpypan/wwlens/models"
)

const attrStarred = "data-wwlens-star"

// DecorateRows applies the shortlist glyph and the fresh-posting highlight
// to the tracked listing rows. Safe to call on every table rebuild: glyphs
// are updated in place, never duplicated.
func DecorateRows(rows []models.RowRef, shortlisted func(id string) bool) {
	for _, r := range rows {
		if r.Row == nil || r.Row.Length() == 0 {
			continue
		}

		if r.Fresh {
			r.Row.AddClass("wwlens-fresh")
		} else {
			r.Row.RemoveClass("wwlens-fresh")
		}

		star := starEmpty
		if shortlisted != nil && shortlisted(r.ID) {
			star = starFilled
		}
		if existing := r.Row.Find("[" + attrStarred + "]").First(); existing.Length() > 0 {
			existing.SetHtml(star)
			continue
		}
		cell := r.Row.Find("td").First()
		if cell.Length() == 0 {
			continue
		}
		cell.PrependHtml(`<span ` + attrStarred + `="` + stdhtml.EscapeString(r.ID) + `" ` +
			`class="wwlens-star">` + star + `</span>`)
	}
}
