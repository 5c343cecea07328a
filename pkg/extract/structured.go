package extract

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/Tpypan/wwlens/models"
	"github.com/Tpypan/wwlens/pkg/labels"
)

// extractStructured handles the newer component-based layout: every
// key-value widget carries a label slot and a value slot. When the value
// slot is empty the widget sometimes nests the value in a table instead.
func extractStructured(root *goquery.Selection, lang labels.Lang, fields models.FieldMapping) {
	root.Find(StructuredPairMarker).Each(func(_ int, pair *goquery.Selection) {
		labelSel := pair.Find(".label").First()
		if labelSel.Length() == 0 {
			return
		}
		rawLabel := cleanText(labelSel.Text())
		key, ok := labels.Resolve(rawLabel, lang)
		if !ok {
			return
		}

		valueSel := pair.Find(".value").First()
		if valueSel.Length() == 0 {
			valueSel = labelSel.Next()
		}
		value := cleanText(valueSel.Text())
		if value == "" {
			value = cleanText(pair.Find("table").First().Text())
		}
		if value == "" {
			return
		}

		owner := ownerOf(valueSel)
		if valueSel.Length() == 0 {
			owner = ownerOf(pair)
		}
		fields.Put(models.Field{
			Key:   key,
			Label: labels.Normalize(rawLabel),
			Value: value,
			Owner: owner,
		})
	})
}
