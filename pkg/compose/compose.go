// Package compose derives the priority summary items from an extracted
// field mapping.
//
// The check order below is fixed; the user's priority-key list gates which
// checks run but does not reorder the output. Composition is pure: the same
// mapping and settings always yield the same items.
package compose

import (
	"strings"

	"github.com/Tpypan/wwlens/models"
)

// hostSiteMethod is the trivial application channel: postings applied to
// through the site itself carry no useful "apply via" information.
const hostSiteMethod = "waterlooworks"

// Display labels for the panel, keyed by item key.
var displayLabels = map[string]string{
	models.KeyDuration:     "Duration",
	models.KeyLocation:     "Location",
	models.KeyCompensation: "Compensation",
	models.KeyDeadline:     "Deadline",
	models.KeyMethod:       "Apply via",
	models.KeyExternalURL:  "Posting link",
}

// Compose returns the priority items for fields under the given settings.
// An empty result means there is no panel to render.
func Compose(fields models.FieldMapping, settings models.Settings) []models.PriorityItem {
	var items []models.PriorityItem

	if settings.PriorityEnabled(models.KeyDuration) && fields.Has(models.KeyDuration) {
		items = append(items, item(models.KeyDuration, fields.Value(models.KeyDuration)))
	}

	if settings.PriorityEnabled(models.KeyLocation) {
		if loc := deriveLocation(fields); loc != "" {
			items = append(items, item(models.KeyLocation, loc))
		}
	}

	if settings.PriorityEnabled(models.KeyCompensation) {
		if f, ok := fields.FirstOf(models.KeyCompensation); ok {
			items = append(items, item(models.KeyCompensation, f.Value))
		}
	}

	if settings.PriorityEnabled(models.KeyDeadline) {
		if f, ok := fields.FirstOf(models.KeyDeadline); ok {
			items = append(items, item(models.KeyDeadline, f.Value))
		}
	}

	if settings.PriorityEnabled(models.KeyMethod) {
		if method := nontrivialMethod(fields); method != "" {
			items = append(items, item(models.KeyMethod, method))
			if fields.Has(models.KeyExternalURL) {
				link := item(models.KeyExternalURL, fields.Value(models.KeyExternalURL))
				link.IsLink = true
				items = append(items, link)
			}
		}
	}

	return items
}

func item(key, value string) models.PriorityItem {
	return models.PriorityItem{Key: key, Label: displayLabels[key], Value: value}
}

// deriveLocation builds the composite location value: city and province
// joined with ", " when either exists, otherwise the generic region field.
func deriveLocation(fields models.FieldMapping) string {
	city := strings.TrimSpace(fields.Value(models.KeyCity))
	province := strings.TrimSpace(fields.Value(models.KeyProvince))
	switch {
	case city != "" && province != "":
		return city + ", " + province
	case city != "":
		return city
	case province != "":
		return province
	}
	return strings.TrimSpace(fields.Value(models.KeyRegion))
}

// nontrivialMethod returns the application method unless it is empty or
// names the host site as the channel.
func nontrivialMethod(fields models.FieldMapping) string {
	if !fields.Has(models.KeyMethod) {
		return ""
	}
	v := strings.TrimSpace(fields.Value(models.KeyMethod))
	if v == "" {
		return ""
	}
	if strings.Contains(strings.ToLower(v), hostSiteMethod) {
		return ""
	}
	return v
}
