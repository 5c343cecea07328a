// Package models defines data structures shared across the enhancement pipeline.
package models

import "github.com/PuerkitoBio/goquery"

// Canonical field keys. The label dictionary maps the site's human-readable
// labels (in either markup dialect, English or French) onto these.
const (
	KeyTitle        = "title"
	KeyCompany      = "company"
	KeyDivision     = "division"
	KeyOpenings     = "openings"
	KeyCategory     = "category"
	KeyLevel        = "level"
	KeyDuration     = "duration"
	KeyRegion       = "region"
	KeyCity         = "city"
	KeyProvince     = "province"
	KeyCountry      = "country"
	KeyAddress      = "address"
	KeyPostal       = "postal"
	KeyCompensation = "compensation"
	KeySalary       = "salary"
	KeyPay          = "pay"
	KeyBenefits     = "benefits"
	KeyDeadline     = "deadline"
	KeyApplyBy      = "apply_by"
	KeyDueDate      = "due_date"
	KeyMethod       = "method"
	KeyExternalURL  = "external_url"
	KeyDescription  = "description"

	// KeyLocation is never extracted directly; the composer derives it from
	// the city/province fields or the region fallback.
	KeyLocation = "location"
)

// Synonyms lists the alternate keys that may back a promoted item, keyed by
// the canonical key the composer emits. Postings label the same datum
// differently across markup dialects and employers.
var Synonyms = map[string][]string{
	KeyCompensation: {KeySalary, KeyPay, KeyBenefits},
	KeyDeadline:     {KeyApplyBy, KeyDueDate},
}

// Field is a single datum extracted from an open posting detail view.
// Fields are produced fresh on every extraction pass and never persisted;
// each pass supersedes the previous one.
type Field struct {
	Key   string
	Label string
	Value string
	// Owner is the nearest block-level ancestor of the value slot, retained
	// so the renderer can hide the original element once the field has been
	// promoted into the summary panel.
	Owner *goquery.Selection
}

// FieldMapping maps canonical keys to extracted fields. At most one field
// per key per extraction pass: the first structural match wins and later
// matches for an already-populated key are discarded.
type FieldMapping map[string]Field

// Put stores f unless its key is already populated. It reports whether the
// field was stored.
func (m FieldMapping) Put(f Field) bool {
	if f.Key == "" {
		return false
	}
	if _, ok := m[f.Key]; ok {
		return false
	}
	m[f.Key] = f
	return true
}

// Value returns the trimmed value for key, or "" when absent.
func (m FieldMapping) Value(key string) string {
	return m[key].Value
}

// Has reports whether key was extracted.
func (m FieldMapping) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// First returns the first populated field among keys, in the order given.
func (m FieldMapping) First(keys ...string) (Field, bool) {
	for _, k := range keys {
		if f, ok := m[k]; ok {
			return f, true
		}
	}
	return Field{}, false
}

// FirstOf returns the field backing key: the key itself when populated,
// otherwise the first populated synonym.
func (m FieldMapping) FirstOf(key string) (Field, bool) {
	if f, ok := m[key]; ok {
		return f, true
	}
	return m.First(Synonyms[key]...)
}
