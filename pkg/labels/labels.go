// Package labels resolves the site's human-readable field labels to
// canonical field keys.
//
// The vocabulary is static and versioned to the markup the site currently
// serves; resolution is deterministic and has no side effects. Unknown
// labels resolve to nothing and the caller discards the field.
package labels

import (
	"strings"

	"github.com/Tpypan/wwlens/models"
)

type entry struct {
	label string
	key   string
}

// english is the known label vocabulary for English postings. Order matters:
// the partial-match fallback scans entries top to bottom and the first hit
// wins.
var english = []entry{
	{"job title", models.KeyTitle},
	{"organization", models.KeyCompany},
	{"division", models.KeyDivision},
	{"number of job openings", models.KeyOpenings},
	{"job category (noc)", models.KeyCategory},
	{"level", models.KeyLevel},
	{"work term duration", models.KeyDuration},
	{"job location", models.KeyRegion},
	{"region", models.KeyRegion},
	{"city", models.KeyCity},
	{"province/state", models.KeyProvince},
	{"country", models.KeyCountry},
	{"address line one", models.KeyAddress},
	{"postal code/zip code", models.KeyPostal},
	{"compensation and benefits", models.KeyCompensation},
	{"salary", models.KeySalary},
	{"rate of pay", models.KeyPay},
	{"benefits", models.KeyBenefits},
	{"application deadline", models.KeyDeadline},
	{"apply by", models.KeyApplyBy},
	{"due date", models.KeyDueDate},
	{"application method", models.KeyMethod},
	{"if by website, go to", models.KeyExternalURL},
	{"job summary", models.KeyDescription},
}

// french mirrors the English vocabulary for bilingual postings.
var french = []entry{
	{"titre du poste", models.KeyTitle},
	{"organisation", models.KeyCompany},
	{"division", models.KeyDivision},
	{"nombre de postes", models.KeyOpenings},
	{"niveau", models.KeyLevel},
	{"durée du stage", models.KeyDuration},
	{"lieu de travail", models.KeyRegion},
	{"ville", models.KeyCity},
	{"province/état", models.KeyProvince},
	{"pays", models.KeyCountry},
	{"adresse", models.KeyAddress},
	{"code postal", models.KeyPostal},
	{"rémunération et avantages", models.KeyCompensation},
	{"salaire", models.KeySalary},
	{"date limite", models.KeyDeadline},
	{"méthode de candidature", models.KeyMethod},
	{"si par site web, aller à", models.KeyExternalURL},
	{"résumé du poste", models.KeyDescription},
}

// Normalize prepares a raw label for lookup: trim surrounding space,
// lowercase, and strip a single trailing colon.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ToLower(s)
	s = strings.TrimSuffix(s, ":")
	return strings.TrimSpace(s)
}

// Resolve maps a raw label to its canonical key. It tries an exact match
// against the vocabulary for lang first, then falls back to bidirectional
// substring containment: the candidate containing a known label, or a known
// label containing the candidate. A French lookup that misses falls through
// to the English table, since language detection on short samples is
// fallible. It returns ok=false when nothing matches.
func Resolve(raw string, lang Lang) (key string, ok bool) {
	s := Normalize(raw)
	if s == "" {
		return "", false
	}

	if lang == French {
		if key, ok := lookup(french, s); ok {
			return key, true
		}
	}
	return lookup(english, s)
}

func lookup(table []entry, s string) (string, bool) {
	for _, e := range table {
		if e.label == s {
			return e.key, true
		}
	}
	for _, e := range table {
		if strings.Contains(s, e.label) || strings.Contains(e.label, s) {
			return e.key, true
		}
	}
	return "", false
}
