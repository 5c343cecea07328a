package labels

import (
	"testing"

	"github.com/Tpypan/wwlens/models"
)

func TestResolve_ExactMatches(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"work term duration", models.KeyDuration},
		{"Work Term Duration", models.KeyDuration},
		{"  Work Term Duration:  ", models.KeyDuration},
		{"APPLICATION DEADLINE:", models.KeyDeadline},
		{"Job Title", models.KeyTitle},
		{"Organization", models.KeyCompany},
		{"City", models.KeyCity},
		{"Province/State", models.KeyProvince},
		{"Compensation and Benefits:", models.KeyCompensation},
		{"Application Method", models.KeyMethod},
		{"If by Website, go to", models.KeyExternalURL},
	}
	for _, tt := range tests {
		got, ok := Resolve(tt.raw, English)
		if !ok {
			t.Errorf("Resolve(%q) not found, want %q", tt.raw, tt.want)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestResolve_PartialContainment(t *testing.T) {
	// Candidate contains a known label.
	got, ok := Resolve("Estimated Work Term Duration (months)", English)
	if !ok || got != models.KeyDuration {
		t.Errorf("Resolve(superset) = %q, %v; want %q, true", got, ok, models.KeyDuration)
	}

	// Known label contains the candidate.
	got, ok = Resolve("Deadline", English)
	if !ok || got != models.KeyDeadline {
		t.Errorf("Resolve(subset) = %q, %v; want %q, true", got, ok, models.KeyDeadline)
	}
}

func TestResolve_UnknownLabel(t *testing.T) {
	for _, raw := range []string{"xyzzy", "qqqq", ""} {
		if got, ok := Resolve(raw, English); ok {
			t.Errorf("Resolve(%q) = %q, want no match", raw, got)
		}
	}
}

func TestResolve_French(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Durée du stage:", models.KeyDuration},
		{"Date limite", models.KeyDeadline},
		{"Ville", models.KeyCity},
	}
	for _, tt := range tests {
		got, ok := Resolve(tt.raw, French)
		if !ok || got != tt.want {
			t.Errorf("Resolve(%q, French) = %q, %v; want %q, true", tt.raw, got, ok, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  Application Deadline:  "); got != "application deadline" {
		t.Errorf("Normalize = %q", got)
	}
}

func TestDetectLang_EmptyDefaultsToEnglish(t *testing.T) {
	if got := DetectLang("   "); got != English {
		t.Errorf("DetectLang(blank) = %v, want English", got)
	}
}
