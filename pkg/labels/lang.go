package labels

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// Lang selects which label vocabulary to resolve against.
type Lang int

const (
	English Lang = iota
	French
)

func (l Lang) String() string {
	if l == French {
		return "fr"
	}
	return "en"
}

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// DetectLang guesses the vocabulary to use from a sample of the posting's
// visible text. English is the default whenever detection is ambiguous or
// the sample is empty.
func DetectLang(sample string) Lang {
	if strings.TrimSpace(sample) == "" {
		return English
	}
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.English, lingua.French).
			Build()
	})
	if lang, ok := detector.DetectLanguageOf(sample); ok && lang == lingua.French {
		return French
	}
	return English
}
