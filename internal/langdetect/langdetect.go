// Package langdetect guesses the language of blog content.
package langdetect

import (
	"strings"
	"sync"
	"unicode"

	lingua "github.com/pemistahl/lingua-go"
)

// minLetters is the shortest sample worth classifying.
const minLetters = 12

var supported = []lingua.Language{
	lingua.English,
	lingua.German,
	lingua.French,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Polish,
	lingua.Swedish,
	lingua.Turkish,
	lingua.Russian,
	lingua.Ukrainian,
	lingua.Japanese,
	lingua.Korean,
	lingua.Chinese,
	lingua.Arabic,
	lingua.Hindi,
}

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// DetectISO6391 returns the two-letter code of text's language, or "" when
// the sample is too short or ambiguous.
func DetectISO6391(text string) string {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return ""
	}

	letters := 0
	for _, r := range sample {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if letters < minLetters {
		return ""
	}

	language, exists := getDetector().DetectLanguageOf(sample)
	if !exists {
		return ""
	}
	code := strings.ToLower(language.IsoCode639_1().String())
	if len(code) != 2 {
		return ""
	}
	return code
}

// Supported returns the codes DetectISO6391 can produce.
func Supported() []string {
	out := make([]string, 0, len(supported))
	for _, l := range supported {
		out = append(out, strings.ToLower(l.IsoCode639_1().String()))
	}
	return out
}

// IsSupported reports whether code is one of Supported().
func IsSupported(code string) bool {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, c := range Supported() {
		if c == code {
			return true
		}
	}
	return false
}

func getDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(supported...).
			WithMinimumRelativeDistance(0.1).
			Build()
	})
	return detector
}
