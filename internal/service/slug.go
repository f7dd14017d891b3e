package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxSlugLength = 80

// fallbackSlug is used when a title has no letters or digits.
const fallbackSlug = "post"

// Slugify turns a title into a URL path segment: accents are removed,
// letters lower-cased, and every other run of characters becomes one hyphen.
func Slugify(title string) string {
	// Chained transformers keep state, so each call builds its own.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(stripMarks, title)
	if err != nil {
		plain = title
	}

	var b strings.Builder
	pendingDash := false
	count := 0
	for _, r := range strings.ToLower(plain) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pendingDash = b.Len() > 0
			continue
		}
		need := 1
		if pendingDash {
			need = 2
		}
		if count+need > maxSlugLength {
			break
		}
		if pendingDash {
			b.WriteByte('-')
			count++
			pendingDash = false
		}
		b.WriteRune(r)
		count++
	}
	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		return fallbackSlug
	}
	return slug
}
