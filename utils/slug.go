package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify turns a display name into a URL-safe identifier: lowercase,
// accents stripped, every run of non [a-z0-9] collapsed into a single
// hyphen, leading/trailing hyphens trimmed. Idempotent and total —
// symbol-only input yields an empty string. Uniqueness is NOT enforced
// here; callers accept possible collisions.
func Slugify(name string) string {
	lowered := strings.ToLower(name)

	// NFD-decompose, then drop the combining marks ("São" → "Sao").
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(stripper, lowered); err == nil {
		lowered = stripped
	}

	var b strings.Builder
	b.Grow(len(lowered))
	pendingHyphen := false
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
