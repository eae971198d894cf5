package locator

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var combiningMarks = runes.In(unicode.Mn)

// Kebab normalizes s to kebab-case: lowercase, with every run of
// characters outside [a-z0-9] collapsed to a single hyphen and no
// leading or trailing hyphens. Accented letters are decomposed and
// their combining marks stripped first, so "Écran Détail" becomes
// "ecran-detail".
func Kebab(s string) string {
	if !isASCII(s) {
		s = stripMarks(s)
	}

	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		// Everything else acts as a separator; runs collapse.
		pending = true
	}
	return b.String()
}

// stripMarks removes combining marks after NFKD decomposition.
// The transformer chain is stateful, so build one per call to keep
// Kebab safe for concurrent use.
func stripMarks(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(combiningMarks), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
