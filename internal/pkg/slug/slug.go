package slug

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const MaxLen = 160

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reValid    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Make turns free text into a lowercase [a-z0-9-] slug with diacritics removed.
// Returns "" when nothing usable remains.
func Make(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	out := reNonAlnum.ReplaceAllString(b.String(), "-")
	out = strings.Trim(out, "-")
	if len(out) > MaxLen {
		out = strings.Trim(out[:MaxLen], "-")
	}
	return out
}

// WithSuffix returns base-n, trimming base so the result stays within MaxLen.
func WithSuffix(base string, n int) string {
	suffix := fmt.Sprintf("-%d", n)
	keep := MaxLen - len(suffix)
	if len(base) > keep {
		base = strings.Trim(base[:keep], "-")
	}
	return base + suffix
}

func Valid(s string) bool {
	return len(s) <= MaxLen && reValid.MatchString(s)
}
