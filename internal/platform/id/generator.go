package id

import "strings"

// Slug lowers s and collapses every run of characters outside a-z, æ/ø/å and
// 0-9 into a single hyphen. Danish letters stay as-is so "Sørensen" and
// "Sorensen" produce distinct, stable identifiers.
func Slug(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastHyphen := false
	for _, r := range strings.ToLower(s) {
		if isSlugRune(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return b.String()
}

// Join builds a composite identifier from already-slugged parts.
func Join(parts ...string) string {
	return strings.Join(parts, "-")
}

func isSlugRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == 'æ' || r == 'ø' || r == 'å':
		return true
	default:
		return false
	}
}
