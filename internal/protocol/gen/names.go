package gen

import (
	"strings"
	"unicode"
)

// initialisms are rendered upper-case in Go identifiers.
var initialisms = map[string]string{
	"id":   "ID",
	"ids":  "IDs",
	"dc":   "DC",
	"url":  "URL",
	"pq":   "PQ",
	"api":  "API",
	"ip":   "IP",
	"json": "JSON",
}

// goName converts a TL identifier (snake_case, camelCase, dotted namespace)
// into an exported Go identifier.
func goName(tl string) string {
	var b strings.Builder
	for _, part := range splitWords(tl) {
		if up, ok := initialisms[strings.ToLower(part)]; ok {
			b.WriteString(up)
			continue
		}
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// localName is goName with a lower-case first letter, for local variables.
func localName(tl string) string {
	n := goName(tl)
	if n == "" {
		return n
	}
	r := []rune(n)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// splitWords splits on '_' and '.', and before upper-case letters that
// follow a lower-case letter or digit.
func splitWords(s string) []string {
	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	var prev rune
	for _, r := range s {
		switch {
		case r == '_' || r == '.':
			flush()
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
		prev = r
	}
	flush()
	return words
}
