package domain

import "strings"

// EncodeGenres serializes a tag list into the bracketed literal stored in the
// genres column, e.g. ["Jazz", "Hip Hop"] -> `{Jazz,"Hip Hop"}`.
// Tags that would be ambiguous when split are double-quoted using Postgres
// array literal escaping.
func EncodeGenres(genres []string) string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		if !first {
			b.WriteByte(',')
		}
		first = false
		if needsQuoting(g) {
			b.WriteByte('"')
			for _, r := range g {
				if r == '"' || r == '\\' {
					b.WriteByte('\\')
				}
				b.WriteRune(r)
			}
			b.WriteByte('"')
			continue
		}
		b.WriteString(g)
	}
	b.WriteByte('}')
	return b.String()
}

// DecodeGenres parses a stored genres value back into a tag list.
// It accepts the bracketed form written by EncodeGenres as well as a bare
// comma-joined string. Empty tags are dropped; an empty input yields an empty
// (non-nil) slice.
func DecodeGenres(stored string) []string {
	s := strings.TrimSpace(stored)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")

	out := []string{}
	var (
		cur     strings.Builder
		quoted  bool
		escaped bool
	)
	flush := func() {
		if tag := strings.TrimSpace(cur.String()); tag != "" {
			out = append(out, tag)
		}
		cur.Reset()
	}
	for _, r := range s {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\' && quoted:
			escaped = true
		case r == '"':
			quoted = !quoted
		case r == ',' && !quoted:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return out
}

func needsQuoting(tag string) bool {
	if strings.EqualFold(tag, "null") {
		return true
	}
	return strings.ContainsAny(tag, ",{}\"\\ \t\n")
}
