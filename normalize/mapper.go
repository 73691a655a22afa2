package normalize

import "strings"

// SnakeToCamel converts a snake_case identifier to camelCase: the first
// segment is kept as-is and every following segment is capitalized and
// appended with no separator. Distinct inputs may collapse to the same
// output; the ten canonical slot names happen to stay distinct.
func SnakeToCamel(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		b.WriteString(capitalize(part))
	}
	return b.String()
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:]))
}
