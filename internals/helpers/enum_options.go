package helper

import (
	"strings"
	"unicode"
)

// EnumOption is the {value, label} pair served by the */statuses style endpoints.
type EnumOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func EnumOptions[T ~string](values []T) []EnumOption {
	out := make([]EnumOption, 0, len(values))
	for _, v := range values {
		out = append(out, EnumOption{Value: string(v), Label: Humanize(string(v))})
	}
	return out
}

// Humanize splits CamelCase: "InProgress" -> "In Progress", "RPTPayment" -> "RPT Payment".
func Humanize(s string) string {
	rs := []rune(s)
	var b strings.Builder
	for i, r := range rs {
		if i > 0 && unicode.IsUpper(r) {
			prev := rs[i-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ParseEnum matches raw case-insensitively against the allowed values.
func ParseEnum[T ~string](raw string, values []T) (T, bool) {
	raw = strings.TrimSpace(raw)
	for _, v := range values {
		if strings.EqualFold(string(v), raw) {
			return v, true
		}
	}
	var zero T
	return zero, false
}
