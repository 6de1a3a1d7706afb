package helper

// TruncateRunes cuts s to at most max characters without splitting a
// multi-byte sequence. Column sizes count characters, not bytes.
func TruncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
