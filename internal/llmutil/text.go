// internal/llmutil/text.go
package llmutil

// TruncateForLog shortens a prompt or model response for use as a log field.
// Truncation counts runes, not bytes, so multi-byte input is never split
// mid-character. An ellipsis marks the cut.
func TruncateForLog(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}
