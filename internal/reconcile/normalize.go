package reconcile

import "strings"

// noValueToken stands in for an empty cell so missing keys still compare
// predictably instead of colliding with whitespace-only ones.
const noValueToken = "None"

// NormalizeKey turns a raw match-column value into a comparable key: empty
// input becomes the no-value token, surrounding whitespace is trimmed, and
// the result is lower-cased when caseInsensitive is set.
func NormalizeKey(raw string, caseInsensitive bool) string {
	if raw == "" {
		raw = noValueToken
	}
	key := strings.TrimSpace(raw)
	if caseInsensitive {
		key = strings.ToLower(key)
	}
	return key
}
