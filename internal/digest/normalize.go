// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"strings"
	"unicode/utf8"
)

// NormalizeText collapses all whitespace runs, including newlines, to single
// spaces and trims both ends. arXiv wraps titles and abstracts with hard line
// breaks that have no place in a single-line digest entry.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// wordBoundaryFloor is how far back Truncate may move to reach a space,
// as a fraction of the limit. Cutting earlier than this would mangle text
// consisting of one long unbroken token.
const wordBoundaryFloor = 0.7

// Truncate shortens s to at most limit bytes, appending "..." when it cuts.
// The cut lands on a rune boundary, then backs off to the preceding space
// unless that space sits before 70% of the limit. The result never exceeds
// limit, stays valid UTF-8, and truncating an already truncated string is a
// no-op.
func Truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	if limit <= 3 {
		return cutAtRuneBoundary(s, limit)
	}

	cut := cutAtRuneBoundary(s, limit-3)
	if idx := strings.LastIndexByte(cut, ' '); idx >= int(wordBoundaryFloor*float64(limit)) {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ") + "..."
}

// cutAtRuneBoundary returns a prefix of s at most n bytes long that does not
// split a multi-byte rune. arXiv titles routinely carry accents and Greek
// letters; a byte-wise slice would leak invalid UTF-8 into the digest.
// Requires n < len(s).
func cutAtRuneBoundary(s string, n int) string {
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
