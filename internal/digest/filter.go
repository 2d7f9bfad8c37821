// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// SeenSet holds the fingerprints of records accepted during one run. It is
// shared across all topics, because the same paper often matches several
// keyword queries, and discarded when the run ends.
type SeenSet map[string]struct{}

// NewSeenSet returns an empty seen set.
func NewSeenSet() SeenSet { return make(SeenSet) }

// Contains reports whether fp has been recorded.
func (s SeenSet) Contains(fp string) bool {
	_, ok := s[fp]
	return ok
}

// Add records fp.
func (s SeenSet) Add(fp string) { s[fp] = struct{}{} }

// Fingerprint returns the hex SHA-1 digest of a record's external identifier.
func Fingerprint(id string) string {
	sum := sha1.Sum([]byte(id))
	return hex.EncodeToString(sum[:])
}

// Filter bundles the per-topic acceptance checks. Window and Seen are shared
// across topics within a run; Terms is the union of global and topic-specific
// exclusion terms, lowercased.
type Filter struct {
	Window Window
	Terms  []string
	Seen   SeenSet
}

// NewFilter builds a Filter for one topic. Blank terms are dropped and the
// rest lowercased once, so Accept can do plain substring checks.
func NewFilter(w Window, seen SeenSet, globalTerms, topicTerms []string) *Filter {
	var terms []string
	for _, t := range append(append([]string{}, globalTerms...), topicTerms...) {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			terms = append(terms, t)
		}
	}
	return &Filter{Window: w, Terms: terms, Seen: seen}
}

// Accept runs the acceptance checks in order: timestamp resolution, window,
// exclusion terms, uniqueness. Any failure short-circuits the rest. The
// fingerprint is recorded only when every check passes, so a record rejected
// on content never blocks a later duplicate from being judged on its own.
func (f *Filter) Accept(r types.CandidateRecord) bool {
	ts, ok := ResolveTimestamp(r)
	if !ok || !f.Window.Contains(ts) {
		return false
	}
	if f.excluded(r) {
		return false
	}

	fp := Fingerprint(r.ID)
	if f.Seen.Contains(fp) {
		return false
	}
	f.Seen.Add(fp)
	return true
}

// excluded reports whether any banned term appears in the record's title or
// abstract, case-insensitively. The haystack is whitespace-normalized first:
// arXiv hard-wraps abstracts, and a multi-word term must still match when it
// spans a line break.
func (f *Filter) excluded(r types.CandidateRecord) bool {
	if len(f.Terms) == 0 {
		return false
	}
	haystack := strings.ToLower(NormalizeText(r.Title) + " " + NormalizeText(r.Abstract))
	for _, term := range f.Terms {
		if strings.Contains(haystack, term) {
			return true
		}
	}
	return false
}
