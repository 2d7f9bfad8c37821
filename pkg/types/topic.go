// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Topic is one entry from the topics file: a named group of keyword queries
// with optional category restriction and per-topic tuning. Loaded once per
// run and read-only afterwards.
type Topic struct {
	// Name is the mapping key from the topics file; it becomes the digest
	// section heading.
	Name string `json:"name" yaml:"-"`

	// Keywords are queried one at a time, in order. At least one is required.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Categories restricts matches to these arXiv categories. Empty means
	// no restriction.
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`

	// ExcludeKeywords are topic-specific banned terms, combined with the
	// global exclusion list.
	ExcludeKeywords []string `json:"exclude_keywords,omitempty" yaml:"exclude_keywords,omitempty"`

	// MaxResults bounds each keyword query. Zero means the configured
	// default; negative is a configuration error.
	MaxResults int `json:"max_results,omitempty" yaml:"max_results,omitempty"`
}
