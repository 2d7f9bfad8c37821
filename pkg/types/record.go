// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the arxiv-digest pipeline:
// candidate and normalized paper records, the per-run digest, and the
// configuration structs consumed by every stage.
package types

import "time"

// CandidateRecord is a single paper entry as returned by the entry source,
// before any filtering. Fields that arXiv may omit are left at their zero
// value; the pipeline never reaches back into raw feed data.
type CandidateRecord struct {
	// ID is the external identifier (e.g. "2301.07041"), stripped of any
	// version suffix. Dedup fingerprints are derived from it.
	ID string `json:"id" yaml:"id"`

	// Title is the paper title as returned by the source.
	Title string `json:"title" yaml:"title"`

	// Abstract is the paper abstract or summary.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Link is the abstract page URL.
	Link string `json:"link" yaml:"link"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Categories lists the arXiv category tags (e.g. "physics.optics").
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`

	// Updated is the most recent revision timestamp; zero when absent.
	Updated time.Time `json:"updated,omitempty" yaml:"updated,omitempty"`

	// Published is the initial submission timestamp; zero when absent.
	Published time.Time `json:"published,omitempty" yaml:"published,omitempty"`
}

// NormalizedRecord is an accepted record after whitespace collapsing and
// truncation, ready for the digest. It is created once by the aggregator and
// never mutated afterwards.
type NormalizedRecord struct {
	Title      string   `json:"title" yaml:"title"`
	Abstract   string   `json:"abstract" yaml:"abstract"`
	Link       string   `json:"link" yaml:"link"`
	Authors    []string `json:"authors,omitempty" yaml:"authors,omitempty"`
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`

	// Summary is the optional enrichment text. Empty when enrichment is
	// disabled; a placeholder string when enrichment failed for this record.
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// TopicSection groups the accepted records for one topic.
type TopicSection struct {
	Topic   string             `json:"topic" yaml:"topic"`
	Records []NormalizedRecord `json:"records" yaml:"records"`
}

// Digest is the final artifact of one run: topic sections in configuration
// order. Topics with no accepted records are never present.
type Digest struct {
	Sections []TopicSection `json:"sections" yaml:"sections"`
}

// IsEmpty reports whether the digest contains no records at all.
func (d Digest) IsEmpty() bool { return len(d.Sections) == 0 }

// TotalRecords returns the number of records across all sections.
func (d Digest) TotalRecords() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Records)
	}
	return n
}
