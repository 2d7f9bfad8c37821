// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package digest implements the aggregation pipeline: time-window filtering,
// cross-topic deduplication, exclusion terms, field normalization, and report
// assembly. Everything here is driven by a single control-flow path; the only
// mutable state is the per-run seen set owned by the collector.
package digest

import (
	"fmt"
	"time"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// Window is the half-open retention interval [Start, End). End is anchored to
// a daily cutover hour in a fixed-offset zone, not to the moment the run
// started.
type Window struct {
	Start time.Time
	End   time.Time
	Days  int
}

// Contains reports whether t falls inside the window. The end is exclusive.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// String describes the effective window for the report footer.
func (w Window) String() string {
	const layout = "2006-01-02 15:04 MST"
	return fmt.Sprintf("%s – %s", w.Start.Format(layout), w.End.Format(layout))
}

// ComputeWindow derives the retention window from the current time. The
// window ends at the most recent cutover boundary: today's cutover hour in
// the configured zone, or yesterday's when the run executes before the
// boundary. Runs started at 07:00 therefore use the same window as runs
// started at 23:00 the previous day, instead of silently widening it.
func ComputeWindow(now time.Time, cfg types.WindowConfig) Window {
	days := cfg.Days
	if days <= 0 {
		days = 1
	}

	loc := time.FixedZone(fmt.Sprintf("UTC%+d", cfg.UTCOffsetHours), cfg.UTCOffsetHours*3600)
	local := now.In(loc)

	cutover := time.Date(local.Year(), local.Month(), local.Day(), cfg.CutoverHour, 0, 0, 0, loc)
	if local.Before(cutover) {
		cutover = cutover.AddDate(0, 0, -1)
	}

	return Window{
		Start: cutover.AddDate(0, 0, -days),
		End:   cutover,
		Days:  days,
	}
}

// ResolveTimestamp returns the best available timestamp for a candidate
// record, preferring the most recently updated field. It reports false when
// no field is set; such records are always excluded from the window, since a
// paper with no date must never count as recent.
func ResolveTimestamp(r types.CandidateRecord) (time.Time, bool) {
	for _, t := range []time.Time{r.Updated, r.Published} {
		if !t.IsZero() {
			return t, true
		}
	}
	return time.Time{}, false
}
