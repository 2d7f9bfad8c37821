// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enrich attaches short generated summaries to digest records. The
// collector depends only on the Summarize capability; whether that is a real
// API call or a no-op is decided once, from configuration, when the run is
// wired up.
package enrich

import "context"

// Noop is the summarizer used when enrichment is disabled. It returns an
// empty summary, which the formatter omits.
type Noop struct{}

// Summarize returns an empty summary and never fails.
func (Noop) Summarize(_ context.Context, _, _ string) (string, error) {
	return "", nil
}
