// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/arxiv-digest/internal/feed"
	"github.com/pdiddy/arxiv-digest/pkg/types"
)

const (
	defaultMaxResults    = 20
	defaultTitleLimit    = 120
	defaultAbstractLimit = 600
)

// Enricher produces an optional short summary for a record. Implementations
// that are disabled return an empty string and no error; the formatter omits
// empty summaries.
type Enricher interface {
	Summarize(ctx context.Context, title, abstract string) (string, error)
}

// Collector runs one digest collection: every topic, every keyword, fetch,
// filter, normalize, enrich, accumulate. It owns the run's seen set and the
// digest under construction; both die with the run.
type Collector struct {
	Source feed.Source

	// Enricher is required; pass enrich.Noop when summaries are disabled.
	Enricher Enricher

	Cfg types.DigestConfig

	// Sleep is called after every fetch to respect the arXiv rate limit.
	// Tests replace it; nil means time.Sleep.
	Sleep func(time.Duration)

	// Now supplies the current time for window computation; nil means time.Now.
	Now func() time.Time
}

// Collect processes all topics sequentially and returns the assembled digest
// together with the effective window. A failed fetch skips that keyword only;
// enrichment failures substitute a placeholder summary. Collect returns an
// error only for configuration problems detected before any fetching.
func (c *Collector) Collect(ctx context.Context, topicList []types.Topic, w io.Writer) (types.Digest, Window, error) {
	if len(topicList) == 0 {
		return types.Digest{}, Window{}, fmt.Errorf("no topics configured")
	}
	for _, t := range topicList {
		if bound := c.resultBound(t); bound <= 0 {
			return types.Digest{}, Window{}, fmt.Errorf("topic %q: result bound %d is not positive", t.Name, bound)
		}
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	sleep := time.Sleep
	if c.Sleep != nil {
		sleep = c.Sleep
	}

	window := ComputeWindow(now(), c.Cfg.Window)
	seen := NewSeenSet()

	titleLimit := c.Cfg.TitleLimit
	if titleLimit <= 0 {
		titleLimit = defaultTitleLimit
	}
	abstractLimit := c.Cfg.AbstractLimit
	if abstractLimit <= 0 {
		abstractLimit = defaultAbstractLimit
	}

	var digest types.Digest
	for _, topic := range topicList {
		filter := NewFilter(window, seen, c.Cfg.ExcludeTerms, topic.ExcludeKeywords)

		var records []types.NormalizedRecord
		for _, kw := range topic.Keywords {
			query, err := feed.BuildQuery(kw, topic.Categories)
			if err != nil {
				fmt.Fprintf(w, "warning: topic %q keyword %q: %v\n", topic.Name, kw, err)
				continue
			}

			candidates, err := c.Source.Fetch(ctx, query, c.resultBound(topic))
			sleep(c.Cfg.Feed.RateLimitDelay)
			if err != nil {
				// Continue on query failure: one broken keyword must not
				// take down the topic or the run.
				fmt.Fprintf(w, "warning: topic %q keyword %q: fetch failed: %v\n", topic.Name, kw, err)
				continue
			}

			for _, cand := range candidates {
				if !filter.Accept(cand) {
					continue
				}
				records = append(records, c.normalize(ctx, cand, titleLimit, abstractLimit, w))
			}
		}

		if len(records) > 0 {
			digest.Sections = append(digest.Sections, types.TopicSection{
				Topic:   topic.Name,
				Records: records,
			})
		}
	}

	return digest, window, nil
}

// normalize builds the digest entry for an accepted candidate. Enrichment
// failures are isolated here: the record survives with a placeholder summary.
func (c *Collector) normalize(ctx context.Context, cand types.CandidateRecord, titleLimit, abstractLimit int, w io.Writer) types.NormalizedRecord {
	title := NormalizeText(cand.Title)
	abstract := NormalizeText(cand.Abstract)

	rec := types.NormalizedRecord{
		Title:      Truncate(title, titleLimit),
		Abstract:   Truncate(abstract, abstractLimit),
		Link:       cand.Link,
		Authors:    cand.Authors,
		Categories: cand.Categories,
	}

	summary, err := c.Enricher.Summarize(ctx, title, abstract)
	if err != nil {
		fmt.Fprintf(w, "warning: summary failed for %s: %v\n", cand.ID, err)
		summary = fmt.Sprintf("(summary error: %v)", err)
	}
	rec.Summary = summary
	return rec
}

// resultBound returns the per-keyword fetch bound for a topic: the topic's
// own max_results when set, else the feed default, else 20.
func (c *Collector) resultBound(t types.Topic) int {
	if t.MaxResults != 0 {
		return t.MaxResults
	}
	if c.Cfg.Feed.MaxResults != 0 {
		return c.Cfg.Feed.MaxResults
	}
	return defaultMaxResults
}
