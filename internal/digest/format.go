// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"fmt"
	"strings"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

const reportHeader = "📰  Daily arXiv Digest"

// noResultsReport is returned for an empty digest so a caller that renders
// unconditionally still has something to show. Delivery skips empty digests
// entirely.
const noResultsReport = reportHeader + "\n\nNo new papers in the current window.\n"

// FormatReport renders the digest as a plain-text report: a header, one
// section per topic in digest order, and a footer naming the effective
// window. It touches no clock and no network; given the same digest and
// window it always produces the same text.
func FormatReport(d types.Digest, w Window) string {
	if d.IsEmpty() {
		return noResultsReport
	}

	var lines []string
	lines = append(lines, reportHeader, "")

	for tIdx, section := range d.Sections {
		lines = append(lines,
			fmt.Sprintf("📌 %s (%d)", strings.ToUpper(section.Topic), len(section.Records)),
			strings.Repeat("=", len(section.Topic)+7),
		)

		for pIdx, rec := range section.Records {
			lines = append(lines, formatEntry(pIdx+1, rec)...)
			if pIdx < len(section.Records)-1 {
				lines = append(lines, "      "+strings.Repeat("-", 40))
			}
		}

		if tIdx < len(d.Sections)-1 {
			lines = append(lines, strings.Repeat("-", 30))
		}
	}

	lines = append(lines,
		strings.Repeat("━", 34),
		fmt.Sprintf("Window: %s (%d day(s))", w.String(), w.Days),
	)
	return strings.Join(lines, "\n") + "\n"
}

// formatEntry renders one record: position, title with categories, link, and
// whichever optional fields the record carries.
func formatEntry(pos int, rec types.NormalizedRecord) []string {
	title := rec.Title
	if len(rec.Categories) > 0 {
		title = fmt.Sprintf("%s  (%s)", title, strings.Join(rec.Categories, ", "))
	}

	lines := []string{
		fmt.Sprintf("%d. 📄 %s", pos, title),
		fmt.Sprintf("      🔗 %s", rec.Link),
	}

	authors := "Unknown authors"
	if len(rec.Authors) > 0 {
		authors = strings.Join(rec.Authors, ", ")
	}
	lines = append(lines, fmt.Sprintf("      👥 %s", authors))

	if rec.Summary != "" {
		lines = append(lines, "      💡 3-line summary:")
		for _, ln := range strings.Split(rec.Summary, "\n") {
			lines = append(lines, "         "+ln)
		}
	}
	return lines
}
