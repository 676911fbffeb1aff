package extract

import (
	"strings"

	"bidforge/internal/config"
	"bidforge/internal/tender"
)

// SpecExtractor slices the technical-specification chapter out of a tender
// document. Tiers: both markers found, start marker only (slice to end of
// document), no start marker (synthesized checklist).
type SpecExtractor struct {
	cfg config.ExtractionConfig
}

// NewSpecExtractor builds the extractor from the alias configuration.
func NewSpecExtractor(cfg config.ExtractionConfig) *SpecExtractor {
	return &SpecExtractor{cfg: cfg}
}

// Extract returns the specification text and the tier that produced it. The
// result is never empty.
func (e *SpecExtractor) Extract(text string) (string, Source) {
	text = tender.NormalizeNewlines(text)
	lines := strings.Split(text, "\n")

	body := bodyStart(lines)

	start := -1
	for i := body; i < len(lines); i++ {
		h, ok := tender.DetectChapterHeading(lines[i])
		if !ok {
			continue
		}
		if containsAny(h.Title, e.cfg.SpecAliases) || (h.Number == 4 && h.Title == "") {
			start = i
			break
		}
	}
	if start < 0 {
		return e.cfg.DefaultChecklist, SourceChecklist
	}

	end := -1
	for i := start + 1; i < len(lines); i++ {
		h, ok := tender.DetectChapterHeading(lines[i])
		if ok && containsAny(h.Title, e.cfg.BidFormatAliases) {
			end = i
			break
		}
	}
	if end < 0 {
		// No end marker: slice runs to end of document. This can pull in
		// unrelated trailing chapters; kept to match observed documents.
		return strings.TrimSpace(strings.Join(lines[start:], "\n")), SourceSlicedToEnd
	}
	return strings.TrimSpace(strings.Join(lines[start:end], "\n")), SourceSliced
}

// bodyStart skips a leading table-of-contents region by finding the first
// real chapter-one heading near the top of the document.
func bodyStart(lines []string) int {
	limit := len(lines)
	if limit > 200 {
		limit = 200
	}
	for i := 0; i < limit; i++ {
		h, ok := tender.DetectChapterHeading(lines[i])
		if ok && h.Number == 1 {
			return i
		}
	}
	return 0
}
