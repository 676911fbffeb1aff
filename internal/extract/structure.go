// Package extract locates structure inside raw tender documents: the bid
// skeleton (ordered canonical section titles) and the technical-specification
// slice. Every extractor is an ordered chain of strategies with a uniform
// signature; the first strategy producing output wins, and the last tier is a
// fixed template, so extraction never fails and never returns empty output.
package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"bidforge/internal/config"
	"bidforge/internal/tender"
)

// Source names the strategy tier that produced an extraction result.
type Source string

const (
	SourceFormatChapter Source = "format_chapter"
	SourceTOC           Source = "toc"
	SourceDefault       Source = "default"
	SourceSliced        Source = "sliced"
	SourceSlicedToEnd   Source = "sliced_to_end"
	SourceChecklist     Source = "checklist"
)

// sectionStrategy is one tier of the structure chain. It returns nil when the
// tier cannot recover a section list from the document.
type sectionStrategy struct {
	source Source
	run    func(text string) []string
}

// StructureExtractor derives the bid skeleton from a tender document.
type StructureExtractor struct {
	cfg        config.ExtractionConfig
	strategies []sectionStrategy
}

// NewStructureExtractor builds the extractor with its strategy chain:
// bid-format chapter parse, document TOC, fixed default skeleton.
func NewStructureExtractor(cfg config.ExtractionConfig) *StructureExtractor {
	e := &StructureExtractor{cfg: cfg}
	e.strategies = []sectionStrategy{
		{source: SourceFormatChapter, run: e.fromFormatChapter},
		{source: SourceTOC, run: e.fromDocumentTOC},
		{source: SourceDefault, run: func(string) []string { return append([]string(nil), cfg.DefaultSkeleton...) }},
	}
	return e
}

// Sections returns the ordered, duplicate-free section list and the tier that
// produced it. It never returns an empty list.
func (e *StructureExtractor) Sections(text string) ([]string, Source) {
	text = tender.NormalizeNewlines(text)
	for _, s := range e.strategies {
		if items := s.run(text); len(items) > 0 {
			return items, s.source
		}
	}
	// The default tier always yields output; unreachable.
	return append([]string(nil), e.cfg.DefaultSkeleton...), SourceDefault
}

var (
	bulletRe      = regexp.MustCompile(`^\s*(?:[0-9０-９一二三四五六七八九十]+[.)、）]|[-*•])\s*(.+?)\s*$`)
	parentheticRe = regexp.MustCompile(`（[^）]*）|\([^)]*\)`)
	innerSpaceRe  = regexp.MustCompile(`\s+`)
)

// fromFormatChapter locates the bid-document-format chapter by heading alias
// and parses its numbered or bulleted entries as the section list.
func (e *StructureExtractor) fromFormatChapter(text string) []string {
	lines := strings.Split(text, "\n")
	start := -1
	for i, ln := range lines {
		h, ok := tender.DetectChapterHeading(ln)
		if ok && containsAny(h.Title, e.cfg.BidFormatAliases) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}
	end := len(lines)
	for i := start; i < len(lines); i++ {
		if _, ok := tender.DetectChapterHeading(lines[i]); ok {
			end = i
			break
		}
	}
	return e.parseItems(lines[start:end])
}

// fromDocumentTOC finds the longest contiguous run of short numbered lines
// anywhere in the document and treats it as a table of contents.
func (e *StructureExtractor) fromDocumentTOC(text string) []string {
	lines := strings.Split(text, "\n")
	var best, current []string
	for _, ln := range lines {
		if item, ok := e.cleanItem(ln); ok {
			current = append(current, item)
			continue
		}
		if strings.TrimSpace(ln) == "" {
			// blank lines do not break a TOC run
			continue
		}
		if len(current) > len(best) {
			best = current
		}
		current = nil
	}
	if len(current) > len(best) {
		best = current
	}
	if len(best) < 4 {
		return nil
	}
	return e.finish(best)
}

// parseItems extracts list entries from a block of lines.
func (e *StructureExtractor) parseItems(lines []string) []string {
	var items []string
	for _, ln := range lines {
		if item, ok := e.cleanItem(ln); ok {
			items = append(items, item)
		}
	}
	return e.finish(items)
}

// cleanItem matches one list entry and normalizes its text: parentheticals
// and inner whitespace removed, length bounded to plausible section titles.
func (e *StructureExtractor) cleanItem(line string) (string, bool) {
	m := bulletRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	item := parentheticRe.ReplaceAllString(m[1], "")
	item = innerSpaceRe.ReplaceAllString(item, "")
	n := utf8.RuneCountInString(item)
	if n < 2 || n > 30 {
		return "", false
	}
	return item, true
}

// finish canonicalizes near-synonym titles and removes duplicates while
// preserving document order.
func (e *StructureExtractor) finish(items []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, item := range items {
		item = e.canonicalize(item)
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

func (e *StructureExtractor) canonicalize(item string) string {
	for _, rule := range e.cfg.Synonyms {
		all := true
		for _, kw := range rule.Contains {
			if !strings.Contains(item, kw) {
				all = false
				break
			}
		}
		if all {
			return rule.Canonical
		}
	}
	return item
}

func containsAny(s string, kws []string) bool {
	for _, kw := range kws {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
