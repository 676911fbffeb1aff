// Package sanity runs the rule-based compliance audit over the assembled
// draft. It is deliberately free of any gateway dependency: the same draft
// always yields the same report, so findings are auditable. Missing
// categories are report content for the end user, never errors.
package sanity

import (
	"strings"

	"bidforge/internal/config"
	"bidforge/internal/tender"
)

// Finding is the audit result for one compliance category.
type Finding struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
	Excerpt string `json:"excerpt,omitempty"`

	// Offset is the byte offset of the matched line. A pointer so a match on
	// the first line (offset 0) still serializes, while absent categories
	// omit the field.
	Offset *int `json:"offset,omitempty"`
}

// Summary aggregates the findings.
type Summary struct {
	PresentCount int    `json:"presentCount"`
	AbsentCount  int    `json:"absentCount"`
	Advice       string `json:"advice,omitempty"`
}

// Report is the full compliance report. Its JSON shape is a file-format
// contract consumed by the editor UI.
type Report struct {
	Categories []Finding `json:"categories"`
	Summary    Summary   `json:"summary"`
}

// Checker evaluates the closed category set against a draft.
type Checker struct {
	cfg config.SanityConfig
}

// NewChecker builds a checker from the category configuration.
func NewChecker(cfg config.SanityConfig) *Checker {
	return &Checker{cfg: cfg}
}

// Check audits the draft. One finding per configured category, always in
// config order; the category set never grows at runtime.
func (c *Checker) Check(draftText string, meta tender.Meta) Report {
	draftText = tender.NormalizeNewlines(draftText)

	report := Report{Categories: make([]Finding, 0, len(c.cfg.Categories))}
	for _, cat := range c.cfg.Categories {
		f := Finding{Name: cat.Name}
		for _, kw := range cat.Keywords {
			if idx := strings.Index(draftText, kw); idx >= 0 {
				f.Present = true
				line, off := matchedLine(draftText, idx)
				f.Excerpt = line
				f.Offset = &off
				break
			}
		}
		if f.Present {
			report.Summary.PresentCount++
		} else {
			report.Summary.AbsentCount++
		}
		report.Categories = append(report.Categories, f)
	}
	report.Summary.Advice = c.cfg.Advice
	return report
}

// matchedLine returns the full line containing the match at idx and the byte
// offset where that line starts.
func matchedLine(text string, idx int) (string, int) {
	start := strings.LastIndexByte(text[:idx], '\n') + 1
	end := strings.IndexByte(text[idx:], '\n')
	if end < 0 {
		end = len(text)
	} else {
		end += idx
	}
	return strings.TrimSpace(text[start:end]), start
}
