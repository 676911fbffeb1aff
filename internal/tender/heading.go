package tender

import (
	"regexp"
	"strings"
)

// Heading is a recognized chapter heading line.
type Heading struct {
	Number int    // chapter ordinal, 0 if the numeral did not parse
	Title  string // text after the numeral, trimmed of markup
}

var (
	// "## 第四章 技术规格书", "第4章：技术要求", "**第五章 投标文件格式**"
	chapterStrongRe = regexp.MustCompile(`^\s*#{0,6}\s*\*{0,2}第\s*([一二三四五六七八九十百零〇0-9０-９]+)\s*章[：:.、\s-]*([^\n#]*?)\*{0,2}\s*$`)
	// "四章 技术规格书" or "四章技术规格书", the leading 第 (and sometimes the
	// separator) dropped in OCR output
	chapterWeakRe = regexp.MustCompile(`^\s*#{0,6}\s*\*{0,2}([一二三四五六七八九十百零〇0-9０-９]+)\s*章\s*([^\n#]*?)\*{0,2}\s*$`)
	// bold-only heading without markdown hashes
	chapterBoldRe = regexp.MustCompile(`^\s*\*{2}(.{0,50}章.{0,50})\*{2}\s*$`)
	boldInnerRe   = regexp.MustCompile(`第?\s*([一二三四五六七八九十百零〇0-9０-９]+)\s*章`)
)

// DetectChapterHeading reports whether line is a chapter-level heading and, if
// so, its parsed ordinal and title. Table-of-contents lines never match.
func DetectChapterHeading(line string) (Heading, bool) {
	if IsTOCLine(line) {
		return Heading{}, false
	}
	for _, re := range []*regexp.Regexp{chapterStrongRe, chapterWeakRe} {
		if m := re.FindStringSubmatch(line); m != nil {
			title := strings.TrimSpace(strings.Trim(m[2], "*"))
			return Heading{Number: ParseNumeral(m[1]), Title: title}, true
		}
	}
	if m := chapterBoldRe.FindStringSubmatch(line); m != nil {
		inner := m[1]
		if n := boldInnerRe.FindStringSubmatch(inner); n != nil {
			title := inner
			if i := strings.Index(inner, "章"); i >= 0 {
				title = inner[i+len("章"):]
			}
			title = strings.Trim(title, " ：:．。.、-")
			return Heading{Number: ParseNumeral(n[1]), Title: title}, true
		}
	}
	return Heading{}, false
}

// IsTOCLine reports whether line looks like a table-of-contents entry rather
// than a real heading: Word export anchors, markdown link lists, or dotted
// leader lines with page numbers.
func IsTOCLine(line string) bool {
	s := strings.TrimSpace(line)
	if s == "" {
		return false
	}
	if strings.Contains(s, "#_Toc") {
		return true
	}
	if strings.HasPrefix(s, "**[") && strings.Contains(s, "](") {
		return true
	}
	if strings.HasPrefix(s, "[") && strings.Contains(s, "](#") {
		return true
	}
	if strings.Contains(s, "目录") && (strings.Contains(s, "..") || strings.Contains(s, ". .") || strings.Contains(s, "](")) {
		return true
	}
	return false
}

// NormalizeNewlines folds CRLF and CR to LF so offset math is stable across
// document sources.
func NormalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
