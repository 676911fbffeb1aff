package assemble

import (
	"fmt"
	"strings"
)

// DraftInput carries the artifacts merged into the draft.
type DraftInput struct {
	Skeleton string // rendered skeleton document
	Outline  string // scored outline with evidence bindings
	Spec     string // specification excerpt
	Date     string // run creation date, YYYY-MM-DD

	// SpecBudget caps the embedded specification appendix; the full excerpt
	// stays available as its own artifact.
	SpecBudget int
}

// Draft merges skeleton, outline and specification excerpt into the
// assembled draft document. Pure and deterministic: no I/O, no clock.
func Draft(in DraftInput) string {
	var b strings.Builder

	b.WriteString("---\n")
	b.WriteString("title: 投标文件（草案）\n")
	fmt.Fprintf(&b, "generated_at: %s\n", in.Date)
	b.WriteString("note: 自动拼装：骨架 + 方案提纲（其余章节留占位）\n")
	b.WriteString("---\n\n")

	b.WriteString(strings.TrimRight(in.Skeleton, "\n"))
	b.WriteString("\n\n---\n\n")

	b.WriteString("## 方案详细说明及施工组织设计（合并）\n")
	b.WriteString("> 以下为自动合并的《方案（提纲）》内容：\n\n")
	b.WriteString(strings.TrimRight(in.Outline, "\n"))
	b.WriteString("\n\n---\n\n")

	b.WriteString("### 附：技术规格书（提取节选）\n")
	b.WriteString("> 供方案引用与一致性检查；全文见技术规格书提取件。\n\n")
	b.WriteString(truncateRunes(in.Spec, in.SpecBudget))
	b.WriteString("\n")

	return b.String()
}

// truncateRunes caps s at budget runes without splitting a character.
func truncateRunes(s string, budget int) string {
	if budget <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= budget {
		return s
	}
	return string(runes[:budget]) + "\n\n> （节选已截断）"
}
