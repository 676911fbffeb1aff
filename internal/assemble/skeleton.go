// Package assemble renders the bid skeleton and merges the pipeline
// artifacts into the draft document. Everything here is a pure function of
// its inputs, which is what lets the sanity check behave as a reproducible
// static analysis over the draft.
package assemble

import (
	"fmt"
	"strings"

	"bidforge/internal/tender"
)

// RenderSkeleton renders the section list as the skeleton document: cover
// block, numbered table of contents, and one placeholder body per section.
// The date is supplied by the caller from the run's creation time so replays
// are byte-identical.
func RenderSkeleton(sections []string, meta tender.Meta, date string) string {
	var b strings.Builder

	b.WriteString("---\n")
	b.WriteString("title: 投标文件（骨架）\n")
	fmt.Fprintf(&b, "generated_at: %s\n", date)
	b.WriteString("---\n\n")

	b.WriteString("# 封面（模板）\n")
	fmt.Fprintf(&b, "- 项目名称：%s\n", orPlaceholder(meta.ProjectName, "{{PROJECT_NAME}}"))
	fmt.Fprintf(&b, "- 招标编号：%s\n", orPlaceholder(meta.TenderNo, "{{TENDER_NO}}"))
	fmt.Fprintf(&b, "- 投标人：%s（盖章）\n", orPlaceholder(meta.BidderName, "{{BIDDER_NAME}}"))
	b.WriteString("- 日期：{{YYYY}}年{{MM}}月{{DD}}日\n")
	b.WriteString("- 正/副本：正本1份，副本4份\n\n")

	b.WriteString("# 目 录\n")
	for i, sec := range sections {
		fmt.Fprintf(&b, "%d. %s\n", i+1, sec)
	}
	b.WriteString("\n---\n\n")

	for i, sec := range sections {
		fmt.Fprintf(&b, "## %s、%s\n> [占位]\n\n", tender.FormatNumeral(i+1), sec)
	}

	b.WriteString("### 装订与份数提示\n")
	b.WriteString("- 正本/副本分别装订成册并编目录；避免可拆装订。\n")
	return b.String()
}

func orPlaceholder(v, placeholder string) string {
	if strings.TrimSpace(v) == "" {
		return placeholder
	}
	return v
}
