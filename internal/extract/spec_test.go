package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bidforge/internal/config"
)

func newSpecExtractor() *SpecExtractor {
	return NewSpecExtractor(config.DefaultConfig().Extraction)
}

const specBody = "4.1 交钥匙范围\n锅炉本体及辅机。\n\n4.2 技术参数\n额定蒸发量 75t/h。"

func TestSpecExtractor_BothMarkers(t *testing.T) {
	e := newSpecExtractor()

	doc := "# 第一章 招标公告\n公告正文。\n\n" +
		"## 第四章 技术规格书\n" + specBody + "\n\n" +
		"## 第五章 投标文件格式\n格式要求。\n"

	got, source := e.Extract(doc)
	assert.Equal(t, SourceSliced, source)
	assert.True(t, strings.HasPrefix(got, "## 第四章 技术规格书"))
	assert.Contains(t, got, "额定蒸发量 75t/h。")
	assert.NotContains(t, got, "第五章")
	assert.NotContains(t, got, "格式要求")
}

func TestSpecExtractor_MarkerVariants(t *testing.T) {
	e := newSpecExtractor()

	starts := []string{
		"## 第四章 技术规格书",
		"# 第4章 技术要求",
		"第四章：技术规范",
		"**第四章 技术标准**",
	}
	for _, start := range starts {
		doc := "# 第一章 招标公告\n正文。\n\n" + start + "\n" + specBody + "\n\n## 第五章 投标文件格式\n格式。\n"
		got, source := e.Extract(doc)
		assert.Equal(t, SourceSliced, source, "start %q", start)
		assert.Contains(t, got, "4.1 交钥匙范围", "start %q", start)
		assert.NotContains(t, got, "格式。", "start %q", start)
	}
}

func TestSpecExtractor_NoEndMarkerSlicesToEnd(t *testing.T) {
	e := newSpecExtractor()

	doc := "# 第一章 招标公告\n正文。\n\n## 第四章 技术规格书\n" + specBody + "\n尾部条款。\n"
	got, source := e.Extract(doc)
	assert.Equal(t, SourceSlicedToEnd, source)
	assert.True(t, strings.HasSuffix(got, "尾部条款。"))
}

func TestSpecExtractor_NoStartMarkerYieldsChecklist(t *testing.T) {
	cfg := config.DefaultConfig().Extraction
	e := NewSpecExtractor(cfg)

	got, source := e.Extract("这份文档没有任何规范的章节标题。")
	assert.Equal(t, SourceChecklist, source)
	assert.Equal(t, cfg.DefaultChecklist, got)
}

func TestSpecExtractor_TOCLinesDoNotTriggerMarkers(t *testing.T) {
	e := newSpecExtractor()

	doc := "目 录\n" +
		"**[第四章 技术规格书](#_Toc401)**\n" +
		"**[第五章 投标文件格式](#_Toc501)**\n\n" +
		"# 第一章 招标公告\n正文。\n\n" +
		"## 第四章 技术规格书\n" + specBody + "\n\n" +
		"## 第五章 投标文件格式\n格式要求。\n"

	got, source := e.Extract(doc)
	require.Equal(t, SourceSliced, source)
	assert.Contains(t, got, "4.1 交钥匙范围")
	assert.NotContains(t, got, "#_Toc")
}

func TestSpecExtractor_NeverEmpty(t *testing.T) {
	e := newSpecExtractor()
	for _, doc := range []string{"", "只有一行。", "## 第四章 技术规格书"} {
		got, _ := e.Extract(doc)
		assert.NotEmpty(t, strings.TrimSpace(got))
	}
}
