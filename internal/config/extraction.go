package config

// ExtractionConfig holds the chapter-boundary aliases and fallback templates
// used by the structure and spec extractors. These are data, not logic:
// adding a new heading variant is a config edit.
type ExtractionConfig struct {
	// BidFormatAliases are title keywords identifying the bid-document-format
	// chapter. This chapter both anchors structure extraction and terminates
	// the specification slice.
	BidFormatAliases []string `yaml:"bid_format_aliases"`

	// SpecAliases are title keywords identifying the technical-specification
	// chapter, the start marker for the specification slice.
	SpecAliases []string `yaml:"spec_aliases"`

	// Synonyms canonicalize near-duplicate section titles before dedup.
	// A title containing every keyword in Contains is replaced by Canonical.
	Synonyms []SynonymRule `yaml:"synonyms"`

	// DefaultSkeleton is the fixed section list used when no structure can be
	// recovered from the document.
	DefaultSkeleton []string `yaml:"default_skeleton"`

	// DefaultChecklist is the synthesized specification returned when no
	// start marker is found.
	DefaultChecklist string `yaml:"default_checklist"`
}

// SynonymRule maps heading variants onto one canonical section title.
type SynonymRule struct {
	Contains  []string `yaml:"contains"`
	Canonical string   `yaml:"canonical"`
}

func defaultExtractionConfig() ExtractionConfig {
	return ExtractionConfig{
		BidFormatAliases: []string{
			"投标文件格式",
			"投标文件模板",
			"投标格式",
			"投标文件范本",
			"投标文件样本",
		},
		SpecAliases: []string{
			"技术规格书",
			"技术规范",
			"技术标准及规格",
			"技术标准",
			"技术条件",
			"技术要求",
		},
		Synonyms: []SynonymRule{
			{Contains: []string{"方案", "施工"}, Canonical: "方案详细说明及施工组织设计"},
			{Contains: []string{"偏差"}, Canonical: "商务和技术偏差表"},
		},
		DefaultSkeleton: []string{
			"投标函",
			"法定代表人身份证明",
			"授权委托书",
			"投标保证金",
			"投标报价表",
			"分项报价表",
			"企业资料",
			"方案详细说明及施工组织设计",
			"资格审查资料",
			"商务和技术偏差表",
			"其他材料",
		},
		DefaultChecklist: `# 第四章 技术规格书（未在文中定位，使用提纲占位）

- 交钥匙范围
- 技术参数与标准
- 资料交付
- 质量与验收
- 安全与环保
`,
	}
}
