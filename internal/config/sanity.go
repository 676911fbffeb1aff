package config

// SanityConfig holds the closed compliance-category list evaluated against
// the assembled draft. The category set never grows at runtime; adding a
// check is a config edit, not a code change.
type SanityConfig struct {
	Categories []SanityCategory `yaml:"categories"`

	// Advice is the reviewer guidance attached to every report summary.
	Advice string `yaml:"advice"`
}

// SanityCategory is one compliance check: present when any keyword occurs in
// the draft.
type SanityCategory struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

func defaultSanityConfig() SanityConfig {
	return SanityConfig{
		Categories: []SanityCategory{
			{Name: "工期与里程碑", Keywords: []string{"工期", "里程碑"}},
			{Name: "第三方检测", Keywords: []string{"第三方检测", "第三方测试"}},
			{Name: "验收程序", Keywords: []string{"验收"}},
			{Name: "环境保护", Keywords: []string{"环保", "环境保护"}},
			{Name: "安全要求", Keywords: []string{"安全"}},
			{Name: "资料交付", Keywords: []string{"资料交付", "资料清单"}},
			{Name: "质量标准", Keywords: []string{"质量标准", "质量目标"}},
			{Name: "商务和技术偏差表", Keywords: []string{"偏差表", "偏差"}},
		},
		Advice: "请在方案中明确工期/环保/安全/第三方检测/资料交付等硬性条款的指标与验收口径；若与规格书不一致，请在商务和技术偏差表中列出。",
	}
}
