package config

import "bidforge/internal/tender"

// OutlineConfig configures the plan outliner: the prompt sent to the
// completion gateway and the deterministic fallback used when the gateway is
// unavailable.
type OutlineConfig struct {
	// PromptTemplate is the gateway prompt. Placeholders: {PROJECT_NAME},
	// {SPEC}, {FORMAT_SECTIONS}.
	PromptTemplate string `yaml:"prompt_template"`

	// DefaultWeights parameterize the fallback outline when the run's
	// metadata carries no scoring weights.
	DefaultWeights []tender.ScoringWeight `yaml:"default_weights"`
}

func defaultOutlineConfig() OutlineConfig {
	return OutlineConfig{
		PromptTemplate: "你是投标方案总工。目标：基于技术规格书与投标文件格式，输出方案的三级提纲与检查点。" +
			"要求：Markdown、每个末级小节以“证据绑定：规格书 §x.x”结尾、不要生成大段正文。\n\n" +
			"【项目】{PROJECT_NAME}\n\n【技术规格书】\n{SPEC}\n\n【格式章节】\n{FORMAT_SECTIONS}\n",
		DefaultWeights: []tender.ScoringWeight{
			{Name: "技术方案", Points: 25},
			{Name: "施工方法及主要技术措施", Points: 25},
		},
	}
}
