// Package outline produces the scored proposal outline. It is the only
// pipeline stage that talks to the completion gateway; a gateway failure is
// absorbed by a deterministic template parameterized by the tender's scoring
// weights, so the stage never fails and never blocks past its timeout.
package outline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"bidforge/internal/llm"
	"bidforge/internal/tender"
)

const systemPrompt = "你是投标方案总工，基于技术规格书生成带评分与证据绑定的方案提纲。"

// Config carries construction-time settings for the outliner.
type Config struct {
	PromptTemplate string
	DefaultWeights []tender.ScoringWeight
	SpecBudget     int           // prompt character budget for the spec excerpt
	Timeout        time.Duration // per-attempt gateway timeout
	MaxRetries     int           // retries after the first attempt, at most one applied
}

// Outliner generates the scored outline for one run.
type Outliner struct {
	client llm.Client
	cfg    Config
	log    *zap.Logger
}

// New builds an outliner. Model settings live inside the client; the
// outliner only decides prompt content and fallback behavior.
func New(client llm.Client, cfg Config, log *zap.Logger) *Outliner {
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}
	if cfg.MaxRetries > 1 {
		cfg.MaxRetries = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Outliner{client: client, cfg: cfg, log: log}
}

// Outline returns the scored outline text. A gateway failure or empty
// completion falls back to the deterministic template; the returned bool
// tells the caller which path produced the text. A caller abort is not a
// gateway failure: when ctx itself is cancelled the error is returned and no
// fallback is produced.
func (o *Outliner) Outline(ctx context.Context, specText string, sections []string, meta tender.Meta) (string, bool, error) {
	prompt := o.buildPrompt(specText, sections, meta)

	attempts := 1 + o.cfg.MaxRetries
	for i := 0; i < attempts; i++ {
		attemptCtx, cancel := context.WithTimeout(ctx, o.cfg.Timeout)
		text, err := o.client.CompleteWithSystem(attemptCtx, systemPrompt, prompt)
		cancel()
		if err == nil && strings.TrimSpace(text) != "" {
			return text, true, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", false, ctxErr
		}
		o.log.Warn("outline gateway attempt failed",
			zap.Int("attempt", i+1),
			zap.Error(err))
	}

	o.log.Warn("outline degraded to deterministic template")
	return o.Fallback(meta), false, nil
}

// buildPrompt fills the configured template. The spec excerpt is truncated
// from the start to the character budget, never sampled.
func (o *Outliner) buildPrompt(specText string, sections []string, meta tender.Meta) string {
	spec := specText
	if budget := o.cfg.SpecBudget; budget > 0 {
		runes := []rune(spec)
		if len(runes) > budget {
			spec = string(runes[:budget])
		}
	}

	var formatSections strings.Builder
	for _, s := range sections {
		fmt.Fprintf(&formatSections, "- %s\n", s)
	}

	r := strings.NewReplacer(
		"{PROJECT_NAME}", projectName(meta),
		"{SPEC}", spec,
		"{FORMAT_SECTIONS}", formatSections.String(),
	)
	return r.Replace(o.cfg.PromptTemplate)
}

// Fallback renders the deterministic outline from the scoring weights. Each
// scored section keeps its point value in the header and every leaf carries
// an evidence-binding placeholder.
func (o *Outliner) Fallback(meta tender.Meta) string {
	weights := meta.ScoringWeights
	if len(weights) == 0 {
		weights = o.cfg.DefaultWeights
	}

	var b strings.Builder
	b.WriteString("# 方案详细说明及施工组织设计\n\n")

	for i, w := range weights {
		fmt.Fprintf(&b, "## %c. %s（%d分）\n", 'A'+rune(i), w.Name, w.Points)
		for _, leaf := range fallbackLeaves(w.Name) {
			fmt.Fprintf(&b, "- %s\n  证据绑定：规格书 §x.x\n", leaf)
		}
		b.WriteString("\n")
	}

	next := len(weights)
	for _, extra := range []struct {
		title  string
		leaves []string
	}{
		{"进度与资源", []string{"工期里程碑", "人材机配置"}},
		{"质量/HSE/风险", []string{"质量目标与流程", "风险矩阵与缓解"}},
		{"资料与培训", []string{"资料清单与份数", "培训与考核"}},
	} {
		fmt.Fprintf(&b, "## %c. %s\n", 'A'+rune(next), extra.title)
		for _, leaf := range extra.leaves {
			fmt.Fprintf(&b, "- %s\n  证据绑定：规格书 §x.x\n", leaf)
		}
		b.WriteString("\n")
		next++
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// fallbackLeaves picks leaf bullets for a scored section. Known section
// families get tailored leaves; anything else gets the generic set.
func fallbackLeaves(name string) []string {
	switch {
	case strings.Contains(name, "技术"):
		return []string{"项目理解与技术路线", "关键设备与参数", "排放与能效保证值", "系统集成与接口", "控制与数字化"}
	case strings.Contains(name, "施工"):
		return []string{"组织机构与职责", "关键工序与质量控制", "干扰最小化与应急回退", "安全文明与环保", "试车与验收"}
	default:
		return []string{"实施内容与边界", "关键措施与保证值", "检查点与验收口径"}
	}
}

func projectName(meta tender.Meta) string {
	if strings.TrimSpace(meta.ProjectName) == "" {
		return "{{PROJECT_NAME}}"
	}
	return meta.ProjectName
}
