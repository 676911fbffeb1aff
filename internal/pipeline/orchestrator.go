package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"bidforge/internal/assemble"
	"bidforge/internal/config"
	"bidforge/internal/extract"
	"bidforge/internal/llm"
	"bidforge/internal/outline"
	"bidforge/internal/sanity"
	"bidforge/internal/tender"
)

// Orchestrator sequences the five pipeline stages over one State. Stages run
// strictly in order on one goroutine; only the outline stage may block, and
// only up to its configured timeout. Multiple orchestrator calls for
// different sessions may run concurrently since sessions share nothing but
// read-only configuration.
type Orchestrator struct {
	cfg       *config.Config
	store     *Store
	structure *extract.StructureExtractor
	specx     *extract.SpecExtractor
	outliner  *outline.Outliner
	checker   *sanity.Checker
	log       *zap.Logger
}

// New wires the orchestrator from configuration and a gateway client. All
// model settings are resolved here, once.
func New(cfg *config.Config, client llm.Client, log *zap.Logger) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		cfg:       cfg,
		store:     NewStore(cfg.Pipeline.SessionsDir),
		structure: extract.NewStructureExtractor(cfg.Extraction),
		specx:     extract.NewSpecExtractor(cfg.Extraction),
		outliner: outline.New(llm.NewTracingClient(client, log), outline.Config{
			PromptTemplate: cfg.Outline.PromptTemplate,
			DefaultWeights: cfg.Outline.DefaultWeights,
			SpecBudget:     cfg.Pipeline.SpecPromptBudget,
			Timeout:        cfg.GetLLMTimeout(),
			MaxRetries:     cfg.LLM.MaxRetries,
		}, log),
		checker: sanity.NewChecker(cfg.Sanity),
		log:     log,
	}, nil
}

// BuildRequest is the pipeline entry point's input. ResumeFrom restarts an
// existing session at a stage, reusing earlier artifacts unchanged; leave it
// at StageStructure (with SessionID empty or new) for a fresh run.
type BuildRequest struct {
	SessionID  string
	TenderText string
	Meta       tender.Meta
	ResumeFrom Stage
}

// BuildResult names the five persisted artifacts of a run.
type BuildResult struct {
	SessionID        string
	SkeletonPath     string
	SpecPath         string
	OutlinePath      string
	DraftPath        string
	SanityReportPath string
}

// Build runs the pipeline from ResumeFrom through the sanity check. Aborting
// via ctx between stages leaves the last completed stage's artifacts
// persisted; only the in-flight stage's partial output is discarded.
func (o *Orchestrator) Build(ctx context.Context, req BuildRequest) (*BuildResult, error) {
	state, err := o.prepareState(req)
	if err != nil {
		return nil, err
	}

	log := o.log.With(zap.String("session", state.SessionID))
	log.Info("pipeline run starting", zap.Stringer("from", req.ResumeFrom))

	for st := req.ResumeFrom; st < StageDone; st++ {
		if err := ctx.Err(); err != nil {
			log.Warn("run aborted between stages", zap.Stringer("next", st))
			return nil, err
		}
		started := time.Now()
		if err := o.runStage(ctx, st, state, log); err != nil {
			return nil, err
		}
		state.Next = st + 1
		if err := o.store.SaveState(state); err != nil {
			return nil, err
		}
		log.Info("stage completed",
			zap.Stringer("stage", st),
			zap.Duration("elapsed", time.Since(started)))
	}

	return &BuildResult{
		SessionID:        state.SessionID,
		SkeletonPath:     o.store.ArtifactPath(state.SessionID, ArtifactSkeleton),
		SpecPath:         o.store.ArtifactPath(state.SessionID, ArtifactSpec),
		OutlinePath:      o.store.ArtifactPath(state.SessionID, ArtifactOutline),
		DraftPath:        o.store.ArtifactPath(state.SessionID, ArtifactDraft),
		SanityReportPath: o.store.ArtifactPath(state.SessionID, ArtifactSanity),
	}, nil
}

// prepareState builds fresh state or restores a checkpoint for a resume.
func (o *Orchestrator) prepareState(req BuildRequest) (*State, error) {
	if req.ResumeFrom == StageStructure {
		return NewState(req.SessionID, req.TenderText, req.Meta, time.Now())
	}
	if req.ResumeFrom >= StageDone {
		return nil, fmt.Errorf("cannot resume from %q", req.ResumeFrom)
	}
	if req.SessionID == "" {
		return nil, fmt.Errorf("resume requires a session id")
	}
	state, err := o.store.LoadState(req.SessionID)
	if err != nil {
		return nil, err
	}
	if !state.readyFor(req.ResumeFrom) {
		return nil, fmt.Errorf("session %s has not completed the stages before %q", req.SessionID, req.ResumeFrom)
	}
	return state, nil
}

// runStage executes one stage and persists its artifact. Extraction misses
// never surface here; the strategy chains absorb them.
func (o *Orchestrator) runStage(ctx context.Context, st Stage, state *State, log *zap.Logger) error {
	switch st {
	case StageStructure:
		sections, source := o.structure.Sections(state.TenderText)
		state.SectionList = sections
		log.Info("structure extracted",
			zap.String("tier", string(source)),
			zap.Int("sections", len(sections)))
		skeleton := assemble.RenderSkeleton(sections, state.Meta, state.Date())
		_, err := o.store.WriteArtifact(state.SessionID, ArtifactSkeleton, skeleton)
		return err

	case StageSpec:
		specText, source := o.specx.Extract(state.TenderText)
		state.SpecText = specText
		if source == extract.SourceChecklist {
			log.Warn("spec slice missed all markers, using checklist template")
		} else {
			log.Info("spec sliced", zap.String("tier", string(source)), zap.Int("chars", len(specText)))
		}
		_, err := o.store.WriteArtifact(state.SessionID, ArtifactSpec, specArtifact(specText, state.Date()))
		return err

	case StageOutline:
		text, fromGateway, err := o.outliner.Outline(ctx, state.SpecText, state.SectionList, state.Meta)
		if err != nil {
			log.Warn("run aborted during outline stage", zap.Error(err))
			return err
		}
		state.OutlineText = text
		if !fromGateway {
			log.Warn("outline degraded to deterministic template")
		}
		_, err = o.store.WriteArtifact(state.SessionID, ArtifactOutline, outlineArtifact(text, state.Date()))
		return err

	case StageDraft:
		skeleton := assemble.RenderSkeleton(state.SectionList, state.Meta, state.Date())
		state.DraftText = assemble.Draft(assemble.DraftInput{
			Skeleton:   skeleton,
			Outline:    state.OutlineText,
			Spec:       state.SpecText,
			Date:       state.Date(),
			SpecBudget: o.cfg.Pipeline.SpecAppendixBudget,
		})
		_, err := o.store.WriteArtifact(state.SessionID, ArtifactDraft, state.DraftText)
		return err

	case StageSanity:
		report := o.checker.Check(state.DraftText, state.Meta)
		state.SanityReport = &report
		log.Info("sanity check complete",
			zap.Int("present", report.Summary.PresentCount),
			zap.Int("absent", report.Summary.AbsentCount))
		_, err := o.store.WriteJSON(state.SessionID, ArtifactSanity, report)
		return err

	default:
		return fmt.Errorf("unknown stage %v", st)
	}
}

func specArtifact(specText, date string) string {
	return "---\n" +
		"title: 技术规格书（提取）\n" +
		"generated_at: " + date + "\n" +
		"note: 自动抽取（从“技术规格书/技术要求”章起，至“投标文件格式”章前）\n" +
		"---\n\n" +
		specText + "\n"
}

func outlineArtifact(text, date string) string {
	return "---\n" +
		"title: 方案（提纲）\n" +
		"generated_at: " + date + "\n" +
		"---\n\n" +
		text + "\n"
}
