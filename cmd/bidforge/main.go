package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"bidforge/internal/config"
	"bidforge/internal/llm"
	"bidforge/internal/pipeline"
	"bidforge/internal/tender"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// build flags
	workspace  string
	sessionID  string
	resumeFrom string
	offline    bool
	metaPath   string
	meta       tender.Meta

	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bidforge",
	Short: "bidforge - tender-to-bid extraction and assembly pipeline",
	Long: `bidforge converts an unstructured tender document into a structured bid
package through five stages: structure extraction, specification slicing,
scored outline generation, draft assembly, and a rule-based compliance check.

Every stage degrades through deterministic fallbacks; a run always produces
usable artifacts even when pattern matching or the model gateway fails.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		zcfg.Encoding = "console"
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// buildCmd runs the pipeline over one tender document.
var buildCmd = &cobra.Command{
	Use:   "build [tender-file]",
	Short: "Run the extraction-and-assembly pipeline over a tender document",
	Long: `Runs the five-stage pipeline and writes the artifacts into the session
directory: skeleton, specification excerpt, outline, draft, and the
compliance report.

Examples:
  bidforge build tender.md --project "余热锅炉改造" --bidder "XX 锅炉厂"
  bidforge build --session 7f3a... --resume-from outline`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

// stagesCmd prints the canonical stage vocabulary.
var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List the canonical pipeline stage names",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range pipeline.StageNames() {
			fmt.Println(name)
		}
	},
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if workspace != "" {
		cfg.Pipeline.SessionsDir = filepath.Join(workspace, "sessions")
	}

	provider := cfg.LLM.Provider
	if offline {
		provider = "none"
	}
	client, err := llm.NewClient(llm.FactoryConfig{
		Provider:    provider,
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.GetLLMTimeout(),
	})
	if err != nil {
		return err
	}

	orch, err := pipeline.New(cfg, client, logger)
	if err != nil {
		return err
	}

	req := pipeline.BuildRequest{
		SessionID: sessionID,
		Meta:      meta,
	}
	if metaPath != "" {
		data, err := os.ReadFile(metaPath)
		if err != nil {
			return fmt.Errorf("failed to read meta file: %w", err)
		}
		if err := yaml.Unmarshal(data, &req.Meta); err != nil {
			return fmt.Errorf("failed to parse meta file: %w", err)
		}
	}
	if resumeFrom != "" {
		req.ResumeFrom, err = pipeline.ParseStage(resumeFrom)
		if err != nil {
			return err
		}
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read tender file: %w", err)
		}
		req.TenderText = string(data)
		if req.Meta.ProjectName == "" {
			base := filepath.Base(args[0])
			req.Meta.ProjectName = base[:len(base)-len(filepath.Ext(base))]
		}
	} else if req.ResumeFrom == pipeline.StageStructure {
		return fmt.Errorf("a tender file is required unless resuming an existing session")
	}

	result, err := orch.Build(cmd.Context(), req)
	if err != nil {
		return err
	}

	fmt.Printf("session: %s\n", result.SessionID)
	fmt.Printf("skeleton: %s\n", result.SkeletonPath)
	fmt.Printf("spec excerpt: %s\n", result.SpecPath)
	fmt.Printf("outline: %s\n", result.OutlinePath)
	fmt.Printf("draft: %s\n", result.DraftPath)
	fmt.Printf("sanity report: %s\n", result.SanityReportPath)
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "bidforge.yaml", "path to config file")

	buildCmd.Flags().StringVar(&workspace, "workspace", "", "workspace directory holding session artifacts")
	buildCmd.Flags().StringVar(&sessionID, "session", "", "session id (generated if empty)")
	buildCmd.Flags().StringVar(&metaPath, "meta", "", "YAML file with project metadata and scoring weights")
	buildCmd.Flags().StringVar(&resumeFrom, "resume-from", "", "stage to resume from (spec, outline, draft, sanity)")
	buildCmd.Flags().BoolVar(&offline, "offline", false, "skip the model gateway, use deterministic templates")
	buildCmd.Flags().StringVar(&meta.ProjectName, "project", "", "project name")
	buildCmd.Flags().StringVar(&meta.TenderNo, "tender-no", "", "tender number")
	buildCmd.Flags().StringVar(&meta.BidderName, "bidder", "", "bidder name")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(stagesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
