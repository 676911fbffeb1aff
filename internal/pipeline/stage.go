// Package pipeline owns the run state machine: the closed stage enumeration
// with its single canonical-name table, the explicit run state record, the
// per-session artifact store, and the orchestrator that sequences the five
// stages and supports partial replay.
package pipeline

import (
	"fmt"
	"strings"
)

// Stage identifies one pipeline stage. Transitions are strictly linear:
// Structure -> Spec -> Outline -> Draft -> Sanity -> Done.
type Stage int

const (
	StageStructure Stage = iota
	StageSpec
	StageOutline
	StageDraft
	StageSanity
	StageDone
)

var stageNames = [...]string{
	StageStructure: "structure",
	StageSpec:      "spec",
	StageOutline:   "outline",
	StageDraft:     "draft",
	StageSanity:    "sanity",
	StageDone:      "done",
}

// stageAliases is the one synonym table for stage names. Every collaborator
// resolves names through ParseStage; nothing else keeps its own vocabulary.
var stageAliases = map[string]Stage{
	"structure": StageStructure,
	"skeleton":  StageStructure,
	"spec":      StageSpec,
	"extract":   StageSpec,
	"outline":   StageOutline,
	"plan":      StageOutline,
	"draft":     StageDraft,
	"assemble":  StageDraft,
	"sanity":    StageSanity,
	"check":     StageSanity,
	"done":      StageDone,
}

// String returns the canonical stage name.
func (s Stage) String() string {
	if s < StageStructure || s > StageDone {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

// MarshalText encodes the canonical name, keeping persisted state readable.
func (s Stage) MarshalText() ([]byte, error) {
	if s < StageStructure || s > StageDone {
		return nil, fmt.Errorf("invalid stage %d", int(s))
	}
	return []byte(stageNames[s]), nil
}

// UnmarshalText decodes any known stage name or alias.
func (s *Stage) UnmarshalText(text []byte) error {
	parsed, err := ParseStage(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStage resolves a stage name or alias to its canonical stage.
func ParseStage(name string) (Stage, error) {
	if s, ok := stageAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("unknown stage %q (known: %s)", name, strings.Join(StageNames(), ", "))
}

// StageNames returns the canonical names of the runnable stages in order.
func StageNames() []string {
	names := make([]string, 0, int(StageDone))
	for s := StageStructure; s < StageDone; s++ {
		names = append(names, s.String())
	}
	return names
}
