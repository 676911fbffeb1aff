package pipeline

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"bidforge/internal/sanity"
	"bidforge/internal/tender"
)

// State is the run state threaded through the stages. Each artifact field is
// written exactly once per stage execution, by that stage only; a later stage
// never observes a field before its producer has completed. Re-running a
// stage replaces its own slot, nothing else.
type State struct {
	SessionID  string      `json:"session_id"`
	CreatedAt  time.Time   `json:"created_at"`
	TenderText string      `json:"tender_text"`
	Meta       tender.Meta `json:"meta"`

	SectionList  []string       `json:"section_list,omitempty"`
	SpecText     string         `json:"spec_text,omitempty"`
	OutlineText  string         `json:"outline_text,omitempty"`
	DraftText    string         `json:"draft_text,omitempty"`
	SanityReport *sanity.Report `json:"sanity_report,omitempty"`

	// Next is the next stage to execute; StageDone once the run finished. A
	// resume may start at Next or at any earlier stage.
	Next Stage `json:"next_stage"`
}

// NewState creates the state for a fresh run. An empty session ID gets a
// generated UUID. Empty or non-UTF-8 tender text is a fatal precondition,
// rejected before any stage runs.
func NewState(sessionID, tenderText string, meta tender.Meta, now time.Time) (*State, error) {
	if strings.TrimSpace(tenderText) == "" || !utf8.ValidString(tenderText) {
		return nil, ErrMalformedInput
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	return &State{
		SessionID:  sessionID,
		CreatedAt:  now.UTC(),
		TenderText: tender.NormalizeNewlines(tenderText),
		Meta:       meta,
		Next:       StageStructure,
	}, nil
}

// Date is the run creation date used in rendered artifacts. Derived from
// CreatedAt so replaying a stage reproduces the same bytes.
func (s *State) Date() string {
	return s.CreatedAt.Format("2006-01-02")
}

// readyFor reports whether every field a stage depends on has been produced.
func (s *State) readyFor(stage Stage) bool {
	switch stage {
	case StageStructure:
		return true
	case StageSpec:
		return len(s.SectionList) > 0
	case StageOutline:
		return len(s.SectionList) > 0 && s.SpecText != ""
	case StageDraft:
		return len(s.SectionList) > 0 && s.SpecText != "" && s.OutlineText != ""
	case StageSanity:
		return s.DraftText != ""
	default:
		return false
	}
}
