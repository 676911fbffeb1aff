package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Artifact file names inside a session directory. These names are a
// file-format contract consumed by the editor UI; do not rename casually.
const (
	ArtifactSkeleton = "skeleton.md"
	ArtifactSpec     = "spec_excerpt.md"
	ArtifactOutline  = "outline.md"
	ArtifactDraft    = "draft.md"
	ArtifactSanity   = "sanity_report.json"

	stateFile = "state.json"
)

// Store persists artifacts and run state under one directory per session.
// Two sessions never share an artifact path; re-running a stage overwrites
// that session's own artifact whole, never merges.
type Store struct {
	root string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// SessionDir returns the artifact directory for a session.
func (s *Store) SessionDir(sessionID string) string {
	return filepath.Join(s.root, sessionID)
}

// ArtifactPath returns where a named artifact lives for a session.
func (s *Store) ArtifactPath(sessionID, name string) string {
	return filepath.Join(s.SessionDir(sessionID), name)
}

// WriteArtifact persists one artifact and returns its path. Any failure is a
// PersistError: fatal for the run, prior artifacts stay valid.
func (s *Store) WriteArtifact(sessionID, name, content string) (string, error) {
	path := s.ArtifactPath(sessionID, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", &PersistError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", &PersistError{Path: path, Err: err}
	}
	return path, nil
}

// WriteJSON persists a JSON artifact with stable indentation.
func (s *Store) WriteJSON(sessionID, name string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", &PersistError{Path: s.ArtifactPath(sessionID, name), Err: err}
	}
	return s.WriteArtifact(sessionID, name, string(data)+"\n")
}

// SaveState checkpoints the run state so a later invocation can resume from
// any completed stage without recomputing earlier ones.
func (s *Store) SaveState(st *State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return &PersistError{Path: s.ArtifactPath(st.SessionID, stateFile), Err: err}
	}
	_, err = s.WriteArtifact(st.SessionID, stateFile, string(data)+"\n")
	return err
}

// LoadState restores a session's checkpointed state.
func (s *Store) LoadState(sessionID string) (*State, error) {
	path := s.ArtifactPath(sessionID, stateFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("no resumable state for session %s: %w", sessionID, err)
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("corrupt state for session %s: %w", sessionID, err)
	}
	return &st, nil
}
