package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStage(t *testing.T) {
	cases := map[string]Stage{
		"structure": StageStructure,
		"skeleton":  StageStructure,
		"SPEC":      StageSpec,
		" outline ": StageOutline,
		"plan":      StageOutline,
		"draft":     StageDraft,
		"assemble":  StageDraft,
		"sanity":    StageSanity,
		"check":     StageSanity,
	}
	for name, want := range cases {
		got, err := ParseStage(name)
		require.NoError(t, err, "name %q", name)
		assert.Equal(t, want, got, "name %q", name)
	}

	_, err := ParseStage("qa")
	assert.Error(t, err)
}

func TestStage_Ordering(t *testing.T) {
	assert.True(t, StageStructure < StageSpec)
	assert.True(t, StageSpec < StageOutline)
	assert.True(t, StageOutline < StageDraft)
	assert.True(t, StageDraft < StageSanity)
	assert.True(t, StageSanity < StageDone)
}

func TestStage_JSONRoundTrip(t *testing.T) {
	for s := StageStructure; s <= StageDone; s++ {
		data, err := json.Marshal(s)
		require.NoError(t, err)

		var back Stage
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, s, back)
	}
}

func TestStageNames_ExcludesDone(t *testing.T) {
	assert.Equal(t, []string{"structure", "spec", "outline", "draft", "sanity"}, StageNames())
}
