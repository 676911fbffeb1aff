package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bidforge/internal/tender"
)

func TestNewState(t *testing.T) {
	now := time.Date(2025, 11, 3, 9, 30, 0, 0, time.UTC)

	t.Run("generates session id when empty", func(t *testing.T) {
		s, err := NewState("", "招标文件正文", tender.Meta{}, now)
		require.NoError(t, err)
		assert.NotEmpty(t, s.SessionID)
		assert.Equal(t, StageStructure, s.Next)
		assert.Equal(t, "2025-11-03", s.Date())
	})

	t.Run("keeps provided session id", func(t *testing.T) {
		s, err := NewState("sess-9", "招标文件正文", tender.Meta{}, now)
		require.NoError(t, err)
		assert.Equal(t, "sess-9", s.SessionID)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		_, err := NewState("s", "   ", tender.Meta{}, now)
		assert.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("rejects non-text input", func(t *testing.T) {
		_, err := NewState("s", string([]byte{0xff, 0xfe, 0x00}), tender.Meta{}, now)
		assert.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("normalizes line endings", func(t *testing.T) {
		s, err := NewState("s", "第一行\r\n第二行\r第三行", tender.Meta{}, now)
		require.NoError(t, err)
		assert.Equal(t, "第一行\n第二行\n第三行", s.TenderText)
	})
}
