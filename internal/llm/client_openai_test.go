package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *OpenAIClient {
	return NewOpenAIClient(OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: url,
		Model:   "test-model",
		Timeout: 5 * time.Second,
	})
}

func completionHandler(content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}, "finish_reason": "stop"},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func TestOpenAIClient_Complete(t *testing.T) {
	var gotBody chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		completionHandler("提纲内容")(w, r)
	}))
	defer srv.Close()

	text, err := newTestClient(srv.URL).CompleteWithSystem(context.Background(), "系统提示", "用户提示")
	require.NoError(t, err)
	assert.Equal(t, "提纲内容", text)

	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Equal(t, "user", gotBody.Messages[1].Role)
	assert.Equal(t, "test-model", gotBody.Model)
}

func TestOpenAIClient_ErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrUnauthorized},
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
		{"server error", http.StatusInternalServerError, ErrUnavailable},
		{"bad gateway", http.StatusBadGateway, ErrUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL).Complete(context.Background(), "prompt")
			assert.ErrorIs(t, err, tc.wantErr)
			assert.True(t, IsUnavailable(err))
		})
	}
}

func TestOpenAIClient_EmptyCompletionIsDistinctFromFailure(t *testing.T) {
	srv := httptest.NewServer(completionHandler("  "))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestOpenAIClient_MissingAPIKey(t *testing.T) {
	c := NewOpenAIClient(OpenAIConfig{BaseURL: "http://localhost:0"})
	_, err := c.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestOpenAIClient_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server can detect the client disconnect
		// and cancel the request context; otherwise srv.Close hangs.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestClient(srv.URL).Complete(ctx, "prompt")
	assert.Error(t, err)
}

func TestStubClient(t *testing.T) {
	t.Run("empty stub signals empty completion", func(t *testing.T) {
		_, err := (&StubClient{}).Complete(context.Background(), "p")
		assert.ErrorIs(t, err, ErrEmptyCompletion)
	})

	t.Run("scripted response", func(t *testing.T) {
		text, err := (&StubClient{Response: "ok"}).Complete(context.Background(), "p")
		require.NoError(t, err)
		assert.Equal(t, "ok", text)
	})

	t.Run("scripted failure", func(t *testing.T) {
		_, err := (&StubClient{Err: ErrRateLimited}).Complete(context.Background(), "p")
		assert.ErrorIs(t, err, ErrRateLimited)
	})
}

func TestNewClient_Factory(t *testing.T) {
	c, err := NewClient(FactoryConfig{Provider: "none"})
	require.NoError(t, err)
	_, ok := c.(*StubClient)
	assert.True(t, ok)

	c, err = NewClient(FactoryConfig{Provider: "openai", APIKey: "k"})
	require.NoError(t, err)
	_, ok = c.(*OpenAIClient)
	assert.True(t, ok)

	_, err = NewClient(FactoryConfig{Provider: "mystery"})
	assert.Error(t, err)
}
