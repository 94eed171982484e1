package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edaudit/course-auditor/internal/common"
	"github.com/edaudit/course-auditor/internal/llm"
)

func TestChat(t *testing.T) {
	ctx := context.Background()

	t.Run("successful completion", func(t *testing.T) {
		var gotPath, gotAuth string
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			_, _ = w.Write([]byte(`{"choices": [{"message": {"content": " {\"score\": 4} "}}]}`))
		}))
		defer srv.Close()

		c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Model: "llama-3.3-70b-versatile"}, nil)
		out, err := c.Chat(ctx, llm.ChatRequest{System: "sys", User: "user", Temperature: 0.3, MaxTokens: 100})
		require.NoError(t, err)

		assert.Equal(t, `{"score": 4}`, out)
		assert.Equal(t, "/chat/completions", gotPath)
		assert.Equal(t, "Bearer test-key", gotAuth)
		assert.Equal(t, "llama-3.3-70b-versatile", gotBody["model"])
		assert.Equal(t, 100.0, gotBody["max_tokens"])
		msgs := gotBody["messages"].([]any)
		require.Len(t, msgs, 2)
	})

	t.Run("http 429 is rate limited", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
		_, err := c.Chat(ctx, llm.ChatRequest{User: "u"})
		require.Error(t, err)
		assert.True(t, common.IsRateLimited(err))
	})

	t.Run("rate_limit error body is rate limited", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error": {"code": "rate_limit_exceeded"}}`))
		}))
		defer srv.Close()

		c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
		_, err := c.Chat(ctx, llm.ChatRequest{User: "u"})
		require.Error(t, err)
		assert.True(t, common.IsRateLimited(err))
	})

	t.Run("server error is permanent", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
		_, err := c.Chat(ctx, llm.ChatRequest{User: "u"})
		require.Error(t, err)
		assert.False(t, common.IsRateLimited(err))
	})

	t.Run("empty choices is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"choices": []}`))
		}))
		defer srv.Close()

		c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
		_, err := c.Chat(ctx, llm.ChatRequest{User: "u"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no choices")
	})
}
