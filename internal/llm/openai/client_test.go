package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qyuzet/onecarbon/internal/common"
	"github.com/Qyuzet/onecarbon/internal/llm"
)

func chatServer(t *testing.T, reply string, capture *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": reply}},
			},
		})
	}))
}

func TestEstimate(t *testing.T) {
	t.Run("parses number out of prose reply", func(t *testing.T) {
		var body map[string]any
		srv := chatServer(t, "The estimated footprint is 12.5 kg CO2.", &body)
		defer srv.Close()

		c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
		v, err := c.Estimate(context.Background(), llm.EstimateRequest{Text: "electricity usage report"})
		require.NoError(t, err)
		assert.Equal(t, 12.5, v)
		assert.Equal(t, "gpt-3.5-turbo", body["model"])
	})

	t.Run("truncates text to the configured prefix", func(t *testing.T) {
		var body map[string]any
		srv := chatServer(t, "3", &body)
		defer srv.Close()

		long := make([]byte, 200)
		for i := range long {
			long[i] = 'x'
		}
		c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, MaxTextChars: 50}, nil)
		_, err := c.Estimate(context.Background(), llm.EstimateRequest{Text: string(long)})
		require.NoError(t, err)

		msgs := body["messages"].([]any)
		user := msgs[1].(map[string]any)["content"].(string)
		assert.LessOrEqual(t, len(user), 50+200) // prompt prefix + 50 chars of text
	})

	t.Run("reply without a number is a recoverable zero", func(t *testing.T) {
		srv := chatServer(t, "I cannot tell.", nil)
		defer srv.Close()

		c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
		v, err := c.Estimate(context.Background(), llm.EstimateRequest{Text: "anything"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrEstimationFailed))
		assert.Zero(t, v)
	})

	t.Run("http failure is a recoverable zero", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
		v, err := c.Estimate(context.Background(), llm.EstimateRequest{Text: "anything"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrEstimationFailed))
		assert.Zero(t, v)
	})

	t.Run("json mode validates against the schema", func(t *testing.T) {
		srv := chatServer(t, `{"footprint_kg": 7.75}`, nil)
		defer srv.Close()

		c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, JSONMode: true}, nil)
		v, err := c.Estimate(context.Background(), llm.EstimateRequest{Text: "anything"})
		require.NoError(t, err)
		assert.Equal(t, 7.75, v)
	})
}
