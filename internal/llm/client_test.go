package llm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const keyEnv = "TEST_LLM_API_KEY"

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	t.Setenv(keyEnv, "secret")
	c, err := NewClient(Config{
		BaseURL:    baseURL,
		APIKeyEnv:  keyEnv,
		Model:      "test-model",
		Timeout:    5 * time.Second,
		MaxRetries: 2,
	})
	require.NoError(t, err)
	return c
}

func completion(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
}

func TestGenerate_Success(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(completion("the answer"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	out, err := c.Generate([]Message{{Role: "user", Content: "question"}})
	require.NoError(t, err)

	assert.Equal(t, "the answer", out)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "test-model", gotReq.Model)
	assert.False(t, gotReq.Stream)
}

func TestGenerate_RetriesOnServerError(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(completion("recovered"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	out, err := c.Generate([]Message{{Role: "user", Content: "q"}})
	require.NoError(t, err)
	assert.Equal(t, "recovered", out)
	assert.Equal(t, 2, attempts)
}

func TestGenerate_HonorsRetryAfter(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_ = json.NewEncoder(w).Encode(completion("after backoff"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	out, err := c.Generate([]Message{{Role: "user", Content: "q"}})
	require.NoError(t, err)
	assert.Equal(t, "after backoff", out)
}

func TestGenerate_ClientErrorIsNotRetried(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Generate([]Message{{Role: "user", Content: "q"}})
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestNewClient_MissingKey(t *testing.T) {
	t.Setenv(keyEnv, "")
	_, err := NewClient(Config{APIKeyEnv: keyEnv})
	assert.Error(t, err)
}
