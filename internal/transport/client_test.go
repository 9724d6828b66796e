package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipnote/clipnote/pkg/errors"
)

func TestAuthenticators(t *testing.T) {
	t.Run("bearer", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "https://api.notion.com/v1/pages", nil)
		(&BearerAuth{}).Apply(req, "secret_token")
		assert.Equal(t, "Bearer secret_token", req.Header.Get("Authorization"))
	})

	t.Run("query param", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "https://www.googleapis.com/youtube/v3/videos?part=snippet", nil)
		(&QueryAuth{Param: "key"}).Apply(req, "yt-key")
		assert.Equal(t, "yt-key", req.URL.Query().Get("key"))
		assert.Equal(t, "snippet", req.URL.Query().Get("part"))
	})

	t.Run("no auth", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "https://example.com", nil)
		(&NoAuth{}).Apply(req, "ignored")
		assert.Empty(t, req.Header.Get("Authorization"))
	})
}

func TestGetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "2021-08-16", r.Header.Get("Notion-Version"))
		_ = json.NewEncoder(w).Encode(map[string]string{"object": "page"})
	}))
	defer server.Close()

	client := New("notion", &BearerAuth{}, "tok").WithHeader("Notion-Version", "2021-08-16")

	var result map[string]string
	require.NoError(t, client.GetJSON(context.Background(), server.URL, &result))
	assert.Equal(t, "page", result["object"])
}

func TestPostJSONEncodesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "abc", body["id"])
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New("notion", &NoAuth{}, "")
	err := client.PostJSON(context.Background(), server.URL, map[string]string{"id": "abc"}, nil)
	require.NoError(t, err)
}

func TestDecodeErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"rate limited", http.StatusTooManyRequests, errors.IsRateLimited},
		{"server error", http.StatusInternalServerError, errors.IsServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"message":"nope"}`))
			}))
			defer server.Close()

			client := New("youtube", &NoAuth{}, "")
			err := client.GetJSON(context.Background(), server.URL, &struct{}{})
			require.Error(t, err)
			assert.True(t, tt.check(err))

			var apiErr *errors.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, "youtube", apiErr.Service)
		})
	}
}
