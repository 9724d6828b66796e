package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipnote/clipnote/pkg/errors"
)

func TestVideos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/videos", r.URL.Path)
		assert.Equal(t, "yt-key", r.URL.Query().Get("key"))
		assert.Equal(t, "snippet,contentDetails", r.URL.Query().Get("part"))
		assert.Equal(t, "vid1,vid2", r.URL.Query().Get("id"))
		_, _ = w.Write([]byte(`{
			"items": [
				{
					"id": "vid1",
					"snippet": {
						"title": "First",
						"publishedAt": "2024-03-01T10:00:00Z",
						"channelId": "chanA",
						"channelTitle": "Channel A",
						"categoryId": "22",
						"thumbnails": {"high": {"url": "high.jpg", "width": 480, "height": 360}}
					},
					"contentDetails": {"duration": "PT4M13S"}
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient("yt-key").WithBaseURL(server.URL)
	items, err := client.Videos(context.Background(), []string{"vid1", "vid2"})
	require.NoError(t, err)

	// vid2 was not recognized by the API and is simply absent.
	require.Len(t, items, 1)
	assert.Equal(t, "vid1", items[0].ID)
	assert.Equal(t, "First", items[0].Snippet.Title)
	assert.Equal(t, "PT4M13S", items[0].ContentDetails.Duration)
	assert.Equal(t, "high.jpg", items[0].Snippet.Thumbnails.High.URL)
}

func TestVideosValidation(t *testing.T) {
	client := NewClient("yt-key")

	_, err := client.Videos(context.Background(), nil)
	assert.True(t, errors.IsValidationError(err))

	tooMany := make([]string, MaxBatchSize+1)
	for i := range tooMany {
		tooMany[i] = "vid"
	}
	_, err = client.Videos(context.Background(), tooMany)
	assert.True(t, errors.IsValidationError(err))
}

func TestChannel(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/channels", r.URL.Path)
			assert.Equal(t, "snippet,brandingSettings", r.URL.Query().Get("part"))
			assert.Equal(t, "chanA", r.URL.Query().Get("id"))
			_, _ = w.Write([]byte(`{
				"items": [{
					"id": "chanA",
					"snippet": {
						"title": "Channel A",
						"customUrl": "@channela",
						"thumbnails": {"high": {"url": "logo.jpg"}}
					}
				}]
			}`))
		}))
		defer server.Close()

		client := NewClient("yt-key").WithBaseURL(server.URL)
		channel, err := client.Channel(context.Background(), "chanA")
		require.NoError(t, err)
		require.NotNil(t, channel)
		assert.Equal(t, "@channela", channel.Snippet.CustomURL)
		assert.Equal(t, "logo.jpg", channel.Snippet.Thumbnails.High.URL)
	})

	t.Run("absent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"items": []}`))
		}))
		defer server.Close()

		client := NewClient("yt-key").WithBaseURL(server.URL)
		channel, err := client.Channel(context.Background(), "nope")
		require.NoError(t, err)
		assert.Nil(t, channel)
	})
}

func TestCategoryName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/videoCategories", r.URL.Path)
		if strings.Contains(r.URL.RawQuery, "id=22") {
			_, _ = w.Write([]byte(`{"items": [{"id": "22", "snippet": {"title": "People & Blogs"}}]}`))
			return
		}
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	client := NewClient("yt-key").WithBaseURL(server.URL)

	name, err := client.CategoryName(context.Background(), "22")
	require.NoError(t, err)
	assert.Equal(t, "People & Blogs", name)

	name, err = client.CategoryName(context.Background(), "999")
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestQuotaErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": {"message": "quotaExceeded"}}`))
	}))
	defer server.Close()

	client := NewClient("yt-key").WithBaseURL(server.URL)
	_, err := client.Videos(context.Background(), []string{"vid1"})
	require.Error(t, err)

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "youtube", apiErr.Service)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
}
