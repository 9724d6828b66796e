// Package youtube provides the YouTube Data API v3 client used to fetch
// video, channel, and category metadata. Fetching is mechanical; all
// normalization happens in pkg/catalog.
package youtube

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/clipnote/clipnote/internal/transport"
	"github.com/clipnote/clipnote/pkg/catalog"
	"github.com/clipnote/clipnote/pkg/errors"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// MaxBatchSize is the maximum number of video IDs the videos.list endpoint
// accepts per call.
const MaxBatchSize = 50

// Client talks to the YouTube Data API using API-key authentication.
type Client struct {
	transport *transport.Client
	baseURL   string
}

// NewClient creates a YouTube client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		transport: transport.New("youtube", &transport.QueryAuth{Param: "key"}, apiKey),
		baseURL:   defaultBaseURL,
	}
}

// WithBaseURL overrides the API base URL. Used by tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// videoListResponse is the wire shape of a videos.list response.
type videoListResponse struct {
	Items []catalog.RawVideo `json:"items"`
}

// channelListResponse is the wire shape of a channels.list response.
type channelListResponse struct {
	Items []catalog.RawChannel `json:"items"`
}

// categoryListResponse is the wire shape of a videoCategories.list response.
type categoryListResponse struct {
	Items []categoryResource `json:"items"`
}

type categoryResource struct {
	ID      string `json:"id"`
	Snippet struct {
		Title string `json:"title"`
	} `json:"snippet"`
}

// Videos fetches metadata for up to MaxBatchSize video IDs in a single call.
// IDs the API does not recognize are silently absent from the result.
func (c *Client) Videos(ctx context.Context, ids []string) ([]catalog.RawVideo, error) {
	if len(ids) == 0 {
		return nil, errors.NewValidationError("ids", ids, "at least one video ID is required")
	}
	if len(ids) > MaxBatchSize {
		return nil, errors.NewValidationError("ids", len(ids), fmt.Sprintf("at most %d video IDs per call", MaxBatchSize))
	}

	var resp videoListResponse
	err := c.transport.GetJSON(ctx, c.listURL("videos", url.Values{
		"part":       {"snippet,contentDetails"},
		"id":         {strings.Join(ids, ",")},
		"maxResults": {fmt.Sprint(MaxBatchSize)},
	}), &resp)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Channel fetches one channel resource. A channel the API does not know
// yields (nil, nil); the caller treats missing channel data as optional.
func (c *Client) Channel(ctx context.Context, id string) (*catalog.RawChannel, error) {
	var resp channelListResponse
	err := c.transport.GetJSON(ctx, c.listURL("channels", url.Values{
		"part": {"snippet,brandingSettings"},
		"id":   {id},
	}), &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, nil
	}
	return &resp.Items[0], nil
}

// CategoryName resolves a category ID to its display name. An unknown
// category yields ("", nil).
func (c *Client) CategoryName(ctx context.Context, id string) (string, error) {
	var resp categoryListResponse
	err := c.transport.GetJSON(ctx, c.listURL("videoCategories", url.Values{
		"part": {"snippet"},
		"id":   {id},
	}), &resp)
	if err != nil {
		return "", err
	}
	if len(resp.Items) == 0 {
		return "", nil
	}
	return resp.Items[0].Snippet.Title, nil
}

func (c *Client) listURL(resource string, params url.Values) string {
	return fmt.Sprintf("%s/%s?%s", c.baseURL, resource, params.Encode())
}
