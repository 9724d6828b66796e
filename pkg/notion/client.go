package notion

import (
	"context"
	"fmt"

	"github.com/clipnote/clipnote/internal/transport"
)

const (
	defaultBaseURL = "https://api.notion.com/v1"

	// apiVersion pins the Notion API revision all requests are made against.
	apiVersion = "2021-08-16"
)

// Client talks to the Notion API. All calls are synchronous request/response
// pairs; the client holds no state beyond its transport.
type Client struct {
	transport *transport.Client
	baseURL   string
}

// NewClient creates a Notion client authenticating with the given
// integration token.
func NewClient(token string) *Client {
	return &Client{
		transport: transport.New("notion", &transport.BearerAuth{}, token).
			WithHeader("Notion-Version", apiVersion),
		baseURL: defaultBaseURL,
	}
}

// WithBaseURL overrides the API base URL. Used by tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// Query returns the pages of a database whose named rich_text property
// exactly equals the given value. The returned pages carry their current
// property values, so no follow-up get is needed.
func (c *Client) Query(ctx context.Context, databaseID, property, equals string) ([]Page, error) {
	req := queryRequest{
		Filter: &Filter{
			Property: property,
			RichText: &TextFilter{Equals: equals},
		},
	}

	var resp queryResponse
	url := fmt.Sprintf("%s/databases/%s/query", c.baseURL, databaseID)
	if err := c.transport.PostJSON(ctx, url, req, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// CreatePage creates a page and returns its store-assigned ID.
func (c *Client) CreatePage(ctx context.Context, create *PageCreate) (string, error) {
	var page Page
	if err := c.transport.PostJSON(ctx, c.baseURL+"/pages", create, &page); err != nil {
		return "", err
	}
	return page.ID, nil
}

// UpdatePage patches an existing page's properties and cover.
func (c *Client) UpdatePage(ctx context.Context, pageID string, patch *PagePatch) error {
	return c.transport.PatchJSON(ctx, c.baseURL+"/pages/"+pageID, patch, nil)
}

// GetPage fetches a page with its current property values.
func (c *Client) GetPage(ctx context.Context, pageID string) (*Page, error) {
	var page Page
	if err := c.transport.GetJSON(ctx, c.baseURL+"/pages/"+pageID, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
