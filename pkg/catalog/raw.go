package catalog

// Raw types mirror the YouTube Data API v3 response shapes consumed by the
// normalizer. The youtube client decodes API responses directly into these.

// RawVideo is one item of a videos.list response.
type RawVideo struct {
	ID             string            `json:"id"`
	Snippet        RawSnippet        `json:"snippet"`
	ContentDetails RawContentDetails `json:"contentDetails"`
}

// RawSnippet holds the snippet part of a video resource.
type RawSnippet struct {
	Title        string     `json:"title"`
	PublishedAt  string     `json:"publishedAt"`
	ChannelID    string     `json:"channelId"`
	ChannelTitle string     `json:"channelTitle"`
	CategoryID   string     `json:"categoryId"`
	Thumbnails   Thumbnails `json:"thumbnails"`
}

// RawContentDetails holds the contentDetails part of a video resource.
type RawContentDetails struct {
	Duration string `json:"duration"` // ISO-8601, e.g. "PT1H5M30S"
}

// Thumbnails lists the resolutions a resource may carry. Absent resolutions
// are nil.
type Thumbnails struct {
	Default  *Thumbnail `json:"default,omitempty"`
	Medium   *Thumbnail `json:"medium,omitempty"`
	High     *Thumbnail `json:"high,omitempty"`
	Standard *Thumbnail `json:"standard,omitempty"`
	Maxres   *Thumbnail `json:"maxres,omitempty"`
}

// Thumbnail is a single thumbnail variant.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// RawChannel is one item of a channels.list response, reduced to the parts
// the normalizer reads.
type RawChannel struct {
	ID      string            `json:"id"`
	Snippet RawChannelSnippet `json:"snippet"`
}

// RawChannelSnippet holds the snippet part of a channel resource.
type RawChannelSnippet struct {
	Title      string     `json:"title"`
	CustomURL  string     `json:"customUrl"`
	Thumbnails Thumbnails `json:"thumbnails"`
}
