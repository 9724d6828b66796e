// Package catalog defines the canonical record types for synced YouTube
// metadata and the normalizer that produces them from raw API responses.
package catalog

// Video is the canonical representation of one YouTube video as it is
// written to the remote store. ID is the sole identity key and is immutable;
// every other field is re-derived from the YouTube API on each run.
type Video struct {
	ID           string // YouTube video ID
	Title        string
	PublishedAt  string // rendered in the target timezone, millisecond precision
	ChannelID    string // identity key of the owning channel
	ChannelName  string // display only
	Duration     string // human-readable, e.g. "1 hours 5 mins 30 secs"
	ThumbnailURL string // highest available resolution, empty when absent
	CategoryID   string
	CategoryName string // empty when the category lookup returned nothing
	URL          string // canonical watch URL derived from ID
}

// Channel is the canonical representation of a video's owning channel.
// ID is the identity key; the remaining fields are mutable.
type Channel struct {
	ID        string
	Name      string
	LogoURL   string // empty when absent
	CustomURL string // full URL derived from the channel's custom path, empty when absent
}
