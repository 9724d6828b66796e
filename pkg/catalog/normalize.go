package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/clipnote/clipnote/pkg/errors"
	"github.com/clipnote/clipnote/pkg/logging"
)

const (
	// watchURLTemplate is the canonical watch URL for a video ID.
	watchURLTemplate = "https://www.youtube.com/watch?v=%s"

	// channelURLTemplate resolves a channel's custom path fragment.
	channelURLTemplate = "https://www.youtube.com/%s"

	// publishedAtLayout is the timestamp format the YouTube API returns.
	publishedAtLayout = "2006-01-02T15:04:05Z"

	// renderedTimeLayout renders timestamps with millisecond precision and a
	// trailing Z, the format the video database's date property expects.
	renderedTimeLayout = "2006-01-02T15:04:05.000Z"

	// unknownDuration is rendered when the API duration cannot be parsed.
	unknownDuration = "unknown"

	// zeroDuration is rendered when all duration components are zero.
	zeroDuration = "0 secs"

	// DefaultTimezone is the target timezone for rendered timestamps.
	DefaultTimezone = "Asia/Kolkata"
)

// Normalizer converts raw YouTube API resources into canonical records.
// Parse failures never propagate: malformed timestamps fall back to the
// current wall clock and malformed durations to a fixed token.
type Normalizer struct {
	loc *time.Location
	now func() time.Time
}

// NewNormalizer creates a Normalizer rendering timestamps in the named
// timezone. An empty name selects DefaultTimezone.
func NewNormalizer(timezone string) (*Normalizer, error) {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, errors.NewConfigError("normalizer", fmt.Sprintf("unknown timezone %q", timezone), err)
	}
	return &Normalizer{loc: loc, now: time.Now}, nil
}

// Video builds the canonical video record from a raw video resource plus the
// already-fetched category name. The category lookup is optional: an empty
// name never fails normalization.
func (n *Normalizer) Video(raw RawVideo, categoryName string) Video {
	return Video{
		ID:           raw.ID,
		Title:        raw.Snippet.Title,
		PublishedAt:  n.renderPublishedAt(raw.Snippet.PublishedAt),
		ChannelID:    raw.Snippet.ChannelID,
		ChannelName:  raw.Snippet.ChannelTitle,
		Duration:     renderDuration(raw.ContentDetails.Duration),
		ThumbnailURL: bestThumbnail(raw.Snippet.Thumbnails),
		CategoryID:   raw.Snippet.CategoryID,
		CategoryName: categoryName,
		URL:          fmt.Sprintf(watchURLTemplate, raw.ID),
	}
}

// Channel builds the canonical channel record for a video's owner. The raw
// channel resource is optional; without it only the ID and display name from
// the video snippet are populated.
func (n *Normalizer) Channel(raw RawVideo, channel *RawChannel) Channel {
	c := Channel{
		ID:   raw.Snippet.ChannelID,
		Name: raw.Snippet.ChannelTitle,
	}
	if channel == nil {
		return c
	}

	c.LogoURL = bestLogo(channel.Snippet.Thumbnails)
	if channel.Snippet.CustomURL != "" {
		c.CustomURL = fmt.Sprintf(channelURLTemplate, channel.Snippet.CustomURL)
	}
	return c
}

// renderPublishedAt parses the API timestamp, converts it to the target
// timezone and renders it with millisecond precision. A malformed timestamp
// is logged and replaced with the current wall clock, rendered identically.
func (n *Normalizer) renderPublishedAt(publishedAt string) string {
	parsed, err := time.Parse(publishedAtLayout, publishedAt)
	if err != nil {
		logging.Warn().Str("published_at", publishedAt).Err(err).
			Msg("unparseable publish timestamp, substituting current time")
		parsed = n.now().UTC()
	}
	return parsed.In(n.loc).Format(renderedTimeLayout)
}

// renderDuration converts an ISO-8601 duration into a human-readable string
// of non-zero components, e.g. "1 hours 5 mins 30 secs".
func renderDuration(iso string) string {
	d, err := parseISODuration(iso)
	if err != nil {
		return unknownDuration
	}

	hours := int(d / time.Hour)
	minutes := int(d/time.Minute) % 60
	seconds := int(d/time.Second) % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hours", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d mins", minutes))
	}
	if seconds > 0 {
		parts = append(parts, fmt.Sprintf("%d secs", seconds))
	}
	if len(parts) == 0 {
		return zeroDuration
	}
	return strings.Join(parts, " ")
}

// parseISODuration parses the subset of ISO-8601 durations the YouTube API
// emits: P[nW][nD]T[nH][nM][nS].
func parseISODuration(iso string) (time.Duration, error) {
	if len(iso) < 2 || iso[0] != 'P' {
		return 0, errors.NewParseError("duration", iso, "missing P prefix", nil)
	}

	var total time.Duration
	inTime := false
	value := 0
	digits := false

	for _, r := range iso[1:] {
		switch {
		case r >= '0' && r <= '9':
			value = value*10 + int(r-'0')
			digits = true
		case r == 'T':
			if inTime {
				return 0, errors.NewParseError("duration", iso, "duplicate T designator", nil)
			}
			inTime = true
		default:
			if !digits {
				return 0, errors.NewParseError("duration", iso, "designator without value", nil)
			}
			var unit time.Duration
			switch {
			case r == 'W' && !inTime:
				unit = 7 * 24 * time.Hour
			case r == 'D' && !inTime:
				unit = 24 * time.Hour
			case r == 'H' && inTime:
				unit = time.Hour
			case r == 'M' && inTime:
				unit = time.Minute
			case r == 'S' && inTime:
				unit = time.Second
			default:
				return 0, errors.NewParseError("duration", iso, fmt.Sprintf("unexpected designator %q", r), nil)
			}
			total += time.Duration(value) * unit
			value = 0
			digits = false
		}
	}

	if digits {
		return 0, errors.NewParseError("duration", iso, "trailing value without designator", nil)
	}
	return total, nil
}

// bestThumbnail selects the highest-resolution video thumbnail available.
func bestThumbnail(t Thumbnails) string {
	for _, candidate := range []*Thumbnail{t.Maxres, t.Standard, t.High, t.Medium, t.Default} {
		if candidate != nil && candidate.URL != "" {
			return candidate.URL
		}
	}
	return ""
}

// bestLogo selects the highest-resolution channel logo available. Channel
// resources never carry standard or maxres variants.
func bestLogo(t Thumbnails) string {
	for _, candidate := range []*Thumbnail{t.High, t.Medium, t.Default} {
		if candidate != nil && candidate.URL != "" {
			return candidate.URL
		}
	}
	return ""
}
