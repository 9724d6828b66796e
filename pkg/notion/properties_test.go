package notion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipnote/clipnote/pkg/catalog"
)

func testVideo() catalog.Video {
	return catalog.Video{
		ID:           "vid1",
		Title:        "A Video",
		PublishedAt:  "2024-03-01T15:30:00.000Z",
		ChannelID:    "chanA",
		ChannelName:  "Channel A",
		Duration:     "10 mins 2 secs",
		ThumbnailURL: "https://img.example/high.jpg",
		CategoryID:   "22",
		CategoryName: "People & Blogs",
		URL:          "https://www.youtube.com/watch?v=vid1",
	}
}

func TestVideoProperties(t *testing.T) {
	t.Run("full record with relation", func(t *testing.T) {
		props := VideoProperties(testVideo(), "page-chanA")

		assert.Equal(t, "A Video", props[PropName].Title[0].Text.Content)
		assert.Equal(t, "vid1", props[PropVideoID].RichText[0].Text.Content)
		assert.Equal(t, "2024-03-01T15:30:00.000Z", props[PropDate].Date.Start)
		assert.Equal(t, "10 mins 2 secs", props[PropDuration].RichText[0].Text.Content)
		assert.Equal(t, "https://img.example/high.jpg", *props[PropThumbnail].URL)
		assert.Equal(t, "22", props[PropCategoryID].Select.Name)
		assert.Equal(t, "People & Blogs", props[PropCategoryName].Select.Name)
		require.Len(t, props[PropChannel].Relation, 1)
		assert.Equal(t, "page-chanA", props[PropChannel].Relation[0].ID)
	})

	t.Run("optional fields omitted when empty", func(t *testing.T) {
		v := testVideo()
		v.ThumbnailURL = ""
		v.CategoryName = ""
		props := VideoProperties(v, "")

		assert.NotContains(t, props, PropThumbnail)
		assert.NotContains(t, props, PropCategoryName)
		assert.NotContains(t, props, PropChannel)
	})

	t.Run("title truncated to store limit", func(t *testing.T) {
		v := testVideo()
		v.Title = strings.Repeat("x", MaxTextLength+100)
		props := VideoProperties(v, "")
		assert.Len(t, []rune(props[PropName].Title[0].Text.Content), MaxTextLength)
	})
}

func TestChannelProperties(t *testing.T) {
	t.Run("with custom url", func(t *testing.T) {
		props := ChannelProperties(catalog.Channel{
			ID:        "chanA",
			Name:      "Channel A",
			CustomURL: "https://www.youtube.com/@channela",
		})
		assert.Equal(t, "Channel A", props[PropName].Title[0].Text.Content)
		assert.Equal(t, "chanA", props[PropChannelID].RichText[0].Text.Content)
		assert.Equal(t, "https://www.youtube.com/@channela", *props[PropURL].URL)
	})

	t.Run("without custom url", func(t *testing.T) {
		props := ChannelProperties(catalog.Channel{ID: "chanA", Name: "Channel A"})
		assert.NotContains(t, props, PropURL)
	})
}

func TestFieldMapsRoundTrip(t *testing.T) {
	v := testVideo()

	page := &Page{
		ID:         "page-vid1",
		Properties: VideoProperties(v, "page-chanA"),
	}

	existing := VideoFields(page)
	incoming := VideoFieldMap(v)

	// A freshly written page reads back equal to its source record.
	for field, want := range incoming {
		assert.Equal(t, want, existing[field], "field %s", field)
	}
	assert.Equal(t, "page-chanA", existing[PropChannel])
	assert.Equal(t, "vid1", existing[PropVideoID])
}

func TestChannelFields(t *testing.T) {
	c := catalog.Channel{ID: "chanA", Name: "Channel A", CustomURL: "https://www.youtube.com/@channela"}
	page := &Page{ID: "p1", Properties: ChannelProperties(c)}

	fields := ChannelFields(page)
	assert.Equal(t, "Channel A", fields[PropName])
	assert.Equal(t, "chanA", fields[PropChannelID])
	assert.Equal(t, "https://www.youtube.com/@channela", fields[PropURL])
}

func TestPropertyValueFromPlainText(t *testing.T) {
	// Pages read back from the API may carry only plain_text.
	page := &Page{Properties: map[string]Property{
		PropName: {Title: []RichText{{PlainText: "Read Back"}}},
	}}
	fields := VideoFields(page)
	assert.Equal(t, "Read Back", fields[PropName])
}
