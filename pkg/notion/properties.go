package notion

import "github.com/clipnote/clipnote/pkg/catalog"

// Property names of the video and channel databases. These are the only
// stringly-typed field names in the system; everything above this layer
// works with catalog records or flat field maps.
const (
	PropName         = "Name"
	PropVideoID      = "Video Id"
	PropDate         = "Date"
	PropChannel      = "Channel"
	PropChannelID    = "Channel Id"
	PropDuration     = "Duration"
	PropThumbnail    = "Thumbnail"
	PropURL          = "URL"
	PropCategoryID   = "Category Id"
	PropCategoryName = "Category Name"
)

// MaxTextLength is Notion's limit on a single rich text content value.
// Titles are truncated to it before any write.
const MaxTextLength = 2000

// TitleProp builds a title property.
func TitleProp(content string) Property {
	return Property{Title: []RichText{{Text: Text{Content: truncate(content)}}}}
}

// RichTextProp builds a rich_text property.
func RichTextProp(content string) Property {
	return Property{RichText: []RichText{{Text: Text{Content: truncate(content)}}}}
}

// DateProp builds a date property.
func DateProp(start string) Property {
	return Property{Date: &Date{Start: start}}
}

// URLProp builds a url property.
func URLProp(url string) Property {
	return Property{URL: &url}
}

// SelectProp builds a select property.
func SelectProp(name string) Property {
	return Property{Select: &Select{Name: name}}
}

// RelationProp builds a single-valued relation property.
func RelationProp(pageID string) Property {
	return Property{Relation: []Relation{{ID: pageID}}}
}

// VideoProperties maps a canonical video record to its full property bag.
// The owning channel relation is attached only when ownerRef is non-empty.
func VideoProperties(v catalog.Video, ownerRef string) map[string]Property {
	props := map[string]Property{
		PropName:       TitleProp(v.Title),
		PropVideoID:    RichTextProp(v.ID),
		PropDate:       DateProp(v.PublishedAt),
		PropDuration:   RichTextProp(v.Duration),
		PropURL:        URLProp(v.URL),
		PropCategoryID: SelectProp(v.CategoryID),
	}
	if v.ThumbnailURL != "" {
		props[PropThumbnail] = URLProp(v.ThumbnailURL)
	}
	if v.CategoryName != "" {
		props[PropCategoryName] = SelectProp(v.CategoryName)
	}
	if ownerRef != "" {
		props[PropChannel] = RelationProp(ownerRef)
	}
	return props
}

// ChannelProperties maps a canonical channel record to its property bag.
// The URL property is attached only when the channel has a custom URL.
func ChannelProperties(c catalog.Channel) map[string]Property {
	props := map[string]Property{
		PropName:      TitleProp(c.Name),
		PropChannelID: RichTextProp(c.ID),
	}
	if c.CustomURL != "" {
		props[PropURL] = URLProp(c.CustomURL)
	}
	return props
}

// VideoFieldMap flattens a canonical video record into the field map the
// diff gate compares. Optional fields that normalized to empty are omitted
// so they never overwrite stored values.
func VideoFieldMap(v catalog.Video) map[string]string {
	fields := map[string]string{
		PropName:       truncate(v.Title),
		PropDate:       v.PublishedAt,
		PropDuration:   v.Duration,
		PropURL:        v.URL,
		PropCategoryID: v.CategoryID,
	}
	if v.ThumbnailURL != "" {
		fields[PropThumbnail] = v.ThumbnailURL
	}
	if v.CategoryName != "" {
		fields[PropCategoryName] = v.CategoryName
	}
	return fields
}

// ChannelFieldMap flattens a canonical channel record into the field map the
// diff gate compares.
func ChannelFieldMap(c catalog.Channel) map[string]string {
	fields := map[string]string{
		PropName: truncate(c.Name),
	}
	if c.CustomURL != "" {
		fields[PropURL] = c.CustomURL
	}
	return fields
}

// VideoFields flattens a stored video page into a field map for comparison.
// Only properties present on the page appear in the map.
func VideoFields(p *Page) map[string]string {
	fields := make(map[string]string)
	for _, name := range []string{PropName, PropVideoID, PropDate, PropDuration, PropThumbnail, PropURL, PropCategoryID, PropCategoryName, PropChannel} {
		if value, ok := propertyValue(p, name); ok {
			fields[name] = value
		}
	}
	return fields
}

// ChannelFields flattens a stored channel page into a field map for
// comparison.
func ChannelFields(p *Page) map[string]string {
	fields := make(map[string]string)
	for _, name := range []string{PropName, PropChannelID, PropURL} {
		if value, ok := propertyValue(p, name); ok {
			fields[name] = value
		}
	}
	return fields
}

// propertyValue extracts a property's string value regardless of its type.
func propertyValue(p *Page, name string) (string, bool) {
	prop, ok := p.Properties[name]
	if !ok {
		return "", false
	}

	switch {
	case len(prop.Title) > 0:
		return textContent(prop.Title), true
	case len(prop.RichText) > 0:
		return textContent(prop.RichText), true
	case prop.Date != nil:
		return prop.Date.Start, true
	case prop.URL != nil:
		return *prop.URL, true
	case prop.Select != nil:
		return prop.Select.Name, true
	case len(prop.Relation) > 0:
		return prop.Relation[0].ID, true
	}
	return "", false
}

// textContent returns the first span's content, preferring the write-side
// text over the render-side plain_text.
func textContent(spans []RichText) string {
	if spans[0].Text.Content != "" {
		return spans[0].Text.Content
	}
	return spans[0].PlainText
}

// truncate caps text at Notion's maximum rich text length.
func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxTextLength {
		return s
	}
	return string(runes[:MaxTextLength])
}
