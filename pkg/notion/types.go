// Package notion provides a typed client for the subset of the Notion API
// that clipnote writes to: database queries and page create/update/get.
// All knowledge of Notion property names and shapes is confined here.
package notion

// Page is a Notion page as returned by query and get endpoints. The page ID
// is the store-assigned handle reused across runs; pages are never deleted
// by clipnote.
type Page struct {
	ID         string              `json:"id"`
	Properties map[string]Property `json:"properties"`
}

// Property is a single Notion property value. Exactly one of the typed
// members is set, matching the property's configured type.
type Property struct {
	Title    []RichText `json:"title,omitempty"`
	RichText []RichText `json:"rich_text,omitempty"`
	Date     *Date      `json:"date,omitempty"`
	URL      *string    `json:"url,omitempty"`
	Select   *Select    `json:"select,omitempty"`
	Relation []Relation `json:"relation,omitempty"`
}

// RichText is one span of a title or rich_text property.
type RichText struct {
	Text      Text   `json:"text"`
	PlainText string `json:"plain_text,omitempty"`
}

// Text is the content of a rich text span.
type Text struct {
	Content string `json:"content"`
}

// Date is a Notion date property value.
type Date struct {
	Start string `json:"start"`
}

// Select is a Notion select property value.
type Select struct {
	Name string `json:"name"`
}

// Relation is one entry of a relation property, pointing at another page.
type Relation struct {
	ID string `json:"id"`
}

// File is an external file reference used for page icons and covers.
type File struct {
	Type     string   `json:"type"`
	External External `json:"external"`
}

// External is the URL of an external file.
type External struct {
	URL string `json:"url"`
}

// Parent identifies the database a created page belongs to.
type Parent struct {
	DatabaseID string `json:"database_id"`
}

// PageCreate is the request body for creating a page in a database.
type PageCreate struct {
	Parent     Parent              `json:"parent"`
	Properties map[string]Property `json:"properties"`
	Icon       *File               `json:"icon,omitempty"`
	Cover      *File               `json:"cover,omitempty"`
}

// PagePatch is the request body for updating an existing page.
type PagePatch struct {
	Properties map[string]Property `json:"properties"`
	Cover      *File               `json:"cover,omitempty"`
}

// queryRequest is the request body for a database query.
type queryRequest struct {
	Filter *Filter `json:"filter,omitempty"`
}

// Filter is an exact-match database query filter. Exact match is required:
// a contains filter would match IDs that are prefixes of other IDs.
type Filter struct {
	Property string      `json:"property"`
	RichText *TextFilter `json:"rich_text,omitempty"`
}

// TextFilter matches rich_text property values.
type TextFilter struct {
	Equals string `json:"equals,omitempty"`
}

// queryResponse is the response body of a database query.
type queryResponse struct {
	Results []Page `json:"results"`
}

// ExternalFile builds an external file reference for icons and covers.
func ExternalFile(url string) *File {
	return &File{Type: "external", External: External{URL: url}}
}
