package media

import (
	"encoding/json"
	"strings"
)

const (
	TypeImage = "image"
	TypeVideo = "video"
)

// Item is one record of the APOD feed. Every field is optional and
// untrusted; absent fields are empty strings.
type Item struct {
	MediaType    string `json:"media_type"`
	URL          string `json:"url"`
	HDURL        string `json:"hdurl"`
	ThumbnailURL string `json:"thumbnail_url"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	Explanation  string `json:"explanation"`
}

// UnmarshalJSON reads only string-valued fields. A field of any other JSON
// type is treated as absent, and a record that is not an object decodes to
// the zero Item instead of failing the surrounding feed.
func (it *Item) UnmarshalJSON(data []byte) error {
	*it = Item{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}

	it.MediaType = stringField(fields, "media_type")
	it.URL = stringField(fields, "url")
	it.HDURL = stringField(fields, "hdurl")
	it.ThumbnailURL = stringField(fields, "thumbnail_url")
	it.Title = stringField(fields, "title")
	it.Date = stringField(fields, "date")
	it.Explanation = stringField(fields, "explanation")
	return nil
}

func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func clean(s string) string {
	return strings.TrimSpace(s)
}
