package media

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	shortLinkHost = "youtu.be"
	fullHost      = "youtube.com"

	thumbnailURLTemplate = "https://img.youtube.com/vi/%s/hqdefault.jpg"
	embedURLPrefix       = "https://www.youtube.com/embed/"
)

// ExtractVideoID returns the YouTube video id carried by raw, or "" when raw
// is empty, unparsable, or points at any other host.
func ExtractVideoID(raw string) string {
	raw = clean(raw)
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}

	host := strings.ToLower(u.Hostname())
	switch {
	case host == shortLinkHost:
		id, _, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
		return id
	case strings.Contains(host, fullHost):
		return u.Query().Get("v")
	default:
		return ""
	}
}

// ThumbnailFor returns the high quality thumbnail URL for a YouTube link.
func ThumbnailFor(raw string) string {
	id := ExtractVideoID(raw)
	if id == "" {
		return ""
	}
	return thumbnailForID(id)
}

// EmbedURL returns the player URL for a video id.
func EmbedURL(id string) string {
	if id == "" {
		return ""
	}
	return embedURLPrefix + url.PathEscape(id)
}

func thumbnailForID(id string) string {
	return fmt.Sprintf(thumbnailURLTemplate, url.PathEscape(id))
}

func isWebURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}
