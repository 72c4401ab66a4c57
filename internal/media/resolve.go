package media

import "time"

// Kind tags a Representation.
type Kind int

const (
	Unrenderable Kind = iota
	Image
	EmbeddedVideo
	ThumbnailLink
	LinkOnly
)

func (k Kind) String() string {
	switch k {
	case Image:
		return "image"
	case EmbeddedVideo:
		return "embedded_video"
	case ThumbnailLink:
		return "thumbnail_link"
	case LinkOnly:
		return "link_only"
	default:
		return "unrenderable"
	}
}

// View selects which surface a resolution is for. The card is a
// lightweight preview; the lightbox is the full-fidelity view.
type View int

const (
	CardView View = iota
	LightboxView
)

const (
	DefaultDateLayout = "Jan 2, 2006"

	DefaultTitle    = "Untitled"
	UnknownDate     = "Unknown date"
	defaultImageAlt = "Space image"
	defaultThumbAlt = "Video thumbnail"
	feedDateLayout  = "2006-01-02"
)

// Representation describes how one item is rendered. Only the fields the
// Kind needs are set.
type Representation struct {
	Kind         Kind
	Src          string
	Alt          string
	VideoID      string
	ThumbnailURL string
	TargetURL    string
}

// Resolution is a Representation plus the text shown next to it.
type Resolution struct {
	Representation
	Title       string
	Date        string
	Explanation string
}

// Renderable reports whether the item produced anything to show.
func (r Resolution) Renderable() bool {
	return r.Kind != Unrenderable
}

// Resolver decides the representation of items. The zero value formats
// dates with DefaultDateLayout.
type Resolver struct {
	DateLayout string
}

// Resolve uses the zero Resolver.
func Resolve(item Item, view View) Resolution {
	return Resolver{}.Resolve(item, view)
}

func (r Resolver) Resolve(item Item, view View) Resolution {
	title := clean(item.Title)
	return Resolution{
		Representation: represent(item, title, view),
		Title:          orDefault(title, DefaultTitle),
		Date:           r.formatDate(item.Date),
		Explanation:    item.Explanation,
	}
}

func represent(item Item, title string, view View) Representation {
	url, hdURL := clean(item.URL), clean(item.HDURL)

	switch item.MediaType {
	case TypeImage:
		src := firstNonEmpty(hdURL, url)
		if view == CardView {
			src = firstNonEmpty(url, hdURL)
		}
		if src == "" {
			return Representation{Kind: Unrenderable}
		}
		return Representation{Kind: Image, Src: src, Alt: orDefault(title, defaultImageAlt)}

	case TypeVideo:
		target := ""
		if isWebURL(url) {
			target = url
		}
		if id := ExtractVideoID(url); id != "" {
			return Representation{
				Kind:         EmbeddedVideo,
				VideoID:      id,
				ThumbnailURL: thumbnailForID(id),
				TargetURL:    target,
				Alt:          orDefault(title, defaultThumbAlt),
			}
		}
		if thumb := firstNonEmpty(clean(item.ThumbnailURL), ThumbnailFor(url)); thumb != "" {
			return Representation{
				Kind:         ThumbnailLink,
				ThumbnailURL: thumb,
				TargetURL:    target,
				Alt:          orDefault(title, defaultThumbAlt),
			}
		}
		if target != "" {
			return Representation{Kind: LinkOnly, TargetURL: target}
		}
	}

	return Representation{Kind: Unrenderable}
}

func (r Resolver) formatDate(raw string) string {
	raw = clean(raw)
	if raw == "" {
		return UnknownDate
	}

	layout := r.DateLayout
	if layout == "" {
		layout = DefaultDateLayout
	}

	if t, err := time.Parse(feedDateLayout, raw); err == nil {
		return t.Format(layout)
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Format(layout)
	}
	return raw
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
