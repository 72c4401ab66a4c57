package gallery

import (
	"github.com/skyframe/skyframe/internal/dom"
	"github.com/skyframe/skyframe/internal/media"
	"golang.org/x/net/html"
)

const (
	playBadge     = "▶"
	watchLinkText = "Watch video"
)

// Card is one rendered gallery entry bound to its open action.
type Card struct {
	Index      int
	Item       media.Item
	Resolution media.Resolution
	Node       *html.Node

	open func(media.Item)
}

// Click is pointer activation.
func (c *Card) Click() {
	c.open(c.Item)
}

// KeyDown activates the card on Enter or Space, exactly like Click, and
// reports whether the key was handled.
func (c *Card) KeyDown(key string) bool {
	if key != "Enter" && key != " " {
		return false
	}
	c.open(c.Item)
	return true
}

func buildCard(res media.Resolution, href string) *html.Node {
	attrs := []html.Attribute{
		dom.Attr("class", "gallery-item"),
		dom.Attr("tabindex", "0"),
		dom.Attr("role", "button"),
		dom.Attr("aria-label", "Open "+res.Title),
	}
	if href != "" {
		attrs = append(attrs, dom.Attr("data-open", href))
	}

	card := dom.Element("div", attrs...)
	dom.With(card, cardMedia(res.Representation)...)
	return dom.With(card,
		dom.TextElement("h3", res.Title),
		dom.TextElement("p", res.Date, dom.Attr("class", "date")),
	)
}

func cardMedia(rep media.Representation) []*html.Node {
	switch rep.Kind {
	case media.Image:
		return []*html.Node{image(rep.Src, rep.Alt)}
	case media.EmbeddedVideo, media.ThumbnailLink:
		return []*html.Node{
			image(rep.ThumbnailURL, rep.Alt),
			dom.TextElement("div", playBadge, dom.Attr("class", "video-badge"), dom.Attr("aria-hidden", "true")),
		}
	case media.LinkOnly:
		return []*html.Node{dom.TextElement("a", watchLinkText,
			dom.Attr("href", rep.TargetURL),
			dom.Attr("target", "_blank"),
			dom.Attr("rel", "noopener noreferrer"),
		)}
	default:
		return nil
	}
}

func image(src, alt string) *html.Node {
	return dom.Element("img",
		dom.Attr("src", src),
		dom.Attr("alt", alt),
		dom.Attr("loading", "lazy"),
	)
}
