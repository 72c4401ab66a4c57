package lightbox

import (
	"github.com/skyframe/skyframe/internal/dom"
	"github.com/skyframe/skyframe/internal/media"
	"golang.org/x/net/html"
)

const (
	playerAllow   = "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture"
	openVideoText = "Open video in new tab"
)

func fullMedia(res media.Resolution) []*html.Node {
	rep := res.Representation
	switch rep.Kind {
	case media.Image:
		return []*html.Node{dom.Element("img", dom.Attr("src", rep.Src), dom.Attr("alt", rep.Alt))}
	case media.EmbeddedVideo:
		return []*html.Node{dom.Element("iframe",
			dom.Attr("src", media.EmbedURL(rep.VideoID)),
			dom.Attr("title", res.Title),
			dom.Attr("allow", playerAllow),
			dom.Attr("allowfullscreen", ""),
		)}
	case media.ThumbnailLink:
		nodes := []*html.Node{dom.Element("img", dom.Attr("src", rep.ThumbnailURL), dom.Attr("alt", rep.Alt))}
		if rep.TargetURL != "" {
			nodes = append(nodes, videoLink(rep.TargetURL))
		}
		return nodes
	case media.LinkOnly:
		return []*html.Node{videoLink(rep.TargetURL)}
	default:
		return nil
	}
}

func videoLink(target string) *html.Node {
	return dom.With(dom.Element("p"), dom.TextElement("a", openVideoText,
		dom.Attr("href", target),
		dom.Attr("target", "_blank"),
		dom.Attr("rel", "noopener noreferrer"),
	))
}
