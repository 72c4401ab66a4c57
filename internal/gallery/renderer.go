// Package gallery renders feed items into the page's gallery container as
// activatable cards.
package gallery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/skyframe/skyframe/internal/dom"
	"github.com/skyframe/skyframe/internal/media"
	"golang.org/x/net/html"
)

const emptyMessage = "No media items available."

// Opener receives card activations. The lightbox controller implements it.
type Opener interface {
	Open(item media.Item)
}

// Renderer owns the gallery container. Nothing else writes to it.
type Renderer struct {
	container dom.Region
	resolver  media.Resolver
	opener    Opener
	linkFor   func(index int) string
	cards     []*Card
}

func NewRenderer(container dom.Region, resolver media.Resolver, opener Opener) *Renderer {
	return &Renderer{
		container: container,
		resolver:  resolver,
		opener:    opener,
	}
}

// SetLinkBuilder sets the URL cards navigate to when activated in a browser.
func (r *Renderer) SetLinkBuilder(fn func(index int) string) {
	r.linkFor = fn
}

// RenderPayload renders a raw feed payload. A payload that is not a list is
// logged and leaves the container as it was.
func (r *Renderer) RenderPayload(payload json.RawMessage) {
	items, err := DecodeItems(payload)
	if err != nil {
		slog.Warn("gallery: not rendering feed payload", "error", err)
		return
	}
	r.Render(items)
}

// Render replaces the container content with one card per renderable item,
// in input order.
func (r *Renderer) Render(items []media.Item) {
	if !r.container.Present() {
		slog.Warn("gallery: no gallery container on the page")
		return
	}

	r.cards = nil
	r.container.Clear()

	for i, item := range items {
		res := r.resolver.Resolve(item, media.CardView)
		if !res.Renderable() {
			slog.Debug("gallery: skipping item",
				"position", i,
				"media_type", item.MediaType,
				"error", ErrUnresolvableMedia,
			)
			continue
		}

		card := &Card{
			Index:      len(r.cards),
			Item:       item,
			Resolution: res,
			open:       r.open,
		}
		href := ""
		if r.linkFor != nil {
			href = r.linkFor(card.Index)
		}
		card.Node = buildCard(res, href)

		r.cards = append(r.cards, card)
		r.container.Append(card.Node)
	}

	if len(r.cards) == 0 {
		r.container.Replace(placeholder(dom.TextElement("p", emptyMessage)))
	}
}

// ShowError replaces the gallery with a single error placeholder.
func (r *Renderer) ShowError(message string) {
	r.cards = nil
	r.container.Replace(placeholder(dom.TextElement("p", message, dom.Attr("class", "error"))))
}

// Cards returns the cards of the last render pass.
func (r *Renderer) Cards() []*Card {
	return r.cards
}

// Card returns the card at index, counted after filtering.
func (r *Renderer) Card(index int) (*Card, bool) {
	if index < 0 || index >= len(r.cards) {
		return nil, false
	}
	return r.cards[index], true
}

func (r *Renderer) open(item media.Item) {
	if r.opener == nil {
		return
	}
	r.opener.Open(item)
}

// DecodeItems decodes a feed payload into items. JSON null is an empty
// list; any other non-array payload wraps ErrInputShape.
func DecodeItems(payload json.RawMessage) ([]media.Item, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: got %s", ErrInputShape, jsonKind(trimmed[0]))
	}

	var items []media.Item
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputShape, err)
	}
	return items, nil
}

func jsonKind(first byte) string {
	switch {
	case first == '{':
		return "object"
	case first == '"':
		return "string"
	case first == 't' || first == 'f':
		return "boolean"
	case first == '-' || (first >= '0' && first <= '9'):
		return "number"
	default:
		return "invalid JSON"
	}
}

func placeholder(children ...*html.Node) *html.Node {
	return dom.With(dom.Element("div", dom.Attr("class", "placeholder")), children...)
}
