// Package site serves the gallery page. Each request builds its own
// document, gallery renderer and lightbox, fed by one fetch of the feed.
package site

import (
	"log"
	"net/http"
	"strconv"

	"github.com/skyframe/skyframe/internal/dom"
	"github.com/skyframe/skyframe/internal/facts"
	"github.com/skyframe/skyframe/internal/feed"
	"github.com/skyframe/skyframe/internal/gallery"
	"github.com/skyframe/skyframe/internal/httputil"
	"github.com/skyframe/skyframe/internal/lightbox"
	"github.com/skyframe/skyframe/internal/media"
)

const (
	GalleryPath  = "/gallery"
	openParam    = "open"
	factID       = "didYouKnowText"
	defaultTitle = "NASA Space Explorer"
)

type Handler struct {
	source   feed.Source
	resolver media.Resolver
	facts    facts.Picker
	title    string
}

func NewHandler(source feed.Source, resolver media.Resolver) *Handler {
	return &Handler{
		source:   source,
		resolver: resolver,
		title:    defaultTitle,
	}
}

func (h *Handler) SetFactPicker(p facts.Picker) {
	h.facts = p
}

func (h *Handler) SetTitle(title string) {
	if title != "" {
		h.title = title
	}
}

// Home serves the page before anything has been fetched.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	doc, err := h.document(r, false)
	if err != nil {
		log.Printf("failed to build home page: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	lightbox.New(lightbox.OverlayFrom(doc), h.resolver)
	writeDocument(w, http.StatusOK, doc)
}

// Gallery fetches the feed and renders it. With ?open=n the n-th card is
// activated, which opens the lightbox on that item.
func (h *Handler) Gallery(w http.ResponseWriter, r *http.Request) {
	doc, err := h.document(r, true)
	if err != nil {
		log.Printf("failed to build gallery page: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	box := lightbox.New(lightbox.OverlayFrom(doc), h.resolver)
	renderer := gallery.NewRenderer(doc.Anchor("gallery"), h.resolver, box)
	renderer.SetLinkBuilder(openURL)

	payload, err := h.source.FetchItems(r.Context())
	if err != nil {
		renderer.ShowError(gallery.MessageFor(err))
		writeDocument(w, http.StatusBadGateway, doc)
		return
	}

	renderer.RenderPayload(payload)

	if index, ok := openIndex(r); ok {
		if card, found := renderer.Card(index); found {
			card.Click()
		}
	}

	writeDocument(w, http.StatusOK, doc)
}

type itemResponse struct {
	Index        int    `json:"index"`
	Kind         string `json:"kind"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	Explanation  string `json:"explanation"`
	Src          string `json:"src,omitempty"`
	Alt          string `json:"alt,omitempty"`
	VideoID      string `json:"videoId,omitempty"`
	EmbedURL     string `json:"embedUrl,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	TargetURL    string `json:"targetUrl,omitempty"`
	OpenURL      string `json:"openUrl"`
}

// Items returns the renderable items of the feed with their lightbox
// representation.
func (h *Handler) Items(w http.ResponseWriter, r *http.Request) {
	payload, err := h.source.FetchItems(r.Context())
	if err != nil {
		httputil.WriteError(w, http.StatusBadGateway, gallery.MessageFor(err))
		return
	}

	items, err := gallery.DecodeItems(payload)
	if err != nil {
		httputil.WriteError(w, http.StatusBadGateway, gallery.MessageFor(err))
		return
	}

	resp := make([]itemResponse, 0, len(items))
	for _, item := range items {
		if !h.resolver.Resolve(item, media.CardView).Renderable() {
			continue
		}
		res := h.resolver.Resolve(item, media.LightboxView)
		index := len(resp)
		resp = append(resp, itemResponse{
			Index:        index,
			Kind:         res.Kind.String(),
			Title:        res.Title,
			Date:         res.Date,
			Explanation:  res.Explanation,
			Src:          res.Src,
			Alt:          res.Alt,
			VideoID:      res.VideoID,
			EmbedURL:     media.EmbedURL(res.VideoID),
			ThumbnailURL: res.ThumbnailURL,
			TargetURL:    res.TargetURL,
			OpenURL:      openURL(index),
		})
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) document(r *http.Request, loading bool) (*dom.Document, error) {
	doc, err := newDocument(pageData{
		Title:      h.title,
		Nonce:      httputil.NonceFromContext(r.Context()),
		Loading:    loading,
		GalleryURL: GalleryPath,
	})
	if err != nil {
		return nil, err
	}
	doc.Anchor(factID).SetText(h.facts.Random())
	return doc, nil
}

func writeDocument(w http.ResponseWriter, status int, doc *dom.Document) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := doc.Render(w); err != nil {
		log.Printf("failed to render page: %v", err)
	}
}

func openURL(index int) string {
	return GalleryPath + "?" + openParam + "=" + strconv.Itoa(index)
}

func openIndex(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get(openParam)
	if raw == "" {
		return 0, false
	}
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}
