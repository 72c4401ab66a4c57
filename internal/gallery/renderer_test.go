package gallery

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/skyframe/skyframe/internal/dom"
	"github.com/skyframe/skyframe/internal/feed"
	"github.com/skyframe/skyframe/internal/media"
)

const galleryPage = `<!DOCTYPE html><html><head></head><body>
<div id="gallery"><div class="placeholder"><p>Loading space photos…</p></div></div>
</body></html>`

type recordingOpener struct {
	opened []media.Item
}

func (o *recordingOpener) Open(item media.Item) {
	o.opened = append(o.opened, item)
}

func newTestRenderer(t *testing.T) (*Renderer, *dom.Document, *recordingOpener) {
	t.Helper()
	doc, err := dom.Parse(strings.NewReader(galleryPage))
	if err != nil {
		t.Fatalf("parse page: %v", err)
	}
	opener := &recordingOpener{}
	r := NewRenderer(doc.Anchor("gallery"), media.Resolver{}, opener)
	return r, doc, opener
}

func render(t *testing.T, doc *dom.Document) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	q, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	return q
}

func galleryHTML(t *testing.T, doc *dom.Document) string {
	t.Helper()
	html, err := render(t, doc).Find("#gallery").Html()
	if err != nil {
		t.Fatalf("gallery html: %v", err)
	}
	return html
}

func TestRender_SingleImage(t *testing.T) {
	r, doc, _ := newTestRenderer(t)

	r.RenderPayload(json.RawMessage(`[{"media_type":"image","url":"https://x/img.jpg","title":"M31","date":"2024-01-01"}]`))

	q := render(t, doc)
	cards := q.Find("#gallery .gallery-item")
	if cards.Length() != 1 {
		t.Fatalf("expected 1 card, got %d", cards.Length())
	}
	if src, _ := cards.Find("img").Attr("src"); src != "https://x/img.jpg" {
		t.Errorf("expected image src, got %q", src)
	}
	if got := cards.Find("h3").Text(); got != "M31" {
		t.Errorf("expected title M31, got %q", got)
	}
	if got := cards.Find("p.date").Text(); got != "Jan 1, 2024" {
		t.Errorf("expected localized date, got %q", got)
	}
	if q.Find("#gallery .placeholder").Length() != 0 {
		t.Error("expected loading placeholder replaced")
	}
}

func TestRender_YouTubeVideoCard(t *testing.T) {
	r, doc, opener := newTestRenderer(t)

	r.Render([]media.Item{{MediaType: "video", URL: "https://youtu.be/abc123", Title: "Launch"}})

	q := render(t, doc)
	card := q.Find("#gallery .gallery-item")
	if src, _ := card.Find("img").Attr("src"); src != "https://img.youtube.com/vi/abc123/hqdefault.jpg" {
		t.Errorf("expected derived thumbnail, got %q", src)
	}
	if badge := card.Find(".video-badge"); badge.Text() != "▶" {
		t.Errorf("expected play badge, got %q", badge.Text())
	}
	if card.Find("iframe").Length() != 0 {
		t.Error("cards must not embed players")
	}

	c, ok := r.Card(0)
	if !ok {
		t.Fatal("expected card 0")
	}
	c.Click()
	if len(opener.opened) != 1 || opener.opened[0].URL != "https://youtu.be/abc123" {
		t.Errorf("expected activation to open the video item, got %+v", opener.opened)
	}
}

func TestRender_VideoWithoutThumbnailShowsLink(t *testing.T) {
	r, doc, _ := newTestRenderer(t)

	r.Render([]media.Item{{MediaType: "video", URL: "https://apod.nasa.gov/v.mp4"}})

	link := render(t, doc).Find("#gallery .gallery-item a")
	if link.Text() != "Watch video" {
		t.Errorf("expected watch link, got %q", link.Text())
	}
	if href, _ := link.Attr("href"); href != "https://apod.nasa.gov/v.mp4" {
		t.Errorf("unexpected href %q", href)
	}
}

func TestRender_EmptyShowsSinglePlaceholder(t *testing.T) {
	r, doc, _ := newTestRenderer(t)

	r.RenderPayload(json.RawMessage(`[]`))

	gallery := render(t, doc).Find("#gallery")
	if gallery.Children().Length() != 1 {
		t.Fatalf("expected exactly one node, got %d", gallery.Children().Length())
	}
	if gallery.Find(".gallery-item").Length() != 0 {
		t.Error("expected zero cards")
	}
	if got := gallery.Find(".placeholder").Text(); got != "No media items available." {
		t.Errorf("unexpected placeholder text %q", got)
	}
}

func TestRender_NullPayloadIsEmpty(t *testing.T) {
	r, doc, _ := newTestRenderer(t)

	r.RenderPayload(json.RawMessage(`null`))

	if got := render(t, doc).Find("#gallery .placeholder").Text(); got != "No media items available." {
		t.Errorf("unexpected placeholder text %q", got)
	}
}

func TestRenderPayload_NonListLeavesContainerUntouched(t *testing.T) {
	payloads := []string{`{"media_type":"image"}`, `"text"`, `42`, `true`, `not json`}

	for _, payload := range payloads {
		t.Run(payload, func(t *testing.T) {
			r, doc, _ := newTestRenderer(t)
			r.Render([]media.Item{{MediaType: "image", URL: "https://x/keep.jpg", Title: "Keep"}})
			before := galleryHTML(t, doc)

			r.RenderPayload(json.RawMessage(payload))

			if after := galleryHTML(t, doc); after != before {
				t.Errorf("expected container unchanged\nbefore: %s\nafter:  %s", before, after)
			}
			if len(r.Cards()) != 1 {
				t.Errorf("expected previous cards kept, got %d", len(r.Cards()))
			}
		})
	}
}

func TestRender_FiltersAndPreservesOrder(t *testing.T) {
	r, doc, _ := newTestRenderer(t)
	items := []media.Item{
		{MediaType: "image", URL: "https://x/1.jpg", Title: "one"},
		{MediaType: "other", URL: "https://x/flash.swf", Title: "skip other"},
		{MediaType: "video", URL: "https://youtu.be/two", Title: "two"},
		{MediaType: "image", Title: "skip no url"},
		{MediaType: "video", ThumbnailURL: "https://x/t.jpg", Title: "three"},
		{Title: "skip no type"},
		{MediaType: "video", URL: "https://x/four.mp4", Title: "four"},
	}

	r.Render(items)

	var titles []string
	render(t, doc).Find("#gallery .gallery-item h3").Each(func(_ int, s *goquery.Selection) {
		titles = append(titles, s.Text())
	})
	want := []string{"one", "two", "three", "four"}
	if strings.Join(titles, ",") != strings.Join(want, ",") {
		t.Errorf("expected titles %v, got %v", want, titles)
	}
	for i, c := range r.Cards() {
		if c.Index != i {
			t.Errorf("card %d has index %d", i, c.Index)
		}
		if c.Resolution.Title != want[i] {
			t.Errorf("card %d has title %q", i, c.Resolution.Title)
		}
	}
}

func TestRender_ExcludesUnknownMediaTypes(t *testing.T) {
	types := []string{"image", "video", "other", "", "IMAGE", "audio"}
	var items []media.Item
	included := 0
	for i := 0; i < 30; i++ {
		mt := types[i%len(types)]
		items = append(items, media.Item{MediaType: mt, URL: fmt.Sprintf("https://x/%d", i)})
		if mt == "image" || mt == "video" {
			included++
		}
	}

	r, doc, _ := newTestRenderer(t)
	r.Render(items)

	if got := render(t, doc).Find("#gallery .gallery-item").Length(); got != included {
		t.Errorf("expected %d cards, got %d", included, got)
	}
}

func TestRender_ReplacesPreviousPass(t *testing.T) {
	r, doc, _ := newTestRenderer(t)

	r.Render([]media.Item{{MediaType: "image", URL: "https://x/a.jpg", Title: "A"}, {MediaType: "image", URL: "https://x/b.jpg", Title: "B"}})
	r.Render([]media.Item{{MediaType: "image", URL: "https://x/c.jpg", Title: "C"}})

	q := render(t, doc)
	if q.Find("#gallery .gallery-item").Length() != 1 {
		t.Errorf("expected 1 card after second pass, got %d", q.Find("#gallery .gallery-item").Length())
	}
	if q.Find("#gallery h3").Text() != "C" {
		t.Errorf("expected only card C, got %q", q.Find("#gallery h3").Text())
	}
	if len(r.Cards()) != 1 {
		t.Errorf("expected 1 card, got %d", len(r.Cards()))
	}
}

func TestCard_KeyboardAndPointerActivationAreEquivalent(t *testing.T) {
	item := media.Item{MediaType: "image", URL: "https://x/a.jpg", Title: "A"}

	r, _, opener := newTestRenderer(t)
	r.Render([]media.Item{item})
	card, _ := r.Card(0)

	card.Click()
	if !card.KeyDown("Enter") {
		t.Error("expected Enter handled")
	}
	if !card.KeyDown(" ") {
		t.Error("expected Space handled")
	}
	for _, key := range []string{"Escape", "Tab", "a"} {
		if card.KeyDown(key) {
			t.Errorf("key %q should not activate the card", key)
		}
	}

	if len(opener.opened) != 3 {
		t.Fatalf("expected 3 activations, got %d", len(opener.opened))
	}
	for i, got := range opener.opened {
		if got != item {
			t.Errorf("activation %d opened %+v", i, got)
		}
	}
}

func TestCard_Accessibility(t *testing.T) {
	r, doc, _ := newTestRenderer(t)
	r.SetLinkBuilder(func(i int) string { return fmt.Sprintf("/gallery?open=%d", i) })

	r.Render([]media.Item{
		{MediaType: "image", URL: "https://x/a.jpg", Title: "A"},
		{MediaType: "image", URL: "https://x/b.jpg"},
	})

	cards := render(t, doc).Find("#gallery .gallery-item")
	cards.Each(func(i int, s *goquery.Selection) {
		if tab, _ := s.Attr("tabindex"); tab != "0" {
			t.Errorf("card %d: expected tabindex 0, got %q", i, tab)
		}
		if role, _ := s.Attr("role"); role != "button" {
			t.Errorf("card %d: expected role button, got %q", i, role)
		}
		if href, _ := s.Attr("data-open"); href != fmt.Sprintf("/gallery?open=%d", i) {
			t.Errorf("card %d: unexpected data-open %q", i, href)
		}
	})
	if label, _ := cards.Eq(1).Attr("aria-label"); label != "Open Untitled" {
		t.Errorf("unexpected aria-label %q", label)
	}
	if alt, _ := cards.Eq(1).Find("img").Attr("alt"); alt != "Space image" {
		t.Errorf("unexpected alt %q", alt)
	}
}

func TestRender_EscapesUntrustedText(t *testing.T) {
	r, doc, _ := newTestRenderer(t)

	r.Render([]media.Item{{MediaType: "image", URL: "https://x/a.jpg", Title: `<script>alert(1)</script>`}})

	q := render(t, doc)
	if q.Find("#gallery script").Length() != 0 {
		t.Error("title must not be parsed as markup")
	}
	if q.Find("#gallery h3").Text() != `<script>alert(1)</script>` {
		t.Errorf("unexpected title text %q", q.Find("#gallery h3").Text())
	}
}

func TestShowError_ReplacesContent(t *testing.T) {
	r, doc, _ := newTestRenderer(t)
	r.Render([]media.Item{{MediaType: "image", URL: "https://x/a.jpg"}})

	r.ShowError("Error loading data: Network response was not ok: 500")

	gallery := render(t, doc).Find("#gallery")
	if gallery.Find(".gallery-item").Length() != 0 {
		t.Error("expected no stale cards next to the error")
	}
	if got := gallery.Find(".placeholder p.error").Text(); got != "Error loading data: Network response was not ok: 500" {
		t.Errorf("unexpected error text %q", got)
	}
	if len(r.Cards()) != 0 {
		t.Error("expected cards dropped")
	}
}

func TestMissingContainerIsNoop(t *testing.T) {
	doc, err := dom.Parse(strings.NewReader(`<html><body><p>no gallery</p></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	r := NewRenderer(doc.Anchor("gallery"), media.Resolver{}, nil)

	r.Render([]media.Item{{MediaType: "image", URL: "https://x/a.jpg"}})
	r.ShowError("boom")

	if len(r.Cards()) != 0 {
		t.Error("expected no cards without a container")
	}
	if !strings.Contains(render(t, doc).Text(), "no gallery") {
		t.Error("expected page untouched")
	}
}

func TestDecodeItems(t *testing.T) {
	items, err := DecodeItems(json.RawMessage(` [{"media_type":"image"}] `))
	if err != nil || len(items) != 1 {
		t.Fatalf("expected one item, got %v, %v", items, err)
	}

	_, err = DecodeItems(json.RawMessage(`{"a":1}`))
	if !errors.Is(err, ErrInputShape) {
		t.Fatalf("expected ErrInputShape, got %v", err)
	}
	if !strings.Contains(err.Error(), "object") {
		t.Errorf("expected error to name the JSON kind, got %v", err)
	}

	if _, err := DecodeItems(json.RawMessage(`[1,`)); !errors.Is(err, ErrInputShape) {
		t.Errorf("expected ErrInputShape for truncated list, got %v", err)
	}
}

func TestMessageFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"status", &feed.NetworkError{StatusCode: 404}, "Error loading data: Network response was not ok: 404"},
		{"wrapped status", fmt.Errorf("load: %w", &feed.NetworkError{StatusCode: 503}), "Error loading data: Network response was not ok: 503"},
		{"transport", &feed.NetworkError{Err: errors.New("dial tcp: refused")}, "Error loading data: could not reach the media feed"},
		{"parse", &feed.ParseError{Err: errors.New("bad")}, "Error loading data: the media feed returned malformed data"},
		{"shape", fmt.Errorf("%w: got object", ErrInputShape), "Error loading data: the media feed returned an unexpected format"},
		{"other", errors.New("boom"), "Error loading data: something went wrong"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MessageFor(tt.err); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
