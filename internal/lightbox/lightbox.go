// Package lightbox implements the page's single media overlay.
//
// The controller is a two-state machine. Closed is the initial state and
// the state after any close. Open(item) is entered only through Open,
// from either state; opening while open replaces the active item. Every
// transition clears the media region before writing to it, so no node of a
// previous item (in particular an embedded player) survives a transition.
package lightbox

import (
	"github.com/skyframe/skyframe/internal/dom"
	"github.com/skyframe/skyframe/internal/media"
	"golang.org/x/net/html"
)

// Element ids of the overlay on the page shell.
const (
	RootID        = "lightboxModal"
	BackgroundID  = "modalOverlay"
	MediaID       = "modalMedia"
	TitleID       = "modalTitle"
	DateID        = "modalDate"
	ExplanationID = "modalExplanation"
	CloseID       = "modalClose"

	openClass       = "is-open"
	scrollLockClass = "scroll-locked"
)

type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Overlay holds the regions the controller writes to. Any of them may be
// absent from the page; the matching part of the overlay then does nothing.
type Overlay struct {
	Root        dom.Region
	Background  dom.Region
	Media       dom.Region
	Title       dom.Region
	Date        dom.Region
	Explanation dom.Region
	Close       dom.Region
	Page        dom.Region
}

// OverlayFrom looks up the overlay anchors in doc.
func OverlayFrom(doc *dom.Document) Overlay {
	return Overlay{
		Root:        doc.Anchor(RootID),
		Background:  doc.Anchor(BackgroundID),
		Media:       doc.Anchor(MediaID),
		Title:       doc.Anchor(TitleID),
		Date:        doc.Anchor(DateID),
		Explanation: doc.Anchor(ExplanationID),
		Close:       doc.Anchor(CloseID),
		Page:        doc.Body(),
	}
}

type Controller struct {
	overlay  Overlay
	resolver media.Resolver
	state    State
	active   media.Item
	content  []*html.Node
}

// New returns a controller in the Closed state, with the overlay markup
// brought to match it.
func New(overlay Overlay, resolver media.Resolver) *Controller {
	c := &Controller{overlay: overlay, resolver: resolver}
	c.Close()
	return c
}

func (c *Controller) State() State {
	return c.state
}

// Active returns the item on display, if any.
func (c *Controller) Active() (media.Item, bool) {
	if c.state != Open {
		return media.Item{}, false
	}
	return c.active, true
}

// Open shows item, replacing whatever was on display.
func (c *Controller) Open(item media.Item) {
	c.clearMedia()

	res := c.resolver.Resolve(item, media.LightboxView)
	c.content = fullMedia(res)
	c.overlay.Media.Append(c.content...)

	c.overlay.Title.SetText(res.Title)
	c.overlay.Date.SetText(res.Date)
	c.overlay.Explanation.SetText(res.Explanation)

	c.overlay.Root.AddClass(openClass)
	c.overlay.Root.SetAttr("aria-hidden", "false")
	c.overlay.Page.AddClass(scrollLockClass)
	c.overlay.Close.Focus()

	c.active = item
	c.state = Open
}

// Close hides the overlay. Closing a closed overlay changes nothing.
func (c *Controller) Close() {
	c.clearMedia()
	c.overlay.Title.Clear()
	c.overlay.Date.Clear()
	c.overlay.Explanation.Clear()

	c.overlay.Root.RemoveClass(openClass)
	c.overlay.Root.SetAttr("aria-hidden", "true")
	c.overlay.Page.RemoveClass(scrollLockClass)
	c.overlay.Close.Blur()

	c.active = media.Item{}
	c.state = Closed
}

func (c *Controller) CloseClicked()      { c.Close() }
func (c *Controller) BackgroundClicked() { c.Close() }

// KeyDown closes the overlay on Escape and reports whether the key was
// handled.
func (c *Controller) KeyDown(key string) bool {
	if key != "Escape" {
		return false
	}
	c.Close()
	return true
}

func (c *Controller) clearMedia() {
	c.overlay.Media.Clear()
	c.content = nil
}
