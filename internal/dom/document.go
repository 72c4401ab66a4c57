// Package dom wraps an x/net/html tree as the page the gallery and lightbox
// write into. Features reach the tree only through Regions looked up by id;
// an id that is missing from the page yields a Region that ignores writes.
package dom

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

type Document struct {
	root    *html.Node
	focused *html.Node
}

func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &Document{root: root}, nil
}

// Anchor returns the element with the given id, or a no-op Region.
func (d *Document) Anchor(id string) Region {
	return d.region(goquery.NewDocumentFromNode(d.root).Find("#" + id))
}

// Body returns the <body> element.
func (d *Document) Body() Region {
	return d.region(goquery.NewDocumentFromNode(d.root).Find("body"))
}

func (d *Document) region(sel *goquery.Selection) Region {
	if sel.Length() == 0 {
		return absent{}
	}
	return &element{doc: d, node: sel.Get(0)}
}

func (d *Document) Root() *html.Node {
	return d.root
}

func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func (d *Document) focus(n *html.Node) {
	if d.focused != nil && d.focused != n {
		removeAttr(d.focused, "autofocus")
	}
	setAttr(n, "autofocus", "")
	d.focused = n
}

func (d *Document) blur(n *html.Node) {
	if d.focused != n {
		return
	}
	removeAttr(n, "autofocus")
	d.focused = nil
}
