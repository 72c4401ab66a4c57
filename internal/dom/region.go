package dom

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// Region is one anchor element of the page.
type Region interface {
	Present() bool
	Node() *html.Node
	Clear()
	Append(nodes ...*html.Node)
	Replace(nodes ...*html.Node)
	SetText(text string)
	SetAttr(key, value string)
	AddClass(name string)
	RemoveClass(name string)
	Focus()
	Blur()
}

type element struct {
	doc  *Document
	node *html.Node
}

func (e *element) Present() bool    { return true }
func (e *element) Node() *html.Node { return e.node }

func (e *element) Clear() {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		if c == e.doc.focused || contains(c, e.doc.focused) {
			e.doc.focused = nil
		}
		e.node.RemoveChild(c)
		c = next
	}
}

func (e *element) Append(nodes ...*html.Node) {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		e.node.AppendChild(n)
	}
}

func (e *element) Replace(nodes ...*html.Node) {
	e.Clear()
	e.Append(nodes...)
}

func (e *element) SetText(text string) {
	e.Clear()
	if text != "" {
		e.node.AppendChild(Text(text))
	}
}

func (e *element) SetAttr(key, value string) {
	setAttr(e.node, key, value)
}

func (e *element) AddClass(name string) {
	classes := strings.Fields(attr(e.node, "class"))
	if slices.Contains(classes, name) {
		return
	}
	setAttr(e.node, "class", strings.Join(append(classes, name), " "))
}

func (e *element) RemoveClass(name string) {
	classes := slices.DeleteFunc(strings.Fields(attr(e.node, "class")), func(c string) bool {
		return c == name
	})
	if len(classes) == 0 {
		removeAttr(e.node, "class")
		return
	}
	setAttr(e.node, "class", strings.Join(classes, " "))
}

func (e *element) Focus() { e.doc.focus(e.node) }
func (e *element) Blur()  { e.doc.blur(e.node) }

// absent stands in for an anchor the page does not have.
type absent struct{}

func (absent) Present() bool          { return false }
func (absent) Node() *html.Node       { return nil }
func (absent) Clear()                 {}
func (absent) Append(...*html.Node)   {}
func (absent) Replace(...*html.Node)  {}
func (absent) SetText(string)         {}
func (absent) SetAttr(string, string) {}
func (absent) AddClass(string)        {}
func (absent) RemoveClass(string)     {}
func (absent) Focus()                 {}
func (absent) Blur()                  {}

func contains(root, n *html.Node) bool {
	if n == nil {
		return false
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if p == root {
			return true
		}
	}
	return false
}
