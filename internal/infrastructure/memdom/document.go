package memdom

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/bnema/chatdeck/internal/domain/autostyle"
)

// StyleMarker is the attribute carried by every style element memdom injects.
const StyleMarker = "data-chatdeck-autostyle"

// Document is a parsed document.
type Document struct {
	win  *Window
	node *html.Node
}

func (w *Window) newDocument(root *html.Node) *Document {
	d := &Document{win: w, node: root}
	w.attachShadowRoots(root)
	return d
}

func (d *Document) Key() string {
	return "doc:" + strconv.Itoa(d.win.nodeID(d.node))
}

// Root returns the document element.
func (d *Document) Root() autostyle.Element {
	n := d.rootNode()
	if n == nil {
		return nil
	}
	return d.win.element(n)
}

func (d *Document) rootNode() *html.Node {
	for c := d.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

func (d *Document) QuerySelectorAll(selector string) ([]autostyle.Element, error) {
	return d.win.queryAll(d.node, selector)
}

// Query returns the concrete elements matching selector.
func (d *Document) Query(selector string) ([]*Element, error) {
	return d.win.queryConcrete(d.node, selector)
}

// Nonce returns the nonce of the first script carrying one.
func (d *Document) Nonce() string {
	sel, err := cascadia.Compile("script[nonce]")
	if err != nil {
		return ""
	}
	if n := cascadia.Query(d.node, sel); n != nil {
		return attr(n, "nonce")
	}
	return ""
}

// InsertStyle appends a style element to <head>, or to the root element
// when the document has no head.
func (d *Document) InsertStyle(text, nonce string) (autostyle.StyleElement, error) {
	parent := d.rootNode()
	if parent == nil {
		return nil, fmt.Errorf("memdom: document has no root element")
	}
	if head := findChild(parent, atom.Head); head != nil {
		parent = head
	}
	return d.win.insertStyle(parent, text, nonce), nil
}

func (d *Document) Frames() []autostyle.Frame {
	sel, err := cascadia.Compile("iframe")
	if err != nil {
		return nil
	}
	nodes := cascadia.QueryAll(d.node, sel)
	out := make([]autostyle.Frame, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, &Frame{win: d.win, node: n})
	}
	return out
}

// Render serializes the document with declarative shadow roots restored.
func (d *Document) Render(out io.Writer) error {
	var restored []*shadowRoot
	for host, sr := range d.win.shadows {
		if rootOf(host) != d.node {
			continue
		}
		host.InsertBefore(sr.container, host.FirstChild)
		restored = append(restored, sr)
	}
	defer func() {
		for _, sr := range restored {
			sr.host.RemoveChild(sr.container)
		}
	}()
	if err := html.Render(out, d.node); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// Frame is an <iframe> element.
type Frame struct {
	win  *Window
	node *html.Node
}

// ContentDocument returns the frame document. srcdoc frames and frames
// pointing at the window's origin are same-origin; anything else fails
// with ErrCrossOrigin.
func (f *Frame) ContentDocument() (autostyle.Document, error) {
	if doc, ok := f.win.frames[f.node]; ok {
		return doc, nil
	}

	var src string
	switch {
	case hasAttr(f.node, "srcdoc"):
		src = attr(f.node, "srcdoc")
	case f.win.sameOrigin(attr(f.node, "src")):
		src = ""
	default:
		return nil, fmt.Errorf("%w: %s", ErrCrossOrigin, attr(f.node, "src"))
	}

	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse frame document: %w", err)
	}
	doc := f.win.newDocument(root)
	f.win.frames[f.node] = doc
	return doc, nil
}

// shadowRoot is a declarative shadow root detached from its host template.
type shadowRoot struct {
	win       *Window
	host      *html.Node
	container *html.Node
	open      bool
}

func (s *shadowRoot) Key() string {
	return "shadow:" + strconv.Itoa(s.win.nodeID(s.container))
}

func (s *shadowRoot) QuerySelectorAll(selector string) ([]autostyle.Element, error) {
	return s.win.queryAll(s.container, selector)
}

func (s *shadowRoot) InsertStyle(text, nonce string) (autostyle.StyleElement, error) {
	return s.win.insertStyle(s.container, text, nonce), nil
}

func (s *shadowRoot) Children() []autostyle.Element {
	return s.win.elementChildren(s.container)
}

// attachShadowRoots detaches every <template shadowrootmode> under root and
// records it as its parent's shadow root.
func (w *Window) attachShadowRoots(root *html.Node) {
	var templates []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == atom.Template && hasAttr(c, "shadowrootmode") {
				templates = append(templates, c)
			}
			walk(c)
		}
	}
	walk(root)

	for _, t := range templates {
		host := t.Parent
		if host == nil || host.Type != html.ElementNode {
			continue
		}
		if _, exists := w.shadows[host]; exists {
			continue
		}
		host.RemoveChild(t)
		w.shadows[host] = &shadowRoot{
			win:       w,
			host:      host,
			container: t,
			open:      strings.EqualFold(attr(t, "shadowrootmode"), "open"),
		}
	}
}

func (w *Window) queryAll(root *html.Node, selector string) ([]autostyle.Element, error) {
	nodes, err := w.queryConcrete(root, selector)
	if err != nil {
		return nil, err
	}
	out := make([]autostyle.Element, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out, nil
}

func (w *Window) queryConcrete(root *html.Node, selector string) ([]*Element, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	nodes := cascadia.QueryAll(root, sel)
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			out = append(out, w.element(n))
		}
	}
	return out, nil
}

func (w *Window) insertStyle(parent *html.Node, text, nonce string) *StyleElement {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     "style",
		DataAtom: atom.Style,
		Attr:     []html.Attribute{{Key: StyleMarker}},
	}
	if nonce != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "nonce", Val: nonce})
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	parent.AppendChild(n)
	w.queueMutation(parent, autostyle.Mutation{Type: autostyle.MutationChildList, AddedNodes: 1})
	return &StyleElement{win: w, node: n}
}

func findChild(n *html.Node, a atom.Atom) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			return c
		}
	}
	return nil
}

func rootOf(n *html.Node) *html.Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}
