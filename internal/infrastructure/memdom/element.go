package memdom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/bnema/chatdeck/internal/domain/autostyle"
)

// ErrDetached is returned when operating on a node no longer in a tree.
var ErrDetached = errors.New("memdom: node is detached")

// Element wraps an element node.
type Element struct {
	win  *Window
	node *html.Node
}

func (w *Window) element(n *html.Node) *Element {
	return &Element{win: w, node: n}
}

func (w *Window) elementChildren(n *html.Node) []autostyle.Element {
	var out []autostyle.Element
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, w.element(c))
		}
	}
	return out
}

// Node returns the underlying html node.
func (e *Element) Node() *html.Node { return e.node }

func (e *Element) Key() string { return "n" + strconv.Itoa(e.win.nodeID(e.node)) }

func (e *Element) TagName() string { return strings.ToLower(e.node.Data) }

func (e *Element) ID() string { return attr(e.node, "id") }

// Attr returns the named attribute value.
func (e *Element) Attr(name string) string { return attr(e.node, name) }

func (e *Element) Parent() autostyle.Element {
	p := e.node.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	// Shadow root containers are not elements of the tree.
	for _, sr := range e.win.shadows {
		if sr.container == p {
			return nil
		}
	}
	return e.win.element(p)
}

func (e *Element) Children() []autostyle.Element {
	return e.win.elementChildren(e.node)
}

// Rect reads data-rect="x,y,w,h"; elements without one have an empty box.
func (e *Element) Rect() autostyle.Rect {
	vals, ok := parseFloats(attr(e.node, "data-rect"), 4)
	if !ok {
		return autostyle.Rect{}
	}
	return autostyle.Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}
}

func (e *Element) ComputedStyle(props ...string) (map[string]string, error) {
	computed := computeStyle(parseStyle(attr(e.node, "style")))
	out := make(map[string]string, len(props))
	for _, p := range props {
		out[p] = computed[p]
	}
	return out, nil
}

func (e *Element) InlineStyle(prop string) (string, string) {
	for _, d := range parseStyle(attr(e.node, "style")) {
		if d.prop == prop {
			return d.value, d.priority
		}
	}
	return "", ""
}

// SetStyleProperty behaves like CSSStyleDeclaration.setProperty.
func (e *Element) SetStyleProperty(prop, value, priority string) error {
	decls := parseStyle(attr(e.node, "style"))
	found := false
	for i := range decls {
		if decls[i].prop == prop {
			decls[i].value, decls[i].priority = value, priority
			found = true
		}
	}
	if !found {
		decls = append(decls, declaration{prop: prop, value: value, priority: priority})
	}
	e.SetAttribute("style", serializeStyle(decls))
	return nil
}

func (e *Element) ShadowRoot() autostyle.ShadowRoot {
	sr, ok := e.win.shadows[e.node]
	if !ok || !sr.open {
		return nil
	}
	return sr
}

// SetAttribute sets an attribute and queues an attribute mutation when the
// value changed.
func (e *Element) SetAttribute(name, value string) {
	if setAttr(e.node, name, value) {
		e.win.queueMutation(e.node, autostyle.Mutation{Type: autostyle.MutationAttributes, AttributeName: name})
	}
}

// AppendHTML parses fragment in the context of e and appends the result.
func (e *Element) AppendHTML(fragment string) ([]*Element, error) {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), e.node)
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}
	holder := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		holder.AppendChild(n)
	}
	e.win.attachShadowRoots(holder)

	var added []*Element
	count := 0
	for c := holder.FirstChild; c != nil; c = holder.FirstChild {
		holder.RemoveChild(c)
		e.node.AppendChild(c)
		count++
		if c.Type == html.ElementNode {
			added = append(added, e.win.element(c))
		}
	}
	if count > 0 {
		e.win.queueMutation(e.node, autostyle.Mutation{Type: autostyle.MutationChildList, AddedNodes: count})
	}
	return added, nil
}

// Remove detaches the element from its parent.
func (e *Element) Remove() error {
	p := e.node.Parent
	if p == nil {
		return ErrDetached
	}
	p.RemoveChild(e.node)
	e.win.queueMutation(p, autostyle.Mutation{Type: autostyle.MutationChildList})
	return nil
}

// TextContent concatenates the text of all descendants.
func (e *Element) TextContent() string {
	return textContent(e.node)
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// StyleElement is a style element injected through InsertStyle.
type StyleElement struct {
	win  *Window
	node *html.Node
}

// Text returns the stylesheet text.
func (s *StyleElement) Text() string { return textContent(s.node) }

// Nonce returns the nonce attribute.
func (s *StyleElement) Nonce() string { return attr(s.node, "nonce") }

func (s *StyleElement) SetText(text string) error {
	if textContent(s.node) == text {
		return nil
	}
	for c := s.node.FirstChild; c != nil; c = s.node.FirstChild {
		s.node.RemoveChild(c)
	}
	s.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	s.win.queueMutation(s.node, autostyle.Mutation{Type: autostyle.MutationChildList, AddedNodes: 1})
	return nil
}

func (s *StyleElement) Remove() error {
	s.win.styleRemovals++
	p := s.node.Parent
	if p == nil {
		return ErrDetached
	}
	p.RemoveChild(s.node)
	s.win.queueMutation(p, autostyle.Mutation{Type: autostyle.MutationChildList})
	return nil
}

// Connected reports whether the element is still attached to a document or
// a shadow root.
func (s *StyleElement) Connected() bool {
	root := rootOf(s.node)
	if root == s.node {
		return false
	}
	if root.Type == html.DocumentNode {
		return true
	}
	for _, sr := range s.win.shadows {
		if sr.container == root {
			return true
		}
	}
	return false
}
