// Package memdom is an in-memory DOM implementing the autostyle window
// abstraction. Documents are parsed with golang.org/x/net/html and queried
// with cascadia. There is no layout engine: element boxes come from a
// data-rect="x,y,w,h" attribute and computed style from the inline style
// attribute over browser defaults.
//
// A Window is single-threaded like a page; mutation records and microtasks
// are delivered when Flush is called.
package memdom

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/bnema/chatdeck/internal/domain/autostyle"
)

const maxMicrotasks = 10000

var (
	// ErrCrossOrigin is returned when a frame's document is not same-origin.
	ErrCrossOrigin = errors.New("memdom: cross-origin frame")
	// ErrHistoryFrozen is returned by PatchHistory on a frozen history object.
	ErrHistoryFrozen = errors.New("memdom: history is frozen")
	// ErrMicrotaskOverflow is returned by Flush when tasks keep rescheduling.
	ErrMicrotaskOverflow = errors.New("memdom: microtask queue did not settle")
)

// Option configures a Window.
type Option func(*Window)

// WithViewport sets the viewport size.
func WithViewport(width, height float64) Option {
	return func(w *Window) { w.viewport = autostyle.Viewport{Width: width, Height: height} }
}

// WithURL sets the window location used for same-origin checks.
func WithURL(raw string) Option {
	return func(w *Window) { w.location = raw }
}

// WithFrozenHistory makes pushState/replaceState unpatchable.
func WithFrozenHistory() Option {
	return func(w *Window) { w.history.frozen = true }
}

// Window is an in-memory browsing context.
type Window struct {
	doc      *Document
	viewport autostyle.Viewport
	location string

	ids    map[*html.Node]int
	nextID int

	shadows map[*html.Node]*shadowRoot
	frames  map[*html.Node]*Document

	observers      []*observer
	pending        bool
	microtasks     []func()
	history        *History
	popListeners   map[int]func()
	nextListenerID int

	styleRemovals int
}

// Parse reads an HTML document into a new Window.
func Parse(r io.Reader, opts ...Option) (*Window, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	w := &Window{
		viewport:     autostyle.Viewport{Width: 1280, Height: 800},
		location:     "https://localhost/",
		ids:          make(map[*html.Node]int),
		shadows:      make(map[*html.Node]*shadowRoot),
		frames:       make(map[*html.Node]*Document),
		popListeners: make(map[int]func()),
	}
	w.history = newHistory(w)
	for _, opt := range opts {
		opt(w)
	}
	w.doc = w.newDocument(root)
	if vp, ok := parseViewport(w.doc.rootNode()); ok {
		w.viewport = vp
	}
	return w, nil
}

// ParseString is Parse over a string.
func ParseString(src string, opts ...Option) (*Window, error) {
	return Parse(strings.NewReader(src), opts...)
}

// Location returns the current URL.
func (w *Window) Location() string { return w.location }

// Document returns the top-level document.
func (w *Window) Document() autostyle.Document { return w.doc }

// Doc returns the concrete top-level document.
func (w *Window) Doc() *Document { return w.doc }

func (w *Window) Viewport() autostyle.Viewport { return w.viewport }

// History returns the window's history object.
func (w *Window) History() *History { return w.history }

// QueueMicrotask schedules fn to run on the next Flush.
func (w *Window) QueueMicrotask(fn func()) {
	w.microtasks = append(w.microtasks, fn)
}

// Flush runs queued microtasks, including mutation observer delivery, until
// the queue is empty.
func (w *Window) Flush() error {
	for i := 0; len(w.microtasks) > 0; i++ {
		if i >= maxMicrotasks {
			w.microtasks = nil
			return ErrMicrotaskOverflow
		}
		task := w.microtasks[0]
		w.microtasks = w.microtasks[1:]
		task()
	}
	return nil
}

// OnPopState registers a popstate listener.
func (w *Window) OnPopState(fn func()) func() {
	id := w.nextListenerID
	w.nextListenerID++
	w.popListeners[id] = fn
	return func() { delete(w.popListeners, id) }
}

// PopState moves the location to rawURL and dispatches popstate.
func (w *Window) PopState(rawURL string) {
	w.location = w.resolve(rawURL)
	for i := 0; i < w.nextListenerID; i++ {
		if fn, ok := w.popListeners[i]; ok {
			fn()
		}
	}
}

// StyleRemovals counts Remove calls on injected style elements.
func (w *Window) StyleRemovals() int { return w.styleRemovals }

// PopStateListeners returns the number of registered popstate listeners.
func (w *Window) PopStateListeners() int { return len(w.popListeners) }

// PatchHistory wraps pushState and replaceState.
func (w *Window) PatchHistory(onChange func()) (func(), error) {
	return w.history.patch(onChange)
}

// Render writes the top-level document, with declarative shadow roots
// serialized back in place.
func (w *Window) Render(out io.Writer) error {
	return w.doc.Render(out)
}

func (w *Window) nodeID(n *html.Node) int {
	id, ok := w.ids[n]
	if !ok {
		w.nextID++
		id = w.nextID
		w.ids[n] = id
	}
	return id
}

func (w *Window) resolve(ref string) string {
	base, err := url.Parse(w.location)
	if err != nil {
		return ref
	}
	u, err := base.Parse(ref)
	if err != nil {
		return ref
	}
	return u.String()
}

func (w *Window) sameOrigin(ref string) bool {
	if ref == "" || ref == "about:blank" || ref == "about:srcdoc" {
		return true
	}
	base, err := url.Parse(w.location)
	if err != nil {
		return false
	}
	u, err := base.Parse(ref)
	if err != nil {
		return false
	}
	return u.Scheme == base.Scheme && u.Host == base.Host
}

func parseViewport(root *html.Node) (autostyle.Viewport, bool) {
	if root == nil {
		return autostyle.Viewport{}, false
	}
	vals, ok := parseFloats(attr(root, "data-viewport"), 2)
	if !ok {
		return autostyle.Viewport{}, false
	}
	return autostyle.Viewport{Width: vals[0], Height: vals[1]}, true
}

func parseFloats(raw string, n int) ([]float64, bool) {
	if raw == "" {
		return nil, false
	}
	parts := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' })
	if len(parts) != n {
		return nil, false
	}
	out := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSuffix(p, "px"), 64)
		if err != nil {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

func attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return true
		}
	}
	return false
}

// setAttr sets key on n and reports whether the value changed.
func setAttr(n *html.Node, key, val string) bool {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			if a.Val == val {
				return false
			}
			n.Attr[i].Val = val
			return true
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
	return true
}
