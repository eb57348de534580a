// Package autostyle neutralizes decorative page chrome on arbitrary pages.
// It scores visible block elements, builds a stylesheet from preset, explicit
// and heuristic tweaks, and keeps it applied across DOM mutations and
// client-side navigation.
//
// The package works against the small DOM abstraction below so the same code
// drives a live browser page and the in-memory document used offline.
package autostyle

// Rect is an element's bounding box in CSS pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// Area returns Width*Height, or 0 for degenerate boxes.
func (r Rect) Area() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Viewport is the layout viewport size in CSS pixels.
type Viewport struct {
	Width, Height float64
}

// Element is a DOM element.
type Element interface {
	// Key identifies the node for as long as it stays in the document.
	Key() string
	TagName() string
	ID() string
	// Parent returns nil for the root element.
	Parent() Element
	Children() []Element
	Rect() Rect
	// ComputedStyle returns the resolved values of the requested properties.
	ComputedStyle(props ...string) (map[string]string, error)
	InlineStyle(prop string) (value, priority string)
	SetStyleProperty(prop, value, priority string) error
	// ShadowRoot returns the element's open shadow root or nil.
	ShadowRoot() ShadowRoot
}

// StyleElement is an injected <style> element.
type StyleElement interface {
	SetText(text string) error
	Remove() error
	Connected() bool
}

// Scope is a styling target: a document or a shadow root.
type Scope interface {
	// Key identifies the scope across traversals.
	Key() string
	QuerySelectorAll(selector string) ([]Element, error)
	InsertStyle(text, nonce string) (StyleElement, error)
}

// ShadowRoot is an open shadow root.
type ShadowRoot interface {
	Scope
	Children() []Element
}

// Frame is an iframe. ContentDocument fails for cross-origin frames.
type Frame interface {
	ContentDocument() (Document, error)
}

// Document is a top-level or same-origin frame document.
type Document interface {
	Scope
	// Root returns the document element.
	Root() Element
	// Nonce returns the CSP nonce of the first <script nonce>, or "".
	Nonce() string
	Frames() []Frame
}

// MutationType distinguishes mutation records.
type MutationType string

const (
	MutationChildList  MutationType = "childList"
	MutationAttributes MutationType = "attributes"
)

// Mutation is a reduced mutation record.
type Mutation struct {
	Type          MutationType
	AddedNodes    int
	AttributeName string
}

// ObserveOptions mirrors MutationObserverInit.
type ObserveOptions struct {
	ChildList       bool
	Subtree         bool
	Attributes      bool
	AttributeFilter []string
}

// Window is the browsing context the styler installs into.
type Window interface {
	Document() Document
	Viewport() Viewport
	// Observe registers a mutation observer on target.
	Observe(target Element, opts ObserveOptions, fn func([]Mutation)) (disconnect func(), err error)
	// PatchHistory wraps pushState and replaceState so that onChange runs
	// after each call went through. restore puts the originals back.
	PatchHistory(onChange func()) (restore func(), err error)
	OnPopState(fn func()) (remove func())
	QueueMicrotask(fn func())
}
