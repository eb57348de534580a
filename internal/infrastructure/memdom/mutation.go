package memdom

import (
	"errors"
	"slices"

	"golang.org/x/net/html"

	"github.com/bnema/chatdeck/internal/domain/autostyle"
)

type observer struct {
	target  *html.Node
	opts    autostyle.ObserveOptions
	fn      func([]autostyle.Mutation)
	records []autostyle.Mutation
	active  bool
}

func (o *observer) wants(target *html.Node, m autostyle.Mutation) bool {
	if target != o.target && !(o.opts.Subtree && isAncestor(o.target, target)) {
		return false
	}
	switch m.Type {
	case autostyle.MutationChildList:
		return o.opts.ChildList
	case autostyle.MutationAttributes:
		if !o.opts.Attributes {
			return false
		}
		return len(o.opts.AttributeFilter) == 0 || slices.Contains(o.opts.AttributeFilter, m.AttributeName)
	}
	return false
}

// Observe registers a mutation observer on target, which must be an element
// of this window.
func (w *Window) Observe(target autostyle.Element, opts autostyle.ObserveOptions, fn func([]autostyle.Mutation)) (func(), error) {
	el, ok := target.(*Element)
	if !ok || el.win != w {
		return nil, errors.New("memdom: observe target belongs to another window")
	}
	obs := &observer{target: el.node, opts: opts, fn: fn, active: true}
	w.observers = append(w.observers, obs)
	return func() {
		obs.active = false
		obs.records = nil
		w.observers = slices.DeleteFunc(w.observers, func(o *observer) bool { return o == obs })
	}, nil
}

// Observers returns the number of connected mutation observers.
func (w *Window) Observers() int { return len(w.observers) }

func (w *Window) queueMutation(target *html.Node, m autostyle.Mutation) {
	queued := false
	for _, o := range w.observers {
		if o.active && o.wants(target, m) {
			o.records = append(o.records, m)
			queued = true
		}
	}
	if queued && !w.pending {
		w.pending = true
		w.QueueMicrotask(w.deliverMutations)
	}
}

func (w *Window) deliverMutations() {
	w.pending = false
	for _, o := range slices.Clone(w.observers) {
		if !o.active || len(o.records) == 0 {
			continue
		}
		records := o.records
		o.records = nil
		o.fn(records)
	}
}

func isAncestor(ancestor, n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p == ancestor {
			return true
		}
	}
	return false
}
