package memdom

// History models window.history. PushState and ReplaceState are fields so
// that scripts (and the styler) can wrap them like page JavaScript would.
type History struct {
	PushState    func(url string)
	ReplaceState func(url string)

	frozen  bool
	entries []string
	// top is the most recent patch still installed.
	top *historyPatch
}

type historyPatch struct {
	prev          *historyPatch
	push, replace func(string)
	active        bool
}

func newHistory(w *Window) *History {
	h := &History{}
	h.PushState = func(url string) {
		w.location = w.resolve(url)
		h.entries = append(h.entries, w.location)
	}
	h.ReplaceState = func(url string) {
		w.location = w.resolve(url)
		if n := len(h.entries); n > 0 {
			h.entries[n-1] = w.location
		}
	}
	return h
}

// Len returns the number of pushed entries.
func (h *History) Len() int { return len(h.entries) }

// patch wraps PushState and ReplaceState so onChange runs after each call.
// Removing a patch that has since been wrapped by another one only disables
// it; the functions are reinstalled once every patch above it is gone.
// Direct assignments to the fields are not tracked.
func (h *History) patch(onChange func()) (func(), error) {
	if h.frozen {
		return nil, ErrHistoryFrozen
	}
	p := &historyPatch{prev: h.top, push: h.PushState, replace: h.ReplaceState, active: true}
	h.PushState = func(url string) {
		p.push(url)
		if p.active {
			onChange()
		}
	}
	h.ReplaceState = func(url string) {
		p.replace(url)
		if p.active {
			onChange()
		}
	}
	h.top = p
	return func() {
		p.active = false
		for h.top != nil && !h.top.active {
			h.PushState, h.ReplaceState = h.top.push, h.top.replace
			h.top = h.top.prev
		}
	}, nil
}

// PushState calls the current history.pushState.
func (w *Window) PushState(url string) { w.history.PushState(url) }

// ReplaceState calls the current history.replaceState.
func (w *Window) ReplaceState(url string) { w.history.ReplaceState(url) }
