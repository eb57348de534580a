package cdp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"

	"github.com/bnema/chatdeck/internal/domain/autostyle"
	"github.com/bnema/chatdeck/internal/logging"
)

// ErrCrossOriginFrame is returned for frames whose document is not reachable
// from the top-level page.
var ErrCrossOriginFrame = errors.New("cdp: cross-origin frame")

const mutationBinding = "__chatdeckMutations"

// Window exposes a Page to the standalone styler. Every DOM access is a
// DevTools round trip on remote object handles.
type Window struct {
	source *Page
	page   *rod.Page
	ctx    context.Context

	mu         sync.Mutex
	observers  map[string]func([]autostyle.Mutation)
	nextObs    int
	stopExpose func() error

	taskMu sync.Mutex
	tasks  []func()
	wake   chan struct{}
	done   chan struct{}
	closed bool
}

var _ autostyle.Window = (*Window)(nil)

// NewWindow binds a window adapter to page. Close releases it.
func NewWindow(ctx context.Context, page *Page) *Window {
	w := &Window{
		source:    page,
		page:      page.rod.Context(ctx),
		ctx:       ctx,
		observers: make(map[string]func([]autostyle.Mutation)),
		wake:      make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
	go w.runTasks()
	return w
}

func (w *Window) Document() autostyle.Document {
	res, err := w.page.Evaluate(rod.Eval(`() => document`).ByObject())
	if err != nil || res.ObjectID == "" {
		return nil
	}
	return &document{scope{remote{page: w.page, obj: res}}}
}

func (w *Window) Viewport() autostyle.Viewport {
	res, err := w.page.Evaluate(rod.Eval(`() => [window.innerWidth, window.innerHeight]`))
	if err != nil {
		return autostyle.Viewport{}
	}
	arr := res.Value.Arr()
	if len(arr) != 2 {
		return autostyle.Viewport{}
	}
	return autostyle.Viewport{Width: arr[0].Num(), Height: arr[1].Num()}
}

// Observe installs a MutationObserver whose records are delivered through an
// exposed binding.
func (w *Window) Observe(target autostyle.Element, opts autostyle.ObserveOptions, fn func([]autostyle.Mutation)) (func(), error) {
	el, ok := target.(*element)
	if !ok {
		return nil, fmt.Errorf("cdp: cannot observe %T", target)
	}
	if err := w.ensureBinding(); err != nil {
		return nil, err
	}

	w.mu.Lock()
	id := strconv.Itoa(w.nextObs)
	w.nextObs++
	w.observers[id] = fn
	w.mu.Unlock()

	init := map[string]any{
		"childList":  opts.ChildList,
		"subtree":    opts.Subtree,
		"attributes": opts.Attributes,
	}
	if len(opts.AttributeFilter) > 0 {
		init["attributeFilter"] = opts.AttributeFilter
	}

	_, err := el.eval(`(id, init, binding) => {
		const observer = new MutationObserver((records) => {
			window[binding]({
				id,
				records: records.map((r) => ({ type: r.type, added: r.addedNodes.length, attr: r.attributeName || '' })),
			});
		});
		observer.observe(this, init);
		(window.__chatdeckObservers ||= {})[id] = observer;
	}`, id, init, mutationBinding)
	if err != nil {
		w.dropObserver(id)
		return nil, fmt.Errorf("failed to observe mutations: %w", err)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			w.dropObserver(id)
			_, _ = w.page.Evaluate(rod.Eval(`(id) => {
				const all = window.__chatdeckObservers;
				if (all && all[id]) { all[id].disconnect(); delete all[id]; }
			}`, id))
		})
	}, nil
}

func (w *Window) ensureBinding() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopExpose != nil {
		return nil
	}
	stop, err := w.page.Expose(mutationBinding, func(payload gson.JSON) (any, error) {
		w.dispatch(payload)
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("failed to expose mutation binding: %w", err)
	}
	w.stopExpose = stop
	return nil
}

func (w *Window) dispatch(payload gson.JSON) {
	id := payload.Get("id").Str()
	w.mu.Lock()
	fn := w.observers[id]
	w.mu.Unlock()
	if fn == nil {
		return
	}
	fn(decodeMutations(payload.Get("records")))
}

func decodeMutations(records gson.JSON) []autostyle.Mutation {
	raw := records.Arr()
	out := make([]autostyle.Mutation, 0, len(raw))
	for _, r := range raw {
		out = append(out, autostyle.Mutation{
			Type:          autostyle.MutationType(r.Get("type").Str()),
			AddedNodes:    r.Get("added").Int(),
			AttributeName: r.Get("attr").Str(),
		})
	}
	return out
}

func (w *Window) dropObserver(id string) {
	w.mu.Lock()
	delete(w.observers, id)
	w.mu.Unlock()
}

// PatchHistory reports same-document navigations, popstate included, from
// the DevTools navigation events; the page's history object is untouched.
func (w *Window) PatchHistory(onChange func()) (func(), error) {
	return w.source.OnNavigatedInPage(onChange), nil
}

// OnPopState is a no-op: popstate is already reported through PatchHistory.
func (w *Window) OnPopState(func()) func() {
	return func() {}
}

// QueueMicrotask runs fn on the window's task goroutine, in order.
func (w *Window) QueueMicrotask(fn func()) {
	w.taskMu.Lock()
	if w.closed {
		w.taskMu.Unlock()
		return
	}
	w.tasks = append(w.tasks, fn)
	w.taskMu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *Window) runTasks() {
	for {
		select {
		case <-w.done:
			return
		case <-w.wake:
		}
		for {
			w.taskMu.Lock()
			if len(w.tasks) == 0 || w.closed {
				w.taskMu.Unlock()
				break
			}
			fn := w.tasks[0]
			w.tasks = w.tasks[1:]
			w.taskMu.Unlock()
			fn()
		}
	}
}

// Close stops the task goroutine and removes the mutation binding.
func (w *Window) Close() error {
	w.taskMu.Lock()
	if w.closed {
		w.taskMu.Unlock()
		return nil
	}
	w.closed = true
	w.tasks = nil
	w.taskMu.Unlock()
	close(w.done)

	w.mu.Lock()
	stop := w.stopExpose
	w.stopExpose = nil
	w.observers = make(map[string]func([]autostyle.Mutation))
	w.mu.Unlock()

	if stop == nil {
		return nil
	}
	if err := stop(); err != nil {
		logging.FromContext(w.ctx).Debug().Err(err).Str("component", "cdp").Msg("failed to remove mutation binding")
		return err
	}
	return nil
}

// remote is a handle on a JavaScript object of the page.
type remote struct {
	page *rod.Page
	obj  *proto.RuntimeRemoteObject
}

func (r remote) eval(js string, args ...any) (gson.JSON, error) {
	res, err := r.page.Evaluate(rod.Eval(js, args...).This(r.obj))
	if err != nil {
		return gson.JSON{}, err
	}
	return res.Value, nil
}

// evalObject returns nil when the result is null or undefined.
func (r remote) evalObject(js string, args ...any) (*proto.RuntimeRemoteObject, error) {
	res, err := r.page.Evaluate(rod.Eval(js, args...).This(r.obj).ByObject())
	if err != nil {
		return nil, err
	}
	if res.ObjectID == "" || res.Subtype == proto.RuntimeRemoteObjectSubtypeNull {
		return nil, nil
	}
	return res, nil
}

func (r remote) evalElements(js string, args ...any) ([]autostyle.Element, error) {
	els, err := r.page.ElementsByJS(rod.Eval(js, args...).This(r.obj))
	if err != nil {
		return nil, err
	}
	out := make([]autostyle.Element, 0, len(els))
	for _, el := range els {
		out = append(out, &element{remote: remote{page: r.page, obj: el.Object}})
	}
	return out, nil
}

// nodeKey returns the backend node id, stable for the node's lifetime.
func (r remote) nodeKey() string {
	node, err := proto.DOMDescribeNode{ObjectID: r.obj.ObjectID}.Call(r.page)
	if err != nil || node.Node == nil {
		return string(r.obj.ObjectID)
	}
	return strconv.Itoa(int(node.Node.BackendNodeID))
}

type element struct {
	remote
	keyOnce sync.Once
	key     string
}

func (e *element) Key() string {
	e.keyOnce.Do(func() { e.key = e.nodeKey() })
	return e.key
}

func (e *element) TagName() string {
	v, err := e.eval(`() => this.tagName.toLowerCase()`)
	if err != nil {
		return ""
	}
	return v.Str()
}

func (e *element) ID() string {
	v, err := e.eval(`() => this.id`)
	if err != nil {
		return ""
	}
	return v.Str()
}

func (e *element) Parent() autostyle.Element {
	obj, err := e.evalObject(`() => this.parentElement`)
	if err != nil || obj == nil {
		return nil
	}
	return &element{remote: remote{page: e.page, obj: obj}}
}

func (e *element) Children() []autostyle.Element {
	children, _ := e.evalElements(`() => Array.from(this.children)`)
	return children
}

func (e *element) Rect() autostyle.Rect {
	v, err := e.eval(`() => {
		const r = this.getBoundingClientRect();
		return [r.x, r.y, r.width, r.height];
	}`)
	if err != nil {
		return autostyle.Rect{}
	}
	arr := v.Arr()
	if len(arr) != 4 {
		return autostyle.Rect{}
	}
	return autostyle.Rect{X: arr[0].Num(), Y: arr[1].Num(), Width: arr[2].Num(), Height: arr[3].Num()}
}

func (e *element) ComputedStyle(props ...string) (map[string]string, error) {
	v, err := e.eval(`(props) => {
		const cs = getComputedStyle(this);
		const out = {};
		for (const p of props) out[p] = cs.getPropertyValue(p);
		return out;
	}`, props)
	if err != nil {
		return nil, fmt.Errorf("failed to read computed style: %w", err)
	}
	out := make(map[string]string, len(props))
	for k, val := range v.Map() {
		out[k] = val.Str()
	}
	return out, nil
}

func (e *element) InlineStyle(prop string) (value, priority string) {
	v, err := e.eval(`(p) => [this.style.getPropertyValue(p), this.style.getPropertyPriority(p)]`, prop)
	if err != nil {
		return "", ""
	}
	arr := v.Arr()
	if len(arr) != 2 {
		return "", ""
	}
	return arr[0].Str(), arr[1].Str()
}

func (e *element) SetStyleProperty(prop, value, priority string) error {
	_, err := e.eval(`(p, v, prio) => this.style.setProperty(p, v, prio)`, prop, value, priority)
	return err
}

func (e *element) ShadowRoot() autostyle.ShadowRoot {
	obj, err := e.evalObject(`() => this.shadowRoot`)
	if err != nil || obj == nil {
		return nil
	}
	return &shadowRoot{scope{remote{page: e.page, obj: obj}}}
}

type scope struct {
	remote
}

func (s scope) Key() string { return s.nodeKey() }

func (s scope) QuerySelectorAll(selector string) ([]autostyle.Element, error) {
	return s.evalElements(`(sel) => Array.from(this.querySelectorAll(sel))`, selector)
}

// InsertStyle appends a <style> to the document head or the shadow root.
func (s scope) InsertStyle(text, nonce string) (autostyle.StyleElement, error) {
	obj, err := s.evalObject(`(text, nonce) => {
		const doc = this.ownerDocument || this;
		const el = doc.createElement('style');
		el.setAttribute('data-chatdeck-autostyle', '');
		if (nonce) el.setAttribute('nonce', nonce);
		el.textContent = text;
		const parent = this.nodeType === Node.DOCUMENT_NODE ? (this.head || this.documentElement) : this;
		parent.appendChild(el);
		return el;
	}`, text, nonce)
	if err != nil {
		return nil, fmt.Errorf("failed to insert style: %w", err)
	}
	if obj == nil {
		return nil, errors.New("cdp: style element not created")
	}
	return &styleElement{remote{page: s.page, obj: obj}}, nil
}

type shadowRoot struct {
	scope
}

func (s *shadowRoot) Children() []autostyle.Element {
	children, _ := s.evalElements(`() => Array.from(this.children)`)
	return children
}

type document struct {
	scope
}

func (d *document) Root() autostyle.Element {
	obj, err := d.evalObject(`() => this.documentElement`)
	if err != nil || obj == nil {
		return nil
	}
	return &element{remote: remote{page: d.page, obj: obj}}
}

func (d *document) Nonce() string {
	v, err := d.eval(`() => {
		const s = this.querySelector('script[nonce]');
		return s ? (s.nonce || s.getAttribute('nonce') || '') : '';
	}`)
	if err != nil {
		return ""
	}
	return v.Str()
}

func (d *document) Frames() []autostyle.Frame {
	frames, err := d.evalElements(`() => Array.from(this.querySelectorAll('iframe'))`)
	if err != nil {
		return nil
	}
	out := make([]autostyle.Frame, 0, len(frames))
	for _, f := range frames {
		out = append(out, &frame{f.(*element).remote})
	}
	return out
}

type frame struct {
	remote
}

func (f *frame) ContentDocument() (autostyle.Document, error) {
	obj, err := f.evalObject(`() => { try { return this.contentDocument; } catch (e) { return null; } }`)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, ErrCrossOriginFrame
	}
	return &document{scope{remote{page: f.page, obj: obj}}}, nil
}

type styleElement struct {
	remote
}

func (s *styleElement) SetText(text string) error {
	_, err := s.eval(`(t) => { this.textContent = t; }`, text)
	return err
}

func (s *styleElement) Remove() error {
	_, err := s.eval(`() => this.remove()`)
	return err
}

func (s *styleElement) Connected() bool {
	v, err := s.eval(`() => this.isConnected`)
	return err == nil && v.Bool()
}
