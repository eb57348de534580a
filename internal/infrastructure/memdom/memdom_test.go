package memdom

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chatdeck/internal/domain/autostyle"
)

func mustParse(t *testing.T, src string, opts ...Option) *Window {
	t.Helper()
	w, err := ParseString(src, opts...)
	require.NoError(t, err)
	return w
}

func first(t *testing.T, w *Window, sel string) *Element {
	t.Helper()
	els, err := w.Doc().Query(sel)
	require.NoError(t, err)
	require.NotEmpty(t, els, sel)
	return els[0]
}

func TestComputedStyle_Shorthands(t *testing.T) {
	w := mustParse(t, `<div style="margin: 1px 2px; padding: 3px 4px 5px; border-radius: 6px / 2px; background: url(x.png); margin-left: 9px !important; margin: 0"></div>`)
	el := first(t, w, "div")

	style, err := el.ComputedStyle("margin-top", "margin-right", "margin-left", "padding-left", "padding-bottom",
		"border-bottom-left-radius", "background-image", "background-color", "unknown")
	require.NoError(t, err)

	assert.Equal(t, "0", style["margin-top"])
	assert.Equal(t, "0", style["margin-right"])
	assert.Equal(t, "9px", style["margin-left"])
	assert.Equal(t, "4px", style["padding-left"])
	assert.Equal(t, "5px", style["padding-bottom"])
	assert.Equal(t, "6px", style["border-bottom-left-radius"])
	assert.Equal(t, "url(x.png)", style["background-image"])
	assert.Equal(t, "rgba(0, 0, 0, 0)", style["background-color"])
	assert.Empty(t, style["unknown"])
}

func TestSetStyleProperty(t *testing.T) {
	w := mustParse(t, `<p style="color: red; background: url('a;b.png')"></p>`)
	el := first(t, w, "p")

	require.NoError(t, el.SetStyleProperty("color", "blue", "important"))
	require.NoError(t, el.SetStyleProperty("margin", "0", ""))

	v, prio := el.InlineStyle("color")
	assert.Equal(t, "blue", v)
	assert.Equal(t, "important", prio)
	bg, _ := el.InlineStyle("background")
	assert.Equal(t, "url('a;b.png')", bg)
	assert.Equal(t, "color: blue !important; background: url('a;b.png'); margin: 0;", el.Attr("style"))
}

func TestRect(t *testing.T) {
	w := mustParse(t, `<html data-viewport="800, 600"><body><div data-rect="1,2,3px,4"></div><span data-rect="bad"></span></body></html>`)

	assert.Equal(t, autostyle.Rect{X: 1, Y: 2, Width: 3, Height: 4}, first(t, w, "div").Rect())
	assert.Equal(t, autostyle.Rect{}, first(t, w, "span").Rect())
	assert.Equal(t, autostyle.Viewport{Width: 800, Height: 600}, w.Viewport())
}

func TestObserve_DeliversOnFlush(t *testing.T) {
	w := mustParse(t, `<html><body><div id="a"></div></body></html>`)
	root := w.Doc().Root()

	var batches [][]autostyle.Mutation
	disconnect, err := w.Observe(root, autostyle.ObserveOptions{
		ChildList: true, Subtree: true, Attributes: true, AttributeFilter: []string{"class"},
	}, func(m []autostyle.Mutation) { batches = append(batches, m) })
	require.NoError(t, err)

	div := first(t, w, "#a")
	div.SetAttribute("class", "x")
	div.SetAttribute("title", "ignored")
	div.SetAttribute("class", "x")
	_, err = div.AppendHTML("<span></span><b></b>")
	require.NoError(t, err)

	assert.Empty(t, batches)
	require.NoError(t, w.Flush())
	require.Len(t, batches, 1)
	assert.Equal(t, []autostyle.Mutation{
		{Type: autostyle.MutationAttributes, AttributeName: "class"},
		{Type: autostyle.MutationChildList, AddedNodes: 2},
	}, batches[0])

	disconnect()
	div.SetAttribute("class", "y")
	require.NoError(t, w.Flush())
	assert.Len(t, batches, 1)
	assert.Equal(t, 0, w.Observers())
}

func TestObserve_ForeignTarget(t *testing.T) {
	a := mustParse(t, `<p></p>`)
	b := mustParse(t, `<p></p>`)

	_, err := a.Observe(b.Doc().Root(), autostyle.ObserveOptions{ChildList: true}, func([]autostyle.Mutation) {})
	assert.Error(t, err)
}

func TestFlush_Overflow(t *testing.T) {
	w := mustParse(t, `<p></p>`)
	var loop func()
	loop = func() { w.QueueMicrotask(loop) }
	w.QueueMicrotask(loop)

	assert.ErrorIs(t, w.Flush(), ErrMicrotaskOverflow)
}

func TestHistory_PatchAndRestore(t *testing.T) {
	w := mustParse(t, `<p></p>`, WithURL("https://chat.example/a"))
	calls := 0

	restore, err := w.PatchHistory(func() { calls++ })
	require.NoError(t, err)

	w.PushState("/b")
	w.ReplaceState("c")
	assert.Equal(t, 2, calls)
	assert.Equal(t, "https://chat.example/c", w.Location())
	assert.Equal(t, 1, w.History().Len())

	restore()
	w.PushState("/d")
	assert.Equal(t, 2, calls)
}

func TestHistory_StackedPatches(t *testing.T) {
	w := mustParse(t, `<p></p>`, WithURL("https://chat.example/a"))
	first, second := 0, 0

	restoreFirst, err := w.PatchHistory(func() { first++ })
	require.NoError(t, err)
	restoreSecond, err := w.PatchHistory(func() { second++ })
	require.NoError(t, err)

	restoreFirst()
	w.PushState("/b")
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second, "later patch survives removal of the earlier one")
	assert.Equal(t, "https://chat.example/b", w.Location())

	restoreSecond()
	w.PushState("/c")
	assert.Equal(t, 1, second)
	assert.Equal(t, "https://chat.example/c", w.Location())
	assert.Nil(t, w.History().top)
}

func TestHistory_Frozen(t *testing.T) {
	w := mustParse(t, `<p></p>`, WithFrozenHistory())
	_, err := w.PatchHistory(func() {})
	assert.ErrorIs(t, err, ErrHistoryFrozen)
}

func TestStyleElement_Lifecycle(t *testing.T) {
	w := mustParse(t, `<html><head></head><body></body></html>`)

	style, err := w.Doc().InsertStyle("a{}", "n1")
	require.NoError(t, err)
	s := style.(*StyleElement)
	assert.True(t, s.Connected())
	assert.Equal(t, "n1", s.Nonce())

	require.NoError(t, s.SetText("b{}"))
	assert.Equal(t, "b{}", s.Text())

	require.NoError(t, s.Remove())
	assert.False(t, s.Connected())
	assert.ErrorIs(t, s.Remove(), ErrDetached)
	assert.Equal(t, 2, w.StyleRemovals())
}

func TestRender_RestoresShadowRoots(t *testing.T) {
	w := mustParse(t, `<html><head></head><body><div id="h"><template shadowrootmode="open"><i>x</i></template></div></body></html>`)
	assert.Empty(t, first(t, w, "#h").Children())

	var buf bytes.Buffer
	require.NoError(t, w.Render(&buf))

	assert.Contains(t, buf.String(), `<div id="h"><template shadowrootmode="open"><i>x</i></template></div>`)
	assert.Empty(t, first(t, w, "#h").Children())
}
