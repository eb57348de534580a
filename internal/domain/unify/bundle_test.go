package unify

import (
	"strings"
	"testing"

	"github.com/grafana/sobek"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chatdeck/internal/domain/entity"
)

// fakeDOM is a minimal document for running generated bundles in sobek.
const fakeDOM = `
var warned = [];
var console = { warn: function() { warned.push(Array.prototype.slice.call(arguments).join(' ')); } };
function El() {
	var self = this;
	this.cls = {};
	this.style = {
		props: {}, prio: {}, sets: 0,
		setProperty: function(p, v, pr) { this.props[p] = v; this.prio[p] = pr || ''; this.sets++; },
		getPropertyValue: function(p) { return this.props[p] || ''; },
		getPropertyPriority: function(p) { return this.prio[p] || ''; }
	};
	this.classList = {
		contains: function(c) { return !!self.cls[c]; },
		add: function(c) { self.cls[c] = true; },
		remove: function(c) { delete self.cls[c]; }
	};
}
var nodes = {};
var observers = [];
function MutationObserver(cb) { this.cb = cb; observers.push(this); }
MutationObserver.prototype.observe = function(target, opts) { this.opts = opts; };
var document = {
	documentElement: { dataset: {} },
	querySelectorAll: function(sel) {
		if (sel === 'bad[') { throw new Error('SyntaxError'); }
		return nodes[sel] || [];
	}
};
function mutate() { observers.forEach(function(o) { o.cb([]); }); }
`

func newDOM(t *testing.T) *sobek.Runtime {
	t.Helper()
	vm := sobek.New()
	_, err := vm.RunString(fakeDOM)
	require.NoError(t, err)
	return vm
}

func eval(t *testing.T, vm *sobek.Runtime, src string) any {
	t.Helper()
	v, err := vm.RunString(src)
	require.NoError(t, err)
	return v.Export()
}

func TestBuildCSS_Order(t *testing.T) {
	cfg := entity.MergedConfig{
		HideSelectors: []string{"#a", ".b"},
		CSSVars:       map[string]string{"z": "1", "--a": "2"},
		CSS:           "merged{}",
		Flags:         map[string]bool{entity.FlagBaselineCSS: true},
		ClassTweaks:   []entity.ClassTweak{{Selector: "body", Add: []string{"x"}}},
		StyleTweaks: []entity.StyleTweak{
			{Selector: "main", Styles: entity.Declarations{"margin": "0", "background": "none"}, Important: true},
			{Selector: "aside", Styles: entity.Declarations{"padding": "0"}},
		},
		UserCSS:     "user{}",
		UserEnabled: true,
	}

	css := BuildCSS(cfg)

	order := []string{
		"box-sizing:border-box",
		":root{--a:2;--z:1;}",
		"#a{display:none!important}\n.b{display:none!important}",
		"merged{}",
		"user{}",
		"/* classTweak body */",
		"main{background:none !important;margin:0 !important}\naside{padding:0}",
	}
	last := -1
	for _, part := range order {
		idx := strings.Index(css, part)
		require.GreaterOrEqual(t, idx, 0, "missing %q in:\n%s", part, css)
		assert.Greater(t, idx, last, "%q out of order", part)
		last = idx
	}
}

func TestBuildCSS_Gating(t *testing.T) {
	assert.Empty(t, BuildCSS(entity.MergedConfig{}))

	css := BuildCSS(entity.MergedConfig{UserCSS: "user{}", CSS: "x{}"})
	assert.Equal(t, "x{}", css)
	assert.NotContains(t, css, "box-sizing")
}

func TestBuildJS_EmptyConfig(t *testing.T) {
	assert.Empty(t, BuildJS(entity.MergedConfig{}))
	assert.Empty(t, BuildJS(entity.MergedConfig{UserJS: "x()"}))
	assert.Empty(t, BuildJS(entity.MergedConfig{ClassTweaks: []entity.ClassTweak{{Selector: "a"}}}))
}

func TestBuildJS_Compiles(t *testing.T) {
	cfg := entity.MergedConfig{
		HideSelectors: []string{`a[title="</script>"]`},
		ClassTweaks:   []entity.ClassTweak{{Selector: "body", Add: []string{"x"}, Remove: []string{"y"}}},
		StyleTweaks:   []entity.StyleTweak{{Selector: "main", Styles: entity.Declarations{"color": "red"}}},
		JS:            "var custom = 1;",
		UserJS:        "var user = 2;",
		UserEnabled:   true,
	}

	js := BuildJS(cfg)

	_, err := sobek.Compile("bundle.js", js, false)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(js, "(function(){try{"))
	assert.NotContains(t, js, "</script>")
	assert.Less(t, strings.Index(js, "var custom"), strings.Index(js, "var user"))
}

func TestBuildJS_HideReappliesOnMutation(t *testing.T) {
	vm := newDOM(t)
	eval(t, vm, `nodes['.ad'] = [new El()];`)

	eval(t, vm, BuildJS(entity.MergedConfig{HideSelectors: []string{".ad", "bad["}}))

	assert.Equal(t, "none", eval(t, vm, `nodes['.ad'][0].style.props.display`))
	assert.Equal(t, "important", eval(t, vm, `nodes['.ad'][0].style.prio.display`))
	assert.EqualValues(t, 1, eval(t, vm, `observers.length`))
	assert.Equal(t, true, eval(t, vm, `observers[0].opts.childList && observers[0].opts.subtree`))

	eval(t, vm, `nodes['.ad'].push(new El()); mutate();`)
	assert.Equal(t, "none", eval(t, vm, `nodes['.ad'][1].style.props.display`))
	assert.EqualValues(t, 1, eval(t, vm, `nodes['.ad'][0].style.sets`))
	assert.EqualValues(t, 0, eval(t, vm, `warned.length`))
}

func TestBuildJS_ClassAndStyleTweaks(t *testing.T) {
	vm := newDOM(t)
	eval(t, vm, `var b = new El(); b.cls.old = true; nodes['body'] = [b]; nodes['main'] = [new El()];`)

	eval(t, vm, BuildJS(entity.MergedConfig{
		ClassTweaks: []entity.ClassTweak{{Selector: "body", Add: []string{"new"}, Remove: []string{"old"}}},
		StyleTweaks: []entity.StyleTweak{{
			Selector:  "main",
			Styles:    entity.Declarations{"margin": "0", "background": "none"},
			Important: true,
		}},
	}))

	assert.Equal(t, true, eval(t, vm, `!!b.cls['new'] && !b.cls.old`))
	assert.Equal(t, "0", eval(t, vm, `nodes['main'][0].style.props.margin`))
	assert.Equal(t, "important", eval(t, vm, `nodes['main'][0].style.prio.background`))
	assert.EqualValues(t, 2, eval(t, vm, `observers.length`))

	eval(t, vm, `mutate();`)
	assert.EqualValues(t, 2, eval(t, vm, `nodes['main'][0].style.sets`))
}

func TestBuildJS_ScriptErrorIsCaught(t *testing.T) {
	vm := newDOM(t)

	eval(t, vm, BuildJS(entity.MergedConfig{JS: "throw new Error('boom');"}))

	assert.EqualValues(t, 1, eval(t, vm, `warned.length`))
	assert.Contains(t, eval(t, vm, `warned[0]`), "boom")
}

func TestThemeScript(t *testing.T) {
	vm := newDOM(t)

	eval(t, vm, ThemeScript(true))
	assert.Equal(t, "dark", eval(t, vm, `document.documentElement.dataset.theme`))

	eval(t, vm, ThemeScript(false))
	assert.Equal(t, "light", eval(t, vm, `document.documentElement.dataset.theme`))

	assert.NotContains(t, ThemeScript(true), "\n")
}
