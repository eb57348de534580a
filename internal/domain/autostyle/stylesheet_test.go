package autostyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chatdeck/internal/domain/entity"
)

func TestAssembleTweaks_Dedup(t *testing.T) {
	a := entity.StyleTweak{Selector: "main", Styles: entity.Declarations{"margin": "0"}, Important: true}
	dup := entity.StyleTweak{Selector: "main", Styles: entity.Declarations{"margin": "0"}, Important: true}
	differs := entity.StyleTweak{Selector: "main", Styles: entity.Declarations{"margin": "0"}}

	got := AssembleTweaks(nil, []entity.StyleTweak{a, dup, differs}, nil)

	require.Len(t, got, 2)
	assert.True(t, got[0].Important)
	assert.False(t, got[1].Important)
}

func TestAssembleTweaks_OrderAndFirstWins(t *testing.T) {
	flatten, ok := Preset(PresetFlattenPage)
	require.True(t, ok)
	explicit := []entity.StyleTweak{{Selector: "nav", Styles: entity.Declarations{"display": "none"}}}
	auto := []entity.StyleTweak{
		{Selector: "#card", Styles: entity.Declarations{"margin": "0"}, Important: true, PseudoCleanup: true},
		flattenTweak("html, body"),
	}

	got := AssembleTweaks(flatten, explicit, auto)

	selectors := make([]string, len(got))
	for i, tw := range got {
		selectors[i] = tw.Selector
	}
	assert.Equal(t, []string{"html, body", "#ice-container, #ice-container > div", "nav", "#card"}, selectors)
}

func TestBuildStyleSheet(t *testing.T) {
	css := BuildStyleSheet([]entity.StyleTweak{
		{Selector: "a, b:is(.x, .y)", Styles: entity.Declarations{"margin": "0", "background": "none"}, Important: true, PseudoCleanup: true},
		{Selector: "nav", Styles: entity.Declarations{"display": "none"}},
		{Selector: "  ", Styles: entity.Declarations{"display": "none"}},
	})

	assert.Equal(t,
		"a, b:is(.x, .y) { background: none !important; margin: 0 !important; }\n"+
			"a::before, a::after, b:is(.x, .y)::before, b:is(.x, .y)::after { content: none !important; background: none !important; box-shadow: none !important; mask: none !important; filter: none !important; }\n"+
			"nav { display: none; }\n",
		css)
}

func TestPresets(t *testing.T) {
	for _, name := range PresetNames() {
		tweaks, ok := Preset(name)
		assert.True(t, ok, name)
		assert.NotEmpty(t, tweaks, name)
	}
	_, ok := Preset("nope")
	assert.False(t, ok)
}

func TestSplitSelectorList(t *testing.T) {
	assert.Equal(t, []string{"a", "b > c", `d[title="x,y"]`, ":is(e, f)"},
		SplitSelectorList(` a ,b > c,d[title="x,y"], :is(e, f),`))
	assert.Empty(t, SplitSelectorList(" , "))
}

func TestEscapeIdent(t *testing.T) {
	tests := map[string]string{
		"app":     "app",
		"a.b":     `a\.b`,
		"1st":     `\31 st`,
		"-2x":     `-\32 x`,
		"-":       `\-`,
		"é_ok-1":  "é_ok-1",
		"a b:c":   `a\ b\:c`,
	}
	for in, want := range tests {
		assert.Equal(t, want, EscapeIdent(in), in)
	}
}
