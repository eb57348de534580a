package autostyle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/chatdeck/internal/domain/entity"
)

func blankStyle() map[string]string {
	style := map[string]string{
		"background-image": "none",
		"background-color": "rgba(0, 0, 0, 0)",
	}
	for _, p := range append(append(append([]string{}, radiusProps...), marginProps...), paddingProps...) {
		style[p] = "0px"
	}
	return style
}

func TestScore_BackgroundOnly(t *testing.T) {
	policy := DefaultScoringPolicy()
	vp := Viewport{Width: 1280, Height: 800}
	rect := Rect{Width: 640, Height: 400}
	style := blankStyle()
	style["background-color"] = "rgb(255, 255, 255)"

	styles, score := policy.Score(style, rect, vp, DefaultAutoOptions())

	assert.Equal(t, entity.Declarations{"background": "none", "background-image": "none"}, styles)
	assert.InDelta(t, 3*(0.5+0.25), score, 1e-9)
}

func TestScore_Heuristics(t *testing.T) {
	policy := DefaultScoringPolicy()
	vp := Viewport{Width: 100, Height: 100}
	rect := Rect{Width: 100, Height: 100} // area fraction 1

	tests := []struct {
		name       string
		set        map[string]string
		opts       AutoOptions
		wantStyles entity.Declarations
		wantScore  float64
	}{
		{
			name:       "background image",
			set:        map[string]string{"background-image": "url(a.png)"},
			opts:       DefaultAutoOptions(),
			wantStyles: entity.Declarations{"background": "none", "background-image": "none"},
			wantScore:  3 * 1.5,
		},
		{
			name:       "nearly transparent background ignored",
			set:        map[string]string{"background-color": "rgba(0, 0, 0, 0.005)"},
			opts:       DefaultAutoOptions(),
			wantStyles: entity.Declarations{},
			wantScore:  0,
		},
		{
			name:       "radius",
			set:        map[string]string{"border-top-left-radius": "8px"},
			opts:       DefaultAutoOptions(),
			wantStyles: entity.Declarations{"border-radius": "0"},
			wantScore:  1.5 * 1.5,
		},
		{
			name:       "margin",
			set:        map[string]string{"margin-left": "4px"},
			opts:       DefaultAutoOptions(),
			wantStyles: entity.Declarations{"margin": "0"},
			wantScore:  1 * 1.5,
		},
		{
			name:       "negative margin is left alone",
			set:        map[string]string{"margin-top": "-20px"},
			opts:       DefaultAutoOptions(),
			wantStyles: entity.Declarations{},
			wantScore:  0,
		},
		{
			name:       "opposing margins cancel",
			set:        map[string]string{"margin-left": "-8px", "margin-right": "8px"},
			opts:       DefaultAutoOptions(),
			wantStyles: entity.Declarations{},
			wantScore:  0,
		},
		{
			name:       "small padding scores but is kept",
			set:        map[string]string{"padding-top": "8px", "padding-bottom": "8px"},
			opts:       DefaultAutoOptions(),
			wantStyles: entity.Declarations{},
			wantScore:  0.5 * 1.5,
		},
		{
			name:       "large padding is zeroed",
			set:        map[string]string{"padding-top": "10px", "padding-bottom": "10px"},
			opts:       DefaultAutoOptions(),
			wantStyles: entity.Declarations{"padding": "0"},
			wantScore:  0.5 * 1.5,
		},
		{
			name:       "disabled heuristics",
			set:        map[string]string{"background-color": "red", "border-top-left-radius": "8px", "margin-top": "4px"},
			opts:       AutoOptions{},
			wantStyles: entity.Declarations{},
			wantScore:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := blankStyle()
			for k, v := range tt.set {
				style[k] = v
			}
			styles, score := policy.Score(style, rect, vp, tt.opts)
			assert.Equal(t, tt.wantStyles, styles)
			assert.InDelta(t, tt.wantScore, score, 1e-9)
		})
	}
}

func TestScore_PolicyIsInjectable(t *testing.T) {
	policy := DefaultScoringPolicy()
	policy.BackgroundWeight = 10
	policy.AreaBase = 0

	style := blankStyle()
	style["background-color"] = "#000"
	_, score := policy.Score(style, Rect{Width: 50, Height: 100}, Viewport{Width: 100, Height: 100}, DefaultAutoOptions())

	assert.InDelta(t, 5, score, 1e-9)
}

func TestVisible(t *testing.T) {
	policy := DefaultScoringPolicy()
	vp := Viewport{Width: 1000, Height: 500}

	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{"on screen", Rect{X: 10, Y: 10, Width: 100, Height: 100}, true},
		{"too narrow", Rect{Width: 15, Height: 100}, false},
		{"too short", Rect{Width: 100, Height: 15}, false},
		{"within slack", Rect{X: 1900, Y: 900, Width: 100, Height: 100}, true},
		{"right of slack", Rect{X: 2001, Width: 100, Height: 100}, false},
		{"left of slack", Rect{X: -2200, Width: 100, Height: 100}, false},
		{"below slack", Rect{Y: 1001, Width: 100, Height: 100}, false},
		{"above slack", Rect{Y: -1200, Width: 100, Height: 100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Visible(tt.rect, vp))
		})
	}
}

func TestLimit(t *testing.T) {
	policy := DefaultScoringPolicy()
	n := func(v int) *int { return &v }

	assert.Equal(t, 8, policy.Limit(nil))
	assert.Equal(t, 1, policy.Limit(n(0)))
	assert.Equal(t, 1, policy.Limit(n(-5)))
	assert.Equal(t, 5, policy.Limit(n(5)))
	assert.Equal(t, 12, policy.Limit(n(50)))
}

func TestColorAlpha(t *testing.T) {
	tests := map[string]float64{
		"":                       0,
		"transparent":            0,
		"rgba(0, 0, 0, 0)":       0,
		"rgba(0,0,0,0.5)":        0.5,
		"rgb(0 0 0 / 25%)":       0.25,
		"hsla(0, 0%, 0%, 0.005)": 0.005,
		"rgb(255, 255, 255)":     1,
		"#ffffff00":              0,
		"#000":                   1,
		"#0008":                  float64(0x88) / 255,
		"red":                    1,
		"color-mix(in srgb, red, blue)": 1,
	}
	for in, want := range tests {
		assert.InDelta(t, want, ColorAlpha(in), 1e-9, in)
	}
}

func TestParsePx(t *testing.T) {
	tests := map[string]float64{
		"12px":    12,
		"4px 8px": 4,
		"-3.5px":  -3.5,
		"0":       0,
		"auto":    0,
		"":        0,
		"-":       0,
	}
	for in, want := range tests {
		assert.InDelta(t, want, ParsePx(in), 1e-9, in)
	}
}
