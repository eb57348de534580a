package autostyle

import "github.com/bnema/chatdeck/internal/domain/entity"

// Preset names.
const (
	PresetFlattenPage    = "flattenPage"
	PresetSquareCorners  = "squareCorners"
	PresetCompactSpacing = "compactSpacing"
)

func flattenTweak(selector string) entity.StyleTweak {
	return entity.StyleTweak{
		Selector:  selector,
		Styles:    entity.Declarations{"background": "none", "background-image": "none"},
		Important: true,
	}
}

var presets = map[string]func() []entity.StyleTweak{
	PresetFlattenPage: func() []entity.StyleTweak {
		return []entity.StyleTweak{
			flattenTweak("html, body"),
			flattenTweak("#ice-container, #ice-container > div"),
		}
	},
	PresetSquareCorners: func() []entity.StyleTweak {
		return []entity.StyleTweak{{
			Selector:  "*",
			Styles:    entity.Declarations{"border-radius": "0"},
			Important: true,
		}}
	},
	PresetCompactSpacing: func() []entity.StyleTweak {
		return []entity.StyleTweak{
			{
				Selector:  "main, section, article, aside, header, footer",
				Styles:    entity.Declarations{"margin": "0"},
				Important: true,
			},
			{
				Selector:  "main",
				Styles:    entity.Declarations{"padding": "0"},
				Important: true,
			},
		}
	},
}

// Preset returns the tweaks of a named preset.
func Preset(name string) ([]entity.StyleTweak, bool) {
	build, ok := presets[name]
	if !ok {
		return nil, false
	}
	return build(), true
}

// PresetNames lists the known presets.
func PresetNames() []string {
	return []string{PresetFlattenPage, PresetSquareCorners, PresetCompactSpacing}
}
