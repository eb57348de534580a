package unify

import (
	"sort"
	"strings"

	"github.com/bnema/chatdeck/internal/domain/entity"
)

// baselineCSS is the reset layer emitted when the baselineCss flag is set.
const baselineCSS = `*,*::before,*::after{box-sizing:border-box}
html,body{margin:0;padding:0;min-height:100%}
:root[data-theme="dark"]{color-scheme:dark}
:root[data-theme="light"]{color-scheme:light}`

// BuildCSS renders the unify stylesheet for cfg.
// Parts are emitted in cascade order and empty parts are skipped.
func BuildCSS(cfg entity.MergedConfig) string {
	parts := []string{}
	if cfg.Flag(entity.FlagBaselineCSS) {
		parts = append(parts, baselineCSS)
	}
	parts = append(parts,
		varsBlock(cfg.CSSVars),
		hideBlock(cfg.HideSelectors),
		cfg.CSS,
	)
	if cfg.UserEnabled {
		parts = append(parts, cfg.UserCSS)
	}
	parts = append(parts,
		classTweakPlaceholders(cfg.ClassTweaks),
		StyleTweakRules(cfg.StyleTweaks),
	)
	return joinNonEmpty("\n", trimAll(parts)...)
}

func varsBlock(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root{")
	for _, k := range keys {
		name := strings.TrimSpace(k)
		if name == "" {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(vars[k])
		b.WriteByte(';')
	}
	b.WriteByte('}')
	return b.String()
}

func hideBlock(selectors []string) string {
	lines := make([]string, 0, len(selectors))
	for _, sel := range selectors {
		lines = append(lines, sel+"{display:none!important}")
	}
	return strings.Join(lines, "\n")
}

// classTweakPlaceholders marks where class tweaks apply; the classes
// themselves are toggled by the script bundle.
func classTweakPlaceholders(tweaks []entity.ClassTweak) string {
	lines := make([]string, 0, len(tweaks))
	for _, t := range tweaks {
		sel := strings.TrimSpace(t.Selector)
		if sel == "" {
			continue
		}
		lines = append(lines, "/* classTweak "+strings.ReplaceAll(sel, "*/", "* /")+" */")
	}
	return strings.Join(lines, "\n")
}

// StyleTweakRules renders one rule block per tweak with declarations in
// property order. Tweaks without a selector or styles are skipped.
func StyleTweakRules(tweaks []entity.StyleTweak) string {
	lines := make([]string, 0, len(tweaks))
	for _, t := range tweaks {
		sel := strings.TrimSpace(t.Selector)
		if sel == "" || len(t.Styles) == 0 {
			continue
		}
		lines = append(lines, sel+"{"+declarationText(t.Styles.Sorted(), t.Important, ";")+"}")
	}
	return strings.Join(lines, "\n")
}

func declarationText(decls []entity.Declaration, important bool, sep string) string {
	out := make([]string, 0, len(decls))
	for _, d := range decls {
		v := d.Property + ":" + d.Value
		if important {
			v += " !important"
		}
		out = append(out, v)
	}
	return strings.Join(out, sep)
}

func trimAll(parts []string) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}
