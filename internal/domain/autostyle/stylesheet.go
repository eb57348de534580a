package autostyle

import (
	"strings"

	"github.com/samber/lo"

	"github.com/bnema/chatdeck/internal/domain/entity"
)

var pseudoCleanupDecls = []entity.Declaration{
	{Property: "content", Value: "none"},
	{Property: "background", Value: "none"},
	{Property: "box-shadow", Value: "none"},
	{Property: "mask", Value: "none"},
	{Property: "filter", Value: "none"},
}

// AssembleTweaks concatenates preset, explicit and auto tweaks in that order
// and drops later tweaks whose signature was already seen.
func AssembleTweaks(preset, explicit, auto []entity.StyleTweak) []entity.StyleTweak {
	all := make([]entity.StyleTweak, 0, len(preset)+len(explicit)+len(auto))
	all = append(all, preset...)
	all = append(all, explicit...)
	all = append(all, auto...)
	return lo.UniqBy(all, func(t entity.StyleTweak) string { return t.Signature() })
}

// BuildStyleSheet renders one rule block per tweak, plus a ::before/::after
// cleanup rule for tweaks that ask for it.
func BuildStyleSheet(tweaks []entity.StyleTweak) string {
	var b strings.Builder
	for _, t := range tweaks {
		sel := strings.TrimSpace(t.Selector)
		if sel == "" {
			continue
		}
		if len(t.Styles) > 0 {
			writeRule(&b, sel, t.Styles.Sorted(), t.Important)
		}
		if t.PseudoCleanup {
			writeRule(&b, pseudoSelectors(sel), pseudoCleanupDecls, true)
		}
	}
	return b.String()
}

func writeRule(b *strings.Builder, selector string, decls []entity.Declaration, important bool) {
	b.WriteString(selector)
	b.WriteString(" {")
	for _, d := range decls {
		b.WriteByte(' ')
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		if important {
			b.WriteString(" !important")
		}
		b.WriteByte(';')
	}
	b.WriteString(" }\n")
}

func pseudoSelectors(selector string) string {
	members := SplitSelectorList(selector)
	out := make([]string, 0, len(members)*2)
	for _, m := range members {
		out = append(out, m+"::before", m+"::after")
	}
	return strings.Join(out, ", ")
}
