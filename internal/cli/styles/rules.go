package styles

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/chatdeck/internal/domain/entity"
)

// RulesRenderer renders rule tables and merged configs.
type RulesRenderer struct {
	theme *Theme
}

// NewRulesRenderer creates a new rules renderer with the given theme.
func NewRulesRenderer(theme *Theme) *RulesRenderer {
	return &RulesRenderer{theme: theme}
}

// RenderTable lists every host of the table with a summary of its rule.
func (r *RulesRenderer) RenderTable(table entity.RuleTable) string {
	if len(table) == 0 {
		return RenderEmpty(r.theme, "rules")
	}

	hosts := make([]string, 0, len(table))
	for h := range table {
		hosts = append(hosts, h)
	}
	slices.Sort(hosts)

	rows := make([][]string, 0, len(hosts))
	for _, h := range hosts {
		rule := table[h]
		rows = append(rows, []string{
			h,
			fmt.Sprint(len(rule.Hide)),
			fmt.Sprint(len(rule.Variables())),
			yesNo(len(rule.CSS)+len(rule.ExtraCSS) > 0),
			yesNo(rule.JS != ""),
			fmt.Sprint(len(rule.ClassTweaks) + len(rule.StyleTweaks)),
			overrideState(rule),
		})
	}
	return RenderTable(r.theme, []Column{
		{Title: "Host", MaxWidth: 32},
		{Title: "Hide"},
		{Title: "Vars"},
		{Title: "CSS"},
		{Title: "JS"},
		{Title: "Tweaks"},
		{Title: "Override"},
	}, rows)
}

// RenderMerged renders the effective config for one URL.
func (r *RulesRenderer) RenderMerged(rawURL string, cfg entity.MergedConfig) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	key := r.theme.Subtitle
	var b strings.Builder

	host := cfg.Host
	if host == "" {
		host = "(unknown host)"
	}
	fmt.Fprintf(&b, "\n  %s %s %s\n\n", iconStyle.Render(IconGlobe), r.theme.Title.Render(host), r.theme.Subtle.Render(rawURL))

	line := func(label, value string) {
		fmt.Fprintf(&b, "  %s %s\n", key.Width(14).Render(label), r.theme.Normal.Render(value))
	}

	line("hide", fmt.Sprintf("%d selectors", len(cfg.HideSelectors)))
	for _, sel := range cfg.HideSelectors {
		fmt.Fprintf(&b, "  %s %s\n", strings.Repeat(" ", 14), r.theme.Subtle.Render(sel))
	}

	vars := make([]string, 0, len(cfg.CSSVars))
	for k := range cfg.CSSVars {
		vars = append(vars, k)
	}
	slices.Sort(vars)
	line("vars", fmt.Sprint(len(vars)))
	for _, k := range vars {
		fmt.Fprintf(&b, "  %s %s\n", strings.Repeat(" ", 14), r.theme.Subtle.Render(k+": "+cfg.CSSVars[k]))
	}

	flags := make([]string, 0, len(cfg.Flags))
	for k, on := range cfg.Flags {
		if on {
			flags = append(flags, k)
		}
	}
	slices.Sort(flags)
	line("flags", strings.Join(flags, ", "))
	line("css", fmt.Sprintf("%d bytes", len(cfg.CSS)))
	line("js", fmt.Sprintf("%d bytes", len(cfg.JS)))
	line("class tweaks", fmt.Sprint(len(cfg.ClassTweaks)))
	line("style tweaks", fmt.Sprint(len(cfg.StyleTweaks)))

	switch {
	case cfg.UserCSS == "" && cfg.UserJS == "":
		line("override", "none")
	case cfg.UserEnabled:
		line("override", r.theme.SuccessStyle.Render("enabled"))
	default:
		line("override", r.theme.WarningStyle.Render("disabled"))
	}
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "-"
}

func overrideState(rule entity.UnifyRule) string {
	switch {
	case rule.UserCSS == "" && rule.UserJS == "":
		return "-"
	case rule.UserEnabled:
		return "on"
	default:
		return "off"
	}
}
