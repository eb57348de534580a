package memdom

import (
	"strings"
)

type declaration struct {
	prop     string
	value    string
	priority string
}

// defaultComputed holds the values a browser reports for an unstyled block.
var defaultComputed = map[string]string{
	"display":                    "block",
	"background-image":           "none",
	"background-color":           "rgba(0, 0, 0, 0)",
	"border-top-left-radius":     "0px",
	"border-top-right-radius":    "0px",
	"border-bottom-right-radius": "0px",
	"border-bottom-left-radius":  "0px",
	"margin-top":                 "0px",
	"margin-right":               "0px",
	"margin-bottom":              "0px",
	"margin-left":                "0px",
	"padding-top":                "0px",
	"padding-right":              "0px",
	"padding-bottom":             "0px",
	"padding-left":               "0px",
}

var (
	sides   = []string{"top", "right", "bottom", "left"}
	corners = []string{"top-left", "top-right", "bottom-right", "bottom-left"}
)

// parseStyle splits a style attribute into declarations.
func parseStyle(s string) []declaration {
	var out []declaration
	for _, chunk := range splitTopLevel(s, ';') {
		colon := strings.IndexByte(chunk, ':')
		if colon < 0 {
			continue
		}
		prop := strings.ToLower(strings.TrimSpace(chunk[:colon]))
		value := strings.TrimSpace(chunk[colon+1:])
		if prop == "" {
			continue
		}
		priority := ""
		if idx := strings.LastIndex(strings.ToLower(value), "!important"); idx >= 0 {
			priority = "important"
			value = strings.TrimSpace(value[:idx])
		}
		out = append(out, declaration{prop: prop, value: value, priority: priority})
	}
	return out
}

func serializeStyle(decls []declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		v := d.prop + ": " + d.value
		if d.priority == "important" {
			v += " !important"
		}
		parts = append(parts, v+";")
	}
	return strings.Join(parts, " ")
}

// computeStyle resolves inline declarations over the defaults, expanding
// the margin, padding, border-radius and background shorthands.
// Important declarations beat later normal ones.
func computeStyle(decls []declaration) map[string]string {
	out := make(map[string]string, len(defaultComputed))
	for k, v := range defaultComputed {
		out[k] = v
	}
	important := map[string]bool{}

	set := func(prop, value string, isImportant bool) {
		if important[prop] && !isImportant {
			return
		}
		out[prop] = value
		if isImportant {
			important[prop] = true
		}
	}

	for _, d := range decls {
		imp := d.priority == "important"
		switch d.prop {
		case "margin", "padding":
			for i, v := range boxValues(d.value) {
				set(d.prop+"-"+sides[i], v, imp)
			}
		case "border-radius":
			radius := d.value
			if slash := strings.IndexByte(radius, '/'); slash >= 0 {
				radius = radius[:slash]
			}
			for i, v := range boxValues(radius) {
				set("border-"+corners[i]+"-radius", v, imp)
			}
		case "background":
			img, color := splitBackground(d.value)
			set("background-image", img, imp)
			set("background-color", color, imp)
		default:
			set(d.prop, d.value, imp)
		}
	}
	return out
}

// boxValues expands 1-4 values in top/right/bottom/left order.
func boxValues(v string) []string {
	f := strings.Fields(v)
	switch len(f) {
	case 1:
		return []string{f[0], f[0], f[0], f[0]}
	case 2:
		return []string{f[0], f[1], f[0], f[1]}
	case 3:
		return []string{f[0], f[1], f[2], f[1]}
	case 4:
		return f
	default:
		return nil
	}
}

func splitBackground(v string) (image, color string) {
	image, color = "none", "rgba(0, 0, 0, 0)"
	lower := strings.ToLower(strings.TrimSpace(v))
	if lower == "" || lower == "none" {
		return image, color
	}
	if strings.Contains(lower, "url(") || strings.Contains(lower, "gradient(") {
		return strings.TrimSpace(v), color
	}
	return image, strings.TrimSpace(v)
}

// splitTopLevel splits on sep outside parentheses and quotes.
func splitTopLevel(s string, sep byte) []string {
	var (
		out   []string
		depth int
		quote byte
		start int
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case c == sep && depth == 0:
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}
