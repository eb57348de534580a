package entity

import (
	"sort"
	"strconv"
	"strings"
)

// Declaration is one CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Declarations maps CSS property names to values.
type Declarations map[string]string

// Sorted returns the declarations ordered by property name.
func (d Declarations) Sorted() []Declaration {
	out := make([]Declaration, 0, len(d))
	for p, v := range d {
		out = append(out, Declaration{Property: p, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Property < out[j].Property })
	return out
}

// StyleTweak forces a set of declarations on every element matching Selector.
type StyleTweak struct {
	Selector  string       `json:"selector"`
	Styles    Declarations `json:"styles"`
	Important bool         `json:"important,omitempty"`
	// PseudoCleanup also blanks ::before and ::after on the selector.
	PseudoCleanup bool `json:"pseudoCleanup,omitempty"`
}

// Signature identifies a tweak for de-duplication: two tweaks with the same
// selector, styles, importance and pseudo cleanup share a signature.
func (t StyleTweak) Signature() string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(t.Selector))
	b.WriteByte('|')
	for _, d := range t.Styles.Sorted() {
		b.WriteString(d.Property)
		b.WriteByte(':')
		b.WriteString(d.Value)
		b.WriteByte(';')
	}
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(t.Important))
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(t.PseudoCleanup))
	return b.String()
}

// Priority returns the CSSOM priority string for the tweak.
func (t StyleTweak) Priority() string {
	if t.Important {
		return "important"
	}
	return ""
}
