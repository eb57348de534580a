package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FlagBaselineCSS enables the baseline reset layer at the top of the unify stylesheet.
const FlagBaselineCSS = "baselineCss"

// SelectorList is a list of CSS selectors.
// In rule files it may be written either as an array or as one comma-separated string.
type SelectorList []string

// ParseSelectorList splits a comma-separated selector string, trimming
// whitespace and dropping empty members.
func ParseSelectorList(raw string) SelectorList {
	parts := strings.Split(raw, ",")
	out := make(SelectorList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Normalized returns the trimmed, non-empty selectors.
func (l SelectorList) Normalized() []string {
	out := make([]string, 0, len(l))
	for _, s := range l {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// UnmarshalJSON accepts a string or an array of strings.
func (l *SelectorList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("selector list: %w", err)
		}
		*l = ParseSelectorList(raw)
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("selector list: %w", err)
	}
	*l = items
	return nil
}

// TextList holds CSS fragments. A single string is one fragment.
type TextList []string

// UnmarshalJSON accepts a string or an array of strings.
func (t *TextList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("text list: %w", err)
		}
		*t = TextList{raw}
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("text list: %w", err)
	}
	*t = items
	return nil
}

// NonEmpty returns the fragments that are not blank.
func (t TextList) NonEmpty() []string {
	out := make([]string, 0, len(t))
	for _, s := range t {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// ClassTweak adds and removes classes on every element matching Selector.
type ClassTweak struct {
	Selector string   `json:"selector"`
	Add      []string `json:"add,omitempty"`
	Remove   []string `json:"remove,omitempty"`
}

// UnifyRule is the unification rule for one host, or for every host when
// stored under the wildcard key.
type UnifyRule struct {
	Hide        SelectorList      `json:"hide,omitempty"`
	CSSVars     map[string]string `json:"cssVars,omitempty"`
	Vars        map[string]string `json:"vars,omitempty"`
	CSS         TextList          `json:"css,omitempty"`
	ExtraCSS    TextList          `json:"extraCSS,omitempty"`
	JS          string            `json:"js,omitempty"`
	Flags       map[string]bool   `json:"flags,omitempty"`
	ClassTweaks []ClassTweak      `json:"classTweaks,omitempty"`
	StyleTweaks []StyleTweak      `json:"styleTweaks,omitempty"`

	// User overrides. Only honoured on host rules.
	UserCSS     string `json:"userCss,omitempty"`
	UserJS      string `json:"userJs,omitempty"`
	UserEnabled bool   `json:"userEnabled,omitempty"`
}

// Variables returns CSSVars when set, Vars otherwise.
func (r UnifyRule) Variables() map[string]string {
	if r.CSSVars != nil {
		return r.CSSVars
	}
	return r.Vars
}

// StyleText returns the rule's extraCSS fragments followed by its css fragments,
// newline-joined.
func (r UnifyRule) StyleText() string {
	parts := append(r.ExtraCSS.NonEmpty(), r.CSS.NonEmpty()...)
	return strings.Join(parts, "\n")
}

// WithOverride returns a copy of the rule carrying the override's user CSS/JS.
func (r UnifyRule) WithOverride(o *SiteOverride) UnifyRule {
	if o == nil {
		return r
	}
	r.UserCSS = o.UserCSS
	r.UserJS = o.UserJS
	r.UserEnabled = o.Enabled
	return r
}
