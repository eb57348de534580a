package autostyle

import (
	"fmt"
	"strings"
)

const maxSelectorDepth = 6

// UniqueSelector builds a best-effort unique selector for el by walking up
// its ancestors. The walk stops at an element with an id, after
// maxSelectorDepth steps, or at the root.
func UniqueSelector(el Element) string {
	steps := make([]string, 0, maxSelectorDepth)
	for cur, depth := el, 0; cur != nil && depth < maxSelectorDepth; depth++ {
		if id := cur.ID(); id != "" {
			steps = append(steps, "#"+EscapeIdent(id))
			break
		}

		tag := strings.ToLower(cur.TagName())
		parent := cur.Parent()
		if parent == nil {
			steps = append(steps, tag)
			break
		}

		index, total := 0, 0
		for _, sib := range parent.Children() {
			if !strings.EqualFold(sib.TagName(), tag) {
				continue
			}
			total++
			if sib.Key() == cur.Key() {
				index = total
			}
		}
		if total > 1 && index > 0 {
			tag = fmt.Sprintf("%s:nth-of-type(%d)", tag, index)
		}
		steps = append(steps, tag)
		cur = parent
	}

	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return strings.Join(steps, " > ")
}

// EscapeIdent escapes a string for use as a CSS identifier, following
// CSS.escape.
func EscapeIdent(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == 0:
			b.WriteString("\uFFFD")
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, "\\%x ", r)
		case i == 0 && r >= '0' && r <= '9':
			fmt.Fprintf(&b, "\\%x ", r)
		case i == 1 && r >= '0' && r <= '9' && s[0] == '-':
			fmt.Fprintf(&b, "\\%x ", r)
		case i == 0 && r == '-' && len(s) == 1:
			b.WriteString("\\-")
		case r >= 0x80, r == '-', r == '_',
			r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SplitSelectorList splits a selector list on top-level commas, leaving
// commas inside parentheses, brackets and strings alone.
func SplitSelectorList(list string) []string {
	var (
		out   []string
		depth int
		quote rune
		start int
	)
	for i, r := range list {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(' || r == '[':
			depth++
		case r == ')' || r == ']':
			if depth > 0 {
				depth--
			}
		case r == ',' && depth == 0:
			if part := strings.TrimSpace(list[start:i]); part != "" {
				out = append(out, part)
			}
			start = i + 1
		}
	}
	if part := strings.TrimSpace(list[start:]); part != "" {
		out = append(out, part)
	}
	return out
}
