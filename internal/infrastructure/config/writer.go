package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const fileHeader = `# chatdeck configuration.
# Run "chatdeck config schema" for the JSON schema of this file.
`

// sectionRank orders the top-level tables of the written file. Global
// settings come first, the site list last so it is easy to find and extend.
// Tables missing here sort alphabetically between the two.
var sectionRank = map[string]int{
	"database":   0,
	"logging":    1,
	"appearance": 2,
	"browser":    3,
	"relay":      4,
	"unify":      5,
	"sites":      100,
}

const unrankedSection = 50

// WriteConfigOrdered writes cfg to path in the layout produced by
// orderSections. The file is replaced atomically so the config watcher
// never reads a partial write.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	content := fileHeader + "\n" + orderSections(buf.String())

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.toml")
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Table headers, optionally indented, including [[array]] tables.
var tableHeader = regexp.MustCompile(`^(\s*)\[\[?([^\]]+)\]\]?\s*$`)

type tomlGroup struct {
	root  string
	lines []string
}

// orderSections groups encoded TOML by top-level table and reorders the
// groups by sectionRank. Everything under one root, subtables and each
// [[sites]] entry included, keeps its encoded order.
func orderSections(content string) string {
	var preamble []string
	var groups []*tomlGroup
	byRoot := map[string]*tomlGroup{}
	var current *tomlGroup

	for _, line := range strings.Split(content, "\n") {
		match := tableHeader.FindStringSubmatch(line)
		if match == nil {
			if current == nil {
				preamble = append(preamble, line)
			} else {
				current.lines = append(current.lines, line)
			}
			continue
		}

		root, _, _ := strings.Cut(strings.TrimSpace(match[2]), ".")
		g, ok := byRoot[root]
		if !ok {
			g = &tomlGroup{root: root}
			byRoot[root] = g
			groups = append(groups, g)
		}
		current = g
		current.lines = append(current.lines, line)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		ri, rj := rankOf(groups[i].root), rankOf(groups[j].root)
		if ri != rj {
			return ri < rj
		}
		if ri == unrankedSection {
			return groups[i].root < groups[j].root
		}
		return false
	})

	var out []string
	if p := trimBlank(preamble); len(p) > 0 {
		out = append(out, p...)
	}
	for _, g := range groups {
		if len(out) > 0 {
			out = append(out, "")
		}
		out = append(out, trimBlank(g.lines)...)
	}

	result := strings.Join(out, "\n")
	if result != "" {
		result += "\n"
	}
	return result
}

func rankOf(root string) int {
	if r, ok := sectionRank[root]; ok {
		return r
	}
	return unrankedSection
}

func trimBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	return lines
}
