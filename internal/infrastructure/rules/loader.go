package rules

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/bnema/chatdeck/internal/domain/entity"
)

// LoadFile reads a user rule table from a TOML file. A missing file yields an
// empty table.
//
// The document is decoded generically and re-encoded as JSON so that the
// string-or-list fields share one decoding path with the built-in table.
func LoadFile(path string) (entity.RuleTable, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return entity.RuleTable{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a TOML rule table.
func Parse(data []byte) (entity.RuleTable, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("invalid rules at line %d column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode rules: %w", err)
	}
	table := entity.RuleTable{}
	if err := json.Unmarshal(encoded, &table); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	return table.Normalized(), nil
}
