// Package rules supplies the unification rule table: built-in rules, the
// user's rules.toml and per-host overrides from the database.
package rules

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/bnema/chatdeck/internal/domain/entity"
)

//go:embed defaults.json
var defaultsJSON []byte

var (
	defaultsOnce  sync.Once
	defaultsTable entity.RuleTable
	defaultsErr   error
)

// Defaults returns a copy of the built-in rule table.
func Defaults() (entity.RuleTable, error) {
	defaultsOnce.Do(func() {
		var table entity.RuleTable
		if err := json.Unmarshal(defaultsJSON, &table); err != nil {
			defaultsErr = fmt.Errorf("failed to parse built-in rules: %w", err)
			return
		}
		defaultsTable = table.Normalized()
	})
	if defaultsErr != nil {
		return nil, defaultsErr
	}
	return defaultsTable.Clone(), nil
}
