package rules

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bnema/chatdeck/internal/application/port"
	"github.com/bnema/chatdeck/internal/domain/entity"
	"github.com/bnema/chatdeck/internal/domain/repository"
	"github.com/bnema/chatdeck/internal/logging"
)

// Store combines the built-in rules, the user rules file and the per-host
// overrides into the table seen by the injector.
type Store struct {
	defaults  entity.RuleTable
	rulesFile string
	overrides repository.SiteOverrideRepository

	mu        sync.Mutex
	userTable entity.RuleTable
	userMod   time.Time
	userSize  int64
}

var _ port.RuleSource = (*Store)(nil)

// NewStore creates a store. rulesFile and overrides are both optional.
func NewStore(rulesFile string, overrides repository.SiteOverrideRepository) (*Store, error) {
	defaults, err := Defaults()
	if err != nil {
		return nil, err
	}
	return &Store{
		defaults:  defaults,
		rulesFile: rulesFile,
		overrides: overrides,
	}, nil
}

// Table returns the current rule table. The rules file is re-read when it
// changed on disk and overrides are fetched on every call.
func (s *Store) Table(ctx context.Context) (entity.RuleTable, error) {
	table, err := s.Static(ctx)
	if err != nil {
		return nil, err
	}
	if s.overrides == nil {
		return table, nil
	}

	overrides, err := s.overrides.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list site overrides: %w", err)
	}
	for _, o := range overrides {
		if o == nil || o.Host == entity.WildcardHost {
			continue
		}
		host := entity.NormalizeHost(o.Host)
		table[host] = table[host].WithOverride(o)
	}
	return table, nil
}

// Static returns built-in rules with the user file applied, without overrides.
func (s *Store) Static(ctx context.Context) (entity.RuleTable, error) {
	user, err := s.userRules(ctx)
	if err != nil {
		return nil, err
	}
	table := s.defaults.Clone()
	for host, rule := range user {
		table[host] = rule
	}
	return table, nil
}

func (s *Store) userRules(ctx context.Context) (entity.RuleTable, error) {
	if s.rulesFile == "" {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	info, err := os.Stat(s.rulesFile)
	if errors.Is(err, os.ErrNotExist) {
		s.userTable, s.userMod, s.userSize = nil, time.Time{}, 0
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat rules file: %w", err)
	}
	if s.userTable != nil && info.ModTime().Equal(s.userMod) && info.Size() == s.userSize {
		return s.userTable, nil
	}

	table, err := LoadFile(s.rulesFile)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debug().
		Str("component", "rules").
		Str("file", s.rulesFile).
		Int("hosts", len(table)).
		Msg("loaded user rules")

	s.userTable, s.userMod, s.userSize = table, info.ModTime(), info.Size()
	return table, nil
}
