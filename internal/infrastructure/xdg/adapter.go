// Package xdg lists the on-disk locations owned by chatdeck.
package xdg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bnema/chatdeck/internal/infrastructure/config"
)

// Location is one directory or file chatdeck writes to.
type Location struct {
	Name   string
	Path   string
	Exists bool
	Size   int64
}

// Adapter resolves chatdeck locations from the XDG base directories and the
// loaded configuration.
type Adapter struct {
	dirs func() (*config.XDGDirs, error)
}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{dirs: config.GetXDGDirs}
}

// Locations returns every location in removal order: data that depends on
// other entries comes first. Paths set in cfg outside the XDG tree are listed
// separately.
func (a *Adapter) Locations(cfg *config.Config) ([]Location, error) {
	dirs, err := a.dirs()
	if err != nil {
		return nil, fmt.Errorf("resolve xdg directories: %w", err)
	}

	paths := []Location{
		{Name: "database", Path: cfg.Database.Path},
		{Name: "browser profile", Path: cfg.Browser.UserDataDir},
		{Name: "cache", Path: dirs.CacheHome},
		{Name: "state", Path: dirs.StateHome},
		{Name: "data", Path: dirs.DataHome},
		{Name: "config", Path: dirs.ConfigHome},
	}

	seen := make(map[string]bool, len(paths))
	out := make([]Location, 0, len(paths))
	for _, loc := range paths {
		if loc.Path == "" {
			continue
		}
		loc.Path = filepath.Clean(loc.Path)
		if seen[loc.Path] {
			continue
		}
		seen[loc.Path] = true

		loc.Size, loc.Exists = diskUsage(loc.Path)
		out = append(out, loc)
	}
	return out, nil
}

// Remove deletes loc. Missing locations are not an error.
func (a *Adapter) Remove(loc Location) error {
	if err := os.RemoveAll(loc.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s (%s): %w", loc.Name, loc.Path, err)
	}
	return nil
}

func diskUsage(path string) (int64, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, false
	}
	if !info.IsDir() {
		return info.Size(), true
	}

	var total int64
	_ = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			if fi, infoErr := d.Info(); infoErr == nil {
				total += fi.Size()
			}
		}
		return nil
	})
	return total, true
}
