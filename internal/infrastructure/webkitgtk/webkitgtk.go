// Package webkitgtk hosts chat sites in native GTK 4 windows with
// WebKitGTK 6 and exposes them as web surfaces.
//
// The engine needs cgo and the webkitgtk-6.0 development files, so it is
// only compiled with the webkitgtk build tag:
//
//	go build -tags webkitgtk ./cmd/chatdeck
//
// Without the tag Start returns ErrUnavailable.
package webkitgtk

import (
	"errors"
	"path/filepath"
)

var (
	// ErrUnavailable is returned by Start in builds without WebKitGTK.
	ErrUnavailable = errors.New("webkitgtk engine not compiled in, rebuild with -tags webkitgtk")
	// ErrNoDisplay is returned when GTK cannot connect to a display.
	ErrNoDisplay = errors.New("gtk could not open a display")
	// ErrEngineClosed is returned when opening a site on a closed engine.
	ErrEngineClosed = errors.New("webkitgtk engine closed")
	// ErrViewDestroyed is returned by operations on a destroyed view.
	ErrViewDestroyed = errors.New("web view destroyed")
)

// dataDirs returns the website data and cache directories under root.
func dataDirs(root string) (data, cache string) {
	if root == "" {
		return "", ""
	}
	return filepath.Join(root, "data"), filepath.Join(root, "cache")
}

// inPageNavigation reports whether a URI change that happened outside a
// load is a same-document navigation (pushState, fragment change).
func inPageNavigation(loading bool, prev, next string) bool {
	return !loading && prev != "" && prev != next
}
