// Package port defines application-layer interfaces for external capabilities.
// Ports keep the use cases independent of the browser engine, the OS theme
// source, storage and the upstream LLM API.
package port

import (
	"context"
	"errors"
)

// ErrSurfaceNavigating wraps script failures caused by the page navigating
// away mid-call. The next load event re-runs the injection.
var ErrSurfaceNavigating = errors.New("surface is navigating")

// WebSurface is one embedded web content view.
type WebSurface interface {
	// ID identifies the surface in logs.
	ID() string
	// URL returns the current page URL.
	URL() string

	// EvaluateScript runs js in the page's main world and waits for completion.
	EvaluateScript(ctx context.Context, js string) error
	// InsertStyleSheet adds a user stylesheet to the current page.
	InsertStyleSheet(ctx context.Context, css string) error

	// OnLoadFinished subscribes to "frame finished loading".
	OnLoadFinished(fn func()) (cancel func())
	// OnNavigatedInPage subscribes to same-document navigations.
	OnNavigatedInPage(fn func()) (cancel func())
	// OnDestroyed subscribes to surface destruction.
	OnDestroyed(fn func()) (cancel func())
}
