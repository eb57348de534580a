//go:build !webkitgtk

package webkitgtk

import (
	"context"

	"github.com/bnema/chatdeck/internal/application/port"
	"github.com/bnema/chatdeck/internal/domain/entity"
	"github.com/bnema/chatdeck/internal/infrastructure/config"
)

// Engine is unavailable in this build.
type Engine struct{}

// Start always fails with ErrUnavailable.
func Start(context.Context, config.BrowserConfig) (*Engine, error) {
	return nil, ErrUnavailable
}

func (*Engine) OpenSite(context.Context, entity.Site) (port.WebSurface, error) {
	return nil, ErrUnavailable
}

func (*Engine) Close() error { return nil }
