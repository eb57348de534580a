package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/chatdeck/internal/application/port"
	"github.com/bnema/chatdeck/internal/domain/autostyle"
	"github.com/bnema/chatdeck/internal/domain/entity"
	"github.com/bnema/chatdeck/internal/infrastructure/cdp"
	"github.com/bnema/chatdeck/internal/infrastructure/config"
	"github.com/bnema/chatdeck/internal/infrastructure/webkitgtk"
)

// ErrStylingUnsupported is returned by engines that cannot host the
// standalone styler.
var ErrStylingUnsupported = errors.New("auto styling needs the chromium engine")

// engine hosts the chat views.
type engine interface {
	Name() string
	OpenSite(ctx context.Context, site entity.Site) (port.WebSurface, error)
	// StyleWindow returns a DOM window over surface for the standalone styler.
	StyleWindow(ctx context.Context, surface port.WebSurface) (styleWindow, error)
	Close() error
}

type styleWindow interface {
	autostyle.Window
	Close() error
}

// startEngine starts the engine named by cfg.Engine.
func startEngine(ctx context.Context, cfg config.BrowserConfig) (engine, error) {
	switch cfg.Engine {
	case config.EngineWebKitGTK:
		e, err := webkitgtk.Start(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return webkitEngine{e}, nil
	case config.EngineChromium, "":
		b, err := cdp.Start(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return chromiumEngine{b}, nil
	default:
		return nil, fmt.Errorf("unknown engine %q", cfg.Engine)
	}
}

type chromiumEngine struct{ b *cdp.Browser }

func (chromiumEngine) Name() string { return config.EngineChromium }

func (e chromiumEngine) OpenSite(ctx context.Context, site entity.Site) (port.WebSurface, error) {
	page, err := e.b.OpenSite(ctx, site)
	if err != nil {
		return nil, err
	}
	return page, nil
}

func (chromiumEngine) StyleWindow(ctx context.Context, surface port.WebSurface) (styleWindow, error) {
	page, ok := surface.(*cdp.Page)
	if !ok {
		return nil, fmt.Errorf("surface %s is not a chromium page", surface.ID())
	}
	return cdp.NewWindow(ctx, page), nil
}

func (e chromiumEngine) Close() error { return e.b.Close() }

type webkitEngine struct{ e *webkitgtk.Engine }

func (webkitEngine) Name() string { return config.EngineWebKitGTK }

func (w webkitEngine) OpenSite(ctx context.Context, site entity.Site) (port.WebSurface, error) {
	return w.e.OpenSite(ctx, site)
}

func (webkitEngine) StyleWindow(context.Context, port.WebSurface) (styleWindow, error) {
	return nil, ErrStylingUnsupported
}

func (w webkitEngine) Close() error { return w.e.Close() }
