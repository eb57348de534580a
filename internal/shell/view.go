package shell

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/chatdeck/internal/application/port"
	"github.com/bnema/chatdeck/internal/application/usecase"
	"github.com/bnema/chatdeck/internal/domain/autostyle"
	"github.com/bnema/chatdeck/internal/domain/entity"
	"github.com/bnema/chatdeck/internal/logging"
)

// view is one opened site.
type view struct {
	site       entity.Site
	engine     engine
	page       port.WebSurface
	attachment *usecase.Attachment

	mu         sync.Mutex
	window     styleWindow
	style      *autostyle.Handle
	cancelLoad func()
	closed     bool
}

func (s *Shell) openView(ctx context.Context, eng engine, site entity.Site) (*view, error) {
	ctx = logging.With(ctx, map[string]any{"site": site.ID})

	page, err := eng.OpenSite(ctx, site)
	if err != nil {
		return nil, err
	}

	v := &view{site: site, engine: eng, page: page}
	v.attachment = s.injector.Attach(ctx, page)

	if site.AutoUnify {
		v.cancelLoad = page.OnLoadFinished(func() {
			go s.restyle(ctx, v)
		})
	}
	page.OnDestroyed(v.close)

	s.mu.Lock()
	s.views = append(s.views, v)
	s.mu.Unlock()

	logging.FromContext(ctx).Info().Str("url", site.URL).Bool("auto_unify", site.AutoUnify).Msg("site opened")
	return v, nil
}

// restyle installs the standalone styler on the freshly loaded document,
// replacing the previous installation.
func (s *Shell) restyle(ctx context.Context, v *view) {
	log := logging.FromContext(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.teardownStyleLocked()

	win, err := v.engine.StyleWindow(ctx, v.page)
	if errors.Is(err, ErrStylingUnsupported) {
		log.Debug().Str("engine", v.engine.Name()).Msg("auto styling skipped")
		return
	}
	if err != nil {
		log.Warn().Err(err).Msg("auto styling failed")
		return
	}
	handle, err := autostyle.Install(ctx, win, AutoStyleOptions(s.mgr.Get().Unify.AutoStyle))
	if err != nil {
		_ = win.Close()
		log.Warn().Err(err).Msg("auto styling failed")
		return
	}
	v.window, v.style = win, handle
	log.Debug().Int("tweaks", len(handle.Tweaks())).Msg("auto styling installed")
}

func (v *view) teardownStyleLocked() {
	if v.style != nil {
		v.style.Cleanup()
		v.style = nil
	}
	if v.window != nil {
		_ = v.window.Close()
		v.window = nil
	}
}

func (v *view) close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.closed = true
	if v.cancelLoad != nil {
		v.cancelLoad()
	}
	v.teardownStyleLocked()
	v.attachment.Detach()
}
