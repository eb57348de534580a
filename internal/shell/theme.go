package shell

import (
	"context"

	"github.com/bnema/chatdeck/internal/infrastructure/colorscheme"
	"github.com/bnema/chatdeck/internal/infrastructure/config"
	"github.com/bnema/chatdeck/internal/logging"
)

// themeStack is the resolver plus the portal connection feeding it.
type themeStack struct {
	resolver *colorscheme.Resolver
	portal   *colorscheme.PortalDetector
}

// newThemeStack resolves the initial preference and refreshes it on portal
// signals and config reloads.
func newThemeStack(ctx context.Context, mgr *config.Manager) *themeStack {
	log := logging.FromContext(ctx)

	resolver := colorscheme.NewResolver(colorscheme.NewConfigAdapter(mgr))
	portal := colorscheme.NewPortalDetector(ctx)
	resolver.RegisterDetector(portal)
	resolver.RegisterDetector(colorscheme.NewGsettingsDetector())
	resolver.RegisterDetector(colorscheme.NewEnvDetector())

	pref := resolver.Resolve()
	log.Debug().Bool("dark", pref.PrefersDark).Str("source", pref.Source).Msg("color scheme resolved")

	portal.Watch(ctx, func() { resolver.Refresh() })
	mgr.OnConfigChange(func(*config.Config) { resolver.Refresh() })

	return &themeStack{resolver: resolver, portal: portal}
}

func (t *themeStack) Close() error {
	return t.portal.Close()
}
