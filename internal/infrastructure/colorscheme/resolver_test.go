package colorscheme

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chatdeck/internal/application/port"
	"github.com/bnema/chatdeck/internal/infrastructure/config"
)

type mockConfigProvider struct {
	mu     sync.Mutex
	scheme string
}

func (m *mockConfigProvider) GetColorScheme() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scheme
}

func (m *mockConfigProvider) set(s string) {
	m.mu.Lock()
	m.scheme = s
	m.mu.Unlock()
}

type mockDetector struct {
	mu          sync.Mutex
	name        string
	priority    int
	available   bool
	prefersDark bool
	detectOk    bool
}

func (m *mockDetector) Name() string    { return m.name }
func (m *mockDetector) Priority() int   { return m.priority }
func (m *mockDetector) Available() bool { return m.available }
func (m *mockDetector) Detect() (bool, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prefersDark, m.detectOk
}

func (m *mockDetector) setDark(dark bool) {
	m.mu.Lock()
	m.prefersDark = dark
	m.mu.Unlock()
}

func TestResolver_ConfigOverride(t *testing.T) {
	tests := []struct {
		configValue string
		wantDark    bool
	}{
		{"prefer-dark", true},
		{"dark", true},
		{"prefer-light", false},
		{"Light", false},
	}

	for _, tt := range tests {
		t.Run(tt.configValue, func(t *testing.T) {
			resolver := NewResolver(&mockConfigProvider{scheme: tt.configValue})
			resolver.RegisterDetector(&mockDetector{name: "x", priority: 100, available: true, prefersDark: !tt.wantDark, detectOk: true})

			pref := resolver.Resolve()

			assert.Equal(t, tt.wantDark, pref.PrefersDark)
			assert.Equal(t, "config", pref.Source)
		})
	}
}

func TestResolver_DetectorPriority(t *testing.T) {
	resolver := NewResolver(&mockConfigProvider{scheme: "default"})
	resolver.RegisterDetector(&mockDetector{name: "low", priority: 10, available: true, prefersDark: true, detectOk: true})
	resolver.RegisterDetector(&mockDetector{name: "off", priority: 200, available: false, prefersDark: true, detectOk: true})
	resolver.RegisterDetector(&mockDetector{name: "unsure", priority: 150, available: true, detectOk: false})
	resolver.RegisterDetector(&mockDetector{name: "high", priority: 100, available: true, prefersDark: false, detectOk: true})

	pref := resolver.Resolve()

	assert.False(t, pref.PrefersDark)
	assert.Equal(t, "high", pref.Source)
}

func TestResolver_FallbackIsDark(t *testing.T) {
	resolver := NewResolver(nil)

	pref := resolver.Resolve()

	assert.True(t, pref.PrefersDark)
	assert.Equal(t, "fallback", pref.Source)
	assert.True(t, resolver.PrefersDark())
}

func TestResolver_RefreshNotifiesOnlyOnChange(t *testing.T) {
	cfg := &mockConfigProvider{scheme: "default"}
	detector := &mockDetector{name: "d", priority: 10, available: true, prefersDark: false, detectOk: true}
	resolver := NewResolver(cfg)
	resolver.RegisterDetector(detector)

	var got []bool
	var full []port.ColorSchemePreference
	unregister := resolver.OnChange(func(dark bool) { got = append(got, dark) })
	resolver.Subscribe(func(p port.ColorSchemePreference) { full = append(full, p) })

	// First evaluation establishes the baseline.
	assert.False(t, resolver.PrefersDark())
	resolver.Refresh()
	assert.Empty(t, got)

	detector.setDark(true)
	resolver.Refresh()
	require.Equal(t, []bool{true}, got)
	assert.Equal(t, "d", full[0].Source)

	cfg.set("prefer-light")
	resolver.Refresh()
	assert.Equal(t, []bool{true, false}, got)
	assert.Equal(t, "config", full[1].Source)

	unregister()
	cfg.set("prefer-dark")
	resolver.Refresh()
	assert.Len(t, got, 2)
	assert.Len(t, full, 3)
}

func TestResolver_CallbackMayReenter(t *testing.T) {
	detector := &mockDetector{name: "d", priority: 10, available: true, detectOk: true}
	resolver := NewResolver(nil)
	resolver.RegisterDetector(detector)
	resolver.Refresh()

	var seen port.ColorSchemePreference
	resolver.Subscribe(func(port.ColorSchemePreference) { seen = resolver.Resolve() })

	detector.setDark(true)
	resolver.Refresh()

	assert.True(t, seen.PrefersDark)
}

type staticConfig struct{ cfg *config.Config }

func (s staticConfig) Get() *config.Config { return s.cfg }

func TestConfigAdapter(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Appearance.ColorScheme = config.ThemePreferLight

	assert.Equal(t, "prefer-light", NewConfigAdapter(staticConfig{cfg}).GetColorScheme())
	assert.Empty(t, NewConfigAdapter(nil).GetColorScheme())
	assert.Empty(t, NewConfigAdapter(staticConfig{}).GetColorScheme())
}

func TestEnvDetector(t *testing.T) {
	env := map[string]string{}
	d := &EnvDetector{getenv: func(k string) string { return env[k] }}

	assert.False(t, d.Available())
	_, ok := d.Detect()
	assert.False(t, ok)

	env["GTK_THEME"] = "Adwaita:dark"
	dark, ok := d.Detect()
	assert.True(t, ok)
	assert.True(t, dark)

	env["GTK_THEME"] = "Breeze"
	dark, ok = d.Detect()
	assert.True(t, ok)
	assert.False(t, dark)
}

func TestGsettingsDetector(t *testing.T) {
	tests := []struct {
		name     string
		values   map[string]string
		wantDark bool
		wantOk   bool
	}{
		{"prefer dark", map[string]string{"color-scheme": "'prefer-dark'\n"}, true, true},
		{"prefer light", map[string]string{"color-scheme": "'prefer-light'\n"}, false, true},
		{"default uses dark theme name", map[string]string{"color-scheme": "'default'\n", "gtk-theme": "'Adwaita-dark'\n"}, true, true},
		{"default uses light theme name", map[string]string{"color-scheme": "'default'\n", "gtk-theme": "'Adwaita'\n"}, false, true},
		{"command fails", map[string]string{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &GsettingsDetector{run: func(_ context.Context, key string) (string, error) {
				v, ok := tt.values[key]
				if !ok {
					return "", errors.New("no such key")
				}
				return v, nil
			}}

			dark, ok := d.Detect()

			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantDark, dark)
		})
	}
}

func TestSchemeFromVariant(t *testing.T) {
	dark, ok := schemeFromVariant(dbus.MakeVariant(uint32(1)))
	assert.True(t, ok)
	assert.True(t, dark)

	dark, ok = schemeFromVariant(dbus.MakeVariant(dbus.MakeVariant(uint32(2))))
	assert.True(t, ok)
	assert.False(t, dark)

	_, ok = schemeFromVariant(dbus.MakeVariant(uint32(0)))
	assert.False(t, ok)

	_, ok = schemeFromVariant(dbus.MakeVariant("dark"))
	assert.False(t, ok)
}

func TestIsColorSchemeChange(t *testing.T) {
	sig := &dbus.Signal{
		Name: portalSettingsIface + ".SettingChanged",
		Body: []any{appearanceNamespace, colorSchemeKey, dbus.MakeVariant(uint32(1))},
	}
	assert.True(t, isColorSchemeChange(sig))

	sig.Body[1] = "accent-color"
	assert.False(t, isColorSchemeChange(sig))

	assert.False(t, isColorSchemeChange(&dbus.Signal{Name: "other"}))
}

func TestPortalDetector_UnavailableWithoutBus(t *testing.T) {
	d := &PortalDetector{}

	assert.False(t, d.Available())
	_, ok := d.Detect()
	assert.False(t, ok)
	d.Watch(context.Background(), func() { t.Fatal("unexpected change") })
	assert.NoError(t, d.Close())
}
