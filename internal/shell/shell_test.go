package shell

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chatdeck/internal/application/port"
	"github.com/bnema/chatdeck/internal/application/port/mocks"
	"github.com/bnema/chatdeck/internal/application/usecase"
	"github.com/bnema/chatdeck/internal/domain/autostyle"
	"github.com/bnema/chatdeck/internal/domain/entity"
	"github.com/bnema/chatdeck/internal/infrastructure/config"
	"github.com/bnema/chatdeck/internal/infrastructure/surface"
)

func TestSelectSites(t *testing.T) {
	configured := []entity.Site{
		{ID: "chatgpt", Title: "ChatGPT", URL: "https://chatgpt.com/"},
		{ID: "claude", Title: "Claude", URL: "https://claude.ai/", AutoUnify: true},
	}

	all, err := SelectSites(configured, nil)
	require.NoError(t, err)
	assert.Equal(t, configured, all)

	got, err := SelectSites(configured, []string{"claude", "www.Perplexity.ai/search"})
	require.NoError(t, err)
	want := []entity.Site{
		configured[1],
		{ID: "perplexity.ai", Title: "perplexity.ai", URL: "https://www.Perplexity.ai/search"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SelectSites mismatch (-want +got):\n%s", diff)
	}

	_, err = SelectSites(configured, []string{"nope"})
	assert.Error(t, err)
}

func TestAutoStyleOptions(t *testing.T) {
	opts := AutoStyleOptions(config.AutoStyleConfig{
		Presets:    []string{"flat"},
		Background: true,
		Spacing:    true,
		Limit:      3,
		ShadowDOM:  true,
	})

	assert.Equal(t, []string{"flat"}, opts.Presets)
	assert.True(t, opts.Observe)
	assert.True(t, opts.TrackHistory)
	assert.True(t, opts.ShadowDOM)
	assert.False(t, opts.ForceInline)
	require.NotNil(t, opts.Auto)
	assert.True(t, opts.Auto.Background)
	assert.False(t, opts.Auto.BorderRadius)
	require.NotNil(t, opts.Auto.Limit)
	assert.Equal(t, 3, *opts.Auto.Limit)

	opts = AutoStyleOptions(config.AutoStyleConfig{})
	assert.Nil(t, opts.Auto.Limit, "zero limit keeps the policy default")
	assert.Equal(t, autostyle.DefaultOptions().Observe, opts.Observe)
}

func TestStartupTimer(t *testing.T) {
	now := time.Unix(0, 0)
	timer := newStartupTimer(func() time.Time { return now })

	now = now.Add(2 * time.Second)
	timer.Mark("config")
	now = now.Add(time.Second)
	timer.Mark("browser")
	now = now.Add(time.Second)
	timer.Mark("config")

	assert.Equal(t, 3*time.Second, timer.Phase("config"))
	assert.Equal(t, time.Second, timer.Phase("browser"))
	assert.Equal(t, []string{"config", "browser"}, timer.order)
}

func newTestShell(t *testing.T, fallback bool) *Shell {
	t.Helper()
	mgr, err := config.NewManagerWithFile(t.TempDir() + "/config.toml")
	require.NoError(t, err)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("CHATDECK_BROWSER_FALLBACK_SYSTEM_BROWSER", map[bool]string{true: "true", false: "false"}[fallback])
	require.NoError(t, mgr.Load())

	return &Shell{
		mgr: mgr,
		startEngine: func(context.Context, config.BrowserConfig) (engine, error) {
			return nil, errors.New("no chromium")
		},
	}
}

func TestShell_Run_FallsBackToSystemBrowser(t *testing.T) {
	s := newTestShell(t, true)
	var opened []string
	s.openURL = func(u string) error {
		opened = append(opened, u)
		return nil
	}

	sites := []entity.Site{{ID: "a", URL: "https://a.example/"}, {ID: "b", URL: "https://b.example/"}}
	require.NoError(t, s.Run(context.Background(), sites))
	assert.Equal(t, []string{"https://a.example/", "https://b.example/"}, opened)
}

func TestShell_Run_BrowserFailureWithoutFallback(t *testing.T) {
	s := newTestShell(t, false)
	s.openURL = func(string) error {
		t.Error("system browser must not be used")
		return nil
	}

	err := s.Run(context.Background(), []entity.Site{{ID: "a", URL: "https://a.example/"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no chromium")
}

func TestShell_Run_NoSites(t *testing.T) {
	s := newTestShell(t, true)
	assert.ErrorIs(t, s.Run(context.Background(), nil), ErrNoSites)
}

type fakeSurface struct {
	id, url   string
	loaded    surface.Listeners
	navigated surface.Listeners
	destroyed surface.Listeners
}

func (f *fakeSurface) ID() string { return f.id }
func (f *fakeSurface) URL() string { return f.url }
func (f *fakeSurface) EvaluateScript(context.Context, string) error { return nil }
func (f *fakeSurface) InsertStyleSheet(context.Context, string) error { return nil }
func (f *fakeSurface) OnLoadFinished(fn func()) func() { return f.loaded.Add(fn) }
func (f *fakeSurface) OnNavigatedInPage(fn func()) func() { return f.navigated.Add(fn) }
func (f *fakeSurface) OnDestroyed(fn func()) func() { return f.destroyed.Add(fn) }

// fakeEngine opens fakeSurfaces and cannot host the styler.
type fakeEngine struct {
	failing map[string]bool

	mu     sync.Mutex
	opened []*fakeSurface
	closed bool
}

func (e *fakeEngine) Name() string { return "fake" }

func (e *fakeEngine) OpenSite(_ context.Context, site entity.Site) (port.WebSurface, error) {
	if e.failing[site.ID] {
		return nil, errors.New("renderer crashed")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	fs := &fakeSurface{id: site.ID, url: site.URL}
	e.opened = append(e.opened, fs)
	return fs, nil
}

func (e *fakeEngine) StyleWindow(context.Context, port.WebSurface) (styleWindow, error) {
	return nil, ErrStylingUnsupported
}

func (e *fakeEngine) Close() error {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
	return nil
}

func (e *fakeEngine) surfaces() []*fakeSurface {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*fakeSurface(nil), e.opened...)
}

func newEngineShell(t *testing.T, eng *fakeEngine) *Shell {
	t.Helper()
	s := newTestShell(t, false)
	s.injector = usecase.NewUnifyInjector(mocks.NewMockRuleSource(t), nil)
	s.startEngine = func(_ context.Context, cfg config.BrowserConfig) (engine, error) {
		assert.Equal(t, config.EngineChromium, cfg.Engine)
		return eng, nil
	}
	return s
}

func TestShell_Run_ReturnsWhenAllWindowsClose(t *testing.T) {
	eng := &fakeEngine{failing: map[string]bool{"broken": true}}
	s := newEngineShell(t, eng)
	sites := []entity.Site{
		{ID: "a", URL: "https://a.example/"},
		{ID: "broken", URL: "https://broken.example/"},
		{ID: "b", URL: "https://b.example/", AutoUnify: true},
	}

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background(), sites) }()

	require.Eventually(t, func() bool { return len(s.openViews()) == 2 }, 2*time.Second, 10*time.Millisecond)
	for _, fs := range eng.surfaces() {
		fs.destroyed.Emit()
	}

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after every window closed")
	}
	assert.True(t, eng.closed)
	assert.Empty(t, s.openViews())
}

func TestShell_Run_NoSiteOpens(t *testing.T) {
	eng := &fakeEngine{failing: map[string]bool{"a": true}}
	s := newEngineShell(t, eng)

	err := s.Run(context.Background(), []entity.Site{{ID: "a", URL: "https://a.example/"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open any of 1 sites")
	assert.True(t, eng.closed)
}

func TestShell_Restyle_SkipsEnginesWithoutStyler(t *testing.T) {
	eng := &fakeEngine{}
	s := newEngineShell(t, eng)

	v, err := s.openView(context.Background(), eng, entity.Site{ID: "a", URL: "https://a.example/", AutoUnify: true})
	require.NoError(t, err)

	s.restyle(context.Background(), v)
	assert.Nil(t, v.window)
	assert.Nil(t, v.style)

	v.close()
	select {
	case <-v.attachment.Done():
	default:
		t.Fatal("closing the view detaches the injector")
	}
}
