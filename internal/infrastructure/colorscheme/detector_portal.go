package colorscheme

import (
	"context"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/chatdeck/internal/logging"
)

const (
	detectorNamePortal = "xdg-desktop-portal"
	priorityPortal     = 100

	portalDest          = "org.freedesktop.portal.Desktop"
	portalPath          = "/org/freedesktop/portal/desktop"
	portalSettingsIface = "org.freedesktop.portal.Settings"
	appearanceNamespace = "org.freedesktop.appearance"
	colorSchemeKey      = "color-scheme"
)

// Values of org.freedesktop.appearance color-scheme.
const (
	portalNoPreference uint32 = 0
	portalPreferDark   uint32 = 1
	portalPreferLight  uint32 = 2
)

// PortalDetector reads the color scheme from the XDG desktop portal. It works
// on any desktop shipping a portal backend (GNOME, KDE, wlroots).
type PortalDetector struct {
	mu        sync.Mutex
	conn      *dbus.Conn
	supported bool
}

// NewPortalDetector connects to the session bus. The detector is returned
// unavailable when the bus or the portal cannot be reached.
func NewPortalDetector(ctx context.Context) *PortalDetector {
	log := logging.FromContext(ctx)
	d := &PortalDetector{}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Debug().Err(err).Msg("color scheme: cannot connect to D-Bus session bus")
		return d
	}
	d.conn = conn

	if _, ok := d.read(); !ok {
		log.Debug().Msg("color scheme: portal settings not available")
		return d
	}
	d.supported = true
	return d
}

func (*PortalDetector) Name() string  { return detectorNamePortal }
func (*PortalDetector) Priority() int { return priorityPortal }

func (d *PortalDetector) Available() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.supported && d.conn != nil
}

func (d *PortalDetector) Detect() (prefersDark, ok bool) {
	if !d.Available() {
		return false, false
	}
	value, ok := d.read()
	if !ok {
		return false, false
	}
	return schemeFromVariant(value)
}

func (d *PortalDetector) read() (dbus.Variant, bool) {
	d.mu.Lock()
	conn := d.conn
	d.mu.Unlock()
	if conn == nil {
		return dbus.Variant{}, false
	}

	obj := conn.Object(portalDest, portalPath)
	var value dbus.Variant
	if err := obj.Call(portalSettingsIface+".ReadOne", 0, appearanceNamespace, colorSchemeKey).Store(&value); err == nil {
		return value, true
	}
	// Portals older than version 2 only have Read, which wraps the value twice.
	if err := obj.Call(portalSettingsIface+".Read", 0, appearanceNamespace, colorSchemeKey).Store(&value); err != nil {
		return dbus.Variant{}, false
	}
	if inner, ok := value.Value().(dbus.Variant); ok {
		value = inner
	}
	return value, true
}

// schemeFromVariant maps the portal value; "no preference" is not a result.
func schemeFromVariant(v dbus.Variant) (prefersDark, ok bool) {
	if inner, isVariant := v.Value().(dbus.Variant); isVariant {
		v = inner
	}
	n, isUint := v.Value().(uint32)
	if !isUint {
		return false, false
	}
	switch n {
	case portalPreferDark:
		return true, true
	case portalPreferLight:
		return false, true
	case portalNoPreference:
		return false, false
	default:
		return false, false
	}
}

// Watch calls onChange whenever the portal emits SettingChanged for the
// color scheme, until ctx is done. It returns immediately when the portal is
// unavailable.
func (d *PortalDetector) Watch(ctx context.Context, onChange func()) {
	if !d.Available() {
		return
	}
	log := logging.FromContext(ctx)

	d.mu.Lock()
	conn := d.conn
	d.mu.Unlock()

	matches := []dbus.MatchOption{
		dbus.WithMatchObjectPath(portalPath),
		dbus.WithMatchInterface(portalSettingsIface),
		dbus.WithMatchMember("SettingChanged"),
	}
	if err := conn.AddMatchSignalContext(ctx, matches...); err != nil {
		log.Debug().Err(err).Msg("color scheme: failed to add signal match")
		return
	}

	signals := make(chan *dbus.Signal, 4)
	conn.Signal(signals)

	go func() {
		defer func() {
			conn.RemoveSignal(signals)
			_ = conn.RemoveMatchSignal(matches...)
		}()
		for {
			select {
			case sig := <-signals:
				if sig == nil {
					return
				}
				if isColorSchemeChange(sig) {
					log.Debug().Msg("color scheme: portal setting changed")
					onChange()
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

func isColorSchemeChange(sig *dbus.Signal) bool {
	if sig.Name != portalSettingsIface+".SettingChanged" || len(sig.Body) < 2 {
		return false
	}
	ns, _ := sig.Body[0].(string)
	key, _ := sig.Body[1].(string)
	return ns == appearanceNamespace && key == colorSchemeKey
}

// Close releases the D-Bus connection.
func (d *PortalDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.supported = false
	if d.conn == nil {
		return nil
	}
	err := d.conn.Close()
	d.conn = nil
	return err
}
