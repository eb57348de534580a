package colorscheme

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

const (
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 10
	gsettingsTimeout      = 2 * time.Second
	gnomeInterfaceSchema  = "org.gnome.desktop.interface"
)

// GsettingsDetector asks GNOME gsettings for color-scheme, falling back to
// the gtk-theme name when color-scheme is "default".
type GsettingsDetector struct {
	run func(ctx context.Context, key string) (string, error)
}

// NewGsettingsDetector creates a detector shelling out to gsettings.
func NewGsettingsDetector() *GsettingsDetector {
	return &GsettingsDetector{run: runGsettings}
}

func (*GsettingsDetector) Name() string  { return detectorNameGsettings }
func (*GsettingsDetector) Priority() int { return priorityGsettings }

func (*GsettingsDetector) Available() bool {
	_, err := exec.LookPath("gsettings")
	return err == nil
}

func (d *GsettingsDetector) Detect() (prefersDark, ok bool) {
	ctx, cancel := context.WithTimeout(context.Background(), gsettingsTimeout)
	defer cancel()

	scheme, err := d.run(ctx, "color-scheme")
	if err != nil {
		return false, false
	}
	switch unquote(scheme) {
	case "prefer-dark":
		return true, true
	case "prefer-light":
		return false, true
	}

	theme, err := d.run(ctx, "gtk-theme")
	if err != nil {
		return false, false
	}
	theme = strings.ToLower(unquote(theme))
	if theme == "" {
		return false, false
	}
	return strings.Contains(theme, "dark"), true
}

func runGsettings(ctx context.Context, key string) (string, error) {
	out, err := exec.CommandContext(ctx, "gsettings", "get", gnomeInterfaceSchema, key).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// unquote strips the GVariant quoting from "'prefer-dark'\n".
func unquote(s string) string {
	return strings.Trim(strings.TrimSpace(s), `'"`)
}
