package colorscheme

import (
	"os"
	"strings"
)

const (
	detectorNameEnv = "GTK_THEME"
	priorityEnv     = 20
)

// EnvDetector reads the GTK_THEME variable, e.g. "Adwaita:dark".
type EnvDetector struct {
	getenv func(string) string
}

// NewEnvDetector creates a detector reading the process environment.
func NewEnvDetector() *EnvDetector {
	return &EnvDetector{getenv: os.Getenv}
}

func (*EnvDetector) Name() string  { return detectorNameEnv }
func (*EnvDetector) Priority() int { return priorityEnv }

func (d *EnvDetector) Available() bool {
	return d.getenv("GTK_THEME") != ""
}

// Detect reports dark when the theme name or its variant mentions "dark".
func (d *EnvDetector) Detect() (prefersDark, ok bool) {
	theme := strings.ToLower(strings.TrimSpace(d.getenv("GTK_THEME")))
	if theme == "" {
		return false, false
	}
	return strings.Contains(theme, "dark"), true
}
