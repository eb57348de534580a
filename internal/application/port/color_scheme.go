package port

// ColorSchemePreference is a resolved light/dark preference.
type ColorSchemePreference struct {
	PrefersDark bool

	// Source names the detector that produced the preference.
	// Empty means the fallback was used.
	Source string
}

// ColorSchemeDetector reads the desktop's color scheme from one source.
type ColorSchemeDetector interface {
	Name() string

	// Priority orders detectors; higher is consulted first.
	//   100+: desktop portal
	//    50+: config
	//    10+: gsettings, environment
	Priority() int

	Available() bool

	// Detect returns (prefersDark, true) on success.
	Detect() (prefersDark bool, ok bool)
}

// ColorSchemeResolver combines the config override and the detectors.
type ColorSchemeResolver interface {
	ThemeSource

	Resolve() ColorSchemePreference
	RegisterDetector(detector ColorSchemeDetector)
	// Refresh re-evaluates the preference and notifies listeners on change.
	Refresh() ColorSchemePreference
	// Subscribe registers a callback receiving the full preference.
	Subscribe(callback func(ColorSchemePreference)) (unregister func())
}

// ThemeSource is the OS theme as seen by the injector.
type ThemeSource interface {
	PrefersDark() bool
	OnChange(fn func(dark bool)) (unregister func())
}
