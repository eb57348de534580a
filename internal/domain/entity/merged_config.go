package entity

// MergedConfig is the effective unification config for one page,
// derived from the wildcard rule and the host rule.
type MergedConfig struct {
	Host          string
	HideSelectors []string
	CSSVars       map[string]string
	CSS           string
	JS            string
	Flags         map[string]bool
	ClassTweaks   []ClassTweak
	StyleTweaks   []StyleTweak
	UserCSS       string
	UserJS        string
	UserEnabled   bool
}

// Flag reports whether the named flag is set.
func (c MergedConfig) Flag(name string) bool {
	return c.Flags[name]
}

// IsEmpty reports whether the config carries nothing to inject.
func (c MergedConfig) IsEmpty() bool {
	return len(c.HideSelectors) == 0 &&
		len(c.CSSVars) == 0 &&
		c.CSS == "" &&
		c.JS == "" &&
		len(c.Flags) == 0 &&
		len(c.ClassTweaks) == 0 &&
		len(c.StyleTweaks) == 0 &&
		c.UserCSS == "" &&
		c.UserJS == "" &&
		!c.UserEnabled
}
