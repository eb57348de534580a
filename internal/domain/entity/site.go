package entity

import (
	"strings"
	"time"
)

// SiteOverride holds user-entered CSS/JS for one host.
type SiteOverride struct {
	Host      string    `json:"host"`
	UserCSS   string    `json:"user_css"`
	UserJS    string    `json:"user_js"`
	Enabled   bool      `json:"enabled"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *SiteOverride) Validate() error {
	if o == nil || strings.TrimSpace(o.Host) == "" || o.Host == WildcardHost {
		return ErrInvalidOverride
	}
	return nil
}

// Site is one embedded chat view of the shell.
type Site struct {
	ID        string `mapstructure:"id" toml:"id" json:"id"`
	Title     string `mapstructure:"title" toml:"title" json:"title"`
	URL       string `mapstructure:"url" toml:"url" json:"url"`
	AutoUnify bool   `mapstructure:"auto_unify" toml:"auto_unify" json:"auto_unify"`
}
