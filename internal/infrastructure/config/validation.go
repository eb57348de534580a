package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// validateConfig checks every section and reports all problems at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateBrowser(config)...)
	validationErrors = append(validationErrors, validateSites(config)...)
	validationErrors = append(validationErrors, validateRelay(config)...)
	validationErrors = append(validationErrors, validateUnify(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level %q must be one of trace, debug, info, warn, error", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json", "text":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format %q must be console or json", config.Logging.Format))
	}
	return validationErrors
}

func validateBrowser(config *Config) []string {
	var validationErrors []string
	if config.Browser.WindowWidth < 320 {
		validationErrors = append(validationErrors, "browser.window_width must be at least 320")
	}
	if config.Browser.WindowHeight < 240 {
		validationErrors = append(validationErrors, "browser.window_height must be at least 240")
	}
	switch config.Browser.Engine {
	case EngineChromium:
	case EngineWebKitGTK:
		if config.Browser.Headless {
			validationErrors = append(validationErrors, "browser.headless requires the chromium engine")
		}
		if config.Browser.DebuggerURL != "" {
			validationErrors = append(validationErrors, "browser.debugger_url requires the chromium engine")
		}
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("browser.engine %q must be chromium or webkitgtk", config.Browser.Engine))
	}
	if u := config.Browser.DebuggerURL; u != "" {
		parsed, err := url.Parse(u)
		if err != nil || parsed.Host == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("browser.debugger_url %q is not a valid URL", u))
		} else {
			switch parsed.Scheme {
			case "ws", "wss", "http", "https":
			default:
				validationErrors = append(validationErrors, "browser.debugger_url must use ws, wss, http or https")
			}
		}
	}
	return validationErrors
}

func validateSites(config *Config) []string {
	var validationErrors []string
	seen := make(map[string]bool, len(config.Sites))
	for i, site := range config.Sites {
		field := fmt.Sprintf("sites[%d]", i)
		if site.ID == "" {
			validationErrors = append(validationErrors, field+".id cannot be empty")
		} else if seen[site.ID] {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.id %q is duplicated", field, site.ID))
		}
		seen[site.ID] = true

		parsed, err := url.Parse(site.URL)
		if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.url %q must be an absolute http(s) URL", field, site.URL))
		}
	}
	return validationErrors
}

func validateRelay(config *Config) []string {
	var validationErrors []string
	if _, _, err := net.SplitHostPort(config.Relay.Addr); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("relay.addr %q must be host:port", config.Relay.Addr))
	}
	switch config.Relay.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("relay.provider %q must be openai or gemini", config.Relay.Provider))
	}
	if config.Relay.BaseURL != "" {
		if parsed, err := url.Parse(config.Relay.BaseURL); err != nil || parsed.Host == "" {
			validationErrors = append(validationErrors, "relay.base_url must be an absolute URL")
		}
	}
	if config.Relay.RequestTimeoutSeconds < 1 {
		validationErrors = append(validationErrors, "relay.request_timeout_seconds must be positive")
	}
	return validationErrors
}

func validateUnify(config *Config) []string {
	limit := config.Unify.AutoStyle.Limit
	if limit < 0 || limit > maxAutoStyleLimit {
		return []string{fmt.Sprintf("unify.auto_style.limit must be between 0 and %d", maxAutoStyleLimit)}
	}
	return nil
}
