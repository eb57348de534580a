// Package relay serves the local chat endpoint and talks to the upstream
// model APIs.
package relay

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/zalando/go-keyring"

	"github.com/bnema/chatdeck/internal/application/port"
	"github.com/bnema/chatdeck/internal/infrastructure/config"
)

// KeyringService is the OS keyring service under which API keys are stored.
const KeyringService = "chatdeck"

// envVars lists the variables consulted per provider, in order.
var envVars = map[string][]string{
	config.ProviderOpenAI: {"OPENAI_API_KEY"},
	config.ProviderGemini: {"GEMINI_API_KEY", "GOOGLE_API_KEY"},
}

// KeyResolver finds an upstream API key: process environment first, then the
// optional .env file, then the OS keyring.
type KeyResolver struct {
	envFile string
	secrets port.SecretStore
	getenv  func(string) string
}

// NewKeyResolver creates a resolver. envFile and secrets are optional.
func NewKeyResolver(envFile string, secrets port.SecretStore) *KeyResolver {
	return &KeyResolver{envFile: envFile, secrets: secrets, getenv: os.Getenv}
}

// Resolve returns the key for provider or an error wrapping
// port.ErrMissingAPIKey.
func (r *KeyResolver) Resolve(provider string) (string, error) {
	names := envVars[provider]

	for _, name := range names {
		if v := strings.TrimSpace(r.getenv(name)); v != "" {
			return v, nil
		}
	}

	if r.envFile != "" {
		values, err := godotenv.Read(r.envFile)
		switch {
		case err == nil:
			for _, name := range names {
				if v := strings.TrimSpace(values[name]); v != "" {
					return v, nil
				}
			}
		case !errors.Is(err, os.ErrNotExist):
			return "", fmt.Errorf("failed to read env file %s: %w", r.envFile, err)
		}
	}

	if r.secrets != nil {
		v, err := r.secrets.Get(KeyringService, provider)
		switch {
		case err == nil && strings.TrimSpace(v) != "":
			return strings.TrimSpace(v), nil
		case err != nil && !errors.Is(err, port.ErrSecretNotFound):
			return "", fmt.Errorf("failed to read keyring: %w", err)
		}
	}

	return "", fmt.Errorf("%w for %s (set %s or run `chatdeck key set %s`)",
		port.ErrMissingAPIKey, provider, strings.Join(names, " or "), provider)
}

// KeyringStore implements port.SecretStore on the OS keyring.
type KeyringStore struct{}

var _ port.SecretStore = KeyringStore{}

func (KeyringStore) Get(service, key string) (string, error) {
	v, err := keyring.Get(service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", port.ErrSecretNotFound
	}
	return v, err
}

func (KeyringStore) Set(service, key, value string) error {
	return keyring.Set(service, key, value)
}

func (KeyringStore) Delete(service, key string) error {
	err := keyring.Delete(service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return port.ErrSecretNotFound
	}
	return err
}
