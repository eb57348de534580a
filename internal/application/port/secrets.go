package port

import "errors"

// ErrSecretNotFound is returned when a secret is absent from the store.
var ErrSecretNotFound = errors.New("secret not found")

// SecretStore persists secrets such as API keys.
type SecretStore interface {
	Get(service, key string) (string, error)
	Set(service, key, value string) error
	Delete(service, key string) error
}
