package relay

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/chatdeck/internal/application/port"
	portmocks "github.com/bnema/chatdeck/internal/application/port/mocks"
	"github.com/bnema/chatdeck/internal/infrastructure/config"
)

func fakeEnv(values map[string]string) func(string) string {
	return func(name string) string { return values[name] }
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestKeyResolver_EnvironmentWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	secrets := portmocks.NewMockSecretStore(ctrl)

	r := NewKeyResolver(writeEnvFile(t, "OPENAI_API_KEY=from-file\n"), secrets)
	r.getenv = fakeEnv(map[string]string{"OPENAI_API_KEY": " from-env "})

	key, err := r.Resolve(config.ProviderOpenAI)
	require.NoError(t, err)
	assert.Equal(t, "from-env", key)
}

func TestKeyResolver_GeminiFallsBackToGoogleKey(t *testing.T) {
	r := NewKeyResolver("", nil)
	r.getenv = fakeEnv(map[string]string{"GOOGLE_API_KEY": "g"})

	key, err := r.Resolve(config.ProviderGemini)
	require.NoError(t, err)
	assert.Equal(t, "g", key)
}

func TestKeyResolver_EnvFile(t *testing.T) {
	r := NewKeyResolver(writeEnvFile(t, "# keys\nGEMINI_API_KEY=\"quoted\"\n"), nil)
	r.getenv = fakeEnv(nil)

	key, err := r.Resolve(config.ProviderGemini)
	require.NoError(t, err)
	assert.Equal(t, "quoted", key)
}

func TestKeyResolver_Keyring(t *testing.T) {
	ctrl := gomock.NewController(t)
	secrets := portmocks.NewMockSecretStore(ctrl)
	secrets.EXPECT().Get(KeyringService, config.ProviderOpenAI).Return("from-keyring", nil)

	r := NewKeyResolver(filepath.Join(t.TempDir(), "absent.env"), secrets)
	r.getenv = fakeEnv(nil)

	key, err := r.Resolve(config.ProviderOpenAI)
	require.NoError(t, err)
	assert.Equal(t, "from-keyring", key)
}

func TestKeyResolver_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	secrets := portmocks.NewMockSecretStore(ctrl)
	secrets.EXPECT().Get(KeyringService, config.ProviderOpenAI).Return("", port.ErrSecretNotFound)

	r := NewKeyResolver("", secrets)
	r.getenv = fakeEnv(nil)

	_, err := r.Resolve(config.ProviderOpenAI)
	require.ErrorIs(t, err, port.ErrMissingAPIKey)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	assert.Contains(t, err.Error(), "chatdeck key set openai")
}

func TestKeyResolver_KeyringFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	secrets := portmocks.NewMockSecretStore(ctrl)
	secrets.EXPECT().Get(KeyringService, config.ProviderOpenAI).Return("", errors.New("dbus unavailable"))

	r := NewKeyResolver("", secrets)
	r.getenv = fakeEnv(nil)

	_, err := r.Resolve(config.ProviderOpenAI)
	require.Error(t, err)
	assert.NotErrorIs(t, err, port.ErrMissingAPIKey)
	assert.Contains(t, err.Error(), "dbus unavailable")
}
