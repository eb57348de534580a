package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"claude.ai", "https://claude.ai/"},
		{"  chat.mistral.ai ", "https://chat.mistral.ai/"},
		{"www.perplexity.ai/search", "https://www.perplexity.ai/search"},
		{"https://gemini.google.com/app", "https://gemini.google.com/app"},
		{"http://localhost:8080", "http://localhost:8080"},
		{"file:///tmp/saved.html", "file:///tmp/saved.html"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestLooksLikeURL(t *testing.T) {
	for _, in := range []string{"claude.ai", "www.perplexity.ai/search", "localhost:3000", "HTTPS://chatgpt.com", "file:///tmp/x.html"} {
		assert.True(t, LooksLikeURL(in), in)
	}
	for _, in := range []string{"", "claude", "chat gpt.com", "intranet/path"} {
		assert.False(t, LooksLikeURL(in), in)
	}
}

func TestHost(t *testing.T) {
	assert.Equal(t, "perplexity.ai", Host("https://www.Perplexity.ai/search"))
	assert.Equal(t, "localhost", Host("http://localhost:8080/"))
	assert.Equal(t, "", Host("claude.ai"))
	assert.Equal(t, "", Host("file:///tmp/x.html"))
}
