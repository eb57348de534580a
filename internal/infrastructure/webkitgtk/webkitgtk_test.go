package webkitgtk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataDirs(t *testing.T) {
	data, cache := dataDirs("/state/chatdeck/webkitgtk")
	assert.Equal(t, "/state/chatdeck/webkitgtk/data", data)
	assert.Equal(t, "/state/chatdeck/webkitgtk/cache", cache)

	data, cache = dataDirs("")
	assert.Empty(t, data)
	assert.Empty(t, cache)
}

func TestInPageNavigation(t *testing.T) {
	tests := []struct {
		name       string
		loading    bool
		prev, next string
		want       bool
	}{
		{name: "push state", prev: "https://chat.example/a", next: "https://chat.example/c/1", want: true},
		{name: "during load", loading: true, prev: "https://chat.example/a", next: "https://chat.example/b"},
		{name: "first uri", prev: "", next: "https://chat.example/a"},
		{name: "unchanged", prev: "https://chat.example/a", next: "https://chat.example/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inPageNavigation(tt.loading, tt.prev, tt.next))
		})
	}
}
