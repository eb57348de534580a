//go:build !webkitgtk

package webkitgtk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/chatdeck/internal/domain/entity"
	"github.com/bnema/chatdeck/internal/infrastructure/config"
)

func TestStart_Unavailable(t *testing.T) {
	e, err := Start(context.Background(), config.BrowserConfig{Engine: config.EngineWebKitGTK})
	assert.Nil(t, e)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = (&Engine{}).OpenSite(context.Background(), entity.Site{ID: "a"})
	assert.ErrorIs(t, err, ErrUnavailable)
}
