package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chatdeck/internal/application/usecase"
	"github.com/bnema/chatdeck/internal/domain/entity"
	repomocks "github.com/bnema/chatdeck/internal/domain/repository/mocks"
)

func TestResolveHost(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "chatgpt.com", want: "chatgpt.com"},
		{in: "WWW.Claude.AI", want: "claude.ai"},
		{in: "https://www.perplexity.ai/search?q=1", want: "perplexity.ai"},
		{in: "poe.com:443", want: "poe.com"},
		{in: "*", wantErr: true},
		{in: "", wantErr: true},
		{in: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := usecase.ResolveHost(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, entity.ErrInvalidOverride)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestManageOverridesUseCase_SetCSS_CreatesEnabledOverride(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockSiteOverrideRepository(t)
	repo.EXPECT().Get(mock.Anything, "claude.ai").Return(nil, nil)
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(o *entity.SiteOverride) bool {
		return o.Host == "claude.ai" && o.UserCSS == "body{color:red}" && o.Enabled && !o.UpdatedAt.IsZero()
	})).Return(nil)

	o, err := usecase.NewManageOverridesUseCase(repo).SetCSS(ctx, "https://www.claude.ai/new", "body{color:red}")
	require.NoError(t, err)
	assert.True(t, o.Enabled)
}

func TestManageOverridesUseCase_SetJS_KeepsExistingFields(t *testing.T) {
	ctx := testContext()

	existing := &entity.SiteOverride{Host: "poe.com", UserCSS: "a{}", Enabled: false}
	repo := repomocks.NewMockSiteOverrideRepository(t)
	repo.EXPECT().Get(mock.Anything, "poe.com").Return(existing, nil)
	repo.EXPECT().Save(mock.Anything, existing).Return(nil)

	o, err := usecase.NewManageOverridesUseCase(repo).SetJS(ctx, "poe.com", "console.log(1)")
	require.NoError(t, err)
	assert.Equal(t, "a{}", o.UserCSS)
	assert.Equal(t, "console.log(1)", o.UserJS)
	assert.False(t, o.Enabled)
}

func TestManageOverridesUseCase_EnableDisable(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockSiteOverrideRepository(t)
	repo.EXPECT().SetEnabled(mock.Anything, "poe.com", true).Return(nil)
	repo.EXPECT().SetEnabled(mock.Anything, "poe.com", false).Return(entity.ErrOverrideNotFound)

	uc := usecase.NewManageOverridesUseCase(repo)
	require.NoError(t, uc.Enable(ctx, "poe.com"))
	assert.ErrorIs(t, uc.Disable(ctx, "www.poe.com"), entity.ErrOverrideNotFound)
}

func TestManageOverridesUseCase_Clear_WrapsError(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockSiteOverrideRepository(t)
	repo.EXPECT().Delete(mock.Anything, "chatgpt.com").Return(errors.New("locked"))

	err := usecase.NewManageOverridesUseCase(repo).Clear(ctx, "chatgpt.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clear override")
}

func TestManageOverridesUseCase_RejectsWildcard(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockSiteOverrideRepository(t)
	_, err := usecase.NewManageOverridesUseCase(repo).SetCSS(ctx, "*", "x{}")
	assert.ErrorIs(t, err, entity.ErrInvalidOverride)
}
